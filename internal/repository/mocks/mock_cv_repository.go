package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"cvapi/internal/model"
	"cvapi/internal/repository"
)

type MockCVRepository struct {
	mock.Mock
}

func (m *MockCVRepository) Create(ctx context.Context, cv *model.CV) (*model.CV, error) {
	args := m.Called(ctx, cv)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	if f, ok := args.Get(0).(func(*model.CV) *model.CV); ok {
		return f(cv), args.Error(1)
	}
	return args.Get(0).(*model.CV), args.Error(1)
}

func (m *MockCVRepository) FindByID(ctx context.Context, id string) (*model.CV, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CV), args.Error(1)
}

func (m *MockCVRepository) FindPublicBySlug(ctx context.Context, slug string) (*model.CV, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CV), args.Error(1)
}

func (m *MockCVRepository) ListByOwner(ctx context.Context, ownerID string, pq repository.PageQuery) (*repository.PageResult[model.CV], error) {
	args := m.Called(ctx, ownerID, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.CV]), args.Error(1)
}

func (m *MockCVRepository) Update(ctx context.Context, cv *model.CV) (*model.CV, error) {
	args := m.Called(ctx, cv)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	if f, ok := args.Get(0).(func(*model.CV) *model.CV); ok {
		return f(cv), args.Error(1)
	}
	return args.Get(0).(*model.CV), args.Error(1)
}

func (m *MockCVRepository) UpdatePhoto(ctx context.Context, id, ownerID string, photoKey *string) (*model.CV, error) {
	args := m.Called(ctx, id, ownerID, photoKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CV), args.Error(1)
}

func (m *MockCVRepository) Delete(ctx context.Context, id, ownerID string) (int64, error) {
	args := m.Called(ctx, id, ownerID)
	return args.Get(0).(int64), args.Error(1)
}

type MockAnalyticsRepository struct {
	mock.Mock
}

func (m *MockAnalyticsRepository) Increment(ctx context.Context, cvID string, kind model.EventKind) error {
	args := m.Called(ctx, cvID, kind)
	return args.Error(0)
}

func (m *MockAnalyticsRepository) FindByCVID(ctx context.Context, cvID string) (*model.Analytics, error) {
	args := m.Called(ctx, cvID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Analytics), args.Error(1)
}
