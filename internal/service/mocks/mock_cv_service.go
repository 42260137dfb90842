package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"cvapi/internal/draft"
	"cvapi/internal/model"
	"cvapi/internal/service"
)

type MockCVService struct {
	mock.Mock
}

func (m *MockCVService) List(ctx context.Context, limit, offset int) (*service.CVListResult, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CVListResult), args.Error(1)
}

func (m *MockCVService) Create(ctx context.Context, in model.CVPatch) (*model.CV, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CV), args.Error(1)
}

func (m *MockCVService) Get(ctx context.Context, id string) (*model.CV, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CV), args.Error(1)
}

func (m *MockCVService) Update(ctx context.Context, id string, patch model.CVPatch) (*model.CV, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CV), args.Error(1)
}

func (m *MockCVService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCVService) Analytics(ctx context.Context, id string) (*model.Analytics, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Analytics), args.Error(1)
}

func (m *MockCVService) UploadPhoto(ctx context.Context, id string, r io.Reader, contentType string, size int64) (*model.CV, error) {
	args := m.Called(ctx, id, r, contentType, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CV), args.Error(1)
}

func (m *MockCVService) DeletePhoto(ctx context.Context, id string) (*model.CV, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CV), args.Error(1)
}

type MockPublicService struct {
	mock.Mock
}

func (m *MockPublicService) GetBySlug(ctx context.Context, slug string) (*model.PublicCV, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PublicCV), args.Error(1)
}

func (m *MockPublicService) RecordEvent(ctx context.Context, slug string, kind model.EventKind) error {
	args := m.Called(ctx, slug, kind)
	return args.Error(0)
}

type MockDraftService struct {
	mock.Mock
}

func (m *MockDraftService) Save(ctx context.Context, cvID string, patch model.CVPatch) (*draft.Draft, error) {
	args := m.Called(ctx, cvID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*draft.Draft), args.Error(1)
}

func (m *MockDraftService) Get(ctx context.Context, cvID string) (*draft.Draft, error) {
	args := m.Called(ctx, cvID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*draft.Draft), args.Error(1)
}

func (m *MockDraftService) Discard(ctx context.Context, cvID string) error {
	args := m.Called(ctx, cvID)
	return args.Error(0)
}

func (m *MockDraftService) Commit(ctx context.Context, cvID string) (*model.CV, error) {
	args := m.Called(ctx, cvID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CV), args.Error(1)
}
