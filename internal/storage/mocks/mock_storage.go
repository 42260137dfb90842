package mocks

import (
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"

	"cvapi/internal/storage"
)

// MockStorage is a testify mock of storage.Storage. Put may be given a
// func(string, storage.PhotoUpload) storage.Object to echo its input.
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) Put(ctx context.Context, key string, r io.Reader, up storage.PhotoUpload) (storage.Object, error) {
	args := m.Called(ctx, key, r, up)
	if f, ok := args.Get(0).(func(string, storage.PhotoUpload) storage.Object); ok {
		return f(key, up), args.Error(1)
	}
	return args.Get(0).(storage.Object), args.Error(1)
}

func (m *MockStorage) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *MockStorage) PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error) {
	args := m.Called(ctx, key, expiry)
	return args.String(0), args.Error(1)
}
