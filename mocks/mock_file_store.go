package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"sellersuite/internal/port"
)

// MockFileStore is a mock implementation of port.FileStore.
type MockFileStore struct {
	mock.Mock
}

func (m *MockFileStore) Save(ctx context.Context, input port.SaveInput) error {
	args := m.Called(ctx, input)
	return args.Error(0)
}

func (m *MockFileStore) Open(ctx context.Context, area port.Area, name string) (io.ReadCloser, error) {
	args := m.Called(ctx, area, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}

func (m *MockFileStore) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
