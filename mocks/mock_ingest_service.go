package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"sellersuite/internal/domain"
	"sellersuite/internal/service"
)

// MockIngestService is a mock implementation of service.IngestService.
type MockIngestService struct {
	mock.Mock
}

func (m *MockIngestService) Upload(ctx context.Context, input service.UploadInput) (*domain.ParsedFileResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ParsedFileResult), args.Error(1)
}

func (m *MockIngestService) ParseB2B(ctx context.Context, filename string) ([]domain.B2BRecord, error) {
	args := m.Called(ctx, filename)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.B2BRecord), args.Error(1)
}

func (m *MockIngestService) SupportedPortals() []string {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]string)
}
