package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"sellersuite/internal/service"
)

// MockReportService is a mock implementation of service.ReportService.
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) Generate(ctx context.Context, input service.GenerateInput) (*service.GeneratedReport, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.GeneratedReport), args.Error(1)
}

func (m *MockReportService) GenerateB2B(ctx context.Context, input service.GenerateB2BInput) (*service.GeneratedReport, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.GeneratedReport), args.Error(1)
}

func (m *MockReportService) Open(ctx context.Context, filename string) (io.ReadCloser, error) {
	args := m.Called(ctx, filename)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}
