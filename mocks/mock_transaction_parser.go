package mocks

import (
	"github.com/stretchr/testify/mock"

	"sellersuite/internal/domain"
	"sellersuite/internal/port"
	"sellersuite/internal/workbook"
)

// MockTransactionParser is a mock implementation of port.TransactionParser.
type MockTransactionParser struct {
	mock.Mock
}

func (m *MockTransactionParser) Parse(wb *workbook.Workbook) ([]domain.NormalizedRecord, error) {
	args := m.Called(wb)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.NormalizedRecord), args.Error(1)
}

// MockB2BParser is a mock implementation of port.B2BParser.
type MockB2BParser struct {
	mock.Mock
}

func (m *MockB2BParser) ParseB2B(wb *workbook.Workbook) ([]domain.B2BRecord, error) {
	args := m.Called(wb)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.B2BRecord), args.Error(1)
}

// MockParserRegistry is a mock implementation of port.ParserRegistry.
type MockParserRegistry struct {
	mock.Mock
}

func (m *MockParserRegistry) NewTransactionParser(portal string) (port.TransactionParser, error) {
	args := m.Called(portal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(port.TransactionParser), args.Error(1)
}

func (m *MockParserRegistry) SupportedPortals() []string {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]string)
}
