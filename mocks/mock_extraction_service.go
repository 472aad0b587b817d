package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"docuextract/internal/domain"
	"docuextract/internal/service"
)

// MockExtractionService is a mock implementation of service.ExtractionService.
type MockExtractionService struct {
	mock.Mock
}

func (m *MockExtractionService) Extract(ctx context.Context, input service.ExtractInput) (*domain.ExtractionOutcome, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExtractionOutcome), args.Error(1)
}

func (m *MockExtractionService) Status() service.Status {
	args := m.Called()
	return args.Get(0).(service.Status)
}

func (m *MockExtractionService) CredentialConfigured() bool {
	args := m.Called()
	return args.Bool(0)
}
