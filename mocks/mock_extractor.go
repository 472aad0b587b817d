package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"docuextract/internal/domain"
)

// MockExtractor is a mock implementation of port.Extractor.
type MockExtractor struct {
	mock.Mock
}

func (m *MockExtractor) Send(ctx context.Context, req domain.ExtractionRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *MockExtractor) CredentialConfigured() bool {
	args := m.Called()
	return args.Bool(0)
}
