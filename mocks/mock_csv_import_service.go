package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"bloom/internal/domain"
	"bloom/internal/service"
)

// MockCSVImportService is a mock implementation of service.CSVImportService.
type MockCSVImportService struct {
	mock.Mock
}

func (m *MockCSVImportService) Import(ctx context.Context, input service.UploadInput) (*domain.ImportResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ImportResult), args.Error(1)
}
