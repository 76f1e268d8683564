package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"bloom/internal/domain"
)

// MockHealthScoreService is a mock implementation of service.HealthScoreService.
type MockHealthScoreService struct {
	mock.Mock
}

func (m *MockHealthScoreService) Calculate(ctx context.Context, financialData string) (*domain.HealthScoreResult, error) {
	args := m.Called(ctx, financialData)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HealthScoreResult), args.Error(1)
}
