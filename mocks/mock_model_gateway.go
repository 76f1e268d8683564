package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockModelGateway is a mock implementation of port.ModelGateway.
type MockModelGateway struct {
	mock.Mock
}

func (m *MockModelGateway) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

func (m *MockModelGateway) Model() string {
	args := m.Called()
	return args.String(0)
}
