package mocks

import (
	"github.com/stretchr/testify/mock"

	"bloom/internal/domain"
)

// MockTextExtractor is a mock implementation of port.TextExtractor.
type MockTextExtractor struct {
	mock.Mock
}

func (m *MockTextExtractor) Extract(data []byte, filename string) (string, error) {
	args := m.Called(data, filename)
	return args.String(0), args.Error(1)
}

func (m *MockTextExtractor) ReadRows(data []byte) ([]string, []domain.RawRow, error) {
	args := m.Called(data)
	var header []string
	if h := args.Get(0); h != nil {
		header = h.([]string)
	}
	var rows []domain.RawRow
	if r := args.Get(1); r != nil {
		rows = r.([]domain.RawRow)
	}
	return header, rows, args.Error(2)
}
