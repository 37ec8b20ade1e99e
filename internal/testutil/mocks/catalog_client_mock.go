package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/skillpulse/skillpulse/internal/models"
)

// MockCatalogClient is a mock implementation of catalog.Client
type MockCatalogClient struct {
	mock.Mock
}

func (m *MockCatalogClient) FetchQuestions(ctx context.Context, categories []string) ([]models.Question, error) {
	args := m.Called(ctx, categories)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Question), args.Error(1)
}
