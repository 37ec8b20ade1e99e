package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/skillpulse/skillpulse/internal/models"
)

// MockMetricsRepository is a mock implementation of repository.MetricsRepository
type MockMetricsRepository struct {
	mock.Mock
}

func (m *MockMetricsRepository) Get(ctx context.Context, userID string) (*models.EfficiencyMetrics, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.EfficiencyMetrics), args.Error(1)
}

func (m *MockMetricsRepository) Save(ctx context.Context, userID string, metrics models.EfficiencyMetrics) error {
	args := m.Called(ctx, userID, metrics)
	return args.Error(0)
}
