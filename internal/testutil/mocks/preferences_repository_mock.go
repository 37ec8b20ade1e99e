package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/skillpulse/skillpulse/internal/models"
)

// MockPreferencesRepository is a mock implementation of repository.PreferencesRepository
type MockPreferencesRepository struct {
	mock.Mock
}

func (m *MockPreferencesRepository) Get(ctx context.Context, userID string) (*models.Preferences, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Preferences), args.Error(1)
}

func (m *MockPreferencesRepository) Save(ctx context.Context, userID string, prefs models.Preferences) error {
	args := m.Called(ctx, userID, prefs)
	return args.Error(0)
}
