package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/skillpulse/skillpulse/internal/models"
)

// MockMemoryRepository is a mock implementation of repository.MemoryRepository
type MockMemoryRepository struct {
	mock.Mock
}

func (m *MockMemoryRepository) LoadRecords(ctx context.Context, userID string) ([]models.MemoryRecord, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MemoryRecord), args.Error(1)
}

func (m *MockMemoryRepository) ReplaceRecords(ctx context.Context, userID string, records []models.MemoryRecord) error {
	args := m.Called(ctx, userID, records)
	return args.Error(0)
}

func (m *MockMemoryRepository) ListRecords(ctx context.Context, userID string, filter models.RecordFilter) ([]models.MemoryRecord, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MemoryRecord), args.Error(1)
}

func (m *MockMemoryRepository) UserIDs(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
