package repository

import (
	"context"

	"github.com/skillpulse/skillpulse/internal/models"
)

// MemoryRepository persists per-learner memory record collections.
//
// The write unit is the whole collection: ReplaceRecords swaps every record a
// learner has in one transaction. Concurrent writers race at collection
// granularity (last write wins), matching the single-writer deployment model.
type MemoryRepository interface {
	LoadRecords(ctx context.Context, userID string) ([]models.MemoryRecord, error)
	ReplaceRecords(ctx context.Context, userID string, records []models.MemoryRecord) error
	ListRecords(ctx context.Context, userID string, filter models.RecordFilter) ([]models.MemoryRecord, error)
	UserIDs(ctx context.Context) ([]string, error)
}

// PreferencesRepository persists per-learner personalization config.
// Get returns nil (not an error) when the learner has no saved config.
type PreferencesRepository interface {
	Get(ctx context.Context, userID string) (*models.Preferences, error)
	Save(ctx context.Context, userID string, prefs models.Preferences) error
}

// MetricsRepository persists per-learner efficiency metrics.
// Get returns nil (not an error) when the learner has no saved metrics.
type MetricsRepository interface {
	Get(ctx context.Context, userID string) (*models.EfficiencyMetrics, error)
	Save(ctx context.Context, userID string, metrics models.EfficiencyMetrics) error
}
