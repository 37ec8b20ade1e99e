package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/skillpulse/skillpulse/internal/logger"
	"github.com/skillpulse/skillpulse/internal/models"
	"github.com/skillpulse/skillpulse/internal/repository"
)

type metricsRepository struct {
	db *sql.DB
}

// NewMetricsRepository creates a sqlite-backed MetricsRepository.
func NewMetricsRepository(db *sql.DB) repository.MetricsRepository {
	return &metricsRepository{db: db}
}

func (r *metricsRepository) Get(ctx context.Context, userID string) (*models.EfficiencyMetrics, error) {
	log := logger.FromContext(ctx).WithPrefix("metrics_repo")

	var payload string
	err := r.db.QueryRowContext(ctx, `SELECT payload FROM efficiency_metrics WHERE user_id = ?`, userID).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("no metrics stored: user_id=%s", userID)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get metrics: %v", err)
		return nil, err
	}

	var metrics models.EfficiencyMetrics
	if err := json.Unmarshal([]byte(payload), &metrics); err != nil {
		log.Error("corrupt metrics payload: user_id=%s: %v", userID, err)
		return nil, err
	}
	if metrics.CategoryMastery == nil {
		metrics.CategoryMastery = map[string]float64{}
	}
	return &metrics, nil
}

func (r *metricsRepository) Save(ctx context.Context, userID string, metrics models.EfficiencyMetrics) error {
	log := logger.FromContext(ctx).WithPrefix("metrics_repo")
	log.Debug("saving metrics: user_id=%s", userID)

	payload, err := json.Marshal(metrics)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
INSERT INTO efficiency_metrics (user_id, payload) VALUES (?, ?)
ON CONFLICT (user_id) DO UPDATE SET payload = excluded.payload, updated_at = CURRENT_TIMESTAMP
`, userID, string(payload))
	if err != nil {
		log.Error("failed to save metrics: %v", err)
	}
	return err
}
