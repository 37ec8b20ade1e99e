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

type preferencesRepository struct {
	db *sql.DB
}

// NewPreferencesRepository creates a sqlite-backed PreferencesRepository.
func NewPreferencesRepository(db *sql.DB) repository.PreferencesRepository {
	return &preferencesRepository{db: db}
}

func (r *preferencesRepository) Get(ctx context.Context, userID string) (*models.Preferences, error) {
	log := logger.FromContext(ctx).WithPrefix("prefs_repo")

	var payload string
	err := r.db.QueryRowContext(ctx, `SELECT payload FROM preferences WHERE user_id = ?`, userID).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("no preferences stored: user_id=%s", userID)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get preferences: %v", err)
		return nil, err
	}

	var prefs models.Preferences
	if err := json.Unmarshal([]byte(payload), &prefs); err != nil {
		log.Error("corrupt preferences payload: user_id=%s: %v", userID, err)
		return nil, err
	}
	return &prefs, nil
}

func (r *preferencesRepository) Save(ctx context.Context, userID string, prefs models.Preferences) error {
	log := logger.FromContext(ctx).WithPrefix("prefs_repo")
	log.Debug("saving preferences: user_id=%s", userID)

	payload, err := json.Marshal(prefs)
	if err != nil {
		return err
	}
	// Full overwrite; callers must read-modify-write.
	_, err = r.db.ExecContext(ctx, `
INSERT INTO preferences (user_id, payload) VALUES (?, ?)
ON CONFLICT (user_id) DO UPDATE SET payload = excluded.payload, updated_at = CURRENT_TIMESTAMP
`, userID, string(payload))
	if err != nil {
		log.Error("failed to save preferences: %v", err)
	}
	return err
}
