package services

import (
	"context"

	"github.com/skillpulse/skillpulse/internal/errors"
	"github.com/skillpulse/skillpulse/internal/logger"
	"github.com/skillpulse/skillpulse/internal/models"
	"github.com/skillpulse/skillpulse/internal/repository"
)

// PreferencesService handles the per-learner personalization config.
type PreferencesService interface {
	Get(ctx context.Context, userID string) (models.Preferences, error)
	Save(ctx context.Context, userID string, prefs models.Preferences) error
}

type preferencesService struct {
	prefs repository.PreferencesRepository
}

// NewPreferencesService creates a new PreferencesService
func NewPreferencesService(prefs repository.PreferencesRepository) PreferencesService {
	return &preferencesService{prefs: prefs}
}

// Get returns the stored config, or the defaults on first access or when the
// stored payload cannot be read.
func (s *preferencesService) Get(ctx context.Context, userID string) (models.Preferences, error) {
	log := logger.FromContext(ctx)

	stored, err := s.prefs.Get(ctx, userID)
	if err != nil {
		log.Warn("failed to load preferences, using defaults: %v", err)
		return models.DefaultPreferences(), nil
	}
	if stored == nil {
		return models.DefaultPreferences(), nil
	}
	return *stored, nil
}

// Save validates and fully overwrites the stored config.
func (s *preferencesService) Save(ctx context.Context, userID string, prefs models.Preferences) error {
	log := logger.FromContext(ctx)

	switch prefs.FocusMode {
	case models.FocusReview, models.FocusNew, models.FocusMixed:
	default:
		return errors.NewValidationError("focus_mode", "must be review, new or mixed")
	}
	switch prefs.ReviewPriority {
	case models.PriorityMemoryStrength, models.PriorityTimeSinceReview, models.PriorityErrorRate:
	default:
		return errors.NewValidationError("review_priority", "must be memory_strength, time_since_review or error_rate")
	}
	if prefs.SessionLength <= 0 {
		return errors.NewValidationError("session_length", "must be positive")
	}

	if err := s.prefs.Save(ctx, userID, prefs); err != nil {
		log.Error("failed to save preferences: %v", err)
		return errors.NewInternalError(err)
	}
	log.Debug("preferences saved: user_id=%s", userID)
	return nil
}
