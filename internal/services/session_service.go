package services

import (
	"context"
	"time"

	"github.com/skillpulse/skillpulse/internal/catalog"
	"github.com/skillpulse/skillpulse/internal/jobs"
	"github.com/skillpulse/skillpulse/internal/logger"
	"github.com/skillpulse/skillpulse/internal/models"
	"github.com/skillpulse/skillpulse/internal/repository"
	"github.com/skillpulse/skillpulse/internal/srs"
)

// SessionService builds session plans and records finished sessions.
type SessionService interface {
	PlanSession(ctx context.Context, userID string, pool []models.Question, sessionLength int) (models.SessionPlan, error)
	RecordSession(ctx context.Context, userID string, result models.SessionResult) (models.EfficiencyMetrics, error)
}

type sessionService struct {
	records repository.MemoryRepository
	prefs   PreferencesService
	metrics repository.MetricsRepository
	catalog catalog.Client // optional
	queue   jobs.JobQueue  // optional
}

// NewSessionService creates a new SessionService. The catalog client and job
// queue may be nil; planning then requires an inline question pool and the
// mastery refresh is skipped.
func NewSessionService(records repository.MemoryRepository, prefs PreferencesService,
	metrics repository.MetricsRepository, cat catalog.Client, queue jobs.JobQueue) SessionService {
	return &sessionService{
		records: records,
		prefs:   prefs,
		metrics: metrics,
		catalog: cat,
		queue:   queue,
	}
}

func (s *sessionService) PlanSession(ctx context.Context, userID string, pool []models.Question, sessionLength int) (models.SessionPlan, error) {
	log := logger.FromContext(ctx)

	prefs, err := s.prefs.Get(ctx, userID)
	if err != nil {
		prefs = models.DefaultPreferences()
	}
	if sessionLength <= 0 {
		sessionLength = prefs.SessionLength
	}

	if len(pool) == 0 && s.catalog != nil {
		fetched, err := s.catalog.FetchQuestions(ctx, prefs.Categories)
		if err != nil {
			log.Warn("failed to fetch catalog questions, planning without a pool: %v", err)
		} else {
			pool = fetched
		}
	}

	records, err := s.records.LoadRecords(ctx, userID)
	if err != nil {
		log.Warn("failed to load records, planning with empty history: %v", err)
		records = nil
	}

	stats := srs.Stats(records)
	efficiency := srs.Efficiency(records, stats)
	plan := srs.BuildPlan(records, pool, prefs, stats, efficiency, sessionLength, time.Now())

	log.Debug("session plan built: user_id=%s, reviews=%d, new=%d, total=%d, difficulty=%s",
		userID, len(plan.ReviewQuestions), len(plan.NewQuestions), len(plan.Questions), plan.RecommendedDifficulty)
	return plan, nil
}

func (s *sessionService) RecordSession(ctx context.Context, userID string, result models.SessionResult) (models.EfficiencyMetrics, error) {
	log := logger.FromContext(ctx)
	log.Debug("recording session: user_id=%s, duration_ms=%d, answered=%d, accuracy=%.2f",
		userID, result.DurationMs, result.QuestionsAnswered, result.Accuracy)

	metrics := s.loadMetricsSoft(ctx, userID)
	metrics = srs.ApplySession(metrics, result)

	if err := s.metrics.Save(ctx, userID, metrics); err != nil {
		log.Warn("failed to persist session metrics, continuing: %v", err)
	}

	// The mastery map and retention rate are rebuilt from the record store
	// off the request path.
	if s.queue != nil {
		if err := s.queue.EnqueueMasteryRefresh(userID); err != nil {
			log.Warn("failed to enqueue mastery refresh: %v", err)
		}
	}
	return metrics, nil
}

func (s *sessionService) loadMetricsSoft(ctx context.Context, userID string) models.EfficiencyMetrics {
	stored, err := s.metrics.Get(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Warn("failed to load metrics, using defaults: %v", err)
		return models.DefaultEfficiencyMetrics()
	}
	if stored == nil {
		return models.DefaultEfficiencyMetrics()
	}
	return *stored
}
