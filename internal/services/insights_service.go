package services

import (
	"context"
	"time"

	"github.com/skillpulse/skillpulse/internal/errors"
	"github.com/skillpulse/skillpulse/internal/logger"
	"github.com/skillpulse/skillpulse/internal/models"
	"github.com/skillpulse/skillpulse/internal/report"
	"github.com/skillpulse/skillpulse/internal/repository"
	"github.com/skillpulse/skillpulse/internal/srs"
)

// InsightsService derives aggregate views from the record store: performance
// stats, the efficiency report and the downloadable workbook.
type InsightsService interface {
	PerformanceStats(ctx context.Context, userID string) (models.PerformanceStats, error)
	EfficiencyReport(ctx context.Context, userID string) (models.EfficiencyReport, error)
	ExportReport(ctx context.Context, userID string) ([]byte, error)

	// RefreshMastery rebuilds the stored category-mastery map and retention
	// rate from the record store. Runs on the worker pool after each session.
	RefreshMastery(ctx context.Context, userID string) error
}

type insightsService struct {
	records repository.MemoryRepository
	metrics repository.MetricsRepository
}

// NewInsightsService creates a new InsightsService
func NewInsightsService(records repository.MemoryRepository, metrics repository.MetricsRepository) InsightsService {
	return &insightsService{records: records, metrics: metrics}
}

func (s *insightsService) PerformanceStats(ctx context.Context, userID string) (models.PerformanceStats, error) {
	records, err := s.records.LoadRecords(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Warn("failed to load records, reporting empty history: %v", err)
		records = nil
	}
	return srs.Stats(records), nil
}

func (s *insightsService) EfficiencyReport(ctx context.Context, userID string) (models.EfficiencyReport, error) {
	log := logger.FromContext(ctx)

	records, err := s.records.LoadRecords(ctx, userID)
	if err != nil {
		log.Warn("failed to load records, reporting empty history: %v", err)
		records = nil
	}

	metrics := models.DefaultEfficiencyMetrics()
	stored, err := s.metrics.Get(ctx, userID)
	if err != nil {
		log.Warn("failed to load metrics, using defaults: %v", err)
	} else if stored != nil {
		metrics = *stored
	}

	stats := srs.Stats(records)
	return models.EfficiencyReport{
		Metrics: metrics,
		Score:   srs.Efficiency(records, stats),
	}, nil
}

func (s *insightsService) ExportReport(ctx context.Context, userID string) ([]byte, error) {
	stats, err := s.PerformanceStats(ctx, userID)
	if err != nil {
		return nil, err
	}
	eff, err := s.EfficiencyReport(ctx, userID)
	if err != nil {
		return nil, err
	}

	data, err := report.Export(userID, stats, eff, time.Now())
	if err != nil {
		logger.FromContext(ctx).Error("failed to build report workbook: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return data, nil
}

func (s *insightsService) RefreshMastery(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx).WithField("user_id", userID)

	records, err := s.records.LoadRecords(ctx, userID)
	if err != nil {
		log.Error("failed to load records for mastery refresh: %v", err)
		return err
	}

	metrics := models.DefaultEfficiencyMetrics()
	stored, err := s.metrics.Get(ctx, userID)
	if err != nil {
		log.Warn("failed to load metrics for mastery refresh, starting from defaults: %v", err)
	} else if stored != nil {
		metrics = *stored
	}

	metrics.CategoryMastery = srs.CategoryMastery(records)
	metrics.RetentionRate = srs.RetentionRate(records)

	if err := s.metrics.Save(ctx, userID, metrics); err != nil {
		log.Error("failed to save refreshed metrics: %v", err)
		return err
	}
	log.Debug("mastery refreshed: categories=%d, retention=%.2f", len(metrics.CategoryMastery), metrics.RetentionRate)
	return nil
}
