package services

import (
	"context"
	"time"

	"github.com/skillpulse/skillpulse/internal/errors"
	"github.com/skillpulse/skillpulse/internal/logger"
	"github.com/skillpulse/skillpulse/internal/models"
	"github.com/skillpulse/skillpulse/internal/repository"
	"github.com/skillpulse/skillpulse/internal/srs"
)

// MemoryService owns per-learner memory records: folding in attempts and
// scheduling reviews.
//
// Storage failures never surface to the caller on the attempt/review paths:
// a failed read degrades to an empty history and a failed write keeps the
// correctly computed in-memory result. The worst case for the learner is a
// reset-looking personalization state, never a blocked session.
type MemoryService interface {
	RecordAttempt(ctx context.Context, userID string, att srs.Attempt) (models.MemoryRecord, error)
	QuestionsForReview(ctx context.Context, userID string, limit int) ([]models.MemoryRecord, error)
	ListRecords(ctx context.Context, userID string, filter models.RecordFilter) ([]models.MemoryRecord, error)
	DueCounts(ctx context.Context) (map[string]int, error)
}

type memoryService struct {
	records repository.MemoryRepository
}

// NewMemoryService creates a new MemoryService
func NewMemoryService(records repository.MemoryRepository) MemoryService {
	return &memoryService{records: records}
}

func (s *memoryService) RecordAttempt(ctx context.Context, userID string, att srs.Attempt) (models.MemoryRecord, error) {
	log := logger.FromContext(ctx)
	log.Debug("recording attempt: user_id=%s, question_id=%s, correct=%v", userID, att.QuestionID, att.Correct)

	if att.QuestionID == "" {
		return models.MemoryRecord{}, errors.NewValidationError("question_id", "cannot be empty")
	}

	now := time.Now()
	records := s.loadSoft(ctx, userID)

	idx := -1
	for i, rec := range records {
		if rec.QuestionID == att.QuestionID {
			idx = i
			break
		}
	}

	var updated models.MemoryRecord
	if idx < 0 {
		updated = srs.NewRecord(att, now)
		records = append(records, updated)
		log.Debug("created memory record: question_id=%s, strength=%.2f", att.QuestionID, updated.MemoryStrength)
	} else {
		updated = srs.Apply(records[idx], att, now)
		records[idx] = updated
		log.Debug("updated memory record: question_id=%s, strength=%.2f, interval=%d days",
			att.QuestionID, updated.MemoryStrength, updated.IntervalDays)
	}

	// Whole-collection write. A failure here is logged and swallowed: the
	// update was computed correctly even if it could not be made durable.
	if err := s.records.ReplaceRecords(ctx, userID, records); err != nil {
		log.Warn("failed to persist records, continuing: %v", err)
	}
	return updated, nil
}

func (s *memoryService) QuestionsForReview(ctx context.Context, userID string, limit int) ([]models.MemoryRecord, error) {
	log := logger.FromContext(ctx)
	log.Debug("selecting reviews: user_id=%s, limit=%d", userID, limit)

	records := s.loadSoft(ctx, userID)
	due := srs.DueRecords(records, time.Now(), limit)
	log.Debug("%d of %d records due for review", len(due), len(records))
	return due, nil
}

func (s *memoryService) ListRecords(ctx context.Context, userID string, filter models.RecordFilter) ([]models.MemoryRecord, error) {
	records, err := s.records.ListRecords(ctx, userID, filter)
	if err != nil {
		logger.FromContext(ctx).Error("failed to list records: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return records, nil
}

func (s *memoryService) DueCounts(ctx context.Context) (map[string]int, error) {
	log := logger.FromContext(ctx)

	ids, err := s.records.UserIDs(ctx)
	if err != nil {
		log.Error("failed to list users: %v", err)
		return nil, errors.NewInternalError(err)
	}

	now := time.Now()
	counts := make(map[string]int, len(ids))
	for _, id := range ids {
		records, err := s.records.LoadRecords(ctx, id)
		if err != nil {
			log.Warn("skipping user %s in digest: %v", id, err)
			continue
		}
		if due := srs.DueRecords(records, now, -1); len(due) > 0 {
			counts[id] = len(due)
		}
	}
	return counts, nil
}

// loadSoft reads the full record collection, degrading to an empty history
// on storage failure.
func (s *memoryService) loadSoft(ctx context.Context, userID string) []models.MemoryRecord {
	records, err := s.records.LoadRecords(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Warn("failed to load records, treating as empty history: %v", err)
		return nil
	}
	return records
}
