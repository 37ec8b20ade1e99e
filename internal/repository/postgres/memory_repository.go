// Package postgres implements the repository interfaces against a remote
// Postgres database. The collection-granular write semantics are the same as
// the sqlite store; a deployment that needs concurrent writers per learner
// should move to point updates before sharing a database between sessions.
package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/skillpulse/skillpulse/internal/logger"
	"github.com/skillpulse/skillpulse/internal/models"
	"github.com/skillpulse/skillpulse/internal/repository"
	"github.com/skillpulse/skillpulse/internal/srs"
)

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var recordColumns = []string{
	"question_id", "category", "memory_strength", "repetitions", "easiness",
	"interval_days", "last_review_at", "next_review_at", "correct_streak",
	"incorrect_count", "total_attempts", "avg_response_ms", "difficulty_rating",
}

type memoryRepository struct {
	db *sql.DB
}

// NewMemoryRepository creates a postgres-backed MemoryRepository.
func NewMemoryRepository(db *sql.DB) repository.MemoryRepository {
	return &memoryRepository{db: db}
}

func (r *memoryRepository) LoadRecords(ctx context.Context, userID string) ([]models.MemoryRecord, error) {
	log := logger.FromContext(ctx).WithPrefix("memory_repo")
	log.Debug("loading records: user_id=%s", userID)

	query, args, err := sqlBuilder.
		Select(recordColumns...).
		From("memory_records").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("question_id").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query records: %v", err)
		return nil, err
	}
	defer rows.Close()

	records, err := scanRecords(rows)
	if err != nil {
		log.Error("failed to scan record rows: %v", err)
		return nil, err
	}
	return records, rows.Err()
}

func (r *memoryRepository) ReplaceRecords(ctx context.Context, userID string, records []models.MemoryRecord) error {
	log := logger.FromContext(ctx).WithPrefix("memory_repo")
	log.Debug("replacing records: user_id=%s, count=%d", userID, len(records))

	txn, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("failed to begin transaction: %v", err)
		return err
	}
	defer func() { _ = txn.Rollback() }()

	if _, err := txn.ExecContext(ctx, `DELETE FROM memory_records WHERE user_id = $1`, userID); err != nil {
		log.Error("failed to clear records: %v", err)
		return err
	}

	if len(records) > 0 {
		insert := sqlBuilder.
			Insert("memory_records").
			Columns(append([]string{"user_id"}, recordColumns...)...)
		for _, rec := range records {
			insert = insert.Values(userID, rec.QuestionID, rec.Category, rec.MemoryStrength,
				rec.Repetitions, rec.Easiness, rec.IntervalDays, rec.LastReviewAt,
				rec.NextReviewAt, rec.CorrectStreak, rec.IncorrectCount,
				rec.TotalAttempts, rec.AvgResponseMs, rec.DifficultyRating)
		}
		query, args, err := insert.ToSql()
		if err != nil {
			return err
		}
		if _, err := txn.ExecContext(ctx, query, args...); err != nil {
			log.Error("failed to insert records: %v", err)
			return err
		}
	}

	return txn.Commit()
}

func (r *memoryRepository) ListRecords(ctx context.Context, userID string, filter models.RecordFilter) ([]models.MemoryRecord, error) {
	log := logger.FromContext(ctx).WithPrefix("memory_repo")

	query := sqlBuilder.
		Select(recordColumns...).
		From("memory_records").
		Where(squirrel.Eq{"user_id": userID})

	if filter.Category != "" {
		query = query.Where(squirrel.Eq{"category": filter.Category})
	}
	if filter.MinStrength != nil {
		query = query.Where(squirrel.GtOrEq{"memory_strength": *filter.MinStrength})
	}
	if filter.MaxStrength != nil {
		query = query.Where(squirrel.LtOrEq{"memory_strength": *filter.MaxStrength})
	}
	if filter.DueOnly {
		query = query.Where(squirrel.Or{
			squirrel.LtOrEq{"next_review_at": time.Now()},
			squirrel.Lt{"memory_strength": srs.WeakThreshold},
		})
	}

	query = query.OrderBy("memory_strength ASC", "question_id ASC")
	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to list records: %v", err)
		return nil, err
	}
	defer rows.Close()

	records, err := scanRecords(rows)
	if err != nil {
		log.Error("failed to scan record rows: %v", err)
		return nil, err
	}
	return records, rows.Err()
}

func (r *memoryRepository) UserIDs(ctx context.Context) ([]string, error) {
	log := logger.FromContext(ctx).WithPrefix("memory_repo")

	rows, err := r.db.QueryContext(ctx, `SELECT DISTINCT user_id FROM memory_records ORDER BY user_id`)
	if err != nil {
		log.Error("failed to query user ids: %v", err)
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func scanRecords(rows *sql.Rows) ([]models.MemoryRecord, error) {
	var records []models.MemoryRecord
	for rows.Next() {
		var rec models.MemoryRecord
		if err := rows.Scan(&rec.QuestionID, &rec.Category, &rec.MemoryStrength, &rec.Repetitions,
			&rec.Easiness, &rec.IntervalDays, &rec.LastReviewAt, &rec.NextReviewAt,
			&rec.CorrectStreak, &rec.IncorrectCount, &rec.TotalAttempts,
			&rec.AvgResponseMs, &rec.DifficultyRating); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}
