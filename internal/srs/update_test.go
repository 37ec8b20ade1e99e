package srs_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/skillpulse/skillpulse/internal/srs"
)

func TestQuality(t *testing.T) {
	tests := []struct {
		name       string
		correct    bool
		difficulty float64
		expected   int
	}{
		{"incorrect is always zero", false, 1, 0},
		{"incorrect ignores difficulty", false, 5, 0},
		{"correct easy question", true, 1, 4},
		{"correct trivial question", true, 0, 5},
		{"correct default difficulty floors at 3", true, 3, 3},
		{"correct hard question floors at 3", true, 5, 3},
		{"out-of-range difficulty still floors at 3", true, 9, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, srs.Quality(tt.correct, tt.difficulty))
		})
	}
}

func TestNewRecord_FirstCorrectAttempt(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	rec := srs.NewRecord(srs.Attempt{
		QuestionID:       "q1",
		Category:         "negotiation",
		Correct:          true,
		ResponseTimeMs:   2000,
		DifficultyRating: 3,
	}, now)

	assert.Equal(t, "q1", rec.QuestionID)
	assert.Equal(t, 0.7, rec.MemoryStrength)
	assert.Equal(t, 1, rec.Repetitions)
	assert.Equal(t, 2.5, rec.Easiness)
	assert.Equal(t, 1, rec.IntervalDays)
	assert.Equal(t, 1, rec.CorrectStreak)
	assert.Equal(t, 0, rec.IncorrectCount)
	assert.Equal(t, 1, rec.TotalAttempts)
	assert.Equal(t, 2000.0, rec.AvgResponseMs)
	assert.Equal(t, now, rec.LastReviewAt)
	assert.Equal(t, now.AddDate(0, 0, 1), rec.NextReviewAt)
}

func TestNewRecord_FirstIncorrectAttempt(t *testing.T) {
	now := time.Now()
	rec := srs.NewRecord(srs.Attempt{QuestionID: "q1", Correct: false, ResponseTimeMs: 5000, DifficultyRating: 4}, now)

	assert.Equal(t, 0.3, rec.MemoryStrength)
	assert.Equal(t, 1, rec.Repetitions)
	assert.Equal(t, 0, rec.CorrectStreak)
	assert.Equal(t, 1, rec.IncorrectCount)
	assert.Equal(t, 1, rec.TotalAttempts)
}

func TestApply_SecondCorrectAttempt(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	first := srs.NewRecord(srs.Attempt{QuestionID: "q1", Correct: true, ResponseTimeMs: 2000, DifficultyRating: 3}, now)

	later := now.AddDate(0, 0, 1)
	second := srs.Apply(first, srs.Attempt{QuestionID: "q1", Correct: true, ResponseTimeMs: 1000, DifficultyRating: 3}, later)

	// quality = max(3, 5-3) = 3, so this is still the remembered branch.
	assert.Equal(t, 2, second.Repetitions)
	assert.Equal(t, 6, second.IntervalDays, "second successful repetition jumps to 6 days")
	assert.Equal(t, 2, second.CorrectStreak)
	assert.Equal(t, 2, second.TotalAttempts)
	assert.Greater(t, second.MemoryStrength, first.MemoryStrength)
	assert.Equal(t, later.AddDate(0, 0, 6), second.NextReviewAt)
	assert.InDelta(t, 1500, second.AvgResponseMs, 1e-9, "running mean of 2000 and 1000")
}

func TestApply_IncorrectResetsStreakAndInterval(t *testing.T) {
	now := time.Now()
	rec := srs.NewRecord(srs.Attempt{QuestionID: "q1", Correct: true, ResponseTimeMs: 2000, DifficultyRating: 3}, now)
	rec = srs.Apply(rec, srs.Attempt{QuestionID: "q1", Correct: true, ResponseTimeMs: 2000, DifficultyRating: 3}, now)

	easeBefore := rec.Easiness
	repsBefore := rec.Repetitions
	strengthBefore := rec.MemoryStrength

	rec = srs.Apply(rec, srs.Attempt{QuestionID: "q1", Correct: false, ResponseTimeMs: 9000, DifficultyRating: 3}, now)

	assert.Equal(t, 0, rec.CorrectStreak)
	assert.Equal(t, 1, rec.IntervalDays, "interval hard-resets on a miss")
	assert.Equal(t, 1, rec.IncorrectCount)
	assert.Equal(t, 3, rec.TotalAttempts)
	assert.Equal(t, repsBefore, rec.Repetitions, "repetitions untouched by a miss")
	assert.Equal(t, easeBefore, rec.Easiness, "easiness untouched by a miss")
	assert.InDelta(t, strengthBefore-0.3, rec.MemoryStrength, 1e-9)
}

func TestApply_IntervalGrowsWithEasiness(t *testing.T) {
	now := time.Now()
	att := srs.Attempt{QuestionID: "q1", Correct: true, ResponseTimeMs: 1000, DifficultyRating: 1}

	rec := srs.NewRecord(att, now)
	rec = srs.Apply(rec, att, now) // repetitions=2, interval=6
	rec = srs.Apply(rec, att, now) // repetitions=3, interval=round(6*easiness)

	assert.Equal(t, 3, rec.Repetitions)
	assert.Greater(t, rec.IntervalDays, 6)
}

func TestApply_Invariants(t *testing.T) {
	now := time.Now()
	attempts := []srs.Attempt{
		{QuestionID: "q1", Correct: false, ResponseTimeMs: -50, DifficultyRating: 5},
		{QuestionID: "q1", Correct: false, ResponseTimeMs: 0, DifficultyRating: -2},
		{QuestionID: "q1", Correct: true, ResponseTimeMs: 1e9, DifficultyRating: 9},
		{QuestionID: "q1", Correct: false, ResponseTimeMs: 100, DifficultyRating: 5},
		{QuestionID: "q1", Correct: false, ResponseTimeMs: 100, DifficultyRating: 5},
		{QuestionID: "q1", Correct: false, ResponseTimeMs: 100, DifficultyRating: 5},
		{QuestionID: "q1", Correct: true, ResponseTimeMs: 100, DifficultyRating: 0},
		{QuestionID: "q1", Correct: true, ResponseTimeMs: 100, DifficultyRating: 0},
	}

	rec := srs.NewRecord(attempts[0], now)
	incorrect := rec.IncorrectCount
	for i, att := range attempts[1:] {
		rec = srs.Apply(rec, att, now)
		require.GreaterOrEqual(t, rec.MemoryStrength, 0.0, "attempt %d", i)
		require.LessOrEqual(t, rec.MemoryStrength, 1.0, "attempt %d", i)
		require.GreaterOrEqual(t, rec.Easiness, srs.MinEasiness, "attempt %d", i)
		require.GreaterOrEqual(t, rec.IntervalDays, 1, "attempt %d", i)
		if !att.Correct {
			incorrect++
		}
	}

	assert.Equal(t, len(attempts), rec.TotalAttempts, "one attempt counted per update")
	assert.Equal(t, incorrect, rec.IncorrectCount)
}

func TestApply_EasinessFloor(t *testing.T) {
	now := time.Now()
	rec := srs.NewRecord(srs.Attempt{QuestionID: "q1", Correct: true, DifficultyRating: 3}, now)
	rec.Easiness = srs.MinEasiness

	// Repeated minimum-quality passes keep nudging easiness down; the floor
	// must hold.
	for i := 0; i < 10; i++ {
		rec = srs.Apply(rec, srs.Attempt{QuestionID: "q1", Correct: true, DifficultyRating: 5}, now)
		assert.GreaterOrEqual(t, rec.Easiness, srs.MinEasiness)
	}
}

func TestApply_StrengthFloorAndCeiling(t *testing.T) {
	now := time.Now()
	rec := srs.NewRecord(srs.Attempt{QuestionID: "q1", Correct: false, DifficultyRating: 3}, now)

	for i := 0; i < 5; i++ {
		rec = srs.Apply(rec, srs.Attempt{QuestionID: "q1", Correct: false, DifficultyRating: 3}, now)
	}
	assert.Equal(t, 0.0, rec.MemoryStrength, "strength floors at 0")

	for i := 0; i < 30; i++ {
		rec = srs.Apply(rec, srs.Attempt{QuestionID: "q1", Correct: true, DifficultyRating: 0}, now)
	}
	assert.Equal(t, 1.0, rec.MemoryStrength, "strength caps at 1")
}
