package srs

import (
	"math"
	"time"

	"github.com/skillpulse/skillpulse/internal/models"
)

// SM-2 family constants.
const (
	MinEasiness     = 1.3
	InitialEasiness = 2.5

	// Quality at or above this is treated as "remembered".
	passThreshold = 3
)

// Attempt is one answer to one question.
type Attempt struct {
	QuestionID       string
	Category         string
	Correct          bool
	ResponseTimeMs   float64
	DifficultyRating float64
}

// Quality derives an SM-2 quality score from the attempt outcome. A correct
// answer never scores below 3, so correctness alone counts as remembered; the
// difficulty rating only modulates how strongly. Incorrect is always 0.
func Quality(correct bool, difficultyRating float64) int {
	if !correct {
		return 0
	}
	q := 5 - int(math.Round(difficultyRating))
	if q < passThreshold {
		q = passThreshold
	}
	return q
}

// NewRecord builds the memory record created lazily on the first attempt at a
// question. The initial strength reflects only whether the first answer was
// correct.
func NewRecord(att Attempt, now time.Time) models.MemoryRecord {
	rec := models.MemoryRecord{
		QuestionID:       att.QuestionID,
		Category:         att.Category,
		MemoryStrength:   0.3,
		Repetitions:      1,
		Easiness:         InitialEasiness,
		IntervalDays:     1,
		LastReviewAt:     now,
		NextReviewAt:     now.AddDate(0, 0, 1),
		TotalAttempts:    1,
		AvgResponseMs:    att.ResponseTimeMs,
		DifficultyRating: att.DifficultyRating,
	}
	if att.Correct {
		rec.MemoryStrength = 0.7
		rec.CorrectStreak = 1
	} else {
		rec.IncorrectCount = 1
	}
	return rec
}

// Apply folds one attempt into an existing record.
//
// Remembered attempts (quality >= 3) grow the interval on the usual SM-2
// three-tier schedule and nudge strength toward 1. Forgotten attempts reset
// the streak and interval and drop strength by 0.3; repetitions and easiness
// are left untouched so the growth curve resumes where it was.
//
// All numeric edge cases are absorbed by clamping rather than rejected, so a
// malformed attempt can never fail an update.
func Apply(rec models.MemoryRecord, att Attempt, now time.Time) models.MemoryRecord {
	q := Quality(att.Correct, att.DifficultyRating)

	if q >= passThreshold {
		rec.CorrectStreak++
		rec.Repetitions++
		switch rec.Repetitions {
		case 1:
			rec.IntervalDays = 1
		case 2:
			rec.IntervalDays = 6
		default:
			rec.IntervalDays = int(math.Round(float64(rec.IntervalDays) * rec.Easiness))
		}
		miss := float64(5 - q)
		rec.Easiness = math.Max(MinEasiness, rec.Easiness+(0.1-miss*(0.08+miss*0.02)))
		rec.MemoryStrength = math.Min(1.0, rec.MemoryStrength+0.2*float64(q)/5)
	} else {
		rec.CorrectStreak = 0
		rec.IncorrectCount++
		rec.IntervalDays = 1
		rec.MemoryStrength = math.Max(0.0, rec.MemoryStrength-0.3)
	}

	if rec.IntervalDays < 1 {
		rec.IntervalDays = 1
	}

	rec.TotalAttempts++
	n := float64(rec.TotalAttempts)
	rec.AvgResponseMs += (att.ResponseTimeMs - rec.AvgResponseMs) / n
	rec.DifficultyRating += (att.DifficultyRating - rec.DifficultyRating) / n
	rec.LastReviewAt = now
	rec.NextReviewAt = now.AddDate(0, 0, rec.IntervalDays)
	return rec
}
