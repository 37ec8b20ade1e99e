package models

import "time"

// MemoryRecord tracks retention of a single question for one learner.
type MemoryRecord struct {
	QuestionID       string    `json:"question_id"`
	Category         string    `json:"category"`
	MemoryStrength   float64   `json:"memory_strength"`
	Repetitions      int       `json:"repetitions"`
	Easiness         float64   `json:"easiness"`
	IntervalDays     int       `json:"interval_days"`
	LastReviewAt     time.Time `json:"last_review_at"`
	NextReviewAt     time.Time `json:"next_review_at"`
	CorrectStreak    int       `json:"correct_streak"`
	IncorrectCount   int       `json:"incorrect_count"`
	TotalAttempts    int       `json:"total_attempts"`
	AvgResponseMs    float64   `json:"avg_response_ms"`
	DifficultyRating float64   `json:"difficulty_rating"`
}

// Due reports whether the record is scheduled for review at the given time.
func (r MemoryRecord) Due(now time.Time) bool {
	return !r.NextReviewAt.After(now)
}

// RecordFilter narrows admin record listings.
type RecordFilter struct {
	Category    string
	MinStrength *float64
	MaxStrength *float64
	DueOnly     bool
	Limit       int
}
