package srs

import (
	"math"
	"time"

	"github.com/skillpulse/skillpulse/internal/models"
)

// Share of a session reserved for reviews vs. unseen questions.
const (
	reviewShare = 0.6
	newShare    = 0.4
)

// RecommendDifficulty maps pooled accuracy to a difficulty band.
func RecommendDifficulty(accuracy float64) string {
	switch {
	case accuracy > 0.8:
		return "hard"
	case accuracy < 0.6:
		return "easy"
	default:
		return "medium"
	}
}

// BuildPlan assembles the question list for one session: due reviews first,
// then unseen questions, truncated to sessionLength. Ordering is fully
// deterministic given the same inputs and clock; no shuffling anywhere.
//
// The category allow-list is applied only to the pool used to match review
// records back to question objects. Unseen questions are picked from the
// unfiltered pool. The asymmetry is intentional and load-bearing for callers
// that rely on new questions surfacing outside the allow-list.
func BuildPlan(records []models.MemoryRecord, pool []models.Question, prefs models.Preferences,
	stats models.PerformanceStats, efficiency float64, sessionLength int, now time.Time) models.SessionPlan {

	reviewLimit := int(float64(sessionLength) * reviewShare)
	newLimit := int(math.Ceil(float64(sessionLength) * newShare))

	var reviews []models.MemoryRecord
	if prefs.SpacedRepetition && prefs.FocusMode != models.FocusNew {
		reviews = DueRecords(records, now, reviewLimit)
	}

	seen := make(map[string]bool, len(records))
	for _, r := range records {
		seen[r.QuestionID] = true
	}

	var newQuestions []models.Question
	if prefs.FocusMode != models.FocusReview {
		for _, q := range pool {
			if len(newQuestions) >= newLimit {
				break
			}
			if !seen[q.ID] {
				newQuestions = append(newQuestions, q)
			}
		}
	}

	matchPool := pool
	if len(prefs.Categories) > 0 {
		allowed := make(map[string]bool, len(prefs.Categories))
		for _, cat := range prefs.Categories {
			allowed[cat] = true
		}
		matchPool = nil
		for _, q := range pool {
			if allowed[q.Category] {
				matchPool = append(matchPool, q)
			}
		}
	}

	byID := make(map[string]models.Question, len(matchPool))
	for _, q := range matchPool {
		byID[q.ID] = q
	}
	var reviewQuestions []models.Question
	for _, r := range reviews {
		if q, ok := byID[r.QuestionID]; ok {
			reviewQuestions = append(reviewQuestions, q)
		}
	}

	questions := make([]models.Question, 0, len(reviewQuestions)+len(newQuestions))
	questions = append(questions, reviewQuestions...)
	questions = append(questions, newQuestions...)
	if len(questions) > sessionLength {
		questions = questions[:sessionLength]
	}

	recommended := RecommendDifficulty(stats.AverageAccuracy)
	if !prefs.AdaptiveDifficulty && prefs.Difficulty != "" {
		recommended = prefs.Difficulty
	}

	return models.SessionPlan{
		Questions:             questions,
		ReviewQuestions:       reviewQuestions,
		NewQuestions:          newQuestions,
		RecommendedDifficulty: recommended,
		LearningEfficiency:    efficiency,
	}
}
