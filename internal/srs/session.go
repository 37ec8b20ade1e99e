package srs

import "github.com/skillpulse/skillpulse/internal/models"

// Bounds for the adaptive optimal session length.
const (
	minSessionLength = 5
	maxSessionLength = 20
)

// ApplySession folds one finished session into the learner's efficiency
// metrics. Velocity and focus span are smoothed by averaging with the
// previous value rather than a true moving window.
//
// TimeOfDay is accepted but BestTimeOfDay is not yet derived from it; the
// field is carried for the dashboard schema until time-of-day bucketing is
// implemented.
func ApplySession(m models.EfficiencyMetrics, res models.SessionResult) models.EfficiencyMetrics {
	minutes := float64(res.DurationMs) / 60000

	if minutes > 0 {
		rate := float64(res.QuestionsAnswered) / minutes
		m.LearningVelocity = (m.LearningVelocity + rate) / 2
		m.AverageFocusSpanMin = (m.AverageFocusSpanMin + minutes) / 2
	}

	switch {
	case res.Accuracy > 0.8:
		if m.OptimalSessionLength < maxSessionLength {
			m.OptimalSessionLength++
		}
	case res.Accuracy < 0.6:
		if m.OptimalSessionLength > minSessionLength {
			m.OptimalSessionLength--
		}
	}
	return m
}
