package models

// EfficiencyMetrics summarizes how effectively a learner studies. Updated
// after each session; the per-category mastery map and retention rate are
// rebuilt from the record store by a background refresh.
type EfficiencyMetrics struct {
	OptimalSessionLength int                `json:"optimal_session_length"`
	BestTimeOfDay        string             `json:"best_time_of_day"`
	AverageFocusSpanMin  float64            `json:"average_focus_span_min"`
	CategoryMastery      map[string]float64 `json:"category_mastery"`
	LearningVelocity     float64            `json:"learning_velocity"`
	RetentionRate        float64            `json:"retention_rate"`
}

// DefaultEfficiencyMetrics returns the metrics assigned on first access.
func DefaultEfficiencyMetrics() EfficiencyMetrics {
	return EfficiencyMetrics{
		OptimalSessionLength: 10,
		CategoryMastery:      map[string]float64{},
	}
}

// SessionResult is the outcome of one finished study session.
type SessionResult struct {
	DurationMs        int     `json:"duration_ms"`
	QuestionsAnswered int     `json:"questions_answered"`
	Accuracy          float64 `json:"accuracy"`
	TimeOfDay         string  `json:"time_of_day"`
}
