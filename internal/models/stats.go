package models

// CategoryStat aggregates attempts within one category.
type CategoryStat struct {
	Attempts int     `json:"attempts"`
	Correct  int     `json:"correct"`
	Accuracy float64 `json:"accuracy"`
}

// PerformanceStats is the pooled view over a learner's record store.
// AverageAccuracy weights repeated questions by attempt count;
// AverageResponseMs is the unweighted mean of each record's running average.
type PerformanceStats struct {
	AverageAccuracy   float64                 `json:"average_accuracy"`
	AverageResponseMs float64                 `json:"average_response_ms"`
	TotalQuestions    int                     `json:"total_questions"`
	CategoryStats     map[string]CategoryStat `json:"category_stats"`
}

// EfficiencyReport pairs stored metrics with the composite efficiency score.
type EfficiencyReport struct {
	Metrics EfficiencyMetrics `json:"metrics"`
	Score   float64           `json:"score"`
}
