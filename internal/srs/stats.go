package srs

import "github.com/skillpulse/skillpulse/internal/models"

// Thresholds for the composite efficiency score.
const (
	retainedThreshold = 0.7
	matureRepetitions = 2
)

// Stats pools a learner's record store into overall performance numbers.
// With no records it returns a neutral 0.5 accuracy prior so new learners are
// not steered to the easiest difficulty on their first session.
func Stats(records []models.MemoryRecord) models.PerformanceStats {
	stats := models.PerformanceStats{
		CategoryStats: map[string]models.CategoryStat{},
	}
	if len(records) == 0 {
		stats.AverageAccuracy = 0.5
		return stats
	}

	var attempts, correct int
	var responseSum float64
	for _, r := range records {
		recCorrect := r.TotalAttempts - r.IncorrectCount
		attempts += r.TotalAttempts
		correct += recCorrect
		responseSum += r.AvgResponseMs

		c := stats.CategoryStats[r.Category]
		c.Attempts += r.TotalAttempts
		c.Correct += recCorrect
		stats.CategoryStats[r.Category] = c
	}
	for cat, c := range stats.CategoryStats {
		if c.Attempts > 0 {
			c.Accuracy = float64(c.Correct) / float64(c.Attempts)
			stats.CategoryStats[cat] = c
		}
	}

	if attempts > 0 {
		stats.AverageAccuracy = float64(correct) / float64(attempts)
	}
	// Mean of per-record running means, not a grand mean over raw attempts.
	stats.AverageResponseMs = responseSum / float64(len(records))
	stats.TotalQuestions = len(records)
	return stats
}

// Efficiency computes the composite learning-efficiency score:
// 40% retention, 30% spaced-repetition effectiveness, 30% pooled accuracy.
// Returns 0.5 for an empty store.
func Efficiency(records []models.MemoryRecord, stats models.PerformanceStats) float64 {
	if len(records) == 0 {
		return 0.5
	}

	retained := 0
	var matureSum float64
	mature := 0
	for _, r := range records {
		if r.MemoryStrength > retainedThreshold {
			retained++
		}
		if r.Repetitions > matureRepetitions {
			matureSum += r.MemoryStrength
			mature++
		}
	}

	retention := float64(retained) / float64(len(records))
	effectiveness := 0.5
	if mature > 0 {
		effectiveness = matureSum / float64(mature)
	}

	score := 0.4*retention + 0.3*effectiveness + 0.3*stats.AverageAccuracy
	return clamp01(score)
}

// RetentionRate is the share of records currently above the retained
// threshold.
func RetentionRate(records []models.MemoryRecord) float64 {
	if len(records) == 0 {
		return 0
	}
	retained := 0
	for _, r := range records {
		if r.MemoryStrength > retainedThreshold {
			retained++
		}
	}
	return float64(retained) / float64(len(records))
}

// CategoryMastery is the mean memory strength per category.
func CategoryMastery(records []models.MemoryRecord) map[string]float64 {
	sums := map[string]float64{}
	counts := map[string]int{}
	for _, r := range records {
		sums[r.Category] += r.MemoryStrength
		counts[r.Category]++
	}
	mastery := make(map[string]float64, len(sums))
	for cat, sum := range sums {
		mastery[cat] = sum / float64(counts[cat])
	}
	return mastery
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
