package report_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/skillpulse/skillpulse/internal/models"
	"github.com/skillpulse/skillpulse/internal/report"
)

func TestExport(t *testing.T) {
	stats := models.PerformanceStats{
		AverageAccuracy:   0.75,
		AverageResponseMs: 1800,
		TotalQuestions:    12,
		CategoryStats: map[string]models.CategoryStat{
			"finance": {Attempts: 10, Correct: 8, Accuracy: 0.8},
			"ops":     {Attempts: 5, Correct: 3, Accuracy: 0.6},
		},
	}
	eff := models.EfficiencyReport{
		Metrics: models.EfficiencyMetrics{
			OptimalSessionLength: 12,
			LearningVelocity:     1.4,
			RetentionRate:        0.6,
			CategoryMastery:      map[string]float64{"finance": 0.72, "ops": 0.41},
		},
		Score: 0.68,
	}

	data, err := report.Export("user-1", stats, eff, time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"Overview", "Categories"}, f.GetSheetList())

	learner, err := f.GetCellValue("Overview", "B1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", learner)

	// Categories are listed alphabetically.
	first, err := f.GetCellValue("Categories", "A2")
	require.NoError(t, err)
	assert.Equal(t, "finance", first)
	second, err := f.GetCellValue("Categories", "A3")
	require.NoError(t, err)
	assert.Equal(t, "ops", second)
}

func TestExport_NoCategories(t *testing.T) {
	data, err := report.Export("user-2", models.PerformanceStats{AverageAccuracy: 0.5}, models.EfficiencyReport{}, time.Now())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Categories")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
