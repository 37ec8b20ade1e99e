package report

import (
	"bytes"
	"fmt"
	"sort"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/skillpulse/skillpulse/internal/models"
)

// Export renders a learner's performance into an xlsx workbook with an
// Overview sheet and a per-category breakdown.
func Export(userID string, stats models.PerformanceStats, report models.EfficiencyReport, generatedAt time.Time) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const overview = "Overview"
	if err := f.SetSheetName("Sheet1", overview); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}

	rows := [][]interface{}{
		{"Learner", userID},
		{"Generated", generatedAt.Format(time.RFC3339)},
		{},
		{"Questions tracked", stats.TotalQuestions},
		{"Average accuracy", stats.AverageAccuracy},
		{"Average response (ms)", stats.AverageResponseMs},
		{"Learning efficiency", report.Score},
		{"Retention rate", report.Metrics.RetentionRate},
		{"Learning velocity", report.Metrics.LearningVelocity},
		{"Optimal session length", report.Metrics.OptimalSessionLength},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(overview, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write overview row: %w", err)
		}
	}

	const categories = "Categories"
	if _, err := f.NewSheet(categories); err != nil {
		return nil, fmt.Errorf("failed to add sheet: %w", err)
	}
	header := []interface{}{"Category", "Attempts", "Correct", "Accuracy", "Mastery"}
	if err := f.SetSheetRow(categories, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	names := make([]string, 0, len(stats.CategoryStats))
	for name := range stats.CategoryStats {
		names = append(names, name)
	}
	sort.Strings(names)

	for i, name := range names {
		c := stats.CategoryStats[name]
		row := []interface{}{name, c.Attempts, c.Correct, c.Accuracy, report.Metrics.CategoryMastery[name]}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(categories, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write category row: %w", err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}
