package srs

import (
	"math"
	"sort"
	"time"

	"github.com/skillpulse/skillpulse/internal/models"
)

// WeakThreshold marks memories reviewable even before their due date.
const WeakThreshold = 0.5

// Strength differences at or below this are treated as a tie so that nearly
// identical memories are ordered by overdue-ness instead of timestamp noise.
const strengthTieBand = 0.1

// DueRecords returns the records worth reviewing now, weakest first, capped
// at limit. A record qualifies when it is due by date or its strength has
// dropped below WeakThreshold.
func DueRecords(records []models.MemoryRecord, now time.Time, limit int) []models.MemoryRecord {
	var due []models.MemoryRecord
	for _, r := range records {
		if r.Due(now) || r.MemoryStrength < WeakThreshold {
			due = append(due, r)
		}
	}

	sort.SliceStable(due, func(i, j int) bool {
		a, b := due[i], due[j]
		if math.Abs(a.MemoryStrength-b.MemoryStrength) > strengthTieBand {
			return a.MemoryStrength < b.MemoryStrength
		}
		return OverdueDays(a, now) > OverdueDays(b, now)
	})

	if limit >= 0 && len(due) > limit {
		due = due[:limit]
	}
	return due
}

// OverdueDays is how many days past its due date a record is, never negative.
func OverdueDays(r models.MemoryRecord, now time.Time) float64 {
	days := now.Sub(r.NextReviewAt).Hours() / 24
	if days < 0 {
		return 0
	}
	return days
}
