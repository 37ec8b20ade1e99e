package models

// Focus modes for a study session.
const (
	FocusReview = "review"
	FocusNew    = "new"
	FocusMixed  = "mixed"
)

// Review priority strategies.
const (
	PriorityMemoryStrength  = "memory_strength"
	PriorityTimeSinceReview = "time_since_review"
	PriorityErrorRate       = "error_rate"
)

// Preferences is the per-learner personalization config. Saves are full
// overwrites; callers must read-modify-write.
type Preferences struct {
	Difficulty         string   `json:"difficulty"`
	FocusMode          string   `json:"focus_mode"`
	SessionLength      int      `json:"session_length"`
	Categories         []string `json:"categories"`
	SpacedRepetition   bool     `json:"spaced_repetition"`
	AdaptiveDifficulty bool     `json:"adaptive_difficulty"`
	ReviewPriority     string   `json:"review_priority"`
}

// DefaultPreferences returns the config assigned on first access.
func DefaultPreferences() Preferences {
	return Preferences{
		Difficulty:         "medium",
		FocusMode:          FocusMixed,
		SessionLength:      10,
		SpacedRepetition:   true,
		AdaptiveDifficulty: true,
		ReviewPriority:     PriorityMemoryStrength,
	}
}
