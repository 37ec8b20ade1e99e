package models

// Question is a content-catalog item as seen by the engine. The engine only
// cares about identity and classification; prompt text is carried through for
// the session UI.
type Question struct {
	ID         string `json:"id"`
	Category   string `json:"category"`
	Difficulty string `json:"difficulty"`
	Prompt     string `json:"prompt,omitempty"`
}

// SessionPlan is the recommended question list for one study session.
type SessionPlan struct {
	Questions             []Question `json:"questions"`
	ReviewQuestions       []Question `json:"review_questions"`
	NewQuestions          []Question `json:"new_questions"`
	RecommendedDifficulty string     `json:"recommended_difficulty"`
	LearningEfficiency    float64    `json:"learning_efficiency"`
}
