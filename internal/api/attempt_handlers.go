package api

import (
	"net/http"
	"strconv"

	"github.com/skillpulse/skillpulse/internal/srs"
)

type attemptRequest struct {
	QuestionID     string  `json:"question_id"`
	Category       string  `json:"category"`
	IsCorrect      bool    `json:"is_correct"`
	ResponseTimeMs float64 `json:"response_time_ms"`
	// Optional 1-5 signal; defaults to the neutral middle when omitted.
	DifficultyRating *float64 `json:"difficulty_rating"`
}

func (s *Server) handleRecordAttempt(w http.ResponseWriter, r *http.Request) {
	var req attemptRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	difficulty := 3.0
	if req.DifficultyRating != nil {
		difficulty = *req.DifficultyRating
	}

	record, err := s.Memory.RecordAttempt(r.Context(), userFromContext(r.Context()), srs.Attempt{
		QuestionID:       req.QuestionID,
		Category:         req.Category,
		Correct:          req.IsCorrect,
		ResponseTimeMs:   req.ResponseTimeMs,
		DifficultyRating: difficulty,
	})
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, map[string]any{"record": record})
}

func (s *Server) handleReviews(w http.ResponseWriter, r *http.Request) {
	limit := -1 // unlimited
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			respondError(w, r, http.StatusBadRequest, "BAD_REQUEST", "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	due, err := s.Memory.QuestionsForReview(r.Context(), userFromContext(r.Context()), limit)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, map[string]any{
		"reviews": due,
		"count":   len(due),
	})
}
