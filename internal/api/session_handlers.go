package api

import (
	"net/http"

	"github.com/skillpulse/skillpulse/internal/models"
)

type planRequest struct {
	Questions     []models.Question `json:"questions"`
	SessionLength int               `json:"session_length"`
}

func (s *Server) handlePlanSession(w http.ResponseWriter, r *http.Request) {
	var req planRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}
	if req.SessionLength < 0 {
		respondError(w, r, http.StatusBadRequest, "BAD_REQUEST", "session_length cannot be negative")
		return
	}

	plan, err := s.Sessions.PlanSession(r.Context(), userFromContext(r.Context()), req.Questions, req.SessionLength)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, plan)
}

func (s *Server) handleRecordSession(w http.ResponseWriter, r *http.Request) {
	var req models.SessionResult
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}
	if req.DurationMs < 0 || req.QuestionsAnswered < 0 {
		respondError(w, r, http.StatusBadRequest, "BAD_REQUEST", "duration_ms and questions_answered cannot be negative")
		return
	}

	metrics, err := s.Sessions.RecordSession(r.Context(), userFromContext(r.Context()), req)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, map[string]any{"metrics": metrics})
}
