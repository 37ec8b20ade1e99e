package api

import (
	"net/http"
	"strconv"

	"github.com/skillpulse/skillpulse/internal/models"
)

// handleRecords lists raw memory records with optional filters, for admin
// dashboards and debugging.
func (s *Server) handleRecords(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := models.RecordFilter{
		Category: q.Get("category"),
		DueOnly:  q.Get("due_only") == "true",
	}

	if raw := q.Get("min_strength"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			respondError(w, r, http.StatusBadRequest, "BAD_REQUEST", "min_strength must be a number")
			return
		}
		filter.MinStrength = &v
	}
	if raw := q.Get("max_strength"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			respondError(w, r, http.StatusBadRequest, "BAD_REQUEST", "max_strength must be a number")
			return
		}
		filter.MaxStrength = &v
	}
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			respondError(w, r, http.StatusBadRequest, "BAD_REQUEST", "limit must be a non-negative integer")
			return
		}
		filter.Limit = n
	}

	records, err := s.Memory.ListRecords(r.Context(), userFromContext(r.Context()), filter)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, map[string]any{
		"records": records,
		"count":   len(records),
	})
}
