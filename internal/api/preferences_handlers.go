package api

import (
	"net/http"

	"github.com/skillpulse/skillpulse/internal/models"
)

func (s *Server) handleGetPreferences(w http.ResponseWriter, r *http.Request) {
	prefs, err := s.Preferences.Get(r.Context(), userFromContext(r.Context()))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, prefs)
}

// handlePutPreferences replaces the stored config wholesale. Callers wanting
// a partial update must read-modify-write.
func (s *Server) handlePutPreferences(w http.ResponseWriter, r *http.Request) {
	var prefs models.Preferences
	if err := decodeJSON(r, &prefs); err != nil {
		handleError(w, r, err)
		return
	}

	if err := s.Preferences.Save(r.Context(), userFromContext(r.Context()), prefs); err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, prefs)
}
