package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", s.handleHealth)
	r.Get("/readyz", s.handleReady)

	r.Route("/api", func(r chi.Router) {
		r.Use(userMiddleware)

		r.Post("/attempts", s.handleRecordAttempt)
		r.Get("/reviews", s.handleReviews)
		r.Post("/sessions/plan", s.handlePlanSession)
		r.Post("/sessions", s.handleRecordSession)
		r.Get("/stats", s.handleStats)
		r.Get("/efficiency", s.handleEfficiency)
		r.Get("/preferences", s.handleGetPreferences)
		r.Put("/preferences", s.handlePutPreferences)
		r.Get("/records", s.handleRecords)
		r.Get("/report", s.handleReport)
	})

	return r
}
