package api

import (
	"database/sql"

	"github.com/skillpulse/skillpulse/internal/services"
)

// Server holds the service dependencies for the HTTP layer.
type Server struct {
	Memory      services.MemoryService
	Sessions    services.SessionService
	Insights    services.InsightsService
	Preferences services.PreferencesService
	DB          *sql.DB
}
