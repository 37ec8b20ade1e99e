package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr               string
	DBDriver           string
	DBPath             string
	DBURL              string
	LogLevel           string
	CatalogURL         string
	RefreshWorkerCount int
	RefreshQueueSize   int
	DigestIntervalMin  int
}

// Load reads configuration from a .env file (if present) and environment
// variables, applying defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	return Config{
		Addr:               envOr("ADDR", ":8080"),
		DBDriver:           envOr("DB_DRIVER", "sqlite"),
		DBPath:             envOr("DB_PATH", "file:skillpulse.db"),
		DBURL:              envOr("DB_URL", ""),
		LogLevel:           envOr("LOG_LEVEL", "INFO"),
		CatalogURL:         envOr("CATALOG_URL", ""),
		RefreshWorkerCount: envIntOr("REFRESH_WORKER_COUNT", 2),
		RefreshQueueSize:   envIntOr("REFRESH_QUEUE_SIZE", 64),
		DigestIntervalMin:  envIntOr("DIGEST_INTERVAL_MIN", 0),
	}
}

// Validate checks the configuration for values that cannot work at runtime.
func (c Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("ADDR cannot be empty")
	}
	switch c.DBDriver {
	case "sqlite":
		if c.DBPath == "" {
			return fmt.Errorf("DB_PATH cannot be empty with the sqlite driver")
		}
	case "postgres":
		if c.DBURL == "" {
			return fmt.Errorf("DB_URL is required with the postgres driver")
		}
	default:
		return fmt.Errorf("unknown DB_DRIVER %q (expected sqlite or postgres)", c.DBDriver)
	}
	if c.RefreshWorkerCount <= 0 {
		return fmt.Errorf("REFRESH_WORKER_COUNT must be positive")
	}
	if c.RefreshQueueSize <= 0 {
		return fmt.Errorf("REFRESH_QUEUE_SIZE must be positive")
	}
	if c.DigestIntervalMin < 0 {
		return fmt.Errorf("DIGEST_INTERVAL_MIN cannot be negative")
	}
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}
