package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/skillpulse/skillpulse/internal/config"
)

func validConfig() config.Config {
	return config.Config{
		Addr:               ":8080",
		DBDriver:           "sqlite",
		DBPath:             "test.db",
		LogLevel:           "INFO",
		RefreshWorkerCount: 2,
		RefreshQueueSize:   64,
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidate_EmptyAddr(t *testing.T) {
	cfg := validConfig()
	cfg.Addr = ""

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ADDR cannot be empty")
}

func TestValidate_PostgresRequiresURL(t *testing.T) {
	cfg := validConfig()
	cfg.DBDriver = "postgres"
	cfg.DBURL = ""

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "DB_URL is required")

	cfg.DBURL = "postgres://localhost/skillpulse?sslmode=disable"
	assert.NoError(t, cfg.Validate())
}

func TestValidate_UnknownDriver(t *testing.T) {
	cfg := validConfig()
	cfg.DBDriver = "oracle"

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown DB_DRIVER")
}

func TestValidate_WorkerBounds(t *testing.T) {
	cfg := validConfig()
	cfg.RefreshWorkerCount = 0
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.RefreshQueueSize = -1
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.DigestIntervalMin = -5
	assert.Error(t, cfg.Validate())
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"ADDR", "DB_DRIVER", "DB_PATH", "DB_URL", "LOG_LEVEL", "CATALOG_URL", "REFRESH_WORKER_COUNT", "REFRESH_QUEUE_SIZE", "DIGEST_INTERVAL_MIN"} {
		os.Unsetenv(key)
	}

	cfg := config.Load()

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "file:skillpulse.db", cfg.DBPath)
	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.Equal(t, 2, cfg.RefreshWorkerCount)
	assert.Equal(t, 64, cfg.RefreshQueueSize)
	assert.Equal(t, 0, cfg.DigestIntervalMin)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ADDR", ":9090")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("REFRESH_WORKER_COUNT", "8")

	cfg := config.Load()

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, 8, cfg.RefreshWorkerCount)
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	t.Setenv("REFRESH_QUEUE_SIZE", "not-a-number")

	cfg := config.Load()

	assert.Equal(t, 64, cfg.RefreshQueueSize)
}
