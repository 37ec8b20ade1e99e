package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/skillpulse/skillpulse/internal/api"
	"github.com/skillpulse/skillpulse/internal/catalog"
	"github.com/skillpulse/skillpulse/internal/config"
	"github.com/skillpulse/skillpulse/internal/db"
	"github.com/skillpulse/skillpulse/internal/jobs"
	"github.com/skillpulse/skillpulse/internal/logger"
	"github.com/skillpulse/skillpulse/internal/repository"
	"github.com/skillpulse/skillpulse/internal/repository/postgres"
	"github.com/skillpulse/skillpulse/internal/repository/sqlite"
	"github.com/skillpulse/skillpulse/internal/services"
	"github.com/skillpulse/skillpulse/internal/worker"
)

func main() {
	cfg := config.Load()

	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	log.Info("===========================================")
	log.Info("SkillPulse Engine Starting")
	log.Info("===========================================")
	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_driver=%s", cfg.DBDriver)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("catalog_url=%s", cfg.CatalogURL)
	log.Debug("refresh_worker_count=%d", cfg.RefreshWorkerCount)
	log.Debug("refresh_queue_size=%d", cfg.RefreshQueueSize)
	log.Debug("digest_interval_min=%d", cfg.DigestIntervalMin)

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration: %v", err)
		os.Exit(1)
	}

	database, err := db.Open(cfg)
	if err != nil {
		log.Error("failed to open database: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing database connection")
		database.Close()
	}()

	var (
		memoryRepo  repository.MemoryRepository
		prefsRepo   repository.PreferencesRepository
		metricsRepo repository.MetricsRepository
	)
	switch cfg.DBDriver {
	case db.DriverPostgres:
		memoryRepo = postgres.NewMemoryRepository(database)
		prefsRepo = postgres.NewPreferencesRepository(database)
		metricsRepo = postgres.NewMetricsRepository(database)
	default:
		memoryRepo = sqlite.NewMemoryRepository(database)
		prefsRepo = sqlite.NewPreferencesRepository(database)
		metricsRepo = sqlite.NewMetricsRepository(database)
	}

	var catalogClient catalog.Client
	if cfg.CatalogURL != "" {
		catalogClient = catalog.New(cfg.CatalogURL)
	}

	refreshPool := worker.NewPool(cfg.RefreshWorkerCount, cfg.RefreshQueueSize)

	memoryService := services.NewMemoryService(memoryRepo)
	insightsService := services.NewInsightsService(memoryRepo, metricsRepo)
	preferencesService := services.NewPreferencesService(prefsRepo)
	refreshQueue := jobs.NewWorkerQueue(refreshPool, insightsService)
	sessionService := services.NewSessionService(memoryRepo, preferencesService, metricsRepo, catalogClient, refreshQueue)

	srv := &api.Server{
		Memory:      memoryService,
		Sessions:    sessionService,
		Insights:    insightsService,
		Preferences: preferencesService,
		DB:          database,
	}

	ctx, cancel := context.WithCancel(context.Background())
	refreshPool.Start(ctx)

	// Periodic due-review digest for downstream notification systems.
	scheduler := gocron.NewScheduler(time.UTC)
	if cfg.DigestIntervalMin > 0 {
		_, err := scheduler.Every(cfg.DigestIntervalMin).Minutes().Do(func() {
			digestLog := log.WithPrefix("digest")
			counts, err := memoryService.DueCounts(ctx)
			if err != nil {
				digestLog.Error("due-review digest failed: %v", err)
				return
			}
			digestLog.Info("due-review digest: %d learners with pending reviews", len(counts))
			for userID, n := range counts {
				digestLog.Debug("learner %s has %d reviews due", userID, n)
			}
		})
		if err != nil {
			log.Error("failed to schedule due-review digest: %v", err)
			os.Exit(1)
		}
		scheduler.StartAsync()
	}

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	log.Debug("stopping digest scheduler")
	scheduler.Stop()

	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	log.Debug("stopping refresh pool")
	cancel()
	refreshPool.Stop()

	log.Info("shutdown complete")
}
