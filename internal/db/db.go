package db

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"github.com/skillpulse/skillpulse/internal/config"
	"github.com/skillpulse/skillpulse/internal/logger"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Driver names accepted by Open.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Open connects to the configured database and applies pending migrations.
// The migration SQL is written to run unchanged on both drivers.
func Open(cfg config.Config) (*sql.DB, error) {
	log := logger.Default().WithPrefix("db")

	var (
		db  *sql.DB
		err error
	)
	switch cfg.DBDriver {
	case DriverPostgres:
		log.Info("opening postgres database")
		db, err = sql.Open("postgres", cfg.DBURL)
	case DriverSQLite:
		dsn := fmt.Sprintf("%s?_busy_timeout=5000&_foreign_keys=on&_journal_mode=WAL&_synchronous=NORMAL", cfg.DBPath)
		log.Info("opening sqlite database: %s", cfg.DBPath)
		db, err = sql.Open("sqlite3", dsn)
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.DBDriver)
	}
	if err != nil {
		log.Error("failed to open database: %v", err)
		return nil, err
	}
	if cfg.DBDriver == DriverSQLite {
		db.SetMaxOpenConns(1) // SQLite best practice for single writer
	}

	if err := ApplyMigrations(context.Background(), db, cfg.DBDriver); err != nil {
		log.Error("failed to apply migrations: %v", err)
		db.Close()
		return nil, err
	}

	log.Info("database ready")
	return db, nil
}

// ApplyMigrations runs all embedded migrations that have not been recorded in
// the schema_migrations ledger yet.
func ApplyMigrations(ctx context.Context, db *sql.DB, driver string) error {
	log := logger.Default().WithPrefix("db")

	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (version TEXT PRIMARY KEY, applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP)`); err != nil {
		return err
	}

	entries, err := migrationsFS.ReadDir("migrations")
	if err != nil {
		return err
	}

	for _, entry := range entries {
		version := entry.Name()
		applied, err := migrationApplied(ctx, db, driver, version)
		if err != nil {
			return err
		}
		if applied {
			log.Debug("migration %s already applied, skipping", version)
			continue
		}
		sqlBytes, err := migrationsFS.ReadFile("migrations/" + version)
		if err != nil {
			return err
		}
		log.Info("applying migration: %s", version)
		if _, err := db.ExecContext(ctx, string(sqlBytes)); err != nil {
			return fmt.Errorf("apply migration %s: %w", version, err)
		}
		if _, err := db.ExecContext(ctx, rebind(driver, `INSERT INTO schema_migrations (version) VALUES (?)`), version); err != nil {
			return err
		}
	}
	return nil
}

func migrationApplied(ctx context.Context, db *sql.DB, driver, version string) (bool, error) {
	var v string
	err := db.QueryRowContext(ctx, rebind(driver, `SELECT version FROM schema_migrations WHERE version = ?`), version).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	return err == nil, err
}

// rebind converts ? placeholders to the $n form postgres expects.
func rebind(driver, query string) string {
	if driver != DriverPostgres {
		return query
	}
	var out []byte
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			out = append(out, fmt.Sprintf("$%d", n)...)
			continue
		}
		out = append(out, query[i])
	}
	return string(out)
}
