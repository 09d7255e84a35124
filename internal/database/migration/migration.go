package migration

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"time"

	"github.com/pressly/goose/v3"

	"bizreview/internal/logger"
)

//go:embed sql/*.sql
var embedMigrations embed.FS

// Sources returns the embedded migration directory.
func Sources() fs.FS {
	sub, err := fs.Sub(embedMigrations, "sql")
	if err != nil {
		// embed guarantees the directory exists
		panic(err)
	}
	return sub
}

// NewProvider builds a goose provider over the embedded MySQL migrations.
func NewProvider(db *sql.DB) (*goose.Provider, error) {
	p, err := goose.NewProvider(goose.DialectMySQL, db, Sources())
	if err != nil {
		return nil, fmt.Errorf("create migration provider: %w", err)
	}
	return p, nil
}

// EnsureMigrated applies every pending migration and logs each step.
func EnsureMigrated(ctx context.Context, db *sql.DB, dbHost string) error {
	log := logger.Named("database").With("db_host", dbHost)
	start := time.Now()

	log.Info("db_migration_check", "status", "starting")

	p, err := NewProvider(db)
	if err != nil {
		log.Error("db_migration_failed", "status", "error", "error_message", err.Error())
		return err
	}

	hasPending, err := p.HasPending(ctx)
	if err != nil {
		log.Error("db_migration_failed",
			"status", "error",
			"error_message", fmt.Sprintf("failed to check pending migrations: %v", err),
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return fmt.Errorf("failed to check pending migrations: %w", err)
	}
	if !hasPending {
		log.Info("db_migration_skip",
			"status", "success",
			"msg_detail", "schema up to date, skipping migration",
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return nil
	}

	log.Info("db_migration_start", "status", "in_progress")

	results, err := p.Up(ctx)
	for _, r := range results {
		if r.Error != nil {
			continue
		}
		log.Info("db_migration_step",
			"status", "success",
			"migration_step", r.Source.Path,
			"version", r.Source.Version,
			"step_duration_ms", r.Duration.Milliseconds(),
		)
	}
	if err != nil {
		log.Error("db_migration_failed",
			"status", "error",
			"error_message", err.Error(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return fmt.Errorf("apply migrations: %w", err)
	}

	log.Info("db_migration_success",
		"status", "success",
		"applied", len(results),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// StepStatus is one migration's state as reported by Status.
type StepStatus struct {
	Version   int64
	Name      string
	Applied   bool
	AppliedAt time.Time
}

// Status reports every known migration and whether it has been applied.
func Status(ctx context.Context, db *sql.DB) ([]StepStatus, error) {
	p, err := NewProvider(db)
	if err != nil {
		return nil, err
	}
	statuses, err := p.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("migration status: %w", err)
	}
	out := make([]StepStatus, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, StepStatus{
			Version:   s.Source.Version,
			Name:      s.Source.Path,
			Applied:   s.State == goose.StateApplied,
			AppliedAt: s.AppliedAt,
		})
	}
	return out, nil
}
