// Package repomanager provides a concrete RepositoryManager for PostgreSQL,
// wiring together repository constructors, pool configuration, and database
// migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/blustick/blustick-api/internal/dbx"
	"github.com/blustick/blustick-api/internal/server/migrations"
	"github.com/blustick/blustick-api/internal/server/repositories/detections"
	"github.com/blustick/blustick-api/internal/server/repositories/devices"
	"github.com/blustick/blustick-api/internal/server/repositories/events"
	"github.com/blustick/blustick-api/internal/server/repositories/observations"
	"github.com/blustick/blustick-api/internal/server/repositories/profiles"
	"github.com/blustick/blustick-api/internal/server/repositories/questionnaires"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository implementations
// and exposes a schema migration hook.
type PostgresRepositoryManager struct{}

// Profiles returns a profiles.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Profiles(db dbx.DBTX) profiles.Repository {
	return profiles.NewPostgresRepository(db)
}

// Events returns an events.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Events(db dbx.DBTX) events.Repository {
	return events.NewPostgresRepository(db)
}

// Detections returns a detections.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Detections(db dbx.DBTX) detections.Repository {
	return detections.NewPostgresRepository(db)
}

// Devices returns a devices.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Devices(db dbx.DBTX) devices.Repository {
	return devices.NewPostgresRepository(db)
}

// Observations returns an observations.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Observations(db dbx.DBTX) observations.Repository {
	return observations.NewPostgresRepository(db)
}

// Questionnaires returns a questionnaires.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Questionnaires(db dbx.DBTX) questionnaires.Repository {
	return questionnaires.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return err
	}
	return nil
}

// NewPostgresRepositoryManager constructs a PostgreSQL-backed RepositoryManager.
func NewPostgresRepositoryManager() RepositoryManager {
	return &PostgresRepositoryManager{}
}

// Open opens a pooled database handle with the pgx driver. maxOpen bounds the
// pool so an exhausted pool makes a request wait for a free connection
// instead of opening more; the idle timeout returns connections to the store
// between bursts from the field devices.
func Open(dsn string, maxOpen, maxIdle int) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxIdle)
	db.SetConnMaxIdleTime(5 * time.Minute)

	return db, nil
}
