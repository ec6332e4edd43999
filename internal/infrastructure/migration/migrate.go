// Package migration applies versioned SQL migrations with goose.
package migration

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/resumelift/resumelift/internal/shared/logger"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Up applies all pending migrations.
func Up(db *sql.DB, log logger.Interface) error {
	goose.SetBaseFS(migrationsFS)
	if err := goose.SetDialect("mysql"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}

	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	version, err := goose.GetDBVersion(db)
	if err != nil {
		return fmt.Errorf("failed to read migration version: %w", err)
	}

	log.Infow("migrations applied", "version", version)
	return nil
}

// Down rolls back the most recent migration.
func Down(db *sql.DB, log logger.Interface) error {
	goose.SetBaseFS(migrationsFS)
	if err := goose.SetDialect("mysql"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}

	if err := goose.Down(db, "migrations"); err != nil {
		return fmt.Errorf("failed to roll back migration: %w", err)
	}

	log.Infow("migration rolled back")
	return nil
}

// Status prints the migration status to the goose logger.
func Status(db *sql.DB) error {
	goose.SetBaseFS(migrationsFS)
	if err := goose.SetDialect("mysql"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}
	return goose.Status(db, "migrations")
}
