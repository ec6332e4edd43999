// Package migrate implements the database migration commands.
package migrate

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/resumelift/resumelift/internal/infrastructure/config"
	"github.com/resumelift/resumelift/internal/infrastructure/database"
	"github.com/resumelift/resumelift/internal/infrastructure/migration"
	"github.com/resumelift/resumelift/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Apply, roll back, and inspect database schema migrations.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "down",
		Short: "Roll back the most recent migration",
		RunE:  runDown,
	}
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE:  runStatus,
	}
}

func initEnv() (*sql.DB, logger.Interface, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	sqlDB, err := database.Get().DB()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to access sql connection: %w", err)
	}

	return sqlDB, logger.NewLogger(), nil
}

func runUp(cmd *cobra.Command, args []string) error {
	sqlDB, log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	log.Infow("applying migrations", "environment", env)

	if err := migration.Up(sqlDB, log); err != nil {
		log.Errorw("migration failed", "error", err)
		return err
	}

	return nil
}

func runDown(cmd *cobra.Command, args []string) error {
	sqlDB, log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	log.Infow("rolling back migration", "environment", env)

	if err := migration.Down(sqlDB, log); err != nil {
		log.Errorw("rollback failed", "error", err)
		return err
	}

	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	sqlDB, _, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	return migration.Status(sqlDB)
}
