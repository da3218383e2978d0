package main

import (
	"context"
	"database/sql"
	"fmt"
	root "studyshare"
	"studyshare/internal/config"
	"studyshare/pkg/logger"

	"github.com/pressly/goose/v3"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateTables applies the embedded goose migrations and returns the
// resulting schema version.
func migrateTables(db *sql.DB) (int64, error) {
	goose.SetBaseFS(root.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return 0, fmt.Errorf("could not set goose dialect: %w", err)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		return 0, fmt.Errorf("could not apply migrations: %w", err)
	}

	version, err := goose.GetDBVersion(db)
	if err != nil {
		return 0, fmt.Errorf("could not read schema version: %w", err)
	}

	return version, nil
}

// migrateQueue brings River's tables to the version shipped with the
// library and returns how many versions were applied.
func migrateQueue(ctx context.Context, db *sql.DB) (int, error) {
	migrator, err := rivermigrate.New(riverdatabasesql.New(db), nil)
	if err != nil {
		return 0, fmt.Errorf("could not create river queue migrator: %w", err)
	}

	res, err := migrator.Migrate(ctx, rivermigrate.DirectionUp, nil)
	if err != nil {
		return 0, fmt.Errorf("could not migrate river queue database: %w", err)
	}

	return len(res.Versions), nil
}

func migrateCommand(cfg *config.Config) *cobra.Command {
	var skipQueue bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrates database to the latest version",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			pgsql, closePgsql := getPostgres(ctx, cfg)
			defer closePgsql()
			db, ok := pgsql.DB.(*sql.DB)
			if !ok {
				return fmt.Errorf("unexpected database handle %T", pgsql.DB)
			}

			version, err := migrateTables(db)
			if err != nil {
				return err
			}
			logger.Info(ctx, "application tables are up to date", zap.Int64("version", version))

			if skipQueue {
				return nil
			}
			applied, err := migrateQueue(ctx, db)
			if err != nil {
				return err
			}
			logger.Info(ctx, "job queue tables are up to date", zap.Int("applied", applied))

			return nil
		},
	}
	cmd.Flags().BoolVar(&skipQueue, "skip-queue", false, "Only migrate the application tables")

	return cmd
}
