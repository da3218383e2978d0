// Command studyshare runs the StudyShare API together with its background
// workers, applies database migrations and mints session tokens for local
// testing.
package main

import (
	"context"
	"fmt"
	"os"
	"studyshare/internal/config"
	"studyshare/pkg/logger"
	"studyshare/pkg/storage/postgres"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// getPostgres connects to the configured database. The returned func closes
// the pool.
func getPostgres(ctx context.Context, cfg *config.Config) (*postgres.PgSQL, func()) {
	db := cfg.Database
	pgsql, err := postgres.New(ctx, postgres.Options{
		Username:           db.Username,
		Password:           db.Password,
		Host:               db.Host,
		Port:               db.Port,
		Database:           db.DatabaseName,
		SslMode:            db.SslMode,
		ApplicationName:    db.ApplicationName,
		StatementTimeout:   db.StatementTimeout,
		ConnMaxLifetime:    db.ConnMaxLifetime,
		ConnMaxIdleTime:    db.ConnMaxIdleTime,
		MaxOpenConnections: db.MaxOpenConnections,
		MaxIdleConnections: db.MaxIdleConnections,
	})
	if err != nil {
		logger.Fatal(ctx, "could not connect to postgres", zap.Error(err), zap.String("host", db.Host))
	}

	return pgsql, func() {
		logger.Info(ctx, "closing postgres pool...")
		if err := pgsql.Close(); err != nil {
			logger.Warn(ctx, "could not close postgres pool", zap.Error(err))
		}
	}
}

func rootCommand() *cobra.Command {
	var configPath string
	// filled in before any subcommand runs
	cfg := &config.Config{}

	root := &cobra.Command{
		Use:           "studyshare",
		Short:         "Community library of O-Level study material",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			loaded, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("could not load config file: %w", err)
			}
			*cfg = *loaded

			if err := logger.SetupWithLevel(cfg.Environment, cfg.LogLevel); err != nil {
				return fmt.Errorf("could not setup logger: %w", err)
			}

			return nil
		},
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yml", "Config File Path")

	root.AddCommand(
		migrateCommand(cfg),
		serveCommand(cfg),
		JWTCommand(cfg),
	)

	return root
}

func main() {
	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Get(ctx).Sync()

			panic(p)
		}
	}()

	err := rootCommand().ExecuteContext(ctx)
	_ = logger.Get(ctx).Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1) //nolint: gocritic
	}
}
