package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"studyshare/internal/api"
	"studyshare/internal/api/handler/v1handler"
	"studyshare/internal/categorizer"
	"studyshare/internal/config"
	"studyshare/internal/documents"
	"studyshare/internal/messages"
	"studyshare/internal/moderation"
	"studyshare/internal/notifications"
	"studyshare/internal/recommendations"
	"studyshare/internal/users"
	"studyshare/internal/worker"
	"studyshare/pkg/identity"
	"studyshare/pkg/identity/clerkid"
	"studyshare/pkg/llm/openrouter"
	"studyshare/pkg/logger"
	"studyshare/pkg/mailer"
	"studyshare/pkg/mailer/resendmail"
	"studyshare/pkg/metrics"
	"studyshare/pkg/objectstore/r2"
	"studyshare/pkg/ratelimit"
	"studyshare/pkg/storage/postgres"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/riverqueue/river"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context,
	cfg *config.Config,
	deps v1handler.Deps,
	mp metric.MeterProvider,
	jobs *river.Client[pgx.Tx],
	pgsql *postgres.PgSQL) func(ctx context.Context) {
	server, err := api.NewServer(ctx, api.Deps{
		Deps:          deps,
		MeterProvider: mp,
		Jobs:          jobs,
		Health:        pgsql.Ping,
	}, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func getObjectStore(ctx context.Context, cfg *config.Config) *r2.Store {
	store, err := r2.New(r2.Options{
		AccountID:       cfg.Storage.AccountID,
		Endpoint:        cfg.Storage.Endpoint,
		AccessKeyID:     cfg.Storage.AccessKeyID,
		SecretAccessKey: cfg.Storage.SecretAccessKey,
		Bucket:          cfg.Storage.Bucket,
		Insecure:        cfg.Storage.Insecure,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create object store", zap.Error(err))
	}
	if err := store.EnsureBucket(ctx); err != nil {
		logger.Warn(ctx, "could not ensure bucket exists", zap.Error(err), zap.String("bucket", cfg.Storage.Bucket))
	}

	return store
}

func getIdentityProvider(ctx context.Context, cfg *config.Config) identity.Provider {
	if cfg.Auth.ClerkSecretKey == "" {
		logger.Info(ctx, "clerk secret key not set, user profiles come from token claims")

		return nil
	}

	return clerkid.New(&http.Client{Timeout: 10 * time.Second}, clerkid.Options{SecretKey: cfg.Auth.ClerkSecretKey})
}

func getMailer(ctx context.Context, cfg *config.Config) mailer.Sender {
	if cfg.Email.ResendAPIKey == "" {
		logger.Info(ctx, "resend api key not set, notification emails are disabled")

		return nil
	}

	sender, err := resendmail.New(&http.Client{Timeout: 15 * time.Second}, resendmail.Options{
		APIKey: cfg.Email.ResendAPIKey,
		From:   cfg.Email.From,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create email sender", zap.Error(err))
	}

	return sender
}

func getDocumentOptions(ctx context.Context, cfg *config.Config) documents.Options {
	opts := documents.NewOptions(cfg)
	fonts, err := documents.LoadFonts(cfg)
	if err != nil {
		logger.Fatal(ctx, "could not load conversion fonts", zap.Error(err))
	}
	if len(fonts) == 0 {
		logger.Warn(ctx, "no conversion fonts set, sinhala and tamil docx uploads will be rejected")
	}
	opts.Fonts = fonts

	return opts
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			pgsql, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			mp, err := metrics.NewMeterProvider(prometheus.DefaultRegisterer)
			if err != nil {
				logger.Fatal(ctx, "could not create meter provider", zap.Error(err))
			}
			instruments, err := metrics.New(mp)
			if err != nil {
				logger.Fatal(ctx, "could not create instruments", zap.Error(err))
			}

			objects := getObjectStore(ctx, cfg)
			llmClient := openrouter.New(&http.Client{Timeout: cfg.LLM.Timeout}, openrouter.Options{
				BaseURL:  cfg.LLM.BaseURL,
				APIKey:   cfg.LLM.APIKey,
				Model:    cfg.LLM.Model,
				SiteURL:  cfg.LLM.SiteURL,
				SiteName: cfg.LLM.SiteName,
			})
			ai := categorizer.New(llmClient, instruments, categorizer.NewOptions(cfg))
			limiter := ratelimit.New(cfg.RateLimit.PerMinute, cfg.RateLimit.Burst)
			sender := getMailer(ctx, cfg)

			notifier := notifications.New(pgsql, notifications.NewOptions(cfg))
			deps := v1handler.Deps{
				Users:           users.New(pgsql, getIdentityProvider(ctx, cfg), users.NewOptions(cfg)),
				Documents:       documents.New(pgsql, objects, ai, limiter, instruments, getDocumentOptions(ctx, cfg)),
				Moderation:      moderation.New(pgsql, notifier, instruments, moderation.NewOptions(cfg)),
				Messages:        messages.New(pgsql, ai, notifier, limiter),
				Recommendations: recommendations.New(pgsql, notifier),
				Notifications:   notifier,
			}

			jobs, err := worker.Start(ctx, pgsql.Pool, worker.Dependencies{
				Storage:     pgsql,
				Objects:     objects,
				Categorizer: ai,
				Sender:      sender,
			}, worker.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not start workers", zap.Error(err))
			}

			stopWebserver := setupServer(ctx, cfg, deps, mp, jobs, pgsql)

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)

			logger.Info(shutdownCtx, "stopping workers...")
			if err := jobs.Stop(shutdownCtx); err != nil {
				logger.Error(shutdownCtx, "could not stop workers", zap.Error(err))
			}
			if err := mp.Shutdown(shutdownCtx); err != nil {
				logger.Warn(shutdownCtx, "could not shutdown meter provider", zap.Error(err))
			}
		},
	}

	return cmd
}
