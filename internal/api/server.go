// Package api configures and exposes the HTTP server, routes,
// metrics, docs and related middleware for the StudyShare service.
package api

import (
	"context"
	_ "embed"
	"fmt"
	"net/http"
	"studyshare/internal/api/handler/v1handler"
	"studyshare/internal/config"
	"studyshare/pkg/controller"
	"studyshare/pkg/logger"
	"studyshare/pkg/metrics"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/riverqueue/river"
	"github.com/swaggest/swgui/v5emb"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.uber.org/zap"
	"riverqueue.com/riverui"
)

// v1OpenAPI is the OpenAPI document of the v1 API.
//
//go:embed specs/v1.yaml
var v1OpenAPI []byte

const riverUIPrefix = "/riverui"

// Options holds configuration for the HTTP server and its dependencies.
// It is typically created from a config.Config via NewOptions.
// Zero durations leave the net/http defaults in place.
type Options struct {
	// SecHandlerOptions configures session token verification for v1 endpoints.
	SecHandlerOptions *v1handler.SecHandlerOptions
	// V1 configures request limits of the v1 API.
	V1 v1handler.Options

	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
	// AllowedOrigins lists the CORS origins; "*" allows any.
	AllowedOrigins []string
}

// NewOptions constructs an Options value from the provided application configuration.
func NewOptions(cfg *config.Config) Options {
	return Options{
		SecHandlerOptions: v1handler.NewSecHandlerOptions(cfg),
		V1:                v1handler.NewOptions(cfg),

		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
		AllowedOrigins:    cfg.HTTP.AllowedOrigins,
	}
}

type Deps struct {
	v1handler.Deps

	// MeterProvider receives the HTTP metrics; nil disables them.
	MeterProvider metric.MeterProvider
	// Jobs backs the River UI; nil leaves it unmounted.
	Jobs *river.Client[pgx.Tx]
	// Health reports whether the service can serve traffic.
	Health func(ctx context.Context) error
}

// NewServer mounts the v1 API next to the Prometheus endpoint, the health
// probe, the OpenAPI document and its explorer. pprof and the River UI are
// mounted for admins only. ctx bounds background work of the River UI.
func NewServer(ctx context.Context, deps Deps, opts Options) (*http.Server, error) {
	mux := http.NewServeMux()

	// prometheus metrics server
	mux.Handle(opts.MetricsPath, promhttp.Handler())

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		if deps.Health != nil {
			if err := deps.Health(r.Context()); err != nil {
				logger.Warn(r.Context(), "health check failed", zap.Error(err))
				http.Error(w, "unavailable", http.StatusServiceUnavailable)

				return
			}
		}
		_, _ = w.Write([]byte("ok"))
	})

	// v1 specs file
	mux.HandleFunc("GET /specs/v1.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1OpenAPI)
	})
	// v1 api swagger playground
	mux.Handle("/v1/docs/", v5emb.New(
		"StudyShare API",
		"/specs/v1.yaml",
		"/v1/docs/",
	))

	// v1 api
	secHandler, err := v1handler.NewSecHandler(opts.SecHandlerOptions, deps.Users)
	if err != nil {
		return nil, fmt.Errorf("could not create sec handler: %w", err)
	}
	v1handler.New(deps.Deps, opts.V1).Register(mux, secHandler)

	// pprof
	mux.Handle(controller.PprofPrefix, secHandler.RequireAdmin(controller.PprofMux()))

	// river ui
	if deps.Jobs != nil {
		jobsUI, err := riverui.NewHandler(&riverui.HandlerOpts{
			Endpoints: riverui.NewEndpoints(deps.Jobs, nil),
			Logger:    logger.Slog(ctx),
			Prefix:    riverUIPrefix,
		})
		if err != nil {
			return nil, fmt.Errorf("could not create river ui: %w", err)
		}
		if err := jobsUI.Start(ctx); err != nil {
			return nil, fmt.Errorf("could not start river ui: %w", err)
		}
		mux.Handle(riverUIPrefix+"/", secHandler.RequireAdmin(jobsUI))
	}

	// metrics
	mp := deps.MeterProvider
	if mp == nil {
		mp = noop.NewMeterProvider()
	}
	withMetrics, err := controller.WithMetrics(mp, metrics.DefaultBuckets)
	if err != nil {
		return nil, fmt.Errorf("could not create http metrics: %w", err)
	}
	handler := withMetrics(mux)

	// cors
	handler = controller.WithCORS(opts.AllowedOrigins)(handler)

	// logger
	handler = controller.WithLogger(handler)

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}
