package controller

import (
	"net/http"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// WithMetrics returns a middleware recording a request counter and a latency
// histogram per route pattern, method and status code.
//
// The route is read from http.Request.Pattern after the downstream
// ServeMux matched it, so next must receive the request unchanged.
func WithMetrics(mp metric.MeterProvider, buckets []float64) (func(http.Handler) http.Handler, error) {
	meter := mp.Meter("studyshare/http")

	requests, err := meter.Int64Counter("http.server.requests",
		metric.WithDescription("HTTP requests by route, method and status."))
	if err != nil {
		return nil, err //nolint: wrapcheck
	}
	latency, err := meter.Float64Histogram("http.server.duration",
		metric.WithUnit("s"),
		metric.WithDescription("HTTP request latency by route and method."),
		metric.WithExplicitBucketBoundaries(buckets...))
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			route := r.Pattern
			if route == "" {
				route = "unmatched"
			}
			attrs := metric.WithAttributes(
				attribute.String("route", route),
				attribute.String("method", r.Method),
				attribute.String("status", strconv.Itoa(rec.status)),
			)
			requests.Add(r.Context(), 1, attrs)
			latency.Record(r.Context(), time.Since(start).Seconds(), attrs)
		})
	}, nil
}
