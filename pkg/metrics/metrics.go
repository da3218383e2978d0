// Package metrics holds the OpenTelemetry instruments of the service. They
// are exported to Prometheus through the OTel Prometheus exporter.
package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// LLMBuckets covers model calls, which take seconds rather than milliseconds.
var LLMBuckets = []float64{.25, .5, 1, 2, 4, 8, 15, 30, 60} //nolint: gochecknoglobals

const meterName = "studyshare"

// NewMeterProvider creates a meter provider whose readings are exposed
// through registerer.
func NewMeterProvider(registerer prometheus.Registerer) (*sdkmetric.MeterProvider, error) {
	exp, err := otelprom.New(otelprom.WithRegisterer(registerer))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}

	return sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp)), nil
}

// Instruments are the service level metrics.
type Instruments struct {
	Uploads           metric.Int64Counter
	Downloads         metric.Int64Counter
	Votes             metric.Int64Counter
	ModerationActions metric.Int64Counter
	LLMFallbacks      metric.Int64Counter
	LLMLatency        metric.Float64Histogram
}

// New creates the instruments on the given provider.
func New(mp metric.MeterProvider) (*Instruments, error) {
	m := mp.Meter(meterName)

	var (
		in  Instruments
		err error
	)
	if in.Uploads, err = m.Int64Counter("studyshare.uploads",
		metric.WithDescription("Uploaded documents by document type.")); err != nil {
		return nil, fmt.Errorf("could not create uploads counter: %w", err)
	}
	if in.Downloads, err = m.Int64Counter("studyshare.downloads",
		metric.WithDescription("Download links handed out.")); err != nil {
		return nil, fmt.Errorf("could not create downloads counter: %w", err)
	}
	if in.Votes, err = m.Int64Counter("studyshare.votes",
		metric.WithDescription("Votes cast by value.")); err != nil {
		return nil, fmt.Errorf("could not create votes counter: %w", err)
	}
	if in.ModerationActions, err = m.Int64Counter("studyshare.moderation.actions",
		metric.WithDescription("Admin dashboard actions by action.")); err != nil {
		return nil, fmt.Errorf("could not create moderation counter: %w", err)
	}
	if in.LLMFallbacks, err = m.Int64Counter("studyshare.llm.fallbacks",
		metric.WithDescription("Model calls answered with defaults by operation.")); err != nil {
		return nil, fmt.Errorf("could not create fallbacks counter: %w", err)
	}
	if in.LLMLatency, err = m.Float64Histogram("studyshare.llm.latency",
		metric.WithUnit("s"),
		metric.WithDescription("Model call latency by operation."),
		metric.WithExplicitBucketBoundaries(LLMBuckets...)); err != nil {
		return nil, fmt.Errorf("could not create latency histogram: %w", err)
	}

	return &in, nil
}

// Noop returns instruments that record nothing. Handy in tests.
func Noop() *Instruments {
	in, err := New(noop.NewMeterProvider())
	if err != nil {
		panic(err)
	}

	return in
}

// ObserveLLM records the latency of a model call started at start.
func (in *Instruments) ObserveLLM(ctx context.Context, op string, start time.Time) {
	in.LLMLatency.Record(ctx, time.Since(start).Seconds(), metric.WithAttributes(attribute.String("op", op)))
}

// Fallback counts a model call that fell back to defaults.
func (in *Instruments) Fallback(ctx context.Context, op string) {
	in.LLMFallbacks.Add(ctx, 1, metric.WithAttributes(attribute.String("op", op)))
}

// Count adds one to c with a single string attribute.
func Count(ctx context.Context, c metric.Int64Counter, key, value string) {
	c.Add(ctx, 1, metric.WithAttributes(attribute.String(key, value)))
}
