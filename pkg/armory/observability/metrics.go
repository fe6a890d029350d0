package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Registry operation names used as the "op" metric attribute.
const (
	OpRegister   = "register"
	OpUnregister = "unregister"
)

// MetricsRecorder records armory metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordClone records a clone attempt with its rarity, duration and error status.
	RecordClone(ctx context.Context, rarity string, duration time.Duration, err error)

	// RecordRegistryOp records a register or unregister call.
	RecordRegistryOp(ctx context.Context, op string, err error)

	// RecordRegistrySize records the current number of registered entries.
	RecordRegistrySize(ctx context.Context, size int)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	clones       metric.Int64Counter
	cloneErrors  metric.Int64Counter
	cloneLatency metric.Float64Histogram
	registryOps  metric.Int64Counter
	registrySize metric.Int64Gauge
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics lazily initializes the shared OTel metrics instance.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("armory")

	clones, err := meter.Int64Counter("armory.clone.count",
		metric.WithDescription("Number of prototype clones"),
	)
	if err != nil {
		return nil, err
	}

	cloneErrors, err := meter.Int64Counter("armory.clone.errors",
		metric.WithDescription("Number of failed prototype clones"),
	)
	if err != nil {
		return nil, err
	}

	cloneLatency, err := meter.Float64Histogram("armory.clone.latency_ms",
		metric.WithDescription("Clone latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	registryOps, err := meter.Int64Counter("armory.registry.ops",
		metric.WithDescription("Number of registry operations"),
	)
	if err != nil {
		return nil, err
	}

	registrySize, err := meter.Int64Gauge("armory.registry.size",
		metric.WithDescription("Number of registered weapon types"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		clones:       clones,
		cloneErrors:  cloneErrors,
		cloneLatency: cloneLatency,
		registryOps:  registryOps,
		registrySize: registrySize,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordClone records a clone attempt.
func (m *otelMetrics) RecordClone(ctx context.Context, rarity string, duration time.Duration, err error) {
	attrs := metric.WithAttributes(attribute.String("rarity", rarity))

	m.clones.Add(ctx, 1, attrs)
	m.cloneLatency.Record(ctx, float64(duration.Microseconds())/1000, attrs)
	if err != nil {
		m.cloneErrors.Add(ctx, 1, attrs)
	}
}

// RecordRegistryOp records a registry operation.
func (m *otelMetrics) RecordRegistryOp(ctx context.Context, op string, err error) {
	m.registryOps.Add(ctx, 1, metric.WithAttributes(
		attribute.String("op", op),
		attribute.Bool("success", err == nil),
	))
}

// RecordRegistrySize records the registry size.
func (m *otelMetrics) RecordRegistrySize(ctx context.Context, size int) {
	m.registrySize.Record(ctx, int64(size))
}
