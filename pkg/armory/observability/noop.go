package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// NoopMetrics is a MetricsRecorder that does nothing.
type NoopMetrics struct{}

// Compile-time interface check.
var _ MetricsRecorder = NoopMetrics{}

// RecordClone does nothing.
func (NoopMetrics) RecordClone(_ context.Context, _ string, _ time.Duration, _ error) {}

// RecordRegistryOp does nothing.
func (NoopMetrics) RecordRegistryOp(_ context.Context, _ string, _ error) {}

// RecordRegistrySize does nothing.
func (NoopMetrics) RecordRegistrySize(_ context.Context, _ int) {}

// NoopSpanManager is a SpanManager that does nothing.
type NoopSpanManager struct{}

// Compile-time interface check.
var _ SpanManager = NoopSpanManager{}

var noopSpan = noop.Span{}

// StartCloneSpan returns the context unchanged and a no-op span.
func (NoopSpanManager) StartCloneSpan(ctx context.Context) (context.Context, trace.Span) {
	return ctx, noopSpan
}

// StartCatalogSpan returns the context unchanged and a no-op span.
func (NoopSpanManager) StartCatalogSpan(ctx context.Context, _ string, _ int) (context.Context, trace.Span) {
	return ctx, noopSpan
}

// EndSpanWithError does nothing.
func (NoopSpanManager) EndSpanWithError(_ trace.Span, _ error) {}

// AddSpanEvent does nothing.
func (NoopSpanManager) AddSpanEvent(_ context.Context, _ string, _ ...attribute.KeyValue) {}
