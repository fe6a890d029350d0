package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// tracer uses the global OTel tracer provider.
var tracer = otel.Tracer("armory")

// SpanManager handles trace span lifecycle.
// Use NewSpanManager() for OTel tracing or NoopSpanManager{} when disabled.
type SpanManager interface {
	// StartCloneSpan starts a span for a single clone.
	StartCloneSpan(ctx context.Context) (context.Context, trace.Span)

	// StartCatalogSpan starts a span for loading a catalog.
	// Clone spans started with the returned context are its children.
	StartCatalogSpan(ctx context.Context, source string, entries int) (context.Context, trace.Span)

	// EndSpanWithError completes a span, optionally recording an error.
	EndSpanWithError(span trace.Span, err error)

	// AddSpanEvent adds an event to the current span in context.
	AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue)
}

// otelSpanManager implements SpanManager using OpenTelemetry.
type otelSpanManager struct{}

// NewSpanManager returns a SpanManager that uses OpenTelemetry.
//
// The span manager uses the global OTel tracer provider. Configure the provider
// before calling this function:
//
//	otel.SetTracerProvider(yourProvider)
func NewSpanManager() SpanManager {
	return &otelSpanManager{}
}

// StartCloneSpan starts a span for a clone.
func (m *otelSpanManager) StartCloneSpan(ctx context.Context) (context.Context, trace.Span) {
	return tracer.Start(ctx, "armory.clone",
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// StartCatalogSpan starts a span for a catalog load.
func (m *otelSpanManager) StartCatalogSpan(ctx context.Context, source string, entries int) (context.Context, trace.Span) {
	return tracer.Start(ctx, "armory.catalog.load",
		trace.WithAttributes(
			attribute.String("catalog.source", source),
			attribute.Int("catalog.entries", entries),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// EndSpanWithError completes a span, optionally recording an error.
func (m *otelSpanManager) EndSpanWithError(span trace.Span, err error) {
	if span == nil {
		return
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// AddSpanEvent adds an event to the current span.
func (m *otelSpanManager) AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}
	span.AddEvent(name, trace.WithAttributes(attrs...))
}
