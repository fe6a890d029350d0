package observability

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// setupTracingTest installs a tracer provider backed by an in-memory exporter.
func setupTracingTest(t *testing.T) *tracetest.InMemoryExporter {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))

	originalProvider := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	tracer = otel.Tracer("armory")

	t.Cleanup(func() {
		otel.SetTracerProvider(originalProvider)
		tracer = otel.Tracer("armory")
		if err := tp.Shutdown(context.Background()); err != nil {
			t.Logf("Error shutting down tracer provider: %v", err)
		}
	})
	return exporter
}

func TestStartCatalogSpan(t *testing.T) {
	exporter := setupTracingTest(t)
	sm := NewSpanManager()

	ctx, span := sm.StartCatalogSpan(context.Background(), "weapons.yaml", 5)
	_, child := sm.StartCloneSpan(ctx)
	sm.EndSpanWithError(child, nil)
	sm.EndSpanWithError(span, nil)

	spans := exporter.GetSpans()
	require.Len(t, spans, 2)

	cloneSpan, catalogSpan := spans[0], spans[1]
	assert.Equal(t, "armory.clone", cloneSpan.Name)
	assert.Equal(t, "armory.catalog.load", catalogSpan.Name)
	assert.Equal(t, catalogSpan.SpanContext.SpanID(), cloneSpan.Parent.SpanID())
	assert.Equal(t, codes.Ok, catalogSpan.Status.Code)

	var source string
	var entries int64
	for _, attr := range catalogSpan.Attributes {
		switch attr.Key {
		case "catalog.source":
			source = attr.Value.AsString()
		case "catalog.entries":
			entries = attr.Value.AsInt64()
		}
	}
	assert.Equal(t, "weapons.yaml", source)
	assert.Equal(t, int64(5), entries)
}

func TestEndSpanWithError(t *testing.T) {
	exporter := setupTracingTest(t)
	sm := NewSpanManager()

	_, span := sm.StartCloneSpan(context.Background())
	sm.EndSpanWithError(span, errors.New("rarity not recognized"))

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status.Code)
	assert.Equal(t, "rarity not recognized", spans[0].Status.Description)
	require.NotEmpty(t, spans[0].Events)
	assert.Equal(t, "exception", spans[0].Events[0].Name)

	assert.NotPanics(t, func() { sm.EndSpanWithError(nil, nil) })
}

func TestAddSpanEvent(t *testing.T) {
	exporter := setupTracingTest(t)
	sm := NewSpanManager()

	ctx, span := sm.StartCloneSpan(context.Background())
	sm.AddSpanEvent(ctx, "registered", attribute.String("name", "wood"))
	span.End()

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	require.Len(t, spans[0].Events, 1)
	assert.Equal(t, "registered", spans[0].Events[0].Name)

	assert.NotPanics(t, func() {
		sm.AddSpanEvent(context.Background(), "orphan")
	})
}
