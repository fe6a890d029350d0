package observability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/attribute"
)

func TestNoopMetrics(t *testing.T) {
	m := NoopMetrics{}
	ctx := context.Background()

	assert.NotPanics(t, func() {
		m.RecordClone(ctx, "common", time.Millisecond, nil)
		m.RecordClone(ctx, "godlike", 0, errors.New("test"))
		m.RecordRegistryOp(ctx, OpRegister, nil)
		m.RecordRegistrySize(ctx, 0)
	})
}

func TestNoopSpanManager(t *testing.T) {
	sm := NoopSpanManager{}
	ctx := context.Background()

	newCtx, span := sm.StartCloneSpan(ctx)
	assert.Equal(t, ctx, newCtx)
	assert.False(t, span.IsRecording())

	newCtx, span = sm.StartCatalogSpan(ctx, "weapons.yaml", 3)
	assert.Equal(t, ctx, newCtx)
	assert.False(t, span.IsRecording())

	assert.NotPanics(t, func() {
		sm.EndSpanWithError(span, errors.New("test"))
		sm.AddSpanEvent(ctx, "event", attribute.String("k", "v"))
	})
}
