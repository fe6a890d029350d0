package armory

import (
	"context"
	"iter"
	"log/slog"
	"time"

	"github.com/randalmurphal/armory/pkg/armory/catalog"
	"github.com/randalmurphal/armory/pkg/armory/errors"
	"github.com/randalmurphal/armory/pkg/armory/observability"
	"github.com/randalmurphal/armory/pkg/armory/prototype"
	"github.com/randalmurphal/armory/pkg/armory/registry"
	"go.opentelemetry.io/otel/attribute"
)

// Armory combines a root prototype with a registry of named weapon types.
// It is safe for concurrent use.
type Armory struct {
	root    *prototype.WeaponType
	types   *registry.Registry[string, *prototype.WeaponType]
	logger  *slog.Logger
	metrics observability.MetricsRecorder
	spans   observability.SpanManager
}

// New creates an empty Armory.
func New(opts ...Option) *Armory {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.root == nil {
		cfg.root = prototype.New()
	}

	a := &Armory{
		root:    cfg.root,
		types:   registry.New[string, *prototype.WeaponType](),
		logger:  cfg.logger,
		metrics: observability.NoopMetrics{},
		spans:   observability.NoopSpanManager{},
	}
	if cfg.metrics {
		a.metrics = observability.NewMetricsRecorder()
	}
	if cfg.tracing {
		a.spans = observability.NewSpanManager()
	}
	return a
}

// Root returns the root prototype.
func (a *Armory) Root() *prototype.WeaponType {
	return a.root
}

// Clone clones the root prototype without registering the result.
func (a *Armory) Clone(ctx context.Context, opts ...prototype.Option) (*prototype.WeaponType, error) {
	ctx, span := a.spans.StartCloneSpan(ctx)
	start := time.Now()

	w, err := a.root.Clone(opts...)

	rarity := "unresolved"
	if w != nil {
		rarity = w.Rarity.String()
	}
	a.metrics.RecordClone(ctx, rarity, time.Since(start), err)
	if err != nil {
		observability.LogCloneError(a.logger, err)
		a.spans.EndSpanWithError(span, err)
		return nil, err
	}

	span.SetAttributes(
		attribute.String("weapon.id", w.ID),
		attribute.String("weapon.name", w.Name),
		attribute.String("weapon.rarity", rarity),
		attribute.Float64("weapon.probability", w.Probability),
	)
	observability.LogClone(a.logger, w.ID, w.Name, rarity, w.Probability)
	a.spans.EndSpanWithError(span, nil)
	return w, nil
}

// Forge clones the root prototype and registers the clone under its name.
// An existing entry with the same name is replaced.
func (a *Armory) Forge(ctx context.Context, opts ...prototype.Option) (*prototype.WeaponType, error) {
	w, err := a.Clone(ctx, opts...)
	if err != nil {
		return nil, err
	}
	if err := a.Register(ctx, w.Name, w); err != nil {
		return nil, err
	}
	return w, nil
}

// Register adds or replaces the weapon type stored under name.
// Returns *errors.ConfigurationError if w is nil.
func (a *Armory) Register(ctx context.Context, name string, w *prototype.WeaponType) error {
	if w == nil {
		err := errors.NewConfigurationError("weapon type", name, "must not be nil")
		a.metrics.RecordRegistryOp(ctx, observability.OpRegister, err)
		observability.LogRegisterError(a.logger, name, err)
		return err
	}

	replaced := a.types.Has(name)
	a.types.Register(name, w)
	size := a.types.Len()

	a.metrics.RecordRegistryOp(ctx, observability.OpRegister, nil)
	a.metrics.RecordRegistrySize(ctx, size)
	a.spans.AddSpanEvent(ctx, "weapon type registered",
		attribute.String("name", name),
		attribute.Bool("replaced", replaced),
	)
	observability.LogRegister(a.logger, name, replaced, size)
	return nil
}

// Unregister removes the weapon type stored under name.
// Returns *errors.NotFoundError if name is not registered.
func (a *Armory) Unregister(ctx context.Context, name string) error {
	err := a.types.Unregister(name)
	a.metrics.RecordRegistryOp(ctx, observability.OpUnregister, err)
	if err != nil {
		observability.LogUnregisterError(a.logger, name, err)
		return err
	}

	size := a.types.Len()
	a.metrics.RecordRegistrySize(ctx, size)
	observability.LogUnregister(a.logger, name, size)
	return nil
}

// Lookup returns the weapon type stored under name.
func (a *Armory) Lookup(name string) (*prototype.WeaponType, bool) {
	return a.types.Get(name)
}

// All iterates over a snapshot of the registered weapon types in
// registration order.
func (a *Armory) All() iter.Seq2[string, *prototype.WeaponType] {
	return a.types.All()
}

// Names returns the registered names in registration order.
func (a *Armory) Names() []string {
	return a.types.Keys()
}

// Len returns the number of registered weapon types.
func (a *Armory) Len() int {
	return a.types.Len()
}

// LoadCatalog forges every catalog entry in order and returns how many
// were registered. It stops at the first entry that fails to clone; entries
// before it stay registered.
func (a *Armory) LoadCatalog(ctx context.Context, c *catalog.Catalog) (int, error) {
	ctx, span := a.spans.StartCatalogSpan(ctx, c.Source, c.Len())
	done := observability.TimedOperation()

	for i, entry := range c.Entries {
		if _, err := a.Forge(ctx, prototype.WithFields(entry.Raw())); err != nil {
			observability.LogCatalogError(a.logger, c.Source, i, err)
			a.spans.EndSpanWithError(span, err)
			return i, &CatalogError{
				Source: c.Source,
				Index:  i,
				Name:   entry.String(prototype.FieldName, prototype.DefaultName),
				Err:    err,
			}
		}
	}

	observability.LogCatalogLoaded(a.logger, c.Source, c.Len(), done())
	a.spans.EndSpanWithError(span, nil)
	return c.Len(), nil
}
