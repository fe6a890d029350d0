package armory

import (
	"log/slog"

	"github.com/randalmurphal/armory/pkg/armory/prototype"
)

// config holds Armory construction settings.
type config struct {
	logger  *slog.Logger
	metrics bool
	tracing bool
	root    *prototype.WeaponType
}

// Option configures an Armory.
type Option func(*config)

// WithLogger sets the structured logger. Default: no logging.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithMetrics enables OpenTelemetry metrics. Default: false.
func WithMetrics(enabled bool) Option {
	return func(c *config) {
		c.metrics = enabled
	}
}

// WithTracing enables OpenTelemetry tracing. Default: false.
func WithTracing(enabled bool) Option {
	return func(c *config) {
		c.tracing = enabled
	}
}

// WithRoot sets the root prototype that Forge clones.
// Default: prototype.New().
func WithRoot(root *prototype.WeaponType) Option {
	return func(c *config) {
		if root != nil {
			c.root = root
		}
	}
}
