// Package observability provides logging, metrics, and tracing for armory.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
// Every helper accepts a nil logger.
package observability

import (
	"log/slog"
	"time"
)

// LogClone logs a successful clone.
func LogClone(logger *slog.Logger, id, name, rarity string, probability float64) {
	if logger == nil {
		return
	}
	logger.Debug("prototype cloned",
		slog.String("id", id),
		slog.String("name", name),
		slog.String("rarity", rarity),
		slog.Float64("probability", probability),
	)
}

// LogCloneError logs a failed clone.
func LogCloneError(logger *slog.Logger, err error) {
	if logger == nil {
		return
	}
	logger.Error("prototype clone failed",
		slog.String("error", err.Error()),
	)
}

// LogRegister logs a registry insert. replaced is true when an existing
// entry was overwritten.
func LogRegister(logger *slog.Logger, name string, replaced bool, size int) {
	if logger == nil {
		return
	}
	logger.Info("weapon type registered",
		slog.String("name", name),
		slog.Bool("replaced", replaced),
		slog.Int("registry_size", size),
	)
}

// LogRegisterError logs a rejected registry insert.
func LogRegisterError(logger *slog.Logger, name string, err error) {
	if logger == nil {
		return
	}
	logger.Error("weapon type register failed",
		slog.String("name", name),
		slog.String("error", err.Error()),
	)
}

// LogUnregister logs a registry removal.
func LogUnregister(logger *slog.Logger, name string, size int) {
	if logger == nil {
		return
	}
	logger.Info("weapon type unregistered",
		slog.String("name", name),
		slog.Int("registry_size", size),
	)
}

// LogUnregisterError logs a failed registry removal.
func LogUnregisterError(logger *slog.Logger, name string, err error) {
	if logger == nil {
		return
	}
	logger.Warn("weapon type unregister failed",
		slog.String("name", name),
		slog.String("error", err.Error()),
	)
}

// LogCatalogLoaded logs a completed catalog load.
func LogCatalogLoaded(logger *slog.Logger, source string, count int, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Info("catalog loaded",
		slog.String("source", source),
		slog.Int("weapon_types", count),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogCatalogError logs a catalog load that stopped at entry index.
func LogCatalogError(logger *slog.Logger, source string, index int, err error) {
	if logger == nil {
		return
	}
	logger.Error("catalog load failed",
		slog.String("source", source),
		slog.Int("entry", index),
		slog.String("error", err.Error()),
	)
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time in milliseconds.
//
// Example:
//
//	done := TimedOperation()
//	// ... do work ...
//	durationMs := done()
func TimedOperation() func() float64 {
	start := time.Now()
	return func() float64 {
		return float64(time.Since(start).Microseconds()) / 1000
	}
}
