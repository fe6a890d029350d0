// Package errors provides the error types returned by armory packages.
//
// Typed errors map onto sentinels through an Is method, so callers can
// match with the standard errors.Is or the helpers in this package:
//
//	if errors.IsNotFound(err) {
//	    // name was never registered
//	}
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrConfiguration indicates a prototype could not resolve its state.
	ErrConfiguration = errors.New("invalid prototype configuration")

	// ErrNotFound indicates a registry key does not exist.
	ErrNotFound = errors.New("not found")
)

// ConfigurationError is returned when a clone cannot produce a usable
// prototype, most often because the rarity has no known probability
// and none was supplied.
type ConfigurationError struct {
	// Field is the attribute at fault ("rarity", "name", ...).
	Field string
	// Value is the offending value, if any.
	Value any
	// Message describes the problem.
	Message string
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("configuration error on %s %v: %s", e.Field, e.Value, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Is reports whether target is ErrConfiguration.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// NotFoundError is returned when removing a key that is not registered.
type NotFoundError struct {
	Key string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("registry: key %q not found", e.Key)
}

// Is reports whether target is ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewConfigurationError creates a new ConfigurationError.
func NewConfigurationError(field string, value any, message string) error {
	return &ConfigurationError{Field: field, Value: value, Message: message}
}

// NewNotFoundError creates a new NotFoundError.
func NewNotFoundError(key string) error {
	return &NotFoundError{Key: key}
}

// IsConfiguration reports whether err is or wraps a configuration error.
func IsConfiguration(err error) bool {
	return errors.Is(err, ErrConfiguration)
}

// IsNotFound reports whether err is or wraps a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
