package attrs

import (
	"maps"
	"slices"
)

// Set wraps a map[string]any for type-safe value extraction.
type Set struct {
	data map[string]any
}

// New creates a Set from a copy of the given map.
// If data is nil, an empty Set is returned.
func New(data map[string]any) Set {
	m := make(map[string]any, len(data))
	maps.Copy(m, data)
	return Set{data: m}
}

// String returns the string value for key, or defaultVal if missing or not a string.
func (s Set) String(key, defaultVal string) string {
	if v, ok := s.LookupString(key); ok {
		return v
	}
	return defaultVal
}

// LookupString returns the string value for key and whether it was present as a string.
func (s Set) LookupString(key string) (string, bool) {
	v, ok := s.data[key]
	if !ok {
		return "", false
	}
	str, ok := v.(string)
	return str, ok
}

// Int returns the integer value for key, or defaultVal if missing or not convertible.
//
// Accepts:
//   - int: used directly
//   - int64: converted to int
//   - float64: converted to int (only if no fractional part)
func (s Set) Int(key string, defaultVal int) int {
	v, ok := s.data[key]
	if !ok {
		return defaultVal
	}
	switch val := v.(type) {
	case int:
		return val
	case int64:
		return int(val)
	case float64:
		if val == float64(int(val)) {
			return int(val)
		}
	}
	return defaultVal
}

// LookupFloat returns the float64 value for key and whether it was present
// as a number.
//
// Accepts:
//   - float64: used directly
//   - float32, int, int64: converted to float64
func (s Set) LookupFloat(key string) (float64, bool) {
	v, ok := s.data[key]
	if !ok {
		return 0, false
	}
	switch val := v.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int64:
		return float64(val), true
	}
	return 0, false
}

// Any returns the raw value for key, or defaultVal if missing.
func (s Set) Any(key string, defaultVal any) any {
	v, ok := s.data[key]
	if !ok {
		return defaultVal
	}
	return v
}

// Has returns true if the key exists in the set.
func (s Set) Has(key string) bool {
	_, ok := s.data[key]
	return ok
}

// Len returns the number of attributes.
func (s Set) Len() int {
	return len(s.data)
}

// Keys returns all keys in sorted order.
func (s Set) Keys() []string {
	return slices.Sorted(maps.Keys(s.data))
}

// Raw returns the underlying map.
// Every Set owns its map, so writes through Raw are seen by this Set only.
func (s Set) Raw() map[string]any {
	return s.data
}
