package registry

import (
	"fmt"
	"iter"
	"slices"
	"sync"

	"github.com/randalmurphal/armory/pkg/armory/errors"
)

// Registry is a thread-safe, insertion-ordered registry of values indexed by key.
// It uses sync.RWMutex for read-heavy workloads.
type Registry[K comparable, V any] struct {
	mu      sync.RWMutex
	entries map[K]V
	order   []K
}

// New creates a new empty registry.
func New[K comparable, V any]() *Registry[K, V] {
	return &Registry[K, V]{
		entries: make(map[K]V),
	}
}

// Register adds or replaces the value for key.
// A replaced key keeps its position.
func (r *Registry[K, V]) Register(key K, value V) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[key]; !ok {
		r.order = append(r.order, key)
	}
	r.entries[key] = value
}

// Unregister removes key from the registry.
// Returns *errors.NotFoundError if key is not registered.
func (r *Registry[K, V]) Unregister(key K) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[key]; !ok {
		return errors.NewNotFoundError(fmt.Sprint(key))
	}
	delete(r.entries, key)
	r.order = slices.DeleteFunc(r.order, func(k K) bool { return k == key })
	return nil
}

// Get returns the value for a key and whether it exists.
func (r *Registry[K, V]) Get(key K) (V, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.entries[key]
	return v, ok
}

// Has returns true if the key exists in the registry.
func (r *Registry[K, V]) Has(key K) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.entries[key]
	return ok
}

// Keys returns all keys in insertion order.
func (r *Registry[K, V]) Keys() []K {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.order)
}

// Len returns the number of entries in the registry.
func (r *Registry[K, V]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// All returns an iterator over a snapshot of the entries in insertion order.
// The snapshot is taken when iteration starts.
func (r *Registry[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		keys, values := r.snapshot()
		for i, k := range keys {
			if !yield(k, values[i]) {
				return
			}
		}
	}
}

// Snapshot returns a copy of the entries as a map.
// Changes to the registry after the call are not reflected.
func (r *Registry[K, V]) Snapshot() map[K]V {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m := make(map[K]V, len(r.entries))
	for k, v := range r.entries {
		m[k] = v
	}
	return m
}

func (r *Registry[K, V]) snapshot() ([]K, []V) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := slices.Clone(r.order)
	values := make([]V, len(keys))
	for i, k := range keys {
		values[i] = r.entries[k]
	}
	return keys, values
}
