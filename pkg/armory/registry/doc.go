// Package registry provides a generic thread-safe registry that remembers
// insertion order.
//
// # Basic Usage
//
//	r := registry.New[string, *prototype.WeaponType]()
//	r.Register("wood", wood)
//	r.Register("steel", steel)
//
//	for name, w := range r.All() {
//	    fmt.Println(name, w.Probability) // wood first, then steel
//	}
//
//	if err := r.Unregister("bronze"); errors.IsNotFound(err) {
//	    // bronze was never registered
//	}
//
// # Ordering
//
// Keys keep the position of their first registration. Registering an
// existing key replaces the value in place; unregistering removes the key
// from the order, and registering it again appends it at the end.
//
// # Thread Safety
//
// All Registry methods are safe for concurrent use. All and Snapshot copy
// the entries under a read lock, so an iteration in progress does not see
// later Register or Unregister calls:
//
//	for name := range r.All() {
//	    _ = r.Unregister(name) // safe, iteration continues over the snapshot
//	}
package registry
