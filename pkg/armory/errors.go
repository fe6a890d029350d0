package armory

import "fmt"

// CatalogError wraps a failure to forge one catalog entry.
type CatalogError struct {
	// Source is the catalog source.
	Source string
	// Index is the position of the failing entry.
	Index int
	// Name is the entry's name field, or the default name when it has none.
	Name string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *CatalogError) Error() string {
	return fmt.Sprintf("catalog %s entry %d (%s): %v", e.Source, e.Index, e.Name, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *CatalogError) Unwrap() error {
	return e.Err
}
