// Package catalog loads weapon-type definitions from YAML or JSON files.
//
// A catalog lists entries under a top-level "weapons" key. Each entry is a
// mapping of attribute names to values and is applied to a clone with
// prototype.WithFields:
//
//	weapons:
//	  - name: wood
//	    rarity: uncommon
//	  - name: diamond
//	    rarity: godlike
//	    probability: 0.005
//	    damage: 40
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/randalmurphal/armory/pkg/armory/attrs"
	"gopkg.in/yaml.v3"
)

// WeaponsKey is the top-level key holding the entry list.
const WeaponsKey = "weapons"

// ErrInvalidCatalog indicates the document does not have the catalog shape.
var ErrInvalidCatalog = errors.New("invalid catalog")

// Catalog is an ordered list of weapon-type definitions.
type Catalog struct {
	// Source names where the catalog came from (file path or "yaml"/"json").
	Source string
	// Entries holds one attribute set per weapon type, in file order.
	Entries []attrs.Set
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.Entries)
}

// FromFile loads a catalog from a file, auto-detecting format by extension.
// Supported extensions: .yaml, .yml, .json
func FromFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var c *Catalog
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		c, err = FromYAML(data)
	case ".json":
		c, err = FromJSON(data)
	default:
		return nil, fmt.Errorf("unsupported catalog file extension: %s", ext)
	}
	if err != nil {
		return nil, err
	}
	c.Source = path
	return c, nil
}

// FromYAML parses YAML data into a Catalog.
func FromYAML(data []byte) (*Catalog, error) {
	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return fromMap("yaml", m)
}

// FromJSON parses JSON data into a Catalog.
func FromJSON(data []byte) (*Catalog, error) {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	return fromMap("json", m)
}

func fromMap(source string, m map[string]any) (*Catalog, error) {
	raw, ok := m[WeaponsKey]
	if !ok {
		return nil, fmt.Errorf("%w: missing %q key", ErrInvalidCatalog, WeaponsKey)
	}
	if raw == nil {
		return &Catalog{Source: source}, nil
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %q must be a list, got %T", ErrInvalidCatalog, WeaponsKey, raw)
	}

	entries := make([]attrs.Set, 0, len(list))
	for i, item := range list {
		fields, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: entry %d must be a mapping, got %T", ErrInvalidCatalog, i, item)
		}
		entries = append(entries, attrs.New(fields))
	}
	return &Catalog{Source: source, Entries: entries}, nil
}
