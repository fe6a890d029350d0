package prototype

import (
	"github.com/randalmurphal/armory/pkg/armory/attrs"
	"github.com/randalmurphal/armory/pkg/armory/errors"
)

// Field names with a typed home on WeaponType.
const (
	FieldName        = "name"
	FieldRarity      = "rarity"
	FieldProbability = "probability"
)

// overrides collects the attributes a clone replaces.
// Nil pointers mean "keep the default".
type overrides struct {
	name        *string
	rarity      *Rarity
	probability *float64
	attributes  map[string]any
	err         error
}

// Option overrides one or more attributes of a clone.
type Option func(*overrides)

// WithName sets the clone's name.
func WithName(name string) Option {
	return func(o *overrides) {
		o.name = &name
	}
}

// WithRarity sets the clone's rarity.
func WithRarity(r Rarity) Option {
	return func(o *overrides) {
		o.rarity = &r
	}
}

// WithProbability supplies an explicit probability.
// It is only used when the rarity has no built-in probability.
func WithProbability(p float64) Option {
	return func(o *overrides) {
		o.probability = &p
	}
}

// WithAttribute sets a single attribute by name. The names "name",
// "rarity" and "probability" set the typed fields; anything else is
// stored in the clone's Attributes.
func WithAttribute(key string, value any) Option {
	return WithFields(map[string]any{key: value})
}

// WithFields applies a map of attributes, as decoded from a catalog entry.
// Known field names must carry the matching type (string for name and
// rarity, a number for probability), otherwise Clone returns a
// configuration error naming the field.
func WithFields(fields map[string]any) Option {
	set := attrs.New(fields)
	return func(o *overrides) {
		for _, key := range set.Keys() {
			if o.err != nil {
				return
			}
			o.apply(set, key)
		}
	}
}

func (o *overrides) apply(set attrs.Set, key string) {
	switch key {
	case FieldName:
		v, ok := set.LookupString(key)
		if !ok {
			o.err = errors.NewConfigurationError(key, set.Any(key, nil), "must be a string")
			return
		}
		o.name = &v
	case FieldRarity:
		v, ok := set.LookupString(key)
		if !ok {
			if r, isRarity := set.Any(key, nil).(Rarity); isRarity {
				o.rarity = &r
				return
			}
			o.err = errors.NewConfigurationError(key, set.Any(key, nil), "must be a string")
			return
		}
		r := Rarity(v)
		o.rarity = &r
	case FieldProbability:
		v, ok := set.LookupFloat(key)
		if !ok {
			o.err = errors.NewConfigurationError(key, set.Any(key, nil), "must be a number")
			return
		}
		o.probability = &v
	default:
		if o.attributes == nil {
			o.attributes = make(map[string]any)
		}
		o.attributes[key] = set.Any(key, nil)
	}
}
