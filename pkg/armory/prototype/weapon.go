package prototype

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/randalmurphal/armory/pkg/armory/attrs"
)

// Type defaults every clone starts from.
const (
	DefaultName   = "iron"
	DefaultRarity = Common
)

// WeaponType is a prototype for a family of weapons.
//
// Instances are produced by New or Clone and always carry a resolved
// Probability. Fields are exported for reading; changing them after
// creation is not part of the contract.
type WeaponType struct {
	// ID uniquely identifies this instance.
	ID string

	Name        string
	Rarity      Rarity
	Probability float64

	// Attributes holds overrides without a typed field.
	Attributes attrs.Set
}

// defaults returns a fresh record holding the type defaults.
func defaults() *WeaponType {
	return &WeaponType{
		Name:       DefaultName,
		Rarity:     DefaultRarity,
		Attributes: attrs.New(nil),
	}
}

// New returns the root prototype: the type defaults with the probability
// of the default rarity.
func New() *WeaponType {
	w := defaults()
	w.ID = uuid.NewString()
	w.Probability, _ = w.Rarity.Probability()
	return w
}

// Clone returns a new WeaponType built from the type defaults with opts
// applied. The receiver's own field values are not copied. The clone has a
// new ID and its own Attributes map.
//
// Clone fails with a configuration error if an option carries a value of
// the wrong type, or if the resulting rarity is unknown and no explicit
// probability was given.
func (w *WeaponType) Clone(opts ...Option) (*WeaponType, error) {
	var o overrides
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	obj := defaults()
	if o.name != nil {
		obj.Name = *o.name
	}
	if o.rarity != nil {
		obj.Rarity = *o.rarity
	}
	obj.Attributes = attrs.New(o.attributes)

	p, err := DeriveProbability(obj.Rarity, o.probability)
	if err != nil {
		return nil, err
	}
	obj.Probability = p
	obj.ID = uuid.NewString()
	return obj, nil
}

// Percent returns the probability as a percentage, rounded to twelve
// significant digits so float noise does not leak into output.
func (w *WeaponType) Percent() float64 {
	v, err := strconv.ParseFloat(strconv.FormatFloat(w.Probability*100, 'g', 12, 64), 64)
	if err != nil {
		return w.Probability * 100
	}
	return v
}

// String implements fmt.Stringer.
func (w *WeaponType) String() string {
	return fmt.Sprintf("%s (%s, p=%g)", w.Name, w.Rarity, w.Probability)
}
