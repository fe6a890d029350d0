package prototype

import (
	"github.com/randalmurphal/armory/pkg/armory/errors"
)

// Rarity is the category that determines how likely a weapon type is found.
// Any string is a valid Rarity; only the constants below have a built-in
// probability.
type Rarity string

// Known rarities.
const (
	Common   Rarity = "common"
	Uncommon Rarity = "uncommon"
	Rare     Rarity = "rare"
)

var rarityProbability = map[Rarity]float64{
	Common:   0.8,
	Uncommon: 0.4,
	Rare:     0.05,
}

// Probability returns the built-in probability for r and whether r has one.
func (r Rarity) Probability() (float64, bool) {
	p, ok := rarityProbability[r]
	return p, ok
}

// Known reports whether r has a built-in probability.
func (r Rarity) Known() bool {
	_, ok := rarityProbability[r]
	return ok
}

// String returns the rarity name.
func (r Rarity) String() string {
	return string(r)
}

// DeriveProbability resolves the probability for a weapon type.
//
// A known rarity always decides the result, even if explicit is set.
// Otherwise explicit is returned unchanged, and with neither the result
// is a configuration error.
func DeriveProbability(rarity Rarity, explicit *float64) (float64, error) {
	if p, ok := rarity.Probability(); ok {
		return p, nil
	}
	if explicit == nil {
		return 0, errors.NewConfigurationError(FieldRarity, rarity,
			"rarity not recognized and no explicit probability supplied")
	}
	return *explicit, nil
}
