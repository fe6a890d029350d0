/*
Package prototype implements weapon types that are created by cloning.

# Overview

A WeaponType is never built field by field. The root instance comes from
New, and every other instance is a Clone of an existing one with selected
attributes overridden:

	root := prototype.New() // iron, common, 0.8

	wood, err := root.Clone(
	    prototype.WithName("wood"),
	    prototype.WithRarity(prototype.Uncommon),
	)

	diamond, err := root.Clone(
	    prototype.WithName("diamond"),
	    prototype.WithRarity("godlike"),
	    prototype.WithProbability(0.005),
	)

# Clone Semantics

Clone starts from the type defaults (DefaultName, DefaultRarity), not from
the receiver's current values, then applies the options. Cloning "wood"
without options therefore yields "iron". Names other than name, rarity
and probability land in the clone's Attributes.

# Probability

The probability of finding a weapon type is derived from its rarity:

	common    0.8
	uncommon  0.4
	rare      0.05

The table always wins. A rarity outside the table needs an explicit
probability (WithProbability); without one Clone fails with an
*errors.ConfigurationError.
*/
package prototype
