/*
Package attrs holds open-ended prototype attributes with typed accessors.

# Overview

A Set wraps a map[string]any. Prototypes use it for any override that is
not one of their typed fields, and catalogs use it for each decoded entry.
Accessors never panic: they return a default value when the key is missing
or the stored value has a different type.

	set := attrs.New(map[string]any{
	    "damage": 40,
	    "weight": 2.5,
	    "label":  "Shiny",
	})

	damage := set.Int("damage", 0)         // 40
	weight, ok := set.LookupFloat("weight") // 2.5, true
	missing := set.String("missing", "")    // ""

The Lookup* variants report whether the value was present with the
expected type, which lets callers tell "absent" from "wrong type".

# Copy Semantics

New copies the map it is given, so a prototype's attributes never alias
the map of the prototype it was cloned from or the caller's input.
Copies are shallow: nested maps or slices are shared.
*/
package attrs
