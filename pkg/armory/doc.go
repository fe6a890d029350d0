/*
Package armory keeps a registry of weapon-type prototypes.

# Overview

An Armory owns a root prototype and a registry of named clones. Forge
clones the root with overrides and registers the clone under its name:

	a := armory.New(armory.WithLogger(logger))

	_, err := a.Forge(ctx,
	    prototype.WithName("diamond"),
	    prototype.WithRarity("godlike"),
	    prototype.WithProbability(0.005),
	)

	if err := a.Report(os.Stdout); err != nil {
	    log.Fatal(err)
	}
	// Diamond weapons are godlike you have 0.5% chance of finding one.

Catalog files (see package catalog) forge many weapon types at once:

	c, err := catalog.FromFile("weapons.yaml")
	n, err := a.LoadCatalog(ctx, c)

# Observability

All operations log through slog when a logger is set. WithMetrics and
WithTracing enable OpenTelemetry recording against the global meter and
tracer providers. Disabled features use no-op implementations.

# Packages

  - prototype: WeaponType, Rarity, Clone and probability derivation
  - registry: generic insertion-ordered registry
  - catalog: YAML/JSON weapon-type catalogs
  - attrs: extension attributes with typed accessors
  - errors: ConfigurationError and NotFoundError
  - observability: slog helpers, OTel metrics and spans
*/
package armory
