package main

import (
	"fmt"

	"github.com/randalmurphal/armory/pkg/armory/prototype"
	"github.com/spf13/cobra"
)

// demoWeapons are the overrides for the built-in demo, in registration order.
var demoWeapons = [][]prototype.Option{
	nil,
	{prototype.WithName("wood"), prototype.WithRarity(prototype.Uncommon)},
	{prototype.WithName("steel"), prototype.WithRarity(prototype.Rare)},
	{prototype.WithName("stone")},
	{prototype.WithName("diamond"), prototype.WithRarity("godlike"), prototype.WithProbability(0.005)},
}

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Forge the built-in weapon types and print their odds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ar := a.newArmory()
			for _, opts := range demoWeapons {
				if _, err := ar.Forge(cmd.Context(), opts...); err != nil {
					return fmt.Errorf("forge: %w", err)
				}
			}
			return ar.Report(cmd.OutOrStdout())
		},
	}
}
