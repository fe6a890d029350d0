package main

import (
	"github.com/randalmurphal/armory/pkg/armory/catalog"
	"github.com/spf13/cobra"
)

func newLoadCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "load <catalog>",
		Short: "Forge weapon types from a YAML or JSON catalog and print their odds",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := catalog.FromFile(args[0])
			if err != nil {
				return err
			}

			ar := a.newArmory()
			if _, err := ar.LoadCatalog(cmd.Context(), c); err != nil {
				return err
			}
			return ar.Report(cmd.OutOrStdout())
		},
	}
}
