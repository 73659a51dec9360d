package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ersonp/lore-forge/internal/application/handlers"
)

func newPresetsCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List parameter presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := handlers.Presets()
			if asJSON {
				return writeJSON(os.Stdout, presets)
			}

			for _, p := range presets {
				fmt.Printf("%s\n  %s\n", p.Name, p.Description)
				fmt.Printf("  tragedy=%.2f complexity=%d relationships=%d mystery=%.2f power=%d\n\n",
					p.Parameters.TragedyWeight,
					p.Parameters.ComplexityWeight,
					p.Parameters.RelationshipWeight,
					p.Parameters.MysteryFactor,
					p.Parameters.PowerScale,
				)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print presets as JSON")

	return cmd
}
