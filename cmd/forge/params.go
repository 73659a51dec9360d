package main

import (
	"github.com/spf13/cobra"

	"github.com/ersonp/lore-forge/internal/application/handlers"
)

// paramFlags are the generation parameter flags shared by generate and batch.
type paramFlags struct {
	preset       string
	file         string
	tragedy      float64
	complexity   int
	relationship int
	mystery      float64
	power        int
}

func (f *paramFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&f.preset, "preset", "p", "", "Parameter preset (default, tragic, mysterious, epic-villain)")
	flags.StringVar(&f.file, "params", "", "YAML or JSON parameters file applied over the preset")
	flags.Float64Var(&f.tragedy, "tragedy", 0, "Probability a defining moment is a tragedy (0-1)")
	flags.IntVar(&f.complexity, "complexity", 0, "Target number of defining moments")
	flags.IntVar(&f.relationship, "relationships", 0, "Target number of key relationships")
	flags.Float64Var(&f.mystery, "mystery", 0, "Probability of a hidden truth (0-1)")
	flags.IntVar(&f.power, "power", 0, "Power scale carried with the character (positive)")
}

// source turns the flags into a parameter source. Only flags the user set
// override the preset and file.
func (f *paramFlags) source(cmd *cobra.Command) handlers.ParameterSource {
	src := handlers.ParameterSource{Preset: f.preset, File: f.file}
	changed := cmd.Flags().Changed

	if changed("tragedy") {
		src.TragedyWeight = &f.tragedy
	}
	if changed("complexity") {
		src.ComplexityWeight = &f.complexity
	}
	if changed("relationships") {
		src.RelationshipWeight = &f.relationship
	}
	if changed("mystery") {
		src.MysteryFactor = &f.mystery
	}
	if changed("power") {
		src.PowerScale = &f.power
	}
	return src
}
