package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ersonp/lore-forge/internal/application/handlers"
	"github.com/ersonp/lore-forge/internal/domain/entities"
)

type generateFlags struct {
	archetype string
	origin    string
	name      string
	format    string
	output    string
	archive   bool
	params    paramFlags
}

// generatedCharacter is the JSON shape of generate's output.
type generatedCharacter struct {
	Seed       int64                         `json:"seed"`
	ArchiveID  string                        `json:"archive_id,omitempty"`
	Parameters entities.GenerationParameters `json:"parameters"`
	Lore       entities.CharacterLore        `json:"lore"`
}

func newGenerateCmd() *cobra.Command {
	var flags generateFlags

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one character",
		Long: `Generates one character and prints its character sheet.

Archetype, origin and name are drawn at random unless given. Parameters come
from the preset, then the parameters file, then any individual flag.`,
		Example: `  forge generate --archetype Hero --origin Noble --preset tragic
  forge generate --seed 42 --format json -o hero.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, &flags)
		},
	}

	cmd.Flags().StringVarP(&flags.archetype, "archetype", "a", "", "Archetype such as Hero, Villain or Trickster (random when empty)")
	cmd.Flags().StringVarP(&flags.origin, "origin", "g", "", "Origin such as Noble, Exile or Academic (random when empty)")
	cmd.Flags().StringVarP(&flags.name, "name", "n", "", "Character name (drawn from the origin when empty)")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "markdown", "Output format (markdown, json)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().BoolVar(&flags.archive, "archive", false, "Store the character in the archive")
	flags.params.register(cmd)

	return cmd
}

func runGenerate(cmd *cobra.Command, flags *generateFlags) error {
	if err := checkFormat(flags.format, generateFormats); err != nil {
		return err
	}

	ctx := cmd.Context()
	with := withDeps
	if flags.archive {
		with = withArchive
	}

	return with(ctx, func(d *Deps) error {
		params, err := handlers.ResolveParameters(d.parameterSource(flags.params.source(cmd)))
		if err != nil {
			return err
		}

		result, err := d.GenerateHandler.Handle(ctx, handlers.GenerateCommand{
			Archetype:  flags.archetype,
			Origin:     flags.origin,
			Name:       flags.name,
			Parameters: params,
			Seed:       globalSeed,
			Archive:    flags.archive,
		})
		if err != nil {
			return err
		}

		d.Logger.Info("generated character",
			"name", result.Lore.Identity.Name,
			"archetype", result.Lore.Identity.Archetype,
			"seed", result.Seed,
		)

		err = writeOutput(flags.output, func(w io.Writer) error {
			if flags.format == "json" {
				return writeJSON(w, generatedCharacter{
					Seed:       result.Seed,
					ArchiveID:  result.ArchiveID,
					Parameters: params,
					Lore:       result.Lore,
				})
			}
			_, err := io.WriteString(w, result.Narrative)
			return err
		})
		if err != nil {
			return fmt.Errorf("writing character: %w", err)
		}

		if flags.output != "" {
			fmt.Printf("Wrote %s to %s\n", result.Lore.Identity.Name, flags.output)
		}
		if result.ArchiveID != "" {
			fmt.Printf("Archived as %s\n", result.ArchiveID)
		}
		return nil
	})
}
