package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ersonp/lore-forge/internal/application/handlers"
	"github.com/ersonp/lore-forge/internal/domain/entities"
	"github.com/ersonp/lore-forge/internal/infrastructure/random"
)

// showcase is one demo character.
type showcase struct {
	title     string
	preset    entities.Preset
	archetype entities.Archetype
	origin    entities.Origin
}

var demoShowcases = []showcase{
	{title: "Tragic Hero", preset: entities.PresetTragic, archetype: entities.ArchetypeHero, origin: entities.OriginNoble},
	{title: "Mysterious Stranger", preset: entities.PresetMysterious, archetype: entities.ArchetypeTrickster, origin: entities.OriginExile},
	{title: "Epic Villain", preset: entities.PresetEpicVillain, archetype: entities.ArchetypeVillain, origin: entities.OriginAcademic},
}

var demoRule = strings.Repeat("=", 40)

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Generate one character for each showcase preset",
		Long:  "Generates a tragic hero, a mysterious stranger and an epic villain, each with its preset applied.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			seed, err := random.Resolve(globalSeed)
			if err != nil {
				return err
			}
			return withDeps(ctx, func(d *Deps) error {
				d.Logger.Debug("running demo", "seed", seed)
				return renderDemo(ctx, d.GenerateHandler, seed, os.Stdout)
			})
		},
	}
}

// renderDemo writes every showcase. Showcase i uses seed+i.
func renderDemo(ctx context.Context, h *handlers.GenerateHandler, seed int64, w io.Writer) error {
	if _, err := fmt.Fprintf(w, "=== Character Lore Generator ===\n\nGenerating %d characters with different parameters (seed %d)...\n", len(demoShowcases), seed); err != nil {
		return err
	}

	for i, s := range demoShowcases {
		result, err := h.Handle(ctx, handlers.GenerateCommand{
			Archetype:  s.archetype.String(),
			Origin:     s.origin.String(),
			Parameters: s.preset.Parameters(),
			Seed:       seed + int64(i),
		})
		if err != nil {
			return fmt.Errorf("generating %s: %w", strings.ToLower(s.title), err)
		}

		if _, err := fmt.Fprintf(w, "\n%s\n\n%d. %s (%s preset):\n\n%s", demoRule, i+1, s.title, s.preset, result.Narrative); err != nil {
			return err
		}
	}
	return nil
}
