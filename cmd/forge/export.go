package main

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ersonp/lore-forge/internal/application/handlers"
	"github.com/ersonp/lore-forge/internal/domain/entities"
	"github.com/ersonp/lore-forge/internal/domain/services"
)

type exportFlags struct {
	format    string
	output    string
	archetype string
	origin    string
	limit     int
}

type exporter struct {
	archive *handlers.ArchiveHandler
	format  string
	output  string
}

func newExportCmd() *cobra.Command {
	var flags exportFlags

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export archived characters to file",
		Long:  "Exports archived characters to JSON, CSV, or a markdown collection.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", "json", "Output format (json, csv, markdown)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().StringVarP(&flags.archetype, "archetype", "a", "", "Filter by archetype")
	cmd.Flags().StringVarP(&flags.origin, "origin", "g", "", "Filter by origin")
	cmd.Flags().IntVarP(&flags.limit, "limit", "l", DefaultExportLimit, "Maximum number of characters to export")

	return cmd
}

func runExport(cmd *cobra.Command, flags exportFlags) error {
	if err := checkFormat(flags.format, exportFormats); err != nil {
		return err
	}

	ctx := cmd.Context()

	return withArchive(ctx, func(d *Deps) error {
		e := &exporter{
			archive: d.ArchiveHandler,
			format:  flags.format,
			output:  flags.output,
		}

		chars, err := e.fetchCharacters(ctx, flags.archetype, flags.origin, flags.limit)
		if err != nil {
			return err
		}

		return e.export(chars)
	})
}

// fetchCharacters reads up to limit characters a page at a time.
func (e *exporter) fetchCharacters(ctx context.Context, archetype, origin string, limit int) ([]*entities.ArchivedCharacter, error) {
	var chars []*entities.ArchivedCharacter
	for len(chars) < limit {
		page, err := e.archive.List(ctx, handlers.ListQuery{
			Archetype: archetype,
			Origin:    origin,
			Limit:     min(DefaultListLimit, limit-len(chars)),
			Offset:    len(chars),
		})
		if err != nil {
			return nil, fmt.Errorf("listing characters: %w", err)
		}
		chars = append(chars, page.Characters...)
		if len(page.Characters) == 0 || len(chars) >= page.Total {
			break
		}
	}

	if len(chars) == 0 {
		return nil, errors.New("no characters found to export")
	}
	return chars, nil
}

func (e *exporter) export(chars []*entities.ArchivedCharacter) error {
	err := writeOutput(e.output, func(w io.Writer) error {
		return formatCharacters(w, e.format, chars)
	})
	if err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	if e.output != "" {
		fmt.Printf("Exported %d characters to %s\n", len(chars), e.output)
	}
	return nil
}

func formatCharacters(w io.Writer, format string, chars []*entities.ArchivedCharacter) error {
	switch format {
	case "json":
		return formatJSON(w, chars)
	case "csv":
		return formatCSV(w, chars)
	case "markdown":
		return formatMarkdown(w, chars)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func formatJSON(w io.Writer, chars []*entities.ArchivedCharacter) error {
	if chars == nil {
		chars = []*entities.ArchivedCharacter{}
	}
	return writeJSON(w, chars)
}

var csvHeader = []string{
	"id", "name", "age", "archetype", "origin", "birthplace", "traits",
	"core_motivation", "hidden_truth", "relationships", "seed", "created_at",
}

func formatCSV(w io.Writer, chars []*entities.ArchivedCharacter) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeader); err != nil {
		return err
	}

	for _, c := range chars {
		lore := c.Lore
		roles := make([]string, len(lore.KeyRelationships))
		for i, rel := range lore.KeyRelationships {
			roles[i] = rel.Name + " (" + rel.Role + ")"
		}

		row := []string{
			c.ID,
			lore.Identity.Name,
			strconv.Itoa(lore.Identity.Age),
			lore.Identity.Archetype.String(),
			lore.Background.Origin.String(),
			lore.Background.Birthplace,
			strings.Join(lore.Identity.PersonalityTraits, "; "),
			lore.Psychology.CoreMotivation,
			lore.Psychology.HiddenTruth,
			strings.Join(roles, "; "),
			strconv.FormatInt(c.Seed, 10),
			c.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// formatMarkdown writes the characters as one collection document, the
// same shape batch produces.
func formatMarkdown(w io.Writer, chars []*entities.ArchivedCharacter) error {
	lores := make([]entities.CharacterLore, len(chars))
	for i, c := range chars {
		lores[i] = c.Lore
	}
	_, err := io.WriteString(w, services.RenderCollection(lores))
	return err
}
