// Package parsers reads catalog override files.
package parsers

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ersonp/lore-forge/internal/domain/catalog"
	"github.com/ersonp/lore-forge/internal/domain/entities"
)

// Parser defines the interface for parsing catalog tables from various formats.
type Parser interface {
	Parse(r io.Reader) (catalog.Tables, error)
}

// ForFormat returns the appropriate parser for the given format.
// Supported formats: "yaml", "json", "csv".
func ForFormat(format string) Parser {
	switch strings.ToLower(format) {
	case "yaml", "yml":
		return &YAMLParser{}
	case "json":
		return &JSONParser{}
	case "csv":
		return &CSVParser{}
	default:
		return nil
	}
}

// ForFile returns the appropriate parser based on file extension.
func ForFile(filename string) Parser {
	return ForFormat(strings.TrimPrefix(filepath.Ext(filename), "."))
}

// ParseFile opens path and parses it with the parser its extension selects.
func ParseFile(path string) (catalog.Tables, error) {
	parser := ForFile(path)
	if parser == nil {
		return catalog.Tables{}, fmt.Errorf("unsupported catalog file type: %s", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return catalog.Tables{}, fmt.Errorf("opening catalog file: %w", err)
	}
	defer f.Close()

	tables, err := parser.Parse(f)
	if err != nil {
		return catalog.Tables{}, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	return tables, nil
}

// canonicalKeys rewrites origin and archetype keys to their canonical
// labels so "noble" and "Noble" land in the same pool.
func canonicalKeys(t *catalog.Tables) error {
	if len(t.Names) > 0 {
		names := make(map[entities.Origin][]string, len(t.Names))
		for key, pool := range t.Names {
			origin, err := entities.ParseOrigin(string(key))
			if err != nil {
				return fmt.Errorf("names: %w", err)
			}
			names[origin] = append(names[origin], pool...)
		}
		t.Names = names
	}

	if len(t.Motivations) > 0 {
		motivations := make(map[entities.Archetype][]string, len(t.Motivations))
		for key, pool := range t.Motivations {
			archetype, err := entities.ParseArchetype(string(key))
			if err != nil {
				return fmt.Errorf("motivations: %w", err)
			}
			motivations[archetype] = append(motivations[archetype], pool...)
		}
		t.Motivations = motivations
	}

	if len(t.AgeRanges) > 0 {
		ranges := make(map[entities.Archetype]entities.AgeRange, len(t.AgeRanges))
		for key, r := range t.AgeRanges {
			archetype, err := entities.ParseArchetype(string(key))
			if err != nil {
				return fmt.Errorf("age_ranges: %w", err)
			}
			ranges[archetype] = r
		}
		t.AgeRanges = ranges
	}

	return nil
}
