package handlers

import (
	"fmt"

	"github.com/ersonp/lore-forge/internal/domain/catalog"
	"github.com/ersonp/lore-forge/internal/domain/entities"
	"github.com/ersonp/lore-forge/internal/infrastructure/parsers"
)

// PresetInfo describes one parameter preset.
type PresetInfo struct {
	Name        string                        `json:"name"`
	Description string                        `json:"description"`
	Parameters  entities.GenerationParameters `json:"parameters"`
}

// CatalogReport summarises a catalog.
type CatalogReport struct {
	Source   string             `json:"source"`
	Stats    []catalog.PoolStat `json:"stats"`
	Moments  int                `json:"distinct_moments"`
	Roles    int                `json:"roles"`
	Override bool               `json:"override"`
}

// LoadCatalog returns the built-in catalog, or the built-in catalog with the
// override file at path merged over it.
func LoadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default(), nil
	}

	tables, err := parsers.ParseFile(path)
	if err != nil {
		return nil, err
	}

	c, err := catalog.New(catalog.DefaultTables().Merge(tables))
	if err != nil {
		return nil, fmt.Errorf("applying catalog overrides: %w", err)
	}
	return c, nil
}

// CheckCatalog loads the catalog at path and reports on it. An empty path
// reports on the built-in catalog.
func CheckCatalog(path string) (*CatalogReport, error) {
	c, err := LoadCatalog(path)
	if err != nil {
		return nil, err
	}

	source := "built-in"
	if path != "" {
		source = path
	}

	return &CatalogReport{
		Source:   source,
		Stats:    c.Stats(),
		Moments:  c.DistinctMomentCount(),
		Roles:    c.RoleCount(),
		Override: path != "",
	}, nil
}

// Presets describes every preset in display order.
func Presets() []PresetInfo {
	infos := make([]PresetInfo, 0, len(entities.AllPresets))
	for _, p := range entities.AllPresets {
		infos = append(infos, PresetInfo{
			Name:        string(p),
			Description: p.Description(),
			Parameters:  p.Parameters(),
		})
	}
	return infos
}
