// Package catalog holds the finite option sets characters are sampled from.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ersonp/lore-forge/internal/domain/entities"
)

// ErrInvalidCatalog is wrapped by every catalog validation failure.
var ErrInvalidCatalog = errors.New("invalid catalog")

// Catalog is a validated, immutable set of content tables. A Catalog is
// safe for concurrent use; slices returned by its accessors are shared and
// must not be modified.
type Catalog struct {
	tables Tables
	// moments is tragedy then revelation, deduplicated across both.
	moments []string
}

// New validates tables and builds a Catalog from a deep copy of them.
// Duplicate entries within a pool are dropped, keeping the first occurrence,
// and relationship templates sharing a role are merged into one.
func New(tables Tables) (*Catalog, error) {
	t := tables.Clone()
	if t.Names == nil {
		t.Names = make(map[entities.Origin][]string)
	}
	if t.Motivations == nil {
		t.Motivations = make(map[entities.Archetype][]string)
	}
	var problems []string

	for key := range t.Names {
		if !key.IsValid() {
			problems = append(problems, fmt.Sprintf("names: unknown origin %q", key))
		}
	}
	for _, origin := range entities.AllOrigins {
		t.Names[origin] = dedupe(t.Names[origin])
		if len(t.Names[origin]) == 0 {
			problems = append(problems, fmt.Sprintf("names: origin %s has no names", origin))
		}
	}

	for key := range t.Motivations {
		if !key.IsValid() {
			problems = append(problems, fmt.Sprintf("motivations: unknown archetype %q", key))
		}
	}
	for key := range t.AgeRanges {
		if !key.IsValid() {
			problems = append(problems, fmt.Sprintf("age_ranges: unknown archetype %q", key))
		}
	}
	for _, archetype := range entities.AllArchetypes {
		t.Motivations[archetype] = dedupe(t.Motivations[archetype])
		if len(t.Motivations[archetype]) == 0 {
			problems = append(problems, fmt.Sprintf("motivations: archetype %s has no motivations", archetype))
		}
		r, ok := t.AgeRanges[archetype]
		switch {
		case !ok:
			problems = append(problems, fmt.Sprintf("age_ranges: archetype %s has no age range", archetype))
		case r.Min < 0 || r.Min > r.Max || r.Max-r.Min+1 <= 0:
			problems = append(problems, fmt.Sprintf("age_ranges: archetype %s has invalid range %d-%d", archetype, r.Min, r.Max))
		}
	}

	for _, name := range FlatPools {
		pool, _ := t.FlatPool(name)
		*pool = dedupe(*pool)
		if len(*pool) == 0 {
			problems = append(problems, fmt.Sprintf("%s: pool is empty", name))
		}
	}

	templates, templateProblems := mergeTemplates(t.Relationships)
	t.Relationships = templates
	problems = append(problems, templateProblems...)
	if len(t.Relationships) == 0 {
		problems = append(problems, "relationships: pool is empty")
	}

	if len(problems) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCatalog, strings.Join(problems, "; "))
	}

	return &Catalog{
		tables:  t,
		moments: dedupe(append(append([]string{}, t.TragedyMoments...), t.RevelationMoments...)),
	}, nil
}

// dedupe trims entries, drops blanks and removes repeats in place order.
func dedupe(pool []string) []string {
	if pool == nil {
		return nil
	}
	seen := make(map[string]struct{}, len(pool))
	out := make([]string, 0, len(pool))
	for _, entry := range pool {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		if _, ok := seen[entry]; ok {
			continue
		}
		seen[entry] = struct{}{}
		out = append(out, entry)
	}
	return out
}

func mergeTemplates(templates []entities.RelationshipTemplate) ([]entities.RelationshipTemplate, []string) {
	var problems []string
	index := make(map[string]int)
	var merged []entities.RelationshipTemplate

	for i, tmpl := range templates {
		role := strings.TrimSpace(tmpl.Role)
		if role == "" {
			problems = append(problems, fmt.Sprintf("relationships: template %d has no role", i+1))
			continue
		}
		if at, ok := index[role]; ok {
			merged[at].Descriptions = append(merged[at].Descriptions, tmpl.Descriptions...)
			continue
		}
		index[role] = len(merged)
		merged = append(merged, entities.RelationshipTemplate{Role: role, Descriptions: tmpl.Descriptions})
	}

	for i := range merged {
		merged[i].Descriptions = dedupe(merged[i].Descriptions)
		if len(merged[i].Descriptions) == 0 {
			problems = append(problems, fmt.Sprintf("relationships: role %s has no descriptions", merged[i].Role))
		}
	}
	return merged, problems
}

// Names returns the name pool for origin.
func (c *Catalog) Names(origin entities.Origin) []string {
	return c.tables.Names[origin]
}

// Motivations returns the motivation pool for archetype.
func (c *Catalog) Motivations(archetype entities.Archetype) []string {
	return c.tables.Motivations[archetype]
}

// AgeRange returns the inclusive age range for archetype.
func (c *Catalog) AgeRange(archetype entities.Archetype) entities.AgeRange {
	return c.tables.AgeRanges[archetype]
}

// PositiveTraits returns the positive personality traits.
func (c *Catalog) PositiveTraits() []string {
	return c.tables.PositiveTraits
}

// NegativeTraits returns the negative personality traits.
func (c *Catalog) NegativeTraits() []string {
	return c.tables.NegativeTraits
}

// NeutralTraits returns the neutral personality traits.
func (c *Catalog) NeutralTraits() []string {
	return c.tables.NeutralTraits
}

// Birthplaces returns the birthplace pool.
func (c *Catalog) Birthplaces() []string {
	return c.tables.Birthplaces
}

// TragedyMoments returns the tragic defining moments.
func (c *Catalog) TragedyMoments() []string {
	return c.tables.TragedyMoments
}

// RevelationMoments returns the revelatory defining moments.
func (c *Catalog) RevelationMoments() []string {
	return c.tables.RevelationMoments
}

// FatalFlaws returns the fatal flaw pool.
func (c *Catalog) FatalFlaws() []string {
	return c.tables.FatalFlaws
}

// GreatestFears returns the greatest fear pool.
func (c *Catalog) GreatestFears() []string {
	return c.tables.GreatestFears
}

// InternalConflicts returns the internal conflict pool.
func (c *Catalog) InternalConflicts() []string {
	return c.tables.InternalConflicts
}

// HiddenTruths returns the hidden truth pool.
func (c *Catalog) HiddenTruths() []string {
	return c.tables.HiddenTruths
}

// DistinctiveFeatures returns the distinctive feature pool.
func (c *Catalog) DistinctiveFeatures() []string {
	return c.tables.DistinctiveFeatures
}

// RelationshipTemplates returns one template per distinct role.
func (c *Catalog) RelationshipTemplates() []entities.RelationshipTemplate {
	return c.tables.Relationships
}

// Moments returns the tragedy pool followed by the revelation pool with
// entries shared by both listed once.
func (c *Catalog) Moments() []string {
	return c.moments
}

// DistinctMomentCount is the most defining moments one character can hold.
func (c *Catalog) DistinctMomentCount() int {
	return len(c.moments)
}

// RoleCount is the most relationships one character can hold.
func (c *Catalog) RoleCount() int {
	return len(c.tables.Relationships)
}

// PoolStat is the size of one pool.
type PoolStat struct {
	Pool  string `json:"pool"`
	Key   string `json:"key,omitempty"`
	Count int    `json:"count"`
}

// Stats reports every pool's size in a stable order: names per origin,
// motivations per archetype, the flat pools, then relationship roles.
func (c *Catalog) Stats() []PoolStat {
	var stats []PoolStat
	for _, origin := range entities.AllOrigins {
		stats = append(stats, PoolStat{Pool: PoolNames, Key: origin.String(), Count: len(c.Names(origin))})
	}
	for _, archetype := range entities.AllArchetypes {
		stats = append(stats, PoolStat{Pool: PoolMotivations, Key: archetype.String(), Count: len(c.Motivations(archetype))})
	}
	for _, name := range FlatPools {
		pool, _ := c.tables.FlatPool(name)
		stats = append(stats, PoolStat{Pool: name, Count: len(*pool)})
	}
	stats = append(stats, PoolStat{Pool: PoolRelationships, Count: c.RoleCount()})
	return stats
}

// Tables returns a deep copy of the validated tables.
func (c *Catalog) Tables() Tables {
	return c.tables.Clone()
}
