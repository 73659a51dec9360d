package catalog

import (
	"maps"
	"slices"

	"github.com/ersonp/lore-forge/internal/domain/entities"
)

// Pool names used by Stats, CSV overrides and error messages.
const (
	PoolNames               = "names"
	PoolMotivations         = "motivations"
	PoolAgeRange            = "age_range"
	PoolPositiveTraits      = "positive_traits"
	PoolNegativeTraits      = "negative_traits"
	PoolNeutralTraits       = "neutral_traits"
	PoolBirthplaces         = "birthplaces"
	PoolTragedyMoments      = "tragedy_moments"
	PoolRevelationMoments   = "revelation_moments"
	PoolRelationships       = "relationships"
	PoolFatalFlaws          = "fatal_flaws"
	PoolGreatestFears       = "greatest_fears"
	PoolInternalConflicts   = "internal_conflicts"
	PoolHiddenTruths        = "hidden_truths"
	PoolDistinctiveFeatures = "distinctive_features"
)

// FlatPools lists the pools that are not keyed by origin or archetype, in
// the order they are reported.
var FlatPools = []string{
	PoolPositiveTraits,
	PoolNegativeTraits,
	PoolNeutralTraits,
	PoolBirthplaces,
	PoolTragedyMoments,
	PoolRevelationMoments,
	PoolFatalFlaws,
	PoolGreatestFears,
	PoolInternalConflicts,
	PoolHiddenTruths,
	PoolDistinctiveFeatures,
}

// Tables is the raw, serialisable shape of a catalog. It is what override
// files decode into; New turns it into a validated Catalog.
type Tables struct {
	Names       map[entities.Origin][]string             `yaml:"names,omitempty" json:"names,omitempty"`
	Motivations map[entities.Archetype][]string          `yaml:"motivations,omitempty" json:"motivations,omitempty"`
	AgeRanges   map[entities.Archetype]entities.AgeRange `yaml:"age_ranges,omitempty" json:"age_ranges,omitempty"`

	PositiveTraits      []string                        `yaml:"positive_traits,omitempty" json:"positive_traits,omitempty"`
	NegativeTraits      []string                        `yaml:"negative_traits,omitempty" json:"negative_traits,omitempty"`
	NeutralTraits       []string                        `yaml:"neutral_traits,omitempty" json:"neutral_traits,omitempty"`
	Birthplaces         []string                        `yaml:"birthplaces,omitempty" json:"birthplaces,omitempty"`
	TragedyMoments      []string                        `yaml:"tragedy_moments,omitempty" json:"tragedy_moments,omitempty"`
	RevelationMoments   []string                        `yaml:"revelation_moments,omitempty" json:"revelation_moments,omitempty"`
	Relationships       []entities.RelationshipTemplate `yaml:"relationships,omitempty" json:"relationships,omitempty"`
	FatalFlaws          []string                        `yaml:"fatal_flaws,omitempty" json:"fatal_flaws,omitempty"`
	GreatestFears       []string                        `yaml:"greatest_fears,omitempty" json:"greatest_fears,omitempty"`
	InternalConflicts   []string                        `yaml:"internal_conflicts,omitempty" json:"internal_conflicts,omitempty"`
	HiddenTruths        []string                        `yaml:"hidden_truths,omitempty" json:"hidden_truths,omitempty"`
	DistinctiveFeatures []string                        `yaml:"distinctive_features,omitempty" json:"distinctive_features,omitempty"`
}

// FlatPool returns a pointer to the named flat pool, or false if name is
// not a flat pool.
func (t *Tables) FlatPool(name string) (*[]string, bool) {
	switch name {
	case PoolPositiveTraits:
		return &t.PositiveTraits, true
	case PoolNegativeTraits:
		return &t.NegativeTraits, true
	case PoolNeutralTraits:
		return &t.NeutralTraits, true
	case PoolBirthplaces:
		return &t.Birthplaces, true
	case PoolTragedyMoments:
		return &t.TragedyMoments, true
	case PoolRevelationMoments:
		return &t.RevelationMoments, true
	case PoolFatalFlaws:
		return &t.FatalFlaws, true
	case PoolGreatestFears:
		return &t.GreatestFears, true
	case PoolInternalConflicts:
		return &t.InternalConflicts, true
	case PoolHiddenTruths:
		return &t.HiddenTruths, true
	case PoolDistinctiveFeatures:
		return &t.DistinctiveFeatures, true
	default:
		return nil, false
	}
}

// IsEmpty reports whether the tables supply nothing at all.
func (t Tables) IsEmpty() bool {
	if len(t.Names) > 0 || len(t.Motivations) > 0 || len(t.AgeRanges) > 0 || len(t.Relationships) > 0 {
		return false
	}
	for _, name := range FlatPools {
		if pool, _ := t.FlatPool(name); len(*pool) > 0 {
			return false
		}
	}
	return true
}

// Merge returns a copy of t with every pool that override supplies replaced.
// Keyed pools are replaced per key, so an override naming only Exile names
// keeps every other origin's names.
func (t Tables) Merge(override Tables) Tables {
	merged := t.Clone()

	for origin, names := range override.Names {
		if len(names) > 0 {
			if merged.Names == nil {
				merged.Names = make(map[entities.Origin][]string)
			}
			merged.Names[origin] = slices.Clone(names)
		}
	}
	for archetype, motivations := range override.Motivations {
		if len(motivations) > 0 {
			if merged.Motivations == nil {
				merged.Motivations = make(map[entities.Archetype][]string)
			}
			merged.Motivations[archetype] = slices.Clone(motivations)
		}
	}
	for archetype, r := range override.AgeRanges {
		if merged.AgeRanges == nil {
			merged.AgeRanges = make(map[entities.Archetype]entities.AgeRange)
		}
		merged.AgeRanges[archetype] = r
	}

	for _, name := range FlatPools {
		src, _ := override.FlatPool(name)
		if len(*src) == 0 {
			continue
		}
		dst, _ := merged.FlatPool(name)
		*dst = slices.Clone(*src)
	}

	if len(override.Relationships) > 0 {
		merged.Relationships = cloneTemplates(override.Relationships)
	}

	return merged
}

// Clone returns a deep copy.
func (t Tables) Clone() Tables {
	c := Tables{
		Names:         cloneKeyed(t.Names),
		Motivations:   cloneKeyed(t.Motivations),
		AgeRanges:     maps.Clone(t.AgeRanges),
		Relationships: cloneTemplates(t.Relationships),
	}
	for _, name := range FlatPools {
		src, _ := t.FlatPool(name)
		dst, _ := c.FlatPool(name)
		*dst = slices.Clone(*src)
	}
	return c
}

func cloneKeyed[K comparable](m map[K][]string) map[K][]string {
	if m == nil {
		return nil
	}
	out := make(map[K][]string, len(m))
	for k, v := range m {
		out[k] = slices.Clone(v)
	}
	return out
}

func cloneTemplates(templates []entities.RelationshipTemplate) []entities.RelationshipTemplate {
	if templates == nil {
		return nil
	}
	out := make([]entities.RelationshipTemplate, len(templates))
	for i, tmpl := range templates {
		out[i] = entities.RelationshipTemplate{
			Role:         tmpl.Role,
			Descriptions: slices.Clone(tmpl.Descriptions),
		}
	}
	return out
}
