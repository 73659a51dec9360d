package entities

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidParameters is wrapped by every parameter validation failure.
var ErrInvalidParameters = errors.New("invalid generation parameters")

// Default parameter values, used for any field a parameters source omits.
const (
	DefaultTragedyWeight      = 0.5
	DefaultComplexityWeight   = 3
	DefaultRelationshipWeight = 2
	DefaultMysteryFactor      = 0.3
	DefaultPowerScale         = 3
)

// GenerationParameters controls the sampling weights and counts used by the
// lore generator.
type GenerationParameters struct {
	// TragedyWeight is the probability that a defining moment comes from the
	// tragedy pool rather than the revelation pool.
	TragedyWeight float64 `json:"tragedy_weight" yaml:"tragedy_weight"`
	// ComplexityWeight is the target number of distinct defining moments.
	ComplexityWeight int `json:"complexity_weight" yaml:"complexity_weight"`
	// RelationshipWeight is the target number of relationships with distinct roles.
	RelationshipWeight int `json:"relationship_weight" yaml:"relationship_weight"`
	// MysteryFactor is the probability that a hidden truth is attached.
	MysteryFactor float64 `json:"mystery_factor" yaml:"mystery_factor"`
	// PowerScale is carried through unchanged; no sampling step reads it yet.
	PowerScale int `json:"power_scale" yaml:"power_scale"`
}

// DefaultParameters returns the documented defaults.
func DefaultParameters() GenerationParameters {
	return GenerationParameters{
		TragedyWeight:      DefaultTragedyWeight,
		ComplexityWeight:   DefaultComplexityWeight,
		RelationshipWeight: DefaultRelationshipWeight,
		MysteryFactor:      DefaultMysteryFactor,
		PowerScale:         DefaultPowerScale,
	}
}

// NewGenerationParameters builds and validates a parameters record.
func NewGenerationParameters(tragedy float64, complexity, relationships int, mystery float64, power int) (GenerationParameters, error) {
	p := GenerationParameters{
		TragedyWeight:      tragedy,
		ComplexityWeight:   complexity,
		RelationshipWeight: relationships,
		MysteryFactor:      mystery,
		PowerScale:         power,
	}
	if err := p.Validate(); err != nil {
		return GenerationParameters{}, err
	}
	return p, nil
}

// Validate checks probabilities lie in [0, 1] and counts are positive.
func (p GenerationParameters) Validate() error {
	var problems []string

	if !inUnitInterval(p.TragedyWeight) {
		problems = append(problems, fmt.Sprintf("tragedy_weight %v outside [0, 1]", p.TragedyWeight))
	}
	if !inUnitInterval(p.MysteryFactor) {
		problems = append(problems, fmt.Sprintf("mystery_factor %v outside [0, 1]", p.MysteryFactor))
	}
	if p.ComplexityWeight <= 0 {
		problems = append(problems, fmt.Sprintf("complexity_weight %d must be positive", p.ComplexityWeight))
	}
	if p.RelationshipWeight <= 0 {
		problems = append(problems, fmt.Sprintf("relationship_weight %d must be positive", p.RelationshipWeight))
	}
	if p.PowerScale <= 0 {
		problems = append(problems, fmt.Sprintf("power_scale %d must be positive", p.PowerScale))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidParameters, strings.Join(problems, "; "))
	}
	return nil
}

// inUnitInterval reports whether v lies in [0, 1]. NaN does not.
func inUnitInterval(v float64) bool {
	return v >= 0 && v <= 1
}

// Preset names a canned parameter set.
type Preset string

const (
	PresetDefault     Preset = "default"
	PresetTragic      Preset = "tragic"
	PresetMysterious  Preset = "mysterious"
	PresetEpicVillain Preset = "epic-villain"
)

// AllPresets lists the presets in display order.
var AllPresets = []Preset{PresetDefault, PresetTragic, PresetMysterious, PresetEpicVillain}

// ParsePreset resolves a preset name. The empty string means PresetDefault.
func ParsePreset(s string) (Preset, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return PresetDefault, nil
	}
	for _, p := range AllPresets {
		if s == string(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: unknown preset %q", ErrInvalidParameters, s)
}

// Parameters returns the preset's values. Fields a preset does not mention
// keep their defaults.
func (p Preset) Parameters() GenerationParameters {
	params := DefaultParameters()
	switch p {
	case PresetTragic:
		params.TragedyWeight = 0.8
		params.ComplexityWeight = 4
		params.MysteryFactor = 0.2
	case PresetMysterious:
		params.ComplexityWeight = 2
		params.RelationshipWeight = 1
		params.MysteryFactor = 0.7
	case PresetEpicVillain:
		params.TragedyWeight = 0.6
		params.ComplexityWeight = 5
		params.RelationshipWeight = 3
		params.PowerScale = 5
	}
	return params
}

// Description is a one-line summary shown by preset listings.
func (p Preset) Description() string {
	switch p {
	case PresetTragic:
		return "Tragedy-heavy past with more defining moments and few secrets"
	case PresetMysterious:
		return "Sparse history, a single tie and a likely hidden truth"
	case PresetEpicVillain:
		return "Long, dark history with a wide web of relationships"
	default:
		return "Balanced parameters"
	}
}
