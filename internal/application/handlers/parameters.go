package handlers

import (
	"github.com/ersonp/lore-forge/internal/domain/entities"
	"github.com/ersonp/lore-forge/internal/infrastructure/config"
)

// ParameterSource says where generation parameters come from. Layers apply
// in order: preset, then file, then any individual override.
type ParameterSource struct {
	Preset string
	File   string

	TragedyWeight      *float64
	ComplexityWeight   *int
	RelationshipWeight *int
	MysteryFactor      *float64
	PowerScale         *int
}

// ResolveParameters builds and validates the parameters a source describes.
func ResolveParameters(src ParameterSource) (entities.GenerationParameters, error) {
	preset, err := entities.ParsePreset(src.Preset)
	if err != nil {
		return entities.GenerationParameters{}, err
	}
	params := preset.Parameters()

	switch {
	case src.File == "":
	case preset == entities.PresetDefault:
		params, err = config.LoadParameters(src.File)
	default:
		params, err = config.LoadParametersOver(src.File, params)
	}
	if err != nil {
		return entities.GenerationParameters{}, err
	}

	if src.TragedyWeight != nil {
		params.TragedyWeight = *src.TragedyWeight
	}
	if src.ComplexityWeight != nil {
		params.ComplexityWeight = *src.ComplexityWeight
	}
	if src.RelationshipWeight != nil {
		params.RelationshipWeight = *src.RelationshipWeight
	}
	if src.MysteryFactor != nil {
		params.MysteryFactor = *src.MysteryFactor
	}
	if src.PowerScale != nil {
		params.PowerScale = *src.PowerScale
	}

	if err := params.Validate(); err != nil {
		return entities.GenerationParameters{}, err
	}
	return params, nil
}
