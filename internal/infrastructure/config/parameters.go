package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ersonp/lore-forge/internal/domain/entities"
)

// LoadParameters reads a parameters document from path. YAML and JSON are
// accepted, chosen by extension. Keys the document omits keep their
// default values; unknown keys are rejected. The result is validated.
func LoadParameters(path string) (entities.GenerationParameters, error) {
	return LoadParametersOver(path, entities.DefaultParameters())
}

// LoadParametersOver is LoadParameters with omitted keys taken from base
// instead of the defaults.
func LoadParametersOver(path string, base entities.GenerationParameters) (entities.GenerationParameters, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return entities.GenerationParameters{}, fmt.Errorf("reading parameters file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return DecodeParameters(data, base, true)
	case ".yaml", ".yml":
		return DecodeParameters(data, base, false)
	default:
		return entities.GenerationParameters{}, fmt.Errorf("unsupported parameters file type: %s", path)
	}
}

// DecodeParameters decodes data over base. isJSON selects the decoder.
func DecodeParameters(data []byte, base entities.GenerationParameters, isJSON bool) (entities.GenerationParameters, error) {
	params := base

	if isJSON {
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&params); err != nil {
			return entities.GenerationParameters{}, fmt.Errorf("parsing parameters: %w", err)
		}
	} else {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&params); err != nil && !errors.Is(err, io.EOF) {
			return entities.GenerationParameters{}, fmt.Errorf("parsing parameters: %w", err)
		}
	}

	if err := params.Validate(); err != nil {
		return entities.GenerationParameters{}, err
	}
	return params, nil
}
