package parsers

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/ersonp/lore-forge/internal/domain/catalog"
)

// YAMLParser parses catalog tables from a YAML mapping.
type YAMLParser struct{}

// Parse reads YAML from the reader. Unknown pool names are rejected and an
// empty document yields empty tables.
func (p *YAMLParser) Parse(r io.Reader) (catalog.Tables, error) {
	var tables catalog.Tables

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&tables); err != nil && !errors.Is(err, io.EOF) {
		return catalog.Tables{}, fmt.Errorf("parsing YAML: %w", err)
	}

	if err := canonicalKeys(&tables); err != nil {
		return catalog.Tables{}, err
	}
	return tables, nil
}

// EncodeYAML writes tables in the shape YAMLParser reads, so a dump of the
// built-in catalog can be edited into an override file.
func EncodeYAML(w io.Writer, tables catalog.Tables) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(tables); err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}
	return encoder.Close()
}
