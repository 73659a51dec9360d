package parsers

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ersonp/lore-forge/internal/domain/catalog"
)

// JSONParser parses catalog tables from a JSON object.
type JSONParser struct{}

// Parse reads JSON from the reader. Unknown pool names are rejected.
func (p *JSONParser) Parse(r io.Reader) (catalog.Tables, error) {
	var tables catalog.Tables

	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&tables); err != nil {
		return catalog.Tables{}, fmt.Errorf("parsing JSON: %w", err)
	}

	if err := canonicalKeys(&tables); err != nil {
		return catalog.Tables{}, err
	}
	return tables, nil
}
