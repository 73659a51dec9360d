package parsers

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ersonp/lore-forge/internal/domain/catalog"
	"github.com/ersonp/lore-forge/internal/domain/entities"
)

// CSVParser parses catalog tables from CSV rows.
type CSVParser struct{}

// Parse reads CSV from the reader. Expected columns: pool, key, value, extra.
// key names the origin (names), archetype (motivations, age_range) or role
// (relationships) and is ignored for flat pools. age_range rows carry the
// minimum in value and the maximum in extra.
func (p *CSVParser) Parse(r io.Reader) (catalog.Tables, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	colIndex, err := p.readHeader(reader)
	if err != nil {
		return catalog.Tables{}, err
	}

	return p.readRecords(reader, colIndex)
}

// readHeader reads and validates the CSV header row.
func (p *CSVParser) readHeader(reader *csv.Reader) (map[string]int, error) {
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	colIndex := make(map[string]int)
	for i, col := range header {
		colIndex[strings.ToLower(strings.TrimSpace(col))] = i
	}

	for _, col := range []string{"pool", "value"} {
		if _, ok := colIndex[col]; !ok {
			return nil, fmt.Errorf("missing required column: %s", col)
		}
	}

	return colIndex, nil
}

// readRecords folds every data row into one Tables value.
func (p *CSVParser) readRecords(reader *csv.Reader, colIndex map[string]int) (catalog.Tables, error) {
	var tables catalog.Tables
	roles := make(map[string]int)
	lineNum := 1 // Header is line 1

	for {
		lineNum++
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return catalog.Tables{}, fmt.Errorf("line %d: %w", lineNum, err)
		}

		if err := p.applyRecord(&tables, roles, record, colIndex); err != nil {
			return catalog.Tables{}, fmt.Errorf("line %d: %w", lineNum, err)
		}
	}

	return tables, nil
}

// applyRecord adds one row to tables.
func (p *CSVParser) applyRecord(t *catalog.Tables, roles map[string]int, record []string, colIndex map[string]int) error {
	pool := strings.ToLower(getColumn(record, colIndex, "pool"))
	key := getColumn(record, colIndex, "key")
	value := getColumn(record, colIndex, "value")

	switch pool {
	case catalog.PoolNames:
		origin, err := entities.ParseOrigin(key)
		if err != nil {
			return err
		}
		if t.Names == nil {
			t.Names = make(map[entities.Origin][]string)
		}
		t.Names[origin] = append(t.Names[origin], value)

	case catalog.PoolMotivations:
		archetype, err := entities.ParseArchetype(key)
		if err != nil {
			return err
		}
		if t.Motivations == nil {
			t.Motivations = make(map[entities.Archetype][]string)
		}
		t.Motivations[archetype] = append(t.Motivations[archetype], value)

	case catalog.PoolAgeRange:
		archetype, err := entities.ParseArchetype(key)
		if err != nil {
			return err
		}
		r, err := parseAgeRange(value, getColumn(record, colIndex, "extra"))
		if err != nil {
			return err
		}
		if t.AgeRanges == nil {
			t.AgeRanges = make(map[entities.Archetype]entities.AgeRange)
		}
		t.AgeRanges[archetype] = r

	case catalog.PoolRelationships:
		if key == "" {
			return fmt.Errorf("relationship row has no role")
		}
		at, ok := roles[key]
		if !ok {
			at = len(t.Relationships)
			roles[key] = at
			t.Relationships = append(t.Relationships, entities.RelationshipTemplate{Role: key})
		}
		t.Relationships[at].Descriptions = append(t.Relationships[at].Descriptions, value)

	default:
		flat, ok := t.FlatPool(pool)
		if !ok {
			return fmt.Errorf("unknown pool %q", pool)
		}
		*flat = append(*flat, value)
	}

	return nil
}

func parseAgeRange(minStr, maxStr string) (entities.AgeRange, error) {
	lo, err := strconv.Atoi(minStr)
	if err != nil {
		return entities.AgeRange{}, fmt.Errorf("invalid minimum age %q: %w", minStr, err)
	}
	hi, err := strconv.Atoi(maxStr)
	if err != nil {
		return entities.AgeRange{}, fmt.Errorf("invalid maximum age %q: %w", maxStr, err)
	}
	return entities.AgeRange{Min: lo, Max: hi}, nil
}

// getColumn safely retrieves a trimmed column value from a record.
func getColumn(record []string, colIndex map[string]int, col string) string {
	if idx, ok := colIndex[col]; ok && idx < len(record) {
		return strings.TrimSpace(record[idx])
	}
	return ""
}
