package parsers

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/lore-forge/internal/domain/catalog"
	"github.com/ersonp/lore-forge/internal/domain/entities"
)

func TestForFormat(t *testing.T) {
	tests := []struct {
		format   string
		expected Parser
	}{
		{"yaml", &YAMLParser{}},
		{"YML", &YAMLParser{}},
		{"json", &JSONParser{}},
		{"JSON", &JSONParser{}},
		{"csv", &CSVParser{}},
		{"toml", nil},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			assert.Equal(t, tt.expected, ForFormat(tt.format))
		})
	}
}

func TestForFile(t *testing.T) {
	assert.IsType(t, &YAMLParser{}, ForFile("overrides/catalog.yaml"))
	assert.IsType(t, &JSONParser{}, ForFile("catalog.json"))
	assert.IsType(t, &CSVParser{}, ForFile("/tmp/pools.CSV"))
	assert.Nil(t, ForFile("catalog.txt"))
	assert.Nil(t, ForFile("catalog"))
}

func TestYAMLParser_Parse(t *testing.T) {
	input := `
names:
  noble: [Ysolde, Bertrand]
motivations:
  VILLAIN:
    - to rule the salt roads
age_ranges:
  hero: {min: 18, max: 30}
birthplaces:
  - a drowned city
relationships:
  - role: Ally
    descriptions: [a smuggler who owes them]
`
	tables, err := (&YAMLParser{}).Parse(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []string{"Ysolde", "Bertrand"}, tables.Names[entities.OriginNoble])
	assert.Equal(t, []string{"to rule the salt roads"}, tables.Motivations[entities.ArchetypeVillain])
	assert.Equal(t, entities.AgeRange{Min: 18, Max: 30}, tables.AgeRanges[entities.ArchetypeHero])
	assert.Equal(t, []string{"a drowned city"}, tables.Birthplaces)
	require.Len(t, tables.Relationships, 1)
	assert.Equal(t, "Ally", tables.Relationships[0].Role)
}

func TestYAMLParser_Empty(t *testing.T) {
	tables, err := (&YAMLParser{}).Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.True(t, tables.IsEmpty())
}

func TestEncodeYAML_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EncodeYAML(&buf, catalog.Default().Tables()))

	tables, err := (&YAMLParser{}).Parse(&buf)
	require.NoError(t, err)

	c, err := catalog.New(tables)
	require.NoError(t, err)
	assert.Equal(t, catalog.Default().Stats(), c.Stats())
	assert.Equal(t, catalog.Default().Names(entities.OriginExile), c.Names(entities.OriginExile))
	assert.Equal(t, catalog.Default().AgeRange(entities.ArchetypeMentor), c.AgeRange(entities.ArchetypeMentor))
	assert.Equal(t, catalog.Default().RelationshipTemplates(), c.RelationshipTemplates())
}

func TestJSONParser_Parse(t *testing.T) {
	input := `{
		"names": {"Exile": ["Corvin"]},
		"hidden_truths": ["they never left the tower"]
	}`

	tables, err := (&JSONParser{}).Parse(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []string{"Corvin"}, tables.Names[entities.OriginExile])
	assert.Equal(t, []string{"they never left the tower"}, tables.HiddenTruths)
}

func TestStructuredParsers_Errors(t *testing.T) {
	tests := []struct {
		name        string
		parser      Parser
		input       string
		errContains string
	}{
		{
			name:        "yaml unknown pool",
			parser:      &YAMLParser{},
			input:       "spells: [fireball]\n",
			errContains: "parsing YAML",
		},
		{
			name:        "yaml unknown origin",
			parser:      &YAMLParser{},
			input:       "names:\n  pirate: [Anne]\n",
			errContains: "unknown origin",
		},
		{
			name:        "yaml unknown age range archetype",
			parser:      &YAMLParser{},
			input:       "age_ranges:\n  bard: {min: 1, max: 2}\n",
			errContains: "age_ranges",
		},
		{
			name:        "json unknown pool",
			parser:      &JSONParser{},
			input:       `{"spells": ["fireball"]}`,
			errContains: "parsing JSON",
		},
		{
			name:        "json malformed",
			parser:      &JSONParser{},
			input:       `{"names": `,
			errContains: "parsing JSON",
		},
		{
			name:        "json unknown archetype",
			parser:      &JSONParser{},
			input:       `{"motivations": {"Paladin": ["to atone"]}}`,
			errContains: "unknown archetype",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.parser.Parse(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestCSVParser_Parse(t *testing.T) {
	input := `pool,key,value,extra
names,noble,Ysolde,
names,Noble,Bertrand,
motivations,villain,to rule the salt roads,
age_range,Hero,18,30
relationships,Ally,a smuggler who owes them,
relationships,Rival,a cousin with a better claim,
relationships,Ally,a priest who kept their secret,
birthplaces,,a drowned city,
hidden_truths,ignored,they never left the tower,
`

	tables, err := (&CSVParser{}).Parse(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []string{"Ysolde", "Bertrand"}, tables.Names[entities.OriginNoble])
	assert.Equal(t, []string{"to rule the salt roads"}, tables.Motivations[entities.ArchetypeVillain])
	assert.Equal(t, entities.AgeRange{Min: 18, Max: 30}, tables.AgeRanges[entities.ArchetypeHero])
	assert.Equal(t, []string{"a drowned city"}, tables.Birthplaces)
	assert.Equal(t, []string{"they never left the tower"}, tables.HiddenTruths)
	assert.Equal(t, []entities.RelationshipTemplate{
		{Role: "Ally", Descriptions: []string{"a smuggler who owes them", "a priest who kept their secret"}},
		{Role: "Rival", Descriptions: []string{"a cousin with a better claim"}},
	}, tables.Relationships)
}

func TestCSVParser_ColumnOrder(t *testing.T) {
	input := "value,pool\nquiet,neutral_traits\n"

	tables, err := (&CSVParser{}).Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []string{"quiet"}, tables.NeutralTraits)
}

func TestCSVParser_Errors(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		errContains string
	}{
		{
			name:        "empty input",
			input:       "",
			errContains: "reading CSV header",
		},
		{
			name:        "missing pool column",
			input:       "key,value\nnoble,Ysolde\n",
			errContains: "missing required column: pool",
		},
		{
			name:        "missing value column",
			input:       "pool,key\nnames,noble\n",
			errContains: "missing required column: value",
		},
		{
			name:        "unknown pool",
			input:       "pool,key,value\nspells,,fireball\n",
			errContains: `line 2: unknown pool "spells"`,
		},
		{
			name:        "unknown origin",
			input:       "pool,key,value\nbirthplaces,,a cave\nnames,pirate,Anne\n",
			errContains: "line 3: unknown origin",
		},
		{
			name:        "bad age",
			input:       "pool,key,value,extra\nage_range,hero,young,30\n",
			errContains: "invalid minimum age",
		},
		{
			name:        "missing maximum age",
			input:       "pool,key,value\nage_range,hero,18\n",
			errContains: "invalid maximum age",
		},
		{
			name:        "relationship without role",
			input:       "pool,key,value\nrelationships,,a stranger\n",
			errContains: "relationship row has no role",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := (&CSVParser{}).Parse(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "overrides.yaml")
	require.NoError(t, os.WriteFile(path, []byte("fatal_flaws: [pride]\n"), 0o644))

	tables, err := ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"pride"}, tables.FatalFlaws)

	c, err := catalog.New(catalog.DefaultTables().Merge(tables))
	require.NoError(t, err)
	assert.Equal(t, []string{"pride"}, c.FatalFlaws())
}

func TestParseFile_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := ParseFile(filepath.Join(dir, "catalog.txt"))
	assert.ErrorContains(t, err, "unsupported catalog file type")

	_, err = ParseFile(filepath.Join(dir, "missing.json"))
	assert.ErrorContains(t, err, "opening catalog file")

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0o644))
	_, err = ParseFile(bad)
	assert.ErrorContains(t, err, "parsing bad.json")
}
