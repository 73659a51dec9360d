package services

import (
	"math"
	"math/rand/v2"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/lore-forge/internal/domain/catalog"
	"github.com/ersonp/lore-forge/internal/domain/entities"
	"github.com/ersonp/lore-forge/internal/domain/mocks"
)

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 0xfeed))
}

// smallCatalog keeps the built-in names and motivations but shrinks the
// pools that the scripted tests index into.
func smallCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	tables := catalog.DefaultTables()
	tables.PositiveTraits = []string{"loyal", "brave"}
	tables.NegativeTraits = []string{"reckless"}
	tables.NeutralTraits = []string{"quiet", "curious"}
	tables.TragedyMoments = []string{"losing a sister", "a burned home"}
	tables.RevelationMoments = []string{"a forged letter"}
	tables.HiddenTruths = []string{"they are the heir"}
	tables.Relationships = []entities.RelationshipTemplate{
		{Role: "Ally", Descriptions: []string{"an old friend"}},
		{Role: "Rival", Descriptions: []string{"a sworn rival"}},
	}
	c, err := catalog.New(tables)
	require.NoError(t, err)
	return c
}

func TestLoreGenerator_TragicHeroScenario(t *testing.T) {
	c := catalog.Default()
	params := entities.GenerationParameters{
		TragedyWeight:      1.0,
		ComplexityWeight:   3,
		RelationshipWeight: 2,
		MysteryFactor:      0,
		PowerScale:         3,
	}

	for seed := range uint64(200) {
		gen := NewLoreGenerator(c, seeded(seed))
		lore, err := gen.Generate(GenerateOptions{Archetype: entities.ArchetypeHero, Origin: entities.OriginNoble}, params)
		require.NoError(t, err)

		require.Len(t, lore.DefiningMoments, 3)
		for _, m := range lore.DefiningMoments {
			assert.Contains(t, c.TragedyMoments(), m)
		}
		assertDistinct(t, lore.DefiningMoments)

		require.Len(t, lore.KeyRelationships, 2)
		assert.NotEqual(t, lore.KeyRelationships[0].Role, lore.KeyRelationships[1].Role)

		assert.False(t, lore.Psychology.HasHiddenTruth())
		assert.True(t, c.AgeRange(entities.ArchetypeHero).Contains(lore.Identity.Age))
		assert.Contains(t, c.Names(entities.OriginNoble), lore.Identity.Name)
		assert.Equal(t, entities.ArchetypeHero, lore.Identity.Archetype)
		assert.Equal(t, entities.OriginNoble, lore.Background.Origin)
	}
}

func TestLoreGenerator_SuppliedName(t *testing.T) {
	gen := NewLoreGenerator(catalog.Default(), seeded(1))

	lore, err := gen.Generate(GenerateOptions{Name: "  Ysolde  "}, entities.DefaultParameters())
	require.NoError(t, err)

	assert.Equal(t, "Ysolde", lore.Identity.Name)
}

func TestLoreGenerator_AgeWithinArchetypeRange(t *testing.T) {
	c := catalog.Default()
	gen := NewLoreGenerator(c, seeded(3))

	for _, archetype := range entities.AllArchetypes {
		r := c.AgeRange(archetype)
		seen := make(map[int]bool)
		for range 500 {
			lore, err := gen.Generate(GenerateOptions{Archetype: archetype}, entities.DefaultParameters())
			require.NoError(t, err)
			require.True(t, r.Contains(lore.Identity.Age), "%s age %d outside %d-%d", archetype, lore.Identity.Age, r.Min, r.Max)
			seen[lore.Identity.Age] = true
		}
		assert.True(t, seen[r.Min], "%s never drew minimum age", archetype)
		assert.True(t, seen[r.Max], "%s never drew maximum age", archetype)
	}
}

func TestLoreGenerator_MomentCount(t *testing.T) {
	c := catalog.Default()
	distinct := c.DistinctMomentCount()

	tests := []struct {
		name    string
		tragedy float64
		target  int
	}{
		{name: "default", tragedy: 0.5, target: 3},
		{name: "revelation only beyond its pool", tragedy: 0, target: 12},
		{name: "tragedy only", tragedy: 1, target: 5},
		{name: "more than the catalog holds", tragedy: 0.5, target: distinct + 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := entities.DefaultParameters()
			params.TragedyWeight = tt.tragedy
			params.ComplexityWeight = tt.target

			for seed := range uint64(50) {
				lore, err := NewLoreGenerator(c, seeded(seed)).Generate(GenerateOptions{}, params)
				require.NoError(t, err)
				assert.Len(t, lore.DefiningMoments, min(tt.target, distinct))
				assertDistinct(t, lore.DefiningMoments)
			}
		})
	}
}

func TestLoreGenerator_LargeCountsReturnQuickly(t *testing.T) {
	c := catalog.Default()
	params := entities.DefaultParameters()
	params.ComplexityWeight = math.MaxInt
	params.RelationshipWeight = math.MaxInt

	start := time.Now()
	lore, err := NewLoreGenerator(c, seeded(3)).Generate(GenerateOptions{}, params)
	require.NoError(t, err)

	assert.Len(t, lore.DefiningMoments, c.DistinctMomentCount())
	assert.Len(t, lore.KeyRelationships, c.RoleCount())
	assertDistinct(t, lore.DefiningMoments)
	assert.Less(t, time.Since(start), time.Second)
}

func TestLoreGenerator_WideAgeRange(t *testing.T) {
	tables := catalog.DefaultTables()
	tables.AgeRanges[entities.ArchetypeHero] = entities.AgeRange{Min: 1, Max: math.MaxInt}
	c, err := catalog.New(tables)
	require.NoError(t, err)

	lore, err := NewLoreGenerator(c, seeded(4)).Generate(GenerateOptions{Archetype: entities.ArchetypeHero}, entities.DefaultParameters())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, lore.Identity.Age, 1)
}

func TestLoreGenerator_RelationshipsCappedAtRoleCount(t *testing.T) {
	c := catalog.Default()
	params := entities.DefaultParameters()
	params.RelationshipWeight = c.RoleCount() + 5

	for seed := range uint64(50) {
		lore, err := NewLoreGenerator(c, seeded(seed)).Generate(GenerateOptions{}, params)
		require.NoError(t, err)

		require.Len(t, lore.KeyRelationships, c.RoleCount())
		roles := make([]string, 0, len(lore.KeyRelationships))
		for _, rel := range lore.KeyRelationships {
			roles = append(roles, rel.Role)
			assert.NotEmpty(t, rel.Name)
			assert.NotEmpty(t, rel.Description)
		}
		assertDistinct(t, roles)
	}
}

func TestLoreGenerator_HiddenTruthFrequency(t *testing.T) {
	gen := NewLoreGenerator(catalog.Default(), seeded(2024))
	params := entities.DefaultParameters()
	params.MysteryFactor = 0.3

	const draws = 10_000
	present := 0
	for range draws {
		lore, err := gen.Generate(GenerateOptions{}, params)
		require.NoError(t, err)
		if lore.Psychology.HasHiddenTruth() {
			present++
		}
	}

	rate := float64(present) / draws
	assert.GreaterOrEqual(t, rate, 0.27)
	assert.LessOrEqual(t, rate, 0.33)
}

func TestLoreGenerator_SameSeedSameCharacter(t *testing.T) {
	c := catalog.Default()
	params := entities.PresetEpicVillain.Parameters()

	a, err := NewLoreGenerator(c, seeded(77)).Generate(GenerateOptions{}, params)
	require.NoError(t, err)
	b, err := NewLoreGenerator(c, seeded(77)).Generate(GenerateOptions{}, params)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestLoreGenerator_Validation(t *testing.T) {
	tests := []struct {
		name    string
		opts    GenerateOptions
		params  entities.GenerationParameters
		wantErr error
	}{
		{
			name:    "tragedy weight above one",
			params:  entities.GenerationParameters{TragedyWeight: 1.2, ComplexityWeight: 3, RelationshipWeight: 2, PowerScale: 3},
			wantErr: entities.ErrInvalidParameters,
		},
		{
			name:    "NaN mystery factor",
			params:  entities.GenerationParameters{TragedyWeight: 0.5, ComplexityWeight: 3, RelationshipWeight: 2, MysteryFactor: math.NaN(), PowerScale: 3},
			wantErr: entities.ErrInvalidParameters,
		},
		{
			name:    "NaN tragedy weight",
			params:  entities.GenerationParameters{TragedyWeight: math.NaN(), ComplexityWeight: 3, RelationshipWeight: 2, PowerScale: 3},
			wantErr: entities.ErrInvalidParameters,
		},
		{
			name:    "negative mystery factor",
			params:  entities.GenerationParameters{TragedyWeight: 0.5, ComplexityWeight: 3, RelationshipWeight: 2, MysteryFactor: -0.1, PowerScale: 3},
			wantErr: entities.ErrInvalidParameters,
		},
		{
			name:    "negative tragedy weight",
			params:  entities.GenerationParameters{TragedyWeight: -0.5, ComplexityWeight: 3, RelationshipWeight: 2, PowerScale: 3},
			wantErr: entities.ErrInvalidParameters,
		},
		{
			name:    "zero relationship weight",
			params:  entities.GenerationParameters{TragedyWeight: 0.5, ComplexityWeight: 3, PowerScale: 3},
			wantErr: entities.ErrInvalidParameters,
		},
		{
			name:    "unknown archetype",
			opts:    GenerateOptions{Archetype: "Paladin"},
			params:  entities.DefaultParameters(),
			wantErr: entities.ErrUnknownArchetype,
		},
		{
			name:    "unknown origin",
			opts:    GenerateOptions{Origin: "Pirate"},
			params:  entities.DefaultParameters(),
			wantErr: entities.ErrUnknownOrigin,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := &mocks.Random{}
			_, err := NewLoreGenerator(catalog.Default(), rng).Generate(tt.opts, tt.params)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, rng.FloatCalls+rng.IntCalls, "no draws before validation")
		})
	}
}

func TestLoreGenerator_ScriptedDraws(t *testing.T) {
	c := smallCatalog(t)
	params := entities.GenerationParameters{
		TragedyWeight:      0.5,
		ComplexityWeight:   3,
		RelationshipWeight: 5,
		MysteryFactor:      0.3,
		PowerScale:         3,
	}

	t.Run("moment fallback fills in catalog order", func(t *testing.T) {
		// Every coin lands high: no fourth trait, no hidden truth, and
		// every moment draw hits the one-entry revelation pool.
		rng := &mocks.Random{DefaultFloat: 0.9}
		lore, err := NewLoreGenerator(c, rng).Generate(GenerateOptions{}, params)
		require.NoError(t, err)

		assert.Equal(t, []string{"a forged letter", "losing a sister", "a burned home"}, lore.DefiningMoments)
		assert.Equal(t, []string{"loyal", "reckless", "quiet"}, lore.Identity.PersonalityTraits)
		assert.False(t, lore.Psychology.HasHiddenTruth())
		assert.Equal(t, entities.ArchetypeHero, lore.Identity.Archetype)
		assert.Equal(t, entities.OriginNoble, lore.Background.Origin)
	})

	t.Run("fourth trait may repeat the first", func(t *testing.T) {
		rng := &mocks.Random{Floats: []float64{0.1, 0.1}, DefaultFloat: 0.9}
		lore, err := NewLoreGenerator(c, rng).Generate(GenerateOptions{}, params)
		require.NoError(t, err)

		assert.Equal(t, []string{"loyal", "reckless", "quiet", "loyal"}, lore.Identity.PersonalityTraits)
		assert.Equal(t, "they are the heir", lore.Psychology.HiddenTruth)
	})

	t.Run("fourth trait can come from the neutral pool", func(t *testing.T) {
		// archetype, origin, name, age, three traits, then the union index
		rng := &mocks.Random{
			Floats:       []float64{0.1},
			Ints:         []int{0, 0, 0, 0, 0, 0, 0, 3},
			DefaultFloat: 0.9,
		}
		lore, err := NewLoreGenerator(c, rng).Generate(GenerateOptions{}, params)
		require.NoError(t, err)

		assert.Equal(t, "curious", lore.Identity.PersonalityTraits[3])
	})

	t.Run("relationships stop when roles run out", func(t *testing.T) {
		rng := &mocks.Random{DefaultFloat: 0.9}
		lore, err := NewLoreGenerator(c, rng).Generate(GenerateOptions{}, params)
		require.NoError(t, err)

		require.Len(t, lore.KeyRelationships, 2)
		assert.Equal(t, "Ally", lore.KeyRelationships[0].Role)
		assert.Equal(t, "Rival", lore.KeyRelationships[1].Role)
		assert.Equal(t, "a sworn rival", lore.KeyRelationships[1].Description)
	})
}

func TestLoreGenerator_WithRandom(t *testing.T) {
	c := catalog.Default()
	gen := NewLoreGenerator(c, seeded(1))
	other := gen.WithRandom(seeded(2))

	assert.Same(t, c, other.Catalog())
	assert.NotSame(t, gen, other)
}

func TestLoreGenerator_PowerScalePassesThrough(t *testing.T) {
	c := catalog.Default()
	low := entities.DefaultParameters()
	low.PowerScale = 1
	high := entities.DefaultParameters()
	high.PowerScale = 5

	a, err := NewLoreGenerator(c, seeded(9)).Generate(GenerateOptions{}, low)
	require.NoError(t, err)
	b, err := NewLoreGenerator(c, seeded(9)).Generate(GenerateOptions{}, high)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func assertDistinct(t *testing.T, values []string) {
	t.Helper()
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	assert.Equal(t, len(sorted), len(slices.Compact(sorted)), "duplicates in %v", values)
}
