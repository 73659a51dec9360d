package sqlite

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/lore-forge/internal/domain/entities"
	"github.com/ersonp/lore-forge/internal/infrastructure/config"
)

// setupTestRepo creates an in-memory SQLite repository for testing.
func setupTestRepo(t *testing.T) *Repository {
	t.Helper()
	repo, err := NewRepository(config.SQLiteConfig{Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	err = repo.EnsureSchema(context.Background())
	require.NoError(t, err)

	return repo
}

var baseTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func testCharacter(id, name string, archetype entities.Archetype, origin entities.Origin, minutes int) *entities.ArchivedCharacter {
	return &entities.ArchivedCharacter{
		ID: id,
		Lore: entities.CharacterLore{
			Identity: entities.Identity{
				Name:               name,
				Age:                30,
				Archetype:          archetype,
				PersonalityTraits:  []string{"loyal", "reckless", "quiet"},
				DistinctiveFeature: "a silver eye",
			},
			Background:      entities.Background{Origin: origin, Birthplace: "a river port"},
			DefiningMoments: []string{"a burned home"},
			Psychology: entities.Psychology{
				CoreMotivation:   "to find the truth",
				FatalFlaw:        "pride",
				GreatestFear:     "failure",
				InternalConflict: "duty against desire",
			},
			KeyRelationships: []entities.Relationship{
				{Name: "Mara", Role: "Rival", Description: "a sworn rival"},
			},
		},
		Parameters: entities.DefaultParameters(),
		Seed:       42,
		Narrative:  "# " + name + "\n",
		CreatedAt:  baseTime.Add(time.Duration(minutes) * time.Minute),
	}
}

func TestNewRepository(t *testing.T) {
	t.Run("success with memory database", func(t *testing.T) {
		repo, err := NewRepository(config.SQLiteConfig{Path: ":memory:"})
		require.NoError(t, err)
		defer repo.Close()
		assert.Equal(t, ":memory:", repo.Path())
	})

	t.Run("success with file database", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "archive.db")
		repo, err := NewRepository(config.SQLiteConfig{Path: path})
		require.NoError(t, err)
		defer repo.Close()
		require.NoError(t, repo.EnsureSchema(context.Background()))
	})

	t.Run("error with empty path", func(t *testing.T) {
		_, err := NewRepository(config.SQLiteConfig{Path: ""})
		require.Error(t, err)
	})
}

func TestRepository_EnsureSchema(t *testing.T) {
	repo := setupTestRepo(t)

	for _, table := range []string{"characters", "audit_log"} {
		var count int
		err := repo.db.Get(&count, `SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`, table)
		require.NoError(t, err)
		assert.Equal(t, 1, count, "table %s should exist", table)
	}
}

func TestRepository_EnsureSchema_Idempotent(t *testing.T) {
	repo := setupTestRepo(t)

	err := repo.EnsureSchema(context.Background())
	require.NoError(t, err)
}

func TestRepository_SaveAndFindCharacter(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	c := testCharacter("c-1", "Ysolde", entities.ArchetypeHero, entities.OriginNoble, 0)
	c.Lore.Psychology.HiddenTruth = "they are the heir"
	require.NoError(t, repo.SaveCharacter(ctx, c))

	found, err := repo.FindCharacter(ctx, "c-1")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, c, found)

	t.Run("save replaces", func(t *testing.T) {
		c.Narrative = "# Ysolde\n\nrewritten\n"
		require.NoError(t, repo.SaveCharacter(ctx, c))

		found, err := repo.FindCharacter(ctx, "c-1")
		require.NoError(t, err)
		assert.Equal(t, c.Narrative, found.Narrative)

		count, err := repo.CountCharacters(ctx, entities.ArchiveFilter{})
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("missing returns nil", func(t *testing.T) {
		found, err := repo.FindCharacter(ctx, "nope")
		require.NoError(t, err)
		assert.Nil(t, found)
	})
}

func TestRepository_ListCharacters(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	seed := []*entities.ArchivedCharacter{
		testCharacter("a", "Alaric", entities.ArchetypeHero, entities.OriginNoble, 1),
		testCharacter("b", "Brom", entities.ArchetypeVillain, entities.OriginExile, 2),
		testCharacter("c", "Cass", entities.ArchetypeHero, entities.OriginExile, 3),
		testCharacter("d", "Dov", entities.ArchetypeHero, entities.OriginNoble, 4),
	}
	for _, c := range seed {
		require.NoError(t, repo.SaveCharacter(ctx, c))
	}

	tests := []struct {
		name     string
		filter   entities.ArchiveFilter
		limit    int
		offset   int
		wantIDs  []string
		wantNums int
	}{
		{name: "all newest first", limit: 10, wantIDs: []string{"d", "c", "b", "a"}, wantNums: 4},
		{name: "paged", limit: 2, offset: 1, wantIDs: []string{"c", "b"}, wantNums: 4},
		{name: "by archetype", filter: entities.ArchiveFilter{Archetype: entities.ArchetypeHero}, limit: 10, wantIDs: []string{"d", "c", "a"}, wantNums: 3},
		{name: "by origin", filter: entities.ArchiveFilter{Origin: entities.OriginExile}, limit: 10, wantIDs: []string{"c", "b"}, wantNums: 2},
		{name: "by both", filter: entities.ArchiveFilter{Archetype: entities.ArchetypeHero, Origin: entities.OriginNoble}, limit: 10, wantIDs: []string{"d", "a"}, wantNums: 2},
		{name: "no match", filter: entities.ArchiveFilter{Archetype: entities.ArchetypeScholar}, limit: 10, wantIDs: []string{}, wantNums: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chars, err := repo.ListCharacters(ctx, tt.filter, tt.limit, tt.offset)
			require.NoError(t, err)

			ids := make([]string, 0, len(chars))
			for _, c := range chars {
				ids = append(ids, c.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)

			count, err := repo.CountCharacters(ctx, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.wantNums, count)
		})
	}
}

func TestRepository_SearchCharacters(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	for i, name := range []string{"Maëlys", "Mara", "Otto", "Per_cent"} {
		c := testCharacter(fmt.Sprintf("c-%d", i), name, entities.ArchetypeHero, entities.OriginNoble, i)
		require.NoError(t, repo.SaveCharacter(ctx, c))
	}

	tests := []struct {
		name      string
		query     string
		wantNames []string
	}{
		{name: "prefix", query: "ma", wantNames: []string{"Mara", "Maëlys"}},
		{name: "case insensitive", query: "OTT", wantNames: []string{"Otto"}},
		{name: "combining diaeresis", query: "MAE\u0308L", wantNames: []string{"Maëlys"}},
		{name: "underscore is literal", query: "r_c", wantNames: []string{"Per_cent"}},
		{name: "percent is literal", query: "%", wantNames: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chars, err := repo.SearchCharacters(ctx, tt.query, 10)
			require.NoError(t, err)

			names := make([]string, 0, len(chars))
			for _, c := range chars {
				names = append(names, c.Name())
			}
			assert.Equal(t, tt.wantNames, names)
		})
	}
}

func TestRepository_DeleteCharacter(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveCharacter(ctx, testCharacter("c-1", "Ysolde", entities.ArchetypeHero, entities.OriginNoble, 0)))

	require.NoError(t, repo.DeleteCharacter(ctx, "c-1"))

	found, err := repo.FindCharacter(ctx, "c-1")
	require.NoError(t, err)
	assert.Nil(t, found)

	err = repo.DeleteCharacter(ctx, "c-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "character not found")
}

func TestRepository_AuditLog(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	original := timeNow
	timeNow = func() time.Time { return baseTime.Add(time.Hour) }
	t.Cleanup(func() { timeNow = original })

	first := &entities.AuditEntry{
		Action:      entities.AuditActionArchive,
		CharacterID: "c-1",
		Details:     map[string]any{"name": "Ysolde", "seed": 42},
		CreatedAt:   baseTime,
	}
	require.NoError(t, repo.LogAction(ctx, first))
	assert.NotZero(t, first.ID)

	require.NoError(t, repo.LogAction(ctx, &entities.AuditEntry{Action: entities.AuditActionArchive, CharacterID: "c-2", CreatedAt: baseTime.Add(time.Minute)}))

	deleted := &entities.AuditEntry{Action: entities.AuditActionDelete, CharacterID: "c-1"}
	require.NoError(t, repo.LogAction(ctx, deleted))
	assert.Equal(t, baseTime.Add(time.Hour), deleted.CreatedAt)

	t.Run("one character newest first", func(t *testing.T) {
		entries, err := repo.FindAuditLog(ctx, "c-1", 10)
		require.NoError(t, err)
		require.Len(t, entries, 2)

		assert.Equal(t, entities.AuditActionDelete, entries[0].Action)
		assert.Nil(t, entries[0].Details)
		assert.Equal(t, entities.AuditActionArchive, entries[1].Action)
		assert.Equal(t, "Ysolde", entries[1].Details["name"])
		assert.InDelta(t, 42, entries[1].Details["seed"], 0)
		assert.Equal(t, baseTime, entries[1].CreatedAt)
	})

	t.Run("every character", func(t *testing.T) {
		entries, err := repo.FindAuditLog(ctx, "", 10)
		require.NoError(t, err)
		require.Len(t, entries, 3)
		assert.Equal(t, "c-2", entries[1].CharacterID)
	})

	t.Run("limit", func(t *testing.T) {
		entries, err := repo.FindAuditLog(ctx, "", 1)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, entities.AuditActionDelete, entries[0].Action)
	})

	t.Run("unknown character", func(t *testing.T) {
		entries, err := repo.FindAuditLog(ctx, "nope", 10)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `50\% off\_now \\ ok`, escapeLike(`50% off_now \ ok`))
}
