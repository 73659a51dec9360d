package handlers

import (
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ersonp/lore-forge/internal/domain/catalog"
	"github.com/ersonp/lore-forge/internal/domain/entities"
	"github.com/ersonp/lore-forge/internal/domain/mocks"
	"github.com/ersonp/lore-forge/internal/domain/services"
	"github.com/ersonp/lore-forge/internal/infrastructure/random"
)

func fixedSeed(seed int64) services.SeedFunc {
	return func() (int64, error) { return seed, nil }
}

func newGenerator() *services.LoreGenerator {
	return services.NewLoreGenerator(catalog.Default(), random.NewSource(0))
}

func newGenerateHandler(archive *services.ArchiveService) *GenerateHandler {
	return NewGenerateHandler(newGenerator(), random.Factory, fixedSeed(1234), archive)
}

func newBatchHandler(archive *services.ArchiveService) *BatchHandler {
	batch := services.NewBatchService(newGenerator(), random.Factory, fixedSeed(1234), slog.New(slog.DiscardHandler))
	return NewBatchHandler(batch, archive)
}

// seedArchive stores n characters with distinct archetypes cycling through
// Hero and Villain, newest last.
func seedArchive(t *testing.T, archive *mocks.Archive, n int) []*entities.ArchivedCharacter {
	t.Helper()
	chars := make([]*entities.ArchivedCharacter, 0, n)
	for i := range n {
		archetype := entities.ArchetypeHero
		if i%2 == 1 {
			archetype = entities.ArchetypeVillain
		}
		c := &entities.ArchivedCharacter{
			ID: fmt.Sprintf("c-%03d", i),
			Lore: entities.CharacterLore{
				Identity:   entities.Identity{Name: fmt.Sprintf("Name%d", i), Archetype: archetype},
				Background: entities.Background{Origin: entities.OriginNoble},
			},
			Narrative: fmt.Sprintf("# Name%d\n", i),
			CreatedAt: time.Date(2026, 1, 1, 0, i, 0, 0, time.UTC),
		}
		require.NoError(t, archive.SaveCharacter(t.Context(), c))
		chars = append(chars, c)
	}
	archive.SaveCallCount = 0
	return chars
}
