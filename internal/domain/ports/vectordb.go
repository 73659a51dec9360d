package ports

import (
	"context"

	"github.com/ersonp/lore-forge/internal/domain/entities"
)

// VectorDB defines the interface for vector database operations.
type VectorDB interface {
	// SaveBatch stores multiple character vectors, replacing any with the same ID.
	SaveBatch(ctx context.Context, vectors []entities.CharacterVector) error

	// Search performs a semantic search and returns similar characters.
	Search(ctx context.Context, embedding []float32, limit int) ([]entities.SimilarCharacter, error)

	// SearchByArchetype performs a semantic search filtered by archetype.
	SearchByArchetype(ctx context.Context, embedding []float32, archetype entities.Archetype, limit int) ([]entities.SimilarCharacter, error)

	// Delete removes a character vector by its ID.
	Delete(ctx context.Context, id string) error

	// Count returns the number of stored vectors.
	Count(ctx context.Context) (uint64, error)
}
