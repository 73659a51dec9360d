package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/ersonp/lore-forge/internal/domain/entities"
	"github.com/ersonp/lore-forge/internal/domain/ports"
)

// DefaultSearchLimit is the default number of results to return.
const DefaultSearchLimit = 10

// embedBatchSize caps how many narratives go to the embedder per request.
const embedBatchSize = 64

// SimilarityService indexes archived characters and finds ones resembling
// a free-text description.
type SimilarityService struct {
	embedder ports.Embedder
	vectorDB ports.VectorDB
}

// NewSimilarityService creates a new similarity service.
func NewSimilarityService(embedder ports.Embedder, vectorDB ports.VectorDB) *SimilarityService {
	return &SimilarityService{
		embedder: embedder,
		vectorDB: vectorDB,
	}
}

// Index embeds each character's narrative and stores the vectors keyed by
// archive ID. It returns the number of characters indexed.
func (s *SimilarityService) Index(ctx context.Context, chars []*entities.ArchivedCharacter) (int, error) {
	indexed := 0
	for start := 0; start < len(chars); start += embedBatchSize {
		batch := chars[start:min(start+embedBatchSize, len(chars))]

		texts := make([]string, len(batch))
		for i, c := range batch {
			texts[i] = c.Narrative
		}

		embeddings, err := s.embedder.EmbedBatch(ctx, texts)
		if err != nil {
			return indexed, fmt.Errorf("generating embeddings: %w", err)
		}
		if len(embeddings) != len(batch) {
			return indexed, fmt.Errorf("embedder returned %d embeddings for %d characters", len(embeddings), len(batch))
		}

		vectors := make([]entities.CharacterVector, len(batch))
		for i, c := range batch {
			vectors[i] = entities.CharacterVector{
				ID:        c.ID,
				Name:      c.Name(),
				Archetype: c.Lore.Identity.Archetype,
				Origin:    c.Lore.Background.Origin,
				Age:       c.Lore.Identity.Age,
				Embedding: embeddings[i],
			}
		}

		if err := s.vectorDB.SaveBatch(ctx, vectors); err != nil {
			return indexed, fmt.Errorf("saving vectors: %w", err)
		}
		indexed += len(batch)
	}
	return indexed, nil
}

// Search finds characters whose narratives resemble query.
func (s *SimilarityService) Search(ctx context.Context, query string, limit int) ([]entities.SimilarCharacter, error) {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	embedding, err := s.embedQuery(ctx, query)
	if err != nil {
		return nil, err
	}

	results, err := s.vectorDB.Search(ctx, embedding, limit)
	if err != nil {
		return nil, fmt.Errorf("searching characters: %w", err)
	}
	return results, nil
}

// SearchByArchetype is Search restricted to one archetype.
func (s *SimilarityService) SearchByArchetype(ctx context.Context, query string, archetype entities.Archetype, limit int) ([]entities.SimilarCharacter, error) {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	embedding, err := s.embedQuery(ctx, query)
	if err != nil {
		return nil, err
	}

	results, err := s.vectorDB.SearchByArchetype(ctx, embedding, archetype, limit)
	if err != nil {
		return nil, fmt.Errorf("searching characters by archetype: %w", err)
	}
	return results, nil
}

// Remove drops a character from the index.
func (s *SimilarityService) Remove(ctx context.Context, id string) error {
	if err := s.vectorDB.Delete(ctx, id); err != nil {
		return fmt.Errorf("removing vector: %w", err)
	}
	return nil
}

// Count returns how many characters are indexed.
func (s *SimilarityService) Count(ctx context.Context) (uint64, error) {
	n, err := s.vectorDB.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("counting vectors: %w", err)
	}
	return n, nil
}

func (s *SimilarityService) embedQuery(ctx context.Context, query string) ([]float32, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}
	embedding, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("generating query embedding: %w", err)
	}
	return embedding, nil
}
