package handlers

import (
	"context"
	"fmt"

	"github.com/ersonp/lore-forge/internal/domain/entities"
	"github.com/ersonp/lore-forge/internal/domain/services"
)

// indexPageSize is how many archived characters are read per page while indexing.
const indexPageSize = 200

// IndexResult reports an indexing run.
type IndexResult struct {
	Indexed int
	Total   uint64
}

// SimilarityHandler handles indexing archived characters and searching them.
type SimilarityHandler struct {
	archive    *services.ArchiveService
	similarity *services.SimilarityService
}

// NewSimilarityHandler creates a new similarity handler.
func NewSimilarityHandler(archive *services.ArchiveService, similarity *services.SimilarityService) *SimilarityHandler {
	return &SimilarityHandler{
		archive:    archive,
		similarity: similarity,
	}
}

// Index embeds every archived character matching the filter. Re-indexing a
// character replaces its vector.
func (h *SimilarityHandler) Index(ctx context.Context, archetype, origin string) (*IndexResult, error) {
	filter, err := parseFilter(archetype, origin)
	if err != nil {
		return nil, err
	}

	result := &IndexResult{}
	for offset := 0; ; offset += indexPageSize {
		page, _, err := h.archive.List(ctx, filter, indexPageSize, offset)
		if err != nil {
			return nil, err
		}
		if len(page) == 0 {
			break
		}

		n, err := h.similarity.Index(ctx, page)
		result.Indexed += n
		if err != nil {
			return result, err
		}

		ids := make([]string, len(page))
		for i, c := range page {
			ids[i] = c.ID
		}
		if err := h.archive.RecordIndexed(ctx, ids); err != nil {
			return result, err
		}

		if len(page) < indexPageSize {
			break
		}
	}

	total, err := h.similarity.Count(ctx)
	if err != nil {
		return result, err
	}
	result.Total = total
	return result, nil
}

// Search finds indexed characters resembling query, optionally restricted
// to one archetype.
func (h *SimilarityHandler) Search(ctx context.Context, query, archetype string, limit int) ([]entities.SimilarCharacter, error) {
	if archetype == "" {
		return h.similarity.Search(ctx, query, limit)
	}

	a, err := entities.ParseArchetype(archetype)
	if err != nil {
		return nil, fmt.Errorf("parsing archetype filter: %w", err)
	}
	return h.similarity.SearchByArchetype(ctx, query, a, limit)
}
