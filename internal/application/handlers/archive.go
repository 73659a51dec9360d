package handlers

import (
	"context"
	"fmt"

	"github.com/ersonp/lore-forge/internal/domain/entities"
	"github.com/ersonp/lore-forge/internal/domain/services"
)

// ListQuery filters an archive listing. Empty labels match everything.
type ListQuery struct {
	Archetype string
	Origin    string
	Limit     int
	Offset    int
}

// ListResult is one page of archived characters.
type ListResult struct {
	Characters []*entities.ArchivedCharacter
	Total      int
}

// ArchiveHandler handles browsing and pruning the archive.
type ArchiveHandler struct {
	archive    *services.ArchiveService
	similarity *services.SimilarityService
}

// NewArchiveHandler creates a new archive handler. similarity may be nil;
// when set, deletions also drop the character from the index.
func NewArchiveHandler(archive *services.ArchiveService, similarity *services.SimilarityService) *ArchiveHandler {
	return &ArchiveHandler{
		archive:    archive,
		similarity: similarity,
	}
}

// List returns one page of archived characters, newest first.
func (h *ArchiveHandler) List(ctx context.Context, q ListQuery) (*ListResult, error) {
	filter, err := parseFilter(q.Archetype, q.Origin)
	if err != nil {
		return nil, err
	}

	chars, total, err := h.archive.List(ctx, filter, q.Limit, q.Offset)
	if err != nil {
		return nil, err
	}
	return &ListResult{Characters: chars, Total: total}, nil
}

// Show returns one archived character.
func (h *ArchiveHandler) Show(ctx context.Context, id string) (*entities.ArchivedCharacter, error) {
	return h.archive.Get(ctx, id)
}

// Search finds archived characters by name fragment.
func (h *ArchiveHandler) Search(ctx context.Context, query string, limit int) ([]*entities.ArchivedCharacter, error) {
	return h.archive.Search(ctx, query, limit)
}

// Delete removes a character from the archive and the similarity index.
func (h *ArchiveHandler) Delete(ctx context.Context, id string) error {
	c, err := h.archive.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := h.archive.Delete(ctx, c.ID); err != nil {
		return err
	}
	if h.similarity != nil {
		if err := h.similarity.Remove(ctx, c.ID); err != nil {
			return fmt.Errorf("character deleted but not unindexed: %w", err)
		}
	}
	return nil
}

// History returns audit entries for one character, or all when id is empty.
func (h *ArchiveHandler) History(ctx context.Context, id string, limit int) ([]entities.AuditEntry, error) {
	return h.archive.History(ctx, id, limit)
}

func parseFilter(archetype, origin string) (entities.ArchiveFilter, error) {
	opts, err := ParseOptions(archetype, origin, "")
	if err != nil {
		return entities.ArchiveFilter{}, err
	}
	return entities.ArchiveFilter{Archetype: opts.Archetype, Origin: opts.Origin}, nil
}
