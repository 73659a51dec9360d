package handlers

import (
	"context"
	"fmt"

	"github.com/ersonp/lore-forge/internal/domain/entities"
	"github.com/ersonp/lore-forge/internal/domain/services"
)

// BatchCommand describes a batch of characters.
type BatchCommand struct {
	Count      int
	Archetype  string
	Origin     string
	Parameters entities.GenerationParameters
	Seed       int64
	Workers    int
	Archive    bool
}

// BatchResult contains the generated characters and their collection document.
type BatchResult struct {
	*services.BatchResult
	Document   string
	ArchiveIDs []string
}

// BatchHandler handles batch generation.
type BatchHandler struct {
	batch   *services.BatchService
	archive *services.ArchiveService
}

// NewBatchHandler creates a new batch handler. archive may be nil.
func NewBatchHandler(batch *services.BatchService, archive *services.ArchiveService) *BatchHandler {
	return &BatchHandler{
		batch:   batch,
		archive: archive,
	}
}

// Handle generates the batch, renders the collection document and
// optionally archives every character.
func (h *BatchHandler) Handle(ctx context.Context, cmd BatchCommand) (*BatchResult, error) {
	opts, err := ParseOptions(cmd.Archetype, cmd.Origin, "")
	if err != nil {
		return nil, err
	}
	if cmd.Archive && h.archive == nil {
		return nil, ErrArchiveUnavailable
	}

	generated, err := h.batch.Generate(ctx, services.BatchRequest{
		Count:      cmd.Count,
		Options:    opts,
		Parameters: cmd.Parameters,
		Seed:       cmd.Seed,
		Workers:    cmd.Workers,
	})
	if err != nil {
		return nil, err
	}

	result := &BatchResult{
		BatchResult: generated,
		Document:    services.RenderCollection(generated.Lores()),
	}

	if cmd.Archive {
		result.ArchiveIDs = make([]string, 0, len(generated.Items))
		for _, item := range generated.Items {
			archived, err := h.archive.Archive(ctx, item.Lore, cmd.Parameters, item.Seed)
			if err != nil {
				return nil, fmt.Errorf("archiving character %d: %w", item.Index+1, err)
			}
			result.ArchiveIDs = append(result.ArchiveIDs, archived.ID)
		}
	}

	return result, nil
}
