// Package handlers contains application use case handlers.
package handlers

import (
	"context"
	"fmt"

	"github.com/ersonp/lore-forge/internal/domain/ports"
	"github.com/ersonp/lore-forge/internal/infrastructure/config"
)

// InitHandler handles project initialization.
type InitHandler struct {
	archive           ports.Archive
	collectionManager ports.CollectionManager
	vectorSize        uint64
}

// NewInitHandler creates a new init handler. Either store may be nil, in
// which case that step is skipped.
func NewInitHandler(archive ports.Archive, collectionManager ports.CollectionManager, vectorSize uint64) *InitHandler {
	return &InitHandler{
		archive:           archive,
		collectionManager: collectionManager,
		vectorSize:        vectorSize,
	}
}

// InitResult contains the result of initialization.
type InitResult struct {
	ConfigPath     string
	ArchivePath    string
	CollectionName string
}

// Handle writes the default config and prepares the archive and, when
// configured, the similarity collection.
func (h *InitHandler) Handle(ctx context.Context, basePath string) (*InitResult, error) {
	if config.Exists(basePath) {
		return nil, fmt.Errorf("forge already initialized in %s", basePath)
	}

	if err := config.WriteDefault(basePath); err != nil {
		return nil, fmt.Errorf("writing default config: %w", err)
	}

	cfg, err := config.Load(basePath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	result := &InitResult{
		ConfigPath:  config.ConfigFilePath(basePath),
		ArchivePath: cfg.ArchivePath(basePath),
	}

	if h.archive != nil {
		if err := h.archive.EnsureSchema(ctx); err != nil {
			return nil, fmt.Errorf("creating archive schema: %w", err)
		}
	}

	if h.collectionManager != nil {
		if err := h.collectionManager.EnsureCollection(ctx, h.vectorSize); err != nil {
			return nil, fmt.Errorf("creating collection: %w", err)
		}
		result.CollectionName = cfg.Qdrant.Collection
	}

	return result, nil
}
