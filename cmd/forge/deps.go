package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/ersonp/lore-forge/internal/application/handlers"
	"github.com/ersonp/lore-forge/internal/domain/ports"
	"github.com/ersonp/lore-forge/internal/domain/services"
	"github.com/ersonp/lore-forge/internal/infrastructure/config"
	embedder "github.com/ersonp/lore-forge/internal/infrastructure/embedder/openai"
	"github.com/ersonp/lore-forge/internal/infrastructure/random"
	"github.com/ersonp/lore-forge/internal/infrastructure/relationaldb/sqlite"
	"github.com/ersonp/lore-forge/internal/infrastructure/vectordb/qdrant"
)

// Deps holds high-level dependencies for commands.
// Only handlers are exposed - services and repositories are internal.
type Deps struct {
	Config   *config.Config
	BasePath string
	Logger   *slog.Logger

	GenerateHandler *handlers.GenerateHandler
	BatchHandler    *handlers.BatchHandler
	// ArchiveHandler is nil unless the archive was requested.
	ArchiveHandler *handlers.ArchiveHandler
	// SimilarityHandler is nil unless the similarity index was requested.
	SimilarityHandler *handlers.SimilarityHandler

	collections ports.CollectionManager
	vectorSize  uint64
}

// stores says which optional backends a command needs.
type stores struct {
	archive    bool
	similarity bool
}

// withDeps builds the generation dependencies, then calls fn.
func withDeps(ctx context.Context, fn func(*Deps) error) error {
	return buildDeps(ctx, stores{}, fn)
}

// withArchive is withDeps plus the SQLite archive.
func withArchive(ctx context.Context, fn func(*Deps) error) error {
	return buildDeps(ctx, stores{archive: true}, fn)
}

// withSimilarity is withArchive plus the embedder and Qdrant index.
func withSimilarity(ctx context.Context, fn func(*Deps) error) error {
	return buildDeps(ctx, stores{archive: true, similarity: true}, fn)
}

// buildDeps loads config and builds dependencies, then calls the provided
// function. It handles cleanup automatically.
func buildDeps(ctx context.Context, need stores, fn func(*Deps) error) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	cfg, err := config.LoadOrDefault(cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := slog.Default()

	cat, err := handlers.LoadCatalog(cfg.CatalogPath(cwd))
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	generator := services.NewLoreGenerator(cat, random.NewSource(1))
	batch := services.NewBatchService(generator, random.Factory, random.NewSeed, logger)

	deps := &Deps{
		Config:   cfg,
		BasePath: cwd,
		Logger:   logger,
	}

	var archive *services.ArchiveService
	if need.archive {
		repo, err := sqlite.NewRepository(config.SQLiteConfig{Path: cfg.ArchivePath(cwd)})
		if err != nil {
			return fmt.Errorf("creating sqlite repository: %w", err)
		}
		defer repo.Close()

		if err := repo.EnsureSchema(ctx); err != nil {
			return fmt.Errorf("ensuring sqlite schema: %w", err)
		}
		archive = services.NewArchiveService(repo)
		logger.Debug("archive opened", "path", repo.Path())
	}

	var similarity *services.SimilarityService
	if need.similarity {
		emb, err := embedder.NewEmbedder(cfg.Embedder)
		if err != nil {
			return fmt.Errorf("creating embedder: %w", err)
		}

		repo, err := qdrant.NewRepository(cfg.Qdrant)
		if err != nil {
			return fmt.Errorf("creating qdrant repository: %w", err)
		}
		defer repo.Close()

		similarity = services.NewSimilarityService(emb, repo)
		deps.collections = repo
		deps.vectorSize = embedder.VectorSizeFor(emb.Model())
		deps.SimilarityHandler = handlers.NewSimilarityHandler(archive, similarity)
		logger.Debug("similarity index ready", "collection", repo.Collection(), "model", emb.Model())
	}

	deps.GenerateHandler = handlers.NewGenerateHandler(generator, random.Factory, random.NewSeed, archive)
	deps.BatchHandler = handlers.NewBatchHandler(batch, archive)
	if archive != nil {
		deps.ArchiveHandler = handlers.NewArchiveHandler(archive, similarity)
	}

	return fn(deps)
}

// parameterSource fills the preset and file from config when the command
// left them unset.
func (d *Deps) parameterSource(src handlers.ParameterSource) handlers.ParameterSource {
	if src.Preset == "" {
		src.Preset = d.Config.Generation.Preset
	}
	if src.File == "" {
		src.File = d.Config.ParametersPath(d.BasePath)
	}
	return src
}

// resetIndex drops and recreates the similarity collection.
func (d *Deps) resetIndex(ctx context.Context) error {
	if d.collections == nil {
		return errors.New("similarity index is not configured")
	}
	if err := d.collections.DeleteCollection(ctx); err != nil {
		return fmt.Errorf("deleting collection: %w", err)
	}
	if err := d.collections.EnsureCollection(ctx, d.vectorSize); err != nil {
		return fmt.Errorf("creating collection: %w", err)
	}
	return nil
}
