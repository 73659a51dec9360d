package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ersonp/lore-forge/internal/domain/entities"
	"github.com/ersonp/lore-forge/internal/domain/ports"
)

// ErrInvalidBatch is returned for a non-positive batch count.
var ErrInvalidBatch = errors.New("invalid batch request")

// RandomFactory builds the entropy source for one seed.
type RandomFactory func(seed int64) ports.Random

// SeedFunc draws a fresh seed.
type SeedFunc func() (int64, error)

// BatchRequest describes a batch of characters sharing options and parameters.
type BatchRequest struct {
	Count      int
	Options    GenerateOptions
	Parameters entities.GenerationParameters
	// Seed is the base seed; item i is drawn from Seed+i. Zero draws a fresh one.
	Seed int64
	// Workers bounds concurrency. Zero means GOMAXPROCS.
	Workers int
}

// BatchItem is one generated character.
type BatchItem struct {
	Index     int
	Seed      int64
	Lore      entities.CharacterLore
	Narrative string
}

// BatchResult holds every item in index order.
type BatchResult struct {
	Seed     int64
	Items    []BatchItem
	Duration time.Duration
}

// Lores returns the characters in index order.
func (r *BatchResult) Lores() []entities.CharacterLore {
	lores := make([]entities.CharacterLore, len(r.Items))
	for i, item := range r.Items {
		lores[i] = item.Lore
	}
	return lores
}

// BatchService generates many characters concurrently. Every item gets its
// own source, so results do not depend on the worker count.
type BatchService struct {
	generator *LoreGenerator
	newRandom RandomFactory
	newSeed   SeedFunc
	logger    *slog.Logger
}

// NewBatchService creates a new batch service.
func NewBatchService(generator *LoreGenerator, newRandom RandomFactory, newSeed SeedFunc, logger *slog.Logger) *BatchService {
	if logger == nil {
		logger = slog.Default()
	}
	return &BatchService{
		generator: generator,
		newRandom: newRandom,
		newSeed:   newSeed,
		logger:    logger,
	}
}

// Generate runs the batch. Parameters are validated once before any work
// starts; cancelling ctx stops items that have not begun.
func (s *BatchService) Generate(ctx context.Context, req BatchRequest) (*BatchResult, error) {
	if req.Count <= 0 {
		return nil, fmt.Errorf("%w: count %d must be positive", ErrInvalidBatch, req.Count)
	}
	if err := req.Parameters.Validate(); err != nil {
		return nil, err
	}

	seed := req.Seed
	if seed == 0 {
		var err error
		if seed, err = s.newSeed(); err != nil {
			return nil, fmt.Errorf("drawing batch seed: %w", err)
		}
	}

	workers := req.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	start := time.Now()
	items := make([]BatchItem, req.Count)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range req.Count {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			itemSeed := seed + int64(i)
			lore, err := s.generator.WithRandom(s.newRandom(itemSeed)).Generate(req.Options, req.Parameters)
			if err != nil {
				return fmt.Errorf("generating character %d: %w", i+1, err)
			}
			items[i] = BatchItem{
				Index:     i,
				Seed:      itemSeed,
				Lore:      lore,
				Narrative: RenderNarrative(lore),
			}
			s.logger.Debug("generated character", "index", i+1, "name", lore.Identity.Name, "seed", itemSeed)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &BatchResult{Seed: seed, Items: items, Duration: time.Since(start)}
	s.logger.Info("batch generated", "count", req.Count, "seed", seed, "workers", workers, "duration", result.Duration)
	return result, nil
}
