package handlers

import (
	"context"
	"errors"
	"fmt"

	"github.com/ersonp/lore-forge/internal/domain/entities"
	"github.com/ersonp/lore-forge/internal/domain/services"
)

// ErrArchiveUnavailable is returned when archiving is requested but no
// archive is configured.
var ErrArchiveUnavailable = errors.New("archive is not configured")

// GenerateCommand describes one character to generate. Empty archetype and
// origin are drawn at random; a zero seed draws a fresh one.
type GenerateCommand struct {
	Archetype  string
	Origin     string
	Name       string
	Parameters entities.GenerationParameters
	Seed       int64
	Archive    bool
}

// GenerateResult contains the generated character.
type GenerateResult struct {
	Lore      entities.CharacterLore
	Narrative string
	Seed      int64
	ArchiveID string
}

// GenerateHandler handles single character generation.
type GenerateHandler struct {
	generator *services.LoreGenerator
	newRandom services.RandomFactory
	newSeed   services.SeedFunc
	archive   *services.ArchiveService
}

// NewGenerateHandler creates a new generate handler. archive may be nil.
func NewGenerateHandler(generator *services.LoreGenerator, newRandom services.RandomFactory, newSeed services.SeedFunc, archive *services.ArchiveService) *GenerateHandler {
	return &GenerateHandler{
		generator: generator,
		newRandom: newRandom,
		newSeed:   newSeed,
		archive:   archive,
	}
}

// Handle generates, renders and optionally archives one character. The
// same command with the same non-zero seed always yields the same lore.
func (h *GenerateHandler) Handle(ctx context.Context, cmd GenerateCommand) (*GenerateResult, error) {
	opts, err := ParseOptions(cmd.Archetype, cmd.Origin, cmd.Name)
	if err != nil {
		return nil, err
	}
	if cmd.Archive && h.archive == nil {
		return nil, ErrArchiveUnavailable
	}

	seed := cmd.Seed
	if seed == 0 {
		if seed, err = h.newSeed(); err != nil {
			return nil, fmt.Errorf("drawing seed: %w", err)
		}
	}

	lore, err := h.generator.WithRandom(h.newRandom(seed)).Generate(opts, cmd.Parameters)
	if err != nil {
		return nil, fmt.Errorf("generating character: %w", err)
	}

	result := &GenerateResult{
		Lore:      lore,
		Narrative: services.RenderNarrative(lore),
		Seed:      seed,
	}

	if cmd.Archive {
		archived, err := h.archive.Archive(ctx, lore, cmd.Parameters, seed)
		if err != nil {
			return nil, fmt.Errorf("archiving character: %w", err)
		}
		result.ArchiveID = archived.ID
	}

	return result, nil
}

// ParseOptions resolves archetype and origin labels. Empty labels stay
// empty so the generator draws them.
func ParseOptions(archetype, origin, name string) (services.GenerateOptions, error) {
	var opts services.GenerateOptions
	var err error

	if archetype != "" {
		if opts.Archetype, err = entities.ParseArchetype(archetype); err != nil {
			return services.GenerateOptions{}, err
		}
	}
	if origin != "" {
		if opts.Origin, err = entities.ParseOrigin(origin); err != nil {
			return services.GenerateOptions{}, err
		}
	}
	opts.Name = name

	return opts, nil
}
