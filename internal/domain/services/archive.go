package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ersonp/lore-forge/internal/domain/entities"
	"github.com/ersonp/lore-forge/internal/domain/ports"
)

var (
	// ErrCharacterNotFound is returned when an archive ID matches nothing.
	ErrCharacterNotFound = errors.New("character not found")
	// ErrEmptyQuery is returned by searches given only whitespace.
	ErrEmptyQuery = errors.New("search query is empty")
)

// DefaultListLimit is the page size used when a listing asks for none.
const DefaultListLimit = 50

// ArchiveService keeps generated characters for later browsing.
type ArchiveService struct {
	archive ports.Archive
	now     func() time.Time
}

// NewArchiveService creates a new ArchiveService.
func NewArchiveService(archive ports.Archive) *ArchiveService {
	return &ArchiveService{
		archive: archive,
		now:     time.Now,
	}
}

// Archive stores a character together with the parameters and seed that
// produced it, and records the action in the audit log.
func (s *ArchiveService) Archive(ctx context.Context, lore entities.CharacterLore, params entities.GenerationParameters, seed int64) (*entities.ArchivedCharacter, error) {
	c := &entities.ArchivedCharacter{
		ID:         uuid.New().String(),
		Lore:       lore,
		Parameters: params,
		Seed:       seed,
		Narrative:  RenderNarrative(lore),
		CreatedAt:  s.now().UTC(),
	}

	if err := s.archive.SaveCharacter(ctx, c); err != nil {
		return nil, fmt.Errorf("saving character: %w", err)
	}

	err := s.archive.LogAction(ctx, &entities.AuditEntry{
		Action:      entities.AuditActionArchive,
		CharacterID: c.ID,
		Details: map[string]any{
			"name":      c.Name(),
			"archetype": lore.Identity.Archetype.String(),
			"seed":      seed,
		},
		CreatedAt: c.CreatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("logging archive action: %w", err)
	}

	return c, nil
}

// Get returns an archived character by ID.
func (s *ArchiveService) Get(ctx context.Context, id string) (*entities.ArchivedCharacter, error) {
	c, err := s.archive.FindCharacter(ctx, strings.TrimSpace(id))
	if err != nil {
		return nil, fmt.Errorf("finding character: %w", err)
	}
	if c == nil {
		return nil, fmt.Errorf("%w: %s", ErrCharacterNotFound, id)
	}
	return c, nil
}

// List returns characters newest first along with the total matching count.
func (s *ArchiveService) List(ctx context.Context, filter entities.ArchiveFilter, limit, offset int) ([]*entities.ArchivedCharacter, int, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if offset < 0 {
		offset = 0
	}

	chars, err := s.archive.ListCharacters(ctx, filter, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("listing characters: %w", err)
	}
	total, err := s.archive.CountCharacters(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("counting characters: %w", err)
	}
	return chars, total, nil
}

// Search finds characters by name fragment.
func (s *ArchiveService) Search(ctx context.Context, query string, limit int) ([]*entities.ArchivedCharacter, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}
	if limit <= 0 {
		limit = DefaultListLimit
	}

	chars, err := s.archive.SearchCharacters(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("searching characters: %w", err)
	}
	return chars, nil
}

// Delete removes a character and records the deletion.
func (s *ArchiveService) Delete(ctx context.Context, id string) error {
	c, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.archive.DeleteCharacter(ctx, c.ID); err != nil {
		return fmt.Errorf("deleting character: %w", err)
	}

	err = s.archive.LogAction(ctx, &entities.AuditEntry{
		Action:      entities.AuditActionDelete,
		CharacterID: c.ID,
		Details:     map[string]any{"name": c.Name()},
		CreatedAt:   s.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("logging delete action: %w", err)
	}
	return nil
}

// History returns audit entries for one character, or for all when id is empty.
func (s *ArchiveService) History(ctx context.Context, id string, limit int) ([]entities.AuditEntry, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	entries, err := s.archive.FindAuditLog(ctx, strings.TrimSpace(id), limit)
	if err != nil {
		return nil, fmt.Errorf("reading audit log: %w", err)
	}
	return entries, nil
}

// RecordIndexed notes in the audit log that characters were indexed for
// similarity search.
func (s *ArchiveService) RecordIndexed(ctx context.Context, ids []string) error {
	now := s.now().UTC()
	for _, id := range ids {
		err := s.archive.LogAction(ctx, &entities.AuditEntry{
			Action:      entities.AuditActionIndex,
			CharacterID: id,
			CreatedAt:   now,
		})
		if err != nil {
			return fmt.Errorf("logging index action: %w", err)
		}
	}
	return nil
}
