package mocks

import (
	"context"
	"sort"
	"strings"

	"github.com/ersonp/lore-forge/internal/domain/entities"
)

// Archive is an in-memory implementation of ports.Archive.
type Archive struct {
	Characters map[string]*entities.ArchivedCharacter
	Audit      []entities.AuditEntry
	Err        error
	LogErr     error

	SaveCallCount int
}

// NewArchive creates a new mock Archive.
func NewArchive() *Archive {
	return &Archive{
		Characters: make(map[string]*entities.ArchivedCharacter),
	}
}

// EnsureSchema returns the configured error.
func (m *Archive) EnsureSchema(_ context.Context) error {
	return m.Err
}

// Close does nothing.
func (m *Archive) Close() error {
	return nil
}

// SaveCharacter stores the character by ID.
func (m *Archive) SaveCharacter(_ context.Context, c *entities.ArchivedCharacter) error {
	m.SaveCallCount++
	if m.Err != nil {
		return m.Err
	}
	m.Characters[c.ID] = c
	return nil
}

// FindCharacter returns the character or nil.
func (m *Archive) FindCharacter(_ context.Context, id string) (*entities.ArchivedCharacter, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Characters[id], nil
}

// ListCharacters returns matching characters newest first.
func (m *Archive) ListCharacters(_ context.Context, filter entities.ArchiveFilter, limit, offset int) ([]*entities.ArchivedCharacter, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	matched := m.matching(filter)
	if offset >= len(matched) {
		return nil, nil
	}
	matched = matched[offset:]
	if limit > 0 && limit < len(matched) {
		matched = matched[:limit]
	}
	return matched, nil
}

// SearchCharacters matches names by case-folded substring.
func (m *Archive) SearchCharacters(_ context.Context, query string, limit int) ([]*entities.ArchivedCharacter, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	q := entities.NormalizeName(query)
	var found []*entities.ArchivedCharacter
	for _, c := range m.matching(entities.ArchiveFilter{}) {
		if strings.Contains(entities.NormalizeName(c.Name()), q) {
			found = append(found, c)
		}
	}
	if limit > 0 && limit < len(found) {
		found = found[:limit]
	}
	return found, nil
}

// DeleteCharacter removes the character.
func (m *Archive) DeleteCharacter(_ context.Context, id string) error {
	if m.Err != nil {
		return m.Err
	}
	delete(m.Characters, id)
	return nil
}

// CountCharacters counts matching characters.
func (m *Archive) CountCharacters(_ context.Context, filter entities.ArchiveFilter) (int, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	return len(m.matching(filter)), nil
}

// LogAction appends the entry.
func (m *Archive) LogAction(_ context.Context, entry *entities.AuditEntry) error {
	if m.LogErr != nil {
		return m.LogErr
	}
	entry.ID = int64(len(m.Audit) + 1)
	m.Audit = append(m.Audit, *entry)
	return nil
}

// FindAuditLog returns entries for characterID, newest first.
func (m *Archive) FindAuditLog(_ context.Context, characterID string, limit int) ([]entities.AuditEntry, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var out []entities.AuditEntry
	for i := len(m.Audit) - 1; i >= 0; i-- {
		if characterID == "" || m.Audit[i].CharacterID == characterID {
			out = append(out, m.Audit[i])
		}
	}
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (m *Archive) matching(filter entities.ArchiveFilter) []*entities.ArchivedCharacter {
	var out []*entities.ArchivedCharacter
	for _, c := range m.Characters {
		if filter.Archetype != "" && c.Lore.Identity.Archetype != filter.Archetype {
			continue
		}
		if filter.Origin != "" && c.Lore.Background.Origin != filter.Origin {
			continue
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}
