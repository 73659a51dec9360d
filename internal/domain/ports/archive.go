package ports

import (
	"context"

	"github.com/ersonp/lore-forge/internal/domain/entities"
)

// Archive stores generated characters and an audit log of what happened to
// them. Nothing in the generator reads it back.
type Archive interface {
	// EnsureSchema creates the database schema if it doesn't exist.
	EnsureSchema(ctx context.Context) error

	// Close closes the database connection.
	Close() error

	// SaveCharacter saves or replaces an archived character.
	SaveCharacter(ctx context.Context, c *entities.ArchivedCharacter) error

	// FindCharacter finds a character by ID. Returns nil if not found.
	FindCharacter(ctx context.Context, id string) (*entities.ArchivedCharacter, error)

	// ListCharacters lists characters newest first with pagination.
	ListCharacters(ctx context.Context, filter entities.ArchiveFilter, limit, offset int) ([]*entities.ArchivedCharacter, error)

	// SearchCharacters finds characters whose name contains query, ignoring case.
	SearchCharacters(ctx context.Context, query string, limit int) ([]*entities.ArchivedCharacter, error)

	// DeleteCharacter deletes a character by ID.
	DeleteCharacter(ctx context.Context, id string) error

	// CountCharacters returns how many characters match filter.
	CountCharacters(ctx context.Context, filter entities.ArchiveFilter) (int, error)

	// LogAction appends an audit log entry.
	LogAction(ctx context.Context, entry *entities.AuditEntry) error

	// FindAuditLog returns audit entries for a character, newest first.
	// An empty characterID returns entries for every character.
	FindAuditLog(ctx context.Context, characterID string, limit int) ([]entities.AuditEntry, error)
}
