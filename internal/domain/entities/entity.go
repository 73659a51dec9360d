package entities

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// ArchivedCharacter is a generated character kept in the archive together
// with everything needed to reproduce it.
type ArchivedCharacter struct {
	ID         string               `json:"id"`
	Lore       CharacterLore        `json:"lore"`
	Parameters GenerationParameters `json:"parameters"`
	Seed       int64                `json:"seed"`
	Narrative  string               `json:"narrative"`
	CreatedAt  time.Time            `json:"created_at"`
}

// Name returns the character's name.
func (c *ArchivedCharacter) Name() string {
	return c.Lore.Identity.Name
}

// ArchiveFilter narrows archive listings. Zero fields match everything.
type ArchiveFilter struct {
	Archetype Archetype
	Origin    Origin
}

// NormalizeName folds a name for case-insensitive matching. Names are NFC
// normalised first so "Maëly" typed with a combining diaeresis still matches.
func NormalizeName(name string) string {
	return cases.Fold().String(norm.NFC.String(strings.TrimSpace(name)))
}
