package entities

import "time"

// Audit actions recorded by the archive.
const (
	AuditActionArchive = "archive"
	AuditActionDelete  = "delete"
	AuditActionIndex   = "index"
)

// AuditEntry represents a logged action against an archived character.
type AuditEntry struct {
	ID          int64          `json:"id"`
	Action      string         `json:"action"`
	CharacterID string         `json:"character_id,omitempty"`
	Details     map[string]any `json:"details,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}
