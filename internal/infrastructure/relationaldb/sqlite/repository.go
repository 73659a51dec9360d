// Package sqlite provides a SQLite implementation of the Archive interface.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/ersonp/lore-forge/internal/domain/entities"
	"github.com/ersonp/lore-forge/internal/infrastructure/config"
)

// timeNow returns the current time (can be mocked in tests).
var timeNow = time.Now

// Repository implements ports.Archive using SQLite.
type Repository struct {
	db   *sqlx.DB
	path string
}

// characterRow is the stored shape of an archived character. Lore and
// parameters are kept as JSON; the columns beside them exist for filtering.
type characterRow struct {
	ID             string `db:"id"`
	Name           string `db:"name"`
	NormalizedName string `db:"normalized_name"`
	Archetype      string `db:"archetype"`
	Origin         string `db:"origin"`
	Seed           int64  `db:"seed"`
	Lore           string `db:"lore"`
	Parameters     string `db:"parameters"`
	Narrative      string `db:"narrative"`
	CreatedAt      int64  `db:"created_at"`
}

type auditRow struct {
	ID          int64          `db:"id"`
	Action      string         `db:"action"`
	CharacterID sql.NullString `db:"character_id"`
	Details     sql.NullString `db:"details"`
	CreatedAt   int64          `db:"created_at"`
}

// NewRepository creates a new SQLite repository.
func NewRepository(cfg config.SQLiteConfig) (*Repository, error) {
	if cfg.Path == "" {
		return nil, errors.New("sqlite path is required")
	}
	if cfg.Path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
			return nil, fmt.Errorf("creating archive directory: %w", err)
		}
	}

	db, err := sqlx.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}

	// Every connection to :memory: is a separate database.
	if cfg.Path == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	pragmas := []struct {
		stmt string
		what string
	}{
		{"PRAGMA foreign_keys = ON", "enabling foreign keys"},
		{"PRAGMA journal_mode = WAL", "enabling WAL mode"},
		{"PRAGMA busy_timeout = 5000", "setting busy timeout"},
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p.stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("%s: %w", p.what, err)
		}
	}

	return &Repository{
		db:   db,
		path: cfg.Path,
	}, nil
}

// Close closes the database connection.
func (r *Repository) Close() error {
	return r.db.Close()
}

// Path returns the database file path.
func (r *Repository) Path() string {
	return r.path
}

// EnsureSchema creates the database schema if it doesn't exist.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	schema := `
	-- Archived characters
	CREATE TABLE IF NOT EXISTS characters (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		normalized_name TEXT NOT NULL,
		archetype TEXT NOT NULL,
		origin TEXT NOT NULL,
		seed INTEGER NOT NULL,
		lore TEXT NOT NULL,
		parameters TEXT NOT NULL,
		narrative TEXT NOT NULL,
		created_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_characters_name ON characters(normalized_name);
	CREATE INDEX IF NOT EXISTS idx_characters_archetype ON characters(archetype);
	CREATE INDEX IF NOT EXISTS idx_characters_origin ON characters(origin);
	CREATE INDEX IF NOT EXISTS idx_characters_created ON characters(created_at);

	-- Audit log (survives character deletion)
	CREATE TABLE IF NOT EXISTS audit_log (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		action TEXT NOT NULL,
		character_id TEXT,
		details TEXT,
		created_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_audit_log_character ON audit_log(character_id);
	CREATE INDEX IF NOT EXISTS idx_audit_log_action ON audit_log(action);
	CREATE INDEX IF NOT EXISTS idx_audit_log_created ON audit_log(created_at);
	`

	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

// SaveCharacter saves or replaces an archived character.
func (r *Repository) SaveCharacter(ctx context.Context, c *entities.ArchivedCharacter) error {
	row, err := toCharacterRow(c)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO characters (id, name, normalized_name, archetype, origin, seed, lore, parameters, narrative, created_at)
		VALUES (:id, :name, :normalized_name, :archetype, :origin, :seed, :lore, :parameters, :narrative, :created_at)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			normalized_name = excluded.normalized_name,
			archetype = excluded.archetype,
			origin = excluded.origin,
			seed = excluded.seed,
			lore = excluded.lore,
			parameters = excluded.parameters,
			narrative = excluded.narrative
	`
	if _, err := r.db.NamedExecContext(ctx, query, row); err != nil {
		return fmt.Errorf("saving character: %w", err)
	}
	return nil
}

// FindCharacter finds a character by ID. Returns nil if not found.
func (r *Repository) FindCharacter(ctx context.Context, id string) (*entities.ArchivedCharacter, error) {
	var row characterRow
	err := r.db.GetContext(ctx, &row, `SELECT * FROM characters WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying character: %w", err)
	}
	return row.toEntity()
}

// ListCharacters lists characters newest first with pagination.
func (r *Repository) ListCharacters(ctx context.Context, filter entities.ArchiveFilter, limit, offset int) ([]*entities.ArchivedCharacter, error) {
	where, args := filterClause(filter)
	query := `SELECT * FROM characters` + where + ` ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`
	return r.queryCharacters(ctx, query, append(args, limit, offset)...)
}

// SearchCharacters finds characters whose name contains query, ignoring case.
func (r *Repository) SearchCharacters(ctx context.Context, query string, limit int) ([]*entities.ArchivedCharacter, error) {
	pattern := "%" + escapeLike(entities.NormalizeName(query)) + "%"
	sqlQuery := `
		SELECT * FROM characters
		WHERE normalized_name LIKE ? ESCAPE '\'
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`
	return r.queryCharacters(ctx, sqlQuery, pattern, limit)
}

// DeleteCharacter deletes a character by ID.
func (r *Repository) DeleteCharacter(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM characters WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting character: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("character not found: %s", id)
	}
	return nil
}

// CountCharacters returns how many characters match filter.
func (r *Repository) CountCharacters(ctx context.Context, filter entities.ArchiveFilter) (int, error) {
	where, args := filterClause(filter)
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM characters`+where, args...); err != nil {
		return 0, fmt.Errorf("counting characters: %w", err)
	}
	return count, nil
}

// LogAction appends an audit log entry and sets its ID.
func (r *Repository) LogAction(ctx context.Context, entry *entities.AuditEntry) error {
	var details sql.NullString
	if entry.Details != nil {
		data, err := json.Marshal(entry.Details)
		if err != nil {
			return fmt.Errorf("marshaling details: %w", err)
		}
		details = sql.NullString{String: string(data), Valid: true}
	}

	var characterID sql.NullString
	if entry.CharacterID != "" {
		characterID = sql.NullString{String: entry.CharacterID, Valid: true}
	}

	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = timeNow().UTC()
	}

	query := `INSERT INTO audit_log (action, character_id, details, created_at) VALUES (?, ?, ?, ?)`
	result, err := r.db.ExecContext(ctx, query, entry.Action, characterID, details, entry.CreatedAt.UnixNano())
	if err != nil {
		return fmt.Errorf("logging action: %w", err)
	}
	if id, err := result.LastInsertId(); err == nil {
		entry.ID = id
	}
	return nil
}

// FindAuditLog returns audit entries for a character, newest first. An empty
// characterID returns entries for every character.
func (r *Repository) FindAuditLog(ctx context.Context, characterID string, limit int) ([]entities.AuditEntry, error) {
	query := `SELECT id, action, character_id, details, created_at FROM audit_log`
	var args []any
	if characterID != "" {
		query += ` WHERE character_id = ?`
		args = append(args, characterID)
	}
	query += ` ORDER BY created_at DESC, id DESC LIMIT ?`
	args = append(args, limit)

	var rows []auditRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("querying audit log: %w", err)
	}

	entries := make([]entities.AuditEntry, 0, len(rows))
	for _, row := range rows {
		entry := entities.AuditEntry{
			ID:          row.ID,
			Action:      row.Action,
			CharacterID: row.CharacterID.String,
			CreatedAt:   time.Unix(0, row.CreatedAt).UTC(),
		}
		if row.Details.Valid && row.Details.String != "" {
			if err := json.Unmarshal([]byte(row.Details.String), &entry.Details); err != nil {
				return nil, fmt.Errorf("unmarshaling details: %w", err)
			}
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// queryCharacters is a helper to execute character list queries.
func (r *Repository) queryCharacters(ctx context.Context, query string, args ...any) ([]*entities.ArchivedCharacter, error) {
	var rows []characterRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("querying characters: %w", err)
	}

	chars := make([]*entities.ArchivedCharacter, 0, len(rows))
	for _, row := range rows {
		c, err := row.toEntity()
		if err != nil {
			return nil, err
		}
		chars = append(chars, c)
	}
	return chars, nil
}

func filterClause(filter entities.ArchiveFilter) (string, []any) {
	var conds []string
	var args []any
	if filter.Archetype != "" {
		conds = append(conds, "archetype = ?")
		args = append(args, string(filter.Archetype))
	}
	if filter.Origin != "" {
		conds = append(conds, "origin = ?")
		args = append(args, string(filter.Origin))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func toCharacterRow(c *entities.ArchivedCharacter) (characterRow, error) {
	lore, err := json.Marshal(c.Lore)
	if err != nil {
		return characterRow{}, fmt.Errorf("marshaling lore: %w", err)
	}
	params, err := json.Marshal(c.Parameters)
	if err != nil {
		return characterRow{}, fmt.Errorf("marshaling parameters: %w", err)
	}

	createdAt := c.CreatedAt
	if createdAt.IsZero() {
		createdAt = timeNow()
	}

	return characterRow{
		ID:             c.ID,
		Name:           c.Name(),
		NormalizedName: entities.NormalizeName(c.Name()),
		Archetype:      string(c.Lore.Identity.Archetype),
		Origin:         string(c.Lore.Background.Origin),
		Seed:           c.Seed,
		Lore:           string(lore),
		Parameters:     string(params),
		Narrative:      c.Narrative,
		CreatedAt:      createdAt.UnixNano(),
	}, nil
}

func (row characterRow) toEntity() (*entities.ArchivedCharacter, error) {
	c := &entities.ArchivedCharacter{
		ID:        row.ID,
		Seed:      row.Seed,
		Narrative: row.Narrative,
		CreatedAt: time.Unix(0, row.CreatedAt).UTC(),
	}
	if err := json.Unmarshal([]byte(row.Lore), &c.Lore); err != nil {
		return nil, fmt.Errorf("unmarshaling lore for %s: %w", row.ID, err)
	}
	if err := json.Unmarshal([]byte(row.Parameters), &c.Parameters); err != nil {
		return nil, fmt.Errorf("unmarshaling parameters for %s: %w", row.ID, err)
	}
	return c, nil
}
