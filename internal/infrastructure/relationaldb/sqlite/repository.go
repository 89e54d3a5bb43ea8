// Package sqlite provides a SQLite implementation of the ModeStore interface.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/ersonp/dex-core/internal/domain/entities"
	"github.com/ersonp/dex-core/internal/domain/ports"
)

// generateUUID returns a new UUID string.
func generateUUID() string {
	return uuid.New().String()
}

// timeNow returns the current time (can be mocked in tests).
var timeNow = time.Now

// Repository implements ports.ModeStore, ports.ModeHistory and
// ports.SchemaManager using SQLite.
type Repository struct {
	db   *sql.DB
	path string
}

var (
	_ ports.ModeStore     = (*Repository)(nil)
	_ ports.ModeHistory   = (*Repository)(nil)
	_ ports.SchemaManager = (*Repository)(nil)
)

// NewRepository opens the SQLite database at path.
func NewRepository(path string) (*Repository, error) {
	if path == "" {
		return nil, errors.New("sqlite path is required")
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}
	// One connection keeps :memory: databases shared and serializes writers.
	db.SetMaxOpenConns(1)

	// Enable foreign keys for referential integrity
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	// Set busy timeout to avoid "database is locked" errors
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	return &Repository{
		db:   db,
		path: path,
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
	-- One row per wholesale save
	CREATE TABLE IF NOT EXISTS mode_batches (
		id TEXT PRIMARY KEY,
		entries INTEGER NOT NULL,
		created_at TIMESTAMP NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_mode_batches_created ON mode_batches(created_at);

	-- Current status per species
	CREATE TABLE IF NOT EXISTS modes (
		species_id INTEGER PRIMARY KEY,
		status TEXT NOT NULL CHECK (status IN ('dex-only', 'boxed')),
		batch_id TEXT NOT NULL REFERENCES mode_batches(id)
	);
	`

	_, err := r.db.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

// Load returns the stored mapping.
func (r *Repository) Load(ctx context.Context) (entities.ModeMap, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT species_id, status FROM modes`)
	if err != nil {
		return nil, fmt.Errorf("querying modes: %w", err)
	}
	defer rows.Close()

	modes := entities.ModeMap{}
	for rows.Next() {
		var id int
		var raw string
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, fmt.Errorf("scanning mode: %w", err)
		}
		status, err := entities.ParseModeStatus(raw)
		if err != nil {
			return nil, fmt.Errorf("species %d: %w", id, err)
		}
		modes.Set(id, status)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating modes: %w", err)
	}
	return modes, nil
}

// Save replaces the stored mapping in one transaction and records a batch.
func (r *Repository) Save(ctx context.Context, modes entities.ModeMap) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	batchID := generateUUID()
	count := 0
	for _, status := range modes {
		if status != entities.ModeNone {
			count++
		}
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO mode_batches (id, entries, created_at) VALUES (?, ?, ?)`,
		batchID, count, timeNow().UTC(),
	); err != nil {
		return fmt.Errorf("recording batch: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM modes`); err != nil {
		return fmt.Errorf("clearing modes: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO modes (species_id, status, batch_id) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for id, status := range modes {
		if status == entities.ModeNone {
			continue
		}
		if _, err := stmt.ExecContext(ctx, id, string(status), batchID); err != nil {
			return fmt.Errorf("saving mode for %d: %w", id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing modes: %w", err)
	}
	return nil
}

// Batches returns the most recent saves, newest first.
func (r *Repository) Batches(ctx context.Context, limit int) ([]entities.ModeBatch, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, entries, created_at FROM mode_batches ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying batches: %w", err)
	}
	defer rows.Close()

	var batches []entities.ModeBatch
	for rows.Next() {
		var b entities.ModeBatch
		if err := rows.Scan(&b.ID, &b.Entries, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning batch: %w", err)
		}
		batches = append(batches, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating batches: %w", err)
	}
	return batches, nil
}
