// Package storage persists scan results in a SQLite outline cache, keyed by
// file path and content hash so unchanged files can be skipped on rescan.
package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"rustmap/internal/outline"
)

// Store wraps the outline cache database. *sql.DB serializes access, so a
// Store is safe for concurrent use by scan workers.
type Store struct {
	db *sql.DB
}

// FileRecord is one cached outline row, without the outline payload.
type FileRecord struct {
	Path        string
	Hash        string
	Success     bool
	ParseTimeMs int64
	ItemCount   int
	UpdatedAt   time.Time
}

// ErrNotFound is returned when no outline is cached for a path.
var ErrNotFound = errors.New("outline not found")

// Open opens (or creates) the outline cache at dbPath and ensures the
// schema exists.
func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open outline cache: %w", err)
	}

	store := &Store{db: db}
	if err := store.createSchema(); err != nil {
		db.Close()
		return nil, err
	}

	return store, nil
}

// createSchema creates the outlines table and its indexes. All schema
// creation succeeds or fails together.
func (s *Store) createSchema() error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin schema transaction: %w", err)
	}
	defer tx.Rollback() // Safe to call even after commit

	statements := []string{
		`CREATE TABLE IF NOT EXISTS outlines (
			path TEXT PRIMARY KEY,
			hash TEXT NOT NULL,
			success INTEGER NOT NULL,
			parse_time_ms INTEGER NOT NULL,
			item_count INTEGER NOT NULL,
			reference_count INTEGER NOT NULL,
			diagnostic_count INTEGER NOT NULL,
			outline TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_outlines_hash ON outlines(hash)`,
	}

	for _, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit schema transaction: %w", err)
	}
	return nil
}

// HasCurrent reports whether the cached outline for path matches the given
// content hash.
func (s *Store) HasCurrent(path, hash string) (bool, error) {
	var stored string
	err := s.db.QueryRow(`SELECT hash FROM outlines WHERE path = ?`, path).Scan(&stored)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to query outline for %s: %w", path, err)
	}
	return stored == hash, nil
}

// Upsert stores the outline for a file. A result that cannot be encoded is a
// hard failure; no partial row is written.
func (s *Store) Upsert(path, hash string, result *outline.Result) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to encode outline for %s: %w", path, err)
	}

	_, err = s.db.Exec(`
		INSERT INTO outlines (path, hash, success, parse_time_ms, item_count, reference_count, diagnostic_count, outline, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET
			hash = excluded.hash,
			success = excluded.success,
			parse_time_ms = excluded.parse_time_ms,
			item_count = excluded.item_count,
			reference_count = excluded.reference_count,
			diagnostic_count = excluded.diagnostic_count,
			outline = excluded.outline,
			updated_at = excluded.updated_at`,
		path, hash, result.Success, result.ParseTimeMs,
		len(result.FileInfo.Items), len(result.FileInfo.ModuleReferences),
		len(result.Diagnostics), string(payload), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to store outline for %s: %w", path, err)
	}
	return nil
}

// Get loads the cached outline for a path.
func (s *Store) Get(path string) (*outline.Result, error) {
	var payload string
	err := s.db.QueryRow(`SELECT outline FROM outlines WHERE path = ?`, path).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load outline for %s: %w", path, err)
	}

	result := &outline.Result{}
	if err := json.Unmarshal([]byte(payload), result); err != nil {
		return nil, fmt.Errorf("failed to decode outline for %s: %w", path, err)
	}
	return result, nil
}

// List returns all cached file records ordered by path.
func (s *Store) List() ([]FileRecord, error) {
	rows, err := s.db.Query(`
		SELECT path, hash, success, parse_time_ms, item_count, updated_at
		FROM outlines ORDER BY path`)
	if err != nil {
		return nil, fmt.Errorf("failed to list outlines: %w", err)
	}
	defer rows.Close()

	var records []FileRecord
	for rows.Next() {
		var rec FileRecord
		var success int
		var updatedAt string
		if err := rows.Scan(&rec.Path, &rec.Hash, &success, &rec.ParseTimeMs, &rec.ItemCount, &updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan outline row: %w", err)
		}
		rec.Success = success != 0
		rec.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
