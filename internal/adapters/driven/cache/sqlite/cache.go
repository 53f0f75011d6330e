// Package sqlite provides a SQLite-backed render cache. Rendered HTML
// is keyed by document id and revision, so a new revision upstream
// replaces the stale entry on the next render.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/oldgaffers/fetch-doc/internal/core/ports/driven"
)

// Ensure Cache implements the interface.
var _ driven.RenderCache = (*Cache)(nil)

const schema = `
CREATE TABLE IF NOT EXISTS renders (
	doc_id      TEXT PRIMARY KEY,
	revision    TEXT NOT NULL,
	title       TEXT NOT NULL,
	html        TEXT NOT NULL,
	rendered_at TIMESTAMP NOT NULL
)`

// Cache is a SQLite-backed implementation of driven.RenderCache.
type Cache struct {
	db   *sql.DB
	path string
}

// New creates a render cache at the given file path, creating parent
// directories as needed.
func New(path string) (*Cache, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return nil, fmt.Errorf("creating cache directory: %w", err)
		}
	}

	// WAL mode for concurrent readers while a render is being stored
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening cache database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating cache schema: %w", err)
	}

	return &Cache{db: db, path: path}, nil
}

// Get returns the cached render for the exact (docID, revision) pair,
// or nil if absent. An entry stored under a different revision is a
// miss, not an error.
func (c *Cache) Get(ctx context.Context, docID, revision string) (*driven.CachedRender, error) {
	row := c.db.QueryRowContext(ctx,
		"SELECT title, html FROM renders WHERE doc_id = ? AND revision = ?",
		docID, revision)

	var entry driven.CachedRender
	if err := row.Scan(&entry.Title, &entry.HTML); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading cache entry: %w", err)
	}
	return &entry, nil
}

// Put stores a render, replacing any previous entry for the document.
func (c *Cache) Put(ctx context.Context, docID, revision string, entry driven.CachedRender) error {
	_, err := c.db.ExecContext(ctx,
		`INSERT INTO renders (doc_id, revision, title, html, rendered_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(doc_id) DO UPDATE SET
			revision = excluded.revision,
			title = excluded.title,
			html = excluded.html,
			rendered_at = excluded.rendered_at`,
		docID, revision, entry.Title, entry.HTML, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("writing cache entry: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Path returns the database file path.
func (c *Cache) Path() string {
	return c.path
}
