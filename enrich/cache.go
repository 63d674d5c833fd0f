package enrich

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Cache persists generated image descriptions keyed by content hash, so
// a deck full of repeated logos is described once across runs.
type Cache struct {
	db *sql.DB
}

const cacheSchema = `
CREATE TABLE IF NOT EXISTS descriptions (
	hash       TEXT PRIMARY KEY,
	text       TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL
);`

// OpenCache opens (creating if necessary) a description cache at path.
// Use ":memory:" for an ephemeral cache.
func OpenCache(path string) (*Cache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening cache %s: %w", path, err)
	}
	if _, err := db.Exec(cacheSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing cache schema: %w", err)
	}
	return &Cache{db: db}, nil
}

// Get returns the cached description for a content hash.
func (c *Cache) Get(hash string) (string, bool) {
	if c == nil || hash == "" {
		return "", false
	}
	var text string
	err := c.db.QueryRow(`SELECT text FROM descriptions WHERE hash = ?`, hash).Scan(&text)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return "", false
		}
		return "", false
	}
	return text, true
}

// Put stores a description for a content hash, replacing any previous
// entry.
func (c *Cache) Put(hash, text string) error {
	if c == nil || hash == "" {
		return nil
	}
	_, err := c.db.Exec(
		`INSERT INTO descriptions (hash, text, created_at) VALUES (?, ?, ?)
		 ON CONFLICT(hash) DO UPDATE SET text = excluded.text, created_at = excluded.created_at`,
		hash, text, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("storing description: %w", err)
	}
	return nil
}

// Close releases the underlying database.
func (c *Cache) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	return c.db.Close()
}
