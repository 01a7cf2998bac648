package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/nkiryanov/cookbook/internal/logger"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS kv_entries (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL,
	expires_at INTEGER
);
`

// SQLite is a Storage backed by a SQLite kv table. Unlike File the
// expiry lives in the medium itself: reads filter on the expires_at
// column (epoch millis) and expired rows are lazily deleted.
type SQLite struct {
	db     *sql.DB
	logger logger.Logger

	now func() time.Time
}

func NewSQLite(db *sql.DB, l logger.Logger) (*SQLite, error) {
	if db == nil {
		return nil, errors.New("sqlite storage: db is nil")
	}

	if _, err := db.Exec(sqliteSchema); err != nil {
		return nil, fmt.Errorf("sqlite storage create schema: %w", err)
	}

	return &SQLite{db: db, logger: l, now: time.Now}, nil
}

// OpenSQLite opens (creating if needed) a SQLite database file and
// returns a storage over it. Close the returned backend when done.
func OpenSQLite(path string, l logger.Logger) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite storage open %q: %w", path, err)
	}
	return NewSQLite(db, l)
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

func (s *SQLite) GetItem(key string, def string) string {
	now := s.now().UnixMilli()

	var value string
	err := s.db.QueryRow(`
SELECT value FROM kv_entries
WHERE key = ? AND (expires_at IS NULL OR expires_at > ?)`, key, now).Scan(&value)

	switch {
	case errors.Is(err, sql.ErrNoRows):
		// Purge the expired row if that is why nothing matched
		if _, err := s.db.Exec(`DELETE FROM kv_entries WHERE key = ? AND expires_at <= ?`, key, now); err != nil {
			s.logger.Warn("Failed to purge expired entry", "key", key, "error", err)
		}
		return def
	case err != nil:
		s.logger.Warn("Failed to read entry", "key", key, "error", err)
		return def
	}

	if value == "" {
		return def
	}
	return value
}

func (s *SQLite) PutItem(key string, value string, ttl time.Duration) {
	var expiresAt *int64
	if ttl != 0 {
		at := s.now().Add(ttl).UnixMilli()
		expiresAt = &at
	}

	_, err := s.db.Exec(`
INSERT INTO kv_entries (key, value, expires_at) VALUES (?, ?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, expires_at = excluded.expires_at`,
		key, value, expiresAt,
	)
	if err != nil {
		s.logger.Warn("Failed to write entry", "key", key, "error", err)
	}
}

func (s *SQLite) DeleteItem(key string) {
	if _, err := s.db.Exec(`DELETE FROM kv_entries WHERE key = ?`, key); err != nil {
		s.logger.Warn("Failed to delete entry", "key", key, "error", err)
	}
}
