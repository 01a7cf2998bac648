package storage

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/nkiryanov/cookbook/internal/logger"
)

// fileEntry is the on-disk record. Expiration is epoch millis, absent
// means the value never expires.
type fileEntry struct {
	Value      string `json:"value"`
	Expiration *int64 `json:"expiration,omitempty"`
}

// File is a Storage backed by a single JSON file of key -> entry
// records. Expired entries are treated as absent and purged on read.
// Writes rewrite the whole file atomically (tmp + rename).
type File struct {
	mu     sync.Mutex
	path   string
	logger logger.Logger

	now func() time.Time
}

func NewFile(path string, l logger.Logger) *File {
	return &File{
		path:   path,
		logger: l,
		now:    time.Now,
	}
}

func (f *File) GetItem(key string, def string) string {
	f.mu.Lock()
	defer f.mu.Unlock()

	entries := f.load()
	entry, ok := entries[key]
	if !ok {
		return def
	}
	if entry.Expiration != nil && *entry.Expiration <= f.now().UnixMilli() {
		delete(entries, key)
		f.save(entries)
		return def
	}
	if entry.Value == "" {
		return def
	}
	return entry.Value
}

func (f *File) PutItem(key string, value string, ttl time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()

	entry := fileEntry{Value: value}
	if ttl != 0 {
		expiration := f.now().Add(ttl).UnixMilli()
		entry.Expiration = &expiration
	}

	entries := f.load()
	entries[key] = entry
	f.save(entries)
}

func (f *File) DeleteItem(key string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	entries := f.load()
	if _, ok := entries[key]; !ok {
		return
	}
	delete(entries, key)
	f.save(entries)
}

func (f *File) load() map[string]fileEntry {
	entries := make(map[string]fileEntry)

	b, err := os.ReadFile(f.path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return entries
	case err != nil:
		f.logger.Warn("Failed to read storage file", "path", f.path, "error", err)
		return entries
	}

	if err := json.Unmarshal(b, &entries); err != nil {
		// Mangled file, start over. A composite sibling may still hold the value.
		f.logger.Warn("Failed to decode storage file", "path", f.path, "error", err)
		return make(map[string]fileEntry)
	}
	return entries
}

func (f *File) save(entries map[string]fileEntry) {
	b, err := json.Marshal(entries)
	if err != nil {
		f.logger.Warn("Failed to encode storage file", "path", f.path, "error", err)
		return
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		f.logger.Warn("Failed to create storage dir", "path", f.path, "error", err)
		return
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		f.logger.Warn("Failed to write storage file", "path", tmp, "error", err)
		return
	}
	if err := os.Rename(tmp, f.path); err != nil {
		f.logger.Warn("Failed to replace storage file", "path", f.path, "error", err)
	}
}
