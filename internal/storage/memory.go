package storage

import (
	"sync"
	"time"
)

type memoryEntry struct {
	value      string
	expiration time.Time // zero means no expiration
}

// Memory is a map backed Storage. Used in tests and as an extra chain
// member, values do not survive the process.
type Memory struct {
	mu      sync.Mutex
	entries map[string]memoryEntry

	now func() time.Time
}

func NewMemory() *Memory {
	return &Memory{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (m *Memory) GetItem(key string, def string) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.entries[key]
	if !ok {
		return def
	}
	if !entry.expiration.IsZero() && !entry.expiration.After(m.now()) {
		delete(m.entries, key)
		return def
	}
	if entry.value == "" {
		return def
	}
	return entry.value
}

func (m *Memory) PutItem(key string, value string, ttl time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry := memoryEntry{value: value}
	if ttl != 0 {
		entry.expiration = m.now().Add(ttl)
	}
	m.entries[key] = entry
}

func (m *Memory) DeleteItem(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.entries, key)
}
