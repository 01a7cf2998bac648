// Package storage provides small expiring key-value stores for client
// state. Backends persist to different media and may be chained with
// Composite for redundancy.
package storage

import "time"

// Storage is a small expiring string store.
//
// GetItem returns def when the key is absent or its entry expired.
// PutItem with ttl == 0 stores the value without expiration; a negative
// ttl stores an already expired entry (effectively a delayed delete).
// All operations are best effort: backends log I/O failures instead of
// returning them, the value is simply treated as absent.
type Storage interface {
	GetItem(key string, def string) string
	PutItem(key string, value string, ttl time.Duration)
	DeleteItem(key string)
}
