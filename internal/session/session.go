// Package session manages the two client tokens (session identity and
// API access) on top of a storage backend. Both tokens share one
// expiration: once the window passes the user is considered logged out.
package session

import (
	"time"

	"github.com/nkiryanov/cookbook/internal/storage"
)

// Storage keys for the two tokens
const (
	sessionKey = "cookbook_ses"
	accessKey  = "cookbook_acc"
)

type Store struct {
	storage storage.Storage
}

func NewStore(s storage.Storage) *Store {
	return &Store{storage: s}
}

// AccessToken returns the stored API access token, empty when absent
// or expired.
func (s *Store) AccessToken() string {
	return s.storage.GetItem(accessKey, "")
}

// SessionToken returns the stored session identity token, empty when
// absent or expired.
func (s *Store) SessionToken() string {
	return s.storage.GetItem(sessionKey, "")
}

// Update persists both tokens with the shared expiration from the
// client token.
func (s *Store) Update(token ClientToken) {
	ttl := time.Duration(token.ExpiresIn) * time.Second
	s.storage.PutItem(sessionKey, token.SessionToken, ttl)
	s.storage.PutItem(accessKey, token.AccessToken, ttl)
}

// Clear deletes both tokens. Safe to call when already logged out.
func (s *Store) Clear() {
	s.storage.DeleteItem(sessionKey)
	s.storage.DeleteItem(accessKey)
}
