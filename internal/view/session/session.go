// Package session gates the admin views behind the token issued at login.
// The session context is an explicit value object with a restore/clear
// lifecycle instead of ambient global state.
package session

import (
	"context"
	"sync"
)

const (
	authFlagKey = "adminAuth"
	tokenKey    = "adminToken"
)

// Storage is session-scoped key/value storage; entries vanish when the
// browser tab or session ends.
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Remove(key string)
}

// Authenticator exchanges the shared secret for an opaque token.
type Authenticator interface {
	Login(ctx context.Context, secret string) (string, error)
}

type Guard struct {
	store Storage
	auth  Authenticator

	authenticated bool
	token         string
}

func NewGuard(auth Authenticator, store Storage) *Guard {
	return &Guard{
		store: store,
		auth:  auth,
	}
}

// Authenticate submits the secret and, on success, caches the auth flag and
// token. On failure nothing is cached and the guard stays locked.
func (g *Guard) Authenticate(ctx context.Context, secret string) error {
	token, err := g.auth.Login(ctx, secret)
	if err != nil {
		return err
	}

	g.store.Set(authFlagKey, "true")
	g.store.Set(tokenKey, token)
	g.authenticated = true
	g.token = token

	return nil
}

// Restore unlocks the guard from a previously cached flag, skipping
// re-authentication. The cached token is NOT re-validated against the
// server, so a stale or revoked token still counts as signed in — a known
// weakness of the current design, kept for parity.
func (g *Guard) Restore() bool {
	flag, ok := g.store.Get(authFlagKey)
	if !ok || flag != "true" {
		return false
	}

	token, _ := g.store.Get(tokenKey)
	g.authenticated = true
	g.token = token

	return true
}

// Logout clears the cached values and returns to the locked view.
func (g *Guard) Logout() {
	g.store.Remove(authFlagKey)
	g.store.Remove(tokenKey)
	g.authenticated = false
	g.token = ""
}

func (g *Guard) Authenticated() bool {
	return g.authenticated
}

// Token returns the cached bearer token for admin API calls.
func (g *Guard) Token() string {
	return g.token
}

// MemoryStorage is an in-process Storage, used by tests and anywhere no
// browser storage exists.
type MemoryStorage struct {
	mu     sync.Mutex
	values map[string]string
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		values: make(map[string]string),
	}
}

func (s *MemoryStorage) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	value, ok := s.values[key]
	return value, ok
}

func (s *MemoryStorage) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

func (s *MemoryStorage) Remove(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
}
