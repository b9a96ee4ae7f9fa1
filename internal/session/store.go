// Package session owns the single current logged-in identity. The store is
// the one source of truth for "is a user logged in": every change is
// persisted synchronously, and Restore rebuilds the session after a restart.
package session

import (
	"context"
	"strings"
	"sync"

	"github.com/skybook/skybook/internal/models"
)

// SessionKey is the well-known key the serialized session lives under.
// Absence of the key means no active session.
const SessionKey = "currentUser"

// Store holds at most one current user.
//
// Restore returns (nil, nil) when no session is persisted or the persisted
// data cannot be parsed; a corrupt entry must never crash the caller.
// Set replaces the current session and persists the change before
// returning; a nil session clears the stored entry.
// Login mints a session from validated credentials. There is no uniqueness
// check and no password verification, intentionally: identity here is a
// mock, not an authentication scheme.
type Store interface {
	Restore(ctx context.Context) (*models.UserSession, error)
	Set(ctx context.Context, s *models.UserSession) error
	Login(ctx context.Context, name, email string) (*models.UserSession, error)
	Logout(ctx context.Context) error
	Close() error
}

// MemoryStore keeps the session in process memory. It is used when redis is
// disabled and by tests; it has the same semantics as RedisStore minus
// durability across restarts.
type MemoryStore struct {
	mu       sync.Mutex
	current  *models.UserSession
	accounts int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Restore(ctx context.Context) (*models.UserSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return nil, nil
	}
	s := *m.current
	return &s, nil
}

func (m *MemoryStore) Set(ctx context.Context, s *models.UserSession) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s == nil {
		m.current = nil
		return nil
	}
	copied := *s
	m.current = &copied
	return nil
}

func (m *MemoryStore) Login(ctx context.Context, name, email string) (*models.UserSession, error) {
	m.mu.Lock()
	m.accounts++
	id := m.accounts
	m.mu.Unlock()

	s := &models.UserSession{
		ID:    id,
		Name:  displayName(name),
		Email: email,
	}
	if err := m.Set(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (m *MemoryStore) Logout(ctx context.Context) error {
	return m.Set(ctx, nil)
}

func (m *MemoryStore) Close() error {
	return nil
}

func displayName(name string) string {
	if strings.TrimSpace(name) == "" {
		return "User"
	}
	return name
}
