package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"inkwell/internal/auth"
	"inkwell/internal/models"
	"inkwell/internal/repository"

	"github.com/google/uuid"
)

// ErrInvalidCredentials is the only failure Login reports for a bad
// username or a bad password. Collapsing the two prevents username
// enumeration through response differences.
var ErrInvalidCredentials = errors.New("session: invalid credentials")

// Manager owns the session lifecycle: credential checks on login, token
// resolution on every request, and destruction on logout.
type Manager struct {
	users repository.UserRepository
	store Store
}

// NewManager creates a session manager backed by the given store.
func NewManager(users repository.UserRepository, store Store) *Manager {
	return &Manager{users: users, store: store}
}

// Login verifies the credentials and, on success, creates an active
// session with a fresh opaque token.
func (m *Manager) Login(ctx context.Context, username, password string) (*models.User, *Session, error) {
	user, err := m.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, nil, fmt.Errorf("session: lookup user: %w", err)
	}
	if user == nil {
		return nil, nil, ErrInvalidCredentials
	}

	ok, err := auth.VerifyPassword(password, user.Password)
	if err != nil {
		// Includes auth.ErrMalformedHash: corrupted credential storage is a
		// server-side fault, not a failed login.
		return nil, nil, fmt.Errorf("session: verify password: %w", err)
	}
	if !ok {
		return nil, nil, ErrInvalidCredentials
	}

	now := time.Now().UTC()
	sess := &Session{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		CreatedAt: now,
		LastSeen:  now,
	}
	if err := m.store.Save(ctx, sess); err != nil {
		return nil, nil, fmt.Errorf("session: save: %w", err)
	}
	return user, sess, nil
}

// Resolve returns the user owning an active, unexpired session, or
// (nil, nil) when the token resolves to nothing.
func (m *Manager) Resolve(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, nil
	}
	sess, err := m.store.Get(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("session: get: %w", err)
	}
	if sess == nil {
		return nil, nil
	}

	user, err := m.users.GetByID(ctx, sess.UserID)
	if err != nil {
		return nil, fmt.Errorf("session: lookup user: %w", err)
	}
	if user == nil {
		// Session outlived its user; drop it.
		_ = m.store.Delete(ctx, token)
		return nil, nil
	}
	return user, nil
}

// Destroy removes the session for token. Destroying an already-absent
// session is not an error.
func (m *Manager) Destroy(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return m.store.Delete(ctx, token)
}

// Close releases the underlying store.
func (m *Manager) Close() error {
	return m.store.Close()
}
