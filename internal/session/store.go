// Package session implements server-side login sessions. A browser holds
// only an opaque token delivered via cookie; everything else lives in a
// Store with a time-based eviction policy.
package session

import (
	"context"
	"time"
)

// Session associates an opaque token with an authenticated user.
type Session struct {
	Token     string    `json:"token"`
	UserID    uint      `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	LastSeen  time.Time `json:"last_seen"`
}

// Store persists active sessions keyed by token. Implementations purge
// sessions unused beyond the configured TTL; expiry is passive, so a
// client presenting an expired token simply resolves to nothing.
type Store interface {
	// Save persists the session and starts its TTL clock.
	Save(ctx context.Context, s *Session) error
	// Get returns the session for token, refreshing its TTL, or (nil, nil)
	// when the token is unknown or expired.
	Get(ctx context.Context, token string) (*Session, error)
	// Delete removes the session. Deleting an absent token is not an error.
	Delete(ctx context.Context, token string) error
	// Close releases store resources.
	Close() error
}
