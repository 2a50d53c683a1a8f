package session

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound covers unknown and revoked tokens alike; revocation
	// removes the record, so the two states are indistinguishable.
	ErrNotFound = errors.New("session not found")
	ErrExpired  = errors.New("session expired")
)

// Session binds an opaque token to a user identity. A session is valid
// while the time since LastSeenAt stays under the store's idle timeout.
type Session struct {
	ID         string    `json:"id"`
	Token      string    `json:"token"`
	UserID     int64     `json:"userId"`
	CreatedAt  time.Time `json:"createdAt"`
	LastSeenAt time.Time `json:"lastSeenAt"`
}

// Store is the session capability. Implementations hold all state
// server-side so tokens can be revoked; a shared backing (Redis) can be
// substituted without touching the authorization path.
type Store interface {
	Create(ctx context.Context, userID int64) (Session, error)
	// Validate returns the session for a live token and refreshes its
	// LastSeenAt. Idle-expired sessions are rejected (and may be
	// dropped) on this path; no background sweep is required for
	// correctness.
	Validate(ctx context.Context, token string) (Session, error)
	// Revoke is idempotent; revoking an unknown token is not an error.
	Revoke(ctx context.Context, token string) error
	// SweepExpired reclaims idle-expired sessions and reports how many
	// were removed.
	SweepExpired(ctx context.Context) (int, error)
}
