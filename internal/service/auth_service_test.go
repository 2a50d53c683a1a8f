package service

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/api/internal/repository"
	"portfolio/api/internal/repository/memory"
	"portfolio/api/internal/session"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	users := memory.NewUserStore()
	sessions := session.NewMemoryStore(30 * time.Minute)
	return NewAuthService(users, sessions, zerolog.New(io.Discard))
}

func TestLoginAfterRegister(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(t)

	registered, err := svc.Register(ctx, "alice", "s3cret-enough")
	require.NoError(t, err)
	assert.False(t, registered.IsAdmin)

	sess, user, err := svc.Login(ctx, "alice", "s3cret-enough")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
	assert.Equal(t, registered.ID, sess.UserID)

	// the session binds back to the user that logged in
	got, err := svc.sessions.Validate(ctx, sess.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, got.UserID)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(t)

	_, err := svc.Register(ctx, "alice", "s3cret-enough")
	require.NoError(t, err)

	_, _, wrongPassword := svc.Login(ctx, "alice", "nope")
	_, _, unknownUser := svc.Login(ctx, "bob", "nope")

	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownUser, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword, unknownUser)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(t)

	_, err := svc.Register(ctx, "alice", "s3cret-enough")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "alice", "another-one")
	assert.ErrorIs(t, err, repository.ErrDuplicateUsername)
}

func TestRegisterRejectsEmptyInput(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(t)

	_, err := svc.Register(ctx, "  ", "password")
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = svc.Register(ctx, "alice", "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestLogoutRevokesAndStaysIdempotent(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(t)

	_, err := svc.Register(ctx, "alice", "s3cret-enough")
	require.NoError(t, err)
	sess, _, err := svc.Login(ctx, "alice", "s3cret-enough")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, sess.Token))

	_, err = svc.sessions.Validate(ctx, sess.Token)
	assert.ErrorIs(t, err, session.ErrNotFound)

	require.NoError(t, svc.Logout(ctx, sess.Token))
	require.NoError(t, svc.Logout(ctx, ""))
}
