package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/api/internal/repository"
)

func TestCreateUserRejectsDuplicateUsername(t *testing.T) {
	ctx := context.Background()
	s := NewUserStore()

	user, err := s.Create(ctx, "alice", "hash1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.False(t, user.IsAdmin)

	_, err = s.Create(ctx, "alice", "hash2")
	assert.ErrorIs(t, err, repository.ErrDuplicateUsername)
}

func TestUsernameLookupIsCaseSensitive(t *testing.T) {
	ctx := context.Background()
	s := NewUserStore()

	_, err := s.Create(ctx, "alice", "hash")
	require.NoError(t, err)

	_, err = s.GetByUsername(ctx, "Alice")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	got, err := s.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)
}

func TestPromoteSetsAdminFlag(t *testing.T) {
	ctx := context.Background()
	s := NewUserStore()

	user, err := s.Create(ctx, "alice", "hash")
	require.NoError(t, err)

	require.NoError(t, s.Promote(ctx, user.ID))

	got, err := s.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, got.IsAdmin)

	assert.ErrorIs(t, s.Promote(ctx, 999), repository.ErrNotFound)
}
