package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"portfolio/api/internal/ids"
	"portfolio/api/internal/security"
)

const redisKeyPrefix = "session:"

// RedisStore is the shared session backing. The key TTL is the idle
// timeout and is re-armed on every successful validation, so expiry is
// enforced by Redis itself and SweepExpired has nothing to do.
type RedisStore struct {
	client  *redis.Client
	idleTTL time.Duration
}

func NewRedisStore(client *redis.Client, idleTTL time.Duration) *RedisStore {
	return &RedisStore{client: client, idleTTL: idleTTL}
}

func (s *RedisStore) Create(ctx context.Context, userID int64) (Session, error) {
	token, err := security.NewSessionToken()
	if err != nil {
		return Session{}, err
	}

	now := time.Now().UTC()
	sess := Session{
		ID:         ids.New(),
		Token:      token,
		UserID:     userID,
		CreatedAt:  now,
		LastSeenAt: now,
	}

	if err := s.write(ctx, sess); err != nil {
		return Session{}, err
	}
	return sess, nil
}

func (s *RedisStore) Validate(ctx context.Context, token string) (Session, error) {
	raw, err := s.client.Get(ctx, redisKeyPrefix+token).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Session{}, ErrNotFound
		}
		return Session{}, fmt.Errorf("session get: %w", err)
	}

	var sess Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return Session{}, fmt.Errorf("session decode: %w", err)
	}

	sess.LastSeenAt = time.Now().UTC()
	if err := s.write(ctx, sess); err != nil {
		return Session{}, err
	}
	return sess, nil
}

func (s *RedisStore) Revoke(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, redisKeyPrefix+token).Err(); err != nil {
		return fmt.Errorf("session del: %w", err)
	}
	return nil
}

func (s *RedisStore) SweepExpired(_ context.Context) (int, error) {
	return 0, nil
}

func (s *RedisStore) write(ctx context.Context, sess Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("session encode: %w", err)
	}
	if err := s.client.Set(ctx, redisKeyPrefix+sess.Token, raw, s.idleTTL).Err(); err != nil {
		return fmt.Errorf("session set: %w", err)
	}
	return nil
}

var _ Store = (*RedisStore)(nil)
