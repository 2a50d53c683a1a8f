package session

import (
	"context"
	"sync"
	"time"

	"portfolio/api/internal/ids"
	"portfolio/api/internal/security"
)

// MemoryStore keeps sessions in a mutex-guarded map. Nothing survives a
// process restart, which is the intended lifecycle for the default
// deployment.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]Session
	idleTTL  time.Duration

	now func() time.Time
}

func NewMemoryStore(idleTTL time.Duration) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]Session),
		idleTTL:  idleTTL,
		now:      time.Now,
	}
}

func (s *MemoryStore) Create(_ context.Context, userID int64) (Session, error) {
	token, err := security.NewSessionToken()
	if err != nil {
		return Session{}, err
	}

	now := s.now().UTC()
	sess := Session{
		ID:         ids.New(),
		Token:      token,
		UserID:     userID,
		CreatedAt:  now,
		LastSeenAt: now,
	}

	s.mu.Lock()
	s.sessions[token] = sess
	s.mu.Unlock()

	return sess, nil
}

func (s *MemoryStore) Validate(_ context.Context, token string) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[token]
	if !ok {
		return Session{}, ErrNotFound
	}

	now := s.now().UTC()
	if now.Sub(sess.LastSeenAt) >= s.idleTTL {
		delete(s.sessions, token)
		return Session{}, ErrExpired
	}

	sess.LastSeenAt = now
	s.sessions[token] = sess
	return sess, nil
}

func (s *MemoryStore) Revoke(_ context.Context, token string) error {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) SweepExpired(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().UTC()
	removed := 0
	for token, sess := range s.sessions {
		if now.Sub(sess.LastSeenAt) >= s.idleTTL {
			delete(s.sessions, token)
			removed++
		}
	}
	return removed, nil
}

var _ Store = (*MemoryStore)(nil)
