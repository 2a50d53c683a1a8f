package memory

import (
	"context"
	"sync"
	"time"

	"portfolio/api/internal/models"
	"portfolio/api/internal/repository"
)

type UserStore struct {
	mu     sync.RWMutex
	byID   map[int64]models.User
	byName map[string]int64
	nextID int64
}

func NewUserStore() *UserStore {
	return &UserStore{
		byID:   make(map[int64]models.User),
		byName: make(map[string]int64),
	}
}

func (s *UserStore) Create(_ context.Context, username, passwordHash string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byName[username]; exists {
		return models.User{}, repository.ErrDuplicateUsername
	}

	s.nextID++
	user := models.User{
		ID:           s.nextID,
		Username:     username,
		PasswordHash: passwordHash,
		IsAdmin:      false,
		CreatedAt:    time.Now().UTC(),
	}
	s.byID[user.ID] = user
	s.byName[username] = user.ID
	return user, nil
}

func (s *UserStore) GetByID(_ context.Context, id int64) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.byID[id]
	if !ok {
		return models.User{}, repository.ErrNotFound
	}
	return user, nil
}

func (s *UserStore) GetByUsername(_ context.Context, username string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byName[username]
	if !ok {
		return models.User{}, repository.ErrNotFound
	}
	return s.byID[id], nil
}

func (s *UserStore) Promote(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.byID[id]
	if !ok {
		return repository.ErrNotFound
	}
	user.IsAdmin = true
	s.byID[id] = user
	return nil
}

var _ repository.UserStore = (*UserStore)(nil)
