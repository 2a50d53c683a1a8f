package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"portfolio/api/internal/models"
	"portfolio/api/internal/repository"
	"portfolio/api/internal/security"
	"portfolio/api/internal/session"
)

// ErrInvalidCredentials is the single answer to every failed login.
// Unknown usernames and wrong passwords are indistinguishable to the
// caller.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrInvalidInput marks registration input rejected by the service
// after binding, such as a whitespace-only username.
var ErrInvalidInput = errors.New("invalid input")

// dummyHash keeps the unknown-username path doing the same argon2 work
// as a real verification, so the two failures also look alike in time.
var dummyHash = mustHash("portfolio-dummy-credential")

func mustHash(password string) string {
	hash, err := security.HashPassword(password)
	if err != nil {
		panic(err)
	}
	return hash
}

type AuthService struct {
	users    repository.UserStore
	sessions session.Store
	log      zerolog.Logger
}

func NewAuthService(users repository.UserStore, sessions session.Store, log zerolog.Logger) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,
		log:      log,
	}
}

// Register creates a user with the admin flag off. Usernames match
// case-sensitively, so "Admin" and "admin" are distinct accounts.
func (s *AuthService) Register(ctx context.Context, username, password string) (models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return models.User{}, ErrInvalidInput
	}

	hash, err := security.HashPassword(password)
	if err != nil {
		return models.User{}, err
	}

	return s.users.Create(ctx, username, hash)
}

func (s *AuthService) Login(ctx context.Context, username, password string) (session.Session, models.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			_, _ = security.VerifyPassword(password, dummyHash)
			return session.Session{}, models.User{}, ErrInvalidCredentials
		}
		return session.Session{}, models.User{}, err
	}

	ok, err := security.VerifyPassword(password, user.PasswordHash)
	if err != nil || !ok {
		return session.Session{}, models.User{}, ErrInvalidCredentials
	}

	sess, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		return session.Session{}, models.User{}, err
	}

	s.log.Debug().Int64("user_id", user.ID).Msg("login")
	return sess, user, nil
}

// Logout revokes the session. Unknown or already-revoked tokens are
// not an error.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.Revoke(ctx, token)
}
