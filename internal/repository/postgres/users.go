package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio/api/internal/models"
	"portfolio/api/internal/repository"
)

const uniqueViolation = "23505"

type UserStore struct {
	pool *pgxpool.Pool
}

func NewUserStore(pool *pgxpool.Pool) *UserStore {
	return &UserStore{pool: pool}
}

func (s *UserStore) Create(ctx context.Context, username, passwordHash string) (models.User, error) {
	const query = `
		INSERT INTO users (username, password_hash, is_admin, created_at)
		VALUES ($1, $2, FALSE, NOW())
		RETURNING id, created_at
	`

	user := models.User{
		Username:     username,
		PasswordHash: passwordHash,
	}
	row := s.pool.QueryRow(ctx, query, username, passwordHash)
	if err := row.Scan(&user.ID, &user.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return models.User{}, repository.ErrDuplicateUsername
		}
		return models.User{}, err
	}
	return user, nil
}

func (s *UserStore) GetByID(ctx context.Context, id int64) (models.User, error) {
	const query = `
		SELECT id, username, password_hash, is_admin, created_at
		FROM users WHERE id = $1
	`
	return s.scanUser(s.pool.QueryRow(ctx, query, id))
}

func (s *UserStore) GetByUsername(ctx context.Context, username string) (models.User, error) {
	const query = `
		SELECT id, username, password_hash, is_admin, created_at
		FROM users WHERE username = $1
	`
	return s.scanUser(s.pool.QueryRow(ctx, query, username))
}

func (s *UserStore) Promote(ctx context.Context, id int64) error {
	const query = `UPDATE users SET is_admin = TRUE WHERE id = $1`
	cmd, err := s.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (s *UserStore) scanUser(row pgx.Row) (models.User, error) {
	var user models.User
	if err := row.Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.IsAdmin,
		&user.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.User{}, repository.ErrNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

var _ repository.UserStore = (*UserStore)(nil)
