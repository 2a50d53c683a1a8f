package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio/api/internal/models"
	"portfolio/api/internal/repository"
)

// tableSpec binds one content collection to its table. The meta columns
// (id, sort_order, created_at) are handled by the store itself; Columns
// and Encode cover only the variant-specific fields.
type tableSpec[T any] struct {
	table   string
	columns []string
	encode  func(T) []any
}

// Collection is the Postgres backing of a content store. Row decoding
// relies on the db struct tags via pgx.RowToStructByName, so the one
// implementation serves all three collections.
type Collection[T any, PT repository.Item[T]] struct {
	pool *pgxpool.Pool
	spec tableSpec[T]
}

func NewProjects(pool *pgxpool.Pool) *Collection[models.Project, *models.Project] {
	return &Collection[models.Project, *models.Project]{pool: pool, spec: tableSpec[models.Project]{
		table:   "projects",
		columns: []string{"title", "description", "highlights"},
		encode: func(p models.Project) []any {
			// a nil slice would land as SQL NULL and break scanning
			highlights := p.Highlights
			if highlights == nil {
				highlights = []string{}
			}
			return []any{p.Title, p.Description, highlights}
		},
	}}
}

func NewAchievements(pool *pgxpool.Pool) *Collection[models.Achievement, *models.Achievement] {
	return &Collection[models.Achievement, *models.Achievement]{pool: pool, spec: tableSpec[models.Achievement]{
		table:   "achievements",
		columns: []string{"title", "description", "date"},
		encode: func(a models.Achievement) []any {
			return []any{a.Title, a.Description, a.Date}
		},
	}}
}

func NewSkills(pool *pgxpool.Pool) *Collection[models.Skill, *models.Skill] {
	return &Collection[models.Skill, *models.Skill]{pool: pool, spec: tableSpec[models.Skill]{
		table:   "skills",
		columns: []string{"name", "level", "category"},
		encode: func(s models.Skill) []any {
			return []any{s.Name, s.Level, s.Category}
		},
	}}
}

func (c *Collection[T, PT]) selectClause() string {
	return fmt.Sprintf(`SELECT id, sort_order, created_at, %s FROM %s`,
		strings.Join(c.spec.columns, ", "), c.spec.table)
}

func (c *Collection[T, PT]) List(ctx context.Context) ([]T, error) {
	rows, err := c.pool.Query(ctx, c.selectClause()+` ORDER BY sort_order, id`)
	if err != nil {
		return nil, err
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = make([]T, 0)
	}
	return items, nil
}

func (c *Collection[T, PT]) Get(ctx context.Context, id int64) (T, error) {
	rows, err := c.pool.Query(ctx, c.selectClause()+` WHERE id = $1`, id)
	if err != nil {
		var zero T
		return zero, err
	}
	item, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[T])
	if err != nil {
		var zero T
		if errors.Is(err, pgx.ErrNoRows) {
			return zero, repository.ErrNotFound
		}
		return zero, err
	}
	return item, nil
}

func (c *Collection[T, PT]) Create(ctx context.Context, item T) (T, error) {
	placeholders := make([]string, len(c.spec.columns))
	for i := range c.spec.columns {
		placeholders[i] = fmt.Sprintf("$%d", i+2)
	}

	query := fmt.Sprintf(
		`INSERT INTO %s (sort_order, created_at, %s) VALUES ($1, NOW(), %s) RETURNING id, created_at`,
		c.spec.table,
		strings.Join(c.spec.columns, ", "),
		strings.Join(placeholders, ", "),
	)

	meta := PT(&item).Meta()
	args := append([]any{meta.Order}, c.spec.encode(item)...)

	row := c.pool.QueryRow(ctx, query, args...)
	if err := row.Scan(&meta.ID, &meta.CreatedAt); err != nil {
		var zero T
		return zero, err
	}
	return item, nil
}

func (c *Collection[T, PT]) Update(ctx context.Context, id int64, mutate func(*T)) (T, error) {
	var zero T

	tx, err := c.pool.Begin(ctx)
	if err != nil {
		return zero, err
	}
	defer tx.Rollback(ctx)

	rows, err := tx.Query(ctx, c.selectClause()+` WHERE id = $1 FOR UPDATE`, id)
	if err != nil {
		return zero, err
	}
	item, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[T])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return zero, repository.ErrNotFound
		}
		return zero, err
	}

	kept := *PT(&item).Meta()
	mutate(&item)
	meta := PT(&item).Meta()
	meta.ID = kept.ID
	meta.CreatedAt = kept.CreatedAt

	sets := []string{"sort_order = $2"}
	for i, col := range c.spec.columns {
		sets = append(sets, fmt.Sprintf("%s = $%d", col, i+3))
	}
	query := fmt.Sprintf(`UPDATE %s SET %s WHERE id = $1`, c.spec.table, strings.Join(sets, ", "))
	args := append([]any{id, meta.Order}, c.spec.encode(item)...)

	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return zero, err
	}
	if err := tx.Commit(ctx); err != nil {
		return zero, err
	}
	return item, nil
}

func (c *Collection[T, PT]) Delete(ctx context.Context, id int64) (bool, error) {
	cmd, err := c.pool.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, c.spec.table), id)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}

var _ repository.ContentStore[models.Project] = (*Collection[models.Project, *models.Project])(nil)
