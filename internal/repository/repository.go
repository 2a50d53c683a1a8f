package repository

import (
	"context"

	"portfolio/api/internal/models"
)

// Item constrains a content pointer type to one that carries the shared
// metadata, so generic stores can assign ids and timestamps.
type Item[T any] interface {
	*T
	Meta() *models.ItemMeta
}

// ContentStore is the contract shared by the three content collections.
// List returns a snapshot sorted ascending by (order, id); mutations
// after the call do not alter an already-returned slice.
type ContentStore[T any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id int64) (T, error)
	Create(ctx context.Context, item T) (T, error)
	// Update applies mutate to the stored item atomically. The item's
	// id and creation time survive the mutation unchanged.
	Update(ctx context.Context, id int64, mutate func(*T)) (T, error)
	// Delete reports whether an item was removed. A missing id is not
	// an error.
	Delete(ctx context.Context, id int64) (bool, error)
}

// UserStore holds credentials. Usernames are unique and matched
// case-sensitively; IsAdmin is always false at creation and is only
// raised through Promote, which no HTTP route reaches.
type UserStore interface {
	Create(ctx context.Context, username, passwordHash string) (models.User, error)
	GetByID(ctx context.Context, id int64) (models.User, error)
	GetByUsername(ctx context.Context, username string) (models.User, error)
	Promote(ctx context.Context, id int64) error
}
