package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"portfolio/api/internal/models"
	"portfolio/api/internal/repository"
)

// Collection is an in-memory content store. Items are kept by value, so
// every read hands out a copy and List snapshots are immune to later
// mutations. IDs come from a monotonic counter starting at 1 and are
// never reused, even after deletion.
type Collection[T any, PT repository.Item[T]] struct {
	mu     sync.RWMutex
	items  map[int64]T
	nextID int64

	now func() time.Time
}

func NewCollection[T any, PT repository.Item[T]]() *Collection[T, PT] {
	return &Collection[T, PT]{
		items: make(map[int64]T),
		now:   time.Now,
	}
}

func (c *Collection[T, PT]) List(_ context.Context) ([]T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, 0, len(c.items))
	for _, item := range c.items {
		out = append(out, item)
	}

	// The id doubles as the creation sequence number, so ordering by
	// (order, id) breaks ties by insertion order.
	sort.Slice(out, func(i, j int) bool {
		mi, mj := PT(&out[i]).Meta(), PT(&out[j]).Meta()
		if mi.Order != mj.Order {
			return mi.Order < mj.Order
		}
		return mi.ID < mj.ID
	})
	return out, nil
}

func (c *Collection[T, PT]) Get(_ context.Context, id int64) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, ok := c.items[id]
	if !ok {
		var zero T
		return zero, repository.ErrNotFound
	}
	return item, nil
}

func (c *Collection[T, PT]) Create(_ context.Context, item T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.nextID++
	meta := PT(&item).Meta()
	meta.ID = c.nextID
	meta.CreatedAt = c.now().UTC()

	c.items[meta.ID] = item
	return item, nil
}

func (c *Collection[T, PT]) Update(_ context.Context, id int64, mutate func(*T)) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	item, ok := c.items[id]
	if !ok {
		var zero T
		return zero, repository.ErrNotFound
	}

	kept := *PT(&item).Meta()
	mutate(&item)

	meta := PT(&item).Meta()
	meta.ID = kept.ID
	meta.CreatedAt = kept.CreatedAt

	c.items[id] = item
	return item, nil
}

func (c *Collection[T, PT]) Delete(_ context.Context, id int64) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, ok := c.items[id]
	delete(c.items, id)
	return ok, nil
}

var _ repository.ContentStore[models.Project] = (*Collection[models.Project, *models.Project])(nil)
