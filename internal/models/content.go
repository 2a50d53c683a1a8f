package models

import "time"

// ItemMeta is the shared shape of every content item. IDs are assigned
// from a per-collection monotonic counter and never reused; Order is
// the explicit display position (lower first, ties broken by ID).
type ItemMeta struct {
	ID        int64     `json:"id" db:"id"`
	Order     int       `json:"order" db:"sort_order"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// Meta exposes the embedded metadata to generic stores.
func (m *ItemMeta) Meta() *ItemMeta { return m }

type Project struct {
	ItemMeta
	Title       string   `json:"title" db:"title"`
	Description string   `json:"description" db:"description"`
	Highlights  []string `json:"highlights,omitempty" db:"highlights"`
}

type Achievement struct {
	ItemMeta
	Title       string `json:"title" db:"title"`
	Description string `json:"description" db:"description"`
	Date        string `json:"date" db:"date"`
}

type Skill struct {
	ItemMeta
	Name     string `json:"name" db:"name"`
	Level    int    `json:"level" db:"level"`
	Category string `json:"category" db:"category"`
}
