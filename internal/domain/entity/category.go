// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category represents a per-user category name registry entry.
// Name uniqueness is enforced by the find-or-create use case with a
// case-insensitive lookup, not by a database constraint.
type Category struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	CreatedAt time.Time
}

// NewCategory creates a new Category entity.
func NewCategory(userID uuid.UUID, name string) *Category {
	return &Category{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
}
