// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	// Create creates a new category in the database.
	Create(ctx context.Context, category *entity.Category) error

	// FindByID retrieves a category by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindByUser retrieves all categories for a user, ordered by name.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error)

	// FindByNameInsensitive retrieves a category by case-insensitive name
	// match within a user. Returns nil (no error) when absent.
	FindByNameInsensitive(ctx context.Context, userID uuid.UUID, name string) (*entity.Category, error)
}
