// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// UserRepository defines the interface for user persistence operations.
type UserRepository interface {
	// Create creates a new user in the database.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a user by email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// ExistsByEmail checks if a user with the given email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// UpdatePassword replaces the stored password hash for a user.
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}
