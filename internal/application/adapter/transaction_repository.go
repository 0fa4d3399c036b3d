// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Create creates a new transaction in the database.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindRecentByUser retrieves the most recent transactions for a user,
	// joined with category names, newest first.
	FindRecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.TransactionWithCategory, error)

	// FindByUserAndRange retrieves transactions with created_at in
	// [start, end), joined with category names, newest first.
	FindByUserAndRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.TransactionWithCategory, error)

	// Delete removes a transaction, scoped to the owning user.
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
