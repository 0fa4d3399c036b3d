// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// FixedEntry is the flat row shape shared by template and snapshot
// reads: one named amount under a category. Both the current-month
// (live template) and past-month (snapshot) branches of the manager
// produce it, so the grouping helper works on either source.
type FixedEntry struct {
	Name         string
	Amount       decimal.Decimal
	CategoryName string
}

// FixedItemRepository defines the interface for recurring template
// persistence. The template lives in two parallel tables, one per item
// type; every operation takes the type to select the table.
type FixedItemRepository interface {
	// Create creates a new template line in the table for item.Type.
	Create(ctx context.Context, item *entity.FixedItem) error

	// Delete removes a template line, scoped to the owning user.
	Delete(ctx context.Context, itemType entity.FixedItemType, id, userID uuid.UUID) error

	// FindByUser retrieves all template lines of a type for a user,
	// ordered by name.
	FindByUser(ctx context.Context, itemType entity.FixedItemType, userID uuid.UUID) ([]*entity.FixedItem, error)

	// FindByUserWithCategory retrieves template lines joined with
	// category names, ordered by name.
	FindByUserWithCategory(ctx context.Context, itemType entity.FixedItemType, userID uuid.UUID) ([]*entity.FixedItemWithCategory, error)

	// FindEntriesByUser retrieves the flat entry rows for the live
	// template of a type (the current-month read path).
	FindEntriesByUser(ctx context.Context, itemType entity.FixedItemType, userID uuid.UUID) ([]FixedEntry, error)
}
