// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FixedItemType selects one of the two recurring template collections.
type FixedItemType string

const (
	FixedItemTypeExpense FixedItemType = "expense"
	FixedItemTypeIncome  FixedItemType = "income"
)

// FixedItem is one line of the live recurring template: "the plan, as of
// now". It carries no month of its own; the current calendar month is
// always read straight from the template, past months from snapshots.
type FixedItem struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Name       string
	Amount     decimal.Decimal
	Type       FixedItemType
	CategoryID uuid.UUID
	CreatedAt  time.Time
}

// NewFixedItem creates a new FixedItem entity.
func NewFixedItem(userID uuid.UUID, name string, amount decimal.Decimal, itemType FixedItemType, categoryID uuid.UUID) *FixedItem {
	return &FixedItem{
		ID:         uuid.New(),
		UserID:     userID,
		Name:       name,
		Amount:     amount,
		Type:       itemType,
		CategoryID: categoryID,
		CreatedAt:  time.Now().UTC(),
	}
}

// FixedItemWithCategory represents a template line joined with its
// category name for listing.
type FixedItemWithCategory struct {
	Item         *FixedItem
	CategoryName string
}
