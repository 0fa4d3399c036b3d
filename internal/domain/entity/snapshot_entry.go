// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SnapshotEntry is a frozen copy of one template line for one past
// calendar month. Entries are written once, when the month boundary is
// crossed, and never updated or deleted afterwards.
//
// Month is 0-based (0 = January .. 11 = December) throughout the system.
type SnapshotEntry struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Year       int
	Month      int
	Type       FixedItemType
	Name       string
	Amount     decimal.Decimal
	CategoryID uuid.UUID
	CreatedAt  time.Time
}

// SnapshotEntryFromFixedItem copies a live template line into a snapshot
// entry tagged with the requested month.
func SnapshotEntryFromFixedItem(item *FixedItem, year, month int) *SnapshotEntry {
	return &SnapshotEntry{
		ID:         uuid.New(),
		UserID:     item.UserID,
		Year:       year,
		Month:      month,
		Type:       item.Type,
		Name:       item.Name,
		Amount:     item.Amount,
		CategoryID: item.CategoryID,
		CreatedAt:  time.Now().UTC(),
	}
}
