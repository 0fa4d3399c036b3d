// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// SnapshotRepository defines the interface for monthly fixed-item
// snapshot persistence. Snapshot rows are written once per past month
// and never updated or deleted.
type SnapshotRepository interface {
	// ExistsForMonth reports whether any snapshot rows exist for
	// (userID, year, month). The check is deliberately not narrowed by
	// type: both types are written together, so the triple is the
	// idempotency key.
	ExistsForMonth(ctx context.Context, userID uuid.UUID, year, month int) (bool, error)

	// CreateForMonth inserts all entries in a single transaction. The
	// existence check is repeated inside the transaction so two racing
	// callers cannot both insert; the loser gets
	// domainerror.ErrSnapshotAlreadyExists. Inserting an empty slice is
	// a no-op.
	CreateForMonth(ctx context.Context, userID uuid.UUID, year, month int, entries []*entity.SnapshotEntry) error

	// FindEntriesForMonth retrieves the flat entry rows of one type for
	// a past month, joined with category names.
	FindEntriesForMonth(ctx context.Context, userID uuid.UUID, year, month int, itemType entity.FixedItemType) ([]FixedEntry, error)
}
