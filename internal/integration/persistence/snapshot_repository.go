package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/persistence/model"
)

// snapshotRepository implements the adapter.SnapshotRepository interface.
type snapshotRepository struct {
	db *gorm.DB
}

// NewSnapshotRepository creates a new snapshot repository instance.
func NewSnapshotRepository(db *gorm.DB) adapter.SnapshotRepository {
	return &snapshotRepository{
		db: db,
	}
}

// ExistsForMonth reports whether any snapshot rows exist for
// (userID, year, month). Both item types are written together, so the
// check is not narrowed by type.
func (r *snapshotRepository) ExistsForMonth(ctx context.Context, userID uuid.UUID, year, month int) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.SnapshotEntryModel{}).
		Where("user_id = ? AND year = ? AND month = ?", userID, year, month).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// CreateForMonth inserts all entries in a single transaction. The
// existence check is repeated inside the transaction so a racing caller
// that lost gets domainerror.ErrSnapshotAlreadyExists instead of
// double-writing the month.
func (r *snapshotRepository) CreateForMonth(ctx context.Context, userID uuid.UUID, year, month int, entries []*entity.SnapshotEntry) error {
	if len(entries) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.SnapshotEntryModel{}).
			Where("user_id = ? AND year = ? AND month = ?", userID, year, month).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return domainerror.ErrSnapshotAlreadyExists
		}

		models := make([]*model.SnapshotEntryModel, len(entries))
		for i, entry := range entries {
			models[i] = model.SnapshotEntryFromEntity(entry)
		}
		return tx.Create(models).Error
	})
}

// FindEntriesForMonth retrieves the flat entry rows of one type for a
// past month, joined with category names.
func (r *snapshotRepository) FindEntriesForMonth(ctx context.Context, userID uuid.UUID, year, month int, itemType entity.FixedItemType) ([]adapter.FixedEntry, error) {
	var entries []adapter.FixedEntry
	result := r.db.WithContext(ctx).
		Model(&model.SnapshotEntryModel{}).
		Select("monthly_fixed_snapshots.name, monthly_fixed_snapshots.amount, categories.name AS category_name").
		Joins("INNER JOIN categories ON categories.id = monthly_fixed_snapshots.category_id").
		Where("monthly_fixed_snapshots.user_id = ? AND monthly_fixed_snapshots.year = ? AND monthly_fixed_snapshots.month = ? AND monthly_fixed_snapshots.type = ?",
			userID, year, month, string(itemType)).
		Order("monthly_fixed_snapshots.name ASC").
		Scan(&entries)
	if result.Error != nil {
		return nil, result.Error
	}
	return entries, nil
}
