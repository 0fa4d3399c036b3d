package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// SnapshotEntryModel represents the monthly_fixed_snapshots table.
// The composite unique index is the durable guard against a month being
// frozen twice; the application-level lock and transactional re-check
// only make the common path cheap.
type SnapshotEntryModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID       `gorm:"type:uuid;not null;index;uniqueIndex:idx_snapshot_month_line"`
	Year       int             `gorm:"not null;uniqueIndex:idx_snapshot_month_line"`
	Month      int             `gorm:"not null;uniqueIndex:idx_snapshot_month_line"`
	Type       string          `gorm:"type:varchar(10);not null;uniqueIndex:idx_snapshot_month_line"`
	Name       string          `gorm:"type:varchar(255);not null;uniqueIndex:idx_snapshot_month_line"`
	Amount     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CategoryID uuid.UUID       `gorm:"type:uuid;not null;index"`
	CreatedAt  time.Time       `gorm:"not null"`
}

// TableName returns the table name for the SnapshotEntryModel.
func (SnapshotEntryModel) TableName() string {
	return "monthly_fixed_snapshots"
}

// ToEntity converts a SnapshotEntryModel to a domain SnapshotEntry entity.
func (m *SnapshotEntryModel) ToEntity() *entity.SnapshotEntry {
	return &entity.SnapshotEntry{
		ID:         m.ID,
		UserID:     m.UserID,
		Year:       m.Year,
		Month:      m.Month,
		Type:       entity.FixedItemType(m.Type),
		Name:       m.Name,
		Amount:     m.Amount,
		CategoryID: m.CategoryID,
		CreatedAt:  m.CreatedAt,
	}
}

// SnapshotEntryFromEntity creates a SnapshotEntryModel from a domain SnapshotEntry entity.
func SnapshotEntryFromEntity(entry *entity.SnapshotEntry) *SnapshotEntryModel {
	return &SnapshotEntryModel{
		ID:         entry.ID,
		UserID:     entry.UserID,
		Year:       entry.Year,
		Month:      entry.Month,
		Type:       string(entry.Type),
		Name:       entry.Name,
		Amount:     entry.Amount,
		CategoryID: entry.CategoryID,
		CreatedAt:  entry.CreatedAt,
	}
}
