package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/persistence/model"
)

// fixedItemRepository implements the adapter.FixedItemRepository
// interface over the two template tables, selecting by item type.
type fixedItemRepository struct {
	db *gorm.DB
}

// NewFixedItemRepository creates a new fixed item repository instance.
func NewFixedItemRepository(db *gorm.DB) adapter.FixedItemRepository {
	return &fixedItemRepository{
		db: db,
	}
}

func tableFor(itemType entity.FixedItemType) string {
	if itemType == entity.FixedItemTypeIncome {
		return model.FixedIncomeModel{}.TableName()
	}
	return model.FixedExpenseModel{}.TableName()
}

// fixedItemRow is the joined row shape for template listings.
type fixedItemRow struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Name         string
	Amount       decimal.Decimal
	CategoryID   uuid.UUID
	CreatedAt    time.Time
	CategoryName string
}

// Create creates a new template line in the table for item.Type.
func (r *fixedItemRepository) Create(ctx context.Context, item *entity.FixedItem) error {
	var result *gorm.DB
	if item.Type == entity.FixedItemTypeIncome {
		result = r.db.WithContext(ctx).Create(model.FixedIncomeFromEntity(item))
	} else {
		result = r.db.WithContext(ctx).Create(model.FixedExpenseFromEntity(item))
	}
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a template line, scoped to the owning user.
func (r *fixedItemRepository) Delete(ctx context.Context, itemType entity.FixedItemType, id, userID uuid.UUID) error {
	var result *gorm.DB
	if itemType == entity.FixedItemTypeIncome {
		result = r.db.WithContext(ctx).
			Where("id = ? AND user_id = ?", id, userID).
			Delete(&model.FixedIncomeModel{})
	} else {
		result = r.db.WithContext(ctx).
			Where("id = ? AND user_id = ?", id, userID).
			Delete(&model.FixedExpenseModel{})
	}
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrFixedItemNotFound
	}
	return nil
}

// FindByUser retrieves all template lines of a type for a user, ordered
// by name.
func (r *fixedItemRepository) FindByUser(ctx context.Context, itemType entity.FixedItemType, userID uuid.UUID) ([]*entity.FixedItem, error) {
	if itemType == entity.FixedItemTypeIncome {
		var models []model.FixedIncomeModel
		result := r.db.WithContext(ctx).
			Where("user_id = ?", userID).
			Order("name ASC").
			Find(&models)
		if result.Error != nil {
			return nil, result.Error
		}
		items := make([]*entity.FixedItem, len(models))
		for i, m := range models {
			items[i] = m.ToEntity()
		}
		return items, nil
	}

	var models []model.FixedExpenseModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}
	items := make([]*entity.FixedItem, len(models))
	for i, m := range models {
		items[i] = m.ToEntity()
	}
	return items, nil
}

// FindByUserWithCategory retrieves template lines joined with category
// names, ordered by name.
func (r *fixedItemRepository) FindByUserWithCategory(ctx context.Context, itemType entity.FixedItemType, userID uuid.UUID) ([]*entity.FixedItemWithCategory, error) {
	table := tableFor(itemType)
	var rows []fixedItemRow
	result := r.db.WithContext(ctx).
		Table(table).
		Select(table+".id, "+table+".user_id, "+table+".name, "+table+".amount, "+table+".category_id, "+table+".created_at, categories.name AS category_name").
		Joins("INNER JOIN categories ON categories.id = "+table+".category_id").
		Where(table+".user_id = ?", userID).
		Order(table + ".name ASC").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	items := make([]*entity.FixedItemWithCategory, len(rows))
	for i, row := range rows {
		items[i] = &entity.FixedItemWithCategory{
			Item: &entity.FixedItem{
				ID:         row.ID,
				UserID:     row.UserID,
				Name:       row.Name,
				Amount:     row.Amount,
				Type:       itemType,
				CategoryID: row.CategoryID,
				CreatedAt:  row.CreatedAt,
			},
			CategoryName: row.CategoryName,
		}
	}
	return items, nil
}

// FindEntriesByUser retrieves the flat entry rows for the live template
// of a type (the current-month read path).
func (r *fixedItemRepository) FindEntriesByUser(ctx context.Context, itemType entity.FixedItemType, userID uuid.UUID) ([]adapter.FixedEntry, error) {
	table := tableFor(itemType)
	var entries []adapter.FixedEntry
	result := r.db.WithContext(ctx).
		Table(table).
		Select(table+".name, "+table+".amount, categories.name AS category_name").
		Joins("INNER JOIN categories ON categories.id = "+table+".category_id").
		Where(table+".user_id = ?", userID).
		Order(table + ".name ASC").
		Scan(&entries)
	if result.Error != nil {
		return nil, result.Error
	}
	return entries, nil
}
