package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// FixedExpenseModel represents the fixed_expenses table: the expense
// half of the live recurring template.
type FixedExpenseModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name       string          `gorm:"type:varchar(255);not null"`
	Amount     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CategoryID uuid.UUID       `gorm:"type:uuid;not null;index"`
	CreatedAt  time.Time       `gorm:"not null"`
}

// TableName returns the table name for the FixedExpenseModel.
func (FixedExpenseModel) TableName() string {
	return "fixed_expenses"
}

// ToEntity converts a FixedExpenseModel to a domain FixedItem entity.
func (m *FixedExpenseModel) ToEntity() *entity.FixedItem {
	return &entity.FixedItem{
		ID:         m.ID,
		UserID:     m.UserID,
		Name:       m.Name,
		Amount:     m.Amount,
		Type:       entity.FixedItemTypeExpense,
		CategoryID: m.CategoryID,
		CreatedAt:  m.CreatedAt,
	}
}

// FixedIncomeModel represents the fixed_income table: the income half
// of the live recurring template.
type FixedIncomeModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name       string          `gorm:"type:varchar(255);not null"`
	Amount     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CategoryID uuid.UUID       `gorm:"type:uuid;not null;index"`
	CreatedAt  time.Time       `gorm:"not null"`
}

// TableName returns the table name for the FixedIncomeModel.
func (FixedIncomeModel) TableName() string {
	return "fixed_income"
}

// ToEntity converts a FixedIncomeModel to a domain FixedItem entity.
func (m *FixedIncomeModel) ToEntity() *entity.FixedItem {
	return &entity.FixedItem{
		ID:         m.ID,
		UserID:     m.UserID,
		Name:       m.Name,
		Amount:     m.Amount,
		Type:       entity.FixedItemTypeIncome,
		CategoryID: m.CategoryID,
		CreatedAt:  m.CreatedAt,
	}
}

// FixedExpenseFromEntity creates a FixedExpenseModel from a domain FixedItem entity.
func FixedExpenseFromEntity(item *entity.FixedItem) *FixedExpenseModel {
	return &FixedExpenseModel{
		ID:         item.ID,
		UserID:     item.UserID,
		Name:       item.Name,
		Amount:     item.Amount,
		CategoryID: item.CategoryID,
		CreatedAt:  item.CreatedAt,
	}
}

// FixedIncomeFromEntity creates a FixedIncomeModel from a domain FixedItem entity.
func FixedIncomeFromEntity(item *entity.FixedItem) *FixedIncomeModel {
	return &FixedIncomeModel{
		ID:         item.ID,
		UserID:     item.UserID,
		Name:       item.Name,
		Amount:     item.Amount,
		CategoryID: item.CategoryID,
		CreatedAt:  item.CreatedAt,
	}
}
