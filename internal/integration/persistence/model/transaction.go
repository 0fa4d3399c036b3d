package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Type       string          `gorm:"type:varchar(10);not null"`
	CategoryID uuid.UUID       `gorm:"type:uuid;not null;index"`
	CreatedAt  time.Time       `gorm:"not null;index"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:         m.ID,
		UserID:     m.UserID,
		Amount:     m.Amount,
		Type:       entity.TransactionType(m.Type),
		CategoryID: m.CategoryID,
		CreatedAt:  m.CreatedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:         transaction.ID,
		UserID:     transaction.UserID,
		Amount:     transaction.Amount,
		Type:       string(transaction.Type),
		CategoryID: transaction.CategoryID,
		CreatedAt:  transaction.CreatedAt,
	}
}
