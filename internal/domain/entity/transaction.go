// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of a transaction (expense or income).
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// Transaction represents a one-off income or expense entry, recorded at
// wall-clock time.
type Transaction struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Amount     decimal.Decimal
	Type       TransactionType
	CategoryID uuid.UUID
	CreatedAt  time.Time
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(userID uuid.UUID, amount decimal.Decimal, transactionType TransactionType, categoryID uuid.UUID) *Transaction {
	return &Transaction{
		ID:         uuid.New(),
		UserID:     userID,
		Amount:     amount,
		Type:       transactionType,
		CategoryID: categoryID,
		CreatedAt:  time.Now().UTC(),
	}
}

// TransactionWithCategory represents a transaction joined with its
// category name for presentation.
type TransactionWithCategory struct {
	Transaction  *Transaction
	CategoryName string
}
