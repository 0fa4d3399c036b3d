package dto

import (
	"time"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	Amount       float64 `json:"amount" binding:"required,gt=0"`
	Type         string  `json:"type" binding:"required,oneof=expense income"`
	CategoryName string  `json:"category_name" binding:"required,min=1,max=100"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID           string    `json:"id"`
	Amount       float64   `json:"amount"`
	Type         string    `json:"type"`
	CategoryName string    `json:"category_name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts a domain Transaction entity to a TransactionResponse DTO.
func ToTransactionResponse(txn *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:        txn.ID.String(),
		Amount:    txn.Amount.InexactFloat64(),
		Type:      string(txn.Type),
		CreatedAt: txn.CreatedAt,
	}
}

// ToTransactionListResponse converts joined transactions to a TransactionListResponse.
func ToTransactionListResponse(transactions []*entity.TransactionWithCategory) TransactionListResponse {
	responses := make([]TransactionResponse, len(transactions))
	for i, t := range transactions {
		responses[i] = TransactionResponse{
			ID:           t.Transaction.ID.String(),
			Amount:       t.Transaction.Amount.InexactFloat64(),
			Type:         string(t.Transaction.Type),
			CategoryName: t.CategoryName,
			CreatedAt:    t.Transaction.CreatedAt,
		}
	}
	return TransactionListResponse{Transactions: responses}
}
