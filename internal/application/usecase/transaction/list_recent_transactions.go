package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

const defaultRecentLimit = 5

// ListRecentTransactionsInput represents the input for listing recent transactions.
type ListRecentTransactionsInput struct {
	UserID uuid.UUID
	Limit  int
}

// ListRecentTransactionsOutput represents the output of listing recent transactions.
type ListRecentTransactionsOutput struct {
	Transactions []*entity.TransactionWithCategory
}

// ListRecentTransactionsUseCase lists a user's most recent transactions,
// newest first.
type ListRecentTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListRecentTransactionsUseCase creates a new ListRecentTransactionsUseCase instance.
func NewListRecentTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListRecentTransactionsUseCase {
	return &ListRecentTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute returns the most recent transactions for the user.
func (uc *ListRecentTransactionsUseCase) Execute(ctx context.Context, input ListRecentTransactionsInput) (*ListRecentTransactionsOutput, error) {
	if input.UserID == uuid.Nil {
		return &ListRecentTransactionsOutput{Transactions: []*entity.TransactionWithCategory{}}, nil
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultRecentLimit
	}

	transactions, err := uc.transactionRepo.FindRecentByUser(ctx, input.UserID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent transactions: %w", err)
	}

	return &ListRecentTransactionsOutput{Transactions: transactions}, nil
}
