package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
)

// DeleteTransactionInput represents the input for deleting a transaction.
type DeleteTransactionInput struct {
	UserID uuid.UUID
	ID     uuid.UUID
}

// DeleteTransactionUseCase handles removing a transaction.
type DeleteTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(transactionRepo adapter.TransactionRepository) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute deletes a transaction owned by the user.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, input DeleteTransactionInput) error {
	if err := uc.transactionRepo.Delete(ctx, input.ID, input.UserID); err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	return nil
}
