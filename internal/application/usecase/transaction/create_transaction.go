// Package transaction contains use cases for one-off transaction management.
package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/application/usecase/category"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// CreateTransactionInput represents the input for creating a transaction.
type CreateTransactionInput struct {
	UserID       uuid.UUID
	Amount       decimal.Decimal
	Type         entity.TransactionType
	CategoryName string
}

// CreateTransactionOutput represents the output of creating a transaction.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
}

// CreateTransactionUseCase records a one-off income or expense entry,
// resolving its category by name.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	findOrCreate    *category.FindOrCreateCategoryUseCase
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	findOrCreate *category.FindOrCreateCategoryUseCase,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		findOrCreate:    findOrCreate,
	}
}

// Execute validates and persists a new transaction.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if input.Type != entity.TransactionTypeExpense && input.Type != entity.TransactionTypeIncome {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be expense or income",
			domainerror.ErrInvalidTransactionType,
		)
	}

	if !input.Amount.IsPositive() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidAmount,
			"transaction amount must be positive",
			domainerror.ErrInvalidAmount,
		)
	}

	categoryOut, err := uc.findOrCreate.Execute(ctx, category.FindOrCreateCategoryInput{
		UserID: input.UserID,
		Name:   input.CategoryName,
	})
	if err != nil {
		return nil, err
	}

	txn := entity.NewTransaction(input.UserID, input.Amount, input.Type, categoryOut.Category.ID)
	if err := uc.transactionRepo.Create(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return &CreateTransactionOutput{Transaction: txn}, nil
}
