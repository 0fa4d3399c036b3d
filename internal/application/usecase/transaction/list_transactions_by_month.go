package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// ListTransactionsByMonthInput represents the input for the monthly listing.
type ListTransactionsByMonthInput struct {
	UserID uuid.UUID
	Year   int
	Month  int // 0-based
}

// ListTransactionsByMonthOutput represents the output of the monthly listing.
type ListTransactionsByMonthOutput struct {
	Transactions []*entity.TransactionWithCategory
}

// ListTransactionsByMonthUseCase lists a user's transactions for one
// calendar month, newest first.
type ListTransactionsByMonthUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsByMonthUseCase creates a new ListTransactionsByMonthUseCase instance.
func NewListTransactionsByMonthUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsByMonthUseCase {
	return &ListTransactionsByMonthUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute returns transactions created within [first day of month, first
// day of next month).
func (uc *ListTransactionsByMonthUseCase) Execute(ctx context.Context, input ListTransactionsByMonthInput) (*ListTransactionsByMonthOutput, error) {
	if input.UserID == uuid.Nil {
		return &ListTransactionsByMonthOutput{Transactions: []*entity.TransactionWithCategory{}}, nil
	}

	if input.Month < 0 || input.Month > 11 {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidMonthRange,
			"month must be between 0 and 11",
			domainerror.ErrInvalidMonthRange,
		)
	}

	start, end := MonthBounds(input.Year, input.Month)
	transactions, err := uc.transactionRepo.FindByUserAndRange(ctx, input.UserID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions by month: %w", err)
	}

	return &ListTransactionsByMonthOutput{Transactions: transactions}, nil
}

// MonthBounds returns the UTC half-open interval covering the 0-based
// (year, month) pair. time.Date normalizes month overflow, so December
// rolls into January of the next year on the end bound.
func MonthBounds(year, month int) (start, end time.Time) {
	start = time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 1, 0)
	return start, end
}
