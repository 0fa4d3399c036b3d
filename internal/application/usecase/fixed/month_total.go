package fixed

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// GetFixedTotalForMonthInput represents the input for the monthly total query.
type GetFixedTotalForMonthInput struct {
	UserID uuid.UUID
	Year   int
	Month  int // 0-based
	Type   entity.FixedItemType
}

// GetFixedTotalForMonthOutput represents the output of the monthly total query.
type GetFixedTotalForMonthOutput struct {
	Total decimal.Decimal
}

// GetFixedTotalForMonthUseCase sums the fixed items of one type for a
// month: the live template when the month is current, the frozen
// snapshot otherwise. Empty data is a normal state and yields zero.
type GetFixedTotalForMonthUseCase struct {
	fixedRepo    adapter.FixedItemRepository
	snapshotRepo adapter.SnapshotRepository
	clock        adapter.Clock
}

// NewGetFixedTotalForMonthUseCase creates a new GetFixedTotalForMonthUseCase instance.
func NewGetFixedTotalForMonthUseCase(
	fixedRepo adapter.FixedItemRepository,
	snapshotRepo adapter.SnapshotRepository,
	clock adapter.Clock,
) *GetFixedTotalForMonthUseCase {
	return &GetFixedTotalForMonthUseCase{
		fixedRepo:    fixedRepo,
		snapshotRepo: snapshotRepo,
		clock:        clock,
	}
}

// Execute returns the fixed total for the requested month.
func (uc *GetFixedTotalForMonthUseCase) Execute(ctx context.Context, input GetFixedTotalForMonthInput) (*GetFixedTotalForMonthOutput, error) {
	if input.UserID == uuid.Nil {
		return &GetFixedTotalForMonthOutput{Total: decimal.Zero}, nil
	}

	if !isValidMonth(input.Month) {
		return nil, domainerror.NewFixedError(
			domainerror.ErrCodeInvalidMonth,
			"month must be between 0 and 11",
			domainerror.ErrInvalidMonth,
		)
	}

	entries, err := monthEntries(ctx, uc.fixedRepo, uc.snapshotRepo, uc.clock, input.UserID, input.Year, input.Month, input.Type)
	if err != nil {
		return nil, err
	}

	return &GetFixedTotalForMonthOutput{Total: sumEntries(entries)}, nil
}

// monthEntries resolves the flat entry rows for (year, month): live
// template for the current month, snapshot rows for any other. A past
// month that was never snapshotted simply has no rows.
func monthEntries(
	ctx context.Context,
	fixedRepo adapter.FixedItemRepository,
	snapshotRepo adapter.SnapshotRepository,
	clock adapter.Clock,
	userID uuid.UUID,
	year, month int,
	itemType entity.FixedItemType,
) ([]adapter.FixedEntry, error) {
	if IsCurrentMonth(year, month, clock.Now()) {
		entries, err := fixedRepo.FindEntriesByUser(ctx, itemType, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to load fixed template: %w", err)
		}
		return entries, nil
	}

	entries, err := snapshotRepo.FindEntriesForMonth(ctx, userID, year, month, itemType)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot entries: %w", err)
	}
	return entries, nil
}
