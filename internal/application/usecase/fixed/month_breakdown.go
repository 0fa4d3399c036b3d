package fixed

import (
	"context"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// GetFixedByCategoryForMonthInput represents the input for the monthly breakdown query.
type GetFixedByCategoryForMonthInput struct {
	UserID uuid.UUID
	Year   int
	Month  int // 0-based
	Type   entity.FixedItemType
}

// GetFixedByCategoryForMonthOutput represents the output of the monthly breakdown query.
type GetFixedByCategoryForMonthOutput struct {
	Groups []CategoryGroup
}

// GetFixedByCategoryForMonthUseCase groups the fixed items of one type
// for a month by category, sourcing from the same live/frozen branch as
// the total query.
type GetFixedByCategoryForMonthUseCase struct {
	fixedRepo    adapter.FixedItemRepository
	snapshotRepo adapter.SnapshotRepository
	clock        adapter.Clock
}

// NewGetFixedByCategoryForMonthUseCase creates a new GetFixedByCategoryForMonthUseCase instance.
func NewGetFixedByCategoryForMonthUseCase(
	fixedRepo adapter.FixedItemRepository,
	snapshotRepo adapter.SnapshotRepository,
	clock adapter.Clock,
) *GetFixedByCategoryForMonthUseCase {
	return &GetFixedByCategoryForMonthUseCase{
		fixedRepo:    fixedRepo,
		snapshotRepo: snapshotRepo,
		clock:        clock,
	}
}

// Execute returns the per-category breakdown for the requested month,
// sorted by category total descending.
func (uc *GetFixedByCategoryForMonthUseCase) Execute(ctx context.Context, input GetFixedByCategoryForMonthInput) (*GetFixedByCategoryForMonthOutput, error) {
	if input.UserID == uuid.Nil {
		return &GetFixedByCategoryForMonthOutput{Groups: []CategoryGroup{}}, nil
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

	return &GetFixedByCategoryForMonthOutput{Groups: groupByCategory(entries)}, nil
}
