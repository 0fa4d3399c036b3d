package fixed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// EnsurePreviousMonthSnapshotInput represents the input for the ensure call.
type EnsurePreviousMonthSnapshotInput struct {
	UserID uuid.UUID
}

// EnsurePreviousMonthSnapshotOutput represents the output of the ensure call.
type EnsurePreviousMonthSnapshotOutput struct {
	Created bool
}

// EnsurePreviousMonthSnapshotUseCase freezes the previous calendar month
// the first time it is invoked after the month boundary. Called on every
// app open; repeated calls within the same month are no-ops, which is
// what makes calling it unconditionally safe.
type EnsurePreviousMonthSnapshotUseCase struct {
	fixedRepo    adapter.FixedItemRepository
	snapshotRepo adapter.SnapshotRepository
	clock        adapter.Clock
	locks        *userLocks
}

// NewEnsurePreviousMonthSnapshotUseCase creates a new EnsurePreviousMonthSnapshotUseCase instance.
func NewEnsurePreviousMonthSnapshotUseCase(
	fixedRepo adapter.FixedItemRepository,
	snapshotRepo adapter.SnapshotRepository,
	clock adapter.Clock,
) *EnsurePreviousMonthSnapshotUseCase {
	return &EnsurePreviousMonthSnapshotUseCase{
		fixedRepo:    fixedRepo,
		snapshotRepo: snapshotRepo,
		clock:        clock,
		locks:        newUserLocks(),
	}
}

// Execute checks whether the previous month is already snapshotted and
// freezes it if not. Returns Created=false for unauthenticated callers
// and for months that are already frozen.
func (uc *EnsurePreviousMonthSnapshotUseCase) Execute(ctx context.Context, input EnsurePreviousMonthSnapshotInput) (*EnsurePreviousMonthSnapshotOutput, error) {
	if input.UserID == uuid.Nil {
		return &EnsurePreviousMonthSnapshotOutput{Created: false}, nil
	}

	prevYear, prevMonth := PreviousMonth(uc.clock.Now())

	// Serialize the check-then-act per user so concurrent app opens
	// cannot both decide to write.
	lock := uc.locks.get(input.UserID)
	lock.Lock()
	defer lock.Unlock()

	exists, err := uc.snapshotRepo.ExistsForMonth(ctx, input.UserID, prevYear, prevMonth)
	if err != nil {
		return nil, fmt.Errorf("failed to check snapshot existence: %w", err)
	}
	if exists {
		return &EnsurePreviousMonthSnapshotOutput{Created: false}, nil
	}

	entries, err := uc.collectTemplate(ctx, input.UserID, prevYear, prevMonth)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		// Nothing to freeze. The month stays unsnapshotted so a later
		// call can pick up template lines added in the meantime.
		return &EnsurePreviousMonthSnapshotOutput{Created: false}, nil
	}

	if err := uc.snapshotRepo.CreateForMonth(ctx, input.UserID, prevYear, prevMonth, entries); err != nil {
		// Another process won the race; the month is frozen either way.
		if errors.Is(err, domainerror.ErrSnapshotAlreadyExists) {
			return &EnsurePreviousMonthSnapshotOutput{Created: false}, nil
		}
		return nil, fmt.Errorf("failed to create snapshot: %w", err)
	}

	slog.Info("Created monthly fixed snapshot",
		"userID", input.UserID,
		"year", prevYear,
		"month", prevMonth,
		"entries", len(entries),
	)

	return &EnsurePreviousMonthSnapshotOutput{Created: true}, nil
}

// collectTemplate copies both template collections into snapshot entries
// tagged with the requested month.
func (uc *EnsurePreviousMonthSnapshotUseCase) collectTemplate(ctx context.Context, userID uuid.UUID, year, month int) ([]*entity.SnapshotEntry, error) {
	expenses, err := uc.fixedRepo.FindByUser(ctx, entity.FixedItemTypeExpense, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load fixed expenses: %w", err)
	}
	incomes, err := uc.fixedRepo.FindByUser(ctx, entity.FixedItemTypeIncome, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load fixed incomes: %w", err)
	}

	entries := make([]*entity.SnapshotEntry, 0, len(expenses)+len(incomes))
	for _, item := range expenses {
		entries = append(entries, entity.SnapshotEntryFromFixedItem(item, year, month))
	}
	for _, item := range incomes {
		entries = append(entries, entity.SnapshotEntryFromFixedItem(item, year, month))
	}
	return entries, nil
}
