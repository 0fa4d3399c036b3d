package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

func snapshotEntry(userID, categoryID uuid.UUID, year, month int, itemType entity.FixedItemType, name string, amount int64) *entity.SnapshotEntry {
	item := &entity.FixedItem{
		ID:         uuid.New(),
		UserID:     userID,
		Name:       name,
		Amount:     decimal.NewFromInt(amount),
		Type:       itemType,
		CategoryID: categoryID,
	}
	return entity.SnapshotEntryFromFixedItem(item, year, month)
}

func TestSnapshotRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("CreateForMonth then ExistsForMonth", func(t *testing.T) {
		gormDB := newTestDB(t)
		repo := NewSnapshotRepository(gormDB)
		userID := uuid.New()
		housing := seedCategory(t, gormDB, userID, "Housing")

		exists, err := repo.ExistsForMonth(ctx, userID, 2024, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if exists {
			t.Error("expected no snapshot before creation")
		}

		entries := []*entity.SnapshotEntry{
			snapshotEntry(userID, housing.ID, 2024, 1, entity.FixedItemTypeExpense, "Rent", 1200),
		}
		if err := repo.CreateForMonth(ctx, userID, 2024, 1, entries); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		exists, err = repo.ExistsForMonth(ctx, userID, 2024, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !exists {
			t.Error("expected snapshot after creation")
		}
	})

	t.Run("second CreateForMonth for the same month fails", func(t *testing.T) {
		gormDB := newTestDB(t)
		repo := NewSnapshotRepository(gormDB)
		userID := uuid.New()
		housing := seedCategory(t, gormDB, userID, "Housing")

		first := []*entity.SnapshotEntry{
			snapshotEntry(userID, housing.ID, 2024, 1, entity.FixedItemTypeExpense, "Rent", 1200),
		}
		if err := repo.CreateForMonth(ctx, userID, 2024, 1, first); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		second := []*entity.SnapshotEntry{
			snapshotEntry(userID, housing.ID, 2024, 1, entity.FixedItemTypeExpense, "Insurance", 90),
		}
		err := repo.CreateForMonth(ctx, userID, 2024, 1, second)
		if !errors.Is(err, domainerror.ErrSnapshotAlreadyExists) {
			t.Errorf("expected ErrSnapshotAlreadyExists, got %v", err)
		}
	})

	t.Run("existence check covers both types at once", func(t *testing.T) {
		gormDB := newTestDB(t)
		repo := NewSnapshotRepository(gormDB)
		userID := uuid.New()
		salary := seedCategory(t, gormDB, userID, "Salary")

		// Income only; the month still counts as frozen.
		entries := []*entity.SnapshotEntry{
			snapshotEntry(userID, salary.ID, 2024, 1, entity.FixedItemTypeIncome, "Paycheck", 5000),
		}
		if err := repo.CreateForMonth(ctx, userID, 2024, 1, entries); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		exists, err := repo.ExistsForMonth(ctx, userID, 2024, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !exists {
			t.Error("expected the month to be frozen regardless of type")
		}
	})

	t.Run("other users and months stay independent", func(t *testing.T) {
		gormDB := newTestDB(t)
		repo := NewSnapshotRepository(gormDB)
		userID := uuid.New()
		housing := seedCategory(t, gormDB, userID, "Housing")

		entries := []*entity.SnapshotEntry{
			snapshotEntry(userID, housing.ID, 2024, 1, entity.FixedItemTypeExpense, "Rent", 1200),
		}
		if err := repo.CreateForMonth(ctx, userID, 2024, 1, entries); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		exists, _ := repo.ExistsForMonth(ctx, userID, 2024, 2)
		if exists {
			t.Error("expected a different month to be unfrozen")
		}
		exists, _ = repo.ExistsForMonth(ctx, uuid.New(), 2024, 1)
		if exists {
			t.Error("expected a different user to be unfrozen")
		}
	})

	t.Run("FindEntriesForMonth filters by type and joins category names", func(t *testing.T) {
		gormDB := newTestDB(t)
		repo := NewSnapshotRepository(gormDB)
		userID := uuid.New()
		housing := seedCategory(t, gormDB, userID, "Housing")
		salary := seedCategory(t, gormDB, userID, "Salary")

		entries := []*entity.SnapshotEntry{
			snapshotEntry(userID, housing.ID, 2024, 1, entity.FixedItemTypeExpense, "Rent", 1200),
			snapshotEntry(userID, housing.ID, 2024, 1, entity.FixedItemTypeExpense, "Insurance", 90),
			snapshotEntry(userID, salary.ID, 2024, 1, entity.FixedItemTypeIncome, "Paycheck", 5000),
		}
		if err := repo.CreateForMonth(ctx, userID, 2024, 1, entries); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		expenses, err := repo.FindEntriesForMonth(ctx, userID, 2024, 1, entity.FixedItemTypeExpense)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(expenses) != 2 {
			t.Fatalf("expected 2 expense rows, got %d", len(expenses))
		}
		// Ordered by name.
		if expenses[0].Name != "Insurance" || expenses[1].Name != "Rent" {
			t.Errorf("unexpected order: %s, %s", expenses[0].Name, expenses[1].Name)
		}
		if expenses[0].CategoryName != "Housing" {
			t.Errorf("expected category Housing, got %s", expenses[0].CategoryName)
		}

		incomes, err := repo.FindEntriesForMonth(ctx, userID, 2024, 1, entity.FixedItemTypeIncome)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(incomes) != 1 || incomes[0].Name != "Paycheck" {
			t.Error("expected only the income row")
		}
	})

	t.Run("empty entry slice is a no-op", func(t *testing.T) {
		gormDB := newTestDB(t)
		repo := NewSnapshotRepository(gormDB)
		userID := uuid.New()

		if err := repo.CreateForMonth(ctx, userID, 2024, 1, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		exists, _ := repo.ExistsForMonth(ctx, userID, 2024, 1)
		if exists {
			t.Error("expected the month to stay unfrozen")
		}
	})
}
