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

func TestFixedItemRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("expense and income lines live in separate tables", func(t *testing.T) {
		gormDB := newTestDB(t)
		repo := NewFixedItemRepository(gormDB)
		userID := uuid.New()
		housing := seedCategory(t, gormDB, userID, "Housing")
		salary := seedCategory(t, gormDB, userID, "Salary")

		expense := entity.NewFixedItem(userID, "Rent", decimal.NewFromInt(1200), entity.FixedItemTypeExpense, housing.ID)
		income := entity.NewFixedItem(userID, "Paycheck", decimal.NewFromInt(5000), entity.FixedItemTypeIncome, salary.ID)
		if err := repo.Create(ctx, expense); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := repo.Create(ctx, income); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		expenses, err := repo.FindByUser(ctx, entity.FixedItemTypeExpense, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(expenses) != 1 || expenses[0].Name != "Rent" {
			t.Error("expected only the expense line")
		}
		if expenses[0].Type != entity.FixedItemTypeExpense {
			t.Errorf("expected expense type, got %s", expenses[0].Type)
		}

		incomes, err := repo.FindByUser(ctx, entity.FixedItemTypeIncome, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(incomes) != 1 || incomes[0].Name != "Paycheck" {
			t.Error("expected only the income line")
		}
	})

	t.Run("FindEntriesByUser joins category names ordered by name", func(t *testing.T) {
		gormDB := newTestDB(t)
		repo := NewFixedItemRepository(gormDB)
		userID := uuid.New()
		streaming := seedCategory(t, gormDB, userID, "Streaming")

		for _, name := range []string{"Spotify", "Netflix"} {
			item := entity.NewFixedItem(userID, name, decimal.NewFromInt(10), entity.FixedItemTypeExpense, streaming.ID)
			if err := repo.Create(ctx, item); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}

		entries, err := repo.FindEntriesByUser(ctx, entity.FixedItemTypeExpense, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(entries) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(entries))
		}
		if entries[0].Name != "Netflix" || entries[1].Name != "Spotify" {
			t.Errorf("unexpected order: %s, %s", entries[0].Name, entries[1].Name)
		}
		if entries[0].CategoryName != "Streaming" {
			t.Errorf("expected category Streaming, got %s", entries[0].CategoryName)
		}
	})

	t.Run("FindByUserWithCategory carries the category name", func(t *testing.T) {
		gormDB := newTestDB(t)
		repo := NewFixedItemRepository(gormDB)
		userID := uuid.New()
		housing := seedCategory(t, gormDB, userID, "Housing")

		item := entity.NewFixedItem(userID, "Rent", decimal.NewFromInt(1200), entity.FixedItemTypeExpense, housing.ID)
		if err := repo.Create(ctx, item); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		items, err := repo.FindByUserWithCategory(ctx, entity.FixedItemTypeExpense, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items) != 1 {
			t.Fatalf("expected 1 item, got %d", len(items))
		}
		if items[0].CategoryName != "Housing" {
			t.Errorf("expected category Housing, got %s", items[0].CategoryName)
		}
		if items[0].Item.ID != item.ID {
			t.Error("expected the created item to round-trip")
		}
	})

	t.Run("Delete is scoped to the owning user", func(t *testing.T) {
		gormDB := newTestDB(t)
		repo := NewFixedItemRepository(gormDB)
		userID := uuid.New()
		housing := seedCategory(t, gormDB, userID, "Housing")

		item := entity.NewFixedItem(userID, "Rent", decimal.NewFromInt(1200), entity.FixedItemTypeExpense, housing.ID)
		if err := repo.Create(ctx, item); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		err := repo.Delete(ctx, entity.FixedItemTypeExpense, item.ID, uuid.New())
		if !errors.Is(err, domainerror.ErrFixedItemNotFound) {
			t.Errorf("expected ErrFixedItemNotFound for another user, got %v", err)
		}

		if err := repo.Delete(ctx, entity.FixedItemTypeExpense, item.ID, userID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		remaining, _ := repo.FindByUser(ctx, entity.FixedItemTypeExpense, userID)
		if len(remaining) != 0 {
			t.Errorf("expected no remaining lines, got %d", len(remaining))
		}
	})
}
