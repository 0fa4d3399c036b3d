package fixed

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

func TestGetFixedTotalForMonth(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: time.Date(2024, time.March, 10, 8, 0, 0, 0, time.UTC)}

	t.Run("current month sums the live template", func(t *testing.T) {
		userID := uuid.New()
		fixedRepo := newFakeFixedRepo()
		fixedRepo.entries[entity.FixedItemTypeExpense] = []adapter.FixedEntry{
			entry("Rent", 1200, "Housing"),
			entry("Netflix", 15, "Streaming"),
		}
		snapshotRepo := newFakeSnapshotRepo()
		uc := NewGetFixedTotalForMonthUseCase(fixedRepo, snapshotRepo, clock)

		output, err := uc.Execute(ctx, GetFixedTotalForMonthInput{
			UserID: userID, Year: 2024, Month: 2, Type: entity.FixedItemTypeExpense,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Total.Equal(decimal.NewFromInt(1215)) {
			t.Errorf("expected 1215, got %s", output.Total)
		}
	})

	t.Run("past month sums the snapshot, not the template", func(t *testing.T) {
		userID := uuid.New()
		fixedRepo := newFakeFixedRepo()
		fixedRepo.entries[entity.FixedItemTypeExpense] = []adapter.FixedEntry{
			entry("Rent", 1500, "Housing"),
		}
		snapshotRepo := newFakeSnapshotRepo()
		snapshotRepo.stored[snapshotKey{userID, 2024, 1}] = []*entity.SnapshotEntry{
			{Name: "Rent", Amount: decimal.NewFromInt(1200), Type: entity.FixedItemTypeExpense},
		}
		uc := NewGetFixedTotalForMonthUseCase(fixedRepo, snapshotRepo, clock)

		output, err := uc.Execute(ctx, GetFixedTotalForMonthInput{
			UserID: userID, Year: 2024, Month: 1, Type: entity.FixedItemTypeExpense,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Total.Equal(decimal.NewFromInt(1200)) {
			t.Errorf("expected the frozen 1200, got %s", output.Total)
		}
	})

	t.Run("past month without a snapshot yields zero", func(t *testing.T) {
		userID := uuid.New()
		uc := NewGetFixedTotalForMonthUseCase(newFakeFixedRepo(), newFakeSnapshotRepo(), clock)

		output, err := uc.Execute(ctx, GetFixedTotalForMonthInput{
			UserID: userID, Year: 2023, Month: 5, Type: entity.FixedItemTypeExpense,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Total.Equal(decimal.Zero) {
			t.Errorf("expected zero, got %s", output.Total)
		}
	})

	t.Run("anonymous caller gets zero", func(t *testing.T) {
		uc := NewGetFixedTotalForMonthUseCase(newFakeFixedRepo(), newFakeSnapshotRepo(), clock)

		output, err := uc.Execute(ctx, GetFixedTotalForMonthInput{
			UserID: uuid.Nil, Year: 2024, Month: 2, Type: entity.FixedItemTypeExpense,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Total.Equal(decimal.Zero) {
			t.Errorf("expected zero, got %s", output.Total)
		}
	})

	t.Run("rejects an out of range month", func(t *testing.T) {
		uc := NewGetFixedTotalForMonthUseCase(newFakeFixedRepo(), newFakeSnapshotRepo(), clock)

		_, err := uc.Execute(ctx, GetFixedTotalForMonthInput{
			UserID: uuid.New(), Year: 2024, Month: 12, Type: entity.FixedItemTypeExpense,
		})
		if err == nil {
			t.Fatal("expected an error for month 12")
		}
		var fixedErr *domainerror.FixedError
		if !errors.As(err, &fixedErr) {
			t.Fatalf("expected FixedError, got %T", err)
		}
		if fixedErr.Code != domainerror.ErrCodeInvalidMonth {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidMonth, fixedErr.Code)
		}
	})
}

func TestGetFixedByCategoryForMonth(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: time.Date(2024, time.March, 10, 8, 0, 0, 0, time.UTC)}

	t.Run("current month groups the live template", func(t *testing.T) {
		userID := uuid.New()
		fixedRepo := newFakeFixedRepo()
		fixedRepo.entries[entity.FixedItemTypeExpense] = []adapter.FixedEntry{
			entry("Rent", 1200, "Housing"),
			entry("Netflix", 15, "Streaming"),
			entry("Spotify", 10, "Streaming"),
		}
		uc := NewGetFixedByCategoryForMonthUseCase(fixedRepo, newFakeSnapshotRepo(), clock)

		output, err := uc.Execute(ctx, GetFixedByCategoryForMonthInput{
			UserID: userID, Year: 2024, Month: 2, Type: entity.FixedItemTypeExpense,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Groups) != 2 {
			t.Fatalf("expected 2 groups, got %d", len(output.Groups))
		}
		if output.Groups[0].Name != "Housing" {
			t.Errorf("expected Housing first, got %s", output.Groups[0].Name)
		}
	})

	t.Run("past month groups the snapshot", func(t *testing.T) {
		userID := uuid.New()
		snapshotRepo := newFakeSnapshotRepo()
		snapshotRepo.stored[snapshotKey{userID, 2024, 1}] = []*entity.SnapshotEntry{
			{Name: "Rent", Amount: decimal.NewFromInt(1200), Type: entity.FixedItemTypeExpense},
			{Name: "Salary", Amount: decimal.NewFromInt(5000), Type: entity.FixedItemTypeIncome},
		}
		uc := NewGetFixedByCategoryForMonthUseCase(newFakeFixedRepo(), snapshotRepo, clock)

		output, err := uc.Execute(ctx, GetFixedByCategoryForMonthInput{
			UserID: userID, Year: 2024, Month: 1, Type: entity.FixedItemTypeExpense,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Groups) != 1 {
			t.Fatalf("expected 1 group, got %d", len(output.Groups))
		}
		if len(output.Groups[0].Items) != 1 || output.Groups[0].Items[0].Name != "Rent" {
			t.Error("expected only the frozen expense line")
		}
	})

	t.Run("anonymous caller gets an empty breakdown", func(t *testing.T) {
		uc := NewGetFixedByCategoryForMonthUseCase(newFakeFixedRepo(), newFakeSnapshotRepo(), clock)

		output, err := uc.Execute(ctx, GetFixedByCategoryForMonthInput{
			UserID: uuid.Nil, Year: 2024, Month: 2, Type: entity.FixedItemTypeExpense,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Groups) != 0 {
			t.Errorf("expected no groups, got %d", len(output.Groups))
		}
	})

	t.Run("rejects a negative month", func(t *testing.T) {
		uc := NewGetFixedByCategoryForMonthUseCase(newFakeFixedRepo(), newFakeSnapshotRepo(), clock)

		_, err := uc.Execute(ctx, GetFixedByCategoryForMonthInput{
			UserID: uuid.New(), Year: 2024, Month: -1, Type: entity.FixedItemTypeExpense,
		})
		if err == nil {
			t.Fatal("expected an error for month -1")
		}
	})
}
