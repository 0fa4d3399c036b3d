package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/usecase/transaction"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

type fakeTransactionRepo struct {
	inRange []*entity.TransactionWithCategory
}

func (r *fakeTransactionRepo) Create(ctx context.Context, transaction *entity.Transaction) error {
	return nil
}

func (r *fakeTransactionRepo) FindRecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.TransactionWithCategory, error) {
	return nil, nil
}

func (r *fakeTransactionRepo) FindByUserAndRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.TransactionWithCategory, error) {
	return r.inRange, nil
}

func (r *fakeTransactionRepo) Delete(ctx context.Context, id, userID uuid.UUID) error {
	return nil
}

func monthTxn(day int, amount float64, txnType entity.TransactionType, categoryName string) *entity.TransactionWithCategory {
	return &entity.TransactionWithCategory{
		Transaction: &entity.Transaction{
			ID:        uuid.New(),
			Amount:    decimal.NewFromFloat(amount),
			Type:      txnType,
			CreatedAt: time.Date(2024, time.March, day, 12, 0, 0, 0, time.UTC),
		},
		CategoryName: categoryName,
	}
}

func TestGetMonthlyStats(t *testing.T) {
	ctx := context.Background()

	t.Run("computes totals, balance and count", func(t *testing.T) {
		repo := &fakeTransactionRepo{inRange: []*entity.TransactionWithCategory{
			monthTxn(1, 5000, entity.TransactionTypeIncome, "Salary"),
			monthTxn(3, 120, entity.TransactionTypeExpense, "Groceries"),
			monthTxn(5, 80, entity.TransactionTypeExpense, "Transport"),
		}}
		uc := NewGetMonthlyStatsUseCase(transaction.NewListTransactionsByMonthUseCase(repo))

		output, err := uc.Execute(ctx, GetMonthlyStatsInput{UserID: uuid.New(), Year: 2024, Month: 2})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.TotalIncome.Equal(decimal.NewFromInt(5000)) {
			t.Errorf("expected income 5000, got %s", output.TotalIncome)
		}
		if !output.TotalExpenses.Equal(decimal.NewFromInt(200)) {
			t.Errorf("expected expenses 200, got %s", output.TotalExpenses)
		}
		if !output.NetBalance.Equal(decimal.NewFromInt(4800)) {
			t.Errorf("expected balance 4800, got %s", output.NetBalance)
		}
		if output.TransactionCount != 3 {
			t.Errorf("expected count 3, got %d", output.TransactionCount)
		}
	})

	t.Run("category breakdown carries expenses only, sorted descending", func(t *testing.T) {
		repo := &fakeTransactionRepo{inRange: []*entity.TransactionWithCategory{
			monthTxn(1, 5000, entity.TransactionTypeIncome, "Salary"),
			monthTxn(3, 80, entity.TransactionTypeExpense, "Transport"),
			monthTxn(4, 120, entity.TransactionTypeExpense, "Groceries"),
		}}
		uc := NewGetMonthlyStatsUseCase(transaction.NewListTransactionsByMonthUseCase(repo))

		output, err := uc.Execute(ctx, GetMonthlyStatsInput{UserID: uuid.New(), Year: 2024, Month: 2})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.CategoryBreakdown) != 2 {
			t.Fatalf("expected 2 categories, got %d", len(output.CategoryBreakdown))
		}
		if output.CategoryBreakdown[0].Name != "Groceries" {
			t.Errorf("expected Groceries first, got %s", output.CategoryBreakdown[0].Name)
		}
		for _, stat := range output.CategoryBreakdown {
			if stat.Name == "Salary" {
				t.Error("income must not appear in the category breakdown")
			}
		}
	})

	t.Run("same-day expenses in a category merge into one dated line", func(t *testing.T) {
		repo := &fakeTransactionRepo{inRange: []*entity.TransactionWithCategory{
			monthTxn(3, 40, entity.TransactionTypeExpense, "Groceries"),
			monthTxn(3, 60, entity.TransactionTypeExpense, "Groceries"),
			monthTxn(7, 25, entity.TransactionTypeExpense, "Groceries"),
		}}
		uc := NewGetMonthlyStatsUseCase(transaction.NewListTransactionsByMonthUseCase(repo))

		output, err := uc.Execute(ctx, GetMonthlyStatsInput{UserID: uuid.New(), Year: 2024, Month: 2})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.CategoryBreakdown) != 1 {
			t.Fatalf("expected 1 category, got %d", len(output.CategoryBreakdown))
		}
		items := output.CategoryBreakdown[0].Items
		if len(items) != 2 {
			t.Fatalf("expected 2 dated lines, got %d", len(items))
		}
		if items[0].Date != "Mar 3" {
			t.Errorf("expected date label Mar 3, got %s", items[0].Date)
		}
		if !items[0].Value.Equal(decimal.NewFromInt(100)) {
			t.Errorf("expected merged value 100, got %s", items[0].Value)
		}
	})

	t.Run("daily breakdown sums both sides per day, ascending", func(t *testing.T) {
		repo := &fakeTransactionRepo{inRange: []*entity.TransactionWithCategory{
			monthTxn(9, 80, entity.TransactionTypeExpense, "Transport"),
			monthTxn(2, 5000, entity.TransactionTypeIncome, "Salary"),
			monthTxn(2, 120, entity.TransactionTypeExpense, "Groceries"),
		}}
		uc := NewGetMonthlyStatsUseCase(transaction.NewListTransactionsByMonthUseCase(repo))

		output, err := uc.Execute(ctx, GetMonthlyStatsInput{UserID: uuid.New(), Year: 2024, Month: 2})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.DailyBreakdown) != 2 {
			t.Fatalf("expected 2 days, got %d", len(output.DailyBreakdown))
		}
		first := output.DailyBreakdown[0]
		if first.Day != 2 {
			t.Errorf("expected day 2 first, got %d", first.Day)
		}
		if !first.Income.Equal(decimal.NewFromInt(5000)) || !first.Expenses.Equal(decimal.NewFromInt(120)) {
			t.Errorf("unexpected day 2 totals: income %s, expenses %s", first.Income, first.Expenses)
		}
	})

	t.Run("anonymous caller gets zeroed stats", func(t *testing.T) {
		repo := &fakeTransactionRepo{inRange: []*entity.TransactionWithCategory{
			monthTxn(1, 100, entity.TransactionTypeExpense, "Groceries"),
		}}
		uc := NewGetMonthlyStatsUseCase(transaction.NewListTransactionsByMonthUseCase(repo))

		output, err := uc.Execute(ctx, GetMonthlyStatsInput{UserID: uuid.Nil, Year: 2024, Month: 2})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.TransactionCount != 0 || !output.NetBalance.Equal(decimal.Zero) {
			t.Error("expected empty stats for anonymous caller")
		}
	})
}
