// Package dashboard contains use cases for the analytics views.
package dashboard

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/usecase/transaction"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// GetMonthlyStatsInput represents the input for the monthly stats query.
type GetMonthlyStatsInput struct {
	UserID uuid.UUID
	Year   int
	Month  int // 0-based
}

// DatedItem is one dated line inside a category breakdown group. Items
// are labeled with a short date ("Jan 2") and lines on the same day are
// merged.
type DatedItem struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
	Date  string          `json:"date"`
}

// CategoryStat is one expense category with its total and dated lines.
type CategoryStat struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
	Items []DatedItem     `json:"items"`
}

// DailyStat is one day's income and expense totals for the bar chart.
type DailyStat struct {
	Day      int             `json:"day"`
	Expenses decimal.Decimal `json:"expenses"`
	Income   decimal.Decimal `json:"income"`
}

// GetMonthlyStatsOutput represents the output of the monthly stats query.
type GetMonthlyStatsOutput struct {
	TotalIncome       decimal.Decimal `json:"totalIncome"`
	TotalExpenses     decimal.Decimal `json:"totalExpenses"`
	NetBalance        decimal.Decimal `json:"netBalance"`
	CategoryBreakdown []CategoryStat  `json:"categoryBreakdown"`
	DailyBreakdown    []DailyStat     `json:"dailyBreakdown"`
	TransactionCount  int             `json:"transactionCount"`
}

// GetMonthlyStatsUseCase aggregates one month of transactions into the
// dashboard totals and breakdowns. Only expenses feed the category
// breakdown; the daily breakdown carries both sides.
type GetMonthlyStatsUseCase struct {
	listByMonth *transaction.ListTransactionsByMonthUseCase
}

// NewGetMonthlyStatsUseCase creates a new GetMonthlyStatsUseCase instance.
func NewGetMonthlyStatsUseCase(listByMonth *transaction.ListTransactionsByMonthUseCase) *GetMonthlyStatsUseCase {
	return &GetMonthlyStatsUseCase{
		listByMonth: listByMonth,
	}
}

// Execute computes the monthly stats for the user.
func (uc *GetMonthlyStatsUseCase) Execute(ctx context.Context, input GetMonthlyStatsInput) (*GetMonthlyStatsOutput, error) {
	listOut, err := uc.listByMonth.Execute(ctx, transaction.ListTransactionsByMonthInput{
		UserID: input.UserID,
		Year:   input.Year,
		Month:  input.Month,
	})
	if err != nil {
		return nil, err
	}
	transactions := listOut.Transactions

	totalIncome := decimal.Zero
	totalExpenses := decimal.Zero
	for _, t := range transactions {
		if t.Transaction.Type == entity.TransactionTypeIncome {
			totalIncome = totalIncome.Add(t.Transaction.Amount)
		} else {
			totalExpenses = totalExpenses.Add(t.Transaction.Amount)
		}
	}

	return &GetMonthlyStatsOutput{
		TotalIncome:       totalIncome,
		TotalExpenses:     totalExpenses,
		NetBalance:        totalIncome.Sub(totalExpenses),
		CategoryBreakdown: buildCategoryBreakdown(transactions),
		DailyBreakdown:    buildDailyBreakdown(transactions),
		TransactionCount:  len(transactions),
	}, nil
}

// buildCategoryBreakdown groups expense transactions by category name,
// sorted by total descending. Within a category, transactions on the
// same calendar day merge into one dated line.
func buildCategoryBreakdown(transactions []*entity.TransactionWithCategory) []CategoryStat {
	byName := make(map[string]*CategoryStat)
	order := make([]string, 0)

	for _, t := range transactions {
		if t.Transaction.Type != entity.TransactionTypeExpense {
			continue
		}

		stat, ok := byName[t.CategoryName]
		if !ok {
			stat = &CategoryStat{Name: t.CategoryName}
			byName[t.CategoryName] = stat
			order = append(order, t.CategoryName)
		}
		stat.Value = stat.Value.Add(t.Transaction.Amount)

		date := t.Transaction.CreatedAt.Format("Jan 2")
		merged := false
		for i := range stat.Items {
			if stat.Items[i].Date == date {
				stat.Items[i].Value = stat.Items[i].Value.Add(t.Transaction.Amount)
				merged = true
				break
			}
		}
		if !merged {
			stat.Items = append(stat.Items, DatedItem{
				Name:  date,
				Value: t.Transaction.Amount,
				Date:  date,
			})
		}
	}

	stats := make([]CategoryStat, 0, len(order))
	for _, name := range order {
		stats = append(stats, *byName[name])
	}

	sort.SliceStable(stats, func(i, j int) bool {
		if !stats[i].Value.Equal(stats[j].Value) {
			return stats[i].Value.GreaterThan(stats[j].Value)
		}
		return stats[i].Name < stats[j].Name
	})

	return stats
}

// buildDailyBreakdown sums income and expenses per day of month, sorted
// by day ascending. Days with no transactions are absent.
func buildDailyBreakdown(transactions []*entity.TransactionWithCategory) []DailyStat {
	byDay := make(map[int]*DailyStat)
	days := make([]int, 0)

	for _, t := range transactions {
		day := t.Transaction.CreatedAt.Day()
		stat, ok := byDay[day]
		if !ok {
			stat = &DailyStat{Day: day, Expenses: decimal.Zero, Income: decimal.Zero}
			byDay[day] = stat
			days = append(days, day)
		}
		if t.Transaction.Type == entity.TransactionTypeExpense {
			stat.Expenses = stat.Expenses.Add(t.Transaction.Amount)
		} else {
			stat.Income = stat.Income.Add(t.Transaction.Amount)
		}
	}

	sort.Ints(days)
	stats := make([]DailyStat, 0, len(days))
	for _, day := range days {
		stats = append(stats, *byDay[day])
	}
	return stats
}
