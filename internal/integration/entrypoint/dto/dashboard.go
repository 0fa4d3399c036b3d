package dto

import (
	"github.com/expense-tracker/backend/internal/application/usecase/dashboard"
)

// DatedItemResponse is one dated line inside a category breakdown group.
type DatedItemResponse struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Date  string  `json:"date"`
}

// CategoryStatResponse is one expense category in the monthly stats.
type CategoryStatResponse struct {
	Name  string              `json:"name"`
	Value float64             `json:"value"`
	Items []DatedItemResponse `json:"items"`
}

// DailyStatResponse is one day's totals in the monthly stats.
type DailyStatResponse struct {
	Day      int     `json:"day"`
	Expenses float64 `json:"expenses"`
	Income   float64 `json:"income"`
}

// MonthlyStatsResponse represents the response for the monthly stats query.
type MonthlyStatsResponse struct {
	TotalIncome       float64                `json:"total_income"`
	TotalExpenses     float64                `json:"total_expenses"`
	NetBalance        float64                `json:"net_balance"`
	CategoryBreakdown []CategoryStatResponse `json:"category_breakdown"`
	DailyBreakdown    []DailyStatResponse    `json:"daily_breakdown"`
	TransactionCount  int                    `json:"transaction_count"`
}

// ToMonthlyStatsResponse converts the use case output to a MonthlyStatsResponse.
func ToMonthlyStatsResponse(output *dashboard.GetMonthlyStatsOutput) MonthlyStatsResponse {
	categories := make([]CategoryStatResponse, len(output.CategoryBreakdown))
	for i, c := range output.CategoryBreakdown {
		items := make([]DatedItemResponse, len(c.Items))
		for j, item := range c.Items {
			items[j] = DatedItemResponse{
				Name:  item.Name,
				Value: item.Value.InexactFloat64(),
				Date:  item.Date,
			}
		}
		categories[i] = CategoryStatResponse{
			Name:  c.Name,
			Value: c.Value.InexactFloat64(),
			Items: items,
		}
	}

	days := make([]DailyStatResponse, len(output.DailyBreakdown))
	for i, d := range output.DailyBreakdown {
		days[i] = DailyStatResponse{
			Day:      d.Day,
			Expenses: d.Expenses.InexactFloat64(),
			Income:   d.Income.InexactFloat64(),
		}
	}

	return MonthlyStatsResponse{
		TotalIncome:       output.TotalIncome.InexactFloat64(),
		TotalExpenses:     output.TotalExpenses.InexactFloat64(),
		NetBalance:        output.NetBalance.InexactFloat64(),
		CategoryBreakdown: categories,
		DailyBreakdown:    days,
		TransactionCount:  output.TransactionCount,
	}
}
