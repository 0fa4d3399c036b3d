package fixed

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
)

// ItemDetail is one named amount inside a category group.
type ItemDetail struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

// CategoryGroup is the breakdown shape consumed by the charts: a
// category with its total and the individual lines under it.
type CategoryGroup struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
	Items []ItemDetail    `json:"items"`
}

// groupByCategory folds flat entries into per-category groups, summing
// amounts and keeping each line under its category. Result is sorted by
// category total descending; equal totals are ordered by category name
// ascending so the output is reproducible.
func groupByCategory(entries []adapter.FixedEntry) []CategoryGroup {
	byName := make(map[string]*CategoryGroup)
	order := make([]string, 0, len(entries))

	for _, e := range entries {
		group, ok := byName[e.CategoryName]
		if !ok {
			group = &CategoryGroup{Name: e.CategoryName}
			byName[e.CategoryName] = group
			order = append(order, e.CategoryName)
		}
		group.Value = group.Value.Add(e.Amount)
		group.Items = append(group.Items, ItemDetail{Name: e.Name, Value: e.Amount})
	}

	groups := make([]CategoryGroup, 0, len(order))
	for _, name := range order {
		groups = append(groups, *byName[name])
	}

	sort.SliceStable(groups, func(i, j int) bool {
		if !groups[i].Value.Equal(groups[j].Value) {
			return groups[i].Value.GreaterThan(groups[j].Value)
		}
		return groups[i].Name < groups[j].Name
	})

	return groups
}

// sumEntries adds up the amounts of flat entries.
func sumEntries(entries []adapter.FixedEntry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.Amount)
	}
	return total
}
