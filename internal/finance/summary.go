package finance

import (
	"github.com/shopspring/decimal"
)

// ChartCategories are the expense categories shown on the dashboard chart.
var ChartCategories = []string{"Mutfak", "Sağlık", "Ulaşım", "Diğer"}

// CategoryShare is the truncated percentage of all expenses spent in a category.
type CategoryShare struct {
	Category   string
	Percentage int64
}

// Summary aggregates a set of transactions.
type Summary struct {
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	TotalBalance decimal.Decimal
	Chart        []CategoryShare
}

// Summarize sums up income and expenses. Chart shares are zero when there
// are no expenses.
func Summarize(transactions []Transaction) Summary {
	income := decimal.Zero
	expense := decimal.Zero
	byCategory := make(map[string]decimal.Decimal)

	for _, t := range transactions {
		switch t.Type {
		case TypeIncome:
			income = income.Add(t.Amount)
		case TypeExpense:
			expense = expense.Add(t.Amount)
			byCategory[t.Category] = byCategory[t.Category].Add(t.Amount)
		}
	}

	chart := make([]CategoryShare, 0, len(ChartCategories))
	for _, category := range ChartCategories {
		share := CategoryShare{Category: category}
		if expense.IsPositive() {
			share.Percentage = byCategory[category].Mul(decimal.NewFromInt(100)).Div(expense).Truncate(0).IntPart()
		}
		chart = append(chart, share)
	}

	return Summary{
		TotalIncome:  income,
		TotalExpense: expense,
		TotalBalance: income.Sub(expense),
		Chart:        chart,
	}
}
