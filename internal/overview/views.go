package overview

import (
	"context"

	"github.com/senior-finance/backend/internal/finance"
	"github.com/senior-finance/backend/internal/types"
	"github.com/shopspring/decimal"
)

// CalendarTransactionLimit is the number of transactions shown on the calendar.
const CalendarTransactionLimit = 200

type DashboardView struct {
	Summary       finance.Summary
	Upcoming      []finance.DisplayItem // Recurring bills followed by debt obligations
	UpcomingTotal decimal.Decimal
}

// Dashboard summarizes all transactions and lists what is due in the month of asOf.
func Dashboard(ctx context.Context, source Source, asOf types.Date) (DashboardView, error) {
	transactions, debts, err := fetch(ctx, source, TransactionFilter{})
	if err != nil {
		return DashboardView{}, err
	}

	bills := make([]finance.Transaction, 0)
	for _, t := range transactions {
		if t.IsRecurring {
			bills = append(bills, t)
		}
	}

	upcoming := finance.MergeObligations(bills, debts, asOf)

	return DashboardView{
		Summary:       finance.Summarize(transactions),
		Upcoming:      upcoming,
		UpcomingTotal: finance.UpcomingTotal(upcoming),
	}, nil
}

// Upcoming merges the recurring bills with the obligations of all open debts.
func Upcoming(ctx context.Context, source Source, asOf types.Date) ([]finance.DisplayItem, error) {
	bills, debts, err := fetch(ctx, source, TransactionFilter{Recurring: true})
	if err != nil {
		return nil, err
	}

	return finance.MergeObligations(bills, debts, asOf), nil
}

// ExpenseQuery filters the expense ledger.
type ExpenseQuery struct {
	Category  string
	Recurring bool   // Recurring transactions and debt payments only
	Match     string // Glob pattern for the title
	Limit     int
	Offset    int
}

// Expenses lists expense transactions followed by the debt payments of the
// month of asOf. Income is not part of the ledger.
func Expenses(ctx context.Context, source Source, query ExpenseQuery, asOf types.Date) ([]finance.DisplayItem, error) {
	transactions, debts, err := fetch(ctx, source, TransactionFilter{Type: finance.TypeExpense, Limit: query.Limit, Offset: query.Offset})
	if err != nil {
		return nil, err
	}

	items := finance.MergeLedger(transactions, debts, asOf)

	if query.Recurring {
		items = finance.FilterRecurring(items)
	}

	if query.Category != "" {
		items = finance.FilterCategory(items, query.Category)
	}

	if query.Match != "" {
		items = finance.FilterTitle(items, query.Match)
	}

	return items, nil
}

// Calendar projects recent transactions and all debts onto the calendar.
func Calendar(ctx context.Context, source Source, from types.Date, cardHorizon int) ([]finance.CalendarEvent, error) {
	transactions, debts, err := fetch(ctx, source, TransactionFilter{Limit: CalendarTransactionLimit})
	if err != nil {
		return nil, err
	}

	return finance.Calendar(transactions, debts, from, cardHorizon)
}

// Budgets returns the status of all budgets for the month.
func Budgets(ctx context.Context, source Source, month types.Month) ([]finance.BudgetStatus, error) {
	return source.FetchBudgetStatuses(ctx, month)
}
