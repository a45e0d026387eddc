// Package overview builds the views of the application from a Source.
//
// Data is fetched concurrently and joined before any obligation is derived.
// When a fetch fails the whole view fails, partial views are never returned.
package overview

import (
	"context"

	"github.com/senior-finance/backend/internal/finance"
	"github.com/senior-finance/backend/internal/types"
)

// TransactionFilter restricts the transactions fetched from a Source.
// Zero values do not filter.
type TransactionFilter struct {
	Type      finance.TransactionType
	Category  string
	Recurring bool // Only recurring transactions
	Limit     int  // Maximum number of transactions, 0 for no limit
	Offset    int
}

// Source provides the persisted data the views are built from.
type Source interface {
	FetchTransactions(ctx context.Context, filter TransactionFilter) ([]finance.Transaction, error)
	FetchDebts(ctx context.Context) ([]finance.Debt, error)
	FetchBudgetStatuses(ctx context.Context, month types.Month) ([]finance.BudgetStatus, error)
}
