package overview

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/senior-finance/backend/internal/finance"
)

// fetch loads transactions and debts concurrently and returns when both
// are done. The first error cancels the other fetch and is returned.
func fetch(ctx context.Context, source Source, filter TransactionFilter) ([]finance.Transaction, []finance.Debt, error) {
	var (
		transactions []finance.Transaction
		debts        []finance.Debt
	)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		transactions, err = source.FetchTransactions(ctx, filter)
		return
	})

	g.Go(func() (err error) {
		debts, err = source.FetchDebts(ctx)
		return
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return transactions, debts, nil
}
