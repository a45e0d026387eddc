package models

import (
	"context"

	"github.com/senior-finance/backend/internal/finance"
	"github.com/senior-finance/backend/internal/overview"
	"github.com/senior-finance/backend/internal/types"
	"gorm.io/gorm"
)

// Store reads the data for the views from the database.
type Store struct {
	DB *gorm.DB
}

var _ overview.Source = Store{}

// TransactionQuery applies the filter to a query for transactions. Results
// are ordered by date, newest first.
func TransactionQuery(db *gorm.DB, filter overview.TransactionFilter) *gorm.DB {
	query := db.Where(&Transaction{
		Type:        filter.Type,
		Category:    filter.Category,
		IsRecurring: filter.Recurring,
	}).Order("date DESC, created_at DESC")

	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	return query
}

func (s Store) FetchTransactions(ctx context.Context, filter overview.TransactionFilter) ([]finance.Transaction, error) {
	var rows []Transaction
	err := TransactionQuery(s.DB.WithContext(ctx), filter).Find(&rows).Error
	if err != nil {
		return nil, err
	}

	transactions := make([]finance.Transaction, 0, len(rows))
	for _, row := range rows {
		transactions = append(transactions, row.Domain())
	}

	return transactions, nil
}

// FetchDebts returns all debts. A single malformed row fails the whole fetch
// with ErrGeneral.
func (s Store) FetchDebts(ctx context.Context) ([]finance.Debt, error) {
	var rows []Debt
	err := s.DB.WithContext(ctx).Order("created_at").Find(&rows).Error
	if err != nil {
		return nil, err
	}

	debts := make([]finance.Debt, 0, len(rows))
	for _, row := range rows {
		debt, err := row.Loaded()
		if err != nil {
			return nil, err
		}
		debts = append(debts, debt)
	}

	return debts, nil
}

func (s Store) FetchBudgetStatuses(ctx context.Context, month types.Month) ([]finance.BudgetStatus, error) {
	db := s.DB.WithContext(ctx)

	var budgets []Budget
	err := db.Order("category").Find(&budgets).Error
	if err != nil {
		return nil, err
	}

	statuses := make([]finance.BudgetStatus, 0, len(budgets))
	for _, budget := range budgets {
		status, err := budget.Status(db, month)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, status)
	}

	return statuses, nil
}
