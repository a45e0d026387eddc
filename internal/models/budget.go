package models

import (
	"strings"

	"github.com/senior-finance/backend/internal/finance"
	"github.com/senior-finance/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Budget is the spending limit for a category.
type Budget struct {
	DefaultModel
	Category string          `gorm:"uniqueIndex"`
	Amount   decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
}

func (b *Budget) BeforeSave(_ *gorm.DB) error {
	return b.Validate()
}

// Validate trims the category and checks the limit.
func (b *Budget) Validate() error {
	b.Category = strings.TrimSpace(b.Category)
	if b.Category == "" {
		return ErrCategoryEmpty
	}

	// Evaluate validates the limit
	_, err := finance.Evaluate(b.Category, decimal.Zero, b.Amount)
	return err
}

// Spent returns the sum of all expenses in the category of the budget
// during the month.
func (b Budget) Spent(db *gorm.DB, month types.Month) (decimal.Decimal, error) {
	var spent decimal.NullDecimal

	err := db.
		Table("transactions").
		Select("SUM(amount)").
		Where(&Transaction{
			Category: b.Category,
			Type:     finance.TypeExpense,
		}).
		Where("date >= date(?) AND date < date(?)", month, month.AddDate(0, 1)).
		Row().
		Scan(&spent)
	if err != nil {
		return decimal.Zero, err
	}

	// If no transactions are found, the value is nil
	if !spent.Valid {
		return decimal.Zero, nil
	}

	return spent.Decimal, nil
}

// Status evaluates the budget for the month.
func (b Budget) Status(db *gorm.DB, month types.Month) (finance.BudgetStatus, error) {
	spent, err := b.Spent(db, month)
	if err != nil {
		return finance.BudgetStatus{}, err
	}

	return finance.Evaluate(b.Category, spent, b.Amount)
}
