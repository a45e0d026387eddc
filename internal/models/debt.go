package models

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/senior-finance/backend/internal/finance"
	"github.com/senior-finance/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Debt stores loans and credit cards in a single table. Type decides
// which of the loan fields are used.
type Debt struct {
	DefaultModel
	Type        finance.DebtType
	Name        string
	TotalAmount decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // Loans: total amount at creation. Cards: current statement balance
	DueDateDay  int

	// Loans only
	MonthlyPayment        decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	TotalInstallments     int
	RemainingInstallments int
	StartDate             types.Date
}

func (d *Debt) BeforeSave(_ *gorm.DB) error {
	return d.Validate()
}

// Validate trims the name, derives the total amount of loans that
// do not set it and validates the debt.
func (d *Debt) Validate() error {
	d.Name = strings.TrimSpace(d.Name)
	if d.Name == "" {
		return ErrNameEmpty
	}

	if d.Type == finance.DebtTypeLoan && d.TotalAmount.IsZero() {
		d.TotalAmount = d.MonthlyPayment.Mul(decimal.NewFromInt(int64(d.TotalInstallments)))
	}

	_, err := d.Domain()
	return err
}

// Domain converts the row to a Loan or a RevolvingAccount.
//
// Rows that do not satisfy the invariants of their variant
// return finance.ErrMalformedDebt.
func (d Debt) Domain() (finance.Debt, error) {
	base := finance.DebtBase{
		ID:          d.ID,
		Name:        d.Name,
		TotalAmount: d.TotalAmount,
		DueDateDay:  d.DueDateDay,
	}

	var debt finance.Debt
	switch d.Type {
	case finance.DebtTypeLoan:
		debt = finance.Loan{
			DebtBase:              base,
			MonthlyPayment:        d.MonthlyPayment,
			TotalInstallments:     d.TotalInstallments,
			RemainingInstallments: d.RemainingInstallments,
			StartDate:             d.StartDate,
		}
	case finance.DebtTypeCreditCard:
		debt = finance.RevolvingAccount{DebtBase: base}
	default:
		return nil, fmt.Errorf("%w: type must be '%s' or '%s', got '%s'", finance.ErrMalformedDebt, finance.DebtTypeLoan, finance.DebtTypeCreditCard, d.Type)
	}

	if err := debt.Validate(); err != nil {
		return nil, err
	}

	return debt, nil
}

// Loaded converts a row read from the database.
//
// Rows are validated on save. A malformed row was modified outside of the
// API and is reported as a server error.
func (d Debt) Loaded() (finance.Debt, error) {
	debt, err := d.Domain()
	if err != nil {
		log.Error().Str("debt", d.ID.String()).Err(err).Msg("stored debt is malformed")
		return nil, fmt.Errorf("%w: debt %s: %w", ErrGeneral, d.ID, err)
	}

	return debt, nil
}
