package finance

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/senior-finance/backend/internal/types"
	"github.com/shopspring/decimal"
)

// swagger:enum DebtType
type DebtType string

const (
	DebtTypeLoan       DebtType = "loan"
	DebtTypeCreditCard DebtType = "credit_card"
)

// Debt is either a Loan or a RevolvingAccount.
//
// The interface is sealed. Consumers switch on the concrete type:
//
//	switch d := debt.(type) {
//	case Loan:
//	case RevolvingAccount:
//	}
type Debt interface {
	Common() DebtBase
	Type() DebtType
	Validate() error

	sealed()
}

// DebtBase holds the fields shared by all debts.
type DebtBase struct {
	ID          uuid.UUID
	Name        string
	TotalAmount decimal.Decimal // Loans: amount at creation. Cards: current statement balance
	DueDateDay  int             // Day of month the payment is due, 1 to 31
}

func (b DebtBase) validate() error {
	if b.DueDateDay < 1 || b.DueDateDay > 31 {
		return fmt.Errorf("%w: due date day %d of %q is not between 1 and 31", ErrMalformedDebt, b.DueDateDay, b.Name)
	}

	if b.TotalAmount.IsNegative() {
		return fmt.Errorf("%w: total amount of %q is negative", ErrMalformedDebt, b.Name)
	}

	return nil
}

// MaxInstallments is the highest number of installments of a loan, 50 years
// of monthly payments.
const MaxInstallments = 600

// Loan is a debt paid back in a fixed number of equal monthly installments.
type Loan struct {
	DebtBase
	MonthlyPayment        decimal.Decimal
	TotalInstallments     int
	StartDate             types.Date
	RemainingInstallments int
}

func (l Loan) Common() DebtBase { return l.DebtBase }
func (Loan) Type() DebtType     { return DebtTypeLoan }
func (Loan) sealed()            {}

// Validate checks the invariants of the loan.
func (l Loan) Validate() error {
	if err := l.validate(); err != nil {
		return err
	}

	if !l.MonthlyPayment.IsPositive() {
		return fmt.Errorf("%w: loan %q has no monthly payment", ErrMalformedDebt, l.Name)
	}

	if l.TotalInstallments < 1 {
		return fmt.Errorf("%w: loan %q must have at least one installment", ErrMalformedDebt, l.Name)
	}

	if l.TotalInstallments > MaxInstallments {
		return fmt.Errorf("%w: loan %q has more than %d installments", ErrMalformedDebt, l.Name, MaxInstallments)
	}

	if l.RemainingInstallments < 0 || l.RemainingInstallments > l.TotalInstallments {
		return fmt.Errorf("%w: loan %q has %d remaining of %d installments", ErrMalformedDebt, l.Name, l.RemainingInstallments, l.TotalInstallments)
	}

	if l.StartDate.IsZero() {
		return fmt.Errorf("%w: loan %q has no start date", ErrMalformedDebt, l.Name)
	}

	return nil
}

// PlannedTotal is the sum of all installments.
func (l Loan) PlannedTotal() decimal.Decimal {
	return l.MonthlyPayment.Mul(decimal.NewFromInt(int64(l.TotalInstallments)))
}

// RevolvingAccount is a credit card with a recurring statement balance.
type RevolvingAccount struct {
	DebtBase
}

func (r RevolvingAccount) Common() DebtBase { return r.DebtBase }
func (RevolvingAccount) Type() DebtType     { return DebtTypeCreditCard }
func (RevolvingAccount) sealed()            {}

// Validate checks the invariants of the account.
func (r RevolvingAccount) Validate() error {
	return r.validate()
}

// unknownDebt panics for variants outside of Loan and RevolvingAccount,
// e.g. pointers to them.
func unknownDebt(d Debt) {
	panic(fmt.Sprintf("finance: unsupported debt variant %T", d))
}
