package finance

import (
	"fmt"

	"github.com/senior-finance/backend/internal/types"
)

// DefaultStatementHorizon is the number of months projected for credit cards
// when no horizon is requested.
const DefaultStatementHorizon = 6

// MaxHorizonMonths is the longest projection horizon, ten years.
const MaxHorizonMonths = 120

// ProjectStatements returns one statement per calendar month for the
// horizon, starting with the month of from.
//
// Every statement is for the current balance of the account. Due days past
// the end of a month are clamped to its last day.
func ProjectStatements(account RevolvingAccount, from types.Date, horizonMonths int) ([]VirtualObligation, error) {
	if err := checkHorizon(horizonMonths); err != nil {
		return nil, err
	}

	statements := make([]VirtualObligation, 0, horizonMonths)
	start := from.CalendarMonth()

	for i := 0; i < horizonMonths; i++ {
		statements = append(statements, VirtualObligation{
			SourceDebtID: account.ID,
			Title:        fmt.Sprintf("%s Ekstre", account.Name),
			Amount:       account.TotalAmount,
			DueDate:      start.AddDate(0, i).Date(account.DueDateDay),
			Category:     CategoryCreditCard,
			Kind:         KindCardStatement,
		})
	}

	return statements, nil
}

func checkHorizon(months int) error {
	if months < 0 || months > MaxHorizonMonths {
		return fmt.Errorf("%w: got %d", ErrInvalidHorizon, months)
	}

	return nil
}
