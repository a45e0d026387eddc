package finance

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/senior-finance/backend/internal/types"
	"github.com/shopspring/decimal"
)

// swagger:enum EventKind
type EventKind string

const (
	EventIncome      EventKind = "income"
	EventExpense     EventKind = "expense"
	EventRecurring   EventKind = "recurring"
	EventLoanPayment EventKind = "loan_payment"
	EventCardPayment EventKind = "card_payment"
)

// CalendarEvent is an entry on the calendar.
type CalendarEvent struct {
	SourceID uuid.UUID // Transaction or debt the event belongs to
	Title    string
	Date     types.Date
	Amount   decimal.Decimal
	Category string
	Kind     EventKind
}

// Calendar projects transactions and debts onto the calendar.
//
// Loans contribute their full schedule, credit cards cardHorizon statements
// starting with the month of from.
func Calendar(transactions []Transaction, debts []Debt, from types.Date, cardHorizon int) ([]CalendarEvent, error) {
	if err := checkHorizon(cardHorizon); err != nil {
		return nil, err
	}

	events := make([]CalendarEvent, 0, len(transactions))

	for _, t := range transactions {
		kind := EventExpense
		if t.Type == TypeIncome {
			kind = EventIncome
		}
		if t.IsRecurring {
			kind = EventRecurring
		}

		events = append(events, CalendarEvent{
			SourceID: t.ID,
			Title:    fmt.Sprintf("%s (%s₺)", t.Title, FormatWholeAmount(t.Amount)),
			Date:     t.Date,
			Amount:   t.Amount,
			Category: t.Category,
			Kind:     kind,
		})
	}

	for _, debt := range debts {
		var (
			obligations []VirtualObligation
			kind        EventKind
		)

		switch d := debt.(type) {
		case Loan:
			obligations = Schedule(d)
			kind = EventLoanPayment
		case RevolvingAccount:
			var err error
			obligations, err = ProjectStatements(d, from, cardHorizon)
			if err != nil {
				return nil, err
			}
			kind = EventCardPayment
		default:
			unknownDebt(debt)
		}

		for _, o := range obligations {
			events = append(events, CalendarEvent{
				SourceID: o.SourceDebtID,
				Title:    o.Title,
				Date:     o.DueDate,
				Amount:   o.Amount,
				Category: o.Category,
				Kind:     kind,
			})
		}
	}

	return events, nil
}
