package finance

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
	"github.com/senior-finance/backend/internal/types"
	"github.com/shopspring/decimal"
)

// swagger:enum ObligationKind
type ObligationKind string

const (
	KindLoanPayment   ObligationKind = "loan_payment"
	KindCardStatement ObligationKind = "card_statement"
)

// Categories assigned to derived obligations.
const (
	CategoryLoanInstallment = "Kredi Taksiti"
	CategoryCreditCard      = "Kredi Kartı"
	CategoryDebt            = "Borç/Kredi"
)

// VirtualObligation is a payment expected from a debt. It is derived on
// every request and never persisted.
type VirtualObligation struct {
	SourceDebtID       uuid.UUID
	Title              string
	Amount             decimal.Decimal
	DueDate            types.Date
	DueDateDescription string
	Overdue            bool
	Category           string
	Kind               ObligationKind

	// Position in a loan schedule, both zero for anything else
	Installment  int
	Installments int
}

// ID identifies the obligation in merged lists. It never collides with
// transaction IDs.
func (v VirtualObligation) ID() string {
	return "debt-" + v.SourceDebtID.String()
}

// DisplayItem is either a real Transaction or a VirtualObligation.
// Exactly one of the fields is set.
type DisplayItem struct {
	Transaction *Transaction
	Obligation  *VirtualObligation
}

func (i DisplayItem) IsVirtual() bool {
	return i.Obligation != nil
}

// Actionable reports whether the item can be marked as paid directly.
// Virtual items must be handled on the debt they are derived from.
func (i DisplayItem) Actionable() bool {
	return !i.IsVirtual()
}

// DebtID returns the debt a virtual item redirects to.
func (i DisplayItem) DebtID() (uuid.UUID, bool) {
	if i.Obligation == nil {
		return uuid.Nil, false
	}
	return i.Obligation.SourceDebtID, true
}

func (i DisplayItem) ID() string {
	if i.Obligation != nil {
		return i.Obligation.ID()
	}
	return i.Transaction.ID.String()
}

func (i DisplayItem) Title() string {
	if i.Obligation != nil {
		return i.Obligation.Title
	}
	return i.Transaction.Title
}

func (i DisplayItem) Amount() decimal.Decimal {
	if i.Obligation != nil {
		return i.Obligation.Amount
	}
	return i.Transaction.Amount
}

func (i DisplayItem) Category() string {
	if i.Obligation != nil {
		return i.Obligation.Category
	}
	return i.Transaction.Category
}

func (i DisplayItem) Date() types.Date {
	if i.Obligation != nil {
		return i.Obligation.DueDate
	}
	return i.Transaction.Date
}

// IsRecurring is true for recurring transactions and for every virtual item.
func (i DisplayItem) IsRecurring() bool {
	if i.Obligation != nil {
		return true
	}
	return i.Transaction.IsRecurring
}

// UpcomingObligations derives the obligation of the month of asOf for every
// open debt. Fully paid loans yield nothing.
func UpcomingObligations(debts []Debt, asOf types.Date) []VirtualObligation {
	obligations := make([]VirtualObligation, 0, len(debts))

	for _, debt := range debts {
		var o VirtualObligation

		switch d := debt.(type) {
		case Loan:
			if d.RemainingInstallments <= 0 {
				continue
			}

			o = VirtualObligation{
				Title:    fmt.Sprintf("%s (Taksit)", d.Name),
				Amount:   d.MonthlyPayment,
				Category: CategoryLoanInstallment,
				Kind:     KindLoanPayment,
			}
		case RevolvingAccount:
			o = VirtualObligation{
				Title:    fmt.Sprintf("%s (Ekstre)", d.Name),
				Amount:   d.TotalAmount,
				Category: CategoryCreditCard,
				Kind:     KindCardStatement,
			}
		default:
			unknownDebt(debt)
		}

		base := debt.Common()
		o.SourceDebtID = base.ID
		o.DueDate = asOf.CalendarMonth().Date(base.DueDateDay)
		o.Overdue = asOf.Day() > base.DueDateDay
		o.DueDateDescription = dueDescription(asOf, base.DueDateDay)

		obligations = append(obligations, o)
	}

	return obligations
}

// dueDescription is "Gecikti: 15 Temmuz" after the due day has passed in
// the month of asOf and "15 Temmuz" otherwise.
func dueDescription(asOf types.Date, dueDay int) string {
	text := strconv.Itoa(dueDay) + " " + MonthName(asOf.Month())
	if asOf.Day() > dueDay {
		return "Gecikti: " + text
	}
	return text
}

// MergeObligations returns the transactions unmodified and in input order,
// followed by the upcoming obligation of every open debt in debt order.
//
// The result is not sorted by date. Callers group by category.
func MergeObligations(transactions []Transaction, debts []Debt, asOf types.Date) []DisplayItem {
	obligations := UpcomingObligations(debts, asOf)
	return merge(transactions, obligations)
}

// LedgerObligations is UpcomingObligations for the expense ledger. Items
// are categorised as debt payments and dated asOf.
func LedgerObligations(debts []Debt, asOf types.Date) []VirtualObligation {
	obligations := UpcomingObligations(debts, asOf)
	for i := range obligations {
		obligations[i].Category = CategoryDebt
		obligations[i].DueDate = asOf
	}

	return obligations
}

// MergeLedger merges transactions with the ledger obligations of debts.
func MergeLedger(transactions []Transaction, debts []Debt, asOf types.Date) []DisplayItem {
	return merge(transactions, LedgerObligations(debts, asOf))
}

func merge(transactions []Transaction, obligations []VirtualObligation) []DisplayItem {
	items := make([]DisplayItem, 0, len(transactions)+len(obligations))

	for i := range transactions {
		items = append(items, DisplayItem{Transaction: &transactions[i]})
	}

	for i := range obligations {
		items = append(items, DisplayItem{Obligation: &obligations[i]})
	}

	return items
}

// FilterRecurring keeps recurring transactions and all virtual items.
func FilterRecurring(items []DisplayItem) []DisplayItem {
	return filter(items, DisplayItem.IsRecurring)
}

// FilterCategory keeps items of the category.
func FilterCategory(items []DisplayItem, category string) []DisplayItem {
	return filter(items, func(i DisplayItem) bool {
		return i.Category() == category
	})
}

// FilterTitle keeps items whose title matches the glob pattern.
// "*" matches any sequence of characters.
func FilterTitle(items []DisplayItem, pattern string) []DisplayItem {
	return filter(items, func(i DisplayItem) bool {
		return glob.Glob(pattern, i.Title())
	})
}

func filter(items []DisplayItem, keep func(DisplayItem) bool) []DisplayItem {
	filtered := make([]DisplayItem, 0, len(items))
	for _, item := range items {
		if keep(item) {
			filtered = append(filtered, item)
		}
	}

	return filtered
}

// UpcomingTotal sums the amounts of all unpaid items: virtual items and
// transactions that are not completed.
func UpcomingTotal(items []DisplayItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		if item.Transaction != nil && item.Transaction.Status == StatusCompleted {
			continue
		}
		total = total.Add(item.Amount())
	}

	return total
}
