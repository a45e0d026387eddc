package models

import (
	"fmt"
	"strings"

	"github.com/senior-finance/backend/internal/finance"
	"github.com/senior-finance/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DefaultIcon is the icon of transactions that do not set one.
const DefaultIcon = "payments"

// Transaction is an income or an expense. Recurring expenses are bills.
type Transaction struct {
	DefaultModel
	Title       string
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Category    string          `gorm:"index"`
	Type        finance.TransactionType
	Date        types.Date `gorm:"index"`
	IsRecurring bool
	Status      finance.TransactionStatus
	DueDateText string // Free text due date for bills, e.g. "26 Ekim"
	Icon        string // Material Symbol name
}

func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	return t.Validate()
}

// Validate
//   - trims whitespace from string fields
//   - sets defaults for date, status and icon
//   - validates type, status and amount
//
// It is called on every save. Updates of single fields need to call it
// on the updated resource explicitly.
func (t *Transaction) Validate() error {
	t.Title = strings.TrimSpace(t.Title)
	t.Category = strings.TrimSpace(t.Category)
	t.DueDateText = strings.TrimSpace(t.DueDateText)

	if t.Title == "" {
		return ErrTitleEmpty
	}

	if t.Date.IsZero() {
		t.Date = types.Today()
	}

	if t.Status == "" {
		t.Status = finance.StatusCompleted
	}

	if t.Icon == "" {
		t.Icon = DefaultIcon
	}

	if t.Type != finance.TypeIncome && t.Type != finance.TypeExpense {
		return fmt.Errorf("%w, got '%s'", ErrTransactionTypeInvalid, t.Type)
	}

	switch t.Status {
	case finance.StatusCompleted, finance.StatusUnpaid, finance.StatusAutopay:
	default:
		return fmt.Errorf("%w, got '%s'", ErrTransactionStatusInvalid, t.Status)
	}

	if !t.Amount.IsPositive() {
		return ErrTransactionAmountInvalid
	}

	return nil
}

// Domain converts the transaction to its representation in the finance package.
func (t Transaction) Domain() finance.Transaction {
	return finance.Transaction{
		ID:          t.ID,
		Title:       t.Title,
		Amount:      t.Amount,
		Category:    t.Category,
		Type:        t.Type,
		Date:        t.Date,
		IsRecurring: t.IsRecurring,
		Status:      t.Status,
		DueDateText: t.DueDateText,
		Icon:        t.Icon,
	}
}
