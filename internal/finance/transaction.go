package finance

import (
	"github.com/google/uuid"
	"github.com/senior-finance/backend/internal/types"
	"github.com/shopspring/decimal"
)

// swagger:enum TransactionType
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// swagger:enum TransactionStatus
type TransactionStatus string

const (
	StatusCompleted TransactionStatus = "completed"
	StatusUnpaid    TransactionStatus = "unpaid"
	StatusAutopay   TransactionStatus = "autopay"
)

// Transaction is a real, persisted income or expense.
type Transaction struct {
	ID          uuid.UUID
	Title       string
	Amount      decimal.Decimal
	Category    string
	Type        TransactionType
	Date        types.Date
	IsRecurring bool
	Status      TransactionStatus
	DueDateText string // Free text due date of a recurring bill, e.g. "26 Ekim"
	Icon        string
}
