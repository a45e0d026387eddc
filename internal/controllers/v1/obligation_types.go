package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/senior-finance/backend/internal/finance"
	"github.com/senior-finance/backend/internal/models"
	"github.com/senior-finance/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Icons of virtual items, as Material Symbol names.
const (
	iconLoan       = "real_estate_agent"
	iconCreditCard = "credit_card"
)

type ObligationLinks struct {
	Debt string `json:"debt" example:"https://example.com/api/v1/debts/0f2ea4e6-2a4b-49a4-a2f5-ed8e11db4f6e"` // The debt the obligation is derived from
}

// Obligation is a payment derived from a debt. Obligations are never
// persisted and cannot be edited.
type Obligation struct {
	ID                 string                 `json:"id" example:"debt-0f2ea4e6-2a4b-49a4-a2f5-ed8e11db4f6e"`      // Identifier, unique among obligations of different debts
	DebtID             uuid.UUID              `json:"debtId" example:"0f2ea4e6-2a4b-49a4-a2f5-ed8e11db4f6e"`       // ID of the debt
	Title              string                 `json:"title" example:"İhtiyaç Kredisi (3/12)"`                      // Title
	Amount             decimal.Decimal        `json:"amount" example:"1000"`                                       // Amount due
	DueDate            types.Date             `json:"dueDate" example:"2024-03-15" swaggertype:"primitive,string"` // Date the payment is due
	DueDateDescription string                 `json:"dueDateDescription" example:"Gecikti: 15 Ekim"`               // Human readable due date, only set for upcoming obligations
	Overdue            bool                   `json:"overdue" example:"false"`                                     // Is the due day of the month already over?
	Category           string                 `json:"category" example:"Kredi Taksiti"`                            // Category
	Kind               finance.ObligationKind `json:"kind" example:"loan_payment"`                                 // Loan payment or card statement
	Installment        int                    `json:"installment" example:"3"`                                     // Position in the loan schedule, 0 for card statements
	Installments       int                    `json:"installments" example:"12"`                                   // Length of the loan schedule, 0 for card statements
	Actionable         bool                   `json:"actionable" example:"false"`                                  // Always false. Obligations are paid on the debt
	Links              ObligationLinks        `json:"links"`
}

func newObligation(c *gin.Context, o finance.VirtualObligation) Obligation {
	url := c.GetString(string(models.DBContextURL))

	return Obligation{
		ID:                 o.ID(),
		DebtID:             o.SourceDebtID,
		Title:              o.Title,
		Amount:             o.Amount,
		DueDate:            o.DueDate,
		DueDateDescription: o.DueDateDescription,
		Overdue:            o.Overdue,
		Category:           o.Category,
		Kind:               o.Kind,
		Installment:        o.Installment,
		Installments:       o.Installments,
		Links: ObligationLinks{
			Debt: fmt.Sprintf("%s/v1/debts/%s", url, o.SourceDebtID),
		},
	}
}

type ObligationListResponse struct {
	Data  []Obligation `json:"data"`                                                                   // List of obligations
	Error *string      `json:"error" example:"the debt is not a loan and has no installment schedule"` // The error, if any occurred
}

type ItemLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"` // The transaction, or the debt for virtual items
}

// Item is an entry in a merged list. It is either a transaction or
// a virtual item derived from a debt.
type Item struct {
	ID          string                    `json:"id" example:"debt-0f2ea4e6-2a4b-49a4-a2f5-ed8e11db4f6e"`   // ID of the transaction, "debt-" and the debt ID for virtual items
	IsVirtual   bool                      `json:"isVirtual" example:"true"`                                 // Is the item derived from a debt?
	Actionable  bool                      `json:"actionable" example:"false"`                               // Can the item be marked as paid? Virtual items redirect to their debt instead
	DebtID      *uuid.UUID                `json:"debtId" example:"0f2ea4e6-2a4b-49a4-a2f5-ed8e11db4f6e"`    // The debt to redirect to for virtual items
	Title       string                    `json:"title" example:"Taşıt Kredisi (Taksit)"`                   // Title
	Amount      decimal.Decimal           `json:"amount" example:"2000"`                                    // Amount
	Category    string                    `json:"category" example:"Kredi Taksiti"`                         // Category
	Date        types.Date                `json:"date" example:"2024-10-05" swaggertype:"primitive,string"` // Date of the transaction, due date of virtual items
	Type        finance.TransactionType   `json:"type" example:"expense"`                                   // Virtual items are always expenses
	IsRecurring bool                      `json:"isRecurring" example:"true"`                               // Always true for virtual items
	Status      finance.TransactionStatus `json:"status" example:"unpaid"`                                  // Status of the transaction, "unpaid" for virtual items
	DueDateText string                    `json:"dueDateText" example:"Gecikti: 5 Ekim"`                    // Human readable due date
	Overdue     bool                      `json:"overdue" example:"true"`                                   // Is the virtual item overdue?
	Kind        finance.ObligationKind    `json:"kind,omitempty" example:"loan_payment"`                    // Kind of the virtual item
	Icon        string                    `json:"icon" example:"real_estate_agent"`                         // Name of a Material Symbol
	Links       ItemLinks                 `json:"links"`
}

func newItem(c *gin.Context, item finance.DisplayItem) Item {
	url := c.GetString(string(models.DBContextURL))

	if t := item.Transaction; t != nil {
		return Item{
			ID:          item.ID(),
			Actionable:  item.Actionable(),
			Title:       t.Title,
			Amount:      t.Amount,
			Category:    t.Category,
			Date:        t.Date,
			Type:        t.Type,
			IsRecurring: t.IsRecurring,
			Status:      t.Status,
			DueDateText: t.DueDateText,
			Icon:        t.Icon,
			Links: ItemLinks{
				Self: fmt.Sprintf("%s/v1/transactions/%s", url, t.ID),
			},
		}
	}

	o := item.Obligation
	debtID, _ := item.DebtID()

	icon := iconLoan
	if o.Kind == finance.KindCardStatement {
		icon = iconCreditCard
	}

	return Item{
		ID:          item.ID(),
		IsVirtual:   true,
		Actionable:  item.Actionable(),
		DebtID:      &debtID,
		Title:       o.Title,
		Amount:      o.Amount,
		Category:    o.Category,
		Date:        o.DueDate,
		Type:        finance.TypeExpense,
		IsRecurring: item.IsRecurring(),
		Status:      finance.StatusUnpaid,
		DueDateText: o.DueDateDescription,
		Overdue:     o.Overdue,
		Kind:        o.Kind,
		Icon:        icon,
		Links: ItemLinks{
			Self: fmt.Sprintf("%s/v1/debts/%s", url, debtID),
		},
	}
}

func newItems(c *gin.Context, items []finance.DisplayItem) []Item {
	data := make([]Item, 0, len(items))
	for _, item := range items {
		data = append(data, newItem(c, item))
	}

	return data
}

type ItemListResponse struct {
	Data  []Item  `json:"data"`                                                   // Transactions followed by virtual items
	Error *string `json:"error" example:"the date is out of the supported range"` // The error, if any occurred
}
