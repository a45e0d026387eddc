package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/senior-finance/backend/internal/finance"
	"github.com/senior-finance/backend/internal/models"
	"github.com/senior-finance/backend/internal/types"
	"github.com/shopspring/decimal"
)

type TransactionEditable struct {
	Title string `json:"title" example:"Elektrik Faturası"` // Title of the transaction

	// The maximum value is "999999999999.99999999", swagger unfortunately rounds this.
	Amount decimal.Decimal `json:"amount" example:"450" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // The amount of the transaction

	Category    string                    `json:"category" example:"Fatura"`                                // Category of the transaction
	Type        finance.TransactionType   `json:"type" example:"expense"`                                   // Income or expense
	Date        types.Date                `json:"date" example:"2024-10-26" swaggertype:"primitive,string"` // Date of the transaction. Defaults to today
	IsRecurring bool                      `json:"isRecurring" example:"true" default:"false"`               // Recurring transactions are bills
	Status      finance.TransactionStatus `json:"status" example:"unpaid" default:"completed"`              // Payment status, used for bills
	DueDateText string                    `json:"dueDateText" example:"26 Ekim" default:""`                 // Free text due date for bills
	Icon        string                    `json:"icon" example:"bolt" default:"payments"`                   // Name of a Material Symbol
}

// model returns the database resource for the API representation of the editable fields
func (editable TransactionEditable) model() models.Transaction {
	return models.Transaction{
		Title:       editable.Title,
		Amount:      editable.Amount,
		Category:    editable.Category,
		Type:        editable.Type,
		Date:        editable.Date,
		IsRecurring: editable.IsRecurring,
		Status:      editable.Status,
		DueDateText: editable.DueDateText,
		Icon:        editable.Icon,
	}
}

// transactionEditable returns the editable fields of the resource
func transactionEditable(model models.Transaction) TransactionEditable {
	return TransactionEditable{
		Title:       model.Title,
		Amount:      model.Amount,
		Category:    model.Category,
		Type:        model.Type,
		Date:        model.Date,
		IsRecurring: model.IsRecurring,
		Status:      model.Status,
		DueDateText: model.DueDateText,
		Icon:        model.Icon,
	}
}

type TransactionLinks struct {
	Self   string `json:"self" example:"https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"`          // The transaction itself
	Status string `json:"status" example:"https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673/status"` // Endpoint to set the status
}

// Transaction is the representation of a Transaction in API v1.
type Transaction struct {
	models.DefaultModel
	TransactionEditable
	Links TransactionLinks `json:"links"`
}

// newTransaction returns the API v1 representation of the resource
func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := c.GetString(string(models.DBContextURL))
	self := fmt.Sprintf("%s/v1/transactions/%s", url, model.ID)

	return Transaction{
		DefaultModel:        model.DefaultModel,
		TransactionEditable: transactionEditable(model),
		Links: TransactionLinks{
			Self:   self,
			Status: self + "/status",
		},
	}
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`                                                          // List of transactions
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type TransactionCreateResponse struct {
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []TransactionResponse `json:"data"`                                                          // List of created Transactions
}

func (t *TransactionCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, TransactionResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TransactionResponse struct {
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this transaction
	Data  *Transaction `json:"data"`                                                          // The Transaction data, if creation was successful
}

type TransactionStatusEditable struct {
	Status finance.TransactionStatus `json:"status" example:"completed"` // The new status
}

type TransactionQueryFilter struct {
	Type        finance.TransactionType `form:"type"`                       // Income or expense
	Category    string                  `form:"category"`                   // Exact category
	IsRecurring bool                    `form:"recurring"`                  // Is the transaction recurring?
	Offset      uint                    `form:"offset" filterField:"false"` // The offset of the first Transaction returned
	Limit       int                     `form:"limit" filterField:"false"`  // Maximum number of Transactions to return
}

// model returns the database struct to filter with
func (f TransactionQueryFilter) model() (models.Transaction, error) {
	if f.Type != "" && f.Type != finance.TypeIncome && f.Type != finance.TypeExpense {
		return models.Transaction{}, fmt.Errorf("%w, got '%s'", models.ErrTransactionTypeInvalid, f.Type)
	}

	return models.Transaction{
		Type:        f.Type,
		Category:    f.Category,
		IsRecurring: f.IsRecurring,
	}, nil
}
