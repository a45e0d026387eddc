package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/senior-finance/backend/internal/finance"
	"github.com/senior-finance/backend/internal/models"
	"github.com/senior-finance/backend/internal/types"
	"github.com/shopspring/decimal"
)

type DebtEditable struct {
	Type        finance.DebtType `json:"type" example:"loan"`                              // "loan" or "credit_card"
	Name        string           `json:"name" example:"İhtiyaç Kredisi"`                   // Name of the debt
	TotalAmount decimal.Decimal  `json:"totalAmount" example:"12000"`                      // Loans: total at creation, derived from the installments when 0. Credit cards: current statement balance
	DueDateDay  int              `json:"dueDateDay" example:"15" minimum:"1" maximum:"31"` // Day of the month the payment is due. Defaults to the day of the start date for loans

	// Loans only
	MonthlyPayment        decimal.Decimal `json:"monthlyPayment" example:"1000"`                                 // Amount of a single installment
	TotalInstallments     int             `json:"totalInstallments" example:"12"`                                // Number of installments
	RemainingInstallments *int            `json:"remainingInstallments" example:"5"`                             // Open installments. Defaults to all installments
	StartDate             types.Date      `json:"startDate" example:"2024-01-15" swaggertype:"primitive,string"` // Date of the first installment. Defaults to today
}

// model returns the database resource for the API representation of the editable fields
func (editable DebtEditable) model() models.Debt {
	debt := models.Debt{
		Type:              editable.Type,
		Name:              editable.Name,
		TotalAmount:       editable.TotalAmount,
		DueDateDay:        editable.DueDateDay,
		MonthlyPayment:    editable.MonthlyPayment,
		TotalInstallments: editable.TotalInstallments,
		StartDate:         editable.StartDate,
	}

	if editable.RemainingInstallments != nil {
		debt.RemainingInstallments = *editable.RemainingInstallments
	}

	return debt
}

// withDefaults fills in the values that new loans do not need to specify
func (editable DebtEditable) withDefaults() DebtEditable {
	if editable.Type != finance.DebtTypeLoan {
		return editable
	}

	if editable.StartDate.IsZero() {
		editable.StartDate = types.Today()
	}

	if editable.DueDateDay == 0 {
		editable.DueDateDay = editable.StartDate.Day()
	}

	if editable.RemainingInstallments == nil {
		remaining := editable.TotalInstallments
		editable.RemainingInstallments = &remaining
	}

	return editable
}

// debtEditable returns the editable fields of the resource
func debtEditable(model models.Debt) DebtEditable {
	remaining := model.RemainingInstallments

	return DebtEditable{
		Type:                  model.Type,
		Name:                  model.Name,
		TotalAmount:           model.TotalAmount,
		DueDateDay:            model.DueDateDay,
		MonthlyPayment:        model.MonthlyPayment,
		TotalInstallments:     model.TotalInstallments,
		RemainingInstallments: &remaining,
		StartDate:             model.StartDate,
	}
}

// DebtProgress is the state of a loan at a reference date, computed
// from the start date.
type DebtProgress struct {
	AsOf                  types.Date      `json:"asOf" example:"2024-07-15" swaggertype:"primitive,string"` // The reference date
	PaidInstallments      int             `json:"paidInstallments" example:"7"`                             // Installments due up to the reference date
	RemainingInstallments int             `json:"remainingInstallments" example:"5"`                        // Installments due after the reference date
	RemainingBalance      decimal.Decimal `json:"remainingBalance" example:"5000"`                          // Sum of the remaining installments
	PlannedTotal          decimal.Decimal `json:"plannedTotal" example:"12000"`                             // Sum of all installments
	Percentage            int             `json:"percentage" example:"58"`                                  // Share of paid installments, truncated
}

type DebtLinks struct {
	Self       string `json:"self" example:"https://example.com/api/v1/debts/0f2ea4e6-2a4b-49a4-a2f5-ed8e11db4f6e"`                  // The debt itself
	Schedule   string `json:"schedule" example:"https://example.com/api/v1/debts/0f2ea4e6-2a4b-49a4-a2f5-ed8e11db4f6e/schedule"`     // Installment schedule, loans only
	Statements string `json:"statements" example:"https://example.com/api/v1/debts/0f2ea4e6-2a4b-49a4-a2f5-ed8e11db4f6e/statements"` // Statement projection, credit cards only
}

// Debt is the representation of a Debt in API v1.
type Debt struct {
	models.DefaultModel
	DebtEditable
	Progress *DebtProgress `json:"progress"` // Progress of loans, null for credit cards
	Links    DebtLinks     `json:"links"`
}

// newDebt returns the API v1 representation of the resource with the
// progress of loans at asOf
func newDebt(c *gin.Context, model models.Debt, asOf types.Date) Debt {
	url := c.GetString(string(models.DBContextURL))
	self := fmt.Sprintf("%s/v1/debts/%s", url, model.ID)

	debt := Debt{
		DefaultModel: model.DefaultModel,
		DebtEditable: debtEditable(model),
		Links: DebtLinks{
			Self:       self,
			Schedule:   self + "/schedule",
			Statements: self + "/statements",
		},
	}

	// Rows are validated on save, an error here means the row was
	// modified outside of the API
	domain, err := model.Domain()
	if err != nil {
		return debt
	}

	if loan, ok := domain.(finance.Loan); ok {
		debt.Progress = &DebtProgress{
			AsOf:                  asOf,
			PaidInstallments:      finance.PaidInstallments(loan, asOf),
			RemainingInstallments: finance.RemainingInstallments(loan, asOf),
			RemainingBalance:      finance.RemainingBalance(loan, asOf),
			PlannedTotal:          loan.PlannedTotal(),
			Percentage:            finance.Progress(loan, asOf),
		}
	}

	return debt
}

type DebtListResponse struct {
	Data  []Debt  `json:"data"`                                                          // List of debts
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type DebtCreateResponse struct {
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []DebtResponse `json:"data"`                                                          // List of created debts
}

func (d *DebtCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	d.Data = append(d.Data, DebtResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type DebtResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this debt
	Data  *Debt   `json:"data"`                                                          // The debt data, if creation was successful
}

type DebtStatementQuery struct {
	From   types.Date `form:"from" example:"2024-10-01" swaggertype:"primitive,string"` // First month of the projection. Defaults to today
	Months int        `form:"months" example:"6"`                                       // Number of months to project. Defaults to 6
}
