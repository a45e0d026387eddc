package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/senior-finance/backend/internal/finance"
	"github.com/senior-finance/backend/internal/models"
	"github.com/senior-finance/backend/internal/types"
	"github.com/shopspring/decimal"
)

type BudgetEditable struct {
	Category string          `json:"category" example:"Mutfak"` // The category the limit applies to. Unique
	Amount   decimal.Decimal `json:"amount" example:"4000"`     // Monthly spending limit, must be positive
}

// model returns the database resource for the API representation of the editable fields
func (editable BudgetEditable) model() models.Budget {
	return models.Budget{
		Category: editable.Category,
		Amount:   editable.Amount,
	}
}

type BudgetLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/budgets/550dc009-cea6-4c12-b2a5-03446eb7b7cf"` // The budget itself
}

// Budget is the representation of a Budget in API v1.
type Budget struct {
	models.DefaultModel
	BudgetEditable
	Links BudgetLinks `json:"links"`
}

func newBudget(c *gin.Context, model models.Budget) Budget {
	url := c.GetString(string(models.DBContextURL))

	return Budget{
		DefaultModel: model.DefaultModel,
		BudgetEditable: BudgetEditable{
			Category: model.Category,
			Amount:   model.Amount,
		},
		Links: BudgetLinks{
			Self: fmt.Sprintf("%s/v1/budgets/%s", url, model.ID),
		},
	}
}

type BudgetListResponse struct {
	Data  []Budget `json:"data"`                                                          // List of budgets
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type BudgetResponse struct {
	Data  *Budget `json:"data"`                                                       // Data for the budget
	Error *string `json:"error" example:"the budget limit must be greater than zero"` // The error, if any occurred
}

// BudgetStatus is the spending in a category measured against its limit.
type BudgetStatus struct {
	Category          string          `json:"category" example:"Mutfak"`      // The category
	Spent             decimal.Decimal `json:"spent" example:"3300"`           // Sum of expenses in the category during the month
	Limit             decimal.Decimal `json:"limit" example:"4000"`           // The limit of the budget
	Percentage        int64           `json:"percentage" example:"83"`        // Share of the limit spent, rounded. Not capped
	DisplayPercentage int64           `json:"displayPercentage" example:"83"` // Percentage capped to 0 to 100
	Tier              finance.Tier    `json:"tier" example:"warning"`         // "normal", "warning" from 80% or "critical" from 100%
}

func newBudgetStatus(s finance.BudgetStatus) BudgetStatus {
	return BudgetStatus{
		Category:          s.Category,
		Spent:             s.Spent,
		Limit:             s.Limit,
		Percentage:        s.Percentage,
		DisplayPercentage: s.DisplayPercentage(),
		Tier:              s.Tier,
	}
}

type BudgetStatusListResponse struct {
	Month types.Month    `json:"month" example:"2024-10" swaggertype:"primitive,string"`                              // The month the status is computed for
	Data  []BudgetStatus `json:"data"`                                                                                // Status of every budget, ordered by category
	Error *string        `json:"error" example:"the query string contains unparseable data. Please check the values"` // The error, if any occurred
}
