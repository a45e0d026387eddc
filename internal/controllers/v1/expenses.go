package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/senior-finance/backend/internal/httputil"
	"github.com/senior-finance/backend/internal/overview"
	"golang.org/x/exp/slices"
)

// @Summary		Get expenses
// @Description	Returns the transactions followed by the payments of all open debts for the month of the reference date
// @Tags			Views
// @Produce		json
// @Success		200			{object}	ItemListResponse
// @Failure		400			{object}	ItemListResponse
// @Failure		500			{object}	ItemListResponse
// @Param			asOf		query		string	false	"Reference date in YYYY-MM-DD format. Defaults to today"
// @Param			category	query		string	false	"Filter by category"
// @Param			recurring	query		bool	false	"Only recurring transactions and debt payments"
// @Param			match		query		string	false	"Glob pattern for the title"
// @Param			offset		query		uint	false	"The offset of the first transaction. Defaults to 0."
// @Param			limit		query		int		false	"Maximum number of transactions. Defaults to 50."
// @Router			/v1/expenses [get]
func GetExpenses(c *gin.Context) {
	var filter ExpenseQueryFilter
	err := httputil.BindQuery(c, &filter)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ItemListResponse{
			Error: &e,
		})
		return
	}

	asOf, err := filter.date()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ItemListResponse{
			Error: &e,
		})
		return
	}

	// Default to 50 transactions
	_, setFields := httputil.GetURLFields(c.Request.URL, filter)
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}

	items, err := overview.Expenses(c.Request.Context(), store(), overview.ExpenseQuery{
		Category:  filter.Category,
		Recurring: filter.Recurring,
		Match:     filter.Match,
		Limit:     limit,
		Offset:    int(filter.Offset),
	}, asOf)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ItemListResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, ItemListResponse{Data: newItems(c, items)})
}
