package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/senior-finance/backend/internal/httputil"
	"github.com/senior-finance/backend/internal/models"
	"github.com/senior-finance/backend/internal/overview"
)

// RegisterViewRoutes registers the read only views that merge
// transactions with the obligations derived from debts.
func RegisterViewRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/dashboard", httputil.OptionsGet)
	r.GET("/dashboard", GetDashboard)
	r.OPTIONS("/bills", httputil.OptionsGet)
	r.GET("/bills", GetBills)
	r.OPTIONS("/expenses", httputil.OptionsGet)
	r.GET("/expenses", GetExpenses)
	r.OPTIONS("/calendar", httputil.OptionsGet)
	r.GET("/calendar", GetCalendar)
}

// store is the source all views read from
func store() overview.Source {
	return models.Store{DB: models.DB}
}

// @Summary		Get dashboard
// @Description	Returns the summary of all transactions and the bills and debt payments due in the month of the reference date
// @Tags			Views
// @Produce		json
// @Success		200		{object}	DashboardResponse
// @Failure		400		{object}	DashboardResponse
// @Failure		500		{object}	DashboardResponse
// @Param			asOf	query		string	false	"Reference date in YYYY-MM-DD format. Defaults to today"
// @Router			/v1/dashboard [get]
func GetDashboard(c *gin.Context) {
	var query QueryAsOf
	err := httputil.BindQuery(c, &query)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DashboardResponse{
			Error: &e,
		})
		return
	}

	asOf, err := query.date()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DashboardResponse{
			Error: &e,
		})
		return
	}

	view, err := overview.Dashboard(c.Request.Context(), store(), asOf)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DashboardResponse{
			Error: &e,
		})
		return
	}

	chart := make([]CategoryShare, 0, len(view.Summary.Chart))
	for _, share := range view.Summary.Chart {
		chart = append(chart, CategoryShare{
			Category:   share.Category,
			Percentage: share.Percentage,
		})
	}

	c.JSON(http.StatusOK, DashboardResponse{
		Data: &Dashboard{
			AsOf:          asOf,
			TotalIncome:   view.Summary.TotalIncome,
			TotalExpense:  view.Summary.TotalExpense,
			TotalBalance:  view.Summary.TotalBalance,
			Chart:         chart,
			Upcoming:      newItems(c, view.Upcoming),
			UpcomingTotal: view.UpcomingTotal,
		},
	})
}

// @Summary		Get bills
// @Description	Returns all recurring transactions followed by the payments of all open debts for the month of the reference date
// @Tags			Views
// @Produce		json
// @Success		200		{object}	ItemListResponse
// @Failure		400		{object}	ItemListResponse
// @Failure		500		{object}	ItemListResponse
// @Param			asOf	query		string	false	"Reference date in YYYY-MM-DD format. Defaults to today"
// @Router			/v1/bills [get]
func GetBills(c *gin.Context) {
	var query QueryAsOf
	err := httputil.BindQuery(c, &query)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ItemListResponse{
			Error: &e,
		})
		return
	}

	asOf, err := query.date()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ItemListResponse{
			Error: &e,
		})
		return
	}

	items, err := overview.Upcoming(c.Request.Context(), store(), asOf)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ItemListResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, ItemListResponse{Data: newItems(c, items)})
}
