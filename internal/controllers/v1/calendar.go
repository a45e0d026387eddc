package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/senior-finance/backend/internal/finance"
	"github.com/senior-finance/backend/internal/httputil"
	"github.com/senior-finance/backend/internal/overview"
	"golang.org/x/exp/slices"
)

// @Summary		Get calendar
// @Description	Returns the most recent transactions, the complete schedule of all loans and the projected statements of all credit cards
// @Tags			Views
// @Produce		json
// @Success		200		{object}	CalendarResponse
// @Failure		400		{object}	CalendarResponse
// @Failure		500		{object}	CalendarResponse
// @Param			from	query		string	false	"First month of the statement projection in YYYY-MM-DD format. Defaults to today"
// @Param			months	query		int		false	"Number of projected statements per credit card. Defaults to 6"
// @Router			/v1/calendar [get]
func GetCalendar(c *gin.Context) {
	var query CalendarQuery
	err := httputil.BindQuery(c, &query)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CalendarResponse{
			Error: &e,
		})
		return
	}

	from, err := QueryAsOf{AsOf: query.From}.date()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CalendarResponse{
			Error: &e,
		})
		return
	}

	_, setFields := httputil.GetURLFields(c.Request.URL, query)
	months := finance.DefaultStatementHorizon
	if slices.Contains(setFields, "Months") {
		months = query.Months
	}

	events, err := overview.Calendar(c.Request.Context(), store(), from, months)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CalendarResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, CalendarResponse{Data: newCalendarEvents(events)})
}
