package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/senior-finance/backend/internal/httputil"
	"github.com/senior-finance/backend/internal/models"
	"github.com/senior-finance/backend/internal/overview"
	"github.com/senior-finance/backend/internal/types"
)

// RegisterBudgetRoutes registers the routes for budgets with
// the RouterGroup that is passed.
func RegisterBudgetRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsBudgets)
		r.GET("", GetBudgets)
		r.POST("", SetBudget)
		r.OPTIONS("/status", OptionsBudgetStatus)
		r.GET("/status", GetBudgetStatus)
	}

	// Budget with ID
	{
		r.OPTIONS("/:id", OptionsBudgetDetail)
		r.DELETE("/:id", DeleteBudget)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/v1/budgets [options]
func OptionsBudgets(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/v1/budgets/status [options]
func OptionsBudgetStatus(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id} [options]
func OptionsBudgetDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Budget{}, httputil.OptionsDelete)
}

// @Summary		Get budgets
// @Description	Returns all budgets ordered by category
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetListResponse
// @Failure		500	{object}	BudgetListResponse
// @Router			/v1/budgets [get]
func GetBudgets(c *gin.Context) {
	var budgets []models.Budget
	err := models.DB.Order("category").Find(&budgets).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Budget, 0)
	for _, budget := range budgets {
		data = append(data, newBudget(c, budget))
	}

	c.JSON(http.StatusOK, BudgetListResponse{Data: data})
}

// @Summary		Set budget
// @Description	Sets the limit for a category. Creates the budget if the category does not have one yet.
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		200		{object}	BudgetResponse
// @Success		201		{object}	BudgetResponse
// @Failure		400		{object}	BudgetResponse
// @Failure		500		{object}	BudgetResponse
// @Param			budget	body		BudgetEditable	true	"Budget"
// @Router			/v1/budgets [post]
func SetBudget(c *gin.Context) {
	var editable BudgetEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &e,
		})
		return
	}

	update := editable.model()
	err = update.Validate()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &e,
		})
		return
	}

	var budget models.Budget
	err = models.DB.Where(&models.Budget{Category: update.Category}).First(&budget).Error

	// No budget for the category yet
	if errors.Is(err, models.ErrResourceNotFound) {
		err = models.DB.Create(&update).Error
		if err != nil {
			e := err.Error()
			c.JSON(status(err), BudgetResponse{
				Error: &e,
			})
			return
		}

		data := newBudget(c, update)
		c.JSON(http.StatusCreated, BudgetResponse{Data: &data})
		return
	}

	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&budget).Select("Amount").Updates(update).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &e,
		})
		return
	}

	data := newBudget(c, budget)
	c.JSON(http.StatusOK, BudgetResponse{Data: &data})
}

// @Summary		Get budget status
// @Description	Returns the spending of every budget for a month
// @Tags			Budgets
// @Produce		json
// @Success		200		{object}	BudgetStatusListResponse
// @Failure		400		{object}	BudgetStatusListResponse
// @Failure		500		{object}	BudgetStatusListResponse
// @Param			month	query		string	false	"Year and month in YYYY-MM format. Defaults to the current month"
// @Router			/v1/budgets/status [get]
func GetBudgetStatus(c *gin.Context) {
	var query QueryMonth
	err := httputil.BindQuery(c, &query)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetStatusListResponse{
			Error: &e,
		})
		return
	}

	month := query.Month
	if month.IsZero() {
		month = types.Today().CalendarMonth()
	}

	statuses, err := overview.Budgets(c.Request.Context(), store(), month)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetStatusListResponse{
			Error: &e,
		})
		return
	}

	data := make([]BudgetStatus, 0, len(statuses))
	for _, s := range statuses {
		data = append(data, newBudgetStatus(s))
	}

	c.JSON(http.StatusOK, BudgetStatusListResponse{Month: month, Data: data})
}

// @Summary		Delete budget
// @Description	Deletes a budget
// @Tags			Budgets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id} [delete]
func DeleteBudget(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var budget models.Budget
	err = models.DB.First(&budget, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&budget).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
