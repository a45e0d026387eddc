package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/senior-finance/backend/internal/finance"
	"github.com/senior-finance/backend/internal/httputil"
	"github.com/senior-finance/backend/internal/models"
	"github.com/senior-finance/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// RegisterDebtRoutes registers the routes for debts with
// the RouterGroup that is passed.
func RegisterDebtRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsDebts)
		r.GET("", GetDebts)
		r.POST("", CreateDebts)
	}

	// Debt with ID
	{
		r.OPTIONS("/:id", OptionsDebtDetail)
		r.GET("/:id", GetDebt)
		r.PATCH("/:id", UpdateDebt)
		r.DELETE("/:id", DeleteDebt)
	}

	// Projections
	{
		r.OPTIONS("/:id/schedule", OptionsDebtProjection)
		r.GET("/:id/schedule", GetDebtSchedule)
		r.OPTIONS("/:id/statements", OptionsDebtProjection)
		r.GET("/:id/statements", GetDebtStatements)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Debts
// @Success		204
// @Router			/v1/debts [options]
func OptionsDebts(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Debts
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/debts/{id} [options]
func OptionsDebtDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Debt{}, httputil.OptionsGetPatchDelete)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Debts
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/debts/{id}/schedule [options]
// @Router			/v1/debts/{id}/statements [options]
func OptionsDebtProjection(c *gin.Context) {
	resourceOptionsDetail(c, models.Debt{}, httputil.OptionsGet)
}

// @Summary		Get debt
// @Description	Returns a specific debt. Loans include their progress at the reference date.
// @Tags			Debts
// @Produce		json
// @Success		200		{object}	DebtResponse
// @Failure		400		{object}	DebtResponse
// @Failure		404		{object}	DebtResponse
// @Failure		500		{object}	DebtResponse
// @Param			id		path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			asOf	query		string	false	"Reference date in YYYY-MM-DD format. Defaults to today"
// @Router			/v1/debts/{id} [get]
func GetDebt(c *gin.Context) {
	var query QueryAsOf
	err := httputil.BindQuery(c, &query)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DebtResponse{
			Error: &e,
		})
		return
	}

	asOf, err := query.date()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DebtResponse{
			Error: &e,
		})
		return
	}

	debt, err := getDebt(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DebtResponse{
			Error: &e,
		})
		return
	}

	data := newDebt(c, debt, asOf)
	c.JSON(http.StatusOK, DebtResponse{Data: &data})
}

// @Summary		Get debts
// @Description	Returns all debts in the order they were created. Loans include their progress at the reference date.
// @Tags			Debts
// @Produce		json
// @Success		200		{object}	DebtListResponse
// @Failure		400		{object}	DebtListResponse
// @Failure		500		{object}	DebtListResponse
// @Param			asOf	query		string	false	"Reference date in YYYY-MM-DD format. Defaults to today"
// @Router			/v1/debts [get]
func GetDebts(c *gin.Context) {
	var query QueryAsOf
	err := httputil.BindQuery(c, &query)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DebtListResponse{
			Error: &e,
		})
		return
	}

	asOf, err := query.date()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DebtListResponse{
			Error: &e,
		})
		return
	}

	var debts []models.Debt
	err = models.DB.Order("created_at").Find(&debts).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DebtListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Debt, 0)
	for _, debt := range debts {
		data = append(data, newDebt(c, debt, asOf))
	}

	c.JSON(http.StatusOK, DebtListResponse{Data: data})
}

// @Summary		Create debts
// @Description	Creates debts from the list of submitted debt data. The response code is the highest response code number that a single debt creation would have caused. If it is not equal to 201, at least one debt has an error.
// @Tags			Debts
// @Produce		json
// @Success		201		{object}	DebtCreateResponse
// @Failure		400		{object}	DebtCreateResponse
// @Failure		500		{object}	DebtCreateResponse
// @Param			debts	body		[]DebtEditable	true	"Debts"
// @Router			/v1/debts [post]
func CreateDebts(c *gin.Context) {
	var editables []DebtEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DebtCreateResponse{
			Error: &e,
		})
		return
	}

	status := http.StatusCreated
	r := DebtCreateResponse{}
	today := types.Today()

	for _, editable := range editables {
		debt := editable.withDefaults().model()
		err := models.DB.Create(&debt).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newDebt(c, debt, today)
		r.Data = append(r.Data, DebtResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Update debt
// @Description	Updates an existing debt. Only values to be updated need to be specified.
// @Tags			Debts
// @Accept			json
// @Produce		json
// @Success		200		{object}	DebtResponse
// @Failure		400		{object}	DebtResponse
// @Failure		404		{object}	DebtResponse
// @Failure		500		{object}	DebtResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			debt	body		DebtEditable	true	"Debt"
// @Router			/v1/debts/{id} [patch]
func UpdateDebt(c *gin.Context) {
	debt, err := getDebt(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DebtResponse{
			Error: &e,
		})
		return
	}

	// Get the fields that are set to be updated
	updateFields, err := httputil.GetBodyFields(c, DebtEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DebtResponse{
			Error: &e,
		})
		return
	}

	// Bind the update on top of the current values so that
	// the complete resource can be validated
	update := debtEditable(debt)
	err = httputil.BindData(c, &update)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DebtResponse{
			Error: &e,
		})
		return
	}

	model := update.model()

	// Loans derive their total again when the installments change
	// and no total is sent
	installmentsChanged := slices.Contains(updateFields, "MonthlyPayment") || slices.Contains(updateFields, "TotalInstallments")
	if model.Type == finance.DebtTypeLoan && installmentsChanged && !slices.Contains(updateFields, "TotalAmount") {
		model.TotalAmount = decimal.Zero
		updateFields = append(updateFields, "TotalAmount")
	}

	err = model.Validate()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DebtResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&debt).Select("", updateFields...).Updates(model).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DebtResponse{
			Error: &e,
		})
		return
	}

	data := newDebt(c, debt, types.Today())
	c.JSON(http.StatusOK, DebtResponse{Data: &data})
}

// @Summary		Delete debt
// @Description	Deletes a debt
// @Tags			Debts
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/debts/{id} [delete]
func DeleteDebt(c *gin.Context) {
	debt, err := getDebt(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&debt).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Get loan schedule
// @Description	Returns one obligation per installment of a loan
// @Tags			Debts
// @Produce		json
// @Success		200	{object}	ObligationListResponse
// @Failure		400	{object}	ObligationListResponse
// @Failure		404	{object}	ObligationListResponse
// @Failure		500	{object}	ObligationListResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/debts/{id}/schedule [get]
func GetDebtSchedule(c *gin.Context) {
	debt, err := getDebt(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ObligationListResponse{
			Error: &e,
		})
		return
	}

	domain, err := debt.Loaded()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ObligationListResponse{
			Error: &e,
		})
		return
	}

	loan, ok := domain.(finance.Loan)
	if !ok {
		e := errDebtNotLoan.Error()
		c.JSON(http.StatusBadRequest, ObligationListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Obligation, 0, loan.TotalInstallments)
	for _, o := range finance.Schedule(loan) {
		data = append(data, newObligation(c, o))
	}

	c.JSON(http.StatusOK, ObligationListResponse{Data: data})
}

// @Summary		Get statement projection
// @Description	Projects the statements of a credit card. The current statement balance is used for every month.
// @Tags			Debts
// @Produce		json
// @Success		200		{object}	ObligationListResponse
// @Failure		400		{object}	ObligationListResponse
// @Failure		404		{object}	ObligationListResponse
// @Failure		500		{object}	ObligationListResponse
// @Param			id		path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			from	query		string	false	"First month of the projection as YYYY-MM-DD. Defaults to today"
// @Param			months	query		int		false	"Number of months. Defaults to 6"
// @Router			/v1/debts/{id}/statements [get]
func GetDebtStatements(c *gin.Context) {
	var query DebtStatementQuery
	err := httputil.BindQuery(c, &query)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ObligationListResponse{
			Error: &e,
		})
		return
	}

	_, setFields := httputil.GetURLFields(c.Request.URL, query)
	months := finance.DefaultStatementHorizon
	if slices.Contains(setFields, "Months") {
		months = query.Months
	}

	from, err := QueryAsOf{AsOf: query.From}.date()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ObligationListResponse{
			Error: &e,
		})
		return
	}

	debt, err := getDebt(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ObligationListResponse{
			Error: &e,
		})
		return
	}

	domain, err := debt.Loaded()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ObligationListResponse{
			Error: &e,
		})
		return
	}

	account, ok := domain.(finance.RevolvingAccount)
	if !ok {
		e := errDebtNotCreditCard.Error()
		c.JSON(http.StatusBadRequest, ObligationListResponse{
			Error: &e,
		})
		return
	}

	statements, err := finance.ProjectStatements(account, from, months)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ObligationListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Obligation, 0, len(statements))
	for _, o := range statements {
		data = append(data, newObligation(c, o))
	}

	c.JSON(http.StatusOK, ObligationListResponse{Data: data})
}

// getDebt returns the debt with the ID from the URI
func getDebt(c *gin.Context) (models.Debt, error) {
	var uri DebtURIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		return models.Debt{}, err
	}

	var debt models.Debt
	err = models.DB.First(&debt, uri.ID.UUID).Error
	if err != nil {
		return models.Debt{}, err
	}

	return debt, nil
}
