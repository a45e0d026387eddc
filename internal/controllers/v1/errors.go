package v1

import (
	"errors"
	"net/http"

	"github.com/senior-finance/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

var (
	errDebtNotLoan       = errors.New("the debt is not a loan and has no installment schedule")
	errDebtNotCreditCard = errors.New("the debt is not a credit card and has no statements")
	errStatusNotSet      = errors.New("the status must be set")
)
