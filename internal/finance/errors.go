package finance

import "errors"

var (
	ErrInvalidBudget  = errors.New("the budget limit must be greater than zero")
	ErrMalformedDebt  = errors.New("the debt is malformed")
	ErrDateOutOfRange = errors.New("the date is out of the supported range")
	ErrInvalidHorizon = errors.New("the projection horizon must be between 0 and 120 months")
)
