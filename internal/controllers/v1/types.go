package v1

import (
	"github.com/senior-finance/backend/internal/finance"
	"github.com/senior-finance/backend/internal/types"
	paramuuid "github.com/senior-finance/backend/internal/uuid"
)

type URIID struct {
	ID paramuuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

// DebtURIID also accepts the IDs of virtual items derived from the debt.
type DebtURIID struct {
	ID paramuuid.DebtID `uri:"id" binding:"required" format:"UUID"` // ID of the debt or of a virtual item
}

// QueryAsOf is embedded by every endpoint that derives obligations.
type QueryAsOf struct {
	AsOf types.Date `form:"asOf" example:"2024-10-19" swaggertype:"primitive,string"` // Reference date in YYYY-MM-DD format. Defaults to today
}

// date returns the reference date, defaulting to today.
//
// Dates before 1900 are rejected. Installment counts for them are
// meaningless.
func (q QueryAsOf) date() (types.Date, error) {
	if q.AsOf.IsZero() {
		return types.Today(), nil
	}

	if q.AsOf.Year() < 1900 {
		return types.Date{}, finance.ErrDateOutOfRange
	}

	return q.AsOf, nil
}

type QueryMonth struct {
	Month types.Month `form:"month" example:"2024-10" swaggertype:"primitive,string"` // Year and month in YYYY-MM format. Defaults to the current month
}

// Pagination contains information about the pagination for collection endpoint responses.
type Pagination struct {
	Count  int   `json:"count" example:"25"`  // The amount of records returned in this response
	Offset uint  `json:"offset" example:"50"` // The offset for the first record returned
	Limit  int   `json:"limit" example:"25"`  // The maximum amount of resources to return for this request
	Total  int64 `json:"total" example:"827"` // The total number of resources matching the query
}
