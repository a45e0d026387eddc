package v1

import (
	"github.com/google/uuid"
	"github.com/senior-finance/backend/internal/finance"
	"github.com/senior-finance/backend/internal/types"
	"github.com/shopspring/decimal"
)

type CategoryShare struct {
	Category   string `json:"category" example:"Mutfak"` // Expense category
	Percentage int64  `json:"percentage" example:"37"`   // Share of the total expenses, truncated
}

// Dashboard is the summary of all transactions and the payments due in
// the month of the reference date.
type Dashboard struct {
	AsOf          types.Date      `json:"asOf" example:"2024-10-19" swaggertype:"primitive,string"` // The reference date
	TotalIncome   decimal.Decimal `json:"totalIncome" example:"12500"`                              // Sum of all income
	TotalExpense  decimal.Decimal `json:"totalExpense" example:"8250"`                              // Sum of all expenses
	TotalBalance  decimal.Decimal `json:"totalBalance" example:"4250"`                              // Income minus expenses
	Chart         []CategoryShare `json:"chart"`                                                    // Expense share of the chart categories
	Upcoming      []Item          `json:"upcoming"`                                                 // Bills followed by the payments of all open debts
	UpcomingTotal decimal.Decimal `json:"upcomingTotal" example:"3950"`                             // Sum of everything upcoming that is not completed
}

type DashboardResponse struct {
	Data  *Dashboard `json:"data"`                                                   // The dashboard
	Error *string    `json:"error" example:"the date is out of the supported range"` // The error, if any occurred
}

type ExpenseQueryFilter struct {
	QueryAsOf
	Category  string `form:"category"`                   // Exact category. Virtual items have the category "Borç/Kredi"
	Recurring bool   `form:"recurring"`                  // Only recurring transactions and virtual items
	Match     string `form:"match"`                      // Glob pattern for the title, "*" matches any characters
	Offset    uint   `form:"offset" filterField:"false"` // The offset of the first transaction
	Limit     int    `form:"limit" filterField:"false"`  // Maximum number of transactions
}

type CalendarQuery struct {
	From   types.Date `form:"from" example:"2024-10-01" swaggertype:"primitive,string"` // First month of the card statement projection. Defaults to today
	Months int        `form:"months" example:"6"`                                       // Number of projected card statements. Defaults to 6
}

// CalendarEvent is an entry on the calendar.
type CalendarEvent struct {
	SourceID uuid.UUID         `json:"sourceId" example:"0f2ea4e6-2a4b-49a4-a2f5-ed8e11db4f6e"`  // ID of the transaction or debt
	Title    string            `json:"title" example:"Market Alışverişi (3.300₺)"`               // Title
	Date     types.Date        `json:"date" example:"2024-10-02" swaggertype:"primitive,string"` // Date of the event
	Amount   decimal.Decimal   `json:"amount" example:"3300"`                                    // Amount
	Category string            `json:"category" example:"Mutfak"`                                // Category
	Kind     finance.EventKind `json:"kind" example:"expense"`                                   // Kind of the event
}

func newCalendarEvents(events []finance.CalendarEvent) []CalendarEvent {
	data := make([]CalendarEvent, 0, len(events))
	for _, e := range events {
		data = append(data, CalendarEvent{
			SourceID: e.SourceID,
			Title:    e.Title,
			Date:     e.Date,
			Amount:   e.Amount,
			Category: e.Category,
			Kind:     e.Kind,
		})
	}

	return data
}

type CalendarResponse struct {
	Data  []CalendarEvent `json:"data"`                                                        // Events in no particular order
	Error *string         `json:"error" example:"the projection horizon must be between 0 and 120 months"` // The error, if any occurred
}
