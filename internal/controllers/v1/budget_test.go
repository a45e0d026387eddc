package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/senior-finance/backend/internal/controllers/v1"
	"github.com/senior-finance/backend/internal/finance"
	"github.com/senior-finance/backend/internal/models"
	"github.com/senior-finance/backend/internal/types"
	"github.com/senior-finance/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestBudgetsDatabaseError() {
	tests := []struct {
		name   string
		path   string
		method string
		body   any
	}{
		{"GET Collection", "", http.MethodGet, ""},
		{"POST Collection", "", http.MethodPost, v1.BudgetEditable{Category: "Mutfak", Amount: decimal.NewFromInt(4000)}},
		{"GET Status", "/status", http.MethodGet, ""},
		{"OPTIONS Single", fmt.Sprintf("/%s", uuid.New()), http.MethodOptions, ""},
		{"DELETE Single", fmt.Sprintf("/%s", uuid.New()), http.MethodDelete, ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.CloseDB()

			recorder := test.Request(t, tt.method, fmt.Sprintf("http://example.com/v1/budgets%s", tt.path), tt.body)
			test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

			var response v1.BudgetListResponse
			test.DecodeResponse(t, &recorder, &response)
			assert.Equal(t, models.ErrGeneral.Error(), *response.Error)
		})
	}
}

// TestBudgetsSet verifies that setting a budget for a category creates it once
// and updates it afterwards.
func (suite *TestSuiteStandard) TestBudgetsSet() {
	created := setTestBudget(suite.T(), "Mutfak", 4000, http.StatusCreated)
	suite.Assert().Equal("Mutfak", created.Data.Category)
	suite.Assert().Equal(fmt.Sprintf("http://example.com/v1/budgets/%s", created.Data.ID), created.Data.Links.Self)

	updated := setTestBudget(suite.T(), " Mutfak ", 4500, http.StatusOK)
	suite.Assert().Equal(created.Data.ID, updated.Data.ID)
	suite.Assert().True(decimal.NewFromInt(4500).Equal(updated.Data.Amount), "amount is %s", updated.Data.Amount)

	_ = setTestBudget(suite.T(), "Ulaşım", 2000, http.StatusCreated)

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budgets", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 2)
	suite.Assert().Equal("Mutfak", response.Data[0].Category)
	suite.Assert().True(decimal.NewFromInt(4500).Equal(response.Data[0].Amount))
	suite.Assert().Equal("Ulaşım", response.Data[1].Category)
}

func (suite *TestSuiteStandard) TestBudgetsSetFails() {
	tests := []struct {
		name string
		body any
		err  string
	}{
		{"Zero limit", v1.BudgetEditable{Category: "Mutfak"}, finance.ErrInvalidBudget.Error()},
		{"Negative limit", v1.BudgetEditable{Category: "Mutfak", Amount: decimal.NewFromInt(-50)}, finance.ErrInvalidBudget.Error()},
		{"No category", v1.BudgetEditable{Amount: decimal.NewFromInt(50)}, models.ErrCategoryEmpty.Error()},
		{"Broken body", `{ "category": "Mutfak" `, ""},
		{"Empty body", "", ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/budgets", tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var response v1.BudgetResponse
			test.DecodeResponse(t, &r, &response)
			assert.Nil(t, response.Data)
			assert.Contains(t, *response.Error, tt.err)
		})
	}
}

// TestBudgetsStatus verifies the spending of every budget in a month.
func (suite *TestSuiteStandard) TestBudgetsStatus() {
	_ = setTestBudget(suite.T(), "Mutfak", 4000)
	_ = setTestBudget(suite.T(), "Sağlık", 2000)
	_ = setTestBudget(suite.T(), "Ulaşım", 1000)

	_ = createTestTransaction(suite.T(), v1.TransactionEditable{Category: "Mutfak", Amount: decimal.NewFromInt(3300), Date: types.NewDate(2024, 10, 2)})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{Category: "Ulaşım", Amount: decimal.NewFromInt(1200), Date: types.NewDate(2024, 10, 31)})

	// Outside of the month, income and other categories are ignored
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{Category: "Mutfak", Amount: decimal.NewFromInt(500), Date: types.NewDate(2024, 9, 30)})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{Category: "Mutfak", Amount: decimal.NewFromInt(500), Date: types.NewDate(2024, 11, 1)})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{Category: "Mutfak", Type: finance.TypeIncome, Amount: decimal.NewFromInt(100), Date: types.NewDate(2024, 10, 5)})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{Category: "Diğer", Amount: decimal.NewFromInt(100), Date: types.NewDate(2024, 10, 5)})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budgets/status?month=2024-10", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetStatusListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().True(types.NewMonth(2024, 10).Equal(response.Month))

	expected := []struct {
		category          string
		spent             int64
		percentage        int64
		displayPercentage int64
		tier              finance.Tier
	}{
		{"Mutfak", 3300, 83, 83, finance.TierWarning},
		{"Sağlık", 0, 0, 0, finance.TierNormal},
		{"Ulaşım", 1200, 120, 100, finance.TierCritical},
	}

	suite.Require().Len(response.Data, len(expected))
	for i, e := range expected {
		status := response.Data[i]
		suite.Assert().Equal(e.category, status.Category)
		suite.Assert().True(decimal.NewFromInt(e.spent).Equal(status.Spent), "%s: spent is %s", e.category, status.Spent)
		suite.Assert().Equal(e.percentage, status.Percentage, e.category)
		suite.Assert().Equal(e.displayPercentage, status.DisplayPercentage, e.category)
		suite.Assert().Equal(e.tier, status.Tier, e.category)
	}
}

func (suite *TestSuiteStandard) TestBudgetsStatusDefaultMonth() {
	_ = setTestBudget(suite.T(), "Mutfak", 1000)
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{Category: "Mutfak", Amount: decimal.NewFromInt(250)})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budgets/status", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetStatusListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().True(types.Today().CalendarMonth().Equal(response.Month))
	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal(int64(25), response.Data[0].Percentage)
}

func (suite *TestSuiteStandard) TestBudgetsStatusInvalidMonth() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budgets/status?month=Ekim", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestBudgetsDelete() {
	budget := setTestBudget(suite.T(), "Mutfak", 4000)

	r := test.Request(suite.T(), http.MethodOptions, budget.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, DELETE", r.Header().Get("allow"))

	r = test.Request(suite.T(), http.MethodDelete, budget.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodDelete, budget.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodDelete, "http://example.com/v1/budgets/NotAUUID", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	// The category can get a new budget
	_ = setTestBudget(suite.T(), "Mutfak", 3000, http.StatusCreated)
}
