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

// TestTransactionsOptions verifies that the HTTP OPTIONS response for /v1/transactions/{id} is correct.
func (suite *TestSuiteStandard) TestTransactionsOptions() {
	tests := []struct {
		name     string        // Name for the test
		status   int           // Expected HTTP status
		id       string        // String to use as ID. Ignored when pathFunc is non-nil
		pathFunc func() string // Function returning the path
	}{
		{
			"Does not exist",
			http.StatusNotFound,
			uuid.New().String(),
			nil,
		},
		{
			"Invalid UUID",
			http.StatusBadRequest,
			"NotParseableAsUUID",
			nil,
		},
		{
			"Success",
			http.StatusNoContent,
			"",
			func() string {
				return createTestTransaction(suite.T(), v1.TransactionEditable{Amount: decimal.NewFromFloat(31)}).Data.Links.Self
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var p string
			if tt.pathFunc != nil {
				p = tt.pathFunc()
			} else {
				p = fmt.Sprintf("%s/%s", "http://example.com/v1/transactions", tt.id)
			}

			r := test.Request(t, http.MethodOptions, p, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

// TestTransactionsDatabaseError verifies that the endpoints return the appropriate
// error when the database is disconnected.
func (suite *TestSuiteStandard) TestTransactionsDatabaseError() {
	tests := []struct {
		name   string // Name of the test
		path   string // Path to send request to
		method string // HTTP method to use
		body   string // The request body
	}{
		{"GET Collection", "", http.MethodGet, ""},
		{"OPTIONS Single", fmt.Sprintf("/%s", uuid.New().String()), http.MethodOptions, ""},
		{"GET Single", fmt.Sprintf("/%s", uuid.New().String()), http.MethodGet, ""},
		{"PATCH Single", fmt.Sprintf("/%s", uuid.New().String()), http.MethodPatch, ""},
		{"DELETE Single", fmt.Sprintf("/%s", uuid.New().String()), http.MethodDelete, ""},
		{"PUT Status", fmt.Sprintf("/%s/status", uuid.New().String()), http.MethodPut, ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.CloseDB()

			recorder := test.Request(t, tt.method, fmt.Sprintf("http://example.com/v1/transactions%s", tt.path), tt.body)
			test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

			var response v1.TransactionListResponse
			test.DecodeResponse(t, &recorder, &response)
			assert.Equal(t, models.ErrGeneral.Error(), *response.Error)
		})
	}
}

// TestTransactionsCreateDatabaseError verifies that every transaction reports
// the database error.
func (suite *TestSuiteStandard) TestTransactionsCreateDatabaseError() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/transactions", []v1.TransactionEditable{
		{Title: "Market", Amount: decimal.NewFromInt(100), Type: finance.TypeExpense},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)

	var response v1.TransactionCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(models.ErrGeneral.Error(), *response.Data[0].Error)
}

// TestTransactionsGet verifies that transactions are sorted by date, newest first.
func (suite *TestSuiteStandard) TestTransactionsGet() {
	older := createTestTransaction(suite.T(), v1.TransactionEditable{Title: "Older", Date: types.NewDate(2024, 9, 1)})
	newer := createTestTransaction(suite.T(), v1.TransactionEditable{Title: "Newer", Date: types.NewDate(2024, 10, 1)})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data, 2)
	suite.Assert().Equal(newer.Data.ID, response.Data[0].ID)
	suite.Assert().Equal(older.Data.ID, response.Data[1].ID)
	suite.Assert().Equal(int64(2), response.Pagination.Total)
	suite.Assert().Equal(50, response.Pagination.Limit)
}

func (suite *TestSuiteStandard) TestTransactionsGetSingle() {
	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{Title: "Su Faturası", Amount: decimal.NewFromInt(120)})

	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Standard", transaction.Data.ID.String(), http.StatusOK},
		{"Not found", uuid.New().String(), http.StatusNotFound},
		{"Invalid ID", "NotAUUID", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status != http.StatusOK {
				return
			}

			var response v1.TransactionResponse
			test.DecodeResponse(t, &r, &response)
			assert.Equal(t, "Su Faturası", response.Data.Title)
			assert.True(t, decimal.NewFromInt(120).Equal(response.Data.Amount))
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsGetFilter() {
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{Title: "Maaş", Category: "Maaş", Type: finance.TypeIncome, Amount: decimal.NewFromInt(12500)})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{Title: "Market", Category: "Mutfak", Amount: decimal.NewFromInt(3300)})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{Title: "Elektrik", Category: "Fatura", IsRecurring: true, Status: finance.StatusUnpaid, Amount: decimal.NewFromInt(450)})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{Title: "Su", Category: "Fatura", IsRecurring: true, Status: finance.StatusUnpaid, Amount: decimal.NewFromInt(120)})

	tests := []struct {
		name   string
		query  string
		length int
		total  int64
	}{
		{"All", "", 4, 4},
		{"Income", "type=income", 1, 1},
		{"Expense", "type=expense", 3, 3},
		{"Category", "category=Fatura", 2, 2},
		{"Recurring", "recurring=true", 2, 2},
		{"Not recurring", "recurring=false", 2, 2},
		{"Limit", "limit=1", 1, 4},
		{"Offset", "offset=3", 1, 4},
		{"Limit and offset", "type=expense&offset=1&limit=1", 1, 3},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.TransactionListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.length)
			assert.Equal(t, tt.total, response.Pagination.Total)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsGetFilterInvalid() {
	tests := []struct {
		name  string
		query string
	}{
		{"Unknown type", "type=transfer"},
		{"Unparseable recurrence", "recurring=maybe"},
		{"Unparseable offset", "offset=-5"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsCreate() {
	tests := []struct {
		name           string
		transactions   []v1.TransactionEditable
		expectedStatus int
		expectedErrors []string
	}{
		{
			"Defaults",
			[]v1.TransactionEditable{{Title: "  Market ", Amount: decimal.NewFromInt(5), Type: finance.TypeExpense}},
			http.StatusCreated,
			[]string{""},
		},
		{
			"Amount zero",
			[]v1.TransactionEditable{{Title: "Nothing", Type: finance.TypeExpense}},
			http.StatusBadRequest,
			[]string{models.ErrTransactionAmountInvalid.Error()},
		},
		{
			"Title empty",
			[]v1.TransactionEditable{{Title: " ", Amount: decimal.NewFromInt(5), Type: finance.TypeIncome}},
			http.StatusBadRequest,
			[]string{models.ErrTitleEmpty.Error()},
		},
		{
			"Mixed",
			[]v1.TransactionEditable{
				{Title: "Maaş", Amount: decimal.NewFromInt(12500), Type: finance.TypeIncome},
				{Title: "Transfer", Amount: decimal.NewFromInt(5), Type: "transfer"},
				{Title: "Elektrik", Amount: decimal.NewFromInt(450), Type: finance.TypeExpense, Status: "late"},
			},
			http.StatusBadRequest,
			[]string{
				"",
				"the transaction type must be 'income' or 'expense', got 'transfer'",
				"the transaction status must be 'completed', 'unpaid' or 'autopay', got 'late'",
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/transactions", tt.transactions)
			test.AssertHTTPStatus(t, &r, tt.expectedStatus)

			var response v1.TransactionCreateResponse
			test.DecodeResponse(t, &r, &response)

			for i, transaction := range response.Data {
				if tt.expectedErrors[i] == "" {
					assert.Nil(t, transaction.Error)
					continue
				}

				assert.Equal(t, tt.expectedErrors[i], *transaction.Error)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsCreateDefaults() {
	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{Title: "  Market ", Category: " Mutfak"})

	suite.Assert().Equal("Market", transaction.Data.Title)
	suite.Assert().Equal("Mutfak", transaction.Data.Category)
	suite.Assert().Equal(finance.StatusCompleted, transaction.Data.Status)
	suite.Assert().Equal(models.DefaultIcon, transaction.Data.Icon)
	suite.Assert().Equal(types.Today(), transaction.Data.Date)
	suite.Assert().Equal(fmt.Sprintf("http://example.com/v1/transactions/%s", transaction.Data.ID), transaction.Data.Links.Self)
	suite.Assert().Equal(transaction.Data.Links.Self+"/status", transaction.Data.Links.Status)
}

func (suite *TestSuiteStandard) TestTransactionsCreateBrokenBody() {
	tests := []struct {
		name string
		body any
	}{
		{"Not a list", `{ "title": "Market" }`},
		{"Broken JSON", `[{ "title": "Market" `},
		{"Wrong type", `[{ "amount": true }]`},
		{"Empty", ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/transactions", tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsUpdate() {
	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{
		Title:    "Market",
		Category: "Mutfak",
		Amount:   decimal.NewFromInt(300),
		Date:     types.NewDate(2024, 10, 2),
	})

	r := test.Request(suite.T(), http.MethodPatch, transaction.Data.Links.Self, map[string]any{
		"amount":   "350.25",
		"category": "Market",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().True(decimal.RequireFromString("350.25").Equal(response.Data.Amount), "amount is %s", response.Data.Amount)
	suite.Assert().Equal("Market", response.Data.Category)
	suite.Assert().Equal("Market", response.Data.Title, "fields not in the body must not change")
	suite.Assert().Equal(types.NewDate(2024, 10, 2), response.Data.Date)

	// Read it again to verify that the update is persisted
	r = test.Request(suite.T(), http.MethodGet, transaction.Data.Links.Self, "")
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().True(decimal.RequireFromString("350.25").Equal(response.Data.Amount))
}

func (suite *TestSuiteStandard) TestTransactionsUpdateFails() {
	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{Title: "Market"})

	tests := []struct {
		name   string
		path   string
		body   any
		status int
	}{
		{"Invalid type", transaction.Data.Links.Self, `{ "type": "transfer" }`, http.StatusBadRequest},
		{"Negative amount", transaction.Data.Links.Self, `{ "amount": "-5" }`, http.StatusBadRequest},
		{"Empty title", transaction.Data.Links.Self, `{ "title": "" }`, http.StatusBadRequest},
		{"Broken body", transaction.Data.Links.Self, `{ "title": 2 `, http.StatusBadRequest},
		{"Not found", fmt.Sprintf("http://example.com/v1/transactions/%s", uuid.New()), `{ "title": "Su" }`, http.StatusNotFound},
		{"Invalid ID", "http://example.com/v1/transactions/NotAUUID", `{ "title": "Su" }`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, tt.path, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}

	// The failed updates must not have changed anything
	r := test.Request(suite.T(), http.MethodGet, transaction.Data.Links.Self, "")
	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("Market", response.Data.Title)
	suite.Assert().Equal(finance.TypeExpense, response.Data.Type)
	suite.Assert().True(decimal.NewFromInt(10).Equal(response.Data.Amount))
}

func (suite *TestSuiteStandard) TestTransactionsSetStatus() {
	bill := createTestTransaction(suite.T(), v1.TransactionEditable{
		Title:       "Elektrik Faturası",
		Amount:      decimal.NewFromInt(450),
		IsRecurring: true,
		Status:      finance.StatusUnpaid,
		DueDateText: "26 Ekim",
	})

	r := test.Request(suite.T(), http.MethodPut, bill.Data.Links.Status, v1.TransactionStatusEditable{Status: finance.StatusCompleted})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(finance.StatusCompleted, response.Data.Status)
	suite.Assert().Equal("26 Ekim", response.Data.DueDateText)

	r = test.Request(suite.T(), http.MethodGet, bill.Data.Links.Self, "")
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(finance.StatusCompleted, response.Data.Status)
}

func (suite *TestSuiteStandard) TestTransactionsSetStatusFails() {
	bill := createTestTransaction(suite.T(), v1.TransactionEditable{IsRecurring: true, Status: finance.StatusUnpaid})

	tests := []struct {
		name   string
		path   string
		body   any
		status int
	}{
		{"Unknown status", bill.Data.Links.Status, `{ "status": "late" }`, http.StatusBadRequest},
		{"No status", bill.Data.Links.Status, `{}`, http.StatusBadRequest},
		{"Empty body", bill.Data.Links.Status, "", http.StatusBadRequest},
		{"Not found", fmt.Sprintf("http://example.com/v1/transactions/%s/status", uuid.New()), `{ "status": "completed" }`, http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPut, tt.path, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsDelete() {
	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{})

	r := test.Request(suite.T(), http.MethodDelete, transaction.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, transaction.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodDelete, transaction.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
