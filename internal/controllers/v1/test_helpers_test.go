package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/senior-finance/backend/internal/controllers/v1"
	"github.com/senior-finance/backend/internal/finance"
	"github.com/senior-finance/backend/internal/types"
	"github.com/senior-finance/backend/test"
	"github.com/shopspring/decimal"
)

// createTestTransaction creates a transaction via the v1 API. Title, amount
// and type default to a small expense.
func createTestTransaction(t *testing.T, transaction v1.TransactionEditable, expectedStatus ...int) v1.TransactionResponse {
	if transaction.Title == "" {
		transaction.Title = "Test Transaction"
	}

	if transaction.Amount.IsZero() {
		transaction.Amount = decimal.NewFromInt(10)
	}

	if transaction.Type == "" {
		transaction.Type = finance.TypeExpense
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/transactions", []v1.TransactionEditable{transaction})
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var tr v1.TransactionCreateResponse
	test.DecodeResponse(t, &r, &tr)

	return tr.Data[0]
}

// createTestLoan creates a loan of 12 installments of 1000 due on
// the 15th, starting in January 2024.
func createTestLoan(t *testing.T, loan v1.DebtEditable, expectedStatus ...int) v1.DebtResponse {
	loan.Type = finance.DebtTypeLoan

	if loan.Name == "" {
		loan.Name = "İhtiyaç Kredisi"
	}

	if loan.MonthlyPayment.IsZero() {
		loan.MonthlyPayment = decimal.NewFromInt(1000)
	}

	if loan.TotalInstallments == 0 {
		loan.TotalInstallments = 12
	}

	if loan.StartDate.IsZero() {
		loan.StartDate = types.NewDate(2024, 1, 15)
	}

	return createTestDebt(t, loan, expectedStatus...)
}

// createTestCard creates a credit card with a statement balance of 1500
// due on the 25th.
func createTestCard(t *testing.T, card v1.DebtEditable, expectedStatus ...int) v1.DebtResponse {
	card.Type = finance.DebtTypeCreditCard

	if card.Name == "" {
		card.Name = "Maximum"
	}

	if card.TotalAmount.IsZero() {
		card.TotalAmount = decimal.NewFromInt(1500)
	}

	if card.DueDateDay == 0 {
		card.DueDateDay = 25
	}

	return createTestDebt(t, card, expectedStatus...)
}

func createTestDebt(t *testing.T, debt v1.DebtEditable, expectedStatus ...int) v1.DebtResponse {
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/debts", []v1.DebtEditable{debt})
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var dr v1.DebtCreateResponse
	test.DecodeResponse(t, &r, &dr)

	return dr.Data[0]
}

// setTestBudget sets the limit for a category via the v1 API.
func setTestBudget(t *testing.T, category string, limit int64, expectedStatus ...int) v1.BudgetResponse {
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated, http.StatusOK)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/budgets", v1.BudgetEditable{
		Category: category,
		Amount:   decimal.NewFromInt(limit),
	})
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var br v1.BudgetResponse
	test.DecodeResponse(t, &r, &br)

	return br
}
