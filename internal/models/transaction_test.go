package models_test

import (
	"github.com/senior-finance/backend/internal/finance"
	"github.com/senior-finance/backend/internal/models"
	"github.com/senior-finance/backend/internal/types"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestTransactionDefaults() {
	transaction := models.Transaction{
		Title:    " Market Alışverişi ",
		Category: " Mutfak",
		Amount:   decimal.NewFromInt(3300),
		Type:     finance.TypeExpense,
	}

	err := models.DB.Create(&transaction).Error
	suite.Require().Nil(err)

	suite.Assert().Equal("Market Alışverişi", transaction.Title)
	suite.Assert().Equal("Mutfak", transaction.Category)
	suite.Assert().Equal(finance.StatusCompleted, transaction.Status)
	suite.Assert().Equal(models.DefaultIcon, transaction.Icon)
	suite.Assert().Equal(types.Today(), transaction.Date)
}

func (suite *TestSuiteStandard) TestTransactionValidation() {
	tests := []struct {
		name        string
		transaction models.Transaction
		err         error
	}{
		{"No title", models.Transaction{Amount: decimal.NewFromInt(1), Type: finance.TypeExpense}, models.ErrTitleEmpty},
		{"Unknown type", models.Transaction{Title: "Transfer", Amount: decimal.NewFromInt(1), Type: "transfer"}, models.ErrTransactionTypeInvalid},
		{"Unknown status", models.Transaction{Title: "Su", Amount: decimal.NewFromInt(1), Type: finance.TypeExpense, Status: "late"}, models.ErrTransactionStatusInvalid},
		{"Zero amount", models.Transaction{Title: "Su", Type: finance.TypeExpense}, models.ErrTransactionAmountInvalid},
		{"Negative amount", models.Transaction{Title: "Su", Amount: decimal.NewFromInt(-3), Type: finance.TypeIncome}, models.ErrTransactionAmountInvalid},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			err := models.DB.Create(&tt.transaction).Error
			suite.Assert().ErrorIs(err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionDomain() {
	transaction := models.Transaction{
		Title:       "Elektrik Faturası",
		Amount:      decimal.NewFromInt(450),
		Category:    "Fatura",
		Type:        finance.TypeExpense,
		Date:        types.NewDate(2024, 10, 3),
		IsRecurring: true,
		Status:      finance.StatusUnpaid,
		DueDateText: "26 Ekim",
		Icon:        "bolt",
	}
	suite.Require().Nil(models.DB.Create(&transaction).Error)

	var stored models.Transaction
	suite.Require().Nil(models.DB.First(&stored, transaction.ID).Error)

	domain := stored.Domain()
	suite.Assert().Equal(transaction.ID, domain.ID)
	suite.Assert().True(decimal.NewFromInt(450).Equal(domain.Amount))
	suite.Assert().Equal(types.NewDate(2024, 10, 3), domain.Date)
	suite.Assert().True(domain.IsRecurring)
	suite.Assert().Equal(finance.StatusUnpaid, domain.Status)
	suite.Assert().Equal("26 Ekim", domain.DueDateText)
}
