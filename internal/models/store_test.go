package models_test

import (
	"context"

	"github.com/senior-finance/backend/internal/finance"
	"github.com/senior-finance/backend/internal/models"
	"github.com/senior-finance/backend/internal/overview"
	"github.com/senior-finance/backend/internal/types"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) createStoreFixture() {
	transactions := []models.Transaction{
		{Title: "Maaş", Category: "Maaş", Amount: decimal.NewFromInt(12500), Type: finance.TypeIncome, Date: types.NewDate(2024, 10, 1)},
		{Title: "Market", Category: "Mutfak", Amount: decimal.NewFromInt(3300), Type: finance.TypeExpense, Date: types.NewDate(2024, 10, 2)},
		{Title: "Elektrik", Category: "Fatura", Amount: decimal.NewFromInt(450), Type: finance.TypeExpense, Date: types.NewDate(2024, 10, 3), IsRecurring: true, Status: finance.StatusUnpaid},
	}
	suite.Require().Nil(models.DB.Create(&transactions).Error)

	debts := []models.Debt{
		{
			Type:                  finance.DebtTypeLoan,
			Name:                  "Taşıt Kredisi",
			DueDateDay:            5,
			MonthlyPayment:        decimal.NewFromInt(2000),
			TotalInstallments:     12,
			RemainingInstallments: 8,
			StartDate:             types.NewDate(2024, 6, 5),
		},
		{Type: finance.DebtTypeCreditCard, Name: "Maximum", TotalAmount: decimal.NewFromInt(1500), DueDateDay: 25},
	}

	// Created one by one for distinct creation timestamps
	for i := range debts {
		suite.Require().Nil(models.DB.Create(&debts[i]).Error)
	}

	suite.Require().Nil(models.DB.Create(&models.Budget{Category: "Mutfak", Amount: decimal.NewFromInt(4000)}).Error)
	suite.Require().Nil(models.DB.Create(&models.Budget{Category: "Fatura", Amount: decimal.NewFromInt(400)}).Error)
}

func (suite *TestSuiteStandard) TestStoreFetchTransactions() {
	suite.createStoreFixture()
	store := models.Store{DB: models.DB}

	tests := []struct {
		name   string
		filter overview.TransactionFilter
		titles []string
	}{
		{"All", overview.TransactionFilter{}, []string{"Elektrik", "Market", "Maaş"}},
		{"Type", overview.TransactionFilter{Type: finance.TypeIncome}, []string{"Maaş"}},
		{"Category", overview.TransactionFilter{Category: "Mutfak"}, []string{"Market"}},
		{"Recurring", overview.TransactionFilter{Recurring: true}, []string{"Elektrik"}},
		{"Limit", overview.TransactionFilter{Limit: 2}, []string{"Elektrik", "Market"}},
		{"Offset", overview.TransactionFilter{Limit: 2, Offset: 2}, []string{"Maaş"}},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			transactions, err := store.FetchTransactions(context.Background(), tt.filter)
			suite.Require().Nil(err)

			titles := make([]string, 0, len(transactions))
			for _, t := range transactions {
				titles = append(titles, t.Title)
			}
			suite.Assert().Equal(tt.titles, titles)
		})
	}
}

func (suite *TestSuiteStandard) TestStoreFetchDebts() {
	suite.createStoreFixture()

	debts, err := models.Store{DB: models.DB}.FetchDebts(context.Background())
	suite.Require().Nil(err)
	suite.Require().Len(debts, 2)

	loan, ok := debts[0].(finance.Loan)
	suite.Require().True(ok, "first debt is %T", debts[0])
	suite.Assert().Equal(8, loan.RemainingInstallments)
	suite.Assert().True(decimal.NewFromInt(24000).Equal(loan.TotalAmount))

	_, ok = debts[1].(finance.RevolvingAccount)
	suite.Assert().True(ok, "second debt is %T", debts[1])
}

func (suite *TestSuiteStandard) TestStoreFetchBudgetStatuses() {
	suite.createStoreFixture()

	statuses, err := models.Store{DB: models.DB}.FetchBudgetStatuses(context.Background(), types.NewMonth(2024, 10))
	suite.Require().Nil(err)
	suite.Require().Len(statuses, 2)

	suite.Assert().Equal("Fatura", statuses[0].Category)
	suite.Assert().Equal(int64(113), statuses[0].Percentage)
	suite.Assert().Equal(finance.TierCritical, statuses[0].Tier)

	suite.Assert().Equal("Mutfak", statuses[1].Category)
	suite.Assert().Equal(int64(83), statuses[1].Percentage)
	suite.Assert().Equal(finance.TierWarning, statuses[1].Tier)
}

// TestStoreUpcoming runs a view against the database.
func (suite *TestSuiteStandard) TestStoreUpcoming() {
	suite.createStoreFixture()

	items, err := overview.Upcoming(context.Background(), models.Store{DB: models.DB}, types.NewDate(2024, 10, 19))
	suite.Require().Nil(err)
	suite.Require().Len(items, 3)
	suite.Assert().Equal("Elektrik", items[0].Title())
	suite.Assert().Equal("Taşıt Kredisi (Taksit)", items[1].Title())
	suite.Assert().Equal("Maximum (Ekstre)", items[2].Title())
}

func (suite *TestSuiteStandard) TestStoreDatabaseError() {
	store := models.Store{DB: models.DB}
	suite.CloseDB()

	_, err := store.FetchTransactions(context.Background(), overview.TransactionFilter{})
	suite.Assert().ErrorIs(err, models.ErrGeneral)

	_, err = store.FetchDebts(context.Background())
	suite.Assert().ErrorIs(err, models.ErrGeneral)

	_, err = store.FetchBudgetStatuses(context.Background(), types.NewMonth(2024, 10))
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}
