package models_test

import (
	"context"

	"github.com/senior-finance/backend/internal/finance"
	"github.com/senior-finance/backend/internal/models"
	"github.com/senior-finance/backend/internal/types"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestDebtLoanTotalDerived() {
	debt := models.Debt{
		Type:                  finance.DebtTypeLoan,
		Name:                  "İhtiyaç Kredisi",
		DueDateDay:            15,
		MonthlyPayment:        decimal.NewFromInt(1000),
		TotalInstallments:     12,
		RemainingInstallments: 12,
		StartDate:             types.NewDate(2024, 1, 15),
	}

	suite.Require().Nil(models.DB.Create(&debt).Error)
	suite.Assert().True(decimal.NewFromInt(12000).Equal(debt.TotalAmount), "total is %s", debt.TotalAmount)

	var stored models.Debt
	suite.Require().Nil(models.DB.First(&stored, debt.ID).Error)

	domain, err := stored.Domain()
	suite.Require().Nil(err)

	loan, ok := domain.(finance.Loan)
	suite.Require().True(ok, "domain type is %T", domain)
	suite.Assert().Equal(debt.ID, loan.ID)
	suite.Assert().Equal(types.NewDate(2024, 1, 15), loan.StartDate)
	suite.Assert().True(decimal.NewFromInt(12000).Equal(loan.TotalAmount))
}

func (suite *TestSuiteStandard) TestDebtLoanExplicitTotal() {
	debt := models.Debt{
		Type:                  finance.DebtTypeLoan,
		Name:                  "Konut Kredisi",
		TotalAmount:           decimal.NewFromInt(100000),
		DueDateDay:            1,
		MonthlyPayment:        decimal.NewFromInt(1200),
		TotalInstallments:     120,
		RemainingInstallments: 100,
		StartDate:             types.NewDate(2022, 5, 1),
	}

	suite.Require().Nil(models.DB.Create(&debt).Error)
	suite.Assert().True(decimal.NewFromInt(100000).Equal(debt.TotalAmount))
}

func (suite *TestSuiteStandard) TestDebtCard() {
	debt := models.Debt{
		Type:        finance.DebtTypeCreditCard,
		Name:        " Maximum ",
		TotalAmount: decimal.NewFromInt(1500),
		DueDateDay:  25,
	}

	suite.Require().Nil(models.DB.Create(&debt).Error)
	suite.Assert().Equal("Maximum", debt.Name)

	domain, err := debt.Domain()
	suite.Require().Nil(err)
	suite.Assert().Equal(finance.DebtTypeCreditCard, domain.Type())
	suite.Assert().Equal(25, domain.Common().DueDateDay)
}

func (suite *TestSuiteStandard) TestDebtValidation() {
	tests := []struct {
		name string
		debt models.Debt
		err  error
	}{
		{"No name", models.Debt{Type: finance.DebtTypeCreditCard, DueDateDay: 1}, models.ErrNameEmpty},
		{"No type", models.Debt{Name: "Kredi", DueDateDay: 1}, finance.ErrMalformedDebt},
		{"Due day", models.Debt{Type: finance.DebtTypeCreditCard, Name: "Bonus", DueDateDay: 32}, finance.ErrMalformedDebt},
		{"Loan without start date", models.Debt{
			Type:                  finance.DebtTypeLoan,
			Name:                  "Kredi",
			DueDateDay:            1,
			MonthlyPayment:        decimal.NewFromInt(10),
			TotalInstallments:     2,
			RemainingInstallments: 2,
		}, finance.ErrMalformedDebt},
		{"Loan with negative remaining", models.Debt{
			Type:                  finance.DebtTypeLoan,
			Name:                  "Kredi",
			DueDateDay:            1,
			MonthlyPayment:        decimal.NewFromInt(10),
			TotalInstallments:     2,
			RemainingInstallments: -1,
			StartDate:             types.NewDate(2024, 1, 1),
		}, finance.ErrMalformedDebt},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			err := models.DB.Create(&tt.debt).Error
			suite.Assert().ErrorIs(err, tt.err)
		})
	}
}

// TestDebtMalformedRow verifies that rows modified outside of the
// models fail to convert.
func (suite *TestSuiteStandard) TestDebtMalformedRow() {
	debt := models.Debt{
		Type:        finance.DebtTypeCreditCard,
		Name:        "Maximum",
		TotalAmount: decimal.NewFromInt(1500),
		DueDateDay:  25,
	}
	suite.Require().Nil(models.DB.Create(&debt).Error)

	err := models.DB.Exec("UPDATE debts SET due_date_day = 0 WHERE id = ?", debt.ID).Error
	suite.Require().Nil(err)

	var stored models.Debt
	suite.Require().Nil(models.DB.First(&stored, debt.ID).Error)

	_, err = stored.Domain()
	suite.Assert().ErrorIs(err, finance.ErrMalformedDebt)
	suite.Assert().NotErrorIs(err, models.ErrGeneral)

	_, err = stored.Loaded()
	suite.Assert().ErrorIs(err, finance.ErrMalformedDebt)
	suite.Assert().ErrorIs(err, models.ErrGeneral)

	_, err = models.Store{DB: models.DB}.FetchDebts(context.Background())
	suite.Assert().ErrorIs(err, finance.ErrMalformedDebt)
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}
