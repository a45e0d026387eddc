package models

import (
	"github.com/rs/zerolog/log"
	"github.com/senior-finance/backend/internal/finance"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Seed inserts demo transactions into an empty database. Databases that
// already contain transactions are not modified.
func Seed(db *gorm.DB) error {
	var count int64
	err := db.Model(&Transaction{}).Count(&count).Error
	if err != nil {
		return err
	}

	if count > 0 {
		log.Debug().Int64("transactions", count).Msg("database is not empty, skipping seed")
		return nil
	}

	income := func(title, category, icon string, amount string) Transaction {
		return Transaction{Title: title, Category: category, Icon: icon, Amount: decimal.RequireFromString(amount), Type: finance.TypeIncome}
	}

	expense := func(title, category, icon string, amount string) Transaction {
		return Transaction{Title: title, Category: category, Icon: icon, Amount: decimal.RequireFromString(amount), Type: finance.TypeExpense}
	}

	bill := func(title, icon, amount, due string, status finance.TransactionStatus) Transaction {
		t := expense(title, "Fatura", icon, amount)
		t.IsRecurring = true
		t.Status = status
		t.DueDateText = due
		return t
	}

	transactions := []Transaction{
		income("Maaş", "Maaş", "account_balance_wallet", "12500"),
		expense("Market Alışverişi", "Mutfak", "shopping_cart", "3300"),
		expense("İlaç Alımı", "Sağlık", "medication", "2062.50"),
		expense("Aylık Akbil", "Ulaşım", "directions_bus", "1650"),
		expense("Diğer Harcamalar", "Diğer", "receipt", "1237.50"),
		bill("Elektrik Faturası", "bolt", "450", "26 Ekim", finance.StatusUnpaid),
		bill("Su Faturası", "water_drop", "120", "28 Ekim", finance.StatusUnpaid),
		bill("İnternet", "router", "290", "30 Ekim", finance.StatusAutopay),
	}

	err = db.Create(&transactions).Error
	if err != nil {
		return err
	}

	log.Info().Int("transactions", len(transactions)).Msg("seeded database with demo data")
	return nil
}
