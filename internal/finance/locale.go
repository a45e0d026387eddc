package finance

import (
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Locale is the only locale amounts and dates are presented in.
var Locale = language.Turkish

var monthNames = [...]string{
	time.January:   "Ocak",
	time.February:  "Şubat",
	time.March:     "Mart",
	time.April:     "Nisan",
	time.May:       "Mayıs",
	time.June:      "Haziran",
	time.July:      "Temmuz",
	time.August:    "Ağustos",
	time.September: "Eylül",
	time.October:   "Ekim",
	time.November:  "Kasım",
	time.December:  "Aralık",
}

// MonthName returns the Turkish name of the month.
func MonthName(m time.Month) string {
	if m < time.January || m > time.December {
		return m.String()
	}
	return monthNames[m]
}

// FormatWholeAmount formats an amount rounded to whole lira, e.g. "12.500".
func FormatWholeAmount(amount decimal.Decimal) string {
	return message.NewPrinter(Locale).Sprintf("%d", amount.Round(0).IntPart())
}

// FormatAmount formats an amount with two decimals, e.g. "2.062,50".
func FormatAmount(amount decimal.Decimal) string {
	return message.NewPrinter(Locale).Sprintf("%.2f", amount.Round(2).InexactFloat64())
}
