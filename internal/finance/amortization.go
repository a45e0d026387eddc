package finance

import (
	"fmt"

	"github.com/senior-finance/backend/internal/types"
	"github.com/shopspring/decimal"
)

// PaidInstallments returns the number of installments of the loan that
// are due on or before asOf.
//
// An installment counts as paid once its due day has been reached in its
// month. The due day is not adjusted for short months, so a loan due on the
// 31st is paid one day late in April. Start dates after asOf and a zero
// asOf yield 0, the result never exceeds the number of installments.
func PaidInstallments(loan Loan, asOf types.Date) int {
	if asOf.IsZero() || loan.TotalInstallments <= 0 {
		return 0
	}

	paid := asOf.MonthsSince(loan.StartDate)
	if asOf.Day() >= loan.DueDateDay {
		paid++
	}

	return max(0, min(paid, loan.TotalInstallments))
}

// RemainingInstallments is the number of installments not yet paid at asOf.
func RemainingInstallments(loan Loan, asOf types.Date) int {
	return max(0, loan.TotalInstallments) - PaidInstallments(loan, asOf)
}

// RemainingBalance is the sum of all installments not yet paid at asOf.
func RemainingBalance(loan Loan, asOf types.Date) decimal.Decimal {
	return loan.MonthlyPayment.Mul(decimal.NewFromInt(int64(RemainingInstallments(loan, asOf))))
}

// Progress is the truncated percentage of installments paid at asOf.
func Progress(loan Loan, asOf types.Date) int {
	if loan.TotalInstallments <= 0 {
		return 0
	}

	return PaidInstallments(loan, asOf) * 100 / loan.TotalInstallments
}

// Schedule returns one obligation for every installment of the loan.
//
// Installment i is due in the i-th month after the month of the start date
// on the due day, clamped to the last day of shorter months.
func Schedule(loan Loan) []VirtualObligation {
	schedule := make([]VirtualObligation, 0, max(0, loan.TotalInstallments))
	start := loan.StartDate.CalendarMonth()

	for i := 0; i < loan.TotalInstallments; i++ {
		schedule = append(schedule, VirtualObligation{
			SourceDebtID: loan.ID,
			Title:        fmt.Sprintf("%s (%d/%d)", loan.Name, i+1, loan.TotalInstallments),
			Amount:       loan.MonthlyPayment,
			DueDate:      start.AddDate(0, i).Date(loan.DueDateDay),
			Category:     CategoryLoanInstallment,
			Kind:         KindLoanPayment,
			Installment:  i + 1,
			Installments: loan.TotalInstallments,
		})
	}

	return schedule
}
