package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/senior-finance/backend/internal/finance"
	"github.com/senior-finance/backend/internal/types"
	"github.com/shopspring/decimal"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	nameStyle     = lipgloss.NewStyle().Width(28)
	categoryStyle = lipgloss.NewStyle().Width(16).Foreground(lipgloss.Color("245"))
	amountStyle   = lipgloss.NewStyle().Width(14).Align(lipgloss.Right)
	dueStyle      = lipgloss.NewStyle().PaddingLeft(2)
	overdueStyle  = dueStyle.Foreground(lipgloss.Color("#f38ba8"))
	paidStyle     = dueStyle.Foreground(lipgloss.Color("#a6e3a1"))
	totalStyle    = lipgloss.NewStyle().Bold(true).BorderTop(true).BorderStyle(lipgloss.NormalBorder())

	tierStyles = map[finance.Tier]lipgloss.Style{
		finance.TierNormal:   lipgloss.NewStyle().Foreground(lipgloss.Color("#a6e3a1")),
		finance.TierWarning:  lipgloss.NewStyle().Foreground(lipgloss.Color("#f9e2af")),
		finance.TierCritical: lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8")),
	}
)

const barWidth = 20

func formatLira(amount decimal.Decimal) string {
	return finance.FormatAmount(amount) + " ₺"
}

func formatDate(d types.Date) string {
	return fmt.Sprintf("%d %s %d", d.Day(), finance.MonthName(d.Month()), d.Year())
}

// due describes when the item is due and styles it by its state.
func due(item finance.DisplayItem) string {
	if o := item.Obligation; o != nil {
		if o.Overdue {
			return overdueStyle.Render(o.DueDateDescription)
		}
		return dueStyle.Render(o.DueDateDescription)
	}

	t := item.Transaction
	text := t.DueDateText
	if text == "" {
		text = fmt.Sprintf("%d %s", t.Date.Day(), finance.MonthName(t.Date.Month()))
	}

	switch t.Status {
	case finance.StatusCompleted:
		return paidStyle.Render(text + " · Ödendi")
	case finance.StatusAutopay:
		return dueStyle.Render(text + " · Otomatik")
	default:
		return dueStyle.Render(text)
	}
}

// renderUpcoming writes the upcoming payments and their total.
func renderUpcoming(w io.Writer, asOf types.Date, items []finance.DisplayItem) {
	fmt.Fprintln(w, titleStyle.Render("Yaklaşan Ödemeler · "+formatDate(asOf)))

	if len(items) == 0 {
		fmt.Fprintln(w, "Yaklaşan ödeme yok.")
		return
	}

	for _, item := range items {
		fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top,
			nameStyle.Render(item.Title()),
			categoryStyle.Render(item.Category()),
			amountStyle.Render(formatLira(item.Amount())),
			due(item),
		))
	}

	total := lipgloss.JoinHorizontal(lipgloss.Top,
		nameStyle.Render("Toplam"),
		categoryStyle.Render(""),
		amountStyle.Render(formatLira(finance.UpcomingTotal(items))),
	)
	fmt.Fprintln(w, totalStyle.Render(total))
}

// bar is a progress bar filled to the percentage, capped at full.
func bar(percentage int64) string {
	filled := int(percentage) * barWidth / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
}

// renderBudgets writes the status of all budgets of the month.
func renderBudgets(w io.Writer, month types.Month, statuses []finance.BudgetStatus) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("Bütçeler · %s %d", finance.MonthName(month.Month()), month.Year())))

	if len(statuses) == 0 {
		fmt.Fprintln(w, "Bütçe tanımlı değil.")
		return
	}

	for _, s := range statuses {
		style := tierStyles[s.Tier]

		fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top,
			nameStyle.Render(s.Category),
			style.Render(bar(s.DisplayPercentage())),
			amountStyle.Render(fmt.Sprintf("%%%d", s.Percentage)),
			dueStyle.Render(formatLira(s.Spent)+" / "+formatLira(s.Limit)),
		))
	}
}
