package finance

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// swagger:enum Tier
type Tier string

const (
	TierNormal   Tier = "normal"
	TierWarning  Tier = "warning"
	TierCritical Tier = "critical"
)

// Lower bounds of the tiers, in percent.
const (
	WarningThreshold  = 80
	CriticalThreshold = 100
)

// BudgetStatus is the spending of a category measured against its limit.
type BudgetStatus struct {
	Category   string
	Spent      decimal.Decimal
	Limit      decimal.Decimal
	Percentage int64 // Not capped, values over 100 mean overspending
	Tier       Tier
}

// Evaluate computes how much of the limit for a category has been spent.
//
// The percentage is rounded half away from zero.
func Evaluate(category string, spent, limit decimal.Decimal) (BudgetStatus, error) {
	if !limit.IsPositive() {
		return BudgetStatus{}, fmt.Errorf("%w: limit for %q is %s", ErrInvalidBudget, category, limit)
	}

	percentage := spent.Mul(decimal.NewFromInt(100)).Div(limit).Round(0).IntPart()

	return BudgetStatus{
		Category:   category,
		Spent:      spent,
		Limit:      limit,
		Percentage: percentage,
		Tier:       TierOf(percentage),
	}, nil
}

// TierOf returns the tier for a percentage. Each tier includes its lower bound.
func TierOf(percentage int64) Tier {
	switch {
	case percentage >= CriticalThreshold:
		return TierCritical
	case percentage >= WarningThreshold:
		return TierWarning
	default:
		return TierNormal
	}
}

// DisplayPercentage is the percentage clamped to [0, 100] for progress bars.
func (s BudgetStatus) DisplayPercentage() int64 {
	return max(0, min(s.Percentage, 100))
}
