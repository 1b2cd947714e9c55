package aggregate

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Status describes how a budget performs so far and at the end of the month
// if spending continues linearly.
type Status struct {
	Remaining             decimal.Decimal `json:"remaining" example:"150"`
	RemainingPct          decimal.Decimal `json:"remainingPercentage" example:"50"`
	PredictedSpend        decimal.Decimal `json:"predictedSpend" example:"300"`
	PredictedRemaining    decimal.Decimal `json:"predictedRemaining" example:"0"`
	PredictedRemainingPct decimal.Decimal `json:"predictedRemainingPercentage" example:"0"`
}

// RemainingPercentage returns the share of the budget that is not spent, in
// percent. It is zero for budgets that are not positive.
func RemainingPercentage(budget, spent decimal.Decimal) decimal.Decimal {
	if !budget.IsPositive() {
		return decimal.Zero
	}

	return budget.Sub(spent).Div(budget).Mul(hundred)
}

// BudgetStatus computes the budget status for a category on day dayOfMonth
// of a month with daysInMonth days.
//
// The end-of-month prediction extrapolates the spending so far linearly.
func BudgetStatus(budget, spent decimal.Decimal, dayOfMonth, daysInMonth int) (Status, error) {
	if daysInMonth < 1 {
		return Status{}, fmt.Errorf("%w: a month must have at least one day, got %d", ErrInvalidInput, daysInMonth)
	}

	if dayOfMonth < 1 || dayOfMonth > daysInMonth {
		return Status{}, fmt.Errorf("%w: day %d is not between 1 and %d", ErrInvalidInput, dayOfMonth, daysInMonth)
	}

	predictedSpend := spent.Mul(decimal.NewFromInt(int64(daysInMonth))).Div(decimal.NewFromInt(int64(dayOfMonth)))

	return Status{
		Remaining:             budget.Sub(spent),
		RemainingPct:          RemainingPercentage(budget, spent),
		PredictedSpend:        predictedSpend,
		PredictedRemaining:    budget.Sub(predictedSpend),
		PredictedRemainingPct: RemainingPercentage(budget, predictedSpend),
	}, nil
}
