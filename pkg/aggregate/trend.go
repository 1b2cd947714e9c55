package aggregate

import (
	"github.com/shopspring/decimal"
)

// TrendResult is the relative change between two amounts.
type TrendResult struct {
	PercentageChange decimal.Decimal `json:"percentageChange" example:"12.5"` // Absolute relative change in percent, never negative
	IsIncrease       bool            `json:"isIncrease" example:"true"`       // Whether current is greater than or equal to previous
}

// Trend computes the relative change from previous to current.
//
// A zero previous amount yields no change and counts as an increase.
func Trend(current, previous decimal.Decimal) TrendResult {
	if previous.IsZero() {
		return TrendResult{PercentageChange: decimal.Zero, IsIncrease: true}
	}

	change := current.Sub(previous).Div(previous).Mul(hundred).Abs()
	return TrendResult{
		PercentageChange: change,
		IsIncrease:       current.GreaterThanOrEqual(previous),
	}
}

// Point is the amount for one month of a series.
type Point struct {
	Month  string          `json:"month" example:"2025-03"`
	Amount decimal.Decimal `json:"amount" example:"1432.10"`
}

// Series returns one point per month, in the order of months. Months
// missing from totals have a zero amount.
func Series(totals map[string]decimal.Decimal, months []string) []Point {
	points := make([]Point, 0, len(months))
	for _, month := range months {
		points = append(points, Point{Month: month, Amount: totals[month]})
	}
	return points
}

// SeriesTrend computes the trend between the last two points of a series.
func SeriesTrend(points []Point) TrendResult {
	if len(points) < 2 {
		return TrendResult{PercentageChange: decimal.Zero, IsIncrease: true}
	}

	return Trend(points[len(points)-1].Amount, points[len(points)-2].Amount)
}
