package dashboard

import (
	"context"
	"time"

	"github.com/finboard/backend/internal/types"
	"github.com/finboard/backend/pkg/aggregate"
	"github.com/shopspring/decimal"
)

// SpendingTrendView is the total spending per month.
type SpendingTrendView struct {
	Points  []aggregate.Point     `json:"points"`
	Total   decimal.Decimal       `json:"total" example:"7200"`
	Average decimal.Decimal       `json:"average" example:"1200"`
	Trend   aggregate.TrendResult `json:"trend"` // Last month compared to the one before
}

// CategoryTrend is the spending of one category per month.
type CategoryTrend struct {
	Category string                `json:"category" example:"groceries"`
	Fill     string                `json:"fill" example:"#22c55e"`
	Points   []aggregate.Point     `json:"points"`
	Total    decimal.Decimal       `json:"total" example:"1500"`
	Trend    aggregate.TrendResult `json:"trend"`
}

// CategoryTrendsView is the spending of every reference category per month.
type CategoryTrendsView struct {
	Months     []string        `json:"months" example:"2025-01,2025-02,2025-03"`
	Categories []CategoryTrend `json:"categories"`
}

func roundedPoints(points []aggregate.Point) []aggregate.Point {
	for i := range points {
		points[i].Amount = points[i].Amount.Round(places)
	}
	return points
}

// SpendingTrend returns the total spending of the last n months up to and
// including the month of today. For n == 0, all months with data are returned.
func (s *Service) SpendingTrend(ctx context.Context, n int, today time.Time) (SpendingTrendView, error) {
	months, err := window(n, today)
	if err != nil {
		return SpendingTrendView{}, err
	}

	totals, err := s.source.MonthlyTotals(ctx, months)
	if err != nil {
		return SpendingTrendView{}, done(ctx, err)
	}

	keys := types.Keys(months)
	if months == nil {
		keys = aggregate.MonthKeys(totals)
	}

	points := aggregate.Series(totals, keys)

	total := decimal.Zero
	for _, p := range points {
		total = total.Add(p.Amount)
	}

	average := decimal.Zero
	if len(points) > 0 {
		average = total.Div(decimal.NewFromInt(int64(len(points))))
	}

	trend := aggregate.SeriesTrend(points)

	return SpendingTrendView{
		Points:  roundedPoints(points),
		Trend:   roundedTrend(trend),
		Total:   total.Round(places),
		Average: average.Round(places),
	}, nil
}

// CategoryTrends returns the spending of every reference category in the
// last n months up to and including the month of today. For n == 0, all
// months with data are returned.
func (s *Service) CategoryTrends(ctx context.Context, n int, today time.Time) (CategoryTrendsView, error) {
	months, err := window(n, today)
	if err != nil {
		return CategoryTrendsView{}, err
	}

	records, err := s.source.MonthlySpending(ctx, months)
	if err != nil {
		return CategoryTrendsView{}, done(ctx, err)
	}

	keys := types.Keys(months)
	if months == nil {
		keys = records.Months()
	}

	totals, err := records.ByCategoryAndMonth(s.reference.Names(), keys)
	if err != nil {
		return CategoryTrendsView{}, err
	}

	// Without a window, every month with data is shown and the totals
	// cover all spending
	var lifetime aggregate.Totals
	if months == nil {
		lifetime = records.Lifetime(s.reference.Names())
	}

	view := CategoryTrendsView{Months: keys}
	for _, c := range s.reference.Categories() {
		points := aggregate.Series(totals[c.Name], keys)

		total := decimal.Zero
		for _, p := range points {
			total = total.Add(p.Amount)
		}

		if lifetime != nil {
			total = lifetime[c.Name]
		}

		trend := aggregate.SeriesTrend(points)

		view.Categories = append(view.Categories, CategoryTrend{
			Category: c.Name,
			Fill:     c.CSS(),
			Points:   roundedPoints(points),
			Trend:    roundedTrend(trend),
			Total:    total.Round(places),
		})
	}

	return view, nil
}
