package dashboard

import (
	"context"

	"github.com/finboard/backend/internal/types"
	"github.com/finboard/backend/pkg/aggregate"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

// CategorySlice is the spending of one category in a month.
type CategorySlice struct {
	Category string          `json:"category" example:"groceries"`
	Amount   decimal.Decimal `json:"amount" example:"250"`
	Share    decimal.Decimal `json:"share" example:"20.5"` // Share of the month's total, in percent
	Fill     string          `json:"fill" example:"#22c55e"`
}

// CategoriesView is the spending per category of a month.
type CategoriesView struct {
	Month  types.Month           `json:"month" example:"2025-03"`
	Slices []CategorySlice       `json:"slices"`
	Total  decimal.Decimal       `json:"total" example:"1220"`
	Trend  aggregate.TrendResult `json:"trend"` // Compared to the previous month
}

// Categories returns the spending per reference category for the month,
// largest first. Categories without spending are included with zero.
func (s *Service) Categories(ctx context.Context, month types.Month) (CategoriesView, error) {
	var current, previous aggregate.Records
	previousMonth := month.AddDate(0, -1)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		current, err = s.source.Spending(gctx, month)
		return err
	})
	g.Go(func() (err error) {
		previous, err = s.source.Spending(gctx, previousMonth)
		return err
	})

	if err := done(ctx, g.Wait()); err != nil {
		return CategoriesView{}, err
	}

	names := s.reference.Names()

	totals, err := current.ByCategory(names, month.String())
	if err != nil {
		return CategoriesView{}, err
	}

	previousTotals, err := previous.ByCategory(names, previousMonth.String())
	if err != nil {
		return CategoriesView{}, err
	}

	total := totals.Sum()
	view := CategoriesView{
		Month:  month,
		Slices: make([]CategorySlice, 0, len(names)),
		Total:  total.Round(places),
		Trend:  roundedTrend(aggregate.Trend(total, previousTotals.Sum())),
	}

	for _, c := range s.reference.Categories() {
		view.Slices = append(view.Slices, CategorySlice{
			Category: c.Name,
			Amount:   totals[c.Name].Round(places),
			Share:    share(totals[c.Name], total),
			Fill:     c.CSS(),
		})
	}

	// Ties keep the reference order
	slices.SortStableFunc(view.Slices, func(a, b CategorySlice) int {
		return b.Amount.Cmp(a.Amount)
	})

	return view, nil
}
