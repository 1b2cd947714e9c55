package dashboard

import (
	"context"

	"github.com/finboard/backend/internal/types"
	"github.com/finboard/backend/pkg/aggregate"
	"github.com/finboard/backend/pkg/reference"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// savingsColor is the color of the savings entry in the cash flow.
const savingsColor = "green"

// CashFlowEntry is one slice of the cash flow with its display color.
type CashFlowEntry struct {
	aggregate.CashFlowEntry
	Fill string `json:"fill" example:"#22c55e"`
}

// CashFlowView shows where a month's income went.
type CashFlowView struct {
	Month   types.Month     `json:"month" example:"2025-03"`
	Income  decimal.Decimal `json:"income" example:"2000"`
	Spent   decimal.Decimal `json:"spent" example:"1500"`
	Savings decimal.Decimal `json:"savings" example:"500"`
	Entries []CashFlowEntry `json:"entries"`
}

// CashFlow returns the split of the month's income into spending per
// category and savings.
//
// Spending in categories without reference data is included with the
// fallback colors since the money has been spent all the same.
func (s *Service) CashFlow(ctx context.Context, month types.Month) (CashFlowView, error) {
	var (
		records aggregate.Records
		income  decimal.Decimal
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		records, err = s.source.Spending(gctx, month)
		return err
	})
	g.Go(func() (err error) {
		income, err = s.source.IncomeForMonth(gctx, month)
		return err
	})

	if err := done(ctx, g.Wait()); err != nil {
		return CashFlowView{}, err
	}

	names := s.reference.Names()

	spending, err := records.ByCategory(names, month.String())
	if err != nil {
		return CashFlowView{}, err
	}

	unreferenced, err := records.Unreferenced(names, month.String())
	if err != nil {
		return CashFlowView{}, err
	}

	result := aggregate.CashFlow(income, aggregate.Merge(spending, unreferenced), names)

	view := CashFlowView{
		Month:   month,
		Income:  result.Income.Round(places),
		Spent:   result.Spent.Round(places),
		Savings: result.Savings.Round(places),
		Entries: make([]CashFlowEntry, 0, len(result.Entries)),
	}

	for _, e := range result.Entries {
		e.Amount = e.Amount.Round(places)
		e.Share = e.Share.Round(places)

		fill := reference.CSS(savingsColor)
		if !e.Savings {
			fill = s.category("cash flow", e.Name).CSS()
		}

		view.Entries = append(view.Entries, CashFlowEntry{CashFlowEntry: e, Fill: fill})
	}

	return view, nil
}
