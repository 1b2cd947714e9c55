package dashboard

import (
	"context"

	"github.com/finboard/backend/internal/types"
	"github.com/finboard/backend/pkg/aggregate"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// ReportMonth is the income and spending of one month in a report.
type ReportMonth struct {
	Month  string          `json:"month" example:"2025-03"`
	Income decimal.Decimal `json:"income" example:"3200"`
	Spent  decimal.Decimal `json:"spent" example:"1800"`
	Net    decimal.Decimal `json:"net" example:"1400"`
}

// ReportView summarizes income and spending over a range of months.
type ReportView struct {
	From       types.Month             `json:"from" example:"2025-01"`
	To         types.Month             `json:"to" example:"2025-03"`
	Summary    aggregate.SummaryResult `json:"summary"`
	Months     []ReportMonth           `json:"months"`
	Categories []CategorySlice         `json:"categories"` // Spending per reference category over the whole range
}

// Report returns income and spending for all months from from to to, both inclusive.
func (s *Service) Report(ctx context.Context, from, to types.Month) (ReportView, error) {
	if to.Before(from) {
		return ReportView{}, invalid("report end %s is before its start %s", to, from)
	}

	if n := types.Span(from, to); n > maxMonths {
		return ReportView{}, invalid("a report covers at most %d months, got %d", maxMonths, n)
	}

	months := types.Range(from, to)
	keys := types.Keys(months)

	var (
		records aggregate.MonthlyRecords
		totals  map[string]decimal.Decimal
		income  []aggregate.Income
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		records, err = s.source.MonthlySpending(gctx, months)
		return err
	})
	g.Go(func() (err error) {
		totals, err = s.source.MonthlyTotals(gctx, months)
		return err
	})
	g.Go(func() (err error) {
		income, err = s.source.Income(gctx)
		return err
	})

	if err := done(ctx, g.Wait()); err != nil {
		return ReportView{}, err
	}

	view := ReportView{From: from, To: to, Months: make([]ReportMonth, 0, len(keys))}

	totalIncome, err := aggregate.IncomeBetween(income, from.String(), to.String())
	if err != nil {
		return ReportView{}, err
	}

	totalSpent := decimal.Zero
	for _, key := range keys {
		earned, err := aggregate.IncomeInMonth(income, key)
		if err != nil {
			return ReportView{}, err
		}

		spent := totals[key]
		totalSpent = totalSpent.Add(spent)

		view.Months = append(view.Months, ReportMonth{
			Month:  key,
			Income: earned.Round(places),
			Spent:  spent.Round(places),
			Net:    earned.Sub(spent).Round(places),
		})
	}

	summary := aggregate.Summary(totalIncome, totalSpent)
	view.Summary = aggregate.SummaryResult{
		TotalIncome:   summary.TotalIncome.Round(places),
		TotalExpenses: summary.TotalExpenses.Round(places),
		NetIncome:     summary.NetIncome.Round(places),
		SavingsRate:   summary.SavingsRate.Round(places),
	}

	byMonth, err := records.ByCategoryAndMonth(s.reference.Names(), keys)
	if err != nil {
		return ReportView{}, err
	}

	categories := aggregate.Totals{}
	for _, c := range s.reference.Categories() {
		categories[c.Name] = aggregate.Totals(byMonth[c.Name]).Sum()
	}

	sum := categories.Sum()
	for _, c := range s.reference.Categories() {
		view.Categories = append(view.Categories, CategorySlice{
			Category: c.Name,
			Amount:   categories[c.Name].Round(places),
			Share:    share(categories[c.Name], sum),
			Fill:     c.CSS(),
		})
	}

	return view, nil
}
