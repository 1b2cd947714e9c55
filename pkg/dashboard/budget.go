package dashboard

import (
	"context"
	"time"

	"github.com/finboard/backend/internal/types"
	"github.com/finboard/backend/pkg/aggregate"
	"github.com/finboard/backend/pkg/reference"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// BudgetRow is the budget status of one category.
type BudgetRow struct {
	Category             reference.Category    `json:"category"`
	Fill                 string                `json:"fill" example:"#22c55e"`
	Budget               decimal.Decimal       `json:"budget" example:"300"`
	Spent                decimal.Decimal       `json:"spent" example:"150"`
	PreviousSpent        decimal.Decimal       `json:"previousSpent" example:"280"`
	PreviousRemainingPct decimal.Decimal       `json:"previousRemainingPct" example:"6.67"`
	Status               aggregate.Status      `json:"status"`
	Trend                aggregate.TrendResult `json:"trend"`
	Overspent            bool                  `json:"overspent" example:"false"` // Set when the predicted spending exceeds the budget
}

// BudgetTotal sums up all rows of the budget view.
type BudgetTotal struct {
	Budget        decimal.Decimal       `json:"budget" example:"2000"`
	Spent         decimal.Decimal       `json:"spent" example:"1200"`
	PreviousSpent decimal.Decimal       `json:"previousSpent" example:"1900"`
	Status        aggregate.Status      `json:"status"`
	Trend         aggregate.TrendResult `json:"trend"`
}

// BudgetView compares the spending of a month with the budgets.
type BudgetView struct {
	Month       types.Month `json:"month" example:"2025-03"`
	Day         int         `json:"day" example:"15"` // The day of the month the prediction is based on
	DaysInMonth int         `json:"daysInMonth" example:"31"`
	Rows        []BudgetRow `json:"rows"`
	Total       BudgetTotal `json:"total"`
}

// day returns the day of the month that spending predictions for month are
// based on. For the current month, this is today, past months are complete.
func day(month types.Month, today time.Time) (int, error) {
	current := types.MonthOf(today)

	switch {
	case month.Equal(current):
		return today.Day(), nil
	case month.Before(current):
		return month.Days(), nil
	default:
		return 0, invalid("budget status for future month %s", month)
	}
}

// Budget returns the budget status of all reference categories for the month.
func (s *Service) Budget(ctx context.Context, month types.Month, today time.Time) (BudgetView, error) {
	dayOfMonth, err := day(month, today)
	if err != nil {
		return BudgetView{}, err
	}

	var (
		current  aggregate.Records
		previous aggregate.Records
		budgets  []aggregate.BudgetEntry
	)

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
	g.Go(func() (err error) {
		budgets, err = s.source.Budgets(gctx)
		return err
	})

	if err := done(ctx, g.Wait()); err != nil {
		return BudgetView{}, err
	}

	names := s.reference.Names()

	spent, err := current.ByCategory(names, month.String())
	if err != nil {
		return BudgetView{}, err
	}

	previousSpent, err := previous.ByCategory(names, previousMonth.String())
	if err != nil {
		return BudgetView{}, err
	}

	amounts := make(map[string]decimal.Decimal, len(budgets))
	for _, b := range budgets {
		amounts[fold(b.Category)] = b.BudgetAmount
	}

	view := BudgetView{
		Month:       month,
		Day:         dayOfMonth,
		DaysInMonth: month.Days(),
		Rows:        make([]BudgetRow, 0, len(names)),
	}

	var total BudgetTotal
	for _, c := range s.reference.Categories() {
		budget := amounts[fold(c.Name)]

		status, err := aggregate.BudgetStatus(budget, spent[c.Name], dayOfMonth, view.DaysInMonth)
		if err != nil {
			return BudgetView{}, err
		}

		view.Rows = append(view.Rows, BudgetRow{
			Category:             c,
			Fill:                 c.CSS(),
			Budget:               budget,
			Spent:                spent[c.Name].Round(places),
			PreviousSpent:        previousSpent[c.Name].Round(places),
			PreviousRemainingPct: aggregate.RemainingPercentage(budget, previousSpent[c.Name]).Round(places),
			Status:               rounded(status),
			Trend:                roundedTrend(aggregate.Trend(spent[c.Name], previousSpent[c.Name])),
			Overspent:            status.PredictedSpend.GreaterThan(budget),
		})

		total.Budget = total.Budget.Add(budget)
		total.Spent = total.Spent.Add(spent[c.Name])
		total.PreviousSpent = total.PreviousSpent.Add(previousSpent[c.Name])
	}

	status, err := aggregate.BudgetStatus(total.Budget, total.Spent, dayOfMonth, view.DaysInMonth)
	if err != nil {
		return BudgetView{}, err
	}

	total.Status = rounded(status)
	total.Trend = roundedTrend(aggregate.Trend(total.Spent, total.PreviousSpent))
	total.Spent = total.Spent.Round(places)
	total.PreviousSpent = total.PreviousSpent.Round(places)
	view.Total = total

	return view, nil
}

// UpdateBudget sets the budget amount of a category.
func (s *Service) UpdateBudget(ctx context.Context, entry aggregate.BudgetEntry) (aggregate.BudgetEntry, error) {
	if entry.Category == "" {
		return aggregate.BudgetEntry{}, invalid("category must not be empty")
	}

	if entry.BudgetAmount.IsNegative() {
		return aggregate.BudgetEntry{}, invalid("budget amount must not be negative, got %s", entry.BudgetAmount)
	}

	// Budgets for unknown categories are allowed, but they are not shown
	s.category("budget", entry.Category)

	updated, err := s.source.SetBudget(ctx, entry)
	if err != nil {
		return aggregate.BudgetEntry{}, done(ctx, err)
	}

	return updated, nil
}
