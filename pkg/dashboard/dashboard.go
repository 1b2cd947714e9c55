// Package dashboard composes the views of the finance dashboard from a data
// source and the category reference data.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/finboard/backend/internal/types"
	"github.com/finboard/backend/pkg/aggregate"
	"github.com/finboard/backend/pkg/reference"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
)

// places is the number of decimal places that amounts and percentages are rounded to in views.
const places = 2

// maxMonths is the maximum number of months a view covers.
const maxMonths = 120

// Service builds the dashboard views.
type Service struct {
	source    Source
	reference *reference.Set
}

// New returns a new Service. Category names from the source are matched
// against the reference data ignoring case.
func New(source Source, set *reference.Set) *Service {
	return &Service{source: canonical{Source: source, reference: set}, reference: set}
}

// Reference returns the reference data the service uses.
func (s *Service) Reference() *reference.Set {
	return s.reference
}

// invalid returns an error wrapping aggregate.ErrInvalidInput.
func invalid(format string, a ...any) error {
	return fmt.Errorf("%w: %s", aggregate.ErrInvalidInput, fmt.Sprintf(format, a...))
}

// done returns the context's error if it has been cancelled. Results
// of a cancelled request are discarded.
func done(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	return err
}

// category returns the reference data for the category. Categories without
// reference data get the fallback colors and are logged.
func (s *Service) category(view, name string) reference.Category {
	c, err := s.reference.Category(name)
	if errors.Is(err, reference.ErrMissingReferenceData) {
		log.Warn().Str("view", view).Err(err).Msg("Dashboard")
	}
	return c
}

// rounded returns the status with all values rounded for display.
func rounded(s aggregate.Status) aggregate.Status {
	return aggregate.Status{
		Remaining:             s.Remaining.Round(places),
		RemainingPct:          s.RemainingPct.Round(places),
		PredictedSpend:        s.PredictedSpend.Round(places),
		PredictedRemaining:    s.PredictedRemaining.Round(places),
		PredictedRemainingPct: s.PredictedRemainingPct.Round(places),
	}
}

func roundedTrend(t aggregate.TrendResult) aggregate.TrendResult {
	return aggregate.TrendResult{PercentageChange: t.PercentageChange.Round(places), IsIncrease: t.IsIncrease}
}

// window returns the n months up to and including the month of today.
// For n == 0, it returns nil, which means all months with data.
func window(n int, today time.Time) ([]types.Month, error) {
	if n < 0 {
		return nil, invalid("number of months must not be negative, got %d", n)
	}

	if n > maxMonths {
		return nil, invalid("number of months must be at most %d, got %d", maxMonths, n)
	}

	if n == 0 {
		return nil, nil
	}

	return types.Last(types.MonthOf(today), n), nil
}

// share returns amount as a percentage of total, 0 for a total that is not positive.
func share(amount, total decimal.Decimal) decimal.Decimal {
	if !total.IsPositive() {
		return decimal.Zero
	}
	return amount.Div(total).Mul(decimal.NewFromInt(100)).Round(places)
}

// fold normalizes category names for case-insensitive matching.
func fold(name string) string {
	return cases.Fold().String(name)
}
