package dashboard

import (
	"context"
	"time"

	"github.com/finboard/backend/internal/types"
	"github.com/finboard/backend/pkg/aggregate"
	"github.com/finboard/backend/pkg/fetcher"
	"github.com/finboard/backend/pkg/models"
	"github.com/finboard/backend/pkg/reference"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Source delivers the data for the dashboard views.
//
// For the monthly methods, a nil slice of months requests all months with data.
type Source interface {
	Spending(ctx context.Context, month types.Month) (aggregate.Records, error)
	MonthlySpending(ctx context.Context, months []types.Month) (aggregate.MonthlyRecords, error)
	MonthlyTotals(ctx context.Context, months []types.Month) (map[string]decimal.Decimal, error)
	IncomeForMonth(ctx context.Context, month types.Month) (decimal.Decimal, error)
	Income(ctx context.Context) ([]aggregate.Income, error)
	Budgets(ctx context.Context) ([]aggregate.BudgetEntry, error)
	SetBudget(ctx context.Context, entry aggregate.BudgetEntry) (aggregate.BudgetEntry, error)
	Travel(ctx context.Context) ([]aggregate.Trip, error)
}

// canonical spells the categories of all spending the way the reference data
// does, so that every view matches them the same way.
type canonical struct {
	Source
	reference *reference.Set
}

func (c canonical) Spending(ctx context.Context, month types.Month) (aggregate.Records, error) {
	records, err := c.Source.Spending(ctx, month)
	if err != nil {
		return aggregate.Records{}, err
	}
	return records.Rename(c.reference.Canonical), nil
}

func (c canonical) MonthlySpending(ctx context.Context, months []types.Month) (aggregate.MonthlyRecords, error) {
	records, err := c.Source.MonthlySpending(ctx, months)
	if err != nil {
		return aggregate.MonthlyRecords{}, err
	}
	return records.Rename(c.reference.Canonical), nil
}

// Remote reads from the finance backend, which delivers totals that are
// already summed per category.
type Remote struct {
	client *fetcher.Client
	now    func() time.Time
}

// NewRemote returns a Source backed by the finance backend.
func NewRemote(client *fetcher.Client) *Remote {
	return &Remote{client: client, now: time.Now}
}

// span returns the number of months from the earliest of months up to the
// current month, which is what the backend's month window needs to contain
// all of them. For no months, it is 0, which requests all months.
func (r *Remote) span(months []types.Month) int {
	if len(months) == 0 {
		return 0
	}

	earliest := months[0]
	for _, m := range months[1:] {
		if m.Before(earliest) {
			earliest = m
		}
	}

	n := types.Span(earliest, types.MonthOf(r.now()))
	if n < 1 {
		return 1
	}
	return n
}

func (r *Remote) Spending(ctx context.Context, month types.Month) (aggregate.Records, error) {
	totals, err := r.client.CategoryTotals(ctx, month)
	if err != nil {
		return aggregate.Records{}, err
	}
	return aggregate.FromTotals(totals), nil
}

func (r *Remote) MonthlySpending(ctx context.Context, months []types.Month) (aggregate.MonthlyRecords, error) {
	totals, err := r.client.MonthlyCategoryTotals(ctx, r.span(months))
	if err != nil {
		return aggregate.MonthlyRecords{}, err
	}
	return aggregate.MonthlyFromTotals(totals), nil
}

func (r *Remote) MonthlyTotals(ctx context.Context, months []types.Month) (map[string]decimal.Decimal, error) {
	return r.client.MonthlyTotals(ctx, r.span(months))
}

func (r *Remote) IncomeForMonth(ctx context.Context, month types.Month) (decimal.Decimal, error) {
	return r.client.IncomeForMonth(ctx, month)
}

func (r *Remote) Income(ctx context.Context) ([]aggregate.Income, error) {
	return r.client.Income(ctx)
}

func (r *Remote) Budgets(ctx context.Context) ([]aggregate.BudgetEntry, error) {
	return r.client.Budgets(ctx)
}

func (r *Remote) SetBudget(ctx context.Context, entry aggregate.BudgetEntry) (aggregate.BudgetEntry, error) {
	return r.client.SetBudget(ctx, entry)
}

func (r *Remote) Travel(ctx context.Context) ([]aggregate.Trip, error) {
	return r.client.Travel(ctx)
}

// BudgetWriter stores budgets in the finance backend.
type BudgetWriter interface {
	SetBudget(ctx context.Context, entry aggregate.BudgetEntry) (aggregate.BudgetEntry, error)
}

// Local reads from the offline mirror, which stores raw transactions.
// All summation happens in the aggregate package.
type Local struct {
	db       *gorm.DB
	patterns []string
	writer   BudgetWriter
}

// NewLocal returns a Source backed by the offline mirror. Travel spending is
// grouped by the sub-categories that match any of the glob patterns.
//
// Budget updates are written to the writer first and then to the mirror, so
// that the next synchronization keeps them. With a nil writer, budgets are
// only stored in the mirror.
func NewLocal(db *gorm.DB, travelPatterns []string, writer BudgetWriter) *Local {
	return &Local{db: db, patterns: travelPatterns, writer: writer}
}

func (l *Local) Spending(ctx context.Context, month types.Month) (aggregate.Records, error) {
	transactions, err := models.TransactionsBetween(l.db.WithContext(ctx), month.Start(), month.End())
	if err != nil {
		return aggregate.Records{}, err
	}
	return aggregate.FromTransactions(transactions), nil
}

func (l *Local) MonthlySpending(ctx context.Context, _ []types.Month) (aggregate.MonthlyRecords, error) {
	transactions, err := models.Transactions(l.db.WithContext(ctx))
	if err != nil {
		return aggregate.MonthlyRecords{}, err
	}
	return aggregate.MonthlyFromTransactions(transactions), nil
}

func (l *Local) MonthlyTotals(ctx context.Context, months []types.Month) (map[string]decimal.Decimal, error) {
	transactions, err := models.Transactions(l.db.WithContext(ctx))
	if err != nil {
		return nil, err
	}

	keys := types.Keys(months)
	if months == nil {
		keys = aggregate.MonthlyFromTransactions(transactions).Months()
	}
	return aggregate.ByMonth(transactions, keys)
}

func (l *Local) IncomeForMonth(ctx context.Context, month types.Month) (decimal.Decimal, error) {
	income, err := models.AllIncome(l.db.WithContext(ctx))
	if err != nil {
		return decimal.Zero, err
	}
	return aggregate.IncomeInMonth(income, month.String())
}

func (l *Local) Income(ctx context.Context) ([]aggregate.Income, error) {
	return models.AllIncome(l.db.WithContext(ctx))
}

func (l *Local) Budgets(ctx context.Context) ([]aggregate.BudgetEntry, error) {
	return models.Budgets(l.db.WithContext(ctx))
}

func (l *Local) SetBudget(ctx context.Context, entry aggregate.BudgetEntry) (aggregate.BudgetEntry, error) {
	if l.writer != nil {
		stored, err := l.writer.SetBudget(ctx, entry)
		if err != nil {
			return aggregate.BudgetEntry{}, err
		}
		entry = stored
	}
	return models.SetBudget(l.db.WithContext(ctx), entry)
}

func (l *Local) Travel(ctx context.Context) ([]aggregate.Trip, error) {
	transactions, err := models.Transactions(l.db.WithContext(ctx))
	if err != nil {
		return nil, err
	}
	return aggregate.Travel(transactions, l.patterns), nil
}
