// Package aggregate groups transactions by category and month and derives
// the metrics shown on the dashboard views.
//
// All functions are pure: they never mutate their inputs and keep no state
// between calls, so they are safe for concurrent use.
package aggregate

import (
	"errors"
	"fmt"
	"time"

	"github.com/finboard/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// ErrInvalidInput is returned for malformed month keys and day numbers.
var ErrInvalidInput = errors.New("invalid input")

var hundred = decimal.NewFromInt(100)

// Transaction is a single spending record as delivered by the finance backend.
type Transaction struct {
	ID          int64           `json:"id" example:"42"`
	Name        string          `json:"name" example:"Weekly groceries"`
	Amount      decimal.Decimal `json:"amount" example:"82.17"`
	Date        time.Time       `json:"date" example:"2025-03-07T00:00:00Z"`
	Category    string          `json:"category" example:"groceries"`
	SubCategory string          `json:"subCategory" example:"groceries"`
	Method      string          `json:"method" example:"credit card"`
}

// Month returns the month bucket of the transaction.
func (t Transaction) Month() types.Month {
	return types.MonthOf(t.Date)
}

// BudgetEntry is the budget for one category in the current period.
type BudgetEntry struct {
	Category     string          `json:"category" example:"groceries"`
	BudgetAmount decimal.Decimal `json:"budgetAmount" example:"400"`
}

// Totals maps a category name to an amount.
type Totals map[string]decimal.Decimal

// CategoryMonthlyTotals maps a category name to the amounts per month bucket (YYYY-MM).
type CategoryMonthlyTotals map[string]map[string]decimal.Decimal

// Sum returns the sum of all amounts.
func (t Totals) Sum() decimal.Decimal {
	sum := decimal.Zero
	for _, amount := range t {
		sum = sum.Add(amount)
	}
	return sum
}

// parseMonth parses a month key and maps format errors to ErrInvalidInput.
func parseMonth(key string) (types.Month, error) {
	month, err := types.ParseMonth(key)
	if err != nil {
		return types.Month{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return month, nil
}

// parseMonths parses an ordered set of month keys. Duplicates are rejected.
func parseMonths(keys []string) ([]types.Month, error) {
	months := make([]types.Month, 0, len(keys))
	for i, key := range keys {
		if slices.Contains(keys[:i], key) {
			return nil, fmt.Errorf("%w: month %s is requested more than once", ErrInvalidInput, key)
		}

		month, err := parseMonth(key)
		if err != nil {
			return nil, err
		}
		months = append(months, month)
	}
	return months, nil
}

// zero returns Totals with all categories set to zero.
func zero(categories []string) Totals {
	totals := make(Totals, len(categories))
	for _, name := range categories {
		totals[name] = decimal.Zero
	}
	return totals
}

// ByCategory sums the amounts of all transactions in the month per category.
//
// Every category in categories is part of the result, categories without
// transactions map to zero. Transactions outside the month or with a category
// that is not in categories are ignored.
func ByCategory(transactions []Transaction, categories []string, month string) (Totals, error) {
	m, err := parseMonth(month)
	if err != nil {
		return nil, err
	}

	totals := zero(categories)
	for _, t := range transactions {
		if !m.Contains(t.Date) {
			continue
		}

		if sum, ok := totals[t.Category]; ok {
			totals[t.Category] = sum.Add(t.Amount)
		}
	}

	return totals, nil
}

// ByCategoryAndMonth sums the amounts of all transactions per category and month.
//
// months is the explicit, ordered set of buckets to compute. The result
// contains exactly these buckets for every category, zero-filled. It never
// adds or drops buckets on its own.
func ByCategoryAndMonth(transactions []Transaction, categories []string, months []string) (CategoryMonthlyTotals, error) {
	parsed, err := parseMonths(months)
	if err != nil {
		return nil, err
	}

	totals := make(CategoryMonthlyTotals, len(categories))
	for _, name := range categories {
		buckets := make(map[string]decimal.Decimal, len(parsed))
		for _, m := range parsed {
			buckets[m.String()] = decimal.Zero
		}
		totals[name] = buckets
	}

	for _, t := range transactions {
		buckets, ok := totals[t.Category]
		if !ok {
			continue
		}

		key := t.Month().String()
		if sum, ok := buckets[key]; ok {
			buckets[key] = sum.Add(t.Amount)
		}
	}

	return totals, nil
}

// ByMonth sums the amounts of all transactions per requested month, regardless of category.
func ByMonth(transactions []Transaction, months []string) (map[string]decimal.Decimal, error) {
	parsed, err := parseMonths(months)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]decimal.Decimal, len(parsed))
	for _, m := range parsed {
		totals[m.String()] = decimal.Zero
	}

	for _, t := range transactions {
		key := t.Month().String()
		if sum, ok := totals[key]; ok {
			totals[key] = sum.Add(t.Amount)
		}
	}

	return totals, nil
}

// Lifetime sums the amounts of all transactions per category without any
// month filter.
func Lifetime(transactions []Transaction, categories []string) Totals {
	totals := zero(categories)
	for _, t := range transactions {
		if sum, ok := totals[t.Category]; ok {
			totals[t.Category] = sum.Add(t.Amount)
		}
	}
	return totals
}

// Unreferenced sums the amounts of transactions in the month whose category
// is not in categories. Transactions without a category are ignored.
func Unreferenced(transactions []Transaction, categories []string, month string) (Totals, error) {
	m, err := parseMonth(month)
	if err != nil {
		return nil, err
	}

	totals := make(Totals)
	for _, t := range transactions {
		if t.Category == "" || !m.Contains(t.Date) || slices.Contains(categories, t.Category) {
			continue
		}
		totals[t.Category] = totals[t.Category].Add(t.Amount)
	}

	return totals, nil
}

// Merge returns the key-wise sum of a and b. Neither input is modified.
func Merge(a, b Totals) Totals {
	merged := make(Totals, len(a))
	for name, amount := range a {
		merged[name] = amount
	}

	for name, amount := range b {
		merged[name] = merged[name].Add(amount)
	}

	return merged
}

// Backfill returns a copy of pre-summed totals restricted to categories.
// Categories missing from totals are set to zero.
func Backfill(totals map[string]decimal.Decimal, categories []string) Totals {
	filled := zero(categories)
	for name := range filled {
		if amount, ok := totals[name]; ok {
			filled[name] = amount
		}
	}
	return filled
}

// BackfillMonthly returns a copy of pre-summed category/month totals containing
// exactly the requested categories and months, zero-filled.
func BackfillMonthly(totals map[string]map[string]decimal.Decimal, categories []string, months []string) (CategoryMonthlyTotals, error) {
	parsed, err := parseMonths(months)
	if err != nil {
		return nil, err
	}

	filled := make(CategoryMonthlyTotals, len(categories))
	for _, name := range categories {
		buckets := make(map[string]decimal.Decimal, len(parsed))
		for _, m := range parsed {
			buckets[m.String()] = totals[name][m.String()]
		}
		filled[name] = buckets
	}

	return filled, nil
}

// Months returns the sorted union of all month buckets present in totals.
//
// This is a helper for callers that want to display every month that has
// data. The aggregation functions never call it themselves.
func Months(totals map[string]map[string]decimal.Decimal) []string {
	months := make([]string, 0)
	for _, buckets := range totals {
		for key := range buckets {
			if !slices.Contains(months, key) {
				months = append(months, key)
			}
		}
	}

	slices.Sort(months)
	return months
}

// MonthKeys returns the sorted keys of a month → amount mapping.
func MonthKeys(totals map[string]decimal.Decimal) []string {
	months := make([]string, 0, len(totals))
	for key := range totals {
		months = append(months, key)
	}

	slices.Sort(months)
	return months
}
