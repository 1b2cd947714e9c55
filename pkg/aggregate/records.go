package aggregate

import (
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// Records is the spending of a month as delivered by a data source: either
// raw transactions or totals that have already been summed per category.
//
// Pre-summed totals must never be summed again, they are only backfilled
// with zero defaults for missing reference categories.
type Records struct {
	transactions []Transaction
	totals       map[string]decimal.Decimal
	summed       bool
}

// FromTransactions returns Records holding raw transactions.
func FromTransactions(transactions []Transaction) Records {
	return Records{transactions: transactions}
}

// FromTotals returns Records holding totals already summed per category.
func FromTotals(totals map[string]decimal.Decimal) Records {
	return Records{totals: totals, summed: true}
}

// Summed reports whether the records are pre-summed totals.
func (r Records) Summed() bool {
	return r.summed
}

// Transactions returns the raw transactions. It is empty for pre-summed records.
func (r Records) Transactions() []Transaction {
	return r.transactions
}

// ByCategory returns the totals per reference category for the month.
//
// For pre-summed records, month is only validated since the data source has
// already restricted the totals to it.
func (r Records) ByCategory(categories []string, month string) (Totals, error) {
	if !r.summed {
		return ByCategory(r.transactions, categories, month)
	}

	if _, err := parseMonth(month); err != nil {
		return nil, err
	}

	return Backfill(r.totals, categories), nil
}

// Rename returns the records with every category replaced by name(category).
// Totals of categories that get the same name are combined.
func (r Records) Rename(name func(string) string) Records {
	if !r.summed {
		return FromTransactions(renamed(r.transactions, name))
	}

	totals := make(map[string]decimal.Decimal, len(r.totals))
	for category, amount := range r.totals {
		key := name(category)
		totals[key] = totals[key].Add(amount)
	}
	return FromTotals(totals)
}

// Unreferenced returns the totals of all categories that are not in categories.
func (r Records) Unreferenced(categories []string, month string) (Totals, error) {
	if !r.summed {
		return Unreferenced(r.transactions, categories, month)
	}

	if _, err := parseMonth(month); err != nil {
		return nil, err
	}

	totals := make(Totals)
	for name, amount := range r.totals {
		if name == "" || slices.Contains(categories, name) {
			continue
		}
		totals[name] = amount
	}
	return totals, nil
}

// MonthlyRecords is the spending over several months as delivered by a data
// source: either raw transactions or totals already summed per category and month.
type MonthlyRecords struct {
	transactions []Transaction
	totals       map[string]map[string]decimal.Decimal
	summed       bool
}

// MonthlyFromTransactions returns MonthlyRecords holding raw transactions.
func MonthlyFromTransactions(transactions []Transaction) MonthlyRecords {
	return MonthlyRecords{transactions: transactions}
}

// MonthlyFromTotals returns MonthlyRecords holding pre-summed category/month totals.
func MonthlyFromTotals(totals map[string]map[string]decimal.Decimal) MonthlyRecords {
	return MonthlyRecords{totals: totals, summed: true}
}

// Summed reports whether the records are pre-summed totals.
func (r MonthlyRecords) Summed() bool {
	return r.summed
}

// ByCategoryAndMonth returns the totals per reference category for each of
// the requested months.
func (r MonthlyRecords) ByCategoryAndMonth(categories []string, months []string) (CategoryMonthlyTotals, error) {
	if !r.summed {
		return ByCategoryAndMonth(r.transactions, categories, months)
	}

	return BackfillMonthly(r.totals, categories, months)
}

// Rename returns the records with every category replaced by name(category).
// Totals of categories that get the same name are combined per month.
func (r MonthlyRecords) Rename(name func(string) string) MonthlyRecords {
	if !r.summed {
		return MonthlyFromTransactions(renamed(r.transactions, name))
	}

	totals := make(map[string]map[string]decimal.Decimal, len(r.totals))
	for category, months := range r.totals {
		key := name(category)
		if totals[key] == nil {
			totals[key] = make(map[string]decimal.Decimal, len(months))
		}
		for month, amount := range months {
			totals[key][month] = totals[key][month].Add(amount)
		}
	}
	return MonthlyFromTotals(totals)
}

// Months returns the sorted month buckets that contain data.
func (r MonthlyRecords) Months() []string {
	if r.summed {
		return Months(r.totals)
	}

	keys := make(map[string]decimal.Decimal)
	for _, t := range r.transactions {
		keys[t.Month().String()] = decimal.Zero
	}
	return MonthKeys(keys)
}

// Lifetime returns the totals per reference category over all months.
func (r MonthlyRecords) Lifetime(categories []string) Totals {
	if !r.summed {
		return Lifetime(r.transactions, categories)
	}

	totals := zero(categories)
	for name := range totals {
		for _, amount := range r.totals[name] {
			totals[name] = totals[name].Add(amount)
		}
	}
	return totals
}

// renamed returns a copy of the transactions with the categories replaced by name(category).
func renamed(transactions []Transaction, name func(string) string) []Transaction {
	if transactions == nil {
		return nil
	}

	out := make([]Transaction, len(transactions))
	for i, t := range transactions {
		t.Category = name(t.Category)
		out[i] = t
	}
	return out
}
