package aggregate

import (
	"time"

	"github.com/finboard/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Income is a single income record.
type Income struct {
	ID      int64           `json:"id" example:"7"`
	Name    string          `json:"name" example:"Salary"`
	Amount  decimal.Decimal `json:"amount" example:"3200"`
	Date    time.Time       `json:"date" example:"2025-03-01T00:00:00Z"`
	Account string          `json:"account" example:"checking"`
}

// IncomeInMonth sums the income received in the month.
func IncomeInMonth(income []Income, month string) (decimal.Decimal, error) {
	m, err := parseMonth(month)
	if err != nil {
		return decimal.Zero, err
	}

	sum := decimal.Zero
	for _, i := range income {
		if m.Contains(i.Date) {
			sum = sum.Add(i.Amount)
		}
	}
	return sum, nil
}

// IncomeBetween sums the income received in all months from start to end, both inclusive.
func IncomeBetween(income []Income, start, end string) (decimal.Decimal, error) {
	from, err := parseMonth(start)
	if err != nil {
		return decimal.Zero, err
	}

	to, err := parseMonth(end)
	if err != nil {
		return decimal.Zero, err
	}

	sum := decimal.Zero
	for _, i := range income {
		if m := types.MonthOf(i.Date); !m.Before(from) && !m.After(to) {
			sum = sum.Add(i.Amount)
		}
	}
	return sum, nil
}
