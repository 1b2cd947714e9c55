package fetcher

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/finboard/backend/internal/types"
	"github.com/finboard/backend/pkg/aggregate"
	"github.com/shopspring/decimal"
)

// timestampLayouts are the formats the finance backend uses for dates.
// Timestamps without a zone are interpreted as UTC.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.DateOnly,
}

// timestamp is a date as sent by the finance backend.
type timestamp time.Time

func (t *timestamp) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		return nil
	}

	for _, layout := range timestampLayouts {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			*t = timestamp(parsed)
			return nil
		}
	}

	return fmt.Errorf("unsupported date format %q", value)
}

type transactionPayload struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Amount      decimal.Decimal `json:"amount"`
	Date        timestamp       `json:"date"`
	Category    string          `json:"category"`
	SubCategory string          `json:"sub_category"`
	Method      string          `json:"method"`
}

func (p transactionPayload) transaction() (aggregate.Transaction, error) {
	if time.Time(p.Date).IsZero() {
		return aggregate.Transaction{}, fmt.Errorf("transaction %d has no date", p.ID)
	}

	return aggregate.Transaction{
		ID:          p.ID,
		Name:        p.Name,
		Amount:      p.Amount,
		Date:        time.Time(p.Date),
		Category:    p.Category,
		SubCategory: p.SubCategory,
		Method:      p.Method,
	}, nil
}

type incomePayload struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Amount       decimal.Decimal `json:"amount"`
	DateReceived timestamp       `json:"date_received"`
	Account      string          `json:"account"`
}

func (p incomePayload) income() (aggregate.Income, error) {
	if time.Time(p.DateReceived).IsZero() {
		return aggregate.Income{}, fmt.Errorf("income %d has no date", p.ID)
	}

	return aggregate.Income{
		ID:      p.ID,
		Name:    p.Name,
		Amount:  p.Amount,
		Date:    time.Time(p.DateReceived),
		Account: p.Account,
	}, nil
}

type incomeTotalPayload struct {
	Total *decimal.Decimal `json:"total"`
}

type budgetPayload struct {
	Category     string          `json:"category"`
	BudgetAmount decimal.Decimal `json:"budget_amount"`
}

// budgetRequest is the body for creating and updating budgets. The amount
// is sent as a JSON number.
type budgetRequest struct {
	Category     string      `json:"category,omitempty"`
	BudgetAmount json.Number `json:"budget_amount"`
}

type travelPayload struct {
	SubCategory string          `json:"sub_category"`
	Total       decimal.Decimal `json:"total"`
	MaxDate     timestamp       `json:"max_date"`
}

// uncategorized reports whether the category key stands for spending without
// a category. The backend serializes a missing category as "null".
func uncategorized(category string) bool {
	return category == "" || category == "null"
}

// validateMonthKeys checks that all keys are month keys in YYYY-MM format.
func validateMonthKeys(totals map[string]decimal.Decimal) error {
	for key := range totals {
		if _, err := types.ParseMonth(key); err != nil {
			return err
		}
	}
	return nil
}
