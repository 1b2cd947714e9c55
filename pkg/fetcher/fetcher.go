// Package fetcher implements a typed client for the REST API of the finance backend.
//
// All responses are decoded into explicit schemas and validated before they
// are handed to callers. Requests are never retried.
package fetcher

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/finboard/backend/internal/types"
	"github.com/finboard/backend/pkg/aggregate"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// BasePath is the path prefix of all endpoints of the finance backend.
const BasePath = "/api/v1"

// maxErrorBody limits how much of an error response is read.
const maxErrorBody = 4096

// Client sends requests to the finance backend.
type Client struct {
	HTTPClient *http.Client
	BaseURL    *url.URL
}

// New creates a new Client for the finance backend at baseURL.
func New(baseURL string, timeout time.Duration) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("error parsing finance backend URL %q: %w", baseURL, err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("finance backend URL %q must use http or https", baseURL)
	}

	return &Client{
		HTTPClient: &http.Client{Timeout: timeout},
		BaseURL:    u.JoinPath(BasePath),
	}, nil
}

type detailResponse struct {
	Detail any `json:"detail"`
}

// do sends a request and decodes the response body into target.
// target may be nil if the response body is not needed.
func (c *Client) do(ctx context.Context, method, endpoint string, query url.Values, body, target any) error {
	u := c.BaseURL.JoinPath(endpoint)
	u.RawQuery = query.Encode()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("error marshaling request body: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.HTTPClient.Do(req)
	requestDuration.WithLabelValues(method, endpoint).Observe(time.Since(start).Seconds())

	if err != nil {
		// A cancelled request is not a backend failure
		if ctx.Err() != nil {
			requestCount.WithLabelValues(method, endpoint, "cancelled").Inc()
			return ctx.Err()
		}

		requestCount.WithLabelValues(method, endpoint, "network").Inc()
		return fmt.Errorf("%w: %s %s: %w", ErrNetwork, method, endpoint, err)
	}
	defer resp.Body.Close()

	log.Debug().
		Str("method", method).
		Str("url", u.String()).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("Finance API")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		requestCount.WithLabelValues(method, endpoint, strconv.Itoa(resp.StatusCode)).Inc()

		statusErr := &StatusError{Method: method, Path: endpoint, Code: resp.StatusCode}

		var detail detailResponse
		if b, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody)); err == nil && json.Unmarshal(b, &detail) == nil && detail.Detail != nil {
			statusErr.Detail = fmt.Sprint(detail.Detail)
		}
		return statusErr
	}

	if target == nil {
		requestCount.WithLabelValues(method, endpoint, "ok").Inc()
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		requestCount.WithLabelValues(method, endpoint, "invalid").Inc()
		return fmt.Errorf("%w: %s %s: %w", ErrInvalidPayload, method, endpoint, err)
	}

	requestCount.WithLabelValues(method, endpoint, "ok").Inc()
	return nil
}

// monthsQuery returns the query for endpoints that accept a number of
// months. For n < 1, no limit is sent and the backend returns all months.
func monthsQuery(n int) url.Values {
	if n < 1 {
		return url.Values{}
	}
	return url.Values{"months": {strconv.Itoa(n)}}
}

// CategoryTotals returns the pre-summed spending per category in the month.
func (c *Client) CategoryTotals(ctx context.Context, month types.Month) (map[string]decimal.Decimal, error) {
	var totals map[string]decimal.Decimal
	err := c.do(ctx, http.MethodGet, "/summary/categories", url.Values{"month": {month.String()}}, nil, &totals)
	if err != nil {
		return nil, err
	}

	if totals == nil {
		totals = make(map[string]decimal.Decimal)
	}

	for category := range totals {
		if uncategorized(category) {
			delete(totals, category)
		}
	}
	return totals, nil
}

// MonthlyCategoryTotals returns the pre-summed spending per category and
// month for the current month and the n-1 months before it.
func (c *Client) MonthlyCategoryTotals(ctx context.Context, n int) (map[string]map[string]decimal.Decimal, error) {
	var totals map[string]map[string]decimal.Decimal
	err := c.do(ctx, http.MethodGet, "/summary/monthly-categories", monthsQuery(n), nil, &totals)
	if err != nil {
		return nil, err
	}

	if totals == nil {
		totals = make(map[string]map[string]decimal.Decimal)
	}

	for category, months := range totals {
		if uncategorized(category) {
			delete(totals, category)
			continue
		}

		if err := validateMonthKeys(months); err != nil {
			return nil, fmt.Errorf("%w: category %q: %w", ErrInvalidPayload, category, err)
		}
	}
	return totals, nil
}

// MonthlyTotals returns the pre-summed spending per month for the current
// month and the n-1 months before it.
func (c *Client) MonthlyTotals(ctx context.Context, n int) (map[string]decimal.Decimal, error) {
	var totals map[string]decimal.Decimal
	err := c.do(ctx, http.MethodGet, "/summary/monthly", monthsQuery(n), nil, &totals)
	if err != nil {
		return nil, err
	}

	if totals == nil {
		totals = make(map[string]decimal.Decimal)
	}

	if err := validateMonthKeys(totals); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	return totals, nil
}

// Transactions returns all transactions, newest first.
func (c *Client) Transactions(ctx context.Context) ([]aggregate.Transaction, error) {
	var payload []transactionPayload
	if err := c.do(ctx, http.MethodGet, "/table/", nil, nil, &payload); err != nil {
		return nil, err
	}

	transactions := make([]aggregate.Transaction, 0, len(payload))
	for _, p := range payload {
		t, err := p.transaction()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
		}
		transactions = append(transactions, t)
	}
	return transactions, nil
}

// Income returns all income records, newest first.
func (c *Client) Income(ctx context.Context) ([]aggregate.Income, error) {
	var payload []incomePayload
	if err := c.do(ctx, http.MethodGet, "/income/", nil, nil, &payload); err != nil {
		return nil, err
	}

	income := make([]aggregate.Income, 0, len(payload))
	for _, p := range payload {
		i, err := p.income()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
		}
		income = append(income, i)
	}
	return income, nil
}

// IncomeForMonth returns the total income received in the month.
//
// The endpoint expects the month without zero padding, e.g. 2025-3.
func (c *Client) IncomeForMonth(ctx context.Context, month types.Month) (decimal.Decimal, error) {
	var payload incomeTotalPayload
	err := c.do(ctx, http.MethodGet, "/income/by-month", url.Values{"month": {month.Unpadded()}}, nil, &payload)
	if err != nil {
		return decimal.Zero, err
	}

	if payload.Total == nil {
		return decimal.Zero, fmt.Errorf("%w: income for %s has no total", ErrInvalidPayload, month)
	}
	return *payload.Total, nil
}

// Budgets returns the budgets of all categories.
func (c *Client) Budgets(ctx context.Context) ([]aggregate.BudgetEntry, error) {
	var payload []budgetPayload
	if err := c.do(ctx, http.MethodGet, "/budget/", nil, nil, &payload); err != nil {
		return nil, err
	}

	budgets := make([]aggregate.BudgetEntry, 0, len(payload))
	for _, p := range payload {
		if p.Category == "" {
			return nil, fmt.Errorf("%w: budget without category", ErrInvalidPayload)
		}
		budgets = append(budgets, aggregate.BudgetEntry{Category: p.Category, BudgetAmount: p.BudgetAmount})
	}
	return budgets, nil
}

// SetBudget updates the budget of a category. If the category has no
// budget yet, it is created.
func (c *Client) SetBudget(ctx context.Context, entry aggregate.BudgetEntry) (aggregate.BudgetEntry, error) {
	amount := json.Number(entry.BudgetAmount.String())

	var payload budgetPayload
	err := c.do(ctx, http.MethodPut, "/budget/category", url.Values{"category": {entry.Category}}, budgetRequest{BudgetAmount: amount}, &payload)
	if IsNotFound(err) {
		log.Debug().Str("category", entry.Category).Msg("Creating budget as none exists yet")
		err = c.do(ctx, http.MethodPost, "/budget/", nil, budgetRequest{Category: entry.Category, BudgetAmount: amount}, &payload)
	}

	if err != nil {
		return aggregate.BudgetEntry{}, err
	}

	if payload.Category == "" {
		payload.Category = entry.Category
	}
	return aggregate.BudgetEntry{Category: payload.Category, BudgetAmount: payload.BudgetAmount}, nil
}

// Travel returns the spending per travel sub-category, newest trip first.
func (c *Client) Travel(ctx context.Context) ([]aggregate.Trip, error) {
	var payload []travelPayload
	if err := c.do(ctx, http.MethodGet, "/travel/", nil, nil, &payload); err != nil {
		return nil, err
	}

	trips := make([]aggregate.Trip, 0, len(payload))
	for _, p := range payload {
		trips = append(trips, aggregate.Trip{
			Name:     p.SubCategory,
			Total:    p.Total,
			LastDate: time.Time(p.MaxDate),
		})
	}
	return trips, nil
}

// Ping checks that the finance backend is reachable.
func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/budget/", nil, nil, nil)
}
