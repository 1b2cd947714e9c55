package dashboard

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/finboard/backend/internal/types"
	"github.com/finboard/backend/pkg/fetcher"
	"github.com/finboard/backend/pkg/reference"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// remote starts a test server and returns a Remote source for it whose
// current month is March 2025.
func remote(t *testing.T, handler http.HandlerFunc) *Remote {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := fetcher.New(server.URL, 5*time.Second)
	require.Nil(t, err)

	r := NewRemote(client)
	r.now = func() time.Time { return time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC) }
	return r
}

func write(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = io.WriteString(w, body)
}

func TestRemoteSpan(t *testing.T) {
	r := remote(t, func(http.ResponseWriter, *http.Request) {})

	tests := []struct {
		name   string
		months []types.Month
		span   int
	}{
		{"All months", nil, 0},
		{"Current month", []types.Month{types.NewMonth(2025, time.March)}, 1},
		{"Unordered", []types.Month{types.NewMonth(2025, time.March), types.NewMonth(2024, time.December)}, 4},
		{"Future month", []types.Month{types.NewMonth(2025, time.June)}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.span, r.span(tt.months))
		})
	}
}

func TestRemoteCategoryTrends(t *testing.T) {
	var query string
	r := remote(t, func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "/api/v1/summary/monthly-categories", req.URL.Path)
		query = req.URL.RawQuery
		write(w, `{
			"groceries": {"2024-12": 500, "2025-02": 280, "2025-03": 150},
			"dining": {"2025-03": 40}
		}`)
	})

	set, err := reference.Parse([]byte(`{"categories": [{"name": "groceries"}, {"name": "dining"}, {"name": "transport"}]}`))
	require.Nil(t, err)

	view, err := New(r, set).CategoryTrends(context.Background(), 2, r.now())
	require.Nil(t, err)

	assert.Equal(t, "months=2", query)
	assert.Equal(t, []string{"2025-02", "2025-03"}, view.Months)
	assert.True(t, view.Categories[0].Total.Equal(view.Categories[0].Points[0].Amount.Add(view.Categories[0].Points[1].Amount)))
	assert.Equal(t, "430", view.Categories[0].Total.String(), "months outside of the window are ignored")
	assert.True(t, view.Categories[2].Total.IsZero())
}

func TestRemoteBudgetUsesSummedTotals(t *testing.T) {
	r := remote(t, func(w http.ResponseWriter, req *http.Request) {
		switch req.URL.Path {
		case "/api/v1/summary/categories":
			if req.URL.Query().Get("month") == "2025-03" {
				write(w, `{"groceries": 150, "dining": 40}`)
				return
			}
			write(w, `{"groceries": 280}`)
		case "/api/v1/budget/":
			write(w, `[{"category": "groceries", "budget_amount": 300}]`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	set, err := reference.Parse([]byte(`{"categories": [{"name": "groceries"}, {"name": "dining"}]}`))
	require.Nil(t, err)

	view, err := New(r, set).Budget(context.Background(), types.NewMonth(2025, time.March), r.now())
	require.Nil(t, err)

	assert.Equal(t, "150", view.Rows[0].Spent.String())
	assert.Equal(t, "280", view.Rows[0].PreviousSpent.String())
	assert.Equal(t, "190", view.Total.Spent.String())
}

func TestRemoteCashFlowCategoryCase(t *testing.T) {
	r := remote(t, func(w http.ResponseWriter, req *http.Request) {
		switch req.URL.Path {
		case "/api/v1/summary/categories":
			write(w, `{"Groceries": 100, "groceries": 20, "null": 5}`)
		case "/api/v1/income/by-month":
			write(w, `{"total": 1000}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	set, err := reference.Parse([]byte(`{"categories": [{"name": "groceries", "color": "green"}, {"name": "dining"}]}`))
	require.Nil(t, err)

	view, err := New(r, set).CashFlow(context.Background(), types.NewMonth(2025, time.March))
	require.Nil(t, err)

	require.Len(t, view.Entries, 3)
	assert.Equal(t, "groceries", view.Entries[0].Name)
	assert.Equal(t, "120", view.Entries[0].Amount.String())
	assert.Equal(t, "#22c55e", view.Entries[0].Fill)
	assert.Equal(t, "dining", view.Entries[1].Name)
	assert.True(t, view.Entries[2].Savings)
}
