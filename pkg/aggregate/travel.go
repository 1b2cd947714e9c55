package aggregate

import (
	"strings"
	"time"

	"github.com/ryanuber/go-glob"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// Trip is the spending on one travel sub-category.
type Trip struct {
	Name     string          `json:"name" example:"lisbon trip"`
	Total    decimal.Decimal `json:"total" example:"840.50"`
	LastDate time.Time       `json:"lastDate" example:"2024-09-14T00:00:00Z"`
	Count    int             `json:"count" example:"12"`
}

// MatchesAny reports whether name matches any of the glob patterns, ignoring case.
func MatchesAny(name string, patterns []string) bool {
	name = strings.ToLower(name)
	for _, pattern := range patterns {
		if glob.Glob(strings.ToLower(pattern), name) {
			return true
		}
	}
	return false
}

// Travel groups the transactions whose sub-category matches any of the glob
// patterns by sub-category. Trips are ordered by their latest transaction,
// newest first.
func Travel(transactions []Transaction, patterns []string) []Trip {
	trips := make([]Trip, 0)
	index := make(map[string]int)

	for _, t := range transactions {
		if t.SubCategory == "" || !MatchesAny(t.SubCategory, patterns) {
			continue
		}

		i, ok := index[t.SubCategory]
		if !ok {
			i = len(trips)
			index[t.SubCategory] = i
			trips = append(trips, Trip{Name: t.SubCategory, Total: decimal.Zero})
		}

		trips[i].Total = trips[i].Total.Add(t.Amount)
		trips[i].Count++
		if t.Date.After(trips[i].LastDate) {
			trips[i].LastDate = t.Date
		}
	}

	slices.SortFunc(trips, func(a, b Trip) int {
		if c := b.LastDate.Compare(a.LastDate); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})

	return trips
}
