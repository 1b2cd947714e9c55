package aggregate

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// SavingsEntry is the name of the entry that represents unspent income.
const SavingsEntry = "savings"

// CashFlowEntry is one slice of the monthly cash flow.
type CashFlowEntry struct {
	Name    string          `json:"name" example:"groceries"`
	Amount  decimal.Decimal `json:"amount" example:"250"`
	Share   decimal.Decimal `json:"share" example:"12.5"`      // Share of the basis, in percent
	Savings bool            `json:"savings" example:"false"` // Set for the savings entry only
}

// CashFlowResult is the split of a month's income into spending per category and savings.
type CashFlowResult struct {
	Income  decimal.Decimal `json:"income" example:"2000"`
	Spent   decimal.Decimal `json:"spent" example:"1500"`
	Savings decimal.Decimal `json:"savings" example:"500"`
	Basis   decimal.Decimal `json:"basis" example:"2000"` // The larger of income and spent, all shares are relative to it
	Entries []CashFlowEntry `json:"entries"`
}

// CashFlow splits income into the spending per category and savings.
//
// Entries are ordered by amount, largest first, ties by name. Reference
// categories without spending are appended with a zero amount. A savings
// entry is added when income exceeds spending.
func CashFlow(income decimal.Decimal, spending Totals, categories []string) CashFlowResult {
	spent := decimal.Max(spending.Sum(), decimal.Zero)
	basis := decimal.Max(income, spent)

	share := func(amount decimal.Decimal) decimal.Decimal {
		if !basis.IsPositive() {
			return decimal.Zero
		}
		return amount.Div(basis).Mul(hundred)
	}

	entries := make([]CashFlowEntry, 0, len(spending)+1)
	for name, amount := range spending {
		if amount.IsZero() {
			continue
		}
		entries = append(entries, CashFlowEntry{Name: name, Amount: amount, Share: share(amount)})
	}

	slices.SortFunc(entries, func(a, b CashFlowEntry) int {
		if c := b.Amount.Cmp(a.Amount); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})

	for _, name := range categories {
		if amount, ok := spending[name]; ok && !amount.IsZero() {
			continue
		}
		entries = append(entries, CashFlowEntry{Name: name, Amount: decimal.Zero, Share: decimal.Zero})
	}

	savings := income.Sub(spent)
	if savings.IsPositive() {
		entries = append(entries, CashFlowEntry{Name: SavingsEntry, Amount: savings, Share: share(savings), Savings: true})
	}

	return CashFlowResult{
		Income:  income,
		Spent:   spent,
		Savings: savings,
		Basis:   basis,
		Entries: entries,
	}
}

// SummaryResult is the income statement for a period.
type SummaryResult struct {
	TotalIncome   decimal.Decimal `json:"totalIncome" example:"6000"`
	TotalExpenses decimal.Decimal `json:"totalExpenses" example:"4500"`
	NetIncome     decimal.Decimal `json:"netIncome" example:"1500"`
	SavingsRate   decimal.Decimal `json:"savingsRate" example:"25"` // Net income relative to income, in percent
}

// Summary computes net income and savings rate.
func Summary(income, expenses decimal.Decimal) SummaryResult {
	net := income.Sub(expenses)

	rate := decimal.Zero
	if income.IsPositive() {
		rate = net.Div(income).Mul(hundred)
	}

	return SummaryResult{
		TotalIncome:   income,
		TotalExpenses: expenses,
		NetIncome:     net,
		SavingsRate:   rate,
	}
}
