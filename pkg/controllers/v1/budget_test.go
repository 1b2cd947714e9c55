package v1_test

import (
	"net/http"

	v1 "github.com/finboard/backend/pkg/controllers/v1"
	"github.com/finboard/backend/pkg/fetcher"
	"github.com/finboard/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestGetBudget() {
	r := test.Request(suite.T(), suite.controller, http.MethodGet, "http://example.com/v1/budget", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &response)

	view := response.Data
	suite.Assert().Equal("2025-03", view.Month.String(), "the month defaults to the current month")
	suite.Assert().Equal(15, view.Day)
	suite.Assert().Equal(31, view.DaysInMonth)
	suite.Require().Len(view.Rows, 3)

	groceries := view.Rows[0]
	suite.Assert().Equal("groceries", groceries.Category.Name)
	suite.Assert().True(decimal.NewFromInt(310).Equal(groceries.Budget), groceries.Budget.String())
	suite.Assert().True(decimal.NewFromInt(150).Equal(groceries.Spent), groceries.Spent.String())
	suite.Assert().True(decimal.RequireFromString("51.61").Equal(groceries.Status.RemainingPct), groceries.Status.RemainingPct.String())
	suite.Assert().True(decimal.NewFromInt(190).Equal(view.Total.Spent), view.Total.Spent.String())
}

func (suite *TestSuiteStandard) TestGetBudgetPastMonth() {
	r := test.Request(suite.T(), suite.controller, http.MethodGet, "http://example.com/v1/budget?month=2025-02", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().Equal(28, response.Data.Day)
	suite.Assert().True(decimal.NewFromInt(100).Equal(response.Data.Rows[0].PreviousSpent))
}

func (suite *TestSuiteStandard) TestGetBudgetErrors() {
	tests := []struct {
		name   string
		url    string
		status int
	}{
		{"Invalid month", "http://example.com/v1/budget?month=March", http.StatusBadRequest},
		{"Month out of range", "http://example.com/v1/budget?month=2025-13", http.StatusBadRequest},
		{"Future month", "http://example.com/v1/budget?month=2025-04", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := test.Request(suite.T(), suite.controller, http.MethodGet, tt.url, "")
			test.AssertHTTPStatus(suite.T(), &r, tt.status)
			suite.Assert().NotEmpty(test.DecodeError(suite.T(), &r))
		})
	}
}

func (suite *TestSuiteStandard) TestGetBudgetDatabaseError() {
	suite.CloseDB()

	r := test.Request(suite.T(), suite.controller, http.MethodGet, "http://example.com/v1/budget", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}

func (suite *TestSuiteStandard) TestUpdateBudget() {
	r := test.Request(suite.T(), suite.controller, http.MethodPut, "http://example.com/v1/budget/dining", v1.BudgetEditable{BudgetAmount: decimal.NewFromInt(80)})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var entry v1.BudgetEntryResponse
	test.DecodeResponse(suite.T(), &r, &entry)
	suite.Assert().Equal("dining", entry.Data.Category)
	suite.Assert().True(decimal.NewFromInt(80).Equal(entry.Data.BudgetAmount))

	r = test.Request(suite.T(), suite.controller, http.MethodGet, "http://example.com/v1/budget", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().True(decimal.NewFromInt(80).Equal(response.Data.Rows[1].Budget), response.Data.Rows[1].Budget.String())
	suite.Assert().True(decimal.NewFromInt(390).Equal(response.Data.Total.Budget), response.Data.Total.Budget.String())
}

func (suite *TestSuiteStandard) TestUpdateBudgetCategoryWithSlash() {
	r := test.Request(suite.T(), suite.controller, http.MethodPut, "http://example.com/v1/budget/restaurants%2Fcoffee", v1.BudgetEditable{BudgetAmount: decimal.NewFromInt(80)})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var entry v1.BudgetEntryResponse
	test.DecodeResponse(suite.T(), &r, &entry)
	suite.Assert().Equal("restaurants/coffee", entry.Data.Category)
	suite.Assert().Equal("restaurants/coffee", suite.upstream.budgets[1].Category)
}

func (suite *TestSuiteStandard) TestUpdateBudgetSurvivesSync() {
	r := test.Request(suite.T(), suite.controller, http.MethodPut, "http://example.com/v1/budget/dining", v1.BudgetEditable{BudgetAmount: decimal.NewFromInt(80)})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), suite.controller, http.MethodPost, "http://example.com/v1/sync", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), suite.controller, http.MethodGet, "http://example.com/v1/budget", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("dining", response.Data.Rows[1].Category.Name)
	suite.Assert().True(decimal.NewFromInt(80).Equal(response.Data.Rows[1].Budget), response.Data.Rows[1].Budget.String())
}

func (suite *TestSuiteStandard) TestUpdateBudgetUpstreamError() {
	suite.upstream.writeErr = fetcher.ErrNetwork

	r := test.Request(suite.T(), suite.controller, http.MethodPut, "http://example.com/v1/budget/dining", v1.BudgetEditable{BudgetAmount: decimal.NewFromInt(80)})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadGateway)

	r = test.Request(suite.T(), suite.controller, http.MethodGet, "http://example.com/v1/budget", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().True(response.Data.Rows[1].Budget.IsZero(), "a rejected update is not stored")
}

func (suite *TestSuiteStandard) TestUpdateBudgetErrors() {
	tests := []struct {
		name string
		body any
	}{
		{"Empty body", ""},
		{"Broken JSON", `{ "budgetAmount": 8`},
		{"Wrong type", `{ "budgetAmount": true }`},
		{"Negative amount", `{ "budgetAmount": -5 }`},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := test.Request(suite.T(), suite.controller, http.MethodPut, "http://example.com/v1/budget/dining", tt.body)
			test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
		})
	}
}
