package v1_test

import (
	"net/http"

	v1 "github.com/finboard/backend/pkg/controllers/v1"
	"github.com/finboard/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestGetCategories() {
	r := test.Request(suite.T(), suite.controller, http.MethodGet, "http://example.com/v1/categories?month=2025-03", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategoriesResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data.Slices, 3)
	suite.Assert().Equal("groceries", response.Data.Slices[0].Category)
	suite.Assert().True(decimal.NewFromInt(190).Equal(response.Data.Total), response.Data.Total.String())
	suite.Assert().True(decimal.RequireFromString("78.95").Equal(response.Data.Slices[0].Share), response.Data.Slices[0].Share.String())
}

func (suite *TestSuiteStandard) TestGetCategoriesInvalidMonth() {
	r := test.Request(suite.T(), suite.controller, http.MethodGet, "http://example.com/v1/categories?month=2025-3", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGetCashFlow() {
	r := test.Request(suite.T(), suite.controller, http.MethodGet, "http://example.com/v1/cash-flow", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CashFlowResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().True(decimal.NewFromInt(1000).Equal(response.Data.Income), response.Data.Income.String())
	suite.Assert().True(decimal.NewFromInt(290).Equal(response.Data.Spent), response.Data.Spent.String())
	suite.Assert().True(decimal.NewFromInt(710).Equal(response.Data.Savings), response.Data.Savings.String())

	last := response.Data.Entries[len(response.Data.Entries)-1]
	suite.Assert().True(last.Savings, "the savings entry comes last")
}

func (suite *TestSuiteStandard) TestGetTravel() {
	r := test.Request(suite.T(), suite.controller, http.MethodGet, "http://example.com/v1/travel", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TravelResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data.Trips, 1)
	suite.Assert().True(decimal.NewFromInt(100).Equal(response.Data.Total), response.Data.Total.String())
}
