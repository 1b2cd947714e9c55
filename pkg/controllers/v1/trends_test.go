package v1_test

import (
	"net/http"

	v1 "github.com/finboard/backend/pkg/controllers/v1"
	"github.com/finboard/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestGetSpendingTrend() {
	r := test.Request(suite.T(), suite.controller, http.MethodGet, "http://example.com/v1/trends?months=3", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SpendingTrendResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data.Points, 3)
	suite.Assert().Equal("2025-01", response.Data.Points[0].Month)
	suite.Assert().True(decimal.NewFromInt(670).Equal(response.Data.Total), response.Data.Total.String())
	suite.Assert().True(decimal.RequireFromString("223.33").Equal(response.Data.Average), response.Data.Average.String())
}

func (suite *TestSuiteStandard) TestGetSpendingTrendDefaults() {
	tests := []struct {
		name   string
		url    string
		points int
	}{
		{"Default window", "http://example.com/v1/trends", 6},
		{"All months", "http://example.com/v1/trends?months=0", 3},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := test.Request(suite.T(), suite.controller, http.MethodGet, tt.url, "")
			test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

			var response v1.SpendingTrendResponse
			test.DecodeResponse(suite.T(), &r, &response)
			suite.Assert().Len(response.Data.Points, tt.points)
		})
	}
}

func (suite *TestSuiteStandard) TestGetSpendingTrendErrors() {
	for _, query := range []string{"months=-1", "months=six", "months=121", "months=2000000"} {
		suite.Run(query, func() {
			r := test.Request(suite.T(), suite.controller, http.MethodGet, "http://example.com/v1/trends?"+query, "")
			test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestGetCategoryTrends() {
	r := test.Request(suite.T(), suite.controller, http.MethodGet, "http://example.com/v1/trends/categories?months=2", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategoryTrendsResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().Equal([]string{"2025-02", "2025-03"}, response.Data.Months)
	suite.Require().Len(response.Data.Categories, 3)
	suite.Assert().Equal("groceries", response.Data.Categories[0].Category)
	suite.Assert().True(decimal.NewFromInt(430).Equal(response.Data.Categories[0].Total), response.Data.Categories[0].Total.String())
}

func (suite *TestSuiteStandard) TestGetCategoryTrendsInvalid() {
	for _, query := range []string{"months=-3", "months=20000000"} {
		suite.Run(query, func() {
			r := test.Request(suite.T(), suite.controller, http.MethodGet, "http://example.com/v1/trends/categories?"+query, "")
			test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
		})
	}
}
