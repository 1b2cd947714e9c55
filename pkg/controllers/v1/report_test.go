package v1_test

import (
	"net/http"

	v1 "github.com/finboard/backend/pkg/controllers/v1"
	"github.com/finboard/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestGetReport() {
	r := test.Request(suite.T(), suite.controller, http.MethodGet, "http://example.com/v1/reports?from=2025-02&to=2025-03", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ReportResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data.Months, 2)
	suite.Assert().True(decimal.NewFromInt(2000).Equal(response.Data.Summary.TotalIncome), response.Data.Summary.TotalIncome.String())
	suite.Assert().True(decimal.NewFromInt(570).Equal(response.Data.Summary.TotalExpenses), response.Data.Summary.TotalExpenses.String())
	suite.Assert().True(decimal.RequireFromString("71.5").Equal(response.Data.Summary.SavingsRate), response.Data.Summary.SavingsRate.String())
}

func (suite *TestSuiteStandard) TestGetReportDefaults() {
	r := test.Request(suite.T(), suite.controller, http.MethodGet, "http://example.com/v1/reports", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ReportResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().Equal("2024-04", response.Data.From.String())
	suite.Assert().Equal("2025-03", response.Data.To.String())
	suite.Assert().Len(response.Data.Months, 12)
}

func (suite *TestSuiteStandard) TestGetReportInvalidRange() {
	r := test.Request(suite.T(), suite.controller, http.MethodGet, "http://example.com/v1/reports?from=2025-03&to=2025-01", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	suite.Assert().Contains(test.DecodeError(suite.T(), &r), "before its start")
}

func (suite *TestSuiteStandard) TestGetReportTooLong() {
	r := test.Request(suite.T(), suite.controller, http.MethodGet, "http://example.com/v1/reports?from=0001-01&to=2025-03", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	suite.Assert().Contains(test.DecodeError(suite.T(), &r), "at most 120 months")
}

func (suite *TestSuiteStandard) TestGetReference() {
	r := test.Request(suite.T(), suite.controller, http.MethodGet, "http://example.com/v1/reference", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ReferenceResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data.Categories, 3)
	suite.Assert().Equal("dining", response.Data.Categories[1].Name)
	suite.Assert().Equal("orange", response.Data.Categories[1].Color)
	suite.Require().Len(response.Data.Methods, 1)
	suite.Assert().Equal("/icons/credit-card.svg", response.Data.Methods[0].Icon)
}
