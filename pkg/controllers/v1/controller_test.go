package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/finboard/backend/pkg/controllers/v1"
	"github.com/finboard/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestGet() {
	r := test.Request(suite.T(), suite.controller, http.MethodGet, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.Response
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().Equal("http://example.com/v1/budget", response.Links.Budget)
	suite.Assert().Equal("http://example.com/v1/trends/categories", response.Links.CategoryTrends)
	suite.Assert().Equal("http://example.com/v1/sync", response.Links.Sync)
}

func (suite *TestSuiteStandard) TestGetWithoutMirror() {
	co := suite.controller
	co.Mirror = nil

	r := test.Request(suite.T(), co, http.MethodGet, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.Response
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Empty(response.Links.Sync)

	r = test.Request(suite.T(), co, http.MethodPost, "http://example.com/v1/sync", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestOptions() {
	tests := []struct {
		path  string
		allow string
	}{
		{"http://example.com/v1", "OPTIONS, GET"},
		{"http://example.com/v1/budget", "OPTIONS, GET"},
		{"http://example.com/v1/budget/groceries", "OPTIONS, PUT"},
		{"http://example.com/v1/categories", "OPTIONS, GET"},
		{"http://example.com/v1/cash-flow", "OPTIONS, GET"},
		{"http://example.com/v1/trends", "OPTIONS, GET"},
		{"http://example.com/v1/trends/categories", "OPTIONS, GET"},
		{"http://example.com/v1/travel", "OPTIONS, GET"},
		{"http://example.com/v1/reports", "OPTIONS, GET"},
		{"http://example.com/v1/reference", "OPTIONS, GET"},
		{"http://example.com/v1/sync", "OPTIONS, GET, POST"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.path, func(t *testing.T) {
			r := test.Request(t, suite.controller, http.MethodOptions, tt.path, "")
			test.AssertHTTPStatus(t, &r, http.StatusNoContent)
			assert.Equal(t, tt.allow, r.Header().Get("allow"))
		})
	}
}
