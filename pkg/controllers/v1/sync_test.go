package v1_test

import (
	"net/http"

	v1 "github.com/finboard/backend/pkg/controllers/v1"
	"github.com/finboard/backend/pkg/fetcher"
	"github.com/finboard/backend/pkg/mirror"
	"github.com/finboard/backend/test"
)

func (suite *TestSuiteStandard) TestGetSync() {
	r := test.Request(suite.T(), suite.controller, http.MethodGet, "http://example.com/v1/sync", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SyncResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().Equal(5, response.Data.Transactions)
	suite.Assert().Equal(2, response.Data.Income)
	suite.Assert().Equal(1, response.Data.Budgets)
	suite.Assert().Empty(response.Data.Error)
}

func (suite *TestSuiteStandard) TestSync() {
	r := test.Request(suite.T(), suite.controller, http.MethodPost, "http://example.com/v1/sync", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SyncResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(5, response.Data.Transactions)
	suite.Assert().False(response.Data.FinishedAt.Before(response.Data.StartedAt))
}

func (suite *TestSuiteStandard) TestSyncUpstreamError() {
	co := suite.controller
	co.Mirror = mirror.New(&upstream{err: fetcher.ErrNetwork}, suite.db)

	r := test.Request(suite.T(), co, http.MethodPost, "http://example.com/v1/sync", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadGateway)

	// The failed run is recorded, the mirrored data stays
	r = test.Request(suite.T(), co, http.MethodGet, "http://example.com/v1/sync", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SyncResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().NotEmpty(response.Data.Error)

	r = test.Request(suite.T(), co, http.MethodGet, "http://example.com/v1/travel", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}

func (suite *TestSuiteStandard) TestGetSyncNoRuns() {
	suite.Require().Nil(suite.db.Exec("DELETE FROM sync_runs").Error)

	r := test.Request(suite.T(), suite.controller, http.MethodGet, "http://example.com/v1/sync", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
