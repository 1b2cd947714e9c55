package router_test

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	v1 "github.com/finboard/backend/pkg/controllers/v1"
	"github.com/finboard/backend/pkg/dashboard"
	"github.com/finboard/backend/pkg/mirror"
	"github.com/finboard/backend/pkg/models"
	"github.com/finboard/backend/pkg/reference"
	"github.com/finboard/backend/pkg/router"
	"github.com/finboard/backend/test"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func controller(t *testing.T) v1.Controller {
	db, err := models.Connect(":memory:")
	require.Nil(t, err, "Error on database connection")

	set, err := reference.Default()
	require.Nil(t, err)

	return v1.Controller{Service: dashboard.New(dashboard.NewLocal(db, nil, nil), set), DB: db}
}

func routes(t *testing.T, co v1.Controller) gin.RoutesInfo {
	url, _ := url.Parse("http://example.com")

	r, teardown, err := router.Config(url)
	require.Nil(t, err, "Error on router initialization")
	defer teardown()

	router.AttachRoutes(co, r.Group("/"))
	return r.Routes()
}

func TestConfigTeardown(t *testing.T) {
	url, _ := url.Parse("http://example.com")

	_, teardown, err := router.Config(url)
	require.Nil(t, err)
	teardown()

	// Metrics can be registered again after teardown
	_, teardown, err = router.Config(url)
	assert.Nil(t, err)
	teardown()
}

func TestPprofOff(t *testing.T) {
	t.Setenv("ENABLE_PPROF", "false")

	for _, r := range routes(t, controller(t)) {
		assert.NotContains(t, r.Path, "pprof", "pprof routes are registered erroneously! Route: %s", r)
	}
}

func TestPprofOn(t *testing.T) {
	t.Setenv("ENABLE_PPROF", "true")

	found := false
	for _, r := range routes(t, controller(t)) {
		if strings.Contains(r.Path, "pprof") {
			found = true
		}
	}

	assert.True(t, found, "pprof routes are not registered")
}

func TestSyncRoutes(t *testing.T) {
	co := controller(t)
	for _, r := range routes(t, co) {
		assert.NotEqual(t, "/v1/sync", r.Path, "sync routes must only be registered when serving from the mirror")
	}

	co.Mirror = mirror.New(nil, co.DB)
	found := false
	for _, r := range routes(t, co) {
		if r.Path == "/v1/sync" {
			found = true
		}
	}
	assert.True(t, found, "sync routes are missing")
}

// TestCorsSetting checks that setting of CORS works.
// It does not check the actual headers as this is already done in testing of the module.
func TestCorsSetting(t *testing.T) {
	t.Setenv("CORS_ALLOW_ORIGINS", "http://localhost:3000 https://example.com")
	url, _ := url.Parse("http://example.com")

	_, teardown, err := router.Config(url)
	defer teardown()

	assert.Nil(t, err)
}

func TestMethodNotAllowed(t *testing.T) {
	t.Setenv("API_URL", "http://example.com")

	r := test.Request(t, controller(t), http.MethodDelete, "http://example.com/v1/budget", "")
	test.AssertHTTPStatus(t, &r, http.StatusMethodNotAllowed)
	assert.Contains(t, test.DecodeError(t, &r), "DELETE is not allowed")
}

func TestMetrics(t *testing.T) {
	t.Setenv("API_URL", "http://example.com")

	r := test.Request(t, controller(t), http.MethodGet, "http://example.com/metrics", "")
	test.AssertHTTPStatus(t, &r, http.StatusOK)
	assert.Contains(t, r.Body.String(), "go_goroutines")
}
