package router_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/finboard/backend/pkg/httputil"
	"github.com/finboard/backend/pkg/router"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestURLMiddleware(t *testing.T) {
	w := httptest.NewRecorder()
	c, r := gin.CreateTestContext(w)

	url, _ := url.Parse("https://finboard.example.com:8081/api")

	r.GET("/", func(_ *gin.Context) {
		router.URLMiddleware(url)(c)
		c.String(http.StatusOK, c.GetString(string(httputil.ContextURL)))
	})

	c.Request, _ = http.NewRequest(http.MethodGet, "https://finboard.example.com/", nil)
	r.ServeHTTP(w, c.Request)

	assert.Equal(t, "https://finboard.example.com:8081/api", w.Body.String())
}
