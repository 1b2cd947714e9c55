package v1

import (
	"context"
	"net/http"
	"time"

	"github.com/finboard/backend/internal/httperror"
	"github.com/finboard/backend/pkg/dashboard"
	"github.com/finboard/backend/pkg/httputil"
	"github.com/finboard/backend/pkg/mirror"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// defaultMonths is the number of months in trend views if the request does not specify it.
const defaultMonths = 6

// Controller serves the dashboard views.
type Controller struct {
	Service *dashboard.Service

	// Mirror and DB are only set when the views are served from the offline mirror
	Mirror *mirror.Mirror
	DB     *gorm.DB

	// Ping checks that the data source is reachable
	Ping func(context.Context) error

	// Now returns the current time. Defaults to time.Now
	Now func() time.Time
}

func (co Controller) now() time.Time {
	if co.Now == nil {
		return time.Now()
	}
	return co.Now()
}

// RegisterRoutes registers all v1 routes with the RouterGroup that is passed.
func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", co.Get)
	r.OPTIONS("", Options)

	{
		r.OPTIONS("/budget", OptionsBudget)
		r.GET("/budget", co.GetBudget)
		r.OPTIONS("/budget/:category", OptionsBudgetCategory)
		r.PUT("/budget/:category", co.UpdateBudget)
	}

	{
		r.OPTIONS("/categories", OptionsCategories)
		r.GET("/categories", co.GetCategories)
		r.OPTIONS("/cash-flow", OptionsCashFlow)
		r.GET("/cash-flow", co.GetCashFlow)
	}

	{
		r.OPTIONS("/trends", OptionsTrends)
		r.GET("/trends", co.GetSpendingTrend)
		r.OPTIONS("/trends/categories", OptionsCategoryTrends)
		r.GET("/trends/categories", co.GetCategoryTrends)
	}

	r.OPTIONS("/travel", OptionsTravel)
	r.GET("/travel", co.GetTravel)
	r.OPTIONS("/reports", OptionsReports)
	r.GET("/reports", co.GetReport)
	r.OPTIONS("/reference", OptionsReference)
	r.GET("/reference", co.GetReference)

	if co.Mirror != nil {
		r.OPTIONS("/sync", OptionsSync)
		r.GET("/sync", co.GetSync)
		r.POST("/sync", co.Sync)
	}
}

// fail writes the error response. Server side errors are logged.
func fail(c *gin.Context, err error) {
	status := httperror.Status(err)
	if status >= http.StatusInternalServerError {
		log.Error().
			Str("request-id", requestid.Get(c)).
			Str("path", c.FullPath()).
			Int("status", status).
			Err(err).
			Msg("Request failed")
	}

	c.JSON(status, httperror.New(err))
}

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Budget         string `json:"budget" example:"https://example.com/api/v1/budget"`                    // URL of the budget view
	Categories     string `json:"categories" example:"https://example.com/api/v1/categories"`            // URL of the spending per category view
	CashFlow       string `json:"cashFlow" example:"https://example.com/api/v1/cash-flow"`               // URL of the cash flow view
	Trends         string `json:"trends" example:"https://example.com/api/v1/trends"`                    // URL of the monthly spending trend
	CategoryTrends string `json:"categoryTrends" example:"https://example.com/api/v1/trends/categories"` // URL of the monthly spending trend per category
	Travel         string `json:"travel" example:"https://example.com/api/v1/travel"`                    // URL of the travel spending view
	Reports        string `json:"reports" example:"https://example.com/api/v1/reports"`                  // URL of the income and spending report
	Reference      string `json:"reference" example:"https://example.com/api/v1/reference"`              // URL of the category reference data
	Sync           string `json:"sync,omitempty" example:"https://example.com/api/v1/sync"`              // URL of the mirror synchronization. Only set when serving from the offline mirror
}

// Get returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	Response
//	@Router			/v1 [get]
func (co Controller) Get(c *gin.Context) {
	url := c.GetString(string(httputil.ContextURL)) + "/v1"

	links := Links{
		Budget:         url + "/budget",
		Categories:     url + "/categories",
		CashFlow:       url + "/cash-flow",
		Trends:         url + "/trends",
		CategoryTrends: url + "/trends/categories",
		Travel:         url + "/travel",
		Reports:        url + "/reports",
		Reference:      url + "/reference",
	}

	if co.Mirror != nil {
		links.Sync = url + "/sync"
	}

	c.JSON(http.StatusOK, Response{Links: links})
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
