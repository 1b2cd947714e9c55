package v1

import (
	"net/http"

	"github.com/finboard/backend/pkg/dashboard"
	"github.com/finboard/backend/pkg/httputil"
	"github.com/gin-gonic/gin"
)

type SpendingTrendResponse struct {
	Data dashboard.SpendingTrendView `json:"data"` // Total spending per month
}

type CategoryTrendsResponse struct {
	Data dashboard.CategoryTrendsView `json:"data"` // Spending per category and month
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Trends
// @Success		204
// @Router			/v1/trends [options]
func OptionsTrends(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Spending trend
// @Description	Returns the total spending per month, ending with the current month
// @Tags			Trends
// @Produce		json
// @Success		200		{object}	SpendingTrendResponse
// @Failure		400		{object}	httperror.Error
// @Failure		502		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			months	query		int	false	"Number of months, at most 120. 0 returns all months with spending. Defaults to 6"
// @Router			/v1/trends [get]
func (co Controller) GetSpendingTrend(c *gin.Context) {
	n, err := httputil.QueryInt(c, "months", defaultMonths)
	if err != nil {
		fail(c, err)
		return
	}

	view, err := co.Service.SpendingTrend(c.Request.Context(), n, co.now())
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, SpendingTrendResponse{Data: view})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Trends
// @Success		204
// @Router			/v1/trends/categories [options]
func OptionsCategoryTrends(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Spending trend per category
// @Description	Returns the spending of every category per month, ending with the current month
// @Tags			Trends
// @Produce		json
// @Success		200		{object}	CategoryTrendsResponse
// @Failure		400		{object}	httperror.Error
// @Failure		502		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			months	query		int	false	"Number of months, at most 120. 0 returns all months with spending. Defaults to 6"
// @Router			/v1/trends/categories [get]
func (co Controller) GetCategoryTrends(c *gin.Context) {
	n, err := httputil.QueryInt(c, "months", defaultMonths)
	if err != nil {
		fail(c, err)
		return
	}

	view, err := co.Service.CategoryTrends(c.Request.Context(), n, co.now())
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, CategoryTrendsResponse{Data: view})
}
