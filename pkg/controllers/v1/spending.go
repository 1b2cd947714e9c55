package v1

import (
	"net/http"

	"github.com/finboard/backend/pkg/dashboard"
	"github.com/finboard/backend/pkg/httputil"
	"github.com/gin-gonic/gin"
)

type CategoriesResponse struct {
	Data dashboard.CategoriesView `json:"data"` // Spending per category
}

type CashFlowResponse struct {
	Data dashboard.CashFlowView `json:"data"` // Split of the income into spending and savings
}

type TravelResponse struct {
	Data dashboard.TravelView `json:"data"` // Spending per trip
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Spending
// @Success		204
// @Router			/v1/categories [options]
func OptionsCategories(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Spending per category
// @Description	Returns the spending for every category in the month, largest first
// @Tags			Spending
// @Produce		json
// @Success		200		{object}	CategoriesResponse
// @Failure		400		{object}	httperror.Error
// @Failure		502		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			month	query		string	false	"Month in YYYY-MM format. Defaults to the current month"
// @Router			/v1/categories [get]
func (co Controller) GetCategories(c *gin.Context) {
	month, err := httputil.QueryMonth(c, "month", co.now())
	if err != nil {
		fail(c, err)
		return
	}

	view, err := co.Service.Categories(c.Request.Context(), month)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, CategoriesResponse{Data: view})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Spending
// @Success		204
// @Router			/v1/cash-flow [options]
func OptionsCashFlow(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Cash flow
// @Description	Returns how the income of the month was spent per category and how much was saved
// @Tags			Spending
// @Produce		json
// @Success		200		{object}	CashFlowResponse
// @Failure		400		{object}	httperror.Error
// @Failure		502		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			month	query		string	false	"Month in YYYY-MM format. Defaults to the current month"
// @Router			/v1/cash-flow [get]
func (co Controller) GetCashFlow(c *gin.Context) {
	month, err := httputil.QueryMonth(c, "month", co.now())
	if err != nil {
		fail(c, err)
		return
	}

	view, err := co.Service.CashFlow(c.Request.Context(), month)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, CashFlowResponse{Data: view})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Spending
// @Success		204
// @Router			/v1/travel [options]
func OptionsTravel(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Travel spending
// @Description	Returns the spending per trip, most recent trip first
// @Tags			Spending
// @Produce		json
// @Success		200	{object}	TravelResponse
// @Failure		502	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Router			/v1/travel [get]
func (co Controller) GetTravel(c *gin.Context) {
	view, err := co.Service.Travel(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, TravelResponse{Data: view})
}
