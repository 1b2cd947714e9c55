package v1

import (
	"net/http"

	"github.com/finboard/backend/pkg/aggregate"
	"github.com/finboard/backend/pkg/dashboard"
	"github.com/finboard/backend/pkg/httputil"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type BudgetResponse struct {
	Data dashboard.BudgetView `json:"data"` // Budget status per category
}

type BudgetEditable struct {
	BudgetAmount decimal.Decimal `json:"budgetAmount" example:"300"` // The budget for the category
}

type BudgetEntryResponse struct {
	Data aggregate.BudgetEntry `json:"data"` // The updated budget
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budget
// @Success		204
// @Router			/v1/budget [options]
func OptionsBudget(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budget
// @Success		204
// @Param			category	path	string	true	"Name of the category"
// @Router			/v1/budget/{category} [options]
func OptionsBudgetCategory(c *gin.Context) {
	httputil.OptionsPut(c)
}

// @Summary		Get budget status
// @Description	Returns budget, spending and the predicted spending for every category in the month
// @Tags			Budget
// @Produce		json
// @Success		200		{object}	BudgetResponse
// @Failure		400		{object}	httperror.Error
// @Failure		502		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			month	query		string	false	"Month in YYYY-MM format. Defaults to the current month"
// @Router			/v1/budget [get]
func (co Controller) GetBudget(c *gin.Context) {
	now := co.now()

	month, err := httputil.QueryMonth(c, "month", now)
	if err != nil {
		fail(c, err)
		return
	}

	view, err := co.Service.Budget(c.Request.Context(), month, now)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, BudgetResponse{Data: view})
}

// @Summary		Update budget
// @Description	Sets the budget of a category
// @Tags			Budget
// @Accept			json
// @Produce		json
// @Success		200			{object}	BudgetEntryResponse
// @Failure		400			{object}	httperror.Error
// @Failure		502			{object}	httperror.Error
// @Failure		500			{object}	httperror.Error
// @Param			category	path		string			true	"Name of the category"
// @Param			budget		body		BudgetEditable	true	"Budget"
// @Router			/v1/budget/{category} [put]
func (co Controller) UpdateBudget(c *gin.Context) {
	var data BudgetEditable
	if err := httputil.BindData(c, &data); err != nil {
		fail(c, err)
		return
	}

	entry, err := co.Service.UpdateBudget(c.Request.Context(), aggregate.BudgetEntry{
		Category:     c.Param("category"),
		BudgetAmount: data.BudgetAmount,
	})
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, BudgetEntryResponse{Data: entry})
}
