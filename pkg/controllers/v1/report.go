package v1

import (
	"net/http"

	"github.com/finboard/backend/pkg/dashboard"
	"github.com/finboard/backend/pkg/httputil"
	"github.com/finboard/backend/pkg/reference"
	"github.com/gin-gonic/gin"
)

// reportMonths is the number of months in a report if the request does not specify its start.
const reportMonths = 12

type ReportResponse struct {
	Data dashboard.ReportView `json:"data"` // Income and spending over the months
}

type ReferenceResponse struct {
	Data ReferenceData `json:"data"`
}

type ReferenceData struct {
	Categories []reference.Category `json:"categories"` // All categories in display order
	Methods    []reference.Method   `json:"methods"`    // All payment methods
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Reports
// @Success		204
// @Router			/v1/reports [options]
func OptionsReports(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Income and spending report
// @Description	Returns income and spending per month and the spending per category for a range of months
// @Tags			Reports
// @Produce		json
// @Success		200		{object}	ReportResponse
// @Failure		400		{object}	httperror.Error
// @Failure		502		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			from	query		string	false	"First month in YYYY-MM format. Defaults to 11 months before the last month"
// @Param			to		query		string	false	"Last month in YYYY-MM format. Defaults to the current month. A report covers at most 120 months"
// @Router			/v1/reports [get]
func (co Controller) GetReport(c *gin.Context) {
	to, err := httputil.QueryMonth(c, "to", co.now())
	if err != nil {
		fail(c, err)
		return
	}

	from, err := httputil.QueryMonth(c, "from", to.AddDate(0, -(reportMonths-1)).Start())
	if err != nil {
		fail(c, err)
		return
	}

	view, err := co.Service.Report(c.Request.Context(), from, to)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, ReportResponse{Data: view})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Reference
// @Success		204
// @Router			/v1/reference [options]
func OptionsReference(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Reference data
// @Description	Returns the categories with their colors and the payment methods with their icons
// @Tags			Reference
// @Produce		json
// @Success		200	{object}	ReferenceResponse
// @Router			/v1/reference [get]
func (co Controller) GetReference(c *gin.Context) {
	set := co.Service.Reference()

	c.JSON(http.StatusOK, ReferenceResponse{
		Data: ReferenceData{
			Categories: set.Categories(),
			Methods:    set.Methods(),
		},
	})
}
