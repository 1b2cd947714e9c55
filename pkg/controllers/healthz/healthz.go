package healthz

import (
	"context"
	"fmt"
	"net/http"

	"github.com/finboard/backend/internal/httperror"
	"github.com/finboard/backend/pkg/httputil"
	"github.com/gin-gonic/gin"
)

// Check reports a problem with a dependency of the API.
type Check func(context.Context) error

func RegisterRoutes(r *gin.RouterGroup, check Check) {
	r.OPTIONS("", Options)
	r.GET("", Get(check))
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get health
// @Description	Returns the application health and, if not healthy, an error
// @Tags			General
// @Produce		json
// @Success		204
// @Failure		500	{object}	httperror.Error
// @Router			/healthz [get]
func Get(check Check) gin.HandlerFunc {
	return func(c *gin.Context) {
		if check != nil {
			if err := check(c.Request.Context()); err != nil {
				c.JSON(http.StatusInternalServerError, httperror.New(fmt.Errorf("the data source is not available: %w", err)))
				return
			}
		}

		c.Status(http.StatusNoContent)
	}
}
