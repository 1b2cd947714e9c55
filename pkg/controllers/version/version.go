package version

import (
	"net/http"

	"github.com/finboard/backend/pkg/httputil"
	"github.com/gin-gonic/gin"
)

type Response struct {
	Data Object `json:"data"` // Data object for the version endpoint
}

type Object struct {
	Version    string `json:"version" example:"1.4.0"`     // The running version of the backend
	DataSource string `json:"dataSource" example:"remote"` // Where the dashboard data comes from: "remote" for the finance backend, "local" for the offline mirror
}

func RegisterRoutes(r *gin.RouterGroup, version, dataSource string) {
	object := Object{Version: version, DataSource: dataSource}

	r.GET("", Get(object))
	r.OPTIONS("", Options)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/version [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		API version
// @Description	Returns the software version of the API and the data source it serves from
// @Tags			General
// @Success		200	{object}	Response
// @Router			/version [get]
func Get(object Object) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, Response{Data: object})
	}
}
