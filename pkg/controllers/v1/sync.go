package v1

import (
	"net/http"

	"github.com/finboard/backend/pkg/httputil"
	"github.com/finboard/backend/pkg/models"
	"github.com/gin-gonic/gin"
)

type SyncResponse struct {
	Data models.SyncRun `json:"data"` // A synchronization of the offline mirror
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Sync
// @Success		204
// @Router			/v1/sync [options]
func OptionsSync(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Last synchronization
// @Description	Returns the most recent synchronization of the offline mirror
// @Tags			Sync
// @Produce		json
// @Success		200	{object}	SyncResponse
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Router			/v1/sync [get]
func (co Controller) GetSync(c *gin.Context) {
	run, err := models.LastSyncRun(co.DB.WithContext(c.Request.Context()))
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, SyncResponse{Data: run})
}

// @Summary		Synchronize
// @Description	Synchronizes the offline mirror with the finance backend
// @Tags			Sync
// @Produce		json
// @Success		200	{object}	SyncResponse
// @Failure		409	{object}	httperror.Error
// @Failure		502	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Router			/v1/sync [post]
func (co Controller) Sync(c *gin.Context) {
	run, err := co.Mirror.Sync(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, SyncResponse{Data: run})
}
