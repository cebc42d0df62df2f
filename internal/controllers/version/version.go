// Package version serves the build information of the running backend.
package version

import (
	"net/http"
	"runtime"

	"github.com/fingoal/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

// Controller serves the version it was created with.
type Controller struct {
	Version string
}

type Response struct {
	Data Object `json:"data"` // Build information
}

type Object struct {
	Version   string `json:"version" example:"1.4.2"`      // Version of the FinGoal backend
	GoVersion string `json:"goVersion" example:"go1.25.5"` // Go release the binary was built with
}

func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", Options)
	r.GET("", co.Get)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/version [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Build information
// @Description	Returns the version of the backend and the Go release it was built with
// @Tags			General
// @Produce		json
// @Success		200	{object}	Response
// @Router			/version [get]
func (co Controller) Get(c *gin.Context) {
	c.JSON(http.StatusOK, Response{
		Data: Object{
			Version:   co.Version,
			GoVersion: runtime.Version(),
		},
	})
}
