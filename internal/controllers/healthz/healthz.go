package healthz

import (
	"net/http"

	"github.com/fingoal/backend/internal/httputil"
	"github.com/fingoal/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type Controller struct {
	DB *gorm.DB
}

func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", Options)
	r.GET("", co.Get)
}

type httpError struct {
	Error string `json:"error" example:"an error occurred on the server during your request"`
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
// @Failure		500	{object}	httpError
// @Router			/healthz [get]
func (co Controller) Get(c *gin.Context) {
	sqlDB, err := co.DB.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}

	if err != nil {
		log.Error().Msgf("%T: %v", err, err.Error())
		c.JSON(http.StatusInternalServerError, httpError{
			Error: models.ErrGeneral.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}
