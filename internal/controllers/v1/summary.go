package v1

import (
	"net/http"

	"github.com/fingoal/backend/internal/httputil"
	"github.com/fingoal/backend/internal/planner"
	"github.com/gin-gonic/gin"
)

type SummaryResponse struct {
	Data planner.Summary `json:"data"` // Dashboard statistics
}

func (co Controller) RegisterSummaryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsSummary)
	r.GET("", co.GetSummary)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Summary
// @Success		204
// @Router			/v1/summary [options]
func OptionsSummary(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get summary
// @Description	Returns the statistics for the dashboard
// @Tags			Summary
// @Produce		json
// @Success		200	{object}	SummaryResponse
// @Router			/v1/summary [get]
func (co Controller) GetSummary(c *gin.Context) {
	c.JSON(http.StatusOK, SummaryResponse{Data: co.Planner.Summary()})
}
