package v1

import (
	"net/http"

	"github.com/fingoal/backend/internal/httputil"
	"github.com/fingoal/backend/internal/models"
	"github.com/gin-gonic/gin"
)

type ActivityListResponse struct {
	Data  []models.Activity `json:"data"`                                                                                // List of activities, newest first
	Error *string           `json:"error" example:"the query string contains unparseable data. Please check the values"` // The error, if any occurred
}

type ActivityQueryFilter struct {
	Recent bool `form:"recent"` // Only return the latest activities
}

func (co Controller) RegisterActivityRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsActivities)
	r.GET("", co.GetActivities)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Activities
// @Success		204
// @Router			/v1/activities [options]
func OptionsActivities(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		List activities
// @Description	Returns the activity log. With recent=true, only the five latest activities are returned.
// @Tags			Activities
// @Produce		json
// @Success		200		{object}	ActivityListResponse
// @Failure		400		{object}	ActivityListResponse
// @Param			recent	query		bool	false	"Only return the latest activities"
// @Router			/v1/activities [get]
func (co Controller) GetActivities(c *gin.Context) {
	var filter ActivityQueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		e := httputil.ErrInvalidQuery.Error()
		c.JSON(http.StatusBadRequest, ActivityListResponse{Error: &e})
		return
	}

	activities := co.Planner.Activities()
	if filter.Recent {
		activities = co.Planner.RecentActivities()
	}

	if activities == nil {
		activities = []models.Activity{}
	}

	c.JSON(http.StatusOK, ActivityListResponse{Data: activities})
}
