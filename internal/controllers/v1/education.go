package v1

import (
	"net/http"

	"github.com/fingoal/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

type EducationProgress struct {
	Completed []int `json:"completed" example:"0,2,3"` // Indices of the completed lessons
}

type EducationProgressResponse struct {
	Data  *EducationProgress `json:"data"`                                                // Progress through the lessons
	Error *string            `json:"error" example:"lesson indices must not be negative"` // The error, if any occurred
}

func (co Controller) RegisterEducationRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/progress", OptionsEducationProgress)
	r.GET("/progress", co.GetEducationProgress)
	r.PUT("/progress", co.UpdateEducationProgress)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Education
// @Success		204
// @Router			/v1/education/progress [options]
func OptionsEducationProgress(c *gin.Context) {
	httputil.OptionsGetPut(c)
}

// @Summary		Get education progress
// @Description	Returns the indices of the completed lessons in ascending order
// @Tags			Education
// @Produce		json
// @Success		200	{object}	EducationProgressResponse
// @Failure		500	{object}	EducationProgressResponse
// @Router			/v1/education/progress [get]
func (co Controller) GetEducationProgress(c *gin.Context) {
	completed, err := co.Settings.EducationProgress(c.Request.Context())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EducationProgressResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, EducationProgressResponse{Data: &EducationProgress{Completed: completed}})
}

// @Summary		Update education progress
// @Description	Replaces the completed lessons. Duplicate indices are removed.
// @Tags			Education
// @Accept			json
// @Produce		json
// @Success		200			{object}	EducationProgressResponse
// @Failure		400			{object}	EducationProgressResponse
// @Failure		500			{object}	EducationProgressResponse
// @Param			progress	body		EducationProgress	true	"Progress"
// @Router			/v1/education/progress [put]
func (co Controller) UpdateEducationProgress(c *gin.Context) {
	var data EducationProgress
	if err := httputil.BindData(c, &data); err != nil {
		e := err.Error()
		c.JSON(status(err), EducationProgressResponse{Error: &e})
		return
	}

	completed, err := co.Settings.SetEducationProgress(c.Request.Context(), data.Completed)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EducationProgressResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, EducationProgressResponse{Data: &EducationProgress{Completed: completed}})
}
