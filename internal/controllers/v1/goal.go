package v1

import (
	"fmt"
	"net/http"

	"github.com/fingoal/backend/internal/httputil"
	"github.com/fingoal/backend/internal/models"
	"github.com/fingoal/backend/internal/planner"
	"github.com/gin-gonic/gin"
)

var (
	errCurrentAmountRequired = fmt.Errorf("%w: the currentAmount must be set", models.ErrValidation)
	errAmountRequired        = fmt.Errorf("%w: the amount must be set", models.ErrValidation)
)

func (co Controller) RegisterGoalRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsGoals)
		r.GET("", co.GetGoals)
		r.POST("", co.CreateGoal)
	}
	{
		r.OPTIONS("/:id", co.OptionsGoalDetail)
		r.GET("/:id", co.GetGoal)
		r.PATCH("/:id", co.UpdateGoal)
		r.DELETE("/:id", co.DeleteGoal)
	}
	{
		r.OPTIONS("/:id/contributions", co.OptionsGoalContributions)
		r.POST("/:id/contributions", co.CreateContribution)
		r.OPTIONS("/:id/steps", co.OptionsGoalSteps)
		r.POST("/:id/steps", co.RegenerateSteps)
	}
}

// goalError writes the error as GoalResponse.
func goalError(c *gin.Context, err error) {
	e := err.Error()
	c.JSON(status(err), GoalResponse{
		Error: &e,
	})
}

// goalFromURI returns the goal identified by the id URI parameter.
// If the boolean is false, an error response has already been written.
func (co Controller) goalFromURI(c *gin.Context) (models.Goal, bool) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		goalError(c, httputil.ErrInvalidUUID)
		return models.Goal{}, false
	}

	goal, err := co.Planner.Goal(uri.ID)
	if err != nil {
		goalError(c, err)
		return models.Goal{}, false
	}

	return goal, true
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Goals
// @Success		204
// @Router			/v1/goals [options]
func OptionsGoals(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Goals
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/goals/{id} [options]
func (co Controller) OptionsGoalDetail(c *gin.Context) {
	if _, ok := co.goalFromURI(c); !ok {
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Goals
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/goals/{id}/contributions [options]
func (co Controller) OptionsGoalContributions(c *gin.Context) {
	if _, ok := co.goalFromURI(c); !ok {
		return
	}

	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Goals
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/goals/{id}/steps [options]
func (co Controller) OptionsGoalSteps(c *gin.Context) {
	if _, ok := co.goalFromURI(c); !ok {
		return
	}

	httputil.OptionsPost(c)
}

// @Summary		Create goal
// @Description	Creates a new goal. The action plan is generated for the budget of the user if an API key is configured, otherwise it is taken from the template for the category.
// @Tags			Goals
// @Accept			json
// @Produce		json
// @Success		201		{object}	GoalResponse
// @Failure		400		{object}	GoalResponse
// @Failure		500		{object}	GoalResponse
// @Param			goal	body		planner.GoalInput	true	"Goal"
// @Router			/v1/goals [post]
func (co Controller) CreateGoal(c *gin.Context) {
	var input planner.GoalInput
	if err := httputil.BindData(c, &input); err != nil {
		goalError(c, err)
		return
	}

	goal, err := co.Planner.CreateGoal(c.Request.Context(), input)
	if err != nil {
		goalError(c, err)
		return
	}

	view := co.Planner.View(goal)
	c.JSON(http.StatusCreated, GoalResponse{Data: &view})
}

// @Summary		List goals
// @Description	Returns all goals in the order they were created
// @Tags			Goals
// @Produce		json
// @Success		200	{object}	GoalListResponse
// @Router			/v1/goals [get]
func (co Controller) GetGoals(c *gin.Context) {
	goals := co.Planner.Goals()

	data := make([]planner.GoalView, 0, len(goals))
	for _, goal := range goals {
		data = append(data, co.Planner.View(goal))
	}

	c.JSON(http.StatusOK, GoalListResponse{Data: data})
}

// @Summary		Get goal
// @Description	Returns a specific goal
// @Tags			Goals
// @Produce		json
// @Success		200	{object}	GoalResponse
// @Failure		400	{object}	GoalResponse
// @Failure		404	{object}	GoalResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/goals/{id} [get]
func (co Controller) GetGoal(c *gin.Context) {
	goal, ok := co.goalFromURI(c)
	if !ok {
		return
	}

	view := co.Planner.View(goal)
	c.JSON(http.StatusOK, GoalResponse{Data: &view})
}

// @Summary		Update goal amount
// @Description	Sets the amount saved for a goal. The change is recorded in the activity log.
// @Tags			Goals
// @Accept			json
// @Produce		json
// @Success		200		{object}	GoalResponse
// @Failure		400		{object}	GoalResponse
// @Failure		404		{object}	GoalResponse
// @Failure		500		{object}	GoalResponse
// @Param			id		path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			goal	body		GoalAmountEditable	true	"Goal"
// @Router			/v1/goals/{id} [patch]
func (co Controller) UpdateGoal(c *gin.Context) {
	goal, ok := co.goalFromURI(c)
	if !ok {
		return
	}

	var data GoalAmountEditable
	if err := httputil.BindData(c, &data); err != nil {
		goalError(c, err)
		return
	}

	if !data.CurrentAmount.Valid {
		goalError(c, errCurrentAmountRequired)
		return
	}

	goal, err := co.Planner.UpdateGoalAmount(c.Request.Context(), goal.ID, data.CurrentAmount.Decimal)
	if err != nil {
		goalError(c, err)
		return
	}

	view := co.Planner.View(goal)
	c.JSON(http.StatusOK, GoalResponse{Data: &view})
}

// @Summary		Add to goal
// @Description	Adds an amount to the amount saved for a goal
// @Tags			Goals
// @Accept			json
// @Produce		json
// @Success		200				{object}	GoalResponse
// @Failure		400				{object}	GoalResponse
// @Failure		404				{object}	GoalResponse
// @Failure		500				{object}	GoalResponse
// @Param			id				path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			contribution	body		ContributionEditable	true	"Contribution"
// @Router			/v1/goals/{id}/contributions [post]
func (co Controller) CreateContribution(c *gin.Context) {
	goal, ok := co.goalFromURI(c)
	if !ok {
		return
	}

	var data ContributionEditable
	if err := httputil.BindData(c, &data); err != nil {
		goalError(c, err)
		return
	}

	if !data.Amount.Valid {
		goalError(c, errAmountRequired)
		return
	}

	goal, err := co.Planner.Contribute(c.Request.Context(), goal.ID, data.Amount.Decimal)
	if err != nil {
		goalError(c, err)
		return
	}

	view := co.Planner.View(goal)
	c.JSON(http.StatusOK, GoalResponse{Data: &view})
}

// @Summary		Regenerate action plan
// @Description	Generates a new action plan for the goal
// @Tags			Goals
// @Produce		json
// @Success		200	{object}	GoalResponse
// @Failure		400	{object}	GoalResponse
// @Failure		404	{object}	GoalResponse
// @Failure		500	{object}	GoalResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/goals/{id}/steps [post]
func (co Controller) RegenerateSteps(c *gin.Context) {
	goal, ok := co.goalFromURI(c)
	if !ok {
		return
	}

	goal, err := co.Planner.RegenerateSteps(c.Request.Context(), goal.ID)
	if err != nil {
		goalError(c, err)
		return
	}

	view := co.Planner.View(goal)
	c.JSON(http.StatusOK, GoalResponse{Data: &view})
}

// @Summary		Delete goal
// @Description	Deletes a goal
// @Tags			Goals
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/goals/{id} [delete]
func (co Controller) DeleteGoal(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(status(httputil.ErrInvalidUUID), httpError{
			Error: httputil.ErrInvalidUUID.Error(),
		})
		return
	}

	err := co.Planner.DeleteGoal(c.Request.Context(), uri.ID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}
