package v1

import (
	"context"
	"net/http"

	"github.com/fingoal/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

type APIKeyEditable struct {
	APIKey string `json:"apiKey" example:"sk-..."` // The API key for the chat completion endpoint
}

// APIKeyStatus never contains the key itself.
type APIKeyStatus struct {
	Configured bool `json:"configured" example:"true"` // Is an API key stored?
	DemoMode   bool `json:"demoMode" example:"false"`  // Did the user choose to continue without an API key?
}

type APIKeyStatusResponse struct {
	Data  *APIKeyStatus `json:"data"`                                                // Status of the API key
	Error *string       `json:"error" example:"the API key must start with \"sk-\""` // The error, if any occurred
}

type Visit struct {
	FirstVisit bool `json:"firstVisit" example:"true"` // Is this the first visit of the user?
}

type VisitResponse struct {
	Data  *Visit  `json:"data"`                                                                // The visit
	Error *string `json:"error" example:"an error occurred on the server during your request"` // The error, if any occurred
}

func (co Controller) RegisterSettingsRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("/api-key", OptionsAPIKey)
		r.GET("/api-key", co.GetAPIKey)
		r.PUT("/api-key", co.UpdateAPIKey)
		r.DELETE("/api-key", co.DeleteAPIKey)
	}
	{
		r.OPTIONS("/demo-mode", OptionsDemoMode)
		r.PUT("/demo-mode", co.UpdateDemoMode)
	}
	{
		r.OPTIONS("/visit", OptionsVisit)
		r.POST("/visit", co.CreateVisit)
	}
}

// apiKeyStatus returns the current status of the API key.
func (co Controller) apiKeyStatus(ctx context.Context) (*APIKeyStatus, error) {
	key, err := co.Settings.APIKey(ctx)
	if err != nil {
		return nil, err
	}

	demo, err := co.Settings.DemoMode(ctx)
	if err != nil {
		return nil, err
	}

	return &APIKeyStatus{Configured: key != "", DemoMode: demo}, nil
}

// renderAPIKeyStatus writes the current status of the API key with the
// given HTTP status.
func (co Controller) renderAPIKeyStatus(c *gin.Context, code int) {
	s, err := co.apiKeyStatus(c.Request.Context())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), APIKeyStatusResponse{Error: &e})
		return
	}

	c.JSON(code, APIKeyStatusResponse{Data: s})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Settings
// @Success		204
// @Router			/v1/settings/api-key [options]
func OptionsAPIKey(c *gin.Context) {
	httputil.OptionsGetPutDelete(c)
}

// @Summary		Get API key status
// @Description	Returns if an API key is configured and if demo mode is active. The key itself is never returned.
// @Tags			Settings
// @Produce		json
// @Success		200	{object}	APIKeyStatusResponse
// @Failure		500	{object}	APIKeyStatusResponse
// @Router			/v1/settings/api-key [get]
func (co Controller) GetAPIKey(c *gin.Context) {
	co.renderAPIKeyStatus(c, http.StatusOK)
}

// @Summary		Set API key
// @Description	Stores the API key for the chat completion endpoint and leaves demo mode
// @Tags			Settings
// @Accept			json
// @Produce		json
// @Success		200		{object}	APIKeyStatusResponse
// @Failure		400		{object}	APIKeyStatusResponse
// @Failure		500		{object}	APIKeyStatusResponse
// @Param			apiKey	body		APIKeyEditable	true	"API key"
// @Router			/v1/settings/api-key [put]
func (co Controller) UpdateAPIKey(c *gin.Context) {
	var data APIKeyEditable
	if err := httputil.BindData(c, &data); err != nil {
		e := err.Error()
		c.JSON(status(err), APIKeyStatusResponse{Error: &e})
		return
	}

	if err := co.Settings.SetAPIKey(c.Request.Context(), data.APIKey); err != nil {
		e := err.Error()
		c.JSON(status(err), APIKeyStatusResponse{Error: &e})
		return
	}

	co.renderAPIKeyStatus(c, http.StatusOK)
}

// @Summary		Delete API key
// @Description	Removes the API key. Goals and chat fall back to the built in responses.
// @Tags			Settings
// @Success		204
// @Failure		500	{object}	httpError
// @Router			/v1/settings/api-key [delete]
func (co Controller) DeleteAPIKey(c *gin.Context) {
	if err := co.Settings.RemoveAPIKey(c.Request.Context()); err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Settings
// @Success		204
// @Router			/v1/settings/demo-mode [options]
func OptionsDemoMode(c *gin.Context) {
	httputil.OptionsPut(c)
}

// @Summary		Enable demo mode
// @Description	Switches to demo mode and removes the API key
// @Tags			Settings
// @Produce		json
// @Success		200	{object}	APIKeyStatusResponse
// @Failure		500	{object}	APIKeyStatusResponse
// @Router			/v1/settings/demo-mode [put]
func (co Controller) UpdateDemoMode(c *gin.Context) {
	if err := co.Settings.EnableDemoMode(c.Request.Context()); err != nil {
		e := err.Error()
		c.JSON(status(err), APIKeyStatusResponse{Error: &e})
		return
	}

	co.renderAPIKeyStatus(c, http.StatusOK)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Settings
// @Success		204
// @Router			/v1/settings/visit [options]
func OptionsVisit(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Record visit
// @Description	Records a visit of the user. firstVisit is true for the very first visit only.
// @Tags			Settings
// @Produce		json
// @Success		200	{object}	VisitResponse
// @Failure		500	{object}	VisitResponse
// @Router			/v1/settings/visit [post]
func (co Controller) CreateVisit(c *gin.Context) {
	first, err := co.Settings.FirstVisit(c.Request.Context())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), VisitResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, VisitResponse{Data: &Visit{FirstVisit: first}})
}
