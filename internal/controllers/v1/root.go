package v1

import (
	"net/http"

	"github.com/fingoal/backend/internal/httputil"
	"github.com/fingoal/backend/internal/models"
	"github.com/gin-gonic/gin"
)

type RootResponse struct {
	Links RootLinks `json:"links"` // Links for the v1 API
}

type RootLinks struct {
	Goals       string `json:"goals" example:"https://example.com/api/v1/goals"`             // URL of goal list endpoint
	Budget      string `json:"budget" example:"https://example.com/api/v1/budget"`           // URL of the budget
	Activities  string `json:"activities" example:"https://example.com/api/v1/activities"`   // URL of the activity log
	Summary     string `json:"summary" example:"https://example.com/api/v1/summary"`         // URL of the dashboard summary
	Chat        string `json:"chat" example:"https://example.com/api/v1/chat"`               // URL of the chat
	Settings    string `json:"settings" example:"https://example.com/api/v1/settings"`       // URL of the settings
	Education   string `json:"education" example:"https://example.com/api/v1/education"`     // URL of the education progress
	Calculators string `json:"calculators" example:"https://example.com/api/v1/calculators"` // URL of the calculators
}

// @Summary		v1 API
// @Description	Returns general information about the v1 API
// @Tags			v1
// @Success		200	{object}	RootResponse
// @Router			/v1 [get]
func GetRoot(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL)) + "/v1"

	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			Goals:       url + "/goals",
			Budget:      url + "/budget",
			Activities:  url + "/activities",
			Summary:     url + "/summary",
			Chat:        url + "/chat",
			Settings:    url + "/settings",
			Education:   url + "/education",
			Calculators: url + "/calculators",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			v1
// @Success		204
// @Router			/v1 [options]
func OptionsRoot(c *gin.Context) {
	httputil.OptionsGet(c)
}
