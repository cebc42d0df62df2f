// Package v1 implements the handlers for the v1 API.
package v1

import (
	"github.com/fingoal/backend/internal/chat"
	"github.com/fingoal/backend/internal/planner"
	"github.com/fingoal/backend/internal/settings"
	"github.com/gin-gonic/gin"
)

// Controller holds the services the handlers operate on.
type Controller struct {
	Planner  *planner.Service
	Chat     *chat.Session
	Settings *settings.Settings
}

// RegisterRoutes registers all v1 routes with the RouterGroup that is passed.
func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", GetRoot)
	r.OPTIONS("", OptionsRoot)

	co.RegisterGoalRoutes(r.Group("/goals"))
	co.RegisterBudgetRoutes(r.Group("/budget"))
	co.RegisterActivityRoutes(r.Group("/activities"))
	co.RegisterSummaryRoutes(r.Group("/summary"))
	co.RegisterChatRoutes(r.Group("/chat"))
	co.RegisterSettingsRoutes(r.Group("/settings"))
	co.RegisterEducationRoutes(r.Group("/education"))
	RegisterCalculatorRoutes(r.Group("/calculators"))
}
