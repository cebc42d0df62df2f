package models

import (
	"time"

	"github.com/fingoal/backend/internal/uuid"
	"github.com/shopspring/decimal"
)

type ActivityType string

const (
	ActivityGoalCreated  ActivityType = "goal_created"
	ActivityGoalUpdate   ActivityType = "goal_update"
	ActivityGoalDeleted  ActivityType = "goal_deleted"
	ActivityBudgetUpdate ActivityType = "budget_update"
)

// Activity is an entry in the audit log of changes to goals and the budget.
type Activity struct {
	ID          uuid.UUID        `json:"id" example:"1e777d24-3f5b-4c43-8000-04f65f895578"`
	Type        ActivityType     `json:"type" example:"goal_update"`
	Title       string           `json:"title" example:"Goal Updated"`
	Description string           `json:"description" example:"Added $250.00 to Emergency Fund"`
	Amount      *decimal.Decimal `json:"amount" example:"250"`
	Timestamp   time.Time        `json:"timestamp" example:"2026-10-16T09:12:44Z"`
}
