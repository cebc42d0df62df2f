package v1

import (
	"github.com/fingoal/backend/internal/planner"
	"github.com/shopspring/decimal"
)

type GoalResponse struct {
	Data  *planner.GoalView `json:"data"`                                                          // Data for the goal
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type GoalListResponse struct {
	Data  []planner.GoalView `json:"data"`                                                                // List of goals
	Error *string            `json:"error" example:"an error occurred on the server during your request"` // The error, if any occurred
}

type GoalAmountEditable struct {
	CurrentAmount decimal.NullDecimal `json:"currentAmount" swaggertype:"number" example:"3500"` // The new amount saved for the goal
}

type ContributionEditable struct {
	Amount decimal.NullDecimal `json:"amount" swaggertype:"number" example:"250"` // The amount to add to the goal
}
