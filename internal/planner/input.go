package planner

import (
	"fmt"
	"strings"

	"github.com/fingoal/backend/internal/models"
	"github.com/fingoal/backend/internal/types"
	"github.com/shopspring/decimal"
)

var (
	errNameRequired      = fmt.Errorf("%w: the goal name must not be empty", models.ErrValidation)
	errTargetRequired    = fmt.Errorf("%w: the target amount must be a number greater than zero", models.ErrValidation)
	errCurrentNegative   = fmt.Errorf("%w: the current amount must not be negative", models.ErrValidation)
	errDeadlineRequired  = fmt.Errorf("%w: the deadline must be set", models.ErrValidation)
	errAmountNegative    = fmt.Errorf("%w: the amount must not be negative", models.ErrValidation)
	errAmountNotPositive = fmt.Errorf("%w: the amount must be greater than zero", models.ErrValidation)
	errBudgetNegative    = fmt.Errorf("%w: income and expenses must not be negative", models.ErrValidation)
)

// GoalInput contains the values for a new goal.
type GoalInput struct {
	Name          string              `json:"name" example:"Emergency Fund"`
	TargetAmount  decimal.NullDecimal `json:"targetAmount" swaggertype:"number" example:"5000"`
	CurrentAmount decimal.NullDecimal `json:"currentAmount" swaggertype:"number" example:"250"` // Defaults to 0
	Deadline      types.Date          `json:"deadline" swaggertype:"string" example:"2027-12-31"`
	Category      models.Category     `json:"category" example:"emergency"` // Defaults to "other"
}

// validate checks the input and returns the normalized goal values.
func (in GoalInput) validate() (models.Goal, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return models.Goal{}, errNameRequired
	}

	if !in.TargetAmount.Valid || !in.TargetAmount.Decimal.IsPositive() {
		return models.Goal{}, errTargetRequired
	}

	current := decimal.Zero
	if in.CurrentAmount.Valid {
		if in.CurrentAmount.Decimal.IsNegative() {
			return models.Goal{}, errCurrentNegative
		}
		current = in.CurrentAmount.Decimal
	}

	if in.Deadline.IsZero() {
		return models.Goal{}, errDeadlineRequired
	}

	category := models.Category(strings.TrimSpace(string(in.Category)))
	if category == "" {
		category = models.CategoryOther
	}

	return models.Goal{
		Name:          name,
		TargetAmount:  in.TargetAmount.Decimal,
		CurrentAmount: current,
		Deadline:      in.Deadline,
		Category:      category,
	}, nil
}
