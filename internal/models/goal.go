package models

import (
	"math"
	"time"

	"github.com/fingoal/backend/internal/types"
	"github.com/fingoal/backend/internal/uuid"
	"github.com/shopspring/decimal"
)

// Category is the kind of a goal. It selects the step template.
type Category string

const (
	CategoryEmergency  Category = "emergency"
	CategoryDebt       Category = "debt"
	CategoryHouse      Category = "house"
	CategoryCar        Category = "car"
	CategoryVacation   Category = "vacation"
	CategoryInvestment Category = "investment"
	CategoryEducation  Category = "education"
	CategoryOther      Category = "other"
)

// Categories lists all known categories.
var Categories = []Category{
	CategoryEmergency,
	CategoryDebt,
	CategoryHouse,
	CategoryCar,
	CategoryVacation,
	CategoryInvestment,
	CategoryEducation,
	CategoryOther,
}

// Goal is a savings or debt target with a deadline and an action plan.
type Goal struct {
	ID            uuid.UUID       `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"`
	Name          string          `json:"name" example:"Emergency Fund"`
	TargetAmount  decimal.Decimal `json:"targetAmount" example:"5000"`
	CurrentAmount decimal.Decimal `json:"currentAmount" example:"3250"` // May exceed the target
	Deadline      types.Date      `json:"deadline" example:"2027-12-31"`
	Category      Category        `json:"category" example:"emergency"`
	CreatedAt     time.Time       `json:"createdAt" example:"2026-04-02T19:28:44.491514Z"`
	Steps         []string        `json:"steps"`
}

var hundred = decimal.NewFromInt(100)

// Progress returns the current amount as percentage of the target. It is
// not capped, overfunded goals report more than 100.
func (g Goal) Progress() decimal.Decimal {
	if !g.TargetAmount.IsPositive() {
		return decimal.Zero
	}

	return g.CurrentAmount.Div(g.TargetAmount).Mul(hundred)
}

// Completed reports whether the target has been reached.
func (g Goal) Completed() bool {
	return g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount)
}

// DaysUntilDeadline returns the number of days from now until the deadline,
// rounded up. It is zero when the goal is due today and negative when it
// is overdue.
func (g Goal) DaysUntilDeadline(now time.Time) int {
	return int(math.Ceil(g.Deadline.Until(now).Hours() / 24))
}

// MonthlyTarget returns the amount that needs to be saved per 30 day month
// to reach the target by the deadline. It is zero when the deadline has
// been reached.
func (g Goal) MonthlyTarget(now time.Time) decimal.Decimal {
	months := int64(math.Ceil(float64(g.DaysUntilDeadline(now)) / 30))
	if months <= 0 {
		return decimal.Zero
	}

	return g.TargetAmount.Sub(g.CurrentAmount).Div(decimal.NewFromInt(months)).Round(2)
}
