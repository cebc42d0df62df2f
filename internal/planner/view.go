package planner

import (
	"github.com/fingoal/backend/internal/models"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// GoalView is a goal with the values derived from the current date.
type GoalView struct {
	models.Goal
	Progress          decimal.Decimal `json:"progress" example:"65"`          // Percent of the target, may exceed 100
	DisplayProgress   decimal.Decimal `json:"displayProgress" example:"65"`   // Progress clamped to 0 to 100
	DaysUntilDeadline int             `json:"daysUntilDeadline" example:"74"` // Negative for overdue goals
	MonthlyTarget     decimal.Decimal `json:"monthlyTarget" example:"583.33"`
	Completed         bool            `json:"completed" example:"false"`
}

// View returns the goal with its derived values.
func (s *Service) View(goal models.Goal) GoalView {
	now := s.now()
	progress := goal.Progress()

	display := progress
	if display.GreaterThan(hundred) {
		display = hundred
	} else if display.IsNegative() {
		display = decimal.Zero
	}

	return GoalView{
		Goal:              goal,
		Progress:          progress,
		DisplayProgress:   display,
		DaysUntilDeadline: goal.DaysUntilDeadline(now),
		MonthlyTarget:     goal.MonthlyTarget(now),
		Completed:         goal.Completed(),
	}
}

// Summary contains the dashboard statistics.
type Summary struct {
	TotalSaved      decimal.Decimal `json:"totalSaved" example:"21750"`
	ActiveGoals     int             `json:"activeGoals" example:"3"`
	CompletedGoals  int             `json:"completedGoals" example:"0"`
	MonthlyProgress decimal.Decimal `json:"monthlyProgress" example:"20"` // Savings rate of the budget in percent
	GoalCount       int             `json:"goalCount" example:"3"`
}

// Summary returns the dashboard statistics.
func (s *Service) Summary() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	summary := Summary{
		TotalSaved:      decimal.Zero,
		MonthlyProgress: s.budget.SavingsRate().Round(1),
		GoalCount:       len(s.goals),
	}

	for _, g := range s.goals {
		summary.TotalSaved = summary.TotalSaved.Add(g.CurrentAmount)
		if g.Completed() {
			summary.CompletedGoals++
		} else {
			summary.ActiveGoals++
		}
	}

	return summary
}
