package planner

import (
	"context"

	"github.com/fingoal/backend/internal/advisor"
	"github.com/fingoal/backend/internal/models"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

// SetBudget replaces the monthly budget.
//
// With an API key configured, the action plans of all goals are generated
// again for the new budget, one goal after the other. It returns the
// number of goals that got a new plan.
func (s *Service) SetBudget(ctx context.Context, budget models.Budget) (int, error) {
	if budget.Income.IsNegative() || budget.Expenses.IsNegative() {
		return 0, errBudgetNegative
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	apiKey, err := s.keys.APIKey(ctx)
	if err != nil {
		return 0, err
	}

	goals := s.goals
	regenerated := 0
	if apiKey != "" && len(s.goals) > 0 {
		goals = slices.Clone(s.goals)
		for i := range goals {
			goals[i].Steps = s.advisor.Steps(ctx, apiKey, goals[i], advisor.NewUserContext(budget, goals))
		}
		regenerated = len(goals)
	}

	activities := s.withActivity(models.ActivityBudgetUpdate, "Budget Updated", "Monthly budget has been updated", nil)

	values := map[string]any{
		models.KeyBudget:     budget,
		models.KeyActivities: activities,
	}
	if regenerated > 0 {
		values[models.KeyGoals] = goals
	}

	if err := models.SaveAll(ctx, s.store, values); err != nil {
		return 0, err
	}

	s.budget = budget
	s.goals = goals
	s.activities = activities

	if regenerated > 0 {
		log.Info().Int("goals", regenerated).Msg("regenerated action plans for the new budget")
	}

	return regenerated, nil
}

// Budget returns the monthly budget.
func (s *Service) Budget() models.Budget {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.budget
}
