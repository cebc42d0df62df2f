package planner

import (
	"context"
	"fmt"

	"github.com/fingoal/backend/internal/advisor"
	"github.com/fingoal/backend/internal/finance"
	"github.com/fingoal/backend/internal/models"
	"github.com/fingoal/backend/internal/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// CreateGoal validates the input, generates the action plan and stores the
// new goal.
func (s *Service) CreateGoal(ctx context.Context, in GoalInput) (models.Goal, error) {
	goal, err := in.validate()
	if err != nil {
		return models.Goal{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	apiKey, err := s.keys.APIKey(ctx)
	if err != nil {
		return models.Goal{}, err
	}

	goal.ID = uuid.New()
	goal.CreatedAt = s.now()
	goal.Steps = s.advisor.Steps(ctx, apiKey, goal, advisor.NewUserContext(s.budget, s.goals))

	target := goal.TargetAmount
	goals := append(slices.Clone(s.goals), goal)
	activities := s.withActivity(models.ActivityGoalCreated, "New Goal Created", fmt.Sprintf("Created %s goal", goal.Name), &target)

	if err := s.commitGoals(ctx, goals, activities); err != nil {
		return models.Goal{}, err
	}

	return goal, nil
}

// UpdateGoalAmount sets the current amount of the goal and logs the
// difference to the previous amount.
func (s *Service) UpdateGoalAmount(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (models.Goal, error) {
	if amount.IsNegative() {
		return models.Goal{}, errAmountNegative
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.updateAmount(ctx, id, func(models.Goal) decimal.Decimal { return amount })
}

// Contribute adds amount to the current amount of the goal.
func (s *Service) Contribute(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (models.Goal, error) {
	if !amount.IsPositive() {
		return models.Goal{}, errAmountNotPositive
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.updateAmount(ctx, id, func(g models.Goal) decimal.Decimal { return g.CurrentAmount.Add(amount) })
}

// updateAmount must be called with the lock held.
func (s *Service) updateAmount(ctx context.Context, id uuid.UUID, amount func(models.Goal) decimal.Decimal) (models.Goal, error) {
	i, err := s.index(id)
	if err != nil {
		return models.Goal{}, err
	}

	goals := slices.Clone(s.goals)
	previous := goals[i].CurrentAmount
	goals[i].CurrentAmount = amount(goals[i])
	goal := goals[i]

	delta := goal.CurrentAmount.Sub(previous)
	description := fmt.Sprintf("Added %s to %s", finance.FormatCurrency(delta), goal.Name)
	if delta.IsNegative() {
		description = fmt.Sprintf("Removed %s from %s", finance.FormatCurrency(delta.Abs()), goal.Name)
	}

	abs := delta.Abs()
	activities := s.withActivity(models.ActivityGoalUpdate, "Goal Updated", description, &abs)

	if err := s.commitGoals(ctx, goals, activities); err != nil {
		return models.Goal{}, err
	}

	return goal, nil
}

// DeleteGoal removes the goal.
func (s *Service) DeleteGoal(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, err := s.index(id)
	if err != nil {
		return err
	}

	goal := s.goals[i]
	goals := slices.Delete(slices.Clone(s.goals), i, i+1)
	activities := s.withActivity(models.ActivityGoalDeleted, "Goal Deleted", fmt.Sprintf("Deleted %s goal", goal.Name), nil)

	return s.commitGoals(ctx, goals, activities)
}

// RegenerateSteps replaces the action plan of the goal with a new one.
func (s *Service) RegenerateSteps(ctx context.Context, id uuid.UUID) (models.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, err := s.index(id)
	if err != nil {
		return models.Goal{}, err
	}

	apiKey, err := s.keys.APIKey(ctx)
	if err != nil {
		return models.Goal{}, err
	}

	goals := slices.Clone(s.goals)
	goals[i].Steps = s.advisor.Steps(ctx, apiKey, goals[i], advisor.NewUserContext(s.budget, goals))

	if err := models.Save(ctx, s.store, models.KeyGoals, goals); err != nil {
		return models.Goal{}, err
	}
	s.goals = goals

	return goals[i], nil
}

// Goals returns all goals in creation order.
func (s *Service) Goals() []models.Goal {
	s.mu.Lock()
	defer s.mu.Unlock()

	goals := make([]models.Goal, 0, len(s.goals))
	return append(goals, s.goals...)
}

// Goal returns the goal with the ID.
func (s *Service) Goal(id uuid.UUID) (models.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, err := s.index(id)
	if err != nil {
		return models.Goal{}, err
	}

	return s.goals[i], nil
}

// index returns the position of the goal. It must be called with the lock held.
func (s *Service) index(id uuid.UUID) (int, error) {
	i := slices.IndexFunc(s.goals, func(g models.Goal) bool { return g.ID == id })
	if i < 0 {
		return -1, fmt.Errorf("%w goal with ID %s", models.ErrResourceNotFound, id)
	}

	return i, nil
}
