package planner

import (
	"context"
	"time"

	"github.com/fingoal/backend/internal/models"
	"github.com/fingoal/backend/internal/types"
	"github.com/fingoal/backend/internal/uuid"
	"github.com/shopspring/decimal"
)

// SeedSampleData fills an empty store with example goals, a budget and a
// few activities. Collections that already contain data are not changed.
func (s *Service) SeedSampleData(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	date := func(years, months int) types.Date {
		return types.DateOf(now.AddDate(years, months, 0))
	}

	if len(s.goals) == 0 {
		goals := []models.Goal{
			{
				ID:            uuid.New(),
				Name:          "Emergency Fund",
				TargetAmount:  decimal.NewFromInt(5000),
				CurrentAmount: decimal.NewFromInt(3250),
				Deadline:      date(1, 2),
				Category:      models.CategoryEmergency,
				CreatedAt:     now,
				Steps: []string{
					"Calculate 3-6 months of expenses",
					"Open high-yield savings account",
					"Set up automatic transfers",
					"Save $500 per month consistently",
					"Avoid touching fund except for emergencies",
				},
			},
			{
				ID:            uuid.New(),
				Name:          "Student Loan Payoff",
				TargetAmount:  decimal.NewFromInt(15000),
				CurrentAmount: decimal.NewFromInt(6000),
				Deadline:      date(2, 8),
				Category:      models.CategoryDebt,
				CreatedAt:     now,
				Steps: []string{
					"List all loans with interest rates",
					"Choose debt avalanche strategy",
					"Make minimum payments on all loans",
					"Pay extra $300/month on highest rate loan",
					"Consider refinancing options",
				},
			},
			{
				ID:            uuid.New(),
				Name:          "House Down Payment",
				TargetAmount:  decimal.NewFromInt(50000),
				CurrentAmount: decimal.NewFromInt(12500),
				Deadline:      date(4, 3),
				Category:      models.CategoryHouse,
				CreatedAt:     now,
				Steps: []string{
					"Research home prices in target area",
					"Save 20% for down payment",
					"Improve credit score to 740+",
					"Get pre-approved for mortgage",
					"Save additional 2-3% for closing costs",
				},
			},
		}

		if err := models.Save(ctx, s.store, models.KeyGoals, goals); err != nil {
			return err
		}
		s.goals = goals
	}

	if s.budget.Income.IsZero() {
		budget := models.Budget{Income: decimal.NewFromInt(3500), Expenses: decimal.NewFromInt(2800)}
		if err := models.Save(ctx, s.store, models.KeyBudget, budget); err != nil {
			return err
		}
		s.budget = budget
	}

	if len(s.activities) == 0 {
		day := 24 * time.Hour
		saved := decimal.NewFromInt(250)
		house := decimal.NewFromInt(50000)

		activities := []models.Activity{
			{
				ID:          uuid.New(),
				Type:        models.ActivityGoalUpdate,
				Title:       "Emergency Fund Updated",
				Description: "Added $250.00 to Emergency Fund",
				Amount:      &saved,
				Timestamp:   now.Add(-2 * day),
			},
			{
				ID:          uuid.New(),
				Type:        models.ActivityGoalCreated,
				Title:       "New Goal Created",
				Description: "Created House Down Payment goal",
				Amount:      &house,
				Timestamp:   now.Add(-5 * day),
			},
			{
				ID:          uuid.New(),
				Type:        models.ActivityBudgetUpdate,
				Title:       "Budget Updated",
				Description: "Monthly budget has been updated",
				Timestamp:   now.Add(-7 * day),
			},
		}

		if err := models.Save(ctx, s.store, models.KeyActivities, activities); err != nil {
			return err
		}
		s.activities = activities
	}

	return nil
}
