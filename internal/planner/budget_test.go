package planner_test

import (
	"context"
	"time"

	"github.com/fingoal/backend/internal/models"
	"github.com/fingoal/backend/internal/steps"
	"github.com/shopspring/decimal"
)

func budget(income, expenses int64) models.Budget {
	return models.Budget{Income: decimal.NewFromInt(income), Expenses: decimal.NewFromInt(expenses)}
}

func (suite *TestSuiteStandard) TestSetBudget() {
	regenerated, err := suite.service.SetBudget(context.Background(), budget(3500, 2800))
	suite.Require().Nil(err)
	suite.Assert().Equal(0, regenerated)

	suite.assertBudget(suite.service.Budget(), 3500, 2800)
	suite.assertBudget(suite.newService().Budget(), 3500, 2800)

	activity := suite.service.Activities()[0]
	suite.Assert().Equal(models.ActivityBudgetUpdate, activity.Type)
	suite.Assert().Equal("Budget Updated", activity.Title)
	suite.Assert().Equal("Monthly budget has been updated", activity.Description)
}

func (suite *TestSuiteStandard) TestSetBudgetNegative() {
	_, err := suite.service.SetBudget(context.Background(), budget(-1, 0))
	suite.Assert().ErrorIs(err, models.ErrValidation)

	_, err = suite.service.SetBudget(context.Background(), budget(100, -1))
	suite.Assert().ErrorIs(err, models.ErrValidation)

	suite.Assert().Len(suite.service.Activities(), 0)
}

func (suite *TestSuiteStandard) TestSetBudgetWithoutKeyKeepsSteps() {
	suite.createGoal("Car", models.CategoryCar, 8000, 0)

	regenerated, err := suite.service.SetBudget(context.Background(), budget(3500, 2800))
	suite.Require().Nil(err)
	suite.Assert().Equal(0, regenerated)
	suite.Assert().Equal(0, suite.completer.calls)
	suite.Assert().Equal(steps.For(models.CategoryCar), suite.service.Goals()[0].Steps)
}

func (suite *TestSuiteStandard) TestSetBudgetRegeneratesSequentially() {
	categories := []models.Category{models.CategoryCar, models.CategoryHouse, models.CategoryDebt, models.CategoryVacation, models.CategoryEducation}
	for _, c := range categories {
		suite.createGoal(string(c), c, 1000, 0)
	}

	suite.Require().Nil(suite.settings.SetAPIKey(context.Background(), "sk-test"))
	suite.completer.delay = 5 * time.Millisecond
	suite.completer.failEvery = 2

	regenerated, err := suite.service.SetBudget(context.Background(), budget(4000, 3000))
	suite.Require().Nil(err)
	suite.Assert().Equal(len(categories), regenerated)
	suite.Assert().Equal(len(categories), suite.completer.calls)
	suite.Assert().Equal(1, suite.completer.maxInFlight, "advisory calls must not overlap")

	for i, goal := range suite.service.Goals() {
		if (i+1)%2 == 0 {
			suite.Assert().Equal(steps.For(categories[i]), goal.Steps, "failed calls fall back to the template")
		} else {
			suite.Assert().Equal([]string{"Generated step", "Another step"}, goal.Steps)
		}
	}

	reloaded := suite.newService().Goals()
	for i, goal := range suite.service.Goals() {
		suite.Assert().Equal(goal.ID, reloaded[i].ID)
		suite.Assert().Equal(goal.Steps, reloaded[i].Steps)
	}
}

func (suite *TestSuiteStandard) TestSetBudgetConcurrentRequestsDoNotOverlap() {
	suite.createGoal("Car", models.CategoryCar, 1000, 0)
	suite.createGoal("House", models.CategoryHouse, 1000, 0)

	suite.Require().Nil(suite.settings.SetAPIKey(context.Background(), "sk-test"))
	suite.completer.delay = 2 * time.Millisecond

	done := make(chan error)
	for i := range 3 {
		go func() {
			_, err := suite.service.SetBudget(context.Background(), budget(int64(3000+i), 2000))
			done <- err
		}()
	}

	for range 3 {
		suite.Require().Nil(<-done)
	}

	suite.Assert().Equal(6, suite.completer.calls)
	suite.Assert().Equal(1, suite.completer.maxInFlight)
}

func (suite *TestSuiteStandard) assertBudget(b models.Budget, income, expenses int64) {
	suite.Assert().True(b.Income.Equal(decimal.NewFromInt(income)), "income is %s", b.Income)
	suite.Assert().True(b.Expenses.Equal(decimal.NewFromInt(expenses)), "expenses is %s", b.Expenses)
}
