package planner_test

import (
	"context"
	"testing"

	"github.com/fingoal/backend/internal/models"
	"github.com/fingoal/backend/internal/planner"
	"github.com/fingoal/backend/internal/steps"
	"github.com/fingoal/backend/internal/types"
	"github.com/fingoal/backend/internal/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func amount(v int64) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.NewFromInt(v))
}

func (suite *TestSuiteStandard) createGoal(name string, category models.Category, target, current int64) models.Goal {
	goal, err := suite.service.CreateGoal(context.Background(), planner.GoalInput{
		Name:          name,
		TargetAmount:  amount(target),
		CurrentAmount: amount(current),
		Deadline:      types.NewDate(2027, 12, 31),
		Category:      category,
	})
	suite.Require().Nil(err)

	return goal
}

func (suite *TestSuiteStandard) TestCreateGoalWithoutKeyUsesTemplate() {
	goal := suite.createGoal("Emergency Fund", models.CategoryEmergency, 5000, 3250)

	suite.Assert().Equal(steps.For(models.CategoryEmergency), goal.Steps)
	suite.Assert().True(goal.TargetAmount.Equal(decimal.NewFromInt(5000)))
	suite.Assert().True(goal.CurrentAmount.Equal(decimal.NewFromInt(3250)))
	suite.Assert().Equal(now, goal.CreatedAt)
	suite.Assert().False(goal.ID.IsNil())
	suite.Assert().Equal(0, suite.completer.calls)

	activities := suite.service.Activities()
	suite.Require().Len(activities, 1)
	suite.Assert().Equal(models.ActivityGoalCreated, activities[0].Type)
	suite.Assert().Equal("New Goal Created", activities[0].Title)
	suite.Assert().Equal("Created Emergency Fund goal", activities[0].Description)
	suite.Assert().True(activities[0].Amount.Equal(decimal.NewFromInt(5000)))
}

func (suite *TestSuiteStandard) TestCreateGoalWithKeyGeneratesSteps() {
	suite.Require().Nil(suite.settings.SetAPIKey(context.Background(), "sk-test"))

	goal := suite.createGoal("Vacation", models.CategoryVacation, 2000, 0)

	suite.Assert().Equal([]string{"Generated step", "Another step"}, goal.Steps)
	suite.Assert().Equal(1, suite.completer.calls)
}

func (suite *TestSuiteStandard) TestCreateGoalPersists() {
	goal := suite.createGoal("Car", models.CategoryCar, 8000, 100)

	reloaded := suite.newService()
	suite.Require().Len(reloaded.Goals(), 1)
	suite.Assert().Equal(goal.ID, reloaded.Goals()[0].ID)
	suite.Assert().Equal(goal.Steps, reloaded.Goals()[0].Steps)
	suite.Assert().True(goal.Deadline.Equal(reloaded.Goals()[0].Deadline))
	suite.Assert().Len(reloaded.Activities(), 1)
}

func (suite *TestSuiteStandard) TestCreateGoalDefaults() {
	goal, err := suite.service.CreateGoal(context.Background(), planner.GoalInput{
		Name:         "  Something  ",
		TargetAmount: amount(100),
		Deadline:     types.NewDate(2027, 1, 1),
	})
	suite.Require().Nil(err)

	suite.Assert().Equal("Something", goal.Name)
	suite.Assert().Equal(models.CategoryOther, goal.Category)
	suite.Assert().True(goal.CurrentAmount.IsZero())
}

func (suite *TestSuiteStandard) TestCreateGoalUnknownCategory() {
	goal := suite.createGoal("Wedding", "wedding", 20000, 0)

	suite.Assert().Equal(models.Category("wedding"), goal.Category)
	suite.Assert().Equal(steps.For(models.CategoryOther), goal.Steps)
}

func (suite *TestSuiteStandard) TestCreateGoalValidation() {
	valid := planner.GoalInput{
		Name:          "Valid",
		TargetAmount:  amount(100),
		CurrentAmount: amount(0),
		Deadline:      types.NewDate(2027, 1, 1),
	}

	tests := []struct {
		name   string
		modify func(*planner.GoalInput)
	}{
		{"Blank name", func(in *planner.GoalInput) { in.Name = "   " }},
		{"Missing target", func(in *planner.GoalInput) { in.TargetAmount = decimal.NullDecimal{} }},
		{"Zero target", func(in *planner.GoalInput) { in.TargetAmount = amount(0) }},
		{"Negative target", func(in *planner.GoalInput) { in.TargetAmount = amount(-5) }},
		{"Negative current", func(in *planner.GoalInput) { in.CurrentAmount = amount(-1) }},
		{"Missing deadline", func(in *planner.GoalInput) { in.Deadline = types.Date{} }},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			in := valid
			tt.modify(&in)

			_, err := suite.service.CreateGoal(context.Background(), in)
			assert.ErrorIs(t, err, models.ErrValidation)
		})
	}

	suite.Assert().Len(suite.service.Goals(), 0)
	suite.Assert().Len(suite.service.Activities(), 0)
}

func (suite *TestSuiteStandard) TestUpdateGoalAmountAdded() {
	goal := suite.createGoal("Emergency Fund", models.CategoryEmergency, 5000, 3250)

	updated, err := suite.service.UpdateGoalAmount(context.Background(), goal.ID, decimal.NewFromInt(3500))
	suite.Require().Nil(err)
	suite.Assert().True(updated.CurrentAmount.Equal(decimal.NewFromInt(3500)))

	activities := suite.service.Activities()
	suite.Require().Len(activities, 2)
	suite.Assert().Equal(models.ActivityGoalUpdate, activities[0].Type)
	suite.Assert().Equal("Goal Updated", activities[0].Title)
	suite.Assert().Contains(activities[0].Description, "Added $250.00")
	suite.Assert().Equal("Added $250.00 to Emergency Fund", activities[0].Description)
	suite.Assert().True(activities[0].Amount.Equal(decimal.NewFromInt(250)))
}

func (suite *TestSuiteStandard) TestUpdateGoalAmountRemoved() {
	goal := suite.createGoal("Emergency Fund", models.CategoryEmergency, 5000, 3250)

	_, err := suite.service.UpdateGoalAmount(context.Background(), goal.ID, decimal.NewFromInt(1000))
	suite.Require().Nil(err)

	activity := suite.service.Activities()[0]
	suite.Assert().Equal("Removed $2,250.00 from Emergency Fund", activity.Description)
	suite.Assert().True(activity.Amount.Equal(decimal.NewFromInt(2250)))
}

func (suite *TestSuiteStandard) TestUpdateGoalAmountErrors() {
	goal := suite.createGoal("Emergency Fund", models.CategoryEmergency, 5000, 3250)

	_, err := suite.service.UpdateGoalAmount(context.Background(), uuid.New(), decimal.NewFromInt(1))
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)

	_, err = suite.service.UpdateGoalAmount(context.Background(), goal.ID, decimal.NewFromInt(-1))
	suite.Assert().ErrorIs(err, models.ErrValidation)

	suite.Assert().Len(suite.service.Activities(), 1)
}

func (suite *TestSuiteStandard) TestContribute() {
	goal := suite.createGoal("Laptop", models.CategoryOther, 1500, 200)

	updated, err := suite.service.Contribute(context.Background(), goal.ID, decimal.RequireFromString("49.50"))
	suite.Require().Nil(err)
	suite.Assert().True(updated.CurrentAmount.Equal(decimal.RequireFromString("249.50")))
	suite.Assert().Equal("Added $49.50 to Laptop", suite.service.Activities()[0].Description)

	_, err = suite.service.Contribute(context.Background(), goal.ID, decimal.Zero)
	suite.Assert().ErrorIs(err, models.ErrValidation)

	_, err = suite.service.Contribute(context.Background(), uuid.New(), decimal.NewFromInt(1))
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestDeleteGoal() {
	goal := suite.createGoal("Car", models.CategoryCar, 8000, 0)
	suite.createGoal("House", models.CategoryHouse, 50000, 0)

	suite.Require().Nil(suite.service.DeleteGoal(context.Background(), goal.ID))

	goals := suite.service.Goals()
	suite.Require().Len(goals, 1)
	suite.Assert().Equal("House", goals[0].Name)

	activity := suite.service.Activities()[0]
	suite.Assert().Equal(models.ActivityGoalDeleted, activity.Type)
	suite.Assert().Equal("Goal Deleted", activity.Title)
	suite.Assert().Equal("Deleted Car goal", activity.Description)
	suite.Assert().Nil(activity.Amount)

	_, err := suite.service.Goal(goal.ID)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestDeleteGoalNotFound() {
	suite.createGoal("Car", models.CategoryCar, 8000, 0)
	goals := suite.service.Goals()
	activities := suite.service.Activities()

	err := suite.service.DeleteGoal(context.Background(), uuid.New())
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
	suite.Assert().Contains(err.Error(), "there is no goal with ID")

	suite.Assert().Equal(goals, suite.service.Goals())
	suite.Assert().Equal(activities, suite.service.Activities())

	reloaded := suite.newService()
	suite.Assert().Len(reloaded.Goals(), 1)
	suite.Assert().Len(reloaded.Activities(), 1)
}

func (suite *TestSuiteStandard) TestRegenerateSteps() {
	goal := suite.createGoal("Car", models.CategoryCar, 8000, 0)
	suite.Require().Equal(steps.For(models.CategoryCar), goal.Steps)

	suite.Require().Nil(suite.settings.SetAPIKey(context.Background(), "sk-test"))

	updated, err := suite.service.RegenerateSteps(context.Background(), goal.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal([]string{"Generated step", "Another step"}, updated.Steps)

	_, err = suite.service.RegenerateSteps(context.Background(), uuid.New())
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestGoalView() {
	goal := suite.createGoal("Gadget", models.CategoryOther, 1000, 1250)
	view := suite.service.View(goal)

	suite.Assert().True(view.Progress.Equal(decimal.NewFromInt(125)))
	suite.Assert().True(view.DisplayProgress.Equal(decimal.NewFromInt(100)))
	suite.Assert().True(view.Completed)
	// 2026-10-18 10:00 until 2027-12-31 is 438.58 days
	suite.Assert().Equal(439, view.DaysUntilDeadline)
	suite.Assert().True(view.MonthlyTarget.Equal(decimal.RequireFromString("-16.67")), view.MonthlyTarget.String())
}

func (suite *TestSuiteStandard) TestDatabaseClosed() {
	goal := suite.createGoal("Car", models.CategoryCar, 8000, 0)
	suite.CloseDB()

	_, err := suite.service.UpdateGoalAmount(context.Background(), goal.ID, decimal.NewFromInt(10))
	suite.Assert().ErrorIs(err, models.ErrGeneral)

	suite.Assert().True(suite.service.Goals()[0].CurrentAmount.IsZero(), "failed writes must not change the goal")
}
