package planner_test

import (
	"context"
	"fmt"

	"github.com/fingoal/backend/internal/models"
	"github.com/fingoal/backend/internal/planner"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestActivityLogIsBounded() {
	goal := suite.createGoal("Car", models.CategoryCar, 100000, 0)

	for i := 1; i < planner.MaxActivities; i++ {
		_, err := suite.service.UpdateGoalAmount(context.Background(), goal.ID, decimal.NewFromInt(int64(i)))
		suite.Require().Nil(err)
	}

	activities := suite.service.Activities()
	suite.Require().Len(activities, planner.MaxActivities)
	suite.Assert().Equal(models.ActivityGoalCreated, activities[planner.MaxActivities-1].Type)

	// The 21st entry drops the creation of the goal
	_, err := suite.service.UpdateGoalAmount(context.Background(), goal.ID, decimal.NewFromInt(1000))
	suite.Require().Nil(err)

	activities = suite.service.Activities()
	suite.Require().Len(activities, planner.MaxActivities)
	suite.Assert().Equal("Added $981.00 to Car", activities[0].Description)
	suite.Assert().Equal("Added $1.00 to Car", activities[planner.MaxActivities-1].Description)

	for _, a := range activities {
		suite.Assert().NotEqual(models.ActivityGoalCreated, a.Type)
	}

	suite.Assert().Len(suite.newService().Activities(), planner.MaxActivities)
}

func (suite *TestSuiteStandard) TestRecentActivities() {
	raw := make([]models.Activity, 0, 8)
	for i := range 8 {
		raw = append(raw, models.Activity{
			Type:        models.ActivityGoalUpdate,
			Title:       "Goal Updated",
			Description: fmt.Sprintf("entry %d", i),
			// Stored out of order on purpose
			Timestamp: now.AddDate(0, 0, (i*5)%8),
		})
	}
	suite.Require().Nil(models.Save(context.Background(), suite.store, models.KeyActivities, raw))

	recent := suite.newService().RecentActivities()
	suite.Require().Len(recent, planner.RecentActivityCount)

	for i := 1; i < len(recent); i++ {
		suite.Assert().True(recent[i-1].Timestamp.After(recent[i].Timestamp), "activities must be sorted newest first")
	}
	suite.Assert().Equal(now.AddDate(0, 0, 7), recent[0].Timestamp)
}

func (suite *TestSuiteStandard) TestSummary() {
	suite.createGoal("Car", models.CategoryCar, 1000, 250)
	suite.createGoal("Phone", models.CategoryOther, 500, 500)
	_, err := suite.service.SetBudget(context.Background(), budget(3500, 2800))
	suite.Require().Nil(err)

	summary := suite.service.Summary()
	suite.Assert().True(summary.TotalSaved.Equal(decimal.NewFromInt(750)))
	suite.Assert().Equal(1, summary.ActiveGoals)
	suite.Assert().Equal(1, summary.CompletedGoals)
	suite.Assert().Equal(2, summary.GoalCount)
	suite.Assert().True(summary.MonthlyProgress.Equal(decimal.NewFromInt(20)))
}

func (suite *TestSuiteStandard) TestSeedSampleData() {
	suite.Require().Nil(suite.service.SeedSampleData(context.Background()))

	suite.Assert().Len(suite.service.Goals(), 3)
	suite.assertBudget(suite.service.Budget(), 3500, 2800)
	suite.Assert().Len(suite.service.Activities(), 3)

	for _, g := range suite.service.Goals() {
		suite.Assert().Len(g.Steps, 5)
		suite.Assert().True(g.Deadline.Time().After(now))
	}

	// Seeding twice does not duplicate anything
	suite.Require().Nil(suite.service.SeedSampleData(context.Background()))
	suite.Assert().Len(suite.service.Goals(), 3)
	suite.Assert().Len(suite.newService().Activities(), 3)
}

func (suite *TestSuiteStandard) TestSeedSampleDataKeepsExistingGoals() {
	suite.createGoal("Mine", models.CategoryOther, 100, 0)

	suite.Require().Nil(suite.service.SeedSampleData(context.Background()))

	suite.Assert().Len(suite.service.Goals(), 1)
	suite.Assert().Len(suite.service.Activities(), 1)
	suite.assertBudget(suite.service.Budget(), 3500, 2800)
}
