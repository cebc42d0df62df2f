package planner_test

import (
	"context"
	"time"

	"github.com/fingoal/backend/internal/advisor"
	"github.com/fingoal/backend/internal/models"
	"github.com/fingoal/backend/internal/planner"
	"github.com/fingoal/backend/internal/types"
	"github.com/shopspring/decimal"
)

// failingStore reads from the wrapped store, but fails every write that
// spans multiple keys.
type failingStore struct {
	*models.Store
}

func (failingStore) SetAll(context.Context, map[string][]byte) error {
	return models.ErrGeneral
}

// failingService returns a service on the suite's database that cannot
// write goals, budget and activities.
func (suite *TestSuiteStandard) failingService() *planner.Service {
	clock := func() time.Time { return now }

	s := planner.New(failingStore{suite.store}, advisor.New(suite.completer, clock), suite.settings, clock)
	suite.Require().Nil(s.Load(context.Background()))

	return s
}

// assertUnchanged verifies that both the service and the store still hold
// exactly the given goal and one activity.
func (suite *TestSuiteStandard) assertUnchanged(s *planner.Service, goal models.Goal) {
	for _, svc := range []*planner.Service{s, suite.newService()} {
		goals := svc.Goals()
		suite.Require().Len(goals, 1)
		suite.Assert().Equal(goal.ID, goals[0].ID)
		suite.Assert().True(goal.CurrentAmount.Equal(goals[0].CurrentAmount))
		suite.Assert().Equal(goal.Steps, goals[0].Steps)
		suite.Assert().Len(svc.Activities(), 1)
		suite.Assert().True(svc.Budget().Income.IsZero())
	}
}

func (suite *TestSuiteStandard) TestFailedWritesKeepGoalsAndActivitiesTogether() {
	ctx := context.Background()
	goal := suite.createGoal("Emergency Fund", models.CategoryEmergency, 5000, 3250)
	s := suite.failingService()

	_, err := s.CreateGoal(ctx, planner.GoalInput{
		Name:         "Vacation",
		TargetAmount: amount(2000),
		Deadline:     types.NewDate(2027, 6, 1),
		Category:     models.CategoryVacation,
	})
	suite.Assert().ErrorIs(err, models.ErrGeneral)
	suite.assertUnchanged(s, goal)

	_, err = s.UpdateGoalAmount(ctx, goal.ID, decimal.NewFromInt(4000))
	suite.Assert().ErrorIs(err, models.ErrGeneral)
	suite.assertUnchanged(s, goal)

	_, err = s.Contribute(ctx, goal.ID, decimal.NewFromInt(100))
	suite.Assert().ErrorIs(err, models.ErrGeneral)
	suite.assertUnchanged(s, goal)

	err = s.DeleteGoal(ctx, goal.ID)
	suite.Assert().ErrorIs(err, models.ErrGeneral)
	suite.assertUnchanged(s, goal)
}

func (suite *TestSuiteStandard) TestFailedBudgetWriteKeepsState() {
	ctx := context.Background()
	goal := suite.createGoal("Emergency Fund", models.CategoryEmergency, 5000, 3250)
	suite.Require().Nil(suite.settings.SetAPIKey(ctx, "sk-test"))
	s := suite.failingService()

	regenerated, err := s.SetBudget(ctx, models.Budget{Income: decimal.NewFromInt(3000), Expenses: decimal.NewFromInt(2000)})
	suite.Assert().ErrorIs(err, models.ErrGeneral)
	suite.Assert().Equal(0, regenerated)
	suite.Assert().Equal(1, suite.completer.calls, "the plan is generated before the write")
	suite.assertUnchanged(s, goal)
}
