package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/fingoal/backend/internal/controllers/v1"
	"github.com/fingoal/backend/internal/models"
	"github.com/fingoal/backend/internal/planner"
	"github.com/fingoal/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestActivitiesEmpty() {
	recorder := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/activities", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	assert.JSONEq(suite.T(), `{"data": [], "error": null}`, recorder.Body.String())
}

func (suite *TestSuiteStandard) TestActivities() {
	for i := 0; i < 7; i++ {
		goal := emergencyFund()
		goal["name"] = fmt.Sprintf("Goal %d", i)
		suite.createTestGoal(suite.T(), goal)
	}

	recorder := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/activities", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var activities v1.ActivityListResponse
	test.DecodeResponse(suite.T(), &recorder, &activities)
	require.Len(suite.T(), activities.Data, 7)
	assert.Equal(suite.T(), "Created Goal 6 goal", activities.Data[0].Description, "The newest activity must be first")
	assert.Equal(suite.T(), models.ActivityGoalCreated, activities.Data[0].Type)
	require.NotNil(suite.T(), activities.Data[0].Amount)
	assert.True(suite.T(), decimal.NewFromInt(5000).Equal(*activities.Data[0].Amount))

	recorder = suite.request(suite.T(), http.MethodGet, "http://example.com/v1/activities?recent=true", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	test.DecodeResponse(suite.T(), &recorder, &activities)
	assert.Len(suite.T(), activities.Data, planner.RecentActivityCount)
}

func (suite *TestSuiteStandard) TestActivitiesBadQuery() {
	recorder := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/activities?recent=maybe", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestSummary() {
	suite.createTestGoal(suite.T(), emergencyFund())

	completed := emergencyFund()
	completed["name"] = "Done"
	completed["currentAmount"] = 6000
	suite.createTestGoal(suite.T(), completed)

	recorder := suite.request(suite.T(), http.MethodPut, "http://example.com/v1/budget", map[string]any{"income": 3000, "expenses": 2000})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	recorder = suite.request(suite.T(), http.MethodGet, "http://example.com/v1/summary", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var summary v1.SummaryResponse
	test.DecodeResponse(suite.T(), &recorder, &summary)
	assert.True(suite.T(), decimal.NewFromInt(9200).Equal(summary.Data.TotalSaved))
	assert.Equal(suite.T(), 1, summary.Data.ActiveGoals)
	assert.Equal(suite.T(), 1, summary.Data.CompletedGoals)
	assert.Equal(suite.T(), 2, summary.Data.GoalCount)
	assert.True(suite.T(), decimal.NewFromFloat(33.3).Equal(summary.Data.MonthlyProgress))
}
