package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/fingoal/backend/internal/controllers/v1"
	"github.com/fingoal/backend/internal/models"
	"github.com/fingoal/backend/internal/steps"
	"github.com/fingoal/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestBudgetGetEmpty() {
	recorder := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/budget", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var budget v1.BudgetResponse
	test.DecodeResponse(suite.T(), &recorder, &budget)
	assert.True(suite.T(), budget.Data.Income.IsZero())
	assert.True(suite.T(), budget.Data.SavingsRate.IsZero(), "The savings rate without income must be zero")
}

func (suite *TestSuiteStandard) TestBudgetUpdate() {
	recorder := suite.request(suite.T(), http.MethodPut, "http://example.com/v1/budget", map[string]any{"income": 3500, "expenses": 2800})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var budget v1.BudgetResponse
	test.DecodeResponse(suite.T(), &recorder, &budget)
	assert.True(suite.T(), decimal.NewFromInt(700).Equal(budget.Data.Savings))
	assert.True(suite.T(), decimal.NewFromInt(20).Equal(budget.Data.SavingsRate))
	require.NotNil(suite.T(), budget.Goals)
	assert.Equal(suite.T(), 0, *budget.Goals)

	recorder = suite.request(suite.T(), http.MethodGet, "http://example.com/v1/budget", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	test.DecodeResponse(suite.T(), &recorder, &budget)
	assert.True(suite.T(), decimal.NewFromInt(2800).Equal(budget.Data.Expenses))

	assert.Equal(suite.T(), models.ActivityBudgetUpdate, suite.planner.Activities()[0].Type)
}

func (suite *TestSuiteStandard) TestBudgetUpdateRegeneratesSteps() {
	suite.createTestGoal(suite.T(), emergencyFund())

	suite.setAPIKey()
	suite.completion.reply(http.StatusOK, "1. Budget aware step")

	recorder := suite.request(suite.T(), http.MethodPut, "http://example.com/v1/budget", map[string]any{"income": 4000, "expenses": 3000})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var budget v1.BudgetResponse
	test.DecodeResponse(suite.T(), &recorder, &budget)
	require.NotNil(suite.T(), budget.Goals)
	assert.Equal(suite.T(), 1, *budget.Goals)
	assert.Equal(suite.T(), []string{"Budget aware step"}, suite.planner.Goals()[0].Steps)
}

func (suite *TestSuiteStandard) TestBudgetUpdateFallback() {
	suite.createTestGoal(suite.T(), emergencyFund())

	suite.setAPIKey()
	suite.completion.reply(http.StatusBadGateway, "")

	recorder := suite.request(suite.T(), http.MethodPut, "http://example.com/v1/budget", map[string]any{"income": 4000, "expenses": 3000})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	assert.Equal(suite.T(), steps.For(models.CategoryEmergency), suite.planner.Goals()[0].Steps)
}

func (suite *TestSuiteStandard) TestBudgetUpdateFails() {
	tests := []struct {
		name string
		body any
	}{
		{"empty body", ""},
		{"missing expenses", map[string]any{"income": 100}},
		{"negative income", map[string]any{"income": -100, "expenses": 0}},
		{"negative expenses", map[string]any{"income": 100, "expenses": -1}},
		{"wrong type", `{"income": [], "expenses": 0}`},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := suite.request(t, http.MethodPut, "http://example.com/v1/budget", tt.body)
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
		})
	}

	assert.True(suite.T(), suite.planner.Budget().Income.IsZero())
	assert.Empty(suite.T(), suite.planner.Activities())
}

func (suite *TestSuiteStandard) TestBudgetUpdateDatabaseError() {
	suite.CloseDB()

	recorder := suite.request(suite.T(), http.MethodPut, "http://example.com/v1/budget", map[string]any{"income": 100, "expenses": 50})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)
}
