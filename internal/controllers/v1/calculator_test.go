package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/fingoal/backend/internal/controllers/v1"
	"github.com/fingoal/backend/internal/finance"
	"github.com/fingoal/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestCompoundInterest() {
	recorder := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/calculators/compound-interest?principal=1000&rate=0.05&years=10", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.CompoundInterestResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.NotNil(suite.T(), response.Data)
	assert.True(suite.T(), decimal.RequireFromString("1647.01").Equal(response.Data.FutureValue), response.Data.FutureValue.String())
	assert.True(suite.T(), decimal.RequireFromString("647.01").Equal(response.Data.Interest), response.Data.Interest.String())

	recorder = suite.request(suite.T(), http.MethodGet, "http://example.com/v1/calculators/compound-interest?principal=1000&rate=0.12&years=1&periods=1", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.True(suite.T(), decimal.NewFromInt(1120).Equal(response.Data.FutureValue), response.Data.FutureValue.String())
}

func (suite *TestSuiteStandard) TestFireNumber() {
	recorder := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/calculators/fire-number?annualExpenses=40000", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.FireNumberResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.NotNil(suite.T(), response.Data)
	assert.True(suite.T(), decimal.NewFromInt(1000000).Equal(response.Data.FireNumber))

	recorder = suite.request(suite.T(), http.MethodGet, "http://example.com/v1/calculators/fire-number?annualExpenses=40000&withdrawalRate=0.05", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.True(suite.T(), decimal.NewFromInt(800000).Equal(response.Data.FireNumber))
}

func (suite *TestSuiteStandard) TestDebtPayoff() {
	recorder := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/calculators/debt-payoff?balance=5000&rate=18&payment=200", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.DebtPayoffResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), 32, response.Data.Months)
}

func (suite *TestSuiteStandard) TestDebtPayoffInsufficientPayment() {
	recorder := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/calculators/debt-payoff?balance=5000&rate=18&payment=50", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
	assert.Equal(suite.T(), finance.ErrPaymentInsufficient.Error(), test.DecodeError(suite.T(), recorder.Body.Bytes()))
}

func (suite *TestSuiteStandard) TestCalculatorsBadQuery() {
	tests := []struct {
		name string
		url  string
	}{
		{"compound interest missing principal", "http://example.com/v1/calculators/compound-interest?rate=0.05&years=10"},
		{"compound interest unparseable rate", "http://example.com/v1/calculators/compound-interest?principal=1000&rate=five&years=10"},
		{"compound interest zero periods", "http://example.com/v1/calculators/compound-interest?principal=1000&rate=0.05&years=10&periods=0"},
		{"fire number missing expenses", "http://example.com/v1/calculators/fire-number"},
		{"fire number zero withdrawal rate", "http://example.com/v1/calculators/fire-number?annualExpenses=40000&withdrawalRate=0"},
		{"debt payoff missing payment", "http://example.com/v1/calculators/debt-payoff?balance=5000&rate=18"},
		{"debt payoff negative balance", "http://example.com/v1/calculators/debt-payoff?balance=-5&rate=18&payment=200"},
		{"compound interest NaN principal", "http://example.com/v1/calculators/compound-interest?principal=NaN&rate=0.05&years=10"},
		{"compound interest overflow", "http://example.com/v1/calculators/compound-interest?principal=1000&rate=1e6&years=100"},
		{"fire number infinite expenses", "http://example.com/v1/calculators/fire-number?annualExpenses=Inf"},
		{"fire number overflow", "http://example.com/v1/calculators/fire-number?annualExpenses=1e308&withdrawalRate=1e-10"},
		{"debt payoff NaN balance", "http://example.com/v1/calculators/debt-payoff?balance=NaN&rate=18&payment=200"},
		{"debt payoff too long", "http://example.com/v1/calculators/debt-payoff?balance=1e9&rate=0&payment=1"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := suite.request(t, http.MethodGet, tt.url, "")
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
			assert.NotEmpty(t, test.DecodeError(t, recorder.Body.Bytes()))
		})
	}
}
