package v1

import (
	"net/http"

	"github.com/fingoal/backend/internal/finance"
	"github.com/fingoal/backend/internal/httputil"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type CompoundInterestQuery struct {
	Principal *float64 `form:"principal" binding:"required"` // The starting amount
	Rate      *float64 `form:"rate" binding:"required"`      // Annual interest rate as a fraction, e.g. 0.07
	Years     *float64 `form:"years" binding:"required"`     // Number of years
	Periods   int      `form:"periods,default=12"`           // Compounding periods per year
}

type CompoundInterest struct {
	FutureValue decimal.Decimal `json:"futureValue" example:"2009.66"` // Value after the given years
	Interest    decimal.Decimal `json:"interest" example:"1009.66"`    // Interest earned
}

type CompoundInterestResponse struct {
	Data  *CompoundInterest `json:"data"`                                                                                // Result of the calculation
	Error *string           `json:"error" example:"the query string contains unparseable data. Please check the values"` // The error, if any occurred
}

type FireNumberQuery struct {
	AnnualExpenses *float64 `form:"annualExpenses" binding:"required"` // Yearly expenses in retirement
	WithdrawalRate float64  `form:"withdrawalRate,default=0.04"`       // Yearly withdrawal rate as a fraction
}

type FireNumber struct {
	FireNumber decimal.Decimal `json:"fireNumber" example:"1000000"` // Portfolio size needed for financial independence
}

type FireNumberResponse struct {
	Data  *FireNumber `json:"data"`                                                                                // Result of the calculation
	Error *string     `json:"error" example:"the query string contains unparseable data. Please check the values"` // The error, if any occurred
}

type DebtPayoffQuery struct {
	Balance *float64 `form:"balance" binding:"required"` // Outstanding balance
	Rate    *float64 `form:"rate" binding:"required"`    // Annual interest rate in percent, e.g. 18
	Payment *float64 `form:"payment" binding:"required"` // Fixed monthly payment
}

type DebtPayoff struct {
	Months int `json:"months" example:"32"` // Months until the debt is paid off
}

type DebtPayoffResponse struct {
	Data  *DebtPayoff `json:"data"`                                                                                // Result of the calculation
	Error *string     `json:"error" example:"the query string contains unparseable data. Please check the values"` // The error, if any occurred
}

func RegisterCalculatorRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("/compound-interest", OptionsCalculator)
		r.GET("/compound-interest", GetCompoundInterest)
	}
	{
		r.OPTIONS("/fire-number", OptionsCalculator)
		r.GET("/fire-number", GetFireNumber)
	}
	{
		r.OPTIONS("/debt-payoff", OptionsCalculator)
		r.GET("/debt-payoff", GetDebtPayoff)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Calculators
// @Success		204
// @Router			/v1/calculators/compound-interest [options]
// @Router			/v1/calculators/fire-number [options]
// @Router			/v1/calculators/debt-payoff [options]
func OptionsCalculator(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Compound interest
// @Description	Calculates the value of an investment with compound interest
// @Tags			Calculators
// @Produce		json
// @Success		200			{object}	CompoundInterestResponse
// @Failure		400			{object}	CompoundInterestResponse
// @Param			principal	query		number	true	"The starting amount"
// @Param			rate		query		number	true	"Annual interest rate as a fraction, e.g. 0.07"
// @Param			years		query		number	true	"Number of years"
// @Param			periods		query		int		false	"Compounding periods per year, defaults to 12"
// @Router			/v1/calculators/compound-interest [get]
func GetCompoundInterest(c *gin.Context) {
	var q CompoundInterestQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		e := httputil.ErrInvalidQuery.Error()
		c.JSON(http.StatusBadRequest, CompoundInterestResponse{Error: &e})
		return
	}

	value, err := finance.CompoundInterest(*q.Principal, *q.Rate, *q.Years, q.Periods)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CompoundInterestResponse{Error: &e})
		return
	}

	futureValue := decimal.NewFromFloat(value).Round(2)
	c.JSON(http.StatusOK, CompoundInterestResponse{Data: &CompoundInterest{
		FutureValue: futureValue,
		Interest:    futureValue.Sub(decimal.NewFromFloat(*q.Principal)).Round(2),
	}})
}

// @Summary		FIRE number
// @Description	Calculates the portfolio size at which the yearly withdrawals cover the expenses
// @Tags			Calculators
// @Produce		json
// @Success		200				{object}	FireNumberResponse
// @Failure		400				{object}	FireNumberResponse
// @Param			annualExpenses	query		number	true	"Yearly expenses in retirement"
// @Param			withdrawalRate	query		number	false	"Yearly withdrawal rate as a fraction, defaults to 0.04"
// @Router			/v1/calculators/fire-number [get]
func GetFireNumber(c *gin.Context) {
	var q FireNumberQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		e := httputil.ErrInvalidQuery.Error()
		c.JSON(http.StatusBadRequest, FireNumberResponse{Error: &e})
		return
	}

	value, err := finance.FireNumber(*q.AnnualExpenses, q.WithdrawalRate)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FireNumberResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, FireNumberResponse{Data: &FireNumber{
		FireNumber: decimal.NewFromFloat(value).Round(2),
	}})
}

// @Summary		Debt payoff
// @Description	Calculates the number of months needed to pay off a debt with a fixed monthly payment
// @Tags			Calculators
// @Produce		json
// @Success		200		{object}	DebtPayoffResponse
// @Failure		400		{object}	DebtPayoffResponse
// @Param			balance	query		number	true	"Outstanding balance"
// @Param			rate	query		number	true	"Annual interest rate in percent, e.g. 18"
// @Param			payment	query		number	true	"Fixed monthly payment"
// @Router			/v1/calculators/debt-payoff [get]
func GetDebtPayoff(c *gin.Context) {
	var q DebtPayoffQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		e := httputil.ErrInvalidQuery.Error()
		c.JSON(http.StatusBadRequest, DebtPayoffResponse{Error: &e})
		return
	}

	months, err := finance.DebtPayoffMonths(*q.Balance, *q.Rate, *q.Payment)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DebtPayoffResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, DebtPayoffResponse{Data: &DebtPayoff{Months: months}})
}
