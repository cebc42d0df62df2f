package v1

import (
	"fmt"
	"net/http"

	"github.com/fingoal/backend/internal/httputil"
	"github.com/fingoal/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

var errBudgetIncomplete = fmt.Errorf("%w: income and expenses must be set", models.ErrValidation)

type BudgetEditable struct {
	Income   decimal.NullDecimal `json:"income" swaggertype:"number" example:"3500"`   // Monthly income
	Expenses decimal.NullDecimal `json:"expenses" swaggertype:"number" example:"2800"` // Monthly expenses
}

type Budget struct {
	Income      decimal.Decimal `json:"income" example:"3500"`      // Monthly income
	Expenses    decimal.Decimal `json:"expenses" example:"2800"`    // Monthly expenses
	Savings     decimal.Decimal `json:"savings" example:"700"`      // Income minus expenses
	SavingsRate decimal.Decimal `json:"savingsRate" example:"20.0"` // Savings in percent of the income
}

type BudgetResponse struct {
	Data  *Budget `json:"data"`                                               // Data for the budget
	Error *string `json:"error" example:"the request body must not be empty"` // The error, if any occurred
	Goals *int    `json:"regeneratedGoals,omitempty" example:"3"`             // Number of goals that received a new action plan
}

func newBudget(b models.Budget) *Budget {
	return &Budget{
		Income:      b.Income,
		Expenses:    b.Expenses,
		Savings:     b.Savings(),
		SavingsRate: b.SavingsRate().Round(1),
	}
}

func (co Controller) RegisterBudgetRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsBudget)
	r.GET("", co.GetBudget)
	r.PUT("", co.UpdateBudget)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budget
// @Success		204
// @Router			/v1/budget [options]
func OptionsBudget(c *gin.Context) {
	httputil.OptionsGetPut(c)
}

// @Summary		Get budget
// @Description	Returns the monthly budget
// @Tags			Budget
// @Produce		json
// @Success		200	{object}	BudgetResponse
// @Router			/v1/budget [get]
func (co Controller) GetBudget(c *gin.Context) {
	c.JSON(http.StatusOK, BudgetResponse{Data: newBudget(co.Planner.Budget())})
}

// @Summary		Update budget
// @Description	Replaces the monthly budget. If an API key is configured, the action plans of all goals are generated again.
// @Tags			Budget
// @Accept			json
// @Produce		json
// @Success		200		{object}	BudgetResponse
// @Failure		400		{object}	BudgetResponse
// @Failure		500		{object}	BudgetResponse
// @Param			budget	body		BudgetEditable	true	"Budget"
// @Router			/v1/budget [put]
func (co Controller) UpdateBudget(c *gin.Context) {
	var data BudgetEditable
	if err := httputil.BindData(c, &data); err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &e})
		return
	}

	if !data.Income.Valid || !data.Expenses.Valid {
		e := errBudgetIncomplete.Error()
		c.JSON(status(errBudgetIncomplete), BudgetResponse{Error: &e})
		return
	}

	budget := models.Budget{Income: data.Income.Decimal, Expenses: data.Expenses.Decimal}
	regenerated, err := co.Planner.SetBudget(c.Request.Context(), budget)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, BudgetResponse{Data: newBudget(budget), Goals: &regenerated})
}
