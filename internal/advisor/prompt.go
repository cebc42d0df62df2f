package advisor

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/fingoal/backend/internal/finance"
	"github.com/fingoal/backend/internal/models"
	"github.com/shopspring/decimal"
)

const stepSystemPrompt = "You are a financial advisor who helps Gen Z individuals reach their financial goals. " +
	"Give practical, actionable steps that are specific to their situation."

// UserContext is the financial situation of the user that personalizes
// the generated steps.
type UserContext struct {
	MonthlyIncome   decimal.Decimal
	MonthlyExpenses decimal.Decimal
	MonthlySavings  decimal.Decimal
	SavingsRate     decimal.Decimal // percent of the income
	TotalSaved      decimal.Decimal // across all goals
	ExistingGoals   int
	ActiveGoals     int // goals that have not reached their target
}

// NewUserContext derives the user context from the budget and all goals.
func NewUserContext(budget models.Budget, goals []models.Goal) UserContext {
	uc := UserContext{
		MonthlyIncome:   budget.Income,
		MonthlyExpenses: budget.Expenses,
		MonthlySavings:  budget.Savings(),
		SavingsRate:     budget.SavingsRate(),
		TotalSaved:      decimal.Zero,
		ExistingGoals:   len(goals),
	}

	for _, g := range goals {
		uc.TotalSaved = uc.TotalSaved.Add(g.CurrentAmount)
		if !g.Completed() {
			uc.ActiveGoals++
		}
	}

	return uc
}

// MonthsToGoal returns the number of started 30 day periods until the
// deadline of the goal.
func MonthsToGoal(goal models.Goal, now time.Time) int {
	return int(math.Ceil(goal.Deadline.Until(now).Hours() / (24 * 30)))
}

// MonthlyAmountNeeded is the amount to save per month to reach the goal on
// time, zero if the deadline has passed.
func MonthlyAmountNeeded(goal models.Goal, now time.Time) decimal.Decimal {
	months := MonthsToGoal(goal, now)
	if months <= 0 {
		return decimal.Zero
	}

	return goal.TargetAmount.Sub(goal.CurrentAmount).Div(decimal.NewFromInt(int64(months)))
}

// BuildPrompt returns the instruction asking for an action plan for goal.
func BuildPrompt(goal models.Goal, uc UserContext, now time.Time) string {
	var b strings.Builder

	b.WriteString("Create a personalized step-by-step action plan for a Gen Z individual to reach their financial goal.\n\n")

	b.WriteString("GOAL DETAILS:\n")
	fmt.Fprintf(&b, "- Goal Name: %s\n", goal.Name)
	fmt.Fprintf(&b, "- Target Amount: %s\n", finance.FormatCurrency(goal.TargetAmount))
	fmt.Fprintf(&b, "- Current Amount: %s\n", finance.FormatCurrency(goal.CurrentAmount))
	fmt.Fprintf(&b, "- Deadline: %s\n", goal.Deadline)
	fmt.Fprintf(&b, "- Category: %s\n", goal.Category)
	fmt.Fprintf(&b, "- Months to Goal: %d\n", MonthsToGoal(goal, now))
	fmt.Fprintf(&b, "- Monthly Amount Needed: %s\n\n", finance.FormatCurrency(MonthlyAmountNeeded(goal, now)))

	b.WriteString("USER'S FINANCIAL SITUATION:\n")
	fmt.Fprintf(&b, "- Monthly Income: %s\n", finance.FormatCurrency(uc.MonthlyIncome))
	fmt.Fprintf(&b, "- Monthly Expenses: %s\n", finance.FormatCurrency(uc.MonthlyExpenses))
	fmt.Fprintf(&b, "- Monthly Savings: %s\n", finance.FormatCurrency(uc.MonthlySavings))
	fmt.Fprintf(&b, "- Savings Rate: %s%%\n", uc.SavingsRate.StringFixed(1))
	fmt.Fprintf(&b, "- Total Saved Across All Goals: %s\n", finance.FormatCurrency(uc.TotalSaved))
	fmt.Fprintf(&b, "- Number of Active Goals: %d\n\n", uc.ActiveGoals)

	b.WriteString("Please provide 5-7 specific, actionable steps that are:\n")
	b.WriteString("1. Tailored to their current financial situation\n")
	b.WriteString("2. Realistic given their income and expenses\n")
	b.WriteString("3. Time-bound and measurable\n")
	b.WriteString("4. Appropriate for Gen Z (ages 18-27)\n")
	b.WriteString("5. Considerate of their existing savings capacity\n\n")
	b.WriteString("Format your response as a numbered list with each step on a new line. ")
	b.WriteString("Focus on practical actions they can take immediately and over time to reach this goal.")

	return b.String()
}
