// Package steps holds the generic action plans used when no personalized
// plan can be generated for a goal.
package steps

import (
	"github.com/fingoal/backend/internal/models"
)

var templates = map[models.Category][]string{
	models.CategoryEmergency: {
		"Calculate 3-6 months of expenses",
		"Open high-yield savings account",
		"Set up automatic transfers",
		"Save consistently each month",
		"Avoid touching fund except for emergencies",
	},
	models.CategoryDebt: {
		"List all debts with interest rates",
		"Choose debt payoff strategy",
		"Make minimum payments on all debts",
		"Pay extra on target debt",
		"Consider consolidation options",
	},
	models.CategoryHouse: {
		"Research home prices in target area",
		"Save for down payment (10-20%)",
		"Improve credit score",
		"Get pre-approved for mortgage",
		"Save for closing costs",
	},
	models.CategoryCar: {
		"Research car prices and models",
		"Save for down payment",
		"Check credit score",
		"Get pre-approved for auto loan",
		"Budget for insurance and maintenance",
	},
	models.CategoryVacation: {
		"Research destination and costs",
		"Create detailed trip budget",
		"Book flights and accommodation early",
		"Save monthly for trip expenses",
		"Consider travel insurance",
	},
	models.CategoryInvestment: {
		"Define investment goals",
		"Research investment options",
		"Open investment account",
		"Start with diversified portfolio",
		"Review and rebalance regularly",
	},
	models.CategoryEducation: {
		"Research program costs",
		"Apply for financial aid",
		"Consider education tax benefits",
		"Save for tuition and expenses",
		"Explore scholarship opportunities",
	},
	models.CategoryOther: {
		"Define specific goal requirements",
		"Create detailed action plan",
		"Set monthly savings target",
		"Track progress regularly",
		"Adjust plan as needed",
	},
}

// For returns the template steps for the category. Unknown categories get
// the steps of models.CategoryOther.
//
// The returned slice is a copy and can be modified by the caller.
func For(category models.Category) []string {
	t, ok := templates[category]
	if !ok {
		t = templates[models.CategoryOther]
	}

	return append([]string(nil), t...)
}
