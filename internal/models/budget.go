package models

import "github.com/shopspring/decimal"

// Budget is the monthly income and expenses of the user.
type Budget struct {
	Income   decimal.Decimal `json:"income" example:"3500"`
	Expenses decimal.Decimal `json:"expenses" example:"2800"`
}

// Savings is what is left each month. It is negative when expenses exceed
// the income.
func (b Budget) Savings() decimal.Decimal {
	return b.Income.Sub(b.Expenses)
}

// SavingsRate returns the savings as percentage of the income, or zero
// without income.
func (b Budget) SavingsRate() decimal.Decimal {
	if b.Income.IsZero() {
		return decimal.Zero
	}

	return b.Savings().Div(b.Income).Mul(hundred)
}
