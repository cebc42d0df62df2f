// Package finance implements the calculators behind the education pages
// and the dashboard.
package finance

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultCompoundingPeriods is the number of compounding periods per year
// used when the caller does not specify one.
const DefaultCompoundingPeriods = 12

// DefaultWithdrawalRate is the classic 4% safe withdrawal rate.
const DefaultWithdrawalRate = 0.04

// MaxPayoffMonths is the longest payoff period that is calculated, 1000 years.
const MaxPayoffMonths = 12000

var (
	ErrInvalidArgument     = errors.New("invalid argument")
	ErrPaymentInsufficient = fmt.Errorf("%w: the monthly payment does not cover the interest, the debt can never be paid off", ErrInvalidArgument)
	ErrResultOutOfRange    = fmt.Errorf("%w: the result is too large to be calculated", ErrInvalidArgument)
)

// CompoundInterest returns the value of principal after years with the annual
// rate compounded periods times per year.
func CompoundInterest(principal, annualRate, years float64, periods int) (float64, error) {
	if err := finite(principal, annualRate, years); err != nil {
		return 0, err
	}

	if periods <= 0 {
		return 0, fmt.Errorf("%w: compounding periods must be positive, got %d", ErrInvalidArgument, periods)
	}

	p := float64(periods)
	return result(principal * math.Pow(1+annualRate/p, p*years))
}

// FireNumber returns the portfolio size at which withdrawing withdrawalRate
// per year covers annualExpenses.
func FireNumber(annualExpenses, withdrawalRate float64) (float64, error) {
	if err := finite(annualExpenses, withdrawalRate); err != nil {
		return 0, err
	}

	if withdrawalRate <= 0 {
		return 0, fmt.Errorf("%w: withdrawal rate must be positive, got %v", ErrInvalidArgument, withdrawalRate)
	}

	return result(annualExpenses / withdrawalRate)
}

// DebtPayoffMonths returns the number of whole months needed to pay off
// balance at annualRatePercent with a fixed monthlyPayment.
//
// The amortization formula has no solution when the payment does not exceed
// the interest of the first month, ErrPaymentInsufficient is returned then.
func DebtPayoffMonths(balance, annualRatePercent, monthlyPayment float64) (int, error) {
	if err := finite(balance, annualRatePercent, monthlyPayment); err != nil {
		return 0, err
	}

	if balance < 0 {
		return 0, fmt.Errorf("%w: balance must not be negative", ErrInvalidArgument)
	}

	if monthlyPayment <= 0 {
		return 0, fmt.Errorf("%w: monthly payment must be positive", ErrInvalidArgument)
	}

	if annualRatePercent < 0 {
		return 0, fmt.Errorf("%w: interest rate must not be negative", ErrInvalidArgument)
	}

	if balance == 0 {
		return 0, nil
	}

	r := annualRatePercent / 12 / 100
	if r == 0 {
		return months(balance / monthlyPayment)
	}

	if monthlyPayment <= balance*r {
		return 0, ErrPaymentInsufficient
	}

	return months(-math.Log(1-(balance*r)/monthlyPayment) / math.Log(1+r))
}

// finite returns ErrInvalidArgument if any of the values is NaN or infinite.
func finite(values ...float64) error {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %v is not a finite number", ErrInvalidArgument, v)
		}
	}

	return nil
}

// result rejects calculations that overflowed.
func result(v float64) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrResultOutOfRange
	}

	return v, nil
}

// months rounds m up to whole months.
func months(m float64) (int, error) {
	if math.IsNaN(m) || m > MaxPayoffMonths {
		return 0, ErrResultOutOfRange
	}

	return int(math.Ceil(m)), nil
}

var printer = message.NewPrinter(language.AmericanEnglish)

// FormatCurrency formats an amount as US dollars, e.g. "$1,234.50".
func FormatCurrency(amount decimal.Decimal) string {
	f, _ := amount.Abs().Round(2).Float64()
	s := printer.Sprintf("$%.2f", f)

	if amount.Round(2).IsNegative() {
		return "-" + s
	}

	return s
}
