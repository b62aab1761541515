package amort

import (
	"github.com/shopspring/decimal"
)

var (
	twelve  = decimal.NewFromInt(12)
	hundred = decimal.NewFromInt(100)
	one     = decimal.NewFromInt(1)
)

// monthlyRate converts an annual percent rate to a monthly fraction.
func monthlyRate(annualRatePct decimal.Decimal) decimal.Decimal {
	return annualRatePct.Div(hundred).Div(twelve)
}

// powInt computes base^n for n >= 0.
func powInt(base decimal.Decimal, n int) decimal.Decimal {
	result := one
	for i := 0; i < n; i++ {
		result = result.Mul(base)
	}
	return result
}

// MonthlyPayment computes the level payment for a fully amortizing loan:
// P*r(1+r)^n / ((1+r)^n - 1). A zero rate degenerates to principal/n, and
// out-of-range inputs (non-positive principal or term) yield zero rather
// than an error, so the function is safe to call on a partially filled
// form.
func MonthlyPayment(principal, annualRatePct decimal.Decimal, termYears int) decimal.Decimal {
	if principal.LessThanOrEqual(decimal.Zero) || termYears <= 0 {
		return decimal.Zero
	}
	months := termYears * 12
	rate := monthlyRate(annualRatePct)
	if rate.IsZero() {
		return principal.Div(decimal.NewFromInt(int64(months)))
	}
	growth := powInt(one.Add(rate), months)
	return principal.Mul(rate).Mul(growth).Div(growth.Sub(one))
}
