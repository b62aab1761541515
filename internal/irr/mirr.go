package irr

import (
	"math"

	"github.com/fincalc/fincalc/internal/domain"
	"github.com/shopspring/decimal"
)

// MIRR computes the modified internal rate of return as a percent.
// Negative flows are discounted to period 0 at the finance rate; positive
// flows are compounded to the final period at the reinvestment rate. The
// result is single-valued by construction, which is its advantage over
// IRR for series with multiple sign reversals.
//
// Returns nil when the horizon is zero or the present value of negative
// flows is zero, both of which leave MIRR undefined.
func (e *Engine) MIRR(flows []domain.CashFlow, financeRatePct, reinvestmentRatePct decimal.Decimal) *decimal.Decimal {
	sorted := sortByPeriod(flows)
	if len(sorted) == 0 {
		return nil
	}
	n := sorted[len(sorted)-1].Period
	if n == 0 {
		return nil
	}

	financeRate := financeRatePct.Div(hundred)
	reinvestmentRate := reinvestmentRatePct.Div(hundred)

	pvNegative := decimal.Zero
	fvPositive := decimal.Zero
	for _, cf := range sorted {
		switch {
		case cf.Amount.IsNegative():
			pvNegative = pvNegative.Add(cf.Amount.Neg().Mul(pow1p(financeRate, -cf.Period)))
		case cf.Amount.IsPositive():
			fvPositive = fvPositive.Add(cf.Amount.Mul(pow1p(reinvestmentRate, n-cf.Period)))
		}
	}
	if pvNegative.IsZero() {
		return nil
	}

	// The n-th root needs a fractional exponent, which shopspring's Pow
	// truncates, so this one step goes through float64.
	ratio := fvPositive.Div(pvNegative).InexactFloat64()
	mirr := math.Pow(ratio, 1/float64(n)) - 1
	pct := decimal.NewFromFloat(mirr).Mul(hundred)
	return &pct
}
