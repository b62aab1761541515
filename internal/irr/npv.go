package irr

import (
	"sort"

	"github.com/fincalc/fincalc/internal/domain"
	"github.com/shopspring/decimal"
)

var one = decimal.NewFromInt(1)

// pow1p computes (1+rate)^n for an integer n, which may be negative.
// A rate of exactly -100% would divide by zero; its contribution is
// treated as zero so callers stay total.
func pow1p(rate decimal.Decimal, n int) decimal.Decimal {
	base := one.Add(rate)
	if n == 0 {
		return one
	}
	if base.IsZero() {
		return decimal.Zero
	}
	abs := n
	if abs < 0 {
		abs = -abs
	}
	result := one
	for i := 0; i < abs; i++ {
		result = result.Mul(base)
	}
	if n < 0 {
		return one.Div(result)
	}
	return result
}

// sortByPeriod returns a copy of flows ordered by ascending period.
// Input order is never significant to the engine.
func sortByPeriod(flows []domain.CashFlow) []domain.CashFlow {
	sorted := append([]domain.CashFlow(nil), flows...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Period < sorted[j].Period })
	return sorted
}

// NPV computes the net present value of the cash flows at the given rate
// (a fraction, not a percent): sum of amount_t * (1+rate)^(-period_t).
func NPV(flows []domain.CashFlow, rate decimal.Decimal) decimal.Decimal {
	npv := decimal.Zero
	for _, cf := range flows {
		npv = npv.Add(cf.Amount.Mul(pow1p(rate, -cf.Period)))
	}
	return npv
}

// npvDerivative is d(NPV)/d(rate). A period-0 flow contributes nothing.
func npvDerivative(flows []domain.CashFlow, rate decimal.Decimal) decimal.Decimal {
	deriv := decimal.Zero
	for _, cf := range flows {
		if cf.Period == 0 {
			continue
		}
		t := decimal.NewFromInt(int64(cf.Period))
		deriv = deriv.Sub(t.Mul(cf.Amount).Mul(pow1p(rate, -(cf.Period + 1))))
	}
	return deriv
}

// totals splits the flows into total investment (sum of outflow
// magnitudes) and total returns (sum of inflows).
func totals(flows []domain.CashFlow) (investment, returns decimal.Decimal) {
	for _, cf := range flows {
		if cf.Amount.IsNegative() {
			investment = investment.Add(cf.Amount.Neg())
		} else {
			returns = returns.Add(cf.Amount)
		}
	}
	return investment, returns
}

// hasSignChange reports whether the flows contain both an inflow and an
// outflow. Without one, NPV never crosses zero and IRR is undefined.
func hasSignChange(flows []domain.CashFlow) bool {
	hasPositive, hasNegative := false, false
	for _, cf := range flows {
		if cf.Amount.IsPositive() {
			hasPositive = true
		}
		if cf.Amount.IsNegative() {
			hasNegative = true
		}
	}
	return hasPositive && hasNegative
}
