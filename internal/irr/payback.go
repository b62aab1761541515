package irr

import (
	"github.com/fincalc/fincalc/internal/domain"
	"github.com/shopspring/decimal"
)

// PaybackPeriod finds the first period at which the running cumulative
// cash flow turns non-negative, linearly interpolated between periods to
// fractional precision. Returns nil when the investment never breaks even
// within the given horizon.
func PaybackPeriod(flows []domain.CashFlow) *decimal.Decimal {
	sorted := sortByPeriod(flows)
	cumulative := decimal.Zero
	for i, cf := range sorted {
		previous := cumulative
		cumulative = cumulative.Add(cf.Amount)
		if cumulative.GreaterThanOrEqual(decimal.Zero) {
			if i == 0 || previous.GreaterThanOrEqual(decimal.Zero) {
				p := decimal.NewFromInt(int64(cf.Period))
				return &p
			}
			prevPeriod := decimal.NewFromInt(int64(sorted[i-1].Period))
			span := decimal.NewFromInt(int64(cf.Period)).Sub(prevPeriod)
			fraction := previous.Neg().Div(cf.Amount)
			p := prevPeriod.Add(fraction.Mul(span))
			return &p
		}
	}
	return nil
}
