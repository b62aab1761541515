package socialsecurity

import (
	"math"

	"github.com/fincalc/fincalc/internal/domain"
	"github.com/shopspring/decimal"
)

// BreakEvenAge finds the age at which the cumulative nominal benefits of
// claiming late first catch up with claiming early, by a forward scan
// month by month from the early claim age to life expectancy. Returns
// +Inf ("Never") when the later claim never catches up within the
// modeled horizon — a valid outcome for short life expectancies, not an
// error.
func BreakEvenAge(input *domain.SocialSecurityInput, earlyAge, lateAge int) float64 {
	if earlyAge >= lateAge {
		return float64(earlyAge)
	}

	colaFactor := one.Add(input.COLARate.Div(hundred))

	earlyPayment := monthlyBenefitAtClaim(input, earlyAge)
	latePayment := monthlyBenefitAtClaim(input, lateAge)

	cumEarly := decimal.Zero
	cumLate := decimal.Zero

	startMonth := earlyAge * 12
	lateMonth := lateAge * 12
	endMonth := input.LifeExpectancy * 12

	for month := startMonth; month < endMonth; month++ {
		if month > startMonth && (month-startMonth)%12 == 0 {
			earlyPayment = earlyPayment.Mul(colaFactor)
		}
		cumEarly = cumEarly.Add(earlyPayment)

		if month >= lateMonth {
			if month > lateMonth && (month-lateMonth)%12 == 0 {
				latePayment = latePayment.Mul(colaFactor)
			}
			cumLate = cumLate.Add(latePayment)
			if cumLate.GreaterThanOrEqual(cumEarly) {
				return float64(month+1) / 12.0
			}
		}
	}

	return math.Inf(1)
}
