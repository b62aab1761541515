package socialsecurity

import (
	"github.com/fincalc/fincalc/internal/domain"
	"github.com/shopspring/decimal"
)

// Analyze evaluates every claim age from 62 through 70: the monthly
// benefit, the cumulative nominal benefit through life expectancy, and
// the stream's present value (discounted to age 62, the earliest
// claimable age, so values are comparable across strategies) and future
// value at life expectancy. The ideal age maximizes present value.
func Analyze(input *domain.SocialSecurityInput) *domain.SocialSecurityResult {
	result := &domain.SocialSecurityResult{
		IdealAge: EarliestClaimAge,
	}

	bestPV := decimal.Decimal{}
	for age := EarliestClaimAge; age <= LatestClaimAge; age++ {
		analysis := analyzeClaimAge(input, age)
		result.Analyses = append(result.Analyses, analysis)
		if age == EarliestClaimAge || analysis.PresentValue.GreaterThan(bestPV) {
			bestPV = analysis.PresentValue
			result.IdealAge = age
		}
	}

	pairs := [][2]int{
		{EarliestClaimAge, FullRetirementAge},
		{EarliestClaimAge, LatestClaimAge},
		{FullRetirementAge, LatestClaimAge},
	}
	for _, p := range pairs {
		result.BreakEven = append(result.BreakEven, domain.BreakEven{
			EarlyAge: p[0],
			LateAge:  p[1],
			Age:      BreakEvenAge(input, p[0], p[1]),
		})
	}

	return result
}

// analyzeClaimAge walks the monthly benefit stream from claim age to life
// expectancy. The benefit grows with COLA each anniversary; each payment
// is discounted to age 62 for the present value and compounded to life
// expectancy for the future value, both at the assumed investment return.
func analyzeClaimAge(input *domain.SocialSecurityInput, claimAge int) domain.ClaimAgeAnalysis {
	analysis := domain.ClaimAgeAnalysis{
		ClaimAge:       claimAge,
		BenefitPercent: BenefitPercent(claimAge),
		MonthlyBenefit: monthlyBenefitAtClaim(input, claimAge),
	}
	if input.LifeExpectancy <= claimAge {
		return analysis
	}

	monthlyReturn := input.InvestmentReturn.Div(hundred).Div(twelve)
	growth := one.Add(monthlyReturn)
	colaFactor := one.Add(input.COLARate.Div(hundred))

	totalMonths := (input.LifeExpectancy - claimAge) * 12

	// Discount factor for the first payment month, relative to age 62.
	discount := one
	for m := 0; m < (claimAge-EarliestClaimAge)*12; m++ {
		discount = discount.Div(growth)
	}
	// Compounding factor from the first payment month to life expectancy.
	compound := one
	for m := 0; m < totalMonths; m++ {
		compound = compound.Mul(growth)
	}

	payment := analysis.MonthlyBenefit
	for m := 0; m < totalMonths; m++ {
		if m > 0 && m%12 == 0 {
			payment = payment.Mul(colaFactor)
		}
		analysis.TotalByLifeExpectancy = analysis.TotalByLifeExpectancy.Add(payment)
		analysis.PresentValue = analysis.PresentValue.Add(payment.Mul(discount))
		analysis.FutureValue = analysis.FutureValue.Add(payment.Mul(compound))
		discount = discount.Div(growth)
		compound = compound.Div(growth)
	}

	return analysis
}
