package socialsecurity

import (
	"fmt"

	"github.com/fincalc/fincalc/internal/domain"
	"github.com/shopspring/decimal"
)

// Claim ages run from the earliest eligibility to the latest delayed
// credit. Full retirement age is 67 (anyone born 1960 or later).
const (
	EarliestClaimAge  = 62
	FullRetirementAge = 67
	LatestClaimAge    = 70
)

var (
	one     = decimal.NewFromInt(1)
	twelve  = decimal.NewFromInt(12)
	hundred = decimal.NewFromInt(100)
)

// claimAgePercents scales the FRA benefit by claim age: a permanent
// reduction for claiming early, an 8%-per-year delayed credit after FRA.
var claimAgePercents = map[int]decimal.Decimal{
	62: decimal.NewFromInt(70),
	63: decimal.NewFromInt(75),
	64: decimal.NewFromInt(80),
	65: decimal.NewFromFloat(86.667),
	66: decimal.NewFromFloat(93.333),
	67: decimal.NewFromInt(100),
	68: decimal.NewFromInt(108),
	69: decimal.NewFromInt(116),
	70: decimal.NewFromInt(124),
}

// BenefitPercent returns the percent of the FRA benefit payable when
// claiming at the given age.
func BenefitPercent(claimAge int) decimal.Decimal {
	if pct, ok := claimAgePercents[claimAge]; ok {
		return pct
	}
	if claimAge < EarliestClaimAge {
		return decimal.Zero
	}
	return claimAgePercents[LatestClaimAge]
}

// monthlyBenefitAtClaim is the first monthly check for a claim age: the
// FRA benefit scaled by the claim-age percent, with COLA compounded from
// age 62 so that delaying does not silently forfeit COLA years.
func monthlyBenefitAtClaim(input *domain.SocialSecurityInput, claimAge int) decimal.Decimal {
	benefit := input.MonthlyBenefitAtFRA.Mul(BenefitPercent(claimAge)).Div(hundred)
	colaFactor := one.Add(input.COLARate.Div(hundred))
	for year := EarliestClaimAge; year < claimAge; year++ {
		benefit = benefit.Mul(colaFactor)
	}
	return benefit
}

// ValidateInputs returns human-readable problems with a Social Security
// input record.
func ValidateInputs(input *domain.SocialSecurityInput) []string {
	var problems []string
	if input.MonthlyBenefitAtFRA.LessThanOrEqual(decimal.Zero) {
		problems = append(problems, "monthly benefit at full retirement age must be positive")
	}
	if input.LifeExpectancy <= LatestClaimAge || input.LifeExpectancy > 120 {
		problems = append(problems, fmt.Sprintf("life expectancy must be between %d and 120", LatestClaimAge+1))
	}
	if input.COLARate.IsNegative() || input.COLARate.GreaterThan(decimal.NewFromInt(10)) {
		problems = append(problems, "COLA rate must be between 0% and 10%")
	}
	if input.InvestmentReturn.IsNegative() || input.InvestmentReturn.GreaterThan(decimal.NewFromInt(20)) {
		problems = append(problems, "investment return must be between 0% and 20%")
	}
	return problems
}
