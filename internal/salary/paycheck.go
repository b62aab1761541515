package salary

import (
	"fmt"

	"github.com/fincalc/fincalc/internal/domain"
	"github.com/fincalc/fincalc/internal/tax"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// paychecksPerYear maps salaried pay cadences to their period counts.
var paychecksPerYear = map[domain.PayPeriod]decimal.Decimal{
	domain.PeriodWeekly:      decimal.NewFromInt(52),
	domain.PeriodBiWeekly:    decimal.NewFromInt(26),
	domain.PeriodSemiMonthly: decimal.NewFromInt(24),
	domain.PeriodMonthly:     decimal.NewFromInt(12),
	domain.PeriodQuarterly:   decimal.NewFromInt(4),
	domain.PeriodAnnual:      decimal.NewFromInt(1),
}

// Paycheck breaks an annual gross salary down to net take-home pay per
// period using the 2025 federal, FICA, and state tables.
func Paycheck(input *domain.PaycheckInput) *domain.PaycheckResult {
	gross := input.AnnualGross
	if gross.LessThanOrEqual(decimal.Zero) {
		return &domain.PaycheckResult{}
	}

	federal := tax.FederalIncomeTax(gross, input.FilingStatus)
	fica := tax.FICATax(gross, input.FilingStatus)
	state := tax.StateIncomeTax(gross, input.State)

	netAnnual := gross.Sub(federal).Sub(fica).Sub(state)
	periods, ok := paychecksPerYear[input.PayPeriod]
	if !ok {
		periods = paychecksPerYear[domain.PeriodMonthly]
	}

	totalTax := federal.Add(fica).Add(state)
	return &domain.PaycheckResult{
		Gross:         gross,
		FederalTax:    federal,
		FICATax:       fica,
		StateTax:      state,
		NetAnnual:     netAnnual,
		NetPerPeriod:  netAnnual.Div(periods),
		EffectiveRate: totalTax.Div(gross).Mul(hundred),
	}
}

// ValidatePaycheckInputs returns human-readable problems with a paycheck
// input record.
func ValidatePaycheckInputs(input *domain.PaycheckInput) []string {
	var problems []string
	if input.AnnualGross.LessThanOrEqual(decimal.Zero) {
		problems = append(problems, "annual gross must be positive")
	}
	switch input.FilingStatus {
	case domain.FilingSingle, domain.FilingMarriedJoint, domain.FilingHeadOfHousehold:
	default:
		problems = append(problems, fmt.Sprintf("unknown filing status %q", input.FilingStatus))
	}
	if input.PayPeriod != "" {
		if _, ok := paychecksPerYear[input.PayPeriod]; !ok {
			problems = append(problems, fmt.Sprintf("pay period %q is not a salaried cadence", input.PayPeriod))
		}
	}
	if input.State != "" {
		if _, ok := tax.StateRuleFor(input.State); !ok {
			problems = append(problems, fmt.Sprintf("unknown state %q", input.State))
		}
	}
	return problems
}
