package estatetax

import (
	"github.com/fincalc/fincalc/internal/domain"
	"github.com/fincalc/fincalc/internal/tax"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Calculate evaluates 2025 federal and state estate tax for an estate.
// Lifetime taxable gifts consume federal exemption without being part of
// the probate estate. The function is total: over-deducted or empty
// estates produce zeros, never errors.
func Calculate(input *domain.EstateTaxInput) *domain.EstateTaxResults {
	gross := input.TotalAssets
	deductions := input.Debts.
		Add(input.AdminExpenses).
		Add(input.MaritalDeduction).
		Add(input.CharitableDeduction)

	net := gross.Sub(deductions)
	if net.IsNegative() {
		net = decimal.Zero
	}

	exemption := federalExemptionSingle2025
	if input.MaritalStatus == domain.MaritalMarried {
		exemption = federalExemptionMarried2025
	}

	federalTaxable := net.Add(input.LifetimeGifts).Sub(exemption)
	if federalTaxable.IsNegative() {
		federalTaxable = decimal.Zero
	}
	federalTax := tax.ApplyBrackets(federalTaxable, federalEstateBrackets2025)

	results := &domain.EstateTaxResults{
		GrossEstate:      gross,
		TotalDeductions:  deductions,
		NetEstate:        net,
		FederalExemption: exemption,
		FederalTaxable:   federalTaxable,
		FederalTax:       federalTax,
	}

	if rule, ok := StateEstateRuleFor(input.State); ok {
		results.StateExemption = rule.Exemption
		stateTaxable := net.Sub(rule.Exemption)
		if stateTaxable.IsNegative() {
			stateTaxable = decimal.Zero
		}
		results.StateTaxable = stateTaxable
		results.StateTax = tax.ApplyBrackets(stateTaxable, rule.Brackets)
	}

	results.TotalTax = results.FederalTax.Add(results.StateTax)
	results.NetToHeirs = net.Sub(results.TotalTax)
	if net.IsPositive() {
		results.EffectiveRate = results.TotalTax.Div(net).Mul(hundred)
	}
	return results
}

// ValidateInputs returns human-readable problems with an estate tax input
// record.
func ValidateInputs(input *domain.EstateTaxInput) []string {
	var problems []string
	if input.TotalAssets.IsNegative() {
		problems = append(problems, "total assets cannot be negative")
	}
	if input.Debts.IsNegative() {
		problems = append(problems, "debts cannot be negative")
	}
	if input.AdminExpenses.IsNegative() {
		problems = append(problems, "administrative expenses cannot be negative")
	}
	if input.MaritalDeduction.IsNegative() {
		problems = append(problems, "marital deduction cannot be negative")
	}
	if input.CharitableDeduction.IsNegative() {
		problems = append(problems, "charitable deduction cannot be negative")
	}
	if input.LifetimeGifts.IsNegative() {
		problems = append(problems, "lifetime gifts cannot be negative")
	}
	switch input.MaritalStatus {
	case domain.MaritalSingle, domain.MaritalMarried, "":
	default:
		problems = append(problems, "marital status must be 'single' or 'married'")
	}
	return problems
}
