package tax

import (
	"github.com/fincalc/fincalc/internal/domain"
	"github.com/shopspring/decimal"
)

// TAX DATA ASSUMPTIONS:
//
// All tables in this package are the official 2025 figures and are static
// versioned data, not derived at runtime. Future tax years require new
// tables here, never algorithm changes.

// TaxYear is the tax year the constant tables in this package describe.
const TaxYear = 2025

// federalBrackets2025 holds the 2025 federal income tax brackets per
// filing status.
var federalBrackets2025 = map[domain.FilingStatus][]Bracket{
	domain.FilingSingle: {
		bracket(0, 11_925, 0.10),
		bracket(11_925, 48_475, 0.12),
		bracket(48_475, 103_350, 0.22),
		bracket(103_350, 197_300, 0.24),
		bracket(197_300, 250_525, 0.32),
		bracket(250_525, 626_350, 0.35),
		topBracket(626_350, 0.37),
	},
	domain.FilingMarriedJoint: {
		bracket(0, 23_850, 0.10),
		bracket(23_850, 96_950, 0.12),
		bracket(96_950, 206_700, 0.22),
		bracket(206_700, 394_600, 0.24),
		bracket(394_600, 501_050, 0.32),
		bracket(501_050, 751_600, 0.35),
		topBracket(751_600, 0.37),
	},
	domain.FilingHeadOfHousehold: {
		bracket(0, 17_000, 0.10),
		bracket(17_000, 64_850, 0.12),
		bracket(64_850, 103_350, 0.22),
		bracket(103_350, 197_300, 0.24),
		bracket(197_300, 250_500, 0.32),
		bracket(250_500, 626_350, 0.35),
		topBracket(626_350, 0.37),
	},
}

// standardDeduction2025 per filing status.
var standardDeduction2025 = map[domain.FilingStatus]decimal.Decimal{
	domain.FilingSingle:          decimal.NewFromInt(15_000),
	domain.FilingMarriedJoint:    decimal.NewFromInt(30_000),
	domain.FilingHeadOfHousehold: decimal.NewFromInt(22_500),
}

// FederalBrackets returns the 2025 bracket table for a filing status,
// defaulting to single for an unknown status.
func FederalBrackets(status domain.FilingStatus) []Bracket {
	if b, ok := federalBrackets2025[status]; ok {
		return b
	}
	return federalBrackets2025[domain.FilingSingle]
}

// StandardDeduction returns the 2025 standard deduction for a filing
// status, defaulting to single.
func StandardDeduction(status domain.FilingStatus) decimal.Decimal {
	if d, ok := standardDeduction2025[status]; ok {
		return d
	}
	return standardDeduction2025[domain.FilingSingle]
}

// FederalIncomeTaxOnTaxable applies the 2025 brackets to an
// already-reduced taxable income.
func FederalIncomeTaxOnTaxable(taxable decimal.Decimal, status domain.FilingStatus) decimal.Decimal {
	if taxable.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return ApplyBrackets(taxable, FederalBrackets(status))
}

// FederalIncomeTax reduces gross income by the standard deduction and
// applies the 2025 brackets.
func FederalIncomeTax(grossIncome decimal.Decimal, status domain.FilingStatus) decimal.Decimal {
	taxable := grossIncome.Sub(StandardDeduction(status))
	return FederalIncomeTaxOnTaxable(taxable, status)
}
