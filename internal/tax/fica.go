package tax

import (
	"github.com/fincalc/fincalc/internal/domain"
	"github.com/shopspring/decimal"
)

// FICA constants for 2025. The Social Security piece is capped at the
// wage base; Medicare is uncapped; the additional Medicare surtax applies
// only to the marginal excess above the filing-status threshold.
var (
	ssWageBase2025   = decimal.NewFromInt(176_100)
	ssRate           = decimal.NewFromFloat(0.062)
	medicareRate     = decimal.NewFromFloat(0.0145)
	addlMedicareRate = decimal.NewFromFloat(0.009)

	addlMedicareThreshold2025 = map[domain.FilingStatus]decimal.Decimal{
		domain.FilingSingle:          decimal.NewFromInt(200_000),
		domain.FilingMarriedJoint:    decimal.NewFromInt(250_000),
		domain.FilingHeadOfHousehold: decimal.NewFromInt(200_000),
	}
)

// FICATax computes the employee share of Social Security and Medicare
// taxes on wage income for 2025.
func FICATax(wages decimal.Decimal, status domain.FilingStatus) decimal.Decimal {
	if wages.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	ssBase := wages
	if ssBase.GreaterThan(ssWageBase2025) {
		ssBase = ssWageBase2025
	}
	total := ssBase.Mul(ssRate).Add(wages.Mul(medicareRate))

	threshold, ok := addlMedicareThreshold2025[status]
	if !ok {
		threshold = addlMedicareThreshold2025[domain.FilingSingle]
	}
	if wages.GreaterThan(threshold) {
		total = total.Add(wages.Sub(threshold).Mul(addlMedicareRate))
	}
	return total
}
