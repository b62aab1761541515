package valoan

import (
	"github.com/fincalc/fincalc/internal/domain"
	"github.com/shopspring/decimal"
)

// feeBracket is one row of the 2025 VA funding-fee table, keyed by the
// minimum down-payment percent of its bucket. Rates have been identical
// for regular and reserve service since the 2020 fee unification, but the
// table keeps the dimension in case they diverge again.
type feeBracket struct {
	MinDownPct decimal.Decimal
	RatePct    decimal.Decimal
}

type feeKey struct {
	Service domain.ServiceType
	Usage   domain.LoanUsage
}

// fundingFeeTable2025 holds purchase-loan funding fee rates effective for
// 2025. Buckets: below 5% down, 5% to below 10%, 10% and up.
var fundingFeeTable2025 = map[feeKey][]feeBracket{
	{domain.ServiceRegular, domain.FirstUse}: {
		{decimal.NewFromInt(10), decimal.NewFromFloat(1.25)},
		{decimal.NewFromInt(5), decimal.NewFromFloat(1.50)},
		{decimal.Zero, decimal.NewFromFloat(2.15)},
	},
	{domain.ServiceRegular, domain.SubsequentUse}: {
		{decimal.NewFromInt(10), decimal.NewFromFloat(1.25)},
		{decimal.NewFromInt(5), decimal.NewFromFloat(1.50)},
		{decimal.Zero, decimal.NewFromFloat(3.30)},
	},
	{domain.ServiceReserves, domain.FirstUse}: {
		{decimal.NewFromInt(10), decimal.NewFromFloat(1.25)},
		{decimal.NewFromInt(5), decimal.NewFromFloat(1.50)},
		{decimal.Zero, decimal.NewFromFloat(2.15)},
	},
	{domain.ServiceReserves, domain.SubsequentUse}: {
		{decimal.NewFromInt(10), decimal.NewFromFloat(1.25)},
		{decimal.NewFromInt(5), decimal.NewFromFloat(1.50)},
		{decimal.Zero, decimal.NewFromFloat(3.30)},
	},
}

// FundingFeeRate looks up the VA funding-fee percent for a loan. Veterans
// receiving disability compensation are exempt regardless of every other
// parameter.
func FundingFeeRate(downPaymentPct decimal.Decimal, service domain.ServiceType, usage domain.LoanUsage, disabled bool) decimal.Decimal {
	if disabled {
		return decimal.Zero
	}
	brackets, ok := fundingFeeTable2025[feeKey{service, usage}]
	if !ok {
		brackets = fundingFeeTable2025[feeKey{domain.ServiceRegular, domain.FirstUse}]
	}
	for _, b := range brackets {
		if downPaymentPct.GreaterThanOrEqual(b.MinDownPct) {
			return b.RatePct
		}
	}
	return decimal.Zero
}
