package valoan

import (
	"github.com/fincalc/fincalc/internal/amort"
	"github.com/fincalc/fincalc/internal/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Calculate derives the funding fee, optionally finances it into the
// principal, and amortizes the resulting loan through the shared engine.
func Calculate(input *domain.VALoanInput) *domain.VALoanResult {
	baseLoan := input.HomePrice.Sub(input.DownPayment)
	if baseLoan.IsNegative() {
		baseLoan = decimal.Zero
	}

	downPct := decimal.Zero
	if input.HomePrice.IsPositive() {
		downPct = input.DownPayment.Div(input.HomePrice).Mul(hundred)
	}

	feeRate := FundingFeeRate(downPct, input.ServiceType, input.Usage, input.Disabled)
	fee := baseLoan.Mul(feeRate).Div(hundred)

	totalLoan := baseLoan
	if input.FinanceFee {
		totalLoan = totalLoan.Add(fee)
	}

	mortgage := amort.Calculate(&domain.MortgageInput{
		LoanAmount:    totalLoan,
		AnnualRatePct: input.AnnualRatePct,
		TermYears:     input.TermYears,
		StartDate:     input.StartDate,
		Extra:         input.Extra,
	})

	return &domain.VALoanResult{
		FundingFeeRate:  feeRate,
		FundingFee:      fee,
		BaseLoanAmount:  baseLoan,
		TotalLoanAmount: totalLoan,
		Mortgage:        *mortgage,
	}
}

// ValidateInputs returns human-readable problems with a VA loan input
// record.
func ValidateInputs(input *domain.VALoanInput) []string {
	var problems []string
	if input.HomePrice.LessThanOrEqual(decimal.Zero) {
		problems = append(problems, "home price must be positive")
	}
	if input.DownPayment.IsNegative() {
		problems = append(problems, "down payment cannot be negative")
	}
	if input.DownPayment.GreaterThan(input.HomePrice) {
		problems = append(problems, "down payment cannot exceed the home price")
	}
	if input.TermYears <= 0 {
		problems = append(problems, "loan term must be at least one year")
	}
	if input.AnnualRatePct.IsNegative() {
		problems = append(problems, "interest rate cannot be negative")
	}
	switch input.ServiceType {
	case domain.ServiceRegular, domain.ServiceReserves:
	default:
		problems = append(problems, "service type must be 'regular' or 'reserves'")
	}
	switch input.Usage {
	case domain.FirstUse, domain.SubsequentUse:
	default:
		problems = append(problems, "usage must be 'first' or 'subsequent'")
	}
	return problems
}
