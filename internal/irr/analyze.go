package irr

import (
	"fmt"

	"github.com/fincalc/fincalc/internal/domain"
	"github.com/shopspring/decimal"
)

var ratePctBound = decimal.NewFromInt(100)

// ValidateInputs inspects an IRR input record and returns a list of
// human-readable problems. An empty list means the record is safe to hand
// to Analyze; the engine itself never raises errors.
func ValidateInputs(input *domain.IRRInput) []string {
	var problems []string

	if len(input.CashFlows) < 2 {
		problems = append(problems, "at least two cash flows are required")
	}

	hasPositive, hasNegative := false, false
	seen := make(map[int]bool, len(input.CashFlows))
	for _, cf := range input.CashFlows {
		if cf.Period < 0 {
			problems = append(problems, fmt.Sprintf("period %d is negative", cf.Period))
		}
		if seen[cf.Period] {
			problems = append(problems, fmt.Sprintf("duplicate period %d", cf.Period))
		}
		seen[cf.Period] = true
		if cf.Amount.IsPositive() {
			hasPositive = true
		}
		if cf.Amount.IsNegative() {
			hasNegative = true
		}
	}
	if !hasNegative {
		problems = append(problems, "at least one negative cash flow (investment) is required")
	}
	if !hasPositive {
		problems = append(problems, "at least one positive cash flow (return) is required")
	}

	if input.FinanceRate.Abs().GreaterThan(ratePctBound) {
		problems = append(problems, "finance rate must be between -100% and 100%")
	}
	if input.ReinvestmentRate.Abs().GreaterThan(ratePctBound) {
		problems = append(problems, "reinvestment rate must be between -100% and 100%")
	}

	return problems
}

// Analyze runs the full IRR/MIRR analysis and assembles the composite
// result record. The per-period schedule is discounted at the IRR when
// one exists, otherwise at the input's informational discount rate.
func (e *Engine) Analyze(input *domain.IRRInput) *domain.IRRResult {
	sorted := sortByPeriod(input.CashFlows)
	investment, returns := totals(sorted)

	result := &domain.IRRResult{
		NPVAtZero:       returns.Sub(investment),
		TotalInvestment: investment,
		TotalReturns:    returns,
		ProfitLoss:      returns.Sub(investment),
	}

	result.IRR = e.IRR(sorted)
	result.MIRR = e.MIRR(sorted, input.FinanceRate, input.ReinvestmentRate)
	result.PaybackPeriod = PaybackPeriod(sorted)

	discountRate := input.DiscountRate.Div(hundred)
	if result.IRR != nil {
		discountRate = result.IRR.Div(hundred)
	}
	result.NPV = NPV(sorted, discountRate)

	cumulative := decimal.Zero
	cumulativePV := decimal.Zero
	result.Schedule = make([]domain.CashFlowDetail, 0, len(sorted))
	for _, cf := range sorted {
		cumulative = cumulative.Add(cf.Amount)
		pv := cf.Amount.Mul(pow1p(discountRate, -cf.Period))
		cumulativePV = cumulativePV.Add(pv)
		result.Schedule = append(result.Schedule, domain.CashFlowDetail{
			Period:       cf.Period,
			Label:        cf.Label,
			Amount:       cf.Amount,
			Cumulative:   cumulative,
			PresentValue: pv,
			CumulativePV: cumulativePV,
		})
	}

	return result
}
