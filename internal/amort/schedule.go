package amort

import (
	"fmt"

	"github.com/fincalc/fincalc/internal/domain"
	"github.com/shopspring/decimal"
)

// Schedule generates the month-by-month amortization of a loan in a
// single forward pass. Extra payments are modeled as additional principal
// paid in the same period rather than re-amortizing the remaining
// schedule, matching standard mortgage servicing: extra principal
// shortens the tail without changing the contractual payment. The loop
// exits the month the balance reaches zero, even before the nominal term.
func Schedule(input *domain.MortgageInput) []domain.AmortizationRow {
	if input.LoanAmount.LessThanOrEqual(decimal.Zero) || input.TermYears <= 0 {
		return nil
	}

	months := input.TermYears * 12
	rate := monthlyRate(input.AnnualRatePct)
	payment := MonthlyPayment(input.LoanAmount, input.AnnualRatePct, input.TermYears)

	oneTime := make(map[int]decimal.Decimal)
	if input.Extra != nil {
		for _, p := range input.Extra.OneTime {
			oneTime[p.Month] = oneTime[p.Month].Add(p.Amount)
		}
	}

	balance := input.LoanAmount
	cumulativePrincipal := decimal.Zero
	cumulativeInterest := decimal.Zero
	rows := make([]domain.AmortizationRow, 0, months)

	for month := 1; month <= months && balance.IsPositive(); month++ {
		interest := balance.Mul(rate)
		principal := payment.Sub(interest)
		if principal.GreaterThan(balance) {
			// Final row: truncate so the balance lands exactly on zero.
			principal = balance
		}

		extra := extraForMonth(input.Extra, month, oneTime)
		remaining := balance.Sub(principal)
		if extra.GreaterThan(remaining) {
			extra = remaining
		}

		balance = balance.Sub(principal).Sub(extra)
		cumulativePrincipal = cumulativePrincipal.Add(principal).Add(extra)
		cumulativeInterest = cumulativeInterest.Add(interest)

		rows = append(rows, domain.AmortizationRow{
			Month:               month,
			Date:                input.StartDate.AddDate(0, month-1, 0),
			Payment:             principal.Add(interest),
			Principal:           principal,
			Interest:            interest,
			Extra:               extra,
			Balance:             balance,
			CumulativePrincipal: cumulativePrincipal,
			CumulativeInterest:  cumulativeInterest,
		})
	}

	return rows
}

// extraForMonth sums the configured extra principal for one month: the
// recurring monthly amount, the yearly amount on its anniversary, and any
// one-time lump sums.
func extraForMonth(extra *domain.ExtraPayments, month int, oneTime map[int]decimal.Decimal) decimal.Decimal {
	total := oneTime[month]
	if extra == nil {
		return total
	}
	monthlyStart := extra.MonthlyStartMonth
	if monthlyStart < 1 {
		monthlyStart = 1
	}
	if extra.Monthly.IsPositive() && month >= monthlyStart {
		total = total.Add(extra.Monthly)
	}
	yearlyStart := extra.YearlyStartMonth
	if yearlyStart < 1 {
		yearlyStart = 1
	}
	if extra.Yearly.IsPositive() && month >= yearlyStart && (month-yearlyStart)%12 == 0 {
		total = total.Add(extra.Yearly)
	}
	return total
}

// Calculate runs the schedule and its summary in one call.
func Calculate(input *domain.MortgageInput) *domain.MortgageResult {
	schedule := Schedule(input)
	return &domain.MortgageResult{
		Summary:  Summarize(input, schedule),
		Schedule: schedule,
	}
}

// Summarize aggregates a schedule into headline figures. When extra
// payments are configured, the months and interest saved are measured
// against a baseline schedule without them.
func Summarize(input *domain.MortgageInput, schedule []domain.AmortizationRow) domain.MortgageSummary {
	summary := domain.MortgageSummary{
		MonthlyPayment: MonthlyPayment(input.LoanAmount, input.AnnualRatePct, input.TermYears),
	}
	if len(schedule) == 0 {
		return summary
	}

	last := schedule[len(schedule)-1]
	summary.TotalInterest = last.CumulativeInterest
	summary.TotalPaid = last.CumulativePrincipal.Add(last.CumulativeInterest)
	summary.PayoffDate = last.Date

	if hasExtra(input.Extra) {
		baseline := *input
		baseline.Extra = nil
		baseRows := Schedule(&baseline)
		if len(baseRows) > 0 {
			baseLast := baseRows[len(baseRows)-1]
			summary.MonthsSaved = len(baseRows) - len(schedule)
			summary.InterestSaved = baseLast.CumulativeInterest.Sub(last.CumulativeInterest)
		}
	}
	return summary
}

func hasExtra(extra *domain.ExtraPayments) bool {
	if extra == nil {
		return false
	}
	return extra.Monthly.IsPositive() || extra.Yearly.IsPositive() || len(extra.OneTime) > 0
}

// ValidateInputs returns human-readable problems with a mortgage input
// record. The engine itself degrades gracefully on bad numbers; this
// exists so the caller can surface problems instead of silently showing a
// zero-payment result.
func ValidateInputs(input *domain.MortgageInput) []string {
	var problems []string
	if input.LoanAmount.LessThanOrEqual(decimal.Zero) {
		problems = append(problems, "loan amount must be positive")
	}
	if input.AnnualRatePct.IsNegative() {
		problems = append(problems, "interest rate cannot be negative")
	}
	if input.AnnualRatePct.GreaterThan(decimal.NewFromInt(100)) {
		problems = append(problems, "interest rate above 100% is not supported")
	}
	if input.TermYears <= 0 {
		problems = append(problems, "loan term must be at least one year")
	}
	if input.TermYears > 50 {
		problems = append(problems, "loan term above 50 years is not supported")
	}
	if input.Extra != nil {
		if input.Extra.Monthly.IsNegative() || input.Extra.Yearly.IsNegative() {
			problems = append(problems, "extra payments cannot be negative")
		}
		for _, p := range input.Extra.OneTime {
			if p.Month < 1 {
				problems = append(problems, fmt.Sprintf("one-time payment month %d is before the first payment", p.Month))
			}
			if p.Amount.IsNegative() {
				problems = append(problems, fmt.Sprintf("one-time payment in month %d cannot be negative", p.Month))
			}
		}
	}
	return problems
}
