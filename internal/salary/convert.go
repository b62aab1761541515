package salary

import (
	"fmt"

	"github.com/fincalc/fincalc/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	weeksPerYear = decimal.NewFromInt(52)
	five         = decimal.NewFromInt(5)

	divQuarterly   = decimal.NewFromInt(4)
	divMonthly     = decimal.NewFromInt(12)
	divSemiMonthly = decimal.NewFromInt(24)
	divBiWeekly    = decimal.NewFromInt(26)
)

// annualize converts the input amount to an unadjusted annual figure.
func annualize(input *domain.SalaryInput, workingDays decimal.Decimal) decimal.Decimal {
	switch input.Period {
	case domain.PeriodHourly:
		return input.Amount.Mul(input.HoursPerWeek).Mul(weeksPerYear)
	case domain.PeriodDaily:
		return input.Amount.Mul(workingDays)
	case domain.PeriodWeekly:
		return input.Amount.Mul(weeksPerYear)
	case domain.PeriodBiWeekly:
		return input.Amount.Mul(divBiWeekly)
	case domain.PeriodSemiMonthly:
		return input.Amount.Mul(divSemiMonthly)
	case domain.PeriodMonthly:
		return input.Amount.Mul(divMonthly)
	case domain.PeriodQuarterly:
		return input.Amount.Mul(divQuarterly)
	default: // annual
		return input.Amount
	}
}

// Convert translates an amount in one pay cadence to every other cadence,
// both as-is and adjusted for holidays and vacation. Holiday and vacation
// counts are assumed stated in 5-day-week equivalents and rescaled by
// daysPerWeek/5 (documented behavior of the adjusted-days convention, not
// a universal standard). Wage cadences (hourly, daily) earn nothing on
// days off, so their adjusted annual figure shrinks; salaried cadences
// keep their annual figure and the adjustment instead surfaces in the
// equivalent wage rates.
func Convert(input *domain.SalaryInput) *domain.SalaryResults {
	if input.HoursPerWeek.LessThanOrEqual(decimal.Zero) || input.DaysPerWeek.LessThanOrEqual(decimal.Zero) {
		return &domain.SalaryResults{}
	}

	workingDays := input.DaysPerWeek.Mul(weeksPerYear)
	offDays := input.HolidaysPerYear.Add(input.VacationDays).Mul(input.DaysPerWeek.Div(five))
	adjustedDays := workingDays.Sub(offDays)
	if adjustedDays.IsNegative() {
		adjustedDays = decimal.Zero
	}
	adjustedWeeks := adjustedDays.Div(input.DaysPerWeek)

	annual := annualize(input, workingDays)
	adjustedAnnual := annual
	if input.Period == domain.PeriodHourly || input.Period == domain.PeriodDaily {
		adjustedAnnual = annual.Mul(adjustedDays).Div(workingDays)
	}

	results := &domain.SalaryResults{
		Annual:      domain.PayAmount{Unadjusted: annual, Adjusted: adjustedAnnual},
		Quarterly:   domain.PayAmount{Unadjusted: annual.Div(divQuarterly), Adjusted: adjustedAnnual.Div(divQuarterly)},
		Monthly:     domain.PayAmount{Unadjusted: annual.Div(divMonthly), Adjusted: adjustedAnnual.Div(divMonthly)},
		SemiMonthly: domain.PayAmount{Unadjusted: annual.Div(divSemiMonthly), Adjusted: adjustedAnnual.Div(divSemiMonthly)},
		BiWeekly:    domain.PayAmount{Unadjusted: annual.Div(divBiWeekly), Adjusted: adjustedAnnual.Div(divBiWeekly)},
	}

	results.Weekly.Unadjusted = annual.Div(weeksPerYear)
	results.Daily.Unadjusted = annual.Div(workingDays)
	results.Hourly.Unadjusted = annual.Div(input.HoursPerWeek.Mul(weeksPerYear))

	if adjustedDays.IsPositive() {
		results.Weekly.Adjusted = adjustedAnnual.Div(adjustedWeeks)
		results.Daily.Adjusted = adjustedAnnual.Div(adjustedDays)
		results.Hourly.Adjusted = adjustedAnnual.Div(input.HoursPerWeek.Mul(adjustedWeeks))
	}

	return results
}

// ValidateInputs returns human-readable problems with a salary conversion
// input record.
func ValidateInputs(input *domain.SalaryInput) []string {
	var problems []string
	if input.Amount.LessThanOrEqual(decimal.Zero) {
		problems = append(problems, "amount must be positive")
	}
	if !validPeriod(input.Period) {
		problems = append(problems, fmt.Sprintf("unknown pay period %q", input.Period))
	}
	if input.HoursPerWeek.LessThanOrEqual(decimal.Zero) || input.HoursPerWeek.GreaterThan(decimal.NewFromInt(168)) {
		problems = append(problems, "hours per week must be between 1 and 168")
	}
	if input.DaysPerWeek.LessThanOrEqual(decimal.Zero) || input.DaysPerWeek.GreaterThan(decimal.NewFromInt(7)) {
		problems = append(problems, "days per week must be between 1 and 7")
	}
	if input.HolidaysPerYear.IsNegative() {
		problems = append(problems, "holidays per year cannot be negative")
	}
	if input.VacationDays.IsNegative() {
		problems = append(problems, "vacation days cannot be negative")
	}
	offDays := input.HolidaysPerYear.Add(input.VacationDays)
	if offDays.GreaterThanOrEqual(decimal.NewFromInt(260)) {
		problems = append(problems, "holidays plus vacation cannot consume the whole working year")
	}
	return problems
}

func validPeriod(p domain.PayPeriod) bool {
	for _, known := range domain.PayPeriods {
		if p == known {
			return true
		}
	}
	return false
}
