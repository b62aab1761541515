package domain

import (
	"github.com/shopspring/decimal"
)

// PayPeriod is a pay cadence.
type PayPeriod string

const (
	PeriodHourly      PayPeriod = "hourly"
	PeriodDaily       PayPeriod = "daily"
	PeriodWeekly      PayPeriod = "weekly"
	PeriodBiWeekly    PayPeriod = "biweekly"
	PeriodSemiMonthly PayPeriod = "semimonthly"
	PeriodMonthly     PayPeriod = "monthly"
	PeriodQuarterly   PayPeriod = "quarterly"
	PeriodAnnual      PayPeriod = "annual"
)

// PayPeriods lists all cadences in ascending length order.
var PayPeriods = []PayPeriod{
	PeriodHourly, PeriodDaily, PeriodWeekly, PeriodBiWeekly,
	PeriodSemiMonthly, PeriodMonthly, PeriodQuarterly, PeriodAnnual,
}

// SalaryInput is the input record for the salary conversion calculator.
type SalaryInput struct {
	Amount       decimal.Decimal `yaml:"amount" json:"amount"`
	Period       PayPeriod       `yaml:"period" json:"period"`
	HoursPerWeek decimal.Decimal `yaml:"hours_per_week" json:"hours_per_week"`
	DaysPerWeek  decimal.Decimal `yaml:"days_per_week" json:"days_per_week"`
	// HolidaysPerYear and VacationDays are stated in 5-day-week
	// equivalents and rescaled to the actual work week.
	HolidaysPerYear decimal.Decimal `yaml:"holidays_per_year" json:"holidays_per_year"`
	VacationDays    decimal.Decimal `yaml:"vacation_days" json:"vacation_days"`
}

// PayAmount carries a converted figure with and without the
// holiday/vacation adjustment.
type PayAmount struct {
	Unadjusted decimal.Decimal `json:"unadjusted"`
	Adjusted   decimal.Decimal `json:"adjusted"`
}

// SalaryResults holds the input amount converted to every cadence.
type SalaryResults struct {
	Hourly      PayAmount `json:"hourly"`
	Daily       PayAmount `json:"daily"`
	Weekly      PayAmount `json:"weekly"`
	BiWeekly    PayAmount `json:"biweekly"`
	SemiMonthly PayAmount `json:"semimonthly"`
	Monthly     PayAmount `json:"monthly"`
	Quarterly   PayAmount `json:"quarterly"`
	Annual      PayAmount `json:"annual"`
}

// FilingStatus selects a federal bracket table and standard deduction.
type FilingStatus string

const (
	FilingSingle          FilingStatus = "single"
	FilingMarriedJoint    FilingStatus = "married_joint"
	FilingHeadOfHousehold FilingStatus = "head_of_household"
)

// PaycheckInput is the input record for the paycheck (take-home pay)
// calculator.
type PaycheckInput struct {
	AnnualGross  decimal.Decimal `yaml:"annual_gross" json:"annual_gross"`
	FilingStatus FilingStatus    `yaml:"filing_status" json:"filing_status"`
	State        string          `yaml:"state" json:"state"`
	PayPeriod    PayPeriod       `yaml:"pay_period" json:"pay_period"`
}

// PaycheckResult breaks annual gross pay down to net pay per period.
type PaycheckResult struct {
	Gross         decimal.Decimal `json:"gross"`
	FederalTax    decimal.Decimal `json:"federal_tax"`
	FICATax       decimal.Decimal `json:"fica_tax"`
	StateTax      decimal.Decimal `json:"state_tax"`
	NetAnnual     decimal.Decimal `json:"net_annual"`
	NetPerPeriod  decimal.Decimal `json:"net_per_period"`
	EffectiveRate decimal.Decimal `json:"effective_rate"`
}
