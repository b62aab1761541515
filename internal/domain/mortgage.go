package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OneTimePayment is a lump sum applied to principal in a specific month.
type OneTimePayment struct {
	Month  int             `yaml:"month" json:"month"`
	Amount decimal.Decimal `yaml:"amount" json:"amount"`
}

// ExtraPayments configures optional accelerated principal payments.
// Monthly recurs every month from MonthlyStartMonth; Yearly recurs every
// twelve months from YearlyStartMonth.
type ExtraPayments struct {
	Monthly           decimal.Decimal  `yaml:"monthly" json:"monthly"`
	MonthlyStartMonth int              `yaml:"monthly_start_month" json:"monthly_start_month"`
	Yearly            decimal.Decimal  `yaml:"yearly" json:"yearly"`
	YearlyStartMonth  int              `yaml:"yearly_start_month" json:"yearly_start_month"`
	OneTime           []OneTimePayment `yaml:"one_time" json:"one_time,omitempty"`
}

// MortgageInput is the input record for the mortgage calculator.
type MortgageInput struct {
	LoanAmount    decimal.Decimal `yaml:"loan_amount" json:"loan_amount"`
	AnnualRatePct decimal.Decimal `yaml:"annual_rate" json:"annual_rate"`
	TermYears     int             `yaml:"term_years" json:"term_years"`
	StartDate     time.Time       `yaml:"start_date" json:"start_date"`
	Extra         *ExtraPayments  `yaml:"extra_payments" json:"extra_payments,omitempty"`
}

// AmortizationRow is one month of a payment schedule. Payment is the
// scheduled principal+interest portion; Extra is additional principal paid
// the same month. Balance never goes negative: the final row's principal is
// truncated to zero out the loan.
type AmortizationRow struct {
	Month               int             `json:"month"`
	Date                time.Time       `json:"date"`
	Payment             decimal.Decimal `json:"payment"`
	Principal           decimal.Decimal `json:"principal"`
	Interest            decimal.Decimal `json:"interest"`
	Extra               decimal.Decimal `json:"extra"`
	Balance             decimal.Decimal `json:"balance"`
	CumulativePrincipal decimal.Decimal `json:"cumulative_principal"`
	CumulativeInterest  decimal.Decimal `json:"cumulative_interest"`
}

// MortgageSummary aggregates a schedule. MonthsSaved and InterestSaved
// compare against the no-extra-payment baseline and are zero when no extra
// payments are configured.
type MortgageSummary struct {
	MonthlyPayment decimal.Decimal `json:"monthly_payment"`
	TotalPaid      decimal.Decimal `json:"total_paid"`
	TotalInterest  decimal.Decimal `json:"total_interest"`
	PayoffDate     time.Time       `json:"payoff_date"`
	MonthsSaved    int             `json:"months_saved"`
	InterestSaved  decimal.Decimal `json:"interest_saved"`
}

// MortgageResult is the full mortgage calculator output.
type MortgageResult struct {
	Summary  MortgageSummary   `json:"summary"`
	Schedule []AmortizationRow `json:"schedule"`
}
