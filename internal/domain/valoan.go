package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ServiceType distinguishes regular military from reserves/national guard
// for VA funding-fee purposes.
type ServiceType string

const (
	ServiceRegular  ServiceType = "regular"
	ServiceReserves ServiceType = "reserves"
)

// LoanUsage is whether this is the borrower's first VA loan.
type LoanUsage string

const (
	FirstUse      LoanUsage = "first"
	SubsequentUse LoanUsage = "subsequent"
)

// VALoanInput is the input record for the VA loan calculator.
type VALoanInput struct {
	HomePrice     decimal.Decimal `yaml:"home_price" json:"home_price"`
	DownPayment   decimal.Decimal `yaml:"down_payment" json:"down_payment"`
	AnnualRatePct decimal.Decimal `yaml:"annual_rate" json:"annual_rate"`
	TermYears     int             `yaml:"term_years" json:"term_years"`
	StartDate     time.Time       `yaml:"start_date" json:"start_date"`
	ServiceType   ServiceType     `yaml:"service_type" json:"service_type"`
	Usage         LoanUsage       `yaml:"usage" json:"usage"`
	// Disabled veterans are exempt from the funding fee.
	Disabled bool `yaml:"disabled" json:"disabled"`
	// FinanceFee rolls the funding fee into the loan principal.
	FinanceFee bool           `yaml:"finance_fee" json:"finance_fee"`
	Extra      *ExtraPayments `yaml:"extra_payments" json:"extra_payments,omitempty"`
}

// VALoanResult is the VA loan calculator output: the derived funding fee
// plus a full amortization of the resulting principal.
type VALoanResult struct {
	FundingFeeRate  decimal.Decimal `json:"funding_fee_rate"`
	FundingFee      decimal.Decimal `json:"funding_fee"`
	BaseLoanAmount  decimal.Decimal `json:"base_loan_amount"`
	TotalLoanAmount decimal.Decimal `json:"total_loan_amount"`
	Mortgage        MortgageResult  `json:"mortgage"`
}
