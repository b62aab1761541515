package domain

import (
	"github.com/shopspring/decimal"
)

// SocialSecurityInput is the input record for the claim-age comparator.
// MonthlyBenefitAtFRA is the benefit the SSA statement quotes for full
// retirement age (67 for anyone born 1960 or later).
type SocialSecurityInput struct {
	MonthlyBenefitAtFRA decimal.Decimal `yaml:"monthly_benefit_at_fra" json:"monthly_benefit_at_fra"`
	LifeExpectancy      int             `yaml:"life_expectancy" json:"life_expectancy"`
	// COLARate and InvestmentReturn are annual percents.
	COLARate         decimal.Decimal `yaml:"cola_rate" json:"cola_rate"`
	InvestmentReturn decimal.Decimal `yaml:"investment_return" json:"investment_return"`
}

// ClaimAgeAnalysis is the outcome of claiming at one particular age.
type ClaimAgeAnalysis struct {
	ClaimAge       int             `json:"claim_age"`
	BenefitPercent decimal.Decimal `json:"benefit_percent"`
	MonthlyBenefit decimal.Decimal `json:"monthly_benefit"`
	// TotalByLifeExpectancy is the cumulative nominal benefit received.
	TotalByLifeExpectancy decimal.Decimal `json:"total_by_life_expectancy"`
	// PresentValue discounts the stream to age 62 at the assumed
	// investment return; FutureValue compounds it to life expectancy.
	PresentValue decimal.Decimal `json:"present_value"`
	FutureValue  decimal.Decimal `json:"future_value"`
}

// BreakEven compares two claiming strategies. Age is +Inf ("Never") when
// the later claim's cumulative benefits never catch up within the modeled
// horizon.
type BreakEven struct {
	EarlyAge int     `json:"early_age"`
	LateAge  int     `json:"late_age"`
	Age      float64 `json:"age"`
}

// SocialSecurityResult is the comparator output across all claim ages.
type SocialSecurityResult struct {
	Analyses  []ClaimAgeAnalysis `json:"analyses"`
	IdealAge  int                `json:"ideal_age"`
	BreakEven []BreakEven        `json:"break_even"`
}
