package domain

import (
	"github.com/shopspring/decimal"
)

// CashFlow is a single dated flow in an investment, keyed by period number
// rather than calendar date. Period 0 is the initial outlay.
type CashFlow struct {
	Period int             `yaml:"period" json:"period"`
	Amount decimal.Decimal `yaml:"amount" json:"amount"`
	Label  string          `yaml:"label,omitempty" json:"label,omitempty"`
}

// IRRInput is the input record for the IRR/MIRR calculator.
type IRRInput struct {
	CashFlows []CashFlow `yaml:"cash_flows" json:"cash_flows"`
	// DiscountRate is a percent used only for the informational NPV line
	// when no IRR exists.
	DiscountRate decimal.Decimal `yaml:"discount_rate" json:"discount_rate"`
	// FinanceRate and ReinvestmentRate are percents feeding MIRR.
	FinanceRate      decimal.Decimal `yaml:"finance_rate" json:"finance_rate"`
	ReinvestmentRate decimal.Decimal `yaml:"reinvestment_rate" json:"reinvestment_rate"`
}

// CashFlowDetail is one row of the per-period schedule in an IRRResult.
type CashFlowDetail struct {
	Period       int             `json:"period"`
	Label        string          `json:"label,omitempty"`
	Amount       decimal.Decimal `json:"amount"`
	Cumulative   decimal.Decimal `json:"cumulative"`
	PresentValue decimal.Decimal `json:"present_value"`
	CumulativePV decimal.Decimal `json:"cumulative_pv"`
}

// IRRResult aggregates everything the IRR calculator reports.
//
// IRR and MIRR are percents and are nil when mathematically undefined
// (no sign change, zero horizon, zero PV of negative flows). That is a
// valid outcome, not an error; callers render it as "N/A".
type IRRResult struct {
	IRR             *decimal.Decimal `json:"irr"`
	MIRR            *decimal.Decimal `json:"mirr"`
	NPV             decimal.Decimal  `json:"npv"`
	NPVAtZero       decimal.Decimal  `json:"npv_at_zero"`
	TotalInvestment decimal.Decimal  `json:"total_investment"`
	TotalReturns    decimal.Decimal  `json:"total_returns"`
	ProfitLoss      decimal.Decimal  `json:"profit_loss"`
	PaybackPeriod   *decimal.Decimal `json:"payback_period"`
	Schedule        []CashFlowDetail `json:"schedule"`
}
