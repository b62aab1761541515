package domain

import (
	"github.com/shopspring/decimal"
)

// MaritalStatus determines the available federal estate exemption
// (portability doubles it for married couples).
type MaritalStatus string

const (
	MaritalSingle  MaritalStatus = "single"
	MaritalMarried MaritalStatus = "married"
)

// EstateTaxInput is the input record for the estate tax calculator.
type EstateTaxInput struct {
	TotalAssets         decimal.Decimal `yaml:"total_assets" json:"total_assets"`
	Debts               decimal.Decimal `yaml:"debts" json:"debts"`
	AdminExpenses       decimal.Decimal `yaml:"admin_expenses" json:"admin_expenses"`
	MaritalDeduction    decimal.Decimal `yaml:"marital_deduction" json:"marital_deduction"`
	CharitableDeduction decimal.Decimal `yaml:"charitable_deduction" json:"charitable_deduction"`
	// LifetimeGifts are taxable gifts already made; they consume the
	// exemption but are not part of the probate estate.
	LifetimeGifts decimal.Decimal `yaml:"lifetime_gifts" json:"lifetime_gifts"`
	MaritalStatus MaritalStatus   `yaml:"marital_status" json:"marital_status"`
	State         string          `yaml:"state" json:"state"`
}

// EstateTaxResults is the estate tax breakdown.
type EstateTaxResults struct {
	GrossEstate     decimal.Decimal `json:"gross_estate"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	NetEstate       decimal.Decimal `json:"net_estate"`

	FederalExemption decimal.Decimal `json:"federal_exemption"`
	FederalTaxable   decimal.Decimal `json:"federal_taxable"`
	FederalTax       decimal.Decimal `json:"federal_tax"`

	StateExemption decimal.Decimal `json:"state_exemption"`
	StateTaxable   decimal.Decimal `json:"state_taxable"`
	StateTax       decimal.Decimal `json:"state_tax"`

	TotalTax      decimal.Decimal `json:"total_tax"`
	EffectiveRate decimal.Decimal `json:"effective_rate"`
	NetToHeirs    decimal.Decimal `json:"net_to_heirs"`
}
