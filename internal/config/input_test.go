package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fincalc/fincalc/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadIRRInput(t *testing.T) {
	path := writeTemp(t, `
cash_flows:
  - period: 0
    amount: -100000
    label: initial outlay
  - period: 1
    amount: 30000
  - period: 2
    amount: 40000
  - period: 3
    amount: 50000
  - period: 4
    amount: 20000
discount_rate: 10
finance_rate: 8
reinvestment_rate: 8
`)

	input, err := NewInputParser().LoadIRRInput(path)
	require.NoError(t, err)
	require.Len(t, input.CashFlows, 5)
	assert.Equal(t, "initial outlay", input.CashFlows[0].Label)
	assert.True(t, input.CashFlows[0].Amount.Equal(decimal.NewFromInt(-100000)))
	assert.True(t, input.FinanceRate.Equal(decimal.NewFromInt(8)))
}

func TestLoadIRRInput_ValidationFailure(t *testing.T) {
	path := writeTemp(t, `
cash_flows:
  - period: 0
    amount: -100000
`)

	_, err := NewInputParser().LoadIRRInput(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input validation failed")
	assert.Contains(t, err.Error(), "at least two cash flows are required")
}

func TestLoadIRRInput_MissingFile(t *testing.T) {
	_, err := NewInputParser().LoadIRRInput(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestLoadIRRInput_MalformedYAML(t *testing.T) {
	path := writeTemp(t, "cash_flows: [not: closed")
	_, err := NewInputParser().LoadIRRInput(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadMortgageInput(t *testing.T) {
	path := writeTemp(t, `
loan_amount: 360000
annual_rate: 6.5
term_years: 30
start_date: 2025-06-01T00:00:00Z
extra_payments:
  monthly: 200
  one_time:
    - month: 12
      amount: 10000
`)

	input, err := NewInputParser().LoadMortgageInput(path)
	require.NoError(t, err)
	assert.True(t, input.LoanAmount.Equal(decimal.NewFromInt(360000)))
	assert.Equal(t, 30, input.TermYears)
	assert.Equal(t, 2025, input.StartDate.Year())
	require.NotNil(t, input.Extra)
	assert.True(t, input.Extra.Monthly.Equal(decimal.NewFromInt(200)))
	require.Len(t, input.Extra.OneTime, 1)
	assert.Equal(t, 12, input.Extra.OneTime[0].Month)
}

func TestLoadMortgageInput_ValidationFailure(t *testing.T) {
	path := writeTemp(t, `
loan_amount: -5
annual_rate: 6
term_years: 30
`)
	_, err := NewInputParser().LoadMortgageInput(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loan amount must be positive")
}

func TestLoadVALoanInput(t *testing.T) {
	path := writeTemp(t, `
home_price: 400000
down_payment: 20000
annual_rate: 6.5
term_years: 30
service_type: regular
usage: first
finance_fee: true
`)

	input, err := NewInputParser().LoadVALoanInput(path)
	require.NoError(t, err)
	assert.Equal(t, domain.ServiceRegular, input.ServiceType)
	assert.Equal(t, domain.FirstUse, input.Usage)
	assert.True(t, input.FinanceFee)
}

func TestLoadSalaryInput(t *testing.T) {
	path := writeTemp(t, `
conversion:
  amount: 25
  period: hourly
  hours_per_week: 40
  days_per_week: 5
  holidays_per_year: 10
  vacation_days: 15
paycheck:
  annual_gross: 52000
  filing_status: single
  state: TX
  pay_period: biweekly
`)

	input, err := NewInputParser().LoadSalaryInput(path)
	require.NoError(t, err)
	assert.Equal(t, domain.PeriodHourly, input.Conversion.Period)
	require.NotNil(t, input.Paycheck)
	assert.Equal(t, domain.FilingSingle, input.Paycheck.FilingStatus)
	assert.Equal(t, "TX", input.Paycheck.State)
}

func TestLoadSalaryInput_PaycheckOptional(t *testing.T) {
	path := writeTemp(t, `
conversion:
  amount: 52000
  period: annual
  hours_per_week: 40
  days_per_week: 5
`)

	input, err := NewInputParser().LoadSalaryInput(path)
	require.NoError(t, err)
	assert.Nil(t, input.Paycheck)
}

func TestLoadSalaryInput_PaycheckProblemsSurface(t *testing.T) {
	path := writeTemp(t, `
conversion:
  amount: 52000
  period: annual
  hours_per_week: 40
  days_per_week: 5
paycheck:
  annual_gross: 52000
  filing_status: widowed
`)

	_, err := NewInputParser().LoadSalaryInput(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown filing status "widowed"`)
}

func TestLoadEstateTaxInput(t *testing.T) {
	path := writeTemp(t, `
total_assets: 15990000
debts: 500000
marital_status: single
state: WA
`)

	input, err := NewInputParser().LoadEstateTaxInput(path)
	require.NoError(t, err)
	assert.True(t, input.TotalAssets.Equal(decimal.NewFromInt(15_990_000)))
	assert.Equal(t, domain.MaritalSingle, input.MaritalStatus)
	assert.Equal(t, "WA", input.State)
}

func TestLoadSocialSecurityInput(t *testing.T) {
	path := writeTemp(t, `
monthly_benefit_at_fra: 2000
life_expectancy: 90
cola_rate: 2.5
investment_return: 5
`)

	input, err := NewInputParser().LoadSocialSecurityInput(path)
	require.NoError(t, err)
	assert.True(t, input.MonthlyBenefitAtFRA.Equal(decimal.NewFromInt(2000)))
	assert.Equal(t, 90, input.LifeExpectancy)
	assert.True(t, input.COLARate.Equal(decimal.NewFromFloat(2.5)))
}

func TestLoadSocialSecurityInput_ValidationFailure(t *testing.T) {
	path := writeTemp(t, `
monthly_benefit_at_fra: 2000
life_expectancy: 65
`)

	_, err := NewInputParser().LoadSocialSecurityInput(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "life expectancy must be between 71 and 120")
}
