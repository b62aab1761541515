package tax

import (
	"testing"

	"github.com/fincalc/fincalc/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFederalIncomeTaxOnTaxable(t *testing.T) {
	tests := []struct {
		name     string
		taxable  float64
		status   domain.FilingStatus
		expected float64
	}{
		{
			// 11925*0.10 + 36550*0.12 + 10775*0.22
			name:     "Single spanning three brackets",
			taxable:  59_250,
			status:   domain.FilingSingle,
			expected: 7_949.00,
		},
		{
			name:     "Zero taxable",
			taxable:  0,
			status:   domain.FilingSingle,
			expected: 0,
		},
		{
			name:     "Negative taxable clamps to zero",
			taxable:  -5_000,
			status:   domain.FilingSingle,
			expected: 0,
		},
		{
			name:     "Exactly at the first bracket top",
			taxable:  11_925,
			status:   domain.FilingSingle,
			expected: 1_192.50,
		},
		{
			name:     "Married joint, first bracket only",
			taxable:  20_000,
			status:   domain.FilingMarriedJoint,
			expected: 2_000,
		},
		{
			// 17000*0.10 + 33000*0.12
			name:     "Head of household, two brackets",
			taxable:  50_000,
			status:   domain.FilingHeadOfHousehold,
			expected: 5_660,
		},
		{
			name:     "Unknown status falls back to single",
			taxable:  11_925,
			status:   domain.FilingStatus("widowed"),
			expected: 1_192.50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FederalIncomeTaxOnTaxable(decimal.NewFromFloat(tt.taxable), tt.status)
			assert.True(t, got.Equal(decimal.NewFromFloat(tt.expected)),
				"expected %.2f, got %s", tt.expected, got.StringFixed(2))
		})
	}
}

func TestFederalIncomeTax_StandardDeduction(t *testing.T) {
	// 74,250 gross less the 15,000 single deduction leaves 59,250 taxable.
	got := FederalIncomeTax(decimal.NewFromInt(74_250), domain.FilingSingle)
	assert.True(t, got.Equal(decimal.NewFromInt(7_949)), "got %s", got.StringFixed(2))

	// Income below the deduction owes nothing.
	assert.True(t, FederalIncomeTax(decimal.NewFromInt(12_000), domain.FilingSingle).IsZero())
}

func TestFederalTax_Monotone(t *testing.T) {
	prevTax := decimal.Zero
	prevRate := decimal.Zero
	for income := int64(0); income <= 800_000; income += 7_919 {
		amount := decimal.NewFromInt(income)
		tax := FederalIncomeTaxOnTaxable(amount, domain.FilingSingle)
		rate := MarginalRate(amount, FederalBrackets(domain.FilingSingle))

		assert.True(t, tax.GreaterThanOrEqual(prevTax), "tax decreased at %d", income)
		assert.True(t, rate.GreaterThanOrEqual(prevRate), "marginal rate decreased at %d", income)
		assert.True(t, tax.LessThanOrEqual(amount), "tax exceeded income at %d", income)
		prevTax, prevRate = tax, rate
	}
}

func TestMarginalRate(t *testing.T) {
	brackets := FederalBrackets(domain.FilingSingle)
	tests := []struct {
		taxable  float64
		expected float64
	}{
		{0, 0},
		{1, 0.10},
		{11_925, 0.10},
		{11_926, 0.12},
		{59_250, 0.22},
		{700_000, 0.37},
	}
	for _, tt := range tests {
		got := MarginalRate(decimal.NewFromFloat(tt.taxable), brackets)
		assert.True(t, got.Equal(decimal.NewFromFloat(tt.expected)),
			"taxable %.0f: expected %.2f, got %s", tt.taxable, tt.expected, got)
	}
}

func TestFICATax(t *testing.T) {
	tests := []struct {
		name     string
		wages    float64
		status   domain.FilingStatus
		expected float64
	}{
		{
			name:     "Below the wage base",
			wages:    100_000,
			status:   domain.FilingSingle,
			expected: 7_650, // 6200 SS + 1450 Medicare
		},
		{
			// SS caps at 176,100: 10,918.20 + 2,900 Medicare, no surtax at
			// exactly the threshold.
			name:     "At the surtax threshold",
			wages:    200_000,
			status:   domain.FilingSingle,
			expected: 13_818.20,
		},
		{
			// 10,918.20 + 4,350 + 0.9% of the 100,000 excess.
			name:     "Above the surtax threshold",
			wages:    300_000,
			status:   domain.FilingSingle,
			expected: 16_168.20,
		},
		{
			// Married threshold is 250,000, so 300,000 only has 50,000 excess.
			name:     "Married joint surtax threshold",
			wages:    300_000,
			status:   domain.FilingMarriedJoint,
			expected: 15_718.20,
		},
		{
			name:     "Zero wages",
			wages:    0,
			status:   domain.FilingSingle,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FICATax(decimal.NewFromFloat(tt.wages), tt.status)
			assert.True(t, got.Equal(decimal.NewFromFloat(tt.expected)),
				"expected %.2f, got %s", tt.expected, got.StringFixed(2))
		})
	}
}

func TestStateIncomeTax(t *testing.T) {
	tests := []struct {
		name     string
		income   float64
		state    string
		expected float64
		delta    float64
	}{
		{"No-tax state", 59_250, "TX", 0, 0},
		{"Flat state", 59_250, "PA", 1_818.98, 0.01},
		{"Flat state lowercase code", 59_250, "pa", 1_818.98, 0.01},
		{"Unknown state treated as untaxed", 59_250, "ZZ", 0, 0},
		{"Zero income", 0, "CA", 0, 0},
		// 10756*0.01 + 14743*0.02 + 4501*0.04 = 582.46
		{"Progressive California", 30_000, "CA", 582.46, 0.01},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StateIncomeTax(decimal.NewFromFloat(tt.income), tt.state)
			assert.InDelta(t, tt.expected, got.InexactFloat64(), tt.delta)
		})
	}
}

func TestStateRuleFor(t *testing.T) {
	rule, ok := StateRuleFor("ny")
	assert.True(t, ok)
	assert.Equal(t, "New York", rule.Name)
	assert.NotEmpty(t, rule.Brackets)

	_, ok = StateRuleFor("XX")
	assert.False(t, ok)
}

func TestStateBracketTables_Contiguous(t *testing.T) {
	for _, rule := range stateRules2025 {
		if len(rule.Brackets) == 0 {
			continue
		}
		assert.True(t, rule.Brackets[0].Min.IsZero(), "%s must start at zero", rule.Code)
		for i := 1; i < len(rule.Brackets); i++ {
			prev := rule.Brackets[i-1]
			assert.NotNil(t, prev.Max, "%s bracket %d: only the last bracket may be open", rule.Code, i-1)
			assert.True(t, rule.Brackets[i].Min.Equal(*prev.Max),
				"%s bracket %d must start where the previous ends", rule.Code, i)
		}
		assert.Nil(t, rule.Brackets[len(rule.Brackets)-1].Max, "%s top bracket must be open-ended", rule.Code)
	}
}
