package socialsecurity

import (
	"math"
	"testing"

	"github.com/fincalc/fincalc/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func zeroGrowthInput(fra float64, lifeExpectancy int) *domain.SocialSecurityInput {
	return &domain.SocialSecurityInput{
		MonthlyBenefitAtFRA: decimal.NewFromFloat(fra),
		LifeExpectancy:      lifeExpectancy,
	}
}

func TestBenefitPercent(t *testing.T) {
	tests := []struct {
		age      int
		expected float64
	}{
		{62, 70},
		{63, 75},
		{64, 80},
		{65, 86.667},
		{66, 93.333},
		{67, 100},
		{68, 108},
		{69, 116},
		{70, 124},
		{75, 124}, // no credit past 70
		{60, 0},   // not yet claimable
	}
	for _, tt := range tests {
		got := BenefitPercent(tt.age)
		assert.True(t, got.Equal(decimal.NewFromFloat(tt.expected)),
			"age %d: expected %.3f, got %s", tt.age, tt.expected, got)
	}
}

func TestAnalyze_ZeroGrowth(t *testing.T) {
	input := zeroGrowthInput(2000, 90)
	result := Analyze(input)
	require.Len(t, result.Analyses, 9)

	byAge := make(map[int]domain.ClaimAgeAnalysis)
	for _, a := range result.Analyses {
		byAge[a.ClaimAge] = a
	}

	// 70% of 2,000 over 28 years against 124% over 20 years.
	assert.True(t, byAge[62].MonthlyBenefit.Equal(decimal.NewFromInt(1_400)))
	assert.True(t, byAge[62].TotalByLifeExpectancy.Equal(decimal.NewFromInt(470_400)))
	assert.True(t, byAge[70].MonthlyBenefit.Equal(decimal.NewFromInt(2_480)))
	assert.True(t, byAge[70].TotalByLifeExpectancy.Equal(decimal.NewFromInt(595_200)))

	// With no discounting present value equals the nominal total, so the
	// long life expectancy favors delaying to 70.
	assert.True(t, byAge[70].PresentValue.Equal(byAge[70].TotalByLifeExpectancy))
	assert.True(t, byAge[70].FutureValue.Equal(byAge[70].TotalByLifeExpectancy))
	assert.Equal(t, 70, result.IdealAge)
}

func TestAnalyze_ShortLifeExpectancyFavorsClaimingEarly(t *testing.T) {
	result := Analyze(zeroGrowthInput(2000, 75))
	assert.Equal(t, 62, result.IdealAge)
}

func TestAnalyze_HighDiscountRateFavorsClaimingEarly(t *testing.T) {
	input := zeroGrowthInput(2000, 85)
	input.InvestmentReturn = decimal.NewFromInt(10)
	result := Analyze(input)
	assert.Equal(t, 62, result.IdealAge)
}

func TestAnalyze_COLACompoundsFromSixtyTwo(t *testing.T) {
	input := zeroGrowthInput(2000, 90)
	input.COLARate = decimal.NewFromInt(2)

	result := Analyze(input)
	byAge := make(map[int]domain.ClaimAgeAnalysis)
	for _, a := range result.Analyses {
		byAge[a.ClaimAge] = a
	}

	// Delaying to 70 keeps the eight COLA years: 2,480 * 1.02^8.
	expected := 2480 * math.Pow(1.02, 8)
	assert.InDelta(t, expected, byAge[70].MonthlyBenefit.InexactFloat64(), 0.01)
	assert.True(t, byAge[62].MonthlyBenefit.Equal(decimal.NewFromInt(1_400)),
		"claiming at 62 starts before any COLA accrues")
}

func TestAnalyze_BreakEvenPairs(t *testing.T) {
	result := Analyze(zeroGrowthInput(2000, 90))
	require.Len(t, result.BreakEven, 3)

	assert.Equal(t, 62, result.BreakEven[0].EarlyAge)
	assert.Equal(t, 67, result.BreakEven[0].LateAge)
	assert.Equal(t, 62, result.BreakEven[1].EarlyAge)
	assert.Equal(t, 70, result.BreakEven[1].LateAge)
	assert.Equal(t, 67, result.BreakEven[2].EarlyAge)
	assert.Equal(t, 70, result.BreakEven[2].LateAge)
}

func TestBreakEvenAge(t *testing.T) {
	tests := []struct {
		name     string
		input    *domain.SocialSecurityInput
		earlyAge int
		lateAge  int
		expected float64
		delta    float64
	}{
		{
			// 2,480/mo catches 1,400/mo a little after age 80.
			name:     "62 versus 70 with a long horizon",
			input:    zeroGrowthInput(2000, 90),
			earlyAge: 62,
			lateAge:  70,
			expected: 80.42,
			delta:    0.05,
		},
		{
			name:     "62 versus 67",
			input:    zeroGrowthInput(2000, 90),
			earlyAge: 62,
			lateAge:  67,
			expected: 78.67,
			delta:    0.05,
		},
		{
			name:     "Degenerate equal ages",
			input:    zeroGrowthInput(2000, 90),
			earlyAge: 67,
			lateAge:  67,
			expected: 67,
			delta:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BreakEvenAge(tt.input, tt.earlyAge, tt.lateAge)
			assert.InDelta(t, tt.expected, got, tt.delta)
		})
	}
}

func TestBreakEvenAge_NeverWithinHorizon(t *testing.T) {
	// Dying at 75 the late claim never catches up.
	got := BreakEvenAge(zeroGrowthInput(2000, 75), 62, 70)
	assert.True(t, math.IsInf(got, 1), "expected +Inf, got %f", got)
}

func TestValidateInputs(t *testing.T) {
	valid := domain.SocialSecurityInput{
		MonthlyBenefitAtFRA: decimal.NewFromInt(2000),
		LifeExpectancy:      85,
		COLARate:            decimal.NewFromInt(2),
		InvestmentReturn:    decimal.NewFromInt(5),
	}

	t.Run("Valid input", func(t *testing.T) {
		input := valid
		assert.Empty(t, ValidateInputs(&input))
	})

	tests := []struct {
		name    string
		mutate  func(*domain.SocialSecurityInput)
		problem string
	}{
		{"Zero benefit", func(in *domain.SocialSecurityInput) { in.MonthlyBenefitAtFRA = decimal.Zero }, "monthly benefit at full retirement age must be positive"},
		{"Life expectancy at the claim ceiling", func(in *domain.SocialSecurityInput) { in.LifeExpectancy = 70 }, "life expectancy must be between 71 and 120"},
		{"Life expectancy absurdly high", func(in *domain.SocialSecurityInput) { in.LifeExpectancy = 121 }, "life expectancy must be between 71 and 120"},
		{"Negative COLA", func(in *domain.SocialSecurityInput) { in.COLARate = decimal.NewFromInt(-1) }, "COLA rate must be between 0% and 10%"},
		{"Return too high", func(in *domain.SocialSecurityInput) { in.InvestmentReturn = decimal.NewFromInt(25) }, "investment return must be between 0% and 20%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := valid
			tt.mutate(&input)
			assert.Contains(t, ValidateInputs(&input), tt.problem)
		})
	}
}
