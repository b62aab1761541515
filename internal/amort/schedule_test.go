package amort

import (
	"testing"
	"time"

	"github.com/fincalc/fincalc/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseInput(amount float64, ratePct float64, years int) *domain.MortgageInput {
	return &domain.MortgageInput{
		LoanAmount:    decimal.NewFromFloat(amount),
		AnnualRatePct: decimal.NewFromFloat(ratePct),
		TermYears:     years,
		StartDate:     time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestMonthlyPayment(t *testing.T) {
	tests := []struct {
		name      string
		principal float64
		ratePct   float64
		years     int
		expected  float64
		delta     float64
	}{
		{"Zero rate divides evenly", 360000, 0, 30, 1000, 0},
		{"Standard 30-year at 6 percent", 100000, 6, 30, 599.55, 0.01},
		{"Standard 15-year at 5 percent", 250000, 5, 15, 1976.98, 0.01},
		{"Zero principal", 0, 6, 30, 0, 0},
		{"Zero term", 100000, 6, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MonthlyPayment(decimal.NewFromFloat(tt.principal), decimal.NewFromFloat(tt.ratePct), tt.years)
			assert.InDelta(t, tt.expected, got.InexactFloat64(), tt.delta)
		})
	}
}

func TestSchedule_ZeroRate(t *testing.T) {
	rows := Schedule(baseInput(360000, 0, 30))
	require.Len(t, rows, 360)

	for _, row := range rows {
		assert.True(t, row.Payment.Equal(decimal.NewFromInt(1000)), "month %d payment %s", row.Month, row.Payment)
		assert.True(t, row.Interest.IsZero())
	}
	assert.True(t, rows[359].Balance.IsZero())
}

func TestSchedule_Closure(t *testing.T) {
	input := baseInput(100000, 6, 30)
	rows := Schedule(input)
	require.Len(t, rows, 360)

	paid := decimal.Zero
	prevBalance := input.LoanAmount
	for _, row := range rows {
		paid = paid.Add(row.Principal).Add(row.Extra)
		assert.True(t, row.Payment.Equal(row.Principal.Add(row.Interest)),
			"month %d payment must split into principal and interest", row.Month)
		assert.True(t, row.Balance.LessThanOrEqual(prevBalance),
			"balance must never increase (month %d)", row.Month)
		prevBalance = row.Balance
	}

	assert.InDelta(t, 100000, paid.InexactFloat64(), 0.01, "principal paid must equal the loan")
	assert.InDelta(t, 0, rows[359].Balance.InexactFloat64(), 0.01)
	assert.Equal(t, input.StartDate.AddDate(0, 359, 0), rows[359].Date)
}

func TestSchedule_MonthlyExtraShortensTerm(t *testing.T) {
	input := baseInput(100000, 6, 30)
	input.Extra = &domain.ExtraPayments{Monthly: decimal.NewFromInt(200)}

	result := Calculate(input)
	require.NotEmpty(t, result.Schedule)

	assert.Less(t, len(result.Schedule), 360)
	assert.Greater(t, result.Summary.MonthsSaved, 0)
	assert.True(t, result.Summary.InterestSaved.IsPositive(),
		"interest saved %s", result.Summary.InterestSaved.StringFixed(2))

	last := result.Schedule[len(result.Schedule)-1]
	assert.InDelta(t, 100000, last.CumulativePrincipal.InexactFloat64(), 0.01)
	assert.InDelta(t, 0, last.Balance.InexactFloat64(), 0.01)
}

func TestSchedule_YearlyExtraOnAnniversaries(t *testing.T) {
	input := baseInput(100000, 6, 30)
	input.Extra = &domain.ExtraPayments{Yearly: decimal.NewFromInt(1000), YearlyStartMonth: 12}

	rows := Schedule(input)
	require.NotEmpty(t, rows)

	for _, row := range rows[:len(rows)-1] {
		if (row.Month-12)%12 == 0 && row.Month >= 12 {
			assert.True(t, row.Extra.Equal(decimal.NewFromInt(1000)), "month %d", row.Month)
		} else {
			assert.True(t, row.Extra.IsZero(), "month %d", row.Month)
		}
	}
}

func TestSchedule_OneTimePayment(t *testing.T) {
	input := baseInput(100000, 6, 30)
	input.Extra = &domain.ExtraPayments{
		OneTime: []domain.OneTimePayment{{Month: 12, Amount: decimal.NewFromInt(10000)}},
	}

	rows := Schedule(input)
	require.Greater(t, len(rows), 12)
	assert.True(t, rows[11].Extra.Equal(decimal.NewFromInt(10000)))
	assert.Less(t, len(rows), 360)
}

func TestSchedule_ExtraNeverOverpays(t *testing.T) {
	// A huge recurring extra retires the loan almost immediately; the final
	// balance must land on zero, never below it.
	input := baseInput(10000, 6, 30)
	input.Extra = &domain.ExtraPayments{Monthly: decimal.NewFromInt(6000)}

	rows := Schedule(input)
	require.NotEmpty(t, rows)
	last := rows[len(rows)-1]
	assert.True(t, last.Balance.IsZero(), "final balance %s", last.Balance)
	assert.InDelta(t, 10000, last.CumulativePrincipal.InexactFloat64(), 0.01)
}

func TestSchedule_Degenerate(t *testing.T) {
	tests := []struct {
		name  string
		input *domain.MortgageInput
	}{
		{"Zero loan", baseInput(0, 6, 30)},
		{"Negative loan", baseInput(-5000, 6, 30)},
		{"Zero term", baseInput(100000, 6, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, Schedule(tt.input))
			result := Calculate(tt.input)
			assert.True(t, result.Summary.MonthlyPayment.IsZero())
			assert.Empty(t, result.Schedule)
		})
	}
}

func TestValidateInputs(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*domain.MortgageInput)
		problems []string
	}{
		{
			name:     "Valid input",
			mutate:   func(*domain.MortgageInput) {},
			problems: nil,
		},
		{
			name:     "Non-positive loan",
			mutate:   func(in *domain.MortgageInput) { in.LoanAmount = decimal.Zero },
			problems: []string{"loan amount must be positive"},
		},
		{
			name:     "Negative rate",
			mutate:   func(in *domain.MortgageInput) { in.AnnualRatePct = decimal.NewFromInt(-1) },
			problems: []string{"interest rate cannot be negative"},
		},
		{
			name:     "Term too long",
			mutate:   func(in *domain.MortgageInput) { in.TermYears = 51 },
			problems: []string{"loan term above 50 years is not supported"},
		},
		{
			name: "Bad one-time payment",
			mutate: func(in *domain.MortgageInput) {
				in.Extra = &domain.ExtraPayments{
					OneTime: []domain.OneTimePayment{{Month: 0, Amount: decimal.NewFromInt(-5)}},
				}
			},
			problems: []string{
				"one-time payment month 0 is before the first payment",
				"one-time payment in month 0 cannot be negative",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := baseInput(100000, 6, 30)
			tt.mutate(input)
			got := ValidateInputs(input)
			if len(tt.problems) == 0 {
				assert.Empty(t, got)
				return
			}
			for _, p := range tt.problems {
				assert.Contains(t, got, p)
			}
		})
	}
}
