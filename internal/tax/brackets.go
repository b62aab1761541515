package tax

import (
	"github.com/shopspring/decimal"
)

// Bracket is one slice of a progressive rate table. Max is nil for the
// open-ended top bracket. A valid table is sorted ascending by Min with
// each Min equal to the previous Max, forming a contiguous partition of
// the non-negative reals.
type Bracket struct {
	Min  decimal.Decimal
	Max  *decimal.Decimal
	Rate decimal.Decimal
}

func bracket(min, max int64, rate float64) Bracket {
	m := decimal.NewFromInt(max)
	return Bracket{Min: decimal.NewFromInt(min), Max: &m, Rate: decimal.NewFromFloat(rate)}
}

func topBracket(min int64, rate float64) Bracket {
	return Bracket{Min: decimal.NewFromInt(min), Rate: decimal.NewFromFloat(rate)}
}

// ApplyBrackets computes marginal/progressive tax: each bracket taxes
// only the slice of the amount that falls inside it, never the whole
// amount at the top rate.
func ApplyBrackets(taxable decimal.Decimal, brackets []Bracket) decimal.Decimal {
	total := decimal.Zero
	for _, b := range brackets {
		if taxable.LessThanOrEqual(b.Min) {
			break
		}
		upper := taxable
		if b.Max != nil && upper.GreaterThan(*b.Max) {
			upper = *b.Max
		}
		slice := upper.Sub(b.Min)
		if slice.IsPositive() {
			total = total.Add(slice.Mul(b.Rate))
		}
	}
	return total
}

// MarginalRate returns the rate of the bracket the given amount falls in,
// or zero for a non-positive amount.
func MarginalRate(taxable decimal.Decimal, brackets []Bracket) decimal.Decimal {
	if taxable.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	rate := decimal.Zero
	for _, b := range brackets {
		if taxable.GreaterThan(b.Min) {
			rate = b.Rate
		}
	}
	return rate
}
