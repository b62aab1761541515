package tax

import (
	"strings"

	"github.com/shopspring/decimal"
)

// StateRule describes one state's income tax for 2025. A state has either
// a flat rate (possibly zero) or a progressive bracket table; progressive
// entries use single-filer brackets.
type StateRule struct {
	Code     string
	Name     string
	FlatRate decimal.Decimal
	Brackets []Bracket
}

func flatState(code, name string, ratePct float64) StateRule {
	return StateRule{Code: code, Name: name, FlatRate: decimal.NewFromFloat(ratePct / 100)}
}

func noTaxState(code, name string) StateRule {
	return StateRule{Code: code, Name: name}
}

// stateRules2025 is the 2025 state income tax table. Progressive states
// carry their single-filer brackets; the rest are flat or untaxed.
var stateRules2025 = []StateRule{
	noTaxState("AK", "Alaska"),
	noTaxState("FL", "Florida"),
	noTaxState("NV", "Nevada"),
	noTaxState("NH", "New Hampshire"),
	noTaxState("SD", "South Dakota"),
	noTaxState("TN", "Tennessee"),
	noTaxState("TX", "Texas"),
	noTaxState("WA", "Washington"),
	noTaxState("WY", "Wyoming"),

	flatState("AZ", "Arizona", 2.50),
	flatState("CO", "Colorado", 4.40),
	flatState("GA", "Georgia", 5.39),
	flatState("ID", "Idaho", 5.695),
	flatState("IL", "Illinois", 4.95),
	flatState("IN", "Indiana", 3.00),
	flatState("KY", "Kentucky", 4.00),
	flatState("MA", "Massachusetts", 5.00),
	flatState("MI", "Michigan", 4.25),
	flatState("NC", "North Carolina", 4.25),
	flatState("PA", "Pennsylvania", 3.07),
	flatState("UT", "Utah", 4.55),

	{
		Code: "CA", Name: "California",
		Brackets: []Bracket{
			bracket(0, 10_756, 0.01),
			bracket(10_756, 25_499, 0.02),
			bracket(25_499, 40_245, 0.04),
			bracket(40_245, 55_866, 0.06),
			bracket(55_866, 70_606, 0.08),
			bracket(70_606, 360_659, 0.093),
			bracket(360_659, 432_787, 0.103),
			bracket(432_787, 721_314, 0.113),
			topBracket(721_314, 0.123),
		},
	},
	{
		Code: "NY", Name: "New York",
		Brackets: []Bracket{
			bracket(0, 8_500, 0.04),
			bracket(8_500, 11_700, 0.045),
			bracket(11_700, 13_900, 0.0525),
			bracket(13_900, 80_650, 0.055),
			bracket(80_650, 215_400, 0.06),
			bracket(215_400, 1_077_550, 0.0685),
			bracket(1_077_550, 5_000_000, 0.0965),
			bracket(5_000_000, 25_000_000, 0.103),
			topBracket(25_000_000, 0.109),
		},
	},
	{
		Code: "NJ", Name: "New Jersey",
		Brackets: []Bracket{
			bracket(0, 20_000, 0.014),
			bracket(20_000, 35_000, 0.0175),
			bracket(35_000, 40_000, 0.035),
			bracket(40_000, 75_000, 0.05525),
			bracket(75_000, 500_000, 0.0637),
			bracket(500_000, 1_000_000, 0.0897),
			topBracket(1_000_000, 0.1075),
		},
	},
}

// StateRuleFor looks up a state's 2025 income tax rule by two-letter
// code.
func StateRuleFor(code string) (StateRule, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	for _, r := range stateRules2025 {
		if r.Code == code {
			return r, true
		}
	}
	return StateRule{}, false
}

// StateIncomeTax computes 2025 state income tax on wage income. States
// not in the table are treated as untaxed, keeping the function total.
func StateIncomeTax(income decimal.Decimal, stateCode string) decimal.Decimal {
	if income.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	rule, ok := StateRuleFor(stateCode)
	if !ok {
		return decimal.Zero
	}
	if len(rule.Brackets) > 0 {
		return ApplyBrackets(income, rule.Brackets)
	}
	return income.Mul(rule.FlatRate)
}
