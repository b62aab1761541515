package estatetax

import (
	"strings"

	"github.com/fincalc/fincalc/internal/tax"
	"github.com/shopspring/decimal"
)

// 2025 federal estate tax data. The exemption is per decedent; spousal
// portability doubles it for a married couple.
var (
	federalExemptionSingle2025  = decimal.NewFromInt(13_990_000)
	federalExemptionMarried2025 = decimal.NewFromInt(27_980_000)
)

// federalEstateBrackets2025 taxes the amount above the exemption
// progressively from 18% up to the 40% top rate.
var federalEstateBrackets2025 = []tax.Bracket{
	estateBracket(0, 10_000, 0.18),
	estateBracket(10_000, 20_000, 0.20),
	estateBracket(20_000, 40_000, 0.22),
	estateBracket(40_000, 60_000, 0.24),
	estateBracket(60_000, 80_000, 0.26),
	estateBracket(80_000, 100_000, 0.28),
	estateBracket(100_000, 150_000, 0.30),
	estateBracket(150_000, 250_000, 0.32),
	estateBracket(250_000, 500_000, 0.34),
	estateBracket(500_000, 750_000, 0.37),
	estateBracket(750_000, 1_000_000, 0.39),
	estateTopBracket(1_000_000, 0.40),
}

func estateBracket(min, max int64, rate float64) tax.Bracket {
	m := decimal.NewFromInt(max)
	return tax.Bracket{Min: decimal.NewFromInt(min), Max: &m, Rate: decimal.NewFromFloat(rate)}
}

func estateTopBracket(min int64, rate float64) tax.Bracket {
	return tax.Bracket{Min: decimal.NewFromInt(min), Rate: decimal.NewFromFloat(rate)}
}

// StateEstateRule is one state's 2025 estate tax: its exemption and a
// simplified rate table applied to the taxable excess. States absent from
// the table levy no estate tax.
type StateEstateRule struct {
	Code      string
	Name      string
	Exemption decimal.Decimal
	Brackets  []tax.Bracket
}

// stateEstateRules2025 covers the jurisdictions with an estate tax in
// 2025. Graduated schedules are collapsed to two-step tables (entry rate
// up to $1M of excess, top rate above), which is the same simplification
// the bracket data feeding the original tables used.
var stateEstateRules2025 = []StateEstateRule{
	stateEstate("CT", "Connecticut", 13_990_000, 0.119, 0.12),
	stateEstate("DC", "District of Columbia", 4_873_200, 0.112, 0.16),
	stateEstate("HI", "Hawaii", 5_490_000, 0.10, 0.20),
	stateEstate("IL", "Illinois", 4_000_000, 0.08, 0.16),
	stateEstate("MA", "Massachusetts", 2_000_000, 0.08, 0.16),
	stateEstate("MD", "Maryland", 5_000_000, 0.10, 0.16),
	stateEstate("ME", "Maine", 7_000_000, 0.08, 0.12),
	stateEstate("MN", "Minnesota", 3_000_000, 0.13, 0.16),
	stateEstate("NY", "New York", 7_160_000, 0.10, 0.16),
	stateEstate("OR", "Oregon", 1_000_000, 0.10, 0.16),
	stateEstate("RI", "Rhode Island", 1_802_431, 0.08, 0.16),
	stateEstate("VT", "Vermont", 5_000_000, 0.16, 0.16),
	stateEstate("WA", "Washington", 2_193_000, 0.10, 0.20),
}

func stateEstate(code, name string, exemption int64, entryRate, topRate float64) StateEstateRule {
	million := decimal.NewFromInt(1_000_000)
	return StateEstateRule{
		Code:      code,
		Name:      name,
		Exemption: decimal.NewFromInt(exemption),
		Brackets: []tax.Bracket{
			{Min: decimal.Zero, Max: &million, Rate: decimal.NewFromFloat(entryRate)},
			{Min: million, Rate: decimal.NewFromFloat(topRate)},
		},
	}
}

// StateEstateRuleFor looks up a state's 2025 estate tax rule by
// two-letter code.
func StateEstateRuleFor(code string) (StateEstateRule, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	for _, r := range stateEstateRules2025 {
		if r.Code == code {
			return r, true
		}
	}
	return StateEstateRule{}, false
}
