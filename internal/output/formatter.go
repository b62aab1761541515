package output

import (
	"math"
	"strconv"

	"github.com/fincalc/fincalc/internal/domain"
	"github.com/shopspring/decimal"
)

// Formatter renders a report as bytes for one output format.
type Formatter interface {
	Name() string
	Format(report *domain.Report) ([]byte, error)
}

var formatters = []Formatter{
	ConsoleFormatter{},
	JSONFormatter{},
	CSVFormatter{},
}

// GetFormatterByName returns the formatter registered under the given
// name, or nil when none matches.
func GetFormatterByName(name string) Formatter {
	for _, f := range formatters {
		if f.Name() == name {
			return f
		}
	}
	return nil
}

// FormatterNames lists the registered formatter names.
func FormatterNames() []string {
	names := make([]string, 0, len(formatters))
	for _, f := range formatters {
		names = append(names, f.Name())
	}
	return names
}

// FormatCurrency formats a decimal as currency.
func FormatCurrency(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}

// FormatPercent formats a decimal as a percentage.
func FormatPercent(amount decimal.Decimal) string {
	return amount.StringFixed(2) + "%"
}

// FormatOptionalPercent renders nil as N/A, the display form of a
// mathematically-undefined result.
func FormatOptionalPercent(amount *decimal.Decimal) string {
	if amount == nil {
		return "N/A"
	}
	return FormatPercent(*amount)
}

// FormatAge renders a fractional age, with +Inf shown as Never.
func FormatAge(age float64) string {
	if math.IsInf(age, 1) {
		return "Never"
	}
	return strconv.FormatFloat(age, 'f', 1, 64)
}
