package output

import (
	"encoding/json"

	"github.com/fincalc/fincalc/internal/domain"
)

// JSONFormatter renders the report as indented JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(report *domain.Report) ([]byte, error) {
	return json.MarshalIndent(report, "", "  ")
}
