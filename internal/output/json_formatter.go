package output

import (
	"encoding/json"

	"github.com/rgehrsitz/taxcalc/internal/domain"
)

// JSONFormatter renders the full YearResult as indented JSON
type JSONFormatter struct{}

// Name implements Formatter
func (JSONFormatter) Name() string { return "json" }

// Format implements Formatter
func (JSONFormatter) Format(result *domain.YearResult) ([]byte, error) {
	return json.MarshalIndent(result, "", "  ")
}
