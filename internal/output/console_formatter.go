package output

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/taxcalc/internal/domain"
)

// ConsoleFormatter renders a compact single-year summary
type ConsoleFormatter struct{}

// Name implements Formatter
func (ConsoleFormatter) Name() string { return "console" }

// Format implements Formatter
func (ConsoleFormatter) Format(result *domain.YearResult) ([]byte, error) {
	var sb strings.Builder

	fed := result.Federal
	state := result.State

	sb.WriteString(fmt.Sprintf("%d TAX SUMMARY (%s)\n", result.TaxYear, fed.FilingStatus))
	sb.WriteString(strings.Repeat("=", 60) + "\n")
	sb.WriteString(fmt.Sprintf("Federal Tax: %-14s [Taxable Income: %s]\n",
		FormatCurrency(fed.TotalTax), FormatCurrency(fed.TaxableIncome)))
	sb.WriteString(fmt.Sprintf("State Tax:   %-14s [Taxable Income: %s]\n",
		FormatCurrency(state.TotalTax), FormatCurrency(state.TaxableIncome)))
	sb.WriteString(strings.Repeat("-", 60) + "\n")

	total := result.TotalTax()
	net := fed.GrossIncome.Sub(total)
	sb.WriteString(fmt.Sprintf("Gross: %s\n", FormatCurrency(fed.GrossIncome)))
	sb.WriteString(fmt.Sprintf("Taxes: %s", FormatCurrency(total)))
	if fed.GrossIncome.IsPositive() {
		sb.WriteString(fmt.Sprintf("  [%s]", FormatPercentage(total.Div(fed.GrossIncome))))
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Net:   %s\n", FormatCurrency(net)))

	return []byte(sb.String()), nil
}
