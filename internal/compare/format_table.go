package compare

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// TableFormatter formats comparison results as a console table
type TableFormatter struct{}

// Format generates a formatted table comparing scenarios
func (tf *TableFormatter) Format(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString("TAX SCENARIO COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 96) + "\n")
	sb.WriteString(fmt.Sprintf("Tax Year: %d\n", compSet.TaxYear))
	sb.WriteString("\n")

	nameWidth := 24
	numWidth := 14

	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %*s %*s\n",
		nameWidth, "Scenario",
		numWidth, "Gross Income",
		numWidth, "Federal Tax",
		numWidth, "State Tax",
		numWidth, "Total Tax",
		numWidth, "Net Income"))
	sb.WriteString(strings.Repeat("-", 96) + "\n")

	sb.WriteString(tf.formatRow(&compSet.BaseResult, nameWidth, numWidth))
	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString(strings.Repeat("-", 96) + "\n")
		for i := range compSet.AlternativeResults {
			sb.WriteString(tf.formatRow(&compSet.AlternativeResults[i], nameWidth, numWidth))
		}
	}
	sb.WriteString(strings.Repeat("=", 96) + "\n")

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString("\nCOMPARISON TO BASE\n")
		sb.WriteString(strings.Repeat("-", 96) + "\n")
		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(fmt.Sprintf("%-*s tax %s%s, net income %s%s\n",
				nameWidth, alt.ScenarioName,
				signOf(alt.TotalTaxDelta), formatMoney(alt.TotalTaxDelta.Abs()),
				signOf(alt.NetIncomeDelta), formatMoney(alt.NetIncomeDelta.Abs())))
		}
	}

	return sb.String()
}

func (tf *TableFormatter) formatRow(r *ComparisonResult, nameWidth, numWidth int) string {
	return fmt.Sprintf("%-*s %*s %*s %*s %*s %*s\n",
		nameWidth, r.ScenarioName,
		numWidth, formatMoney(r.GrossIncome),
		numWidth, formatMoney(r.Result.Federal.TotalTax),
		numWidth, formatMoney(r.Result.State.TotalTax),
		numWidth, formatMoney(r.TotalTax),
		numWidth, formatMoney(r.NetIncome))
}

func signOf(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-"
	}
	return "+"
}

// formatMoney renders a dollar amount with thousands separators
func formatMoney(d decimal.Decimal) string {
	s := d.Round(0).StringFixed(0)
	negative := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)

	out := "$" + strings.Join(parts, ",")
	if negative {
		out = "-" + out
	}
	return out
}
