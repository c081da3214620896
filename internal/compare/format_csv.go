package compare

import (
	"encoding/csv"
	"strings"
)

// CSVFormatter formats comparison results as CSV
type CSVFormatter struct{}

// Format generates CSV output for comparison results
func (cf *CSVFormatter) Format(compSet *ComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Scenario",
		"Type",
		"Gross Income",
		"Federal Tax",
		"State Tax",
		"Total Tax",
		"Net Income",
		"Tax Diff from Base",
		"Net Income Diff from Base",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	if err := writer.Write(cf.formatRow(&compSet.BaseResult, "base")); err != nil {
		return "", err
	}
	for i := range compSet.AlternativeResults {
		if err := writer.Write(cf.formatRow(&compSet.AlternativeResults[i], "alternative")); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func (cf *CSVFormatter) formatRow(r *ComparisonResult, kind string) []string {
	return []string{
		r.ScenarioName,
		kind,
		r.GrossIncome.StringFixed(2),
		r.Result.Federal.TotalTax.StringFixed(2),
		r.Result.State.TotalTax.StringFixed(2),
		r.TotalTax.StringFixed(2),
		r.NetIncome.StringFixed(2),
		r.TotalTaxDelta.StringFixed(2),
		r.NetIncomeDelta.StringFixed(2),
	}
}
