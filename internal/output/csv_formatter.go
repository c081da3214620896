package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/rgehrsitz/taxcalc/internal/domain"
)

// CSVFormatter renders one row per jurisdiction, suitable for pasting
// into a spreadsheet alongside other years.
type CSVFormatter struct{}

// Name implements Formatter
func (CSVFormatter) Name() string { return "csv" }

// Format implements Formatter
func (CSVFormatter) Format(result *domain.YearResult) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	header := []string{"Year", "Jurisdiction", "Total Tax", "Taxable Income", "Effective Rate", "Carryforward Out"}
	if err := writer.Write(header); err != nil {
		return nil, err
	}

	fed := result.Federal
	fedCarryforward := fed.ShortTermLossCarryforward.
		Add(fed.LongTermLossCarryforward).
		Add(fed.InvestmentInterestCarryforward)
	rows := [][]string{
		{
			strconv.Itoa(result.TaxYear), "federal",
			fed.TotalTax.StringFixed(2),
			fed.TaxableIncome.StringFixed(2),
			fed.EffectiveRate.StringFixed(4),
			fedCarryforward.StringFixed(2),
		},
		{
			strconv.Itoa(result.TaxYear), "state",
			result.State.TotalTax.StringFixed(2),
			result.State.TaxableIncome.StringFixed(2),
			result.State.EffectiveRate.StringFixed(4),
			result.State.CapitalLossCarryforward.StringFixed(2),
		},
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
