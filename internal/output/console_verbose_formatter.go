package output

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/taxcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// ConsoleVerboseFormatter renders the full per-jurisdiction breakdown,
// including carryforwards to persist for next year.
type ConsoleVerboseFormatter struct{}

// Name implements Formatter
func (ConsoleVerboseFormatter) Name() string { return "console-verbose" }

// Format implements Formatter
func (ConsoleVerboseFormatter) Format(result *domain.YearResult) ([]byte, error) {
	var sb strings.Builder

	fed := result.Federal
	state := result.State

	sb.WriteString(fmt.Sprintf("%d - FEDERAL INCOME TAX\n", result.TaxYear))
	sb.WriteString(strings.Repeat("=", 70) + "\n")
	sb.WriteString(fmt.Sprintf("Income Tax: %s  [Taxable Income: %s]\n",
		FormatCurrency(fed.TotalTax), FormatCurrency(fed.TaxableIncome)))
	sb.WriteString(fmt.Sprintf("  %-36s %14s  [%s]\n", "Ordinary Income Tax:",
		FormatCurrency(fed.OrdinaryTax), FormatCurrency(fed.TaxableOrdinaryIncome)))
	sb.WriteString(fmt.Sprintf("  %-36s %14s  [%s at %s]\n", "Preferential (LTCG/QDI) Tax:",
		FormatCurrency(fed.PreferentialTax), FormatCurrency(fed.TaxablePreferential),
		FormatPercentage(fed.EffectivePreferentRate)))
	sb.WriteString(fmt.Sprintf("  %-36s %14s\n", "Net Investment Income Tax:", FormatCurrency(fed.NIITTax)))
	sb.WriteString(fmt.Sprintf("  %-36s %14s\n", "AGI:", FormatCurrency(fed.AGI)))
	sb.WriteString(fmt.Sprintf("  %-36s %14s  (%s)\n", "Deduction Applied:",
		FormatCurrency(deductionApplied(fed)), fed.DeductionUsed))
	sb.WriteString(fmt.Sprintf("  %-36s %14s\n", "Capital Loss vs Ordinary Income:", FormatCurrency(fed.CapitalLossDeduction)))
	sb.WriteString(fmt.Sprintf("  %-36s %14s\n", "Effective Tax Rate:", FormatPercentage(fed.EffectiveRate)))
	sb.WriteString(fmt.Sprintf("  %-36s %14s\n", "Effective Tax Rate (Gross):", FormatPercentage(fed.EffectiveRateOnGross)))
	sb.WriteString(fmt.Sprintf("  %-36s %14s\n", "Marginal Tax Rate:", FormatPercentage(fed.MarginalOrdinaryRate)))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  %-36s %14s\n", "Investment Interest Carryforward:",
		FormatCurrency(fed.InvestmentInterestCarryforward)))
	sb.WriteString(fmt.Sprintf("  %-36s %14s\n", "Short-Term Loss Carryforward:",
		FormatCurrency(fed.ShortTermLossCarryforward)))
	sb.WriteString(fmt.Sprintf("  %-36s %14s\n", "Long-Term Loss Carryforward:",
		FormatCurrency(fed.LongTermLossCarryforward)))

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("%d - STATE INCOME TAX\n", result.TaxYear))
	sb.WriteString(strings.Repeat("=", 70) + "\n")
	sb.WriteString(fmt.Sprintf("Income Tax: %s  [Taxable Income: %s]\n",
		FormatCurrency(state.TotalTax), FormatCurrency(state.TaxableIncome)))
	sb.WriteString(fmt.Sprintf("  %-36s %14s  [%s at %s]\n", "Part A (Ordinary) Tax:",
		FormatCurrency(state.PartATax), FormatCurrency(state.TaxableOrdinary), FormatPercentage(state.OrdinaryRate)))
	sb.WriteString(fmt.Sprintf("  %-36s %14s  [%s at %s]\n", "Part B (Short-Term Gains) Tax:",
		FormatCurrency(state.PartBTax), FormatCurrency(state.TaxableShortTerm), FormatPercentage(state.ShortTermRate)))
	sb.WriteString(fmt.Sprintf("  %-36s %14s  [%s at %s]\n", "Part C (Long-Term Gains) Tax:",
		FormatCurrency(state.PartCTax), FormatCurrency(state.TaxableLongTerm), FormatPercentage(state.LongTermRate)))
	if state.SurtaxApplies {
		sb.WriteString(fmt.Sprintf("  %-36s %14s\n", "Surtax:", FormatCurrency(state.Surtax)))
	}
	sb.WriteString(fmt.Sprintf("  %-36s %14s\n", "Capital Loss Carryforward:",
		FormatCurrency(state.CapitalLossCarryforward)))

	sb.WriteString("\n")
	total := result.TotalTax()
	net := fed.GrossIncome.Sub(total)
	sb.WriteString(fmt.Sprintf("%d TOTALS\n", result.TaxYear))
	sb.WriteString(fmt.Sprintf("Gross: %s\n", FormatCurrency(fed.GrossIncome)))
	sb.WriteString(fmt.Sprintf("Taxes: %s", FormatCurrency(total)))
	if fed.GrossIncome.IsPositive() {
		sb.WriteString(fmt.Sprintf("  [%s]", FormatPercentage(total.Div(fed.GrossIncome))))
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Net:   %s\n", FormatCurrency(net)))

	return []byte(sb.String()), nil
}

func deductionApplied(fed domain.FederalTaxResult) decimal.Decimal {
	if fed.DeductionUsed == "itemized" {
		return fed.ItemizedDeductions
	}
	return fed.StandardDeduction
}
