package compare

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/taxcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// adjustableFields maps scenario adjustment keys (the yaml field names
// of TaxpayerInputs) to accessors on a working copy of the inputs.
var adjustableFields = map[string]func(*domain.TaxpayerInputs) *decimal.Decimal{
	"income_wages":               func(in *domain.TaxpayerInputs) *decimal.Decimal { return &in.Wages },
	"income_interest":            func(in *domain.TaxpayerInputs) *decimal.Decimal { return &in.InterestIncome },
	"income_dividends":           func(in *domain.TaxpayerInputs) *decimal.Decimal { return &in.Dividends },
	"income_dividends_qualified": func(in *domain.TaxpayerInputs) *decimal.Decimal { return &in.QualifiedDividends },
	"income_investment_other":    func(in *domain.TaxpayerInputs) *decimal.Decimal { return &in.OtherInvestmentInc },
	"income_other":               func(in *domain.TaxpayerInputs) *decimal.Decimal { return &in.OtherOrdinaryInc },
	"cg_short_term":              func(in *domain.TaxpayerInputs) *decimal.Decimal { return &in.ShortTermGains },
	"cg_long_term":               func(in *domain.TaxpayerInputs) *decimal.Decimal { return &in.LongTermGains },
	"deduct_charity":             func(in *domain.TaxpayerInputs) *decimal.Decimal { return &in.Charity },
	"deduct_mortgage_interest":   func(in *domain.TaxpayerInputs) *decimal.Decimal { return &in.MortgageInterest },
	"deduct_salt":                func(in *domain.TaxpayerInputs) *decimal.Decimal { return &in.SALTPaid },
	"deduct_medical":             func(in *domain.TaxpayerInputs) *decimal.Decimal { return &in.MedicalExpenses },
	"deduct_investment_interest": func(in *domain.TaxpayerInputs) *decimal.Decimal { return &in.InvestmentInterestExp },
}

// AdjustableFields lists the recognized adjustment keys, for error
// messages and documentation.
func AdjustableFields() []string {
	keys := make([]string, 0, len(adjustableFields))
	for k := range adjustableFields {
		keys = append(keys, k)
	}
	return keys
}

// ApplyAdjustments returns a copy of the base inputs with a scenario's
// deltas applied. "+N" adds, "-N" subtracts, a bare "N" replaces. The
// base case is never mutated, so scenarios sharing it stay independent.
func ApplyAdjustments(base domain.TaxpayerInputs, adjustments map[string]string) (domain.TaxpayerInputs, error) {
	modified := base
	for key, raw := range adjustments {
		accessor, ok := adjustableFields[key]
		if !ok {
			return domain.TaxpayerInputs{}, fmt.Errorf("unknown adjustment field %q", key)
		}

		value := strings.TrimSpace(raw)
		if value == "" {
			return domain.TaxpayerInputs{}, fmt.Errorf("adjustment %q has an empty value", key)
		}

		mode := "replace"
		switch value[0] {
		case '+':
			mode = "add"
			value = value[1:]
		case '-':
			mode = "subtract"
			value = value[1:]
		}

		amount, err := decimal.NewFromString(value)
		if err != nil {
			return domain.TaxpayerInputs{}, fmt.Errorf("adjustment %q: invalid amount %q: %w", key, raw, err)
		}

		field := accessor(&modified)
		switch mode {
		case "add":
			*field = field.Add(amount)
		case "subtract":
			*field = field.Sub(amount)
		default:
			*field = amount
		}
	}
	return modified, nil
}
