package compare

import (
	"fmt"

	"github.com/rgehrsitz/taxcalc/internal/calculation"
	"github.com/rgehrsitz/taxcalc/internal/domain"
)

// CompareEngine runs the calculation engine once per scenario. Every run
// gets the base case's carryforward-in; hypothetical scenarios never
// leak carryforward mutations into each other or back into the base.
type CompareEngine struct {
	CalcEngine *calculation.Engine
}

// NewCompareEngine creates a comparison engine over a calculation engine
func NewCompareEngine(calcEngine *calculation.Engine) *CompareEngine {
	return &CompareEngine{CalcEngine: calcEngine}
}

// Compare computes the base case and every scenario in the configuration
func (ce *CompareEngine) Compare(config *domain.Configuration, cf domain.CarryforwardState) (*ComparisonSet, error) {
	baseResult, err := ce.CalcEngine.RunYear(config.Inputs, cf)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate base case: %w", err)
	}
	base := makeResult("base", "", baseResult)

	alternatives := make([]ComparisonResult, 0, len(config.Scenarios))
	for i := range config.Scenarios {
		scenario := &config.Scenarios[i]

		inputs, err := ApplyAdjustments(config.Inputs, scenario.Adjustments)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", scenario.Name, err)
		}

		result, err := ce.CalcEngine.RunYear(inputs, cf)
		if err != nil {
			return nil, fmt.Errorf("failed to calculate scenario %q: %w", scenario.Name, err)
		}

		alt := makeResult(scenario.Name, scenario.Description, result)
		alt.TotalTaxDelta = alt.TotalTax.Sub(base.TotalTax)
		alt.NetIncomeDelta = alt.NetIncome.Sub(base.NetIncome)
		alternatives = append(alternatives, alt)
	}

	return &ComparisonSet{
		TaxYear:            config.Inputs.TaxYear,
		BaseResult:         base,
		AlternativeResults: alternatives,
	}, nil
}

func makeResult(name, description string, result *domain.YearResult) ComparisonResult {
	gross := result.Federal.GrossIncome
	total := result.TotalTax()
	return ComparisonResult{
		ScenarioName: name,
		Description:  description,
		Result:       result,
		GrossIncome:  gross,
		TotalTax:     total,
		NetIncome:    gross.Sub(total),
	}
}
