package compare

import (
	"github.com/rgehrsitz/taxcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// ComparisonResult holds one scenario's outcome plus its deltas against
// the base case. Deltas on the base result itself are zero.
type ComparisonResult struct {
	ScenarioName string             `json:"scenarioName"`
	Description  string             `json:"description,omitempty"`
	Result       *domain.YearResult `json:"result"`

	GrossIncome decimal.Decimal `json:"grossIncome"`
	TotalTax    decimal.Decimal `json:"totalTax"`
	NetIncome   decimal.Decimal `json:"netIncome"`

	TotalTaxDelta  decimal.Decimal `json:"totalTaxDelta"`
	NetIncomeDelta decimal.Decimal `json:"netIncomeDelta"`
}

// ComparisonSet bundles the base case with all alternative scenarios
type ComparisonSet struct {
	TaxYear            int                `json:"taxYear"`
	BaseResult         ComparisonResult   `json:"baseResult"`
	AlternativeResults []ComparisonResult `json:"alternativeResults"`
}
