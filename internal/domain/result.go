package domain

import (
	"github.com/shopspring/decimal"
)

// FederalTaxResult is the immutable outcome of one federal computation
type FederalTaxResult struct {
	TaxYear      int          `json:"taxYear"`
	FilingStatus FilingStatus `json:"filingStatus"`

	OrdinaryTax     decimal.Decimal `json:"ordinaryTax"`
	PreferentialTax decimal.Decimal `json:"preferentialTax"`
	NIITTax         decimal.Decimal `json:"niitTax"`
	TotalTax        decimal.Decimal `json:"totalTax"`

	GrossIncome            decimal.Decimal `json:"grossIncome"`
	AGI                    decimal.Decimal `json:"agi"`
	TaxableIncome          decimal.Decimal `json:"taxableIncome"`
	TaxableOrdinaryIncome  decimal.Decimal `json:"taxableOrdinaryIncome"`
	TaxablePreferential    decimal.Decimal `json:"taxablePreferentialIncome"`
	CapitalLossDeduction   decimal.Decimal `json:"capitalLossDeduction"`
	ItemizedDeductions     decimal.Decimal `json:"itemizedDeductions"`
	StandardDeduction      decimal.Decimal `json:"standardDeduction"`
	DeductionUsed          string          `json:"deductionUsed"`
	EffectiveRate          decimal.Decimal `json:"effectiveRate"`
	EffectiveRateOnGross   decimal.Decimal `json:"effectiveRateOnGross"`
	MarginalOrdinaryRate   decimal.Decimal `json:"marginalOrdinaryRate"`
	EffectivePreferentRate decimal.Decimal `json:"effectivePreferentialRate"`

	// Balances to persist for next year
	ShortTermLossCarryforward      decimal.Decimal `json:"shortTermLossCarryforward"`
	LongTermLossCarryforward       decimal.Decimal `json:"longTermLossCarryforward"`
	InvestmentInterestCarryforward decimal.Decimal `json:"investmentInterestCarryforward"`
}

// StateTaxResult is the immutable outcome of one state computation.
// Part A is ordinary/investment income, Part B short-term gains and
// Part C long-term gains, each taxed at its own flat rate.
type StateTaxResult struct {
	TaxYear      int          `json:"taxYear"`
	FilingStatus FilingStatus `json:"filingStatus"`

	PartATax decimal.Decimal `json:"partATax"`
	PartBTax decimal.Decimal `json:"partBTax"`
	PartCTax decimal.Decimal `json:"partCTax"`
	Surtax   decimal.Decimal `json:"surtax"`
	TotalTax decimal.Decimal `json:"totalTax"`

	TaxableOrdinary  decimal.Decimal `json:"taxableOrdinary"`
	TaxableShortTerm decimal.Decimal `json:"taxableShortTerm"`
	TaxableLongTerm  decimal.Decimal `json:"taxableLongTerm"`
	TaxableIncome    decimal.Decimal `json:"taxableIncome"`
	SurtaxApplies    bool            `json:"surtaxApplies"`

	OrdinaryRate  decimal.Decimal `json:"ordinaryRate"`
	ShortTermRate decimal.Decimal `json:"shortTermRate"`
	LongTermRate  decimal.Decimal `json:"longTermRate"`

	EffectiveRate        decimal.Decimal `json:"effectiveRate"`
	EffectiveRateOnGross decimal.Decimal `json:"effectiveRateOnGross"`

	CapitalLossCarryforward decimal.Decimal `json:"capitalLossCarryforward"`
}

// YearResult bundles both jurisdictions' results for a single tax year
// plus the carryforward state to persist for the following year.
type YearResult struct {
	TaxYear      int               `json:"taxYear"`
	Federal      FederalTaxResult  `json:"federal"`
	State        StateTaxResult    `json:"state"`
	Carryforward CarryforwardState `json:"carryforward"`
}

// TotalTax is the combined federal and state liability
func (yr YearResult) TotalTax() decimal.Decimal {
	return yr.Federal.TotalTax.Add(yr.State.TotalTax)
}
