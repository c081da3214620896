package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// FilingStatus selects which bracket/threshold column applies
type FilingStatus string

const (
	FilingSingle          FilingStatus = "single"
	FilingMarriedJoint    FilingStatus = "married_joint"
	FilingMarriedSeparate FilingStatus = "married_separate"
	FilingHeadOfHousehold FilingStatus = "head_of_household"
)

// ParseFilingStatus converts a config string into a FilingStatus
func ParseFilingStatus(s string) (FilingStatus, error) {
	switch FilingStatus(s) {
	case FilingSingle, FilingMarriedJoint, FilingMarriedSeparate, FilingHeadOfHousehold:
		return FilingStatus(s), nil
	}
	return "", fmt.Errorf("unrecognized filing status %q (expected single, married_joint, married_separate or head_of_household)", s)
}

// TaxpayerInputs holds one tax year's raw figures. Monetary fields are
// signed; capital gains fields may be negative for losses. Absent fields
// unmarshal to zero, which the engine treats as legitimate input.
type TaxpayerInputs struct {
	TaxYear      int          `yaml:"tax_year" json:"taxYear"`
	FilingStatus FilingStatus `yaml:"filing_status" json:"filingStatus"`

	// Income
	Wages               decimal.Decimal `yaml:"income_wages" json:"wages"`
	InterestIncome      decimal.Decimal `yaml:"income_interest" json:"interestIncome"`
	Dividends           decimal.Decimal `yaml:"income_dividends" json:"dividends"`
	QualifiedDividends  decimal.Decimal `yaml:"income_dividends_qualified" json:"qualifiedDividends"`
	OtherInvestmentInc  decimal.Decimal `yaml:"income_investment_other" json:"otherInvestmentIncome"`
	OtherOrdinaryInc    decimal.Decimal `yaml:"income_other" json:"otherOrdinaryIncome"`
	ShortTermGains      decimal.Decimal `yaml:"cg_short_term" json:"shortTermGains"`
	LongTermGains       decimal.Decimal `yaml:"cg_long_term" json:"longTermGains"`

	// Itemized deduction components
	Charity               decimal.Decimal `yaml:"deduct_charity" json:"charity"`
	MortgageInterest      decimal.Decimal `yaml:"deduct_mortgage_interest" json:"mortgageInterest"`
	MortgageRate          decimal.Decimal `yaml:"deduct_mortgage_rate" json:"mortgageRate"`
	MortgageOriginYear    int             `yaml:"deduct_mortgage_origin_year" json:"mortgageOriginYear"`
	SALTPaid              decimal.Decimal `yaml:"deduct_salt" json:"saltPaid"`
	MedicalExpenses       decimal.Decimal `yaml:"deduct_medical" json:"medicalExpenses"`
	InvestmentInterestExp decimal.Decimal `yaml:"deduct_investment_interest" json:"investmentInterestExpense"`

	// ElectInvestmentIncomeLTCG would treat long-term gains as investment
	// income for the investment-interest limitation (IRC 163(d)(4)(B)
	// election). Not implemented; validation rejects it when set so the
	// option is never silently ignored.
	ElectInvestmentIncomeLTCG bool `yaml:"elect_investment_income_ltcg" json:"electInvestmentIncomeLtcg"`
}

// CarryforwardState holds the four balances that link consecutive annual
// computations. All balances are non-negative loss/expense amounts; a
// negative incoming balance fails validation.
type CarryforwardState struct {
	FederalShortTermLoss      decimal.Decimal `yaml:"federal_short_term_loss" json:"federalShortTermLoss"`
	FederalLongTermLoss       decimal.Decimal `yaml:"federal_long_term_loss" json:"federalLongTermLoss"`
	FederalInvestmentInterest decimal.Decimal `yaml:"federal_investment_interest" json:"federalInvestmentInterest"`
	StateCapitalLoss          decimal.Decimal `yaml:"state_capital_loss" json:"stateCapitalLoss"`
}

// ZeroCarryforward returns the state used for a first computation
func ZeroCarryforward() CarryforwardState {
	return CarryforwardState{
		FederalShortTermLoss:      decimal.Zero,
		FederalLongTermLoss:       decimal.Zero,
		FederalInvestmentInterest: decimal.Zero,
		StateCapitalLoss:          decimal.Zero,
	}
}

// Validate rejects negative balances, naming the offending field
func (c CarryforwardState) Validate() error {
	checks := []struct {
		name  string
		value decimal.Decimal
	}{
		{"federal_short_term_loss", c.FederalShortTermLoss},
		{"federal_long_term_loss", c.FederalLongTermLoss},
		{"federal_investment_interest", c.FederalInvestmentInterest},
		{"state_capital_loss", c.StateCapitalLoss},
	}
	for _, ck := range checks {
		if ck.value.IsNegative() {
			return fmt.Errorf("carryforward %s must be non-negative, got %s", ck.name, ck.value.StringFixed(2))
		}
	}
	return nil
}
