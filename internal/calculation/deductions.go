package calculation

import (
	"github.com/rgehrsitz/taxcalc/internal/domain"
	"github.com/rgehrsitz/taxcalc/internal/rates"
	"github.com/shopspring/decimal"
)

// DeductionUsed flags which deduction the resolver chose. Consumed by
// reporting only; the computation keeps just the allowed amount.
const (
	DeductionItemized = "itemized"
	DeductionStandard = "standard"
)

// DeductionInputs carries everything the resolver needs for one year
type DeductionInputs struct {
	FilingStatus          domain.FilingStatus
	AGI                   decimal.Decimal
	Charity               decimal.Decimal
	SALTPaid              decimal.Decimal
	MortgageInterest      decimal.Decimal
	MortgageRate          decimal.Decimal
	MortgageOriginYear    int
	MedicalExpenses       decimal.Decimal
	InvestmentInterestExp decimal.Decimal
	InvestmentInterestCF  decimal.Decimal
	NetInvestmentIncome   decimal.Decimal
}

// DeductionResult reports the allowed deduction, its components and the
// investment-interest carryforward to persist.
type DeductionResult struct {
	Allowed       decimal.Decimal
	DeductionUsed string

	Itemized          decimal.Decimal
	Standard          decimal.Decimal
	SALT              decimal.Decimal
	MortgageInterest  decimal.Decimal
	Medical           decimal.Decimal
	InvestmentInterest decimal.Decimal
	Charity           decimal.Decimal

	InvestmentInterestCarryforward decimal.Decimal
}

// ResolveDeductions computes the itemized total with each cap applied
// independently, compares it to the standard deduction and returns the
// larger. Investment interest is limited to net investment income; the
// excess carries forward without expiry.
func ResolveDeductions(in DeductionInputs, params rates.FederalParameters) DeductionResult {
	salt := decimal.Min(in.SALTPaid, params.SALTCap[in.FilingStatus])

	mortgage := mortgageInterestDeduction(in, params)

	// Medical expenses count only above the AGI floor. Floor only, no
	// ceiling.
	medical := decimal.Max(in.MedicalExpenses.Sub(in.AGI.Mul(params.MedicalFloorRate)), decimal.Zero)

	nii := decimal.Max(in.NetInvestmentIncome, decimal.Zero)
	totalInvInterest := in.InvestmentInterestExp.Add(in.InvestmentInterestCF)
	invInterest := decimal.Min(totalInvInterest, nii)
	invInterestCF := decimal.Max(totalInvInterest.Sub(nii), decimal.Zero)

	itemized := salt.Add(mortgage).Add(in.Charity).Add(medical).Add(invInterest)
	standard := params.StandardDeduction[in.FilingStatus]

	result := DeductionResult{
		Itemized:                       itemized,
		Standard:                       standard,
		SALT:                           salt,
		MortgageInterest:               mortgage,
		Medical:                        medical,
		InvestmentInterest:             invInterest,
		Charity:                        in.Charity,
		InvestmentInterestCarryforward: invInterestCF,
	}
	if itemized.GreaterThan(standard) {
		result.Allowed = itemized
		result.DeductionUsed = DeductionItemized
	} else {
		result.Allowed = standard
		result.DeductionUsed = DeductionStandard
	}
	return result
}

// mortgageInterestDeduction prorates interest when the implied mortgage
// balance exceeds the acquisition-debt cap for the loan's origination
// era. Loans originated 2018 or later use the lower TCJA cap; the cap
// halves for married filing separately.
func mortgageInterestDeduction(in DeductionInputs, params rates.FederalParameters) decimal.Decimal {
	if in.MortgageInterest.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	cap := params.MortgageCapLegacy
	if in.MortgageOriginYear >= 2018 {
		cap = params.MortgageCapCurrent
	}
	if in.FilingStatus == domain.FilingMarriedSeparate {
		cap = cap.Div(decimal.NewFromInt(2))
	}

	if in.MortgageRate.LessThanOrEqual(decimal.Zero) {
		// Without a rate the balance cannot be imputed; deduct in full.
		return in.MortgageInterest
	}
	balance := in.MortgageInterest.Div(in.MortgageRate)
	if balance.LessThanOrEqual(cap) {
		return in.MortgageInterest
	}
	return in.MortgageInterest.Mul(cap).Div(balance)
}
