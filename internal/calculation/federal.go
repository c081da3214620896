package calculation

import (
	"github.com/rgehrsitz/taxcalc/internal/domain"
	"github.com/rgehrsitz/taxcalc/internal/rates"
	"github.com/shopspring/decimal"
)

// FederalCalculator computes one year's federal liability from validated
// inputs. It holds only frozen year parameters and is safe to reuse
// across calls.
type FederalCalculator struct {
	Year   int
	Params rates.FederalParameters
	logger Logger
}

// NewFederalCalculator creates a federal calculator for one parameter year
func NewFederalCalculator(params rates.TaxYearParameters) *FederalCalculator {
	return &FederalCalculator{Year: params.Year, Params: params.Federal, logger: NopLogger{}}
}

// SetLogger attaches a logger for debug tracing
func (fc *FederalCalculator) SetLogger(l Logger) {
	if l == nil {
		l = NopLogger{}
	}
	fc.logger = l
}

// Calculate runs the federal orchestration. The step order is fixed:
// capital gains netting feeds gross income and net investment income,
// which feed the deduction resolver, which feeds taxable ordinary income
// and the carryforwards. Reordering these steps changes the answer.
func (fc *FederalCalculator) Calculate(in domain.TaxpayerInputs, cf domain.CarryforwardState) domain.FederalTaxResult {
	status := in.FilingStatus

	gains := NetFederalGains(
		in.ShortTermGains, in.LongTermGains,
		cf.FederalShortTermLoss, cf.FederalLongTermLoss,
		fc.Params.CapitalLossLimit[status],
	)
	fc.logger.Debugf("federal netting: taxable ST %s, taxable LT %s, ordinary offset %s",
		gains.TaxableShortTerm, gains.TaxableLongTerm, gains.OrdinaryLossOffset)

	ordinaryIncome := in.Wages.
		Add(in.InterestIncome).
		Add(in.Dividends).
		Add(in.OtherInvestmentInc).
		Add(in.OtherOrdinaryInc)

	grossIncome := ordinaryIncome.Add(gains.TaxableShortTerm).Add(gains.TaxableLongTerm)
	agi := grossIncome.Sub(gains.OrdinaryLossOffset)
	if agi.IsNegative() {
		agi = decimal.Zero
	}

	// Net investment income for NIIT counts all investment categories;
	// the investment-interest limitation excludes preferentially taxed
	// income (qualified dividends, long-term gains) unless the taxpayer
	// elects otherwise, which is unsupported.
	niitNII := in.InterestIncome.
		Add(in.Dividends).
		Add(in.OtherInvestmentInc).
		Add(gains.TaxableShortTerm).
		Add(gains.TaxableLongTerm)
	limitNII := in.InterestIncome.
		Add(in.Dividends.Sub(in.QualifiedDividends)).
		Add(in.OtherInvestmentInc).
		Add(gains.TaxableShortTerm)

	deductions := ResolveDeductions(DeductionInputs{
		FilingStatus:          status,
		AGI:                   agi,
		Charity:               in.Charity,
		SALTPaid:              in.SALTPaid,
		MortgageInterest:      in.MortgageInterest,
		MortgageRate:          in.MortgageRate,
		MortgageOriginYear:    in.MortgageOriginYear,
		MedicalExpenses:       in.MedicalExpenses,
		InvestmentInterestExp: in.InvestmentInterestExp,
		InvestmentInterestCF:  cf.FederalInvestmentInterest,
		NetInvestmentIncome:   limitNII,
	}, fc.Params)
	fc.logger.Debugf("federal deductions: %s chosen (itemized %s vs standard %s)",
		deductions.DeductionUsed, deductions.Itemized, deductions.Standard)

	preferential := gains.TaxableLongTerm.Add(in.QualifiedDividends)

	taxableOrdinary := agi.Sub(deductions.Allowed).Sub(preferential)
	if taxableOrdinary.IsNegative() {
		taxableOrdinary = decimal.Zero
	}
	taxableIncome := taxableOrdinary.Add(preferential)

	ordinaryBrackets := fc.Params.OrdinaryBrackets[status]
	preferentialBrackets := fc.Params.PreferentialBrackets[status]

	ordinaryTax := EvaluateBrackets(ordinaryBrackets, taxableOrdinary)
	preferentialTax := EvaluateStacked(taxableOrdinary, preferential, preferentialBrackets)

	// NIIT applies to the lesser of net investment income and the AGI
	// excess over the filing-status threshold.
	excessAGI := decimal.Max(agi.Sub(fc.Params.NIITThreshold[status]), decimal.Zero)
	niitTax := decimal.Min(niitNII, excessAGI).Mul(fc.Params.NIITRate)
	if niitTax.IsNegative() {
		niitTax = decimal.Zero
	}
	niitTax = niitTax.Round(2)

	totalTax := ordinaryTax.Add(preferentialTax).Add(niitTax)

	result := domain.FederalTaxResult{
		TaxYear:      in.TaxYear,
		FilingStatus: status,

		OrdinaryTax:     ordinaryTax,
		PreferentialTax: preferentialTax,
		NIITTax:         niitTax,
		TotalTax:        totalTax,

		GrossIncome:           grossIncome.Round(2),
		AGI:                   agi.Round(2),
		TaxableIncome:         taxableIncome.Round(2),
		TaxableOrdinaryIncome: taxableOrdinary.Round(2),
		TaxablePreferential:   preferential.Round(2),
		CapitalLossDeduction:  gains.OrdinaryLossOffset.Round(2),
		ItemizedDeductions:    deductions.Itemized.Round(2),
		StandardDeduction:     deductions.Standard.Round(2),
		DeductionUsed:         deductions.DeductionUsed,

		MarginalOrdinaryRate: MarginalRate(ordinaryBrackets, taxableOrdinary),

		ShortTermLossCarryforward:      gains.ShortTermCarryforward.Round(2),
		LongTermLossCarryforward:       gains.LongTermCarryforward.Round(2),
		InvestmentInterestCarryforward: deductions.InvestmentInterestCarryforward.Round(2),
	}
	if taxableIncome.GreaterThan(decimal.Zero) {
		result.EffectiveRate = totalTax.Div(taxableIncome).Round(4)
	}
	if grossIncome.GreaterThan(decimal.Zero) {
		result.EffectiveRateOnGross = totalTax.Div(grossIncome).Round(4)
	}
	if preferential.GreaterThan(decimal.Zero) {
		result.EffectivePreferentRate = preferentialTax.Div(preferential).Round(4)
	}
	return result
}
