package calculation

import (
	"github.com/rgehrsitz/taxcalc/internal/domain"
	"github.com/rgehrsitz/taxcalc/internal/rates"
	"github.com/shopspring/decimal"
)

// StateCalculator computes one year's state liability. The state regime
// is flat-rate per income part: Part A ordinary/investment income,
// Part B short-term gains, Part C long-term gains, plus a surtax on
// income above a threshold.
type StateCalculator struct {
	Year   int
	Params rates.StateParameters
	logger Logger
}

// NewStateCalculator creates a state calculator for one parameter year
func NewStateCalculator(params rates.TaxYearParameters) *StateCalculator {
	return &StateCalculator{Year: params.Year, Params: params.State, logger: NopLogger{}}
}

// SetLogger attaches a logger for debug tracing
func (sc *StateCalculator) SetLogger(l Logger) {
	if l == nil {
		l = NopLogger{}
	}
	sc.logger = l
}

// Calculate runs the state orchestration: net the capital gains pool,
// assemble Part A after the charity deduction and standard exemption,
// apply the flat rate of each part, then the surtax on taxable income
// above the threshold.
func (sc *StateCalculator) Calculate(in domain.TaxpayerInputs, cf domain.CarryforwardState) domain.StateTaxResult {
	investmentIncome := in.InterestIncome.Add(in.Dividends).Add(in.OtherInvestmentInc)

	gains := NetStateGains(
		in.ShortTermGains, in.LongTermGains,
		cf.StateCapitalLoss,
		investmentIncome,
		sc.Params.InvestmentOffsetLimit,
	)
	sc.logger.Debugf("state netting: taxable ST %s, taxable LT %s, investment offset %s, carryforward %s",
		gains.TaxableShortTerm, gains.TaxableLongTerm, gains.InvestmentIncomeOffset, gains.Carryforward)

	exemption := sc.Params.StandardExemption[in.FilingStatus]
	partA := in.Wages.
		Add(in.OtherOrdinaryInc).
		Add(gains.AdjustedInvestmentIncome).
		Sub(in.Charity).
		Sub(exemption)
	if partA.IsNegative() {
		partA = decimal.Zero
	}
	partB := gains.TaxableShortTerm
	partC := gains.TaxableLongTerm

	partATax := partA.Mul(sc.Params.OrdinaryRate).Round(2)
	partBTax := partB.Mul(sc.Params.ShortTermRate).Round(2)
	partCTax := partC.Mul(sc.Params.LongTermRate).Round(2)

	taxableIncome := partA.Add(partB).Add(partC)

	// Surtax is marginal: only income above the threshold pays it, not
	// the whole amount once the threshold is crossed.
	excess := decimal.Max(taxableIncome.Sub(sc.Params.SurtaxThreshold), decimal.Zero)
	surtax := excess.Mul(sc.Params.SurtaxRate).Round(2)

	totalTax := partATax.Add(partBTax).Add(partCTax).Add(surtax)

	grossIncome := in.Wages.
		Add(in.OtherOrdinaryInc).
		Add(investmentIncome).
		Add(decimal.Max(in.ShortTermGains, decimal.Zero)).
		Add(decimal.Max(in.LongTermGains, decimal.Zero))

	result := domain.StateTaxResult{
		TaxYear:      in.TaxYear,
		FilingStatus: in.FilingStatus,

		PartATax: partATax,
		PartBTax: partBTax,
		PartCTax: partCTax,
		Surtax:   surtax,
		TotalTax: totalTax,

		TaxableOrdinary:  partA.Round(2),
		TaxableShortTerm: partB.Round(2),
		TaxableLongTerm:  partC.Round(2),
		TaxableIncome:    taxableIncome.Round(2),
		SurtaxApplies:    surtax.GreaterThan(decimal.Zero),

		OrdinaryRate:  sc.Params.OrdinaryRate,
		ShortTermRate: sc.Params.ShortTermRate,
		LongTermRate:  sc.Params.LongTermRate,

		CapitalLossCarryforward: gains.Carryforward.Round(2),
	}
	if taxableIncome.GreaterThan(decimal.Zero) {
		result.EffectiveRate = totalTax.Div(taxableIncome).Round(4)
	}
	if grossIncome.GreaterThan(decimal.Zero) {
		result.EffectiveRateOnGross = totalTax.Div(grossIncome).Round(4)
	}
	return result
}
