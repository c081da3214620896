package calculation

import (
	"github.com/shopspring/decimal"
)

// FederalGainsResult is the outcome of federal capital gains netting.
// Taxable amounts and carryforwards are always non-negative; the
// conservation law holds:
//
//	shortTerm + longTerm - cfShort - cfLong =
//	    TaxableShortTerm + TaxableLongTerm - OrdinaryLossOffset
//	    - ShortTermCarryforward - LongTermCarryforward
type FederalGainsResult struct {
	TaxableShortTerm      decimal.Decimal
	TaxableLongTerm       decimal.Decimal
	OrdinaryLossOffset    decimal.Decimal
	ShortTermCarryforward decimal.Decimal
	LongTermCarryforward  decimal.Decimal
}

// NetFederalGains nets short- and long-term gains/losses with their
// carryforwards under the federal rules: losses net within category
// first (the carryforward keeps its original character), then a net loss
// in one category offsets a net gain in the other, then up to limit of a
// combined net loss offsets ordinary income with short-term loss
// consumed first. Whatever remains carries forward tagged with its
// original character so preferential-rate treatment survives across
// years.
func NetFederalGains(shortTerm, longTerm, cfShort, cfLong, limit decimal.Decimal) FederalGainsResult {
	st := shortTerm.Sub(cfShort)
	lt := longTerm.Sub(cfLong)

	// Cross-category offset: drives at least one side to zero whenever
	// the signs differ.
	if st.IsNegative() && lt.GreaterThan(decimal.Zero) {
		offset := decimal.Min(lt, st.Neg())
		lt = lt.Sub(offset)
		st = st.Add(offset)
	} else if lt.IsNegative() && st.GreaterThan(decimal.Zero) {
		offset := decimal.Min(st, lt.Neg())
		st = st.Sub(offset)
		lt = lt.Add(offset)
	}

	result := FederalGainsResult{
		TaxableShortTerm:      decimal.Max(st, decimal.Zero),
		TaxableLongTerm:       decimal.Max(lt, decimal.Zero),
		OrdinaryLossOffset:    decimal.Zero,
		ShortTermCarryforward: decimal.Zero,
		LongTermCarryforward:  decimal.Zero,
	}

	combined := st.Add(lt)
	if combined.IsNegative() {
		stLoss := decimal.Max(st.Neg(), decimal.Zero)
		ltLoss := decimal.Max(lt.Neg(), decimal.Zero)

		// Short-term loss feeds the ordinary-income allowance before
		// long-term loss (Schedule D ordering).
		allowance := decimal.Min(limit, stLoss.Add(ltLoss))
		result.OrdinaryLossOffset = allowance

		fromShort := decimal.Min(stLoss, allowance)
		stLoss = stLoss.Sub(fromShort)
		allowance = allowance.Sub(fromShort)
		ltLoss = ltLoss.Sub(decimal.Min(ltLoss, allowance))

		result.ShortTermCarryforward = stLoss
		result.LongTermCarryforward = ltLoss
	}

	return result
}

// StateGainsResult is the outcome of state capital gains netting. The
// state pools short- and long-term losses without preserving character;
// the carryforward out is a single undifferentiated balance.
type StateGainsResult struct {
	TaxableShortTerm         decimal.Decimal
	TaxableLongTerm          decimal.Decimal
	AdjustedInvestmentIncome decimal.Decimal
	InvestmentIncomeOffset   decimal.Decimal
	Carryforward             decimal.Decimal
}

// NetStateGains nets gains under the state rules: short- and long-term
// net against each other first, the prior-year carryforward then absorbs
// remaining gains (short-term before long-term), and any excess loss
// offsets investment income up to offsetLimit. The remainder carries
// forward as one balance.
func NetStateGains(shortTerm, longTerm, carryforward, investmentIncome, offsetLimit decimal.Decimal) StateGainsResult {
	st := shortTerm
	lt := longTerm

	if st.IsNegative() && lt.GreaterThan(decimal.Zero) {
		offset := decimal.Min(lt, st.Neg())
		lt = lt.Sub(offset)
		st = st.Add(offset)
	} else if lt.IsNegative() && st.GreaterThan(decimal.Zero) {
		offset := decimal.Min(st, lt.Neg())
		st = st.Sub(offset)
		lt = lt.Add(offset)
	}

	remaining := carryforward
	if remaining.GreaterThan(decimal.Zero) && st.GreaterThan(decimal.Zero) {
		offset := decimal.Min(st, remaining)
		st = st.Sub(offset)
		remaining = remaining.Sub(offset)
	}
	if remaining.GreaterThan(decimal.Zero) && lt.GreaterThan(decimal.Zero) {
		offset := decimal.Min(lt, remaining)
		lt = lt.Sub(offset)
		remaining = remaining.Sub(offset)
	}

	// Pool leftover carryforward with this year's unabsorbed losses.
	lossPool := remaining.Add(decimal.Max(st.Neg(), decimal.Zero)).Add(decimal.Max(lt.Neg(), decimal.Zero))

	adjusted := investmentIncome
	applied := decimal.Zero
	if lossPool.GreaterThan(decimal.Zero) && investmentIncome.GreaterThan(decimal.Zero) {
		applied = decimal.Min(offsetLimit, decimal.Min(lossPool, investmentIncome))
		adjusted = investmentIncome.Sub(applied)
		lossPool = lossPool.Sub(applied)
	}

	return StateGainsResult{
		TaxableShortTerm:         decimal.Max(st, decimal.Zero),
		TaxableLongTerm:          decimal.Max(lt, decimal.Zero),
		AdjustedInvestmentIncome: adjusted,
		InvestmentIncomeOffset:   applied,
		Carryforward:             lossPool,
	}
}
