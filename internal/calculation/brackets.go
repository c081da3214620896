package calculation

import (
	"github.com/rgehrsitz/taxcalc/internal/rates"
	"github.com/shopspring/decimal"
)

// EvaluateBrackets computes progressive tax on a taxable amount: each
// bracket's rate applies only to the slice of income between its lower
// and upper threshold. Bracket tables are validated at load time, so the
// walk here assumes a contiguous ascending list. Rounds once, at the
// final result.
func EvaluateBrackets(brackets []rates.Bracket, amount decimal.Decimal) decimal.Decimal {
	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	total := decimal.Zero
	for _, b := range brackets {
		if amount.LessThanOrEqual(b.Min) {
			break
		}
		inBracket := decimal.Min(amount, b.Max).Sub(b.Min)
		if inBracket.GreaterThan(decimal.Zero) {
			total = total.Add(inBracket.Mul(b.Rate))
		}
	}

	return total.Round(2)
}

// MarginalRate returns the rate of the bracket containing the amount.
// Zero or negative amounts sit in no bracket and have a zero marginal rate.
func MarginalRate(brackets []rates.Bracket, amount decimal.Decimal) decimal.Decimal {
	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	rate := decimal.Zero
	for _, b := range brackets {
		if amount.GreaterThan(b.Min) {
			rate = b.Rate
		}
	}
	return rate
}

// EvaluateStacked computes tax on a preferential slice stacked on top of
// ordinary income: the slice [base, base+preferential) is taxed at the
// rates the combined total reaches, while the base itself is not taxed
// here. This is the standard stacking method for long-term gains and
// qualified dividends.
func EvaluateStacked(base, preferential decimal.Decimal, brackets []rates.Bracket) decimal.Decimal {
	if preferential.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	if base.IsNegative() {
		base = decimal.Zero
	}
	top := base.Add(preferential)

	total := decimal.Zero
	for _, b := range brackets {
		lo := decimal.Max(base, b.Min)
		hi := decimal.Min(top, b.Max)
		if hi.GreaterThan(lo) {
			total = total.Add(hi.Sub(lo).Mul(b.Rate))
		}
	}

	return total.Round(2)
}
