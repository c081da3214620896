package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/taxcalc/internal/domain"
	"github.com/rgehrsitz/taxcalc/internal/rates"
)

func newFederal2024(t *testing.T) *FederalCalculator {
	t.Helper()
	params, err := rates.DefaultTable().ForYear(2024)
	require.NoError(t, err)
	return NewFederalCalculator(params)
}

func TestFederalCalculatorWagesOnly(t *testing.T) {
	calc := newFederal2024(t)

	result := calc.Calculate(domain.TaxpayerInputs{
		TaxYear:      2024,
		FilingStatus: domain.FilingSingle,
		Wages:        dec("100000"),
	}, domain.ZeroCarryforward())

	assert.True(t, result.GrossIncome.Equal(dec("100000")), "gross: %s", result.GrossIncome)
	assert.True(t, result.AGI.Equal(dec("100000")), "AGI: %s", result.AGI)
	assert.Equal(t, DeductionStandard, result.DeductionUsed)
	assert.True(t, result.TaxableIncome.Equal(dec("85400")), "taxable: %s", result.TaxableIncome)
	assert.True(t, result.OrdinaryTax.Equal(dec("13841")), "ordinary tax: %s", result.OrdinaryTax)
	assert.True(t, result.PreferentialTax.IsZero())
	assert.True(t, result.NIITTax.IsZero())
	assert.True(t, result.TotalTax.Equal(dec("13841")), "total: %s", result.TotalTax)
	assert.True(t, result.MarginalOrdinaryRate.Equal(dec("0.22")))
	assert.True(t, result.EffectiveRate.Equal(dec("0.1621")), "effective: %s", result.EffectiveRate)
}

func TestFederalCalculatorQualifiedDividendsStack(t *testing.T) {
	calc := newFederal2024(t)

	// All dividends qualified: they leave the ordinary base and get the
	// stacked preferential rates instead.
	result := calc.Calculate(domain.TaxpayerInputs{
		TaxYear:            2024,
		FilingStatus:       domain.FilingSingle,
		Wages:              dec("100000"),
		Dividends:          dec("20000"),
		QualifiedDividends: dec("20000"),
	}, domain.ZeroCarryforward())

	// Ordinary base unchanged from the wages-only case.
	assert.True(t, result.TaxableOrdinaryIncome.Equal(dec("85400")),
		"taxable ordinary: %s", result.TaxableOrdinaryIncome)
	assert.True(t, result.TaxablePreferential.Equal(dec("20000")),
		"taxable preferential: %s", result.TaxablePreferential)
	assert.True(t, result.OrdinaryTax.Equal(dec("13841")), "ordinary tax: %s", result.OrdinaryTax)

	// Slice [85400, 105400) sits entirely in the 15% preferential bracket.
	assert.True(t, result.PreferentialTax.Equal(dec("3000")),
		"preferential tax: %s", result.PreferentialTax)
}

func TestFederalCalculatorNIIT(t *testing.T) {
	calc := newFederal2024(t)

	result := calc.Calculate(domain.TaxpayerInputs{
		TaxYear:        2024,
		FilingStatus:   domain.FilingSingle,
		Wages:          dec("150000"),
		InterestIncome: dec("100000"),
	}, domain.ZeroCarryforward())

	// AGI 250000 exceeds the 200000 threshold by 50000, which is less
	// than the 100000 of net investment income.
	assert.True(t, result.NIITTax.Equal(dec("1900")), "NIIT: %s", result.NIITTax)
}

func TestFederalCalculatorNIITBelowThreshold(t *testing.T) {
	calc := newFederal2024(t)

	result := calc.Calculate(domain.TaxpayerInputs{
		TaxYear:        2024,
		FilingStatus:   domain.FilingSingle,
		Wages:          dec("100000"),
		InterestIncome: dec("50000"),
	}, domain.ZeroCarryforward())

	assert.True(t, result.NIITTax.IsZero(), "NIIT should not apply below threshold: %s", result.NIITTax)
}

func TestFederalCalculatorCapitalLossCarryforward(t *testing.T) {
	calc := newFederal2024(t)

	result := calc.Calculate(domain.TaxpayerInputs{
		TaxYear:        2024,
		FilingStatus:   domain.FilingSingle,
		Wages:          dec("100000"),
		ShortTermGains: dec("-50000"),
		LongTermGains:  dec("20000"),
	}, domain.ZeroCarryforward())

	// Long gain fully absorbed, $3,000 offsets ordinary income, the rest
	// carries forward as short-term loss.
	assert.True(t, result.CapitalLossDeduction.Equal(dec("3000")),
		"ordinary offset: %s", result.CapitalLossDeduction)
	assert.True(t, result.AGI.Equal(dec("97000")), "AGI: %s", result.AGI)
	assert.True(t, result.ShortTermLossCarryforward.Equal(dec("27000")),
		"ST carryforward: %s", result.ShortTermLossCarryforward)
	assert.True(t, result.LongTermLossCarryforward.IsZero())
}

func TestFederalCalculatorCarryforwardIn(t *testing.T) {
	calc := newFederal2024(t)

	in := domain.TaxpayerInputs{
		TaxYear:        2024,
		FilingStatus:   domain.FilingSingle,
		Wages:          dec("100000"),
		ShortTermGains: dec("10000"),
	}

	withCF := calc.Calculate(in, domain.CarryforwardState{
		FederalShortTermLoss: dec("4000"),
	})
	withoutCF := calc.Calculate(in, domain.ZeroCarryforward())

	// The carryforward shrinks the taxable short-term gain by its amount.
	diff := withoutCF.GrossIncome.Sub(withCF.GrossIncome)
	assert.True(t, diff.Equal(dec("4000")), "gross income diff: %s", diff)
	assert.True(t, withCF.TotalTax.LessThan(withoutCF.TotalTax))
}

func TestFederalCalculatorZeroIncome(t *testing.T) {
	calc := newFederal2024(t)

	result := calc.Calculate(domain.TaxpayerInputs{
		TaxYear:      2024,
		FilingStatus: domain.FilingSingle,
	}, domain.ZeroCarryforward())

	assert.True(t, result.TotalTax.IsZero())
	assert.True(t, result.TaxableIncome.IsZero())
	assert.True(t, result.EffectiveRate.IsZero())
	assert.True(t, result.MarginalOrdinaryRate.IsZero())
}

func TestFederalCalculatorDeductionCannotCreateNegativeIncome(t *testing.T) {
	calc := newFederal2024(t)

	result := calc.Calculate(domain.TaxpayerInputs{
		TaxYear:      2024,
		FilingStatus: domain.FilingSingle,
		Wages:        dec("10000"),
		Charity:      dec("50000"),
	}, domain.ZeroCarryforward())

	assert.True(t, result.TaxableOrdinaryIncome.IsZero())
	assert.True(t, result.TotalTax.IsZero())
	assert.False(t, result.TaxableIncome.IsNegative())
}

func TestFederalCalculatorSafeForReuse(t *testing.T) {
	calc := newFederal2024(t)

	in := domain.TaxpayerInputs{
		TaxYear:      2024,
		FilingStatus: domain.FilingMarriedJoint,
		Wages:        dec("250000"),
		LongTermGains: dec("30000"),
	}

	first := calc.Calculate(in, domain.ZeroCarryforward())
	second := calc.Calculate(in, domain.ZeroCarryforward())
	assert.True(t, first.TotalTax.Equal(second.TotalTax))
	assert.True(t, first.AGI.Equal(second.AGI))
}

func TestFederalCalculatorSetLoggerNil(t *testing.T) {
	calc := newFederal2024(t)
	calc.SetLogger(nil)
	assert.IsType(t, NopLogger{}, calc.logger)
	assert.NotPanics(t, func() {
		calc.Calculate(domain.TaxpayerInputs{
			TaxYear:      2024,
			FilingStatus: domain.FilingSingle,
			Wages:        decimal.NewFromInt(50000),
		}, domain.ZeroCarryforward())
	})
}
