package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/taxcalc/internal/domain"
	"github.com/rgehrsitz/taxcalc/internal/rates"
)

func newState(t *testing.T, year int) *StateCalculator {
	t.Helper()
	params, err := rates.DefaultTable().ForYear(year)
	require.NoError(t, err)
	return NewStateCalculator(params)
}

func TestStateCalculatorWagesOnly(t *testing.T) {
	calc := newState(t, 2024)

	result := calc.Calculate(domain.TaxpayerInputs{
		TaxYear:      2024,
		FilingStatus: domain.FilingSingle,
		Wages:        dec("100000"),
	}, domain.ZeroCarryforward())

	// 100000 less the 4400 exemption at the 5% flat rate.
	assert.True(t, result.TaxableOrdinary.Equal(dec("95600")), "Part A base: %s", result.TaxableOrdinary)
	assert.True(t, result.PartATax.Equal(dec("4780")), "Part A tax: %s", result.PartATax)
	assert.True(t, result.PartBTax.IsZero())
	assert.True(t, result.PartCTax.IsZero())
	assert.False(t, result.SurtaxApplies)
	assert.True(t, result.TotalTax.Equal(dec("4780")), "total: %s", result.TotalTax)
}

func TestStateCalculatorPartRates(t *testing.T) {
	calc := newState(t, 2024)

	result := calc.Calculate(domain.TaxpayerInputs{
		TaxYear:        2024,
		FilingStatus:   domain.FilingSingle,
		ShortTermGains: dec("10000"),
		LongTermGains:  dec("20000"),
	}, domain.ZeroCarryforward())

	assert.True(t, result.PartBTax.Equal(dec("850")), "short-term at 8.5%%: %s", result.PartBTax)
	assert.True(t, result.PartCTax.Equal(dec("1000")), "long-term at 5%%: %s", result.PartCTax)
}

func TestStateCalculatorSurtaxIsMarginal(t *testing.T) {
	calc := newState(t, 2023)

	// Part A base of exactly 1.2M: wages 1204400 less the 4400 exemption.
	result := calc.Calculate(domain.TaxpayerInputs{
		TaxYear:      2023,
		FilingStatus: domain.FilingSingle,
		Wages:        dec("1204400"),
	}, domain.ZeroCarryforward())

	require.True(t, result.TaxableIncome.Equal(dec("1200000")), "taxable: %s", result.TaxableIncome)
	assert.True(t, result.SurtaxApplies)
	// Only the 200000 above the threshold pays the 4% surtax.
	assert.True(t, result.Surtax.Equal(dec("8000")), "surtax: %s", result.Surtax)
	assert.True(t, result.TotalTax.Equal(dec("68000")), "total: %s", result.TotalTax)
}

func TestStateCalculatorSurtaxAtThreshold(t *testing.T) {
	calc := newState(t, 2023)

	result := calc.Calculate(domain.TaxpayerInputs{
		TaxYear:      2023,
		FilingStatus: domain.FilingSingle,
		Wages:        dec("1004400"),
	}, domain.ZeroCarryforward())

	require.True(t, result.TaxableIncome.Equal(dec("1000000")))
	assert.False(t, result.SurtaxApplies)
	assert.True(t, result.Surtax.IsZero())
}

func TestStateCalculatorSurtaxThresholdTracksYear(t *testing.T) {
	in := domain.TaxpayerInputs{
		FilingStatus: domain.FilingSingle,
		Wages:        dec("1060000"),
	}

	// Over the 2023 threshold but under the inflation-adjusted 2024 one.
	r2023 := newState(t, 2023).Calculate(in, domain.ZeroCarryforward())
	r2024 := newState(t, 2024).Calculate(in, domain.ZeroCarryforward())

	assert.True(t, r2023.SurtaxApplies)
	assert.False(t, r2024.SurtaxApplies)
}

func TestStateCalculatorCarryforwardAndOffset(t *testing.T) {
	calc := newState(t, 2024)

	result := calc.Calculate(domain.TaxpayerInputs{
		TaxYear:        2024,
		FilingStatus:   domain.FilingSingle,
		InterestIncome: dec("5000"),
		ShortTermGains: dec("6000"),
		LongTermGains:  dec("2000"),
	}, domain.CarryforwardState{StateCapitalLoss: dec("10000")})

	// Carryforward absorbs both gains, leaving 2000 to offset investment
	// income at the statutory limit.
	assert.True(t, result.TaxableShortTerm.IsZero())
	assert.True(t, result.TaxableLongTerm.IsZero())
	assert.True(t, result.TaxableOrdinary.IsZero(), "Part A base: %s", result.TaxableOrdinary)
	assert.True(t, result.CapitalLossCarryforward.IsZero(),
		"carryforward out: %s", result.CapitalLossCarryforward)
}

func TestStateCalculatorLossCarriesForward(t *testing.T) {
	calc := newState(t, 2024)

	result := calc.Calculate(domain.TaxpayerInputs{
		TaxYear:        2024,
		FilingStatus:   domain.FilingSingle,
		Wages:          dec("50000"),
		ShortTermGains: dec("-9000"),
	}, domain.ZeroCarryforward())

	assert.True(t, result.CapitalLossCarryforward.Equal(dec("9000")),
		"carryforward out: %s", result.CapitalLossCarryforward)
}

func TestStateCalculatorCharityAndExemption(t *testing.T) {
	calc := newState(t, 2024)

	result := calc.Calculate(domain.TaxpayerInputs{
		TaxYear:      2024,
		FilingStatus: domain.FilingMarriedJoint,
		Wages:        dec("60000"),
		Charity:      dec("5000"),
	}, domain.ZeroCarryforward())

	// 60000 - 5000 charity - 8800 joint exemption.
	assert.True(t, result.TaxableOrdinary.Equal(dec("46200")), "Part A base: %s", result.TaxableOrdinary)
	assert.True(t, result.PartATax.Equal(dec("2310")))
}

func TestStateCalculatorExemptionCannotGoNegative(t *testing.T) {
	calc := newState(t, 2024)

	result := calc.Calculate(domain.TaxpayerInputs{
		TaxYear:      2024,
		FilingStatus: domain.FilingSingle,
		Wages:        dec("2000"),
	}, domain.ZeroCarryforward())

	assert.True(t, result.TaxableOrdinary.IsZero())
	assert.True(t, result.TotalTax.IsZero())
}
