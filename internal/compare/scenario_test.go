package compare

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/taxcalc/internal/domain"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func baseInputs() domain.TaxpayerInputs {
	return domain.TaxpayerInputs{
		TaxYear:       2024,
		FilingStatus:  domain.FilingSingle,
		Wages:         dec("100000"),
		LongTermGains: dec("20000"),
		SALTPaid:      dec("8000"),
	}
}

func TestApplyAdjustments(t *testing.T) {
	tests := []struct {
		name        string
		adjustments map[string]string
		check       func(*testing.T, domain.TaxpayerInputs)
	}{
		{
			name:        "plus adds to the base value",
			adjustments: map[string]string{"income_wages": "+25000"},
			check: func(t *testing.T, got domain.TaxpayerInputs) {
				assert.True(t, got.Wages.Equal(dec("125000")), "wages: %s", got.Wages)
			},
		},
		{
			name:        "minus subtracts",
			adjustments: map[string]string{"cg_long_term": "-30000"},
			check: func(t *testing.T, got domain.TaxpayerInputs) {
				assert.True(t, got.LongTermGains.Equal(dec("-10000")), "LT gains: %s", got.LongTermGains)
			},
		},
		{
			name:        "bare value replaces",
			adjustments: map[string]string{"deduct_salt": "10000"},
			check: func(t *testing.T, got domain.TaxpayerInputs) {
				assert.True(t, got.SALTPaid.Equal(dec("10000")), "SALT: %s", got.SALTPaid)
			},
		},
		{
			name: "multiple adjustments compose",
			adjustments: map[string]string{
				"income_wages": "+5000",
				"cg_long_term": "0",
			},
			check: func(t *testing.T, got domain.TaxpayerInputs) {
				assert.True(t, got.Wages.Equal(dec("105000")))
				assert.True(t, got.LongTermGains.IsZero())
			},
		},
		{
			name:        "whitespace tolerated",
			adjustments: map[string]string{"income_wages": " +1000 "},
			check: func(t *testing.T, got domain.TaxpayerInputs) {
				assert.True(t, got.Wages.Equal(dec("101000")))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ApplyAdjustments(baseInputs(), tt.adjustments)
			require.NoError(t, err)
			tt.check(t, got)
		})
	}
}

func TestApplyAdjustmentsErrors(t *testing.T) {
	tests := []struct {
		name        string
		adjustments map[string]string
		wantErr     string
	}{
		{"unknown field", map[string]string{"income_lottery": "+1"}, "unknown adjustment field"},
		{"empty value", map[string]string{"income_wages": "  "}, "empty value"},
		{"garbage amount", map[string]string{"income_wages": "+lots"}, "invalid amount"},
		{"bare sign", map[string]string{"income_wages": "+"}, "invalid amount"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ApplyAdjustments(baseInputs(), tt.adjustments)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestApplyAdjustmentsDoesNotMutateBase(t *testing.T) {
	base := baseInputs()

	_, err := ApplyAdjustments(base, map[string]string{"income_wages": "+99999"})
	require.NoError(t, err)

	assert.True(t, base.Wages.Equal(dec("100000")), "base mutated: %s", base.Wages)
}

func TestAdjustableFieldsCoverEveryMonetaryInput(t *testing.T) {
	fields := AdjustableFields()
	assert.Len(t, fields, len(adjustableFields))
	assert.Contains(t, fields, "income_wages")
	assert.Contains(t, fields, "cg_short_term")
	assert.Contains(t, fields, "deduct_investment_interest")
}
