package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFilingStatus(t *testing.T) {
	for _, valid := range []string{"single", "married_joint", "married_separate", "head_of_household"} {
		got, err := ParseFilingStatus(valid)
		require.NoError(t, err, valid)
		assert.Equal(t, FilingStatus(valid), got)
	}

	for _, invalid := range []string{"", "married", "Single", "mfj"} {
		_, err := ParseFilingStatus(invalid)
		assert.Error(t, err, invalid)
	}
}

func TestCarryforwardValidate(t *testing.T) {
	assert.NoError(t, ZeroCarryforward().Validate())

	assert.NoError(t, CarryforwardState{
		FederalShortTermLoss: decimal.NewFromInt(27000),
		StateCapitalLoss:     decimal.NewFromInt(30000),
	}.Validate())

	err := CarryforwardState{
		FederalLongTermLoss: decimal.NewFromInt(-1),
	}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "federal_long_term_loss")
}

func TestYearResultTotalTax(t *testing.T) {
	yr := YearResult{
		Federal: FederalTaxResult{TotalTax: decimal.NewFromInt(13841)},
		State:   StateTaxResult{TotalTax: decimal.NewFromInt(4780)},
	}
	assert.True(t, yr.TotalTax().Equal(decimal.NewFromInt(18621)))
}
