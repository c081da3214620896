package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/taxcalc/internal/domain"
	"github.com/rgehrsitz/taxcalc/internal/rates"
)

func federal2024Params(t *testing.T) rates.FederalParameters {
	t.Helper()
	params, err := rates.DefaultTable().ForYear(2024)
	require.NoError(t, err)
	return params.Federal
}

func TestResolveDeductionsSALTCap(t *testing.T) {
	params := federal2024Params(t)

	tests := []struct {
		name     string
		status   domain.FilingStatus
		paid     string
		wantSALT string
	}{
		{"under the cap", domain.FilingSingle, "6000", "6000"},
		{"over the cap", domain.FilingSingle, "25000", "10000"},
		{"married separate cap halves", domain.FilingMarriedSeparate, "25000", "5000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveDeductions(DeductionInputs{
				FilingStatus: tt.status,
				SALTPaid:     dec(tt.paid),
			}, params)
			assert.True(t, got.SALT.Equal(dec(tt.wantSALT)),
				"want %s, got %s", tt.wantSALT, got.SALT)
		})
	}
}

func TestResolveDeductionsMortgageProration(t *testing.T) {
	params := federal2024Params(t)

	tests := []struct {
		name       string
		interest   string
		rate       string
		originYear int
		status     domain.FilingStatus
		want       string
	}{
		{"balance under current cap deducts in full", "20000", "0.04", 2020, domain.FilingSingle, "20000"},
		{"balance over current cap prorates", "40000", "0.04", 2020, domain.FilingSingle, "30000"},
		{"legacy loan uses the higher cap", "50000", "0.05", 2015, domain.FilingSingle, "50000"},
		{"legacy loan still prorates above its cap", "60000", "0.05", 2015, domain.FilingSingle, "50000"},
		{"married separate halves the cap", "40000", "0.04", 2020, domain.FilingMarriedSeparate, "15000"},
		{"missing rate deducts in full", "12000", "0", 2020, domain.FilingSingle, "12000"},
		{"no interest no deduction", "0", "0.04", 2020, domain.FilingSingle, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveDeductions(DeductionInputs{
				FilingStatus:       tt.status,
				MortgageInterest:   dec(tt.interest),
				MortgageRate:       dec(tt.rate),
				MortgageOriginYear: tt.originYear,
			}, params)
			assert.True(t, got.MortgageInterest.Equal(dec(tt.want)),
				"want %s, got %s", tt.want, got.MortgageInterest)
		})
	}
}

func TestResolveDeductionsMedicalFloor(t *testing.T) {
	params := federal2024Params(t)

	tests := []struct {
		name     string
		agi      string
		expenses string
		want     string
	}{
		{"above the floor", "100000", "10000", "2500"},
		{"below the floor", "100000", "5000", "0"},
		{"exactly at the floor", "100000", "7500", "0"},
		{"zero AGI no floor", "0", "4000", "4000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveDeductions(DeductionInputs{
				FilingStatus:    domain.FilingSingle,
				AGI:             dec(tt.agi),
				MedicalExpenses: dec(tt.expenses),
			}, params)
			assert.True(t, got.Medical.Equal(dec(tt.want)),
				"want %s, got %s", tt.want, got.Medical)
		})
	}
}

func TestResolveDeductionsInvestmentInterestLimit(t *testing.T) {
	params := federal2024Params(t)

	tests := []struct {
		name    string
		expense string
		cf      string
		nii     string
		want    string
		wantCF  string
	}{
		{"fully deductible", "2000", "0", "5000", "2000", "0"},
		{"limited to net investment income", "5000", "0", "4000", "4000", "1000"},
		{"carryforward stacks with current expense", "5000", "2000", "4000", "4000", "3000"},
		{"zero investment income defers everything", "5000", "1000", "0", "0", "6000"},
		{"negative investment income treated as zero", "5000", "0", "-2000", "0", "5000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveDeductions(DeductionInputs{
				FilingStatus:          domain.FilingSingle,
				InvestmentInterestExp: dec(tt.expense),
				InvestmentInterestCF:  dec(tt.cf),
				NetInvestmentIncome:   dec(tt.nii),
			}, params)
			assert.True(t, got.InvestmentInterest.Equal(dec(tt.want)),
				"allowed: want %s, got %s", tt.want, got.InvestmentInterest)
			assert.True(t, got.InvestmentInterestCarryforward.Equal(dec(tt.wantCF)),
				"carryforward: want %s, got %s", tt.wantCF, got.InvestmentInterestCarryforward)
		})
	}
}

func TestResolveDeductionsChoosesLarger(t *testing.T) {
	params := federal2024Params(t)

	t.Run("itemized wins when strictly larger", func(t *testing.T) {
		got := ResolveDeductions(DeductionInputs{
			FilingStatus: domain.FilingSingle,
			Charity:      dec("20000"),
		}, params)
		assert.Equal(t, DeductionItemized, got.DeductionUsed)
		assert.True(t, got.Allowed.Equal(dec("20000")))
	})

	t.Run("standard wins on a tie", func(t *testing.T) {
		got := ResolveDeductions(DeductionInputs{
			FilingStatus: domain.FilingSingle,
			Charity:      dec("14600"),
		}, params)
		assert.Equal(t, DeductionStandard, got.DeductionUsed)
		assert.True(t, got.Allowed.Equal(dec("14600")))
	})

	t.Run("standard wins with no itemized components", func(t *testing.T) {
		got := ResolveDeductions(DeductionInputs{
			FilingStatus: domain.FilingSingle,
		}, params)
		assert.Equal(t, DeductionStandard, got.DeductionUsed)
		assert.True(t, got.Allowed.Equal(dec("14600")))
	})
}
