package rates

import (
	"fmt"
	"sort"

	"github.com/rgehrsitz/taxcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// Bracket is one progressive-rate slice. Min is inclusive, Max exclusive;
// the top bracket uses an effectively unbounded Max.
type Bracket struct {
	Min  decimal.Decimal `yaml:"min"`
	Max  decimal.Decimal `yaml:"max"`
	Rate decimal.Decimal `yaml:"rate"`
}

// FederalParameters holds one year's federal thresholds and caps
type FederalParameters struct {
	OrdinaryBrackets     map[domain.FilingStatus][]Bracket        `yaml:"ordinary_brackets"`
	PreferentialBrackets map[domain.FilingStatus][]Bracket        `yaml:"preferential_brackets"`
	StandardDeduction    map[domain.FilingStatus]decimal.Decimal  `yaml:"standard_deduction"`
	SALTCap              map[domain.FilingStatus]decimal.Decimal  `yaml:"salt_cap"`
	NIITRate             decimal.Decimal                          `yaml:"niit_rate"`
	NIITThreshold        map[domain.FilingStatus]decimal.Decimal  `yaml:"niit_threshold"`
	CapitalLossLimit     map[domain.FilingStatus]decimal.Decimal  `yaml:"capital_loss_limit"`
	MedicalFloorRate     decimal.Decimal                          `yaml:"medical_floor_rate"`
	MortgageCapCurrent   decimal.Decimal                          `yaml:"mortgage_cap_current"`      // loans originated 2018+
	MortgageCapLegacy    decimal.Decimal                          `yaml:"mortgage_cap_grandfathered"` // loans originated before 2018
}

// StateParameters holds one year's flat rates and thresholds
type StateParameters struct {
	OrdinaryRate          decimal.Decimal                         `yaml:"ordinary_rate"`
	ShortTermRate         decimal.Decimal                         `yaml:"short_term_rate"`
	LongTermRate          decimal.Decimal                         `yaml:"long_term_rate"`
	StandardExemption     map[domain.FilingStatus]decimal.Decimal `yaml:"standard_exemption"`
	SurtaxRate            decimal.Decimal                         `yaml:"surtax_rate"`
	SurtaxThreshold       decimal.Decimal                         `yaml:"surtax_threshold"`
	InvestmentOffsetLimit decimal.Decimal                         `yaml:"investment_offset_limit"`
}

// TaxYearParameters is the complete frozen parameter set for one year
type TaxYearParameters struct {
	Year    int               `yaml:"year"`
	Federal FederalParameters `yaml:"federal"`
	State   StateParameters   `yaml:"state"`
}

// Table is the immutable year-indexed parameter table. Construct it via
// DefaultTable or LoadOverride; never mutate it afterwards.
type Table struct {
	years map[int]TaxYearParameters
}

// NewTable builds and validates a table from explicit year parameter sets
func NewTable(params []TaxYearParameters) (*Table, error) {
	if len(params) == 0 {
		return nil, fmt.Errorf("rate table must contain at least one year")
	}
	t := &Table{years: make(map[int]TaxYearParameters, len(params))}
	for _, p := range params {
		if err := validateYear(p); err != nil {
			return nil, fmt.Errorf("rate table for %d: %w", p.Year, err)
		}
		t.years[p.Year] = p
	}
	return t, nil
}

// Years lists the modeled years in ascending order
func (t *Table) Years() []int {
	years := make([]int, 0, len(t.years))
	for y := range t.years {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// ForYear resolves the parameters for a tax year. A year outside the
// modeled range resolves to the nearest modeled year; this fallback is
// deliberate so projections past the last known year keep working.
func (t *Table) ForYear(year int) (TaxYearParameters, error) {
	if p, ok := t.years[year]; ok {
		return p, nil
	}
	years := t.Years()
	if len(years) == 0 {
		return TaxYearParameters{}, fmt.Errorf("rate table is empty")
	}
	nearest := years[0]
	for _, y := range years {
		if abs(year-y) < abs(year-nearest) {
			nearest = y
		}
	}
	return t.years[nearest], nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

var allStatuses = []domain.FilingStatus{
	domain.FilingSingle,
	domain.FilingMarriedJoint,
	domain.FilingMarriedSeparate,
	domain.FilingHeadOfHousehold,
}

// validateYear fails fast on malformed parameter sets so the engine can
// assume well-formed tables per call.
func validateYear(p TaxYearParameters) error {
	for _, fs := range allStatuses {
		brackets, ok := p.Federal.OrdinaryBrackets[fs]
		if !ok {
			return fmt.Errorf("missing ordinary brackets for %s", fs)
		}
		if err := ValidateBrackets(brackets); err != nil {
			return fmt.Errorf("ordinary brackets for %s: %w", fs, err)
		}
		prefBrackets, ok := p.Federal.PreferentialBrackets[fs]
		if !ok {
			return fmt.Errorf("missing preferential brackets for %s", fs)
		}
		if err := ValidateBrackets(prefBrackets); err != nil {
			return fmt.Errorf("preferential brackets for %s: %w", fs, err)
		}
		if _, ok := p.Federal.StandardDeduction[fs]; !ok {
			return fmt.Errorf("missing standard deduction for %s", fs)
		}
		if _, ok := p.Federal.SALTCap[fs]; !ok {
			return fmt.Errorf("missing SALT cap for %s", fs)
		}
		if _, ok := p.Federal.NIITThreshold[fs]; !ok {
			return fmt.Errorf("missing NIIT threshold for %s", fs)
		}
		if _, ok := p.Federal.CapitalLossLimit[fs]; !ok {
			return fmt.Errorf("missing capital loss limit for %s", fs)
		}
		if _, ok := p.State.StandardExemption[fs]; !ok {
			return fmt.Errorf("missing state standard exemption for %s", fs)
		}
	}
	if p.Federal.NIITRate.IsNegative() {
		return fmt.Errorf("NIIT rate must be non-negative")
	}
	if p.Federal.MedicalFloorRate.IsNegative() || p.Federal.MedicalFloorRate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("medical floor rate must be between 0 and 1")
	}
	for name, rate := range map[string]decimal.Decimal{
		"ordinary":   p.State.OrdinaryRate,
		"short-term": p.State.ShortTermRate,
		"long-term":  p.State.LongTermRate,
		"surtax":     p.State.SurtaxRate,
	} {
		if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
			return fmt.Errorf("state %s rate must be between 0 and 1", name)
		}
	}
	return nil
}

// ValidateBrackets checks the structural invariants of a bracket list:
// first threshold zero, contiguous non-overlapping slices, thresholds
// ascending, rates non-decreasing.
func ValidateBrackets(brackets []Bracket) error {
	if len(brackets) == 0 {
		return fmt.Errorf("bracket list is empty")
	}
	if !brackets[0].Min.IsZero() {
		return fmt.Errorf("first bracket must start at zero, got %s", brackets[0].Min.StringFixed(0))
	}
	for i, b := range brackets {
		if b.Max.LessThanOrEqual(b.Min) {
			return fmt.Errorf("bracket %d has max %s <= min %s", i, b.Max.StringFixed(0), b.Min.StringFixed(0))
		}
		if b.Rate.IsNegative() || b.Rate.GreaterThan(decimal.NewFromInt(1)) {
			return fmt.Errorf("bracket %d rate %s outside [0,1]", i, b.Rate.String())
		}
		if i > 0 {
			if !b.Min.Equal(brackets[i-1].Max) {
				return fmt.Errorf("bracket %d min %s not contiguous with previous max %s", i, b.Min.StringFixed(0), brackets[i-1].Max.StringFixed(0))
			}
			if b.Rate.LessThan(brackets[i-1].Rate) {
				return fmt.Errorf("bracket %d rate %s lower than previous rate %s", i, b.Rate.String(), brackets[i-1].Rate.String())
			}
		}
	}
	return nil
}
