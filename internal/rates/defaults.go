package rates

import (
	"github.com/rgehrsitz/taxcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// topMax stands in for "no upper bound" on the highest bracket
var topMax = decimal.NewFromInt(999999999)

func d(n int64) decimal.Decimal    { return decimal.NewFromInt(n) }
func r(f float64) decimal.Decimal  { return decimal.NewFromFloat(f) }
func b(min, max int64, rate float64) Bracket {
	return Bracket{Min: d(min), Max: d(max), Rate: r(rate)}
}
func btop(min int64, rate float64) Bracket {
	return Bracket{Min: d(min), Max: topMax, Rate: r(rate)}
}

func statusAmounts(single, joint, separate, head int64) map[domain.FilingStatus]decimal.Decimal {
	return map[domain.FilingStatus]decimal.Decimal{
		domain.FilingSingle:          d(single),
		domain.FilingMarriedJoint:    d(joint),
		domain.FilingMarriedSeparate: d(separate),
		domain.FilingHeadOfHousehold: d(head),
	}
}

// DefaultTable returns the built-in parameter table for 2023-2025.
// Values are the published IRS/DOR figures for each year; the state
// parameters model Massachusetts (5% Part A/C, 8.5% Part B, 4% surtax).
func DefaultTable() *Table {
	t, err := NewTable([]TaxYearParameters{year2023(), year2024(), year2025()})
	if err != nil {
		// Built-in data failing validation is a programming error
		panic(err)
	}
	return t
}

func year2023() TaxYearParameters {
	return TaxYearParameters{
		Year: 2023,
		Federal: FederalParameters{
			OrdinaryBrackets: map[domain.FilingStatus][]Bracket{
				domain.FilingSingle: {
					b(0, 11000, 0.10), b(11000, 44725, 0.12), b(44725, 95375, 0.22),
					b(95375, 182100, 0.24), b(182100, 231250, 0.32), b(231250, 578125, 0.35),
					btop(578125, 0.37),
				},
				domain.FilingMarriedJoint: {
					b(0, 22000, 0.10), b(22000, 89450, 0.12), b(89450, 190750, 0.22),
					b(190750, 364200, 0.24), b(364200, 462500, 0.32), b(462500, 693750, 0.35),
					btop(693750, 0.37),
				},
				domain.FilingMarriedSeparate: {
					b(0, 11000, 0.10), b(11000, 44725, 0.12), b(44725, 95375, 0.22),
					b(95375, 182100, 0.24), b(182100, 231250, 0.32), b(231250, 346875, 0.35),
					btop(346875, 0.37),
				},
				domain.FilingHeadOfHousehold: {
					b(0, 15700, 0.10), b(15700, 59850, 0.12), b(59850, 95350, 0.22),
					b(95350, 182100, 0.24), b(182100, 231250, 0.32), b(231250, 578100, 0.35),
					btop(578100, 0.37),
				},
			},
			PreferentialBrackets: map[domain.FilingStatus][]Bracket{
				domain.FilingSingle:          {b(0, 44625, 0), b(44625, 492300, 0.15), btop(492300, 0.20)},
				domain.FilingMarriedJoint:    {b(0, 89250, 0), b(89250, 553850, 0.15), btop(553850, 0.20)},
				domain.FilingMarriedSeparate: {b(0, 44625, 0), b(44625, 276900, 0.15), btop(276900, 0.20)},
				domain.FilingHeadOfHousehold: {b(0, 59750, 0), b(59750, 523050, 0.15), btop(523050, 0.20)},
			},
			StandardDeduction: statusAmounts(13850, 27700, 13850, 20800),
			SALTCap:           statusAmounts(10000, 10000, 5000, 10000),
			NIITRate:          r(0.038),
			NIITThreshold:     statusAmounts(200000, 250000, 125000, 200000),
			CapitalLossLimit:  statusAmounts(3000, 3000, 1500, 3000),
			MedicalFloorRate:  r(0.075),
			MortgageCapCurrent: d(750000),
			MortgageCapLegacy:  d(1000000),
		},
		State: StateParameters{
			OrdinaryRate:          r(0.05),
			ShortTermRate:         r(0.085),
			LongTermRate:          r(0.05),
			StandardExemption:     statusAmounts(4400, 8800, 4400, 6800),
			SurtaxRate:            r(0.04),
			SurtaxThreshold:       d(1000000),
			InvestmentOffsetLimit: d(2000),
		},
	}
}

func year2024() TaxYearParameters {
	return TaxYearParameters{
		Year: 2024,
		Federal: FederalParameters{
			OrdinaryBrackets: map[domain.FilingStatus][]Bracket{
				domain.FilingSingle: {
					b(0, 11600, 0.10), b(11600, 47150, 0.12), b(47150, 100525, 0.22),
					b(100525, 191950, 0.24), b(191950, 243725, 0.32), b(243725, 609350, 0.35),
					btop(609350, 0.37),
				},
				domain.FilingMarriedJoint: {
					b(0, 23200, 0.10), b(23200, 94300, 0.12), b(94300, 201050, 0.22),
					b(201050, 383900, 0.24), b(383900, 487450, 0.32), b(487450, 731200, 0.35),
					btop(731200, 0.37),
				},
				domain.FilingMarriedSeparate: {
					b(0, 11600, 0.10), b(11600, 47150, 0.12), b(47150, 100525, 0.22),
					b(100525, 191950, 0.24), b(191950, 243725, 0.32), b(243725, 365600, 0.35),
					btop(365600, 0.37),
				},
				domain.FilingHeadOfHousehold: {
					b(0, 16550, 0.10), b(16550, 63100, 0.12), b(63100, 100500, 0.22),
					b(100500, 191950, 0.24), b(191950, 243700, 0.32), b(243700, 609350, 0.35),
					btop(609350, 0.37),
				},
			},
			PreferentialBrackets: map[domain.FilingStatus][]Bracket{
				domain.FilingSingle:          {b(0, 47025, 0), b(47025, 518900, 0.15), btop(518900, 0.20)},
				domain.FilingMarriedJoint:    {b(0, 94050, 0), b(94050, 583750, 0.15), btop(583750, 0.20)},
				domain.FilingMarriedSeparate: {b(0, 47025, 0), b(47025, 291850, 0.15), btop(291850, 0.20)},
				domain.FilingHeadOfHousehold: {b(0, 63000, 0), b(63000, 551350, 0.15), btop(551350, 0.20)},
			},
			StandardDeduction: statusAmounts(14600, 29200, 14600, 21900),
			SALTCap:           statusAmounts(10000, 10000, 5000, 10000),
			NIITRate:          r(0.038),
			NIITThreshold:     statusAmounts(200000, 250000, 125000, 200000),
			CapitalLossLimit:  statusAmounts(3000, 3000, 1500, 3000),
			MedicalFloorRate:  r(0.075),
			MortgageCapCurrent: d(750000),
			MortgageCapLegacy:  d(1000000),
		},
		State: StateParameters{
			OrdinaryRate:          r(0.05),
			ShortTermRate:         r(0.085),
			LongTermRate:          r(0.05),
			StandardExemption:     statusAmounts(4400, 8800, 4400, 6800),
			SurtaxRate:            r(0.04),
			SurtaxThreshold:       d(1053750),
			InvestmentOffsetLimit: d(2000),
		},
	}
}

func year2025() TaxYearParameters {
	return TaxYearParameters{
		Year: 2025,
		Federal: FederalParameters{
			OrdinaryBrackets: map[domain.FilingStatus][]Bracket{
				domain.FilingSingle: {
					b(0, 11925, 0.10), b(11925, 48475, 0.12), b(48475, 103350, 0.22),
					b(103350, 197300, 0.24), b(197300, 250525, 0.32), b(250525, 626350, 0.35),
					btop(626350, 0.37),
				},
				domain.FilingMarriedJoint: {
					b(0, 23850, 0.10), b(23850, 96950, 0.12), b(96950, 206700, 0.22),
					b(206700, 394600, 0.24), b(394600, 501050, 0.32), b(501050, 751600, 0.35),
					btop(751600, 0.37),
				},
				domain.FilingMarriedSeparate: {
					b(0, 11925, 0.10), b(11925, 48475, 0.12), b(48475, 103350, 0.22),
					b(103350, 197300, 0.24), b(197300, 250525, 0.32), b(250525, 375800, 0.35),
					btop(375800, 0.37),
				},
				domain.FilingHeadOfHousehold: {
					b(0, 17000, 0.10), b(17000, 64850, 0.12), b(64850, 103350, 0.22),
					b(103350, 197300, 0.24), b(197300, 250500, 0.32), b(250500, 626350, 0.35),
					btop(626350, 0.37),
				},
			},
			PreferentialBrackets: map[domain.FilingStatus][]Bracket{
				domain.FilingSingle:          {b(0, 48350, 0), b(48350, 533400, 0.15), btop(533400, 0.20)},
				domain.FilingMarriedJoint:    {b(0, 96700, 0), b(96700, 600050, 0.15), btop(600050, 0.20)},
				domain.FilingMarriedSeparate: {b(0, 48350, 0), b(48350, 300000, 0.15), btop(300000, 0.20)},
				domain.FilingHeadOfHousehold: {b(0, 64750, 0), b(64750, 566700, 0.15), btop(566700, 0.20)},
			},
			StandardDeduction: statusAmounts(15000, 30000, 15000, 22500),
			SALTCap:           statusAmounts(10000, 10000, 5000, 10000),
			NIITRate:          r(0.038),
			NIITThreshold:     statusAmounts(200000, 250000, 125000, 200000),
			CapitalLossLimit:  statusAmounts(3000, 3000, 1500, 3000),
			MedicalFloorRate:  r(0.075),
			MortgageCapCurrent: d(750000),
			MortgageCapLegacy:  d(1000000),
		},
		State: StateParameters{
			OrdinaryRate:          r(0.05),
			ShortTermRate:         r(0.085),
			LongTermRate:          r(0.05),
			StandardExemption:     statusAmounts(4400, 8800, 4400, 6800),
			SurtaxRate:            r(0.04),
			SurtaxThreshold:       d(1083150),
			InvestmentOffsetLimit: d(2000),
		},
	}
}
