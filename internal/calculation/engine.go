package calculation

import (
	"fmt"

	"github.com/rgehrsitz/taxcalc/internal/domain"
	"github.com/rgehrsitz/taxcalc/internal/rates"
)

// Engine orchestrates one tax year's federal and state computations.
// Validation happens here at the boundary so the calculators below can
// assume well-formed, non-negative-where-required inputs and stay total.
type Engine struct {
	Table  *rates.Table
	Debug  bool
	logger Logger
}

// NewEngine creates an engine over the built-in rate table
func NewEngine() *Engine {
	return &Engine{Table: rates.DefaultTable(), logger: NopLogger{}}
}

// NewEngineWithTable creates an engine over a caller-supplied rate table
func NewEngineWithTable(table *rates.Table) *Engine {
	return &Engine{Table: table, logger: NopLogger{}}
}

// SetLogger attaches a logger used for debug tracing
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		l = NopLogger{}
	}
	e.logger = l
}

// ValidateInputs rejects inputs the engine cannot compute on, naming the
// offending field. Zero-valued monetary fields are legitimate input, not
// errors.
func (e *Engine) ValidateInputs(in domain.TaxpayerInputs, cf domain.CarryforwardState) error {
	if in.TaxYear <= 0 {
		return fmt.Errorf("tax_year must be positive, got %d", in.TaxYear)
	}
	if _, err := domain.ParseFilingStatus(string(in.FilingStatus)); err != nil {
		return fmt.Errorf("filing_status: %w", err)
	}
	if in.QualifiedDividends.IsNegative() {
		return fmt.Errorf("income_dividends_qualified must be non-negative, got %s", in.QualifiedDividends.StringFixed(2))
	}
	if in.QualifiedDividends.GreaterThan(in.Dividends) {
		return fmt.Errorf("income_dividends_qualified (%s) cannot exceed income_dividends (%s)",
			in.QualifiedDividends.StringFixed(2), in.Dividends.StringFixed(2))
	}
	if in.ElectInvestmentIncomeLTCG {
		return fmt.Errorf("elect_investment_income_ltcg is not supported: electing long-term gains into the investment-interest limitation is unimplemented")
	}
	return cf.Validate()
}

// RunYear computes both jurisdictions for one year. The federal and
// state calculators share only the raw inputs, never each other's
// intermediates; the carryforward is read in full before either runs.
// The call is deterministic and leaves no state behind.
func (e *Engine) RunYear(in domain.TaxpayerInputs, cf domain.CarryforwardState) (*domain.YearResult, error) {
	if err := e.ValidateInputs(in, cf); err != nil {
		return nil, err
	}

	params, err := e.Table.ForYear(in.TaxYear)
	if err != nil {
		return nil, fmt.Errorf("no rate parameters for tax year %d: %w", in.TaxYear, err)
	}
	if params.Year != in.TaxYear {
		e.logger.Warnf("tax year %d not modeled; using %d parameters", in.TaxYear, params.Year)
	}

	federalCalc := NewFederalCalculator(params)
	stateCalc := NewStateCalculator(params)
	if e.Debug {
		federalCalc.SetLogger(e.logger)
		stateCalc.SetLogger(e.logger)
	}

	federal := federalCalc.Calculate(in, cf)
	state := stateCalc.Calculate(in, cf)

	return &domain.YearResult{
		TaxYear: in.TaxYear,
		Federal: federal,
		State:   state,
		Carryforward: domain.CarryforwardState{
			FederalShortTermLoss:      federal.ShortTermLossCarryforward,
			FederalLongTermLoss:       federal.LongTermLossCarryforward,
			FederalInvestmentInterest: federal.InvestmentInterestCarryforward,
			StateCapitalLoss:          state.CapitalLossCarryforward,
		},
	}, nil
}
