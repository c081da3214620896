package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/taxcalc/internal/calculation"
	"github.com/rgehrsitz/taxcalc/internal/carryforward"
	"github.com/rgehrsitz/taxcalc/internal/compare"
	"github.com/rgehrsitz/taxcalc/internal/config"
	"github.com/rgehrsitz/taxcalc/internal/domain"
)

// Model represents the entire application state
type Model struct {
	// Navigation
	currentScene  Scene
	previousScene Scene

	// Terminal dimensions
	width  int
	height int

	// Configuration and data
	configPath string
	cfDir      string
	config     *domain.Configuration
	cf         domain.CarryforwardState

	// Calculation engine
	engine *calculation.Engine

	// Scenario selection; index 0 is the base case, the rest map to
	// config.Scenarios[i-1]
	selectedIndex int

	// Latest results
	resultName string
	result     *domain.YearResult
	comparison *compare.ComparisonSet

	keys keyMap

	// Error state
	err error

	// Loading state
	loading        bool
	loadingMessage string
}

// NewModel creates a new application model
func NewModel(configPath, carryforwardDir string) Model {
	return Model{
		currentScene: SceneHome,
		configPath:   configPath,
		cfDir:        carryforwardDir,
		engine:       calculation.NewEngine(),
		keys:         defaultKeyMap(),
		loading:      true,
		width:        80,
		height:       24,
	}
}

// Init initializes the model (required by tea.Model interface)
func (m Model) Init() tea.Cmd {
	return loadConfigCmd(m.configPath)
}

// loadConfigCmd returns a command that loads the configuration file
func loadConfigCmd(path string) tea.Cmd {
	return func() tea.Msg {
		parser := config.NewInputParser()
		cfg, err := parser.LoadFromFile(path)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return ConfigLoadedMsg{Config: cfg}
	}
}

// calculateCmd returns a command that runs one scenario (or the base
// case when adjustments is nil) through the calculation engine.
func (m Model) calculateCmd(name string, adjustments map[string]string) tea.Cmd {
	engine := m.engine
	base := m.config.Inputs
	cf := m.cf
	return func() tea.Msg {
		inputs := base
		if adjustments != nil {
			adjusted, err := compare.ApplyAdjustments(base, adjustments)
			if err != nil {
				return CalculationCompleteMsg{ScenarioName: name, Err: err}
			}
			inputs = adjusted
		}
		result, err := engine.RunYear(inputs, cf)
		return CalculationCompleteMsg{ScenarioName: name, Result: result, Err: err}
	}
}

// compareAllCmd returns a command that runs the full base-vs-scenarios
// comparison.
func (m Model) compareAllCmd() tea.Cmd {
	engine := m.engine
	cfg := m.config
	cf := m.cf
	return func() tea.Msg {
		compSet, err := compare.NewCompareEngine(engine).Compare(cfg, cf)
		return ComparisonCompleteMsg{Comparison: compSet, Err: err}
	}
}

// loadCarryforward reads the stored carryforward for the configured
// year. A missing file yields a zero state, so errors here are real.
func (m *Model) loadCarryforward() error {
	if m.config == nil {
		return nil
	}
	cf, err := carryforward.NewFileStore(m.cfDir).Load(m.config.Inputs.TaxYear)
	if err != nil {
		return err
	}
	m.cf = cf
	return nil
}
