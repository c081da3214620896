package tui

import (
	"github.com/rgehrsitz/taxcalc/internal/compare"
	"github.com/rgehrsitz/taxcalc/internal/domain"
)

// Scene represents different screens in the TUI
type Scene int

const (
	SceneHome Scene = iota
	SceneScenarios
	SceneResults
	SceneCompare
	SceneHelp
)

// String returns a human-readable name for a scene
func (s Scene) String() string {
	switch s {
	case SceneHome:
		return "Home"
	case SceneScenarios:
		return "Scenarios"
	case SceneResults:
		return "Results"
	case SceneCompare:
		return "Compare"
	case SceneHelp:
		return "Help"
	default:
		return "Unknown"
	}
}

// Message types for the Bubble Tea update cycle

// NavigateMsg switches to a different scene
type NavigateMsg struct {
	Scene Scene
}

// ErrorMsg displays an error to the user
type ErrorMsg struct {
	Err error
}

// ConfigLoadedMsg signals the configuration file has been parsed
type ConfigLoadedMsg struct {
	Config *domain.Configuration
}

// CalculationCompleteMsg carries a finished single-year calculation.
// ScenarioName is empty for the base case.
type CalculationCompleteMsg struct {
	ScenarioName string
	Result       *domain.YearResult
	Err          error
}

// ComparisonCompleteMsg carries a finished base-vs-scenarios comparison
type ComparisonCompleteMsg struct {
	Comparison *compare.ComparisonSet
	Err        error
}
