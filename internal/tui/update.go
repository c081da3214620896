package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// keyMap defines the global keyboard shortcuts
type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Select  key.Binding
	Home    key.Binding
	Compare key.Binding
	Results key.Binding
	Help    key.Binding
	Back    key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Select:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "calculate")),
		Home:    key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "home")),
		Compare: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "compare")),
		Results: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "results")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case NavigateMsg:
		m.previousScene = m.currentScene
		m.currentScene = msg.Scene
		return m, nil

	case ErrorMsg:
		m.loading = false
		m.err = msg.Err
		return m, nil

	case ConfigLoadedMsg:
		m.config = msg.Config
		m.loading = false
		if err := m.loadCarryforward(); err != nil {
			m.err = err
		}
		return m, nil

	case CalculationCompleteMsg:
		m.loading = false
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.resultName = msg.ScenarioName
		m.result = msg.Result
		m.previousScene = m.currentScene
		m.currentScene = SceneResults
		return m, nil

	case ComparisonCompleteMsg:
		m.loading = false
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.comparison = msg.Comparison
		m.previousScene = m.currentScene
		m.currentScene = SceneCompare
		return m, nil
	}

	return m, nil
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// An error screen is dismissed by any key
	if m.err != nil {
		m.err = nil
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		return m.navigate(SceneHelp)

	case key.Matches(msg, m.keys.Back):
		if m.currentScene != SceneHome {
			if m.previousScene != m.currentScene {
				return m.navigate(m.previousScene)
			}
			return m.navigate(SceneHome)
		}
		return m, nil

	case key.Matches(msg, m.keys.Home):
		return m.navigate(SceneHome)

	case key.Matches(msg, m.keys.Results):
		if m.result != nil {
			return m.navigate(SceneResults)
		}
		return m, nil

	case key.Matches(msg, m.keys.Compare):
		if m.config == nil {
			return m, nil
		}
		m.loading = true
		m.loadingMessage = "Comparing scenarios..."
		return m, m.compareAllCmd()

	case key.Matches(msg, m.keys.Up):
		if m.currentScene == SceneScenarios && m.selectedIndex > 0 {
			m.selectedIndex--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.currentScene == SceneScenarios && m.config != nil &&
			m.selectedIndex < len(m.config.Scenarios) {
			m.selectedIndex++
		}
		return m, nil

	case key.Matches(msg, m.keys.Select):
		return m.handleSelect()
	}

	// Scene-entry shortcut: "s" opens the scenario list
	if msg.String() == "s" && m.config != nil {
		return m.navigate(SceneScenarios)
	}

	return m, nil
}

// handleSelect runs the highlighted scenario
func (m Model) handleSelect() (tea.Model, tea.Cmd) {
	if m.currentScene != SceneScenarios || m.config == nil {
		return m, nil
	}

	m.loading = true
	m.loadingMessage = "Calculating..."
	if m.selectedIndex == 0 {
		return m, m.calculateCmd("", nil)
	}
	scenario := m.config.Scenarios[m.selectedIndex-1]
	return m, m.calculateCmd(scenario.Name, scenario.Adjustments)
}

func (m Model) navigate(scene Scene) (tea.Model, tea.Cmd) {
	if m.currentScene == scene {
		return m, nil
	}
	m.previousScene = m.currentScene
	m.currentScene = scene
	return m, nil
}
