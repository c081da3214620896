package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/taxcalc/internal/compare"
	"github.com/rgehrsitz/taxcalc/internal/domain"
	"github.com/rgehrsitz/taxcalc/internal/output"
)

// View renders the current state of the application
func (m Model) View() string {
	if m.loading {
		return m.renderApp(m.renderLoading())
	}
	if m.err != nil {
		return m.renderApp(m.renderError())
	}

	var content string
	switch m.currentScene {
	case SceneHome:
		content = m.renderHome()
	case SceneScenarios:
		content = m.renderScenarios()
	case SceneResults:
		content = m.renderResults()
	case SceneCompare:
		content = m.renderCompare()
	case SceneHelp:
		content = m.renderHelp()
	default:
		content = "Unknown scene"
	}

	return m.renderApp(content)
}

// renderApp wraps content with title bar, status bar, and main container
func (m Model) renderApp(content string) string {
	titleBar := m.renderTitleBar()
	statusBar := m.renderStatusBar()

	contentHeight := m.height - 4
	contentContainer := lipgloss.NewStyle().
		Height(contentHeight).
		Render(content)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleBar,
		contentContainer,
		statusBar,
	)
}

// renderTitleBar renders the application title and breadcrumb
func (m Model) renderTitleBar() string {
	title := TitleStyle.Render("TAXCALC - Income Tax Estimator")

	breadcrumb := m.currentScene.String()
	if m.config != nil {
		breadcrumb = fmt.Sprintf("%s / tax year %d", breadcrumb, m.config.Inputs.TaxYear)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		SubtitleStyle.Render(breadcrumb),
	)
}

// renderStatusBar renders the bottom status bar with keyboard shortcuts
func (m Model) renderStatusBar() string {
	shortcuts := []string{
		formatShortcut("h", "home"),
		formatShortcut("s", "scenarios"),
		formatShortcut("c", "compare"),
		formatShortcut("r", "results"),
		formatShortcut("?", "help"),
		formatShortcut("q", "quit"),
	}
	return StatusBarStyle.Width(m.width).Render(strings.Join(shortcuts, " • "))
}

func formatShortcut(key, desc string) string {
	return StatusKeyStyle.Render(key) + " " + desc
}

func (m Model) renderLoading() string {
	message := m.loadingMessage
	if message == "" {
		message = "Loading..."
	}
	return BorderStyle.Render("⠋ " + message)
}

func (m Model) renderError() string {
	errorMsg := "An error occurred"
	if m.err != nil {
		errorMsg = m.err.Error()
	}
	return ErrorStyle.Render(
		fmt.Sprintf("Error: %s\n\nPress any key to continue...", errorMsg),
	)
}

// renderHome renders the home dashboard
func (m Model) renderHome() string {
	if m.config == nil {
		return BorderStyle.Render("Welcome to taxcalc!\n\nLoading configuration...")
	}

	var sb strings.Builder
	in := m.config.Inputs
	sb.WriteString(fmt.Sprintf("Configuration: %s\n\n", m.configPath))
	sb.WriteString(fmt.Sprintf("%s %d\n", MetricLabelStyle.Render("Tax year:"), in.TaxYear))
	sb.WriteString(fmt.Sprintf("%s %s\n", MetricLabelStyle.Render("Filing status:"), in.FilingStatus))
	sb.WriteString(fmt.Sprintf("%s %s\n", MetricLabelStyle.Render("Wages:"), output.FormatCurrency(in.Wages)))
	sb.WriteString(fmt.Sprintf("%s %d\n\n", MetricLabelStyle.Render("Scenarios:"), len(m.config.Scenarios)))
	sb.WriteString(HintStyle.Render("Press s to browse scenarios, c to compare them all."))
	return BorderStyle.Render(sb.String())
}

// renderScenarios renders the scenario list with the base case first
func (m Model) renderScenarios() string {
	if m.config == nil {
		return BorderStyle.Render("No configuration loaded.")
	}

	var sb strings.Builder
	names := append([]string{"Base Case"}, scenarioNames(m.config.Scenarios)...)
	for i, name := range names {
		cursor := "  "
		style := UnselectedItemStyle
		if i == m.selectedIndex {
			cursor = "> "
			style = SelectedItemStyle
		}
		sb.WriteString(cursor + style.Render(name) + "\n")
	}

	sb.WriteString("\n")
	if m.selectedIndex > 0 {
		scenario := m.config.Scenarios[m.selectedIndex-1]
		if scenario.Description != "" {
			sb.WriteString(SubtitleStyle.Render(scenario.Description) + "\n")
		}
		for field, delta := range scenario.Adjustments {
			sb.WriteString(MetricValueStyle.Render(fmt.Sprintf("  %s: %s", field, delta)) + "\n")
		}
	}
	sb.WriteString("\n" + HintStyle.Render("↑/k up • ↓/j down • Enter calculate • esc back"))

	return BorderStyle.Render(sb.String())
}

// renderResults renders the most recent single-run result
func (m Model) renderResults() string {
	if m.result == nil {
		return BorderStyle.Render("No results yet. Run a scenario first.")
	}

	name := m.resultName
	if name == "" {
		name = "Base Case"
	}

	fed := m.result.Federal
	state := m.result.State
	total := m.result.TotalTax()
	net := fed.GrossIncome.Sub(total)

	var sb strings.Builder
	sb.WriteString(SelectedItemStyle.Render(fmt.Sprintf("%s (%d)", name, m.result.TaxYear)) + "\n\n")
	sb.WriteString(metricLine("Federal tax", output.FormatCurrency(fed.TotalTax)))
	sb.WriteString(metricLine("  Ordinary", output.FormatCurrency(fed.OrdinaryTax)))
	sb.WriteString(metricLine("  Preferential", output.FormatCurrency(fed.PreferentialTax)))
	sb.WriteString(metricLine("  NIIT", output.FormatCurrency(fed.NIITTax)))
	sb.WriteString(metricLine("State tax", output.FormatCurrency(state.TotalTax)))
	if state.SurtaxApplies {
		sb.WriteString(metricLine("  Surtax", output.FormatCurrency(state.Surtax)))
	}
	sb.WriteString("\n")
	sb.WriteString(metricLine("Gross income", output.FormatCurrency(fed.GrossIncome)))
	sb.WriteString(metricLine("Total tax", output.FormatCurrency(total)))
	sb.WriteString(metricLine("Net income", output.FormatCurrency(net)))
	sb.WriteString(metricLine("Effective rate", output.FormatPercentage(fed.EffectiveRate)))

	return BorderStyle.Render(sb.String())
}

// renderCompare renders the comparison table
func (m Model) renderCompare() string {
	if m.comparison == nil {
		return BorderStyle.Render("No comparison yet. Press c to run one.")
	}

	var sb strings.Builder
	sb.WriteString(SelectedItemStyle.Render(
		fmt.Sprintf("Scenario Comparison (%d)", m.comparison.TaxYear)) + "\n\n")

	sb.WriteString(compareLine(m.comparison.BaseResult, true))
	for _, alt := range m.comparison.AlternativeResults {
		sb.WriteString(compareLine(alt, false))
	}

	return BorderStyle.Render(sb.String())
}

func compareLine(r compare.ComparisonResult, isBase bool) string {
	name := r.ScenarioName
	if isBase {
		name = "Base Case"
	}
	line := fmt.Sprintf("%-28s tax %14s  net %14s",
		name, output.FormatCurrency(r.TotalTax), output.FormatCurrency(r.NetIncome))
	if !isBase {
		deltaStyle := MetricPositiveStyle
		if r.TotalTaxDelta.IsPositive() {
			deltaStyle = MetricNegativeStyle
		}
		line += "  " + deltaStyle.Render(fmt.Sprintf("Δtax %s", output.FormatCurrency(r.TotalTaxDelta)))
	}
	return line + "\n"
}

// renderHelp renders the help screen
func (m Model) renderHelp() string {
	helpText := `taxcalc - Federal and State Income Tax Estimator

KEYBOARD SHORTCUTS:
  h        Navigate to Home
  s        Navigate to Scenarios
  c        Run and show the scenario comparison
  r        Show the last calculation result
  ?        Show this help
  ESC      Go back
  q/Ctrl+C Quit

SCENARIOS:
  Use arrow keys (or j/k) to highlight a scenario.
  Enter runs it through the calculation engine; the base
  case is always the first entry.
`
	return BorderStyle.Render(helpText)
}

func metricLine(label, value string) string {
	return fmt.Sprintf("%s %s\n",
		MetricLabelStyle.Render(fmt.Sprintf("%-24s", label+":")),
		MetricValueStyle.Render(fmt.Sprintf("%14s", value)))
}

func scenarioNames(scenarios []domain.Scenario) []string {
	names := make([]string, 0, len(scenarios))
	for _, s := range scenarios {
		names = append(names, s.Name)
	}
	return names
}
