package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/primecount/internal/ui"
)

// Style variables for the dashboard.
// Initialized from the ui theme system via initTUIStyles().
var (
	panelStyle         lipgloss.Style
	panelTitleStyle    lipgloss.Style
	headerStyle        lipgloss.Style
	titleStyle         lipgloss.Style
	versionStyle       lipgloss.Style
	elapsedStyle       lipgloss.Style
	workerIDStyle      lipgloss.Style
	workerDoneStyle    lipgloss.Style
	workerPendingStyle lipgloss.Style
	barStyle           lipgloss.Style
	barEmptyStyle      lipgloss.Style
	metricLabelStyle   lipgloss.Style
	metricValueStyle   lipgloss.Style
	resultStyle        lipgloss.Style
	errorStyle         lipgloss.Style
	statusRunningStyle lipgloss.Style
	statusPausedStyle  lipgloss.Style
	statusDoneStyle    lipgloss.Style
	statusErrorStyle   lipgloss.Style
	cpuSparklineStyle  lipgloss.Style
	memSparklineStyle  lipgloss.Style
)

func init() {
	initTUIStyles()
}

// initTUIStyles rebuilds all dashboard styles from the current ui theme.
// Called at package init and again from Run() after InitTheme has been invoked.
func initTUIStyles() {
	t := ui.GetCurrentTUITheme()

	bold := func(c lipgloss.TerminalColor) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(c).Bold(true)
	}
	plain := func(c lipgloss.TerminalColor) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(c)
	}

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Foreground(t.Text).
		Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent).
		Padding(0, 1)

	panelTitleStyle = bold(t.Accent)
	titleStyle = bold(t.Accent)
	versionStyle = plain(t.Dim)
	elapsedStyle = plain(t.Accent)

	workerIDStyle = plain(t.Dim)
	workerDoneStyle = plain(t.Success)
	workerPendingStyle = plain(t.Warning)
	barStyle = plain(t.Bar)
	barEmptyStyle = plain(t.Dim)

	metricLabelStyle = plain(t.Dim)
	metricValueStyle = bold(t.Accent)
	resultStyle = bold(t.Success)
	errorStyle = bold(t.Error)

	statusRunningStyle = bold(t.Success)
	statusPausedStyle = bold(t.Warning)
	statusDoneStyle = bold(t.Accent)
	statusErrorStyle = bold(t.Error)

	cpuSparklineStyle = plain(t.Accent)
	memSparklineStyle = plain(t.Warning)
}
