package tui

import "github.com/charmbracelet/lipgloss"

// Styles
var (
	baseFg   = lipgloss.Color("#E6E6E6")
	dimFg    = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg = lipgloss.Color("#5FAF87")
	errorFg  = lipgloss.Color("#D75F5F")
	border   = lipgloss.Color("#243141")

	appStyle    = lipgloss.NewStyle().Foreground(baseFg)
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(border).Padding(0, 1)
	titleStyle  = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(dimFg).Width(16)
	dimStyle    = lipgloss.NewStyle().Foreground(dimFg)
	statusStyle = lipgloss.NewStyle().Foreground(baseFg)
	errStyle    = lipgloss.NewStyle().Foreground(errorFg)
)
