package tui

import "github.com/charmbracelet/lipgloss"

// Styles
var (
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#F59E0B")

	titleStyle = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(baseDimFg)
	keyStyle   = lipgloss.NewStyle().Foreground(accentFg)
)
