package tui

import "github.com/charmbracelet/lipgloss"

var (
	accentColor = lipgloss.AdaptiveColor{Light: "#1a6fd8", Dark: "#5aa9ff"}
	mutedColor  = lipgloss.AdaptiveColor{Light: "#6b7280", Dark: "#9ca3af"}
	okColor     = lipgloss.AdaptiveColor{Light: "#15803d", Dark: "#4ade80"}
	errColor    = lipgloss.AdaptiveColor{Light: "#b91c1c", Dark: "#f87171"}

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	mutedStyle = lipgloss.NewStyle().Foreground(mutedColor)
	errStyle   = lipgloss.NewStyle().Foreground(errColor)
	okStyle    = lipgloss.NewStyle().Bold(true).Foreground(okColor)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			Padding(0, 1)
	activeCardStyle = cardStyle.BorderForeground(accentColor)

	tagStyle         = lipgloss.NewStyle().Foreground(accentColor)
	currentPageStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
)
