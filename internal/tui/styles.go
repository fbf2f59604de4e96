package tui

import "github.com/charmbracelet/lipgloss"

var (
	accentColor = lipgloss.Color("86")
	activeColor = lipgloss.Color("39")
	dimColor    = lipgloss.Color("240")
	errorColor  = lipgloss.Color("203")

	// Styles shared by the form and its widgets.
	HeaderStyle  = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	LabelStyle   = lipgloss.NewStyle().Bold(true)
	FocusedStyle = lipgloss.NewStyle().Foreground(accentColor).Bold(true)
	DimmedStyle  = lipgloss.NewStyle().Foreground(dimColor)
	ErrorStyle   = lipgloss.NewStyle().Foreground(errorColor)
	ResultStyle  = lipgloss.NewStyle().Bold(true).Foreground(activeColor)
	CardStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accentColor).
			Padding(1, 2)
	ResultCardStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(activeColor).
			Padding(0, 2)
)
