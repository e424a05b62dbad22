package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle    = lipgloss.NewStyle().Padding(1, 2)
	titleStyle  = lipgloss.NewStyle().Bold(true)
	helpStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle  = lipgloss.NewStyle().Bold(true)
	userStyle   = lipgloss.NewStyle().Bold(true)
	botStyle    = lipgloss.NewStyle()
	statusStyle = lipgloss.NewStyle().Faint(true).Italic(true)
)
