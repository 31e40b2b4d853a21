package ui

import "github.com/charmbracelet/lipgloss"

var (
	styleTitle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	styleStatLabel = lipgloss.NewStyle().Faint(true)
	styleStatValue = lipgloss.NewStyle().Bold(true)
	styleDanger    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	styleSuccess   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	styleMuted     = lipgloss.NewStyle().Faint(true)
	styleHelp      = lipgloss.NewStyle().Faint(true)
)
