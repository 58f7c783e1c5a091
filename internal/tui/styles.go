package tui

import "github.com/charmbracelet/lipgloss"

var (
	statusStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statusErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helpStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
)
