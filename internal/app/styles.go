package app

import "github.com/charmbracelet/lipgloss"

var (
	popupStyle    = lipgloss.NewStyle().Border(lipgloss.ThickBorder()).Padding(0, 1)
	titleStyle    = lipgloss.NewStyle().Bold(true)
	subtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("246"))
	focusStyle    = lipgloss.NewStyle().Background(lipgloss.Color("53")).Foreground(lipgloss.Color("252"))
	areaStyle     = lipgloss.NewStyle().Bold(true)
	extraRowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	totalLabel    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("244"))
	totalValue    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("231"))
	controlStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	armedStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	summaryStyle  = lipgloss.NewStyle().Background(lipgloss.Color("236"))
)
