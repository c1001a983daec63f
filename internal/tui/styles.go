package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginTop(1)

	activeTabStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")).Underline(true)
	inactiveTabStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))

	resultStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	emptyStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true)
	suggestionStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("33"))
	linkStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Underline(true)
	destinationStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	helpStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1)
)
