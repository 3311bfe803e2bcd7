package tui

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor   = lipgloss.Color("#7C3AED")
	secondaryColor = lipgloss.Color("#6B7280")
	accentColor    = lipgloss.Color("#10B981")

	titleStyle = lipgloss.NewStyle().
			Background(primaryColor).
			Foreground(lipgloss.Color("#FFFFFF")).
			Padding(0, 1)

	inputPromptStyle = lipgloss.NewStyle().
				Foreground(primaryColor)

	messageStyle = lipgloss.NewStyle().
			Foreground(secondaryColor).
			Italic(true)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(0, 1)

	headingStyle = lipgloss.NewStyle().
			Bold(true)

	actionStyle = lipgloss.NewStyle().
			Foreground(accentColor)

	helpStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)
)
