package results

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title      lipgloss.Style
	header     lipgloss.Style
	group      lipgloss.Style
	test       lipgloss.Style
	passed     lipgloss.Style
	failed     lipgloss.Style
	detail     lipgloss.Style
	errorText  lipgloss.Style
	logPath    lipgloss.Style
	section    lipgloss.Style
	empty      lipgloss.Style
	barBracket lipgloss.Style
	barFill    lipgloss.Style
	barEmpty   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:      lipgloss.NewStyle().Bold(true),
		header:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		group:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		test:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		passed:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		failed:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		detail:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")).PaddingLeft(2),
		errorText:  lipgloss.NewStyle().Foreground(lipgloss.Color("210")).PaddingLeft(4),
		logPath:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")).PaddingLeft(4),
		section:    lipgloss.NewStyle().MarginTop(1),
		empty:      lipgloss.NewStyle().Faint(true),
		barBracket: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		barFill:    lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		barEmpty:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	}
}
