package tracks

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title      lipgloss.Style
	header     lipgloss.Style
	track      lipgloss.Style
	time       lipgloss.Style
	talk       lipgloss.Style
	fixture    lipgloss.Style
	warning    lipgloss.Style
	section    lipgloss.Style
	empty      lipgloss.Style
	unschedule lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:      lipgloss.NewStyle().Bold(true),
		header:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		track:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		time:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		talk:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		fixture:    lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("159")),
		warning:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		section:    lipgloss.NewStyle().MarginTop(1),
		empty:      lipgloss.NewStyle().Faint(true),
		unschedule: lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	}
}
