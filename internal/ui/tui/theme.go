package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Help     lipgloss.Style
	Card     lipgloss.Style
	Error    lipgloss.Style
	Result   lipgloss.Style
	Focused  lipgloss.Style
	Blurred  lipgloss.Style
	Disabled lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Card: lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Result: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		Focused: lipgloss.NewStyle().
			Padding(0, 1).
			Reverse(true),
		Blurred:  lipgloss.NewStyle().Padding(0, 1),
		Disabled: lipgloss.NewStyle().Padding(0, 1).Faint(true),
	}
}
