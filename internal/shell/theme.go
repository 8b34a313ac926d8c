package shell

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Item    lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Title:   lipgloss.NewStyle().Bold(true),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Item:    lipgloss.NewStyle(),
	}
}

// PlainTheme renders everything unstyled, for NO_COLOR and tests.
func PlainTheme() Theme {
	return Theme{
		Title:   lipgloss.NewStyle(),
		Success: lipgloss.NewStyle(),
		Warning: lipgloss.NewStyle(),
		Error:   lipgloss.NewStyle(),
		Item:    lipgloss.NewStyle(),
	}
}
