package display

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the styles used when rendering reports.
type Theme struct {
	Bold lipgloss.Style
	Red  lipgloss.Style
}

func DefaultTheme() *Theme {
	return &Theme{
		Bold: lipgloss.NewStyle().Bold(true),
		Red:  lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	}
}
