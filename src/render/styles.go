package render

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles holds the lipgloss styles used by the console narration.
type Styles struct {
	Marker  lipgloss.Style
	Swap    lipgloss.Style
	Keep    lipgloss.Style
	Notice  lipgloss.Style
	Banner  lipgloss.Style
	Muted   lipgloss.Style
	colored bool
}

// DefaultStyles returns the coloured style set.
func DefaultStyles() Styles {
	return Styles{
		Marker: lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")). // Amber
			Bold(true),
		Swap: lipgloss.NewStyle().
			Foreground(lipgloss.Color("167")), // Muted red
		Keep: lipgloss.NewStyle().
			Foreground(lipgloss.Color("71")), // Muted green
		Notice: lipgloss.NewStyle().
			Foreground(lipgloss.Color("75")).
			Bold(true),
		Banner: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")),
		colored: true,
	}
}

// PlainStyles returns a style set that leaves text untouched.
func PlainStyles() Styles {
	return Styles{}
}

// Paint applies st to text when the set is coloured.
func (s Styles) Paint(st lipgloss.Style, text string) string {
	if !s.colored || text == "" {
		return text
	}
	return st.Render(text)
}
