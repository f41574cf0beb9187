package theme

import "github.com/charmbracelet/lipgloss"

// Theme centralizes Lip Gloss styles for the journal screen.
type Theme struct {
	Header HeaderTheme
	Panel  PanelTheme
	Footer FooterTheme
}

// HeaderTheme styles the title line with the date and mood.
type HeaderTheme struct {
	Badge   lipgloss.Style
	Date    lipgloss.Style
	Section lipgloss.Style
}

// PanelTheme styles the framed note, input and action panes.
type PanelTheme struct {
	Focused  lipgloss.Style
	Blurred  lipgloss.Style
	Selected lipgloss.Style
	Faint    lipgloss.Style
}

// FooterTheme groups styles used by the mood bar and status line.
type FooterTheme struct {
	Status lipgloss.Style
	Mood   lipgloss.Style
	Picked lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
	selected := lipgloss.NewStyle().
		Foreground(lipgloss.Color("218")).
		Bold(true)
	faint := lipgloss.NewStyle().Faint(true)

	return Theme{
		Header: HeaderTheme{
			Badge: lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("15")).
				Background(lipgloss.Color("245")).
				Padding(0, 2),
			Date:    lipgloss.NewStyle().Bold(true).MarginLeft(1),
			Section: lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("244")),
		},
		Panel: PanelTheme{
			Focused:  frame.BorderForeground(lipgloss.Color("218")),
			Blurred:  frame.BorderForeground(lipgloss.Color("240")),
			Selected: selected,
			Faint:    faint,
		},
		Footer: FooterTheme{
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
			Mood:   faint,
			Picked: selected,
		},
	}
}
