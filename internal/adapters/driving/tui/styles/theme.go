// Package styles defines the shared lipgloss styles for gate's
// terminal output.
package styles

import "github.com/charmbracelet/lipgloss"

// Styles holds the rendering styles used by the CLI and the
// interactive login form.
type Styles struct {
	Title      lipgloss.Style
	Label      lipgloss.Style
	InputField lipgloss.Style
	Success    lipgloss.Style
	Error      lipgloss.Style
	Muted      lipgloss.Style
}

// DefaultStyles returns the default theme.
func DefaultStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")),
		InputField: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1),
		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
	}
}
