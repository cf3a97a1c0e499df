package tui

import "github.com/charmbracelet/lipgloss"

// Styles contains all styling for the session browser.
type Styles struct {
	Header  lipgloss.Style
	Pane    lipgloss.Style
	Label   lipgloss.Style
	Pot     lipgloss.Style
	Winner  lipgloss.Style
	Credit  lipgloss.Style
	Debt    lipgloss.Style
	Footer  lipgloss.Style
}

// DefaultStyles returns the standard browser palette.
func DefaultStyles() *Styles {
	return &Styles{
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true),
		Pane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#626262")).
			Padding(1),
		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		Pot: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Winner: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		Credit: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")),
		Debt: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")),
		Footer: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")),
	}
}
