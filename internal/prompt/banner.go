package prompt

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var bannerAccents = []string{
	"#7D56F4",
	"#FF6B6B",
	"#96CEB4",
	"#FFD700",
	"#45B7D1",
}

// Banner prints the startup banner with an accent colour picked from the
// terminal's rand source, a different look each evening.
func (t *Terminal) Banner() {
	accent := bannerAccents[t.rng.IntN(len(bannerAccents))]
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FAFAFA")).
		Background(lipgloss.Color(accent)).
		Padding(0, 1).
		Bold(true)
	fmt.Fprintln(t.out, style.Render(" ♠ ♥ Bonusly Poker ♦ ♣ "))
	fmt.Fprintln(t.out)
}
