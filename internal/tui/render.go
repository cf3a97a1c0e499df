package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lox/bonusly-poker/internal/export"
)

// RenderOverview returns the session overview page: net totals across all
// games and the suggested settlement transfers.
func RenderOverview(env *export.Envelope, styles *Styles) string {
	var content strings.Builder

	content.WriteString(fmt.Sprintf("Session %s\n", env.ID))
	content.WriteString(fmt.Sprintf("Saved %s\n", env.SavedAt.Format("2006-01-02 15:04 MST")))
	content.WriteString(fmt.Sprintf("Games played: %d\n", len(env.Games)))
	content.WriteString("\n")

	content.WriteString(styles.Label.Render("Net totals"))
	content.WriteString("\n")
	names := make([]string, 0, len(env.NetTotals))
	for name := range env.NetTotals {
		names = append(names, name)
	}
	sort.Strings(names)
	if len(names) == 0 {
		content.WriteString("  no finished games\n")
	}
	for _, name := range names {
		content.WriteString(fmt.Sprintf("  %s: %s\n", name, renderNet(env.NetTotals[name], styles)))
	}
	content.WriteString("\n")

	if len(env.Settlements) == 0 {
		content.WriteString("Everyone is even. Nothing to settle.\n")
		return content.String()
	}
	content.WriteString(styles.Label.Render("Suggested settlement"))
	content.WriteString("\n")
	for _, tr := range env.Settlements {
		content.WriteString(fmt.Sprintf("  %s pays %s %d Bonusly\n", tr.From, tr.To, tr.Amount))
	}
	return content.String()
}

// RenderGame returns the page for one saved game: roles, pot, per-player
// commitments, the winner with net results, and the action log.
func RenderGame(env *export.Envelope, idx int, styles *Styles) string {
	g := env.Games[idx]
	var content strings.Builder

	content.WriteString(fmt.Sprintf("Dealer: %s   Small blind: %s   Big blind: %s\n",
		g.RoleAssignments.Dealer, g.RoleAssignments.SmallBlind, g.RoleAssignments.BigBlind))
	content.WriteString(styles.Pot.Render(fmt.Sprintf("Pot: %d Bonusly", g.Pot)))
	content.WriteString("\n\n")

	content.WriteString(styles.Label.Render("Players"))
	content.WriteString("\n")
	for _, p := range g.Participants {
		content.WriteString(fmt.Sprintf("  %s committed %d, balance %d of %d\n",
			p.Name, p.TotalCommitted, p.CurrentBalance, p.StartingBalance))
	}
	content.WriteString("\n")

	if g.Winner != nil {
		content.WriteString(styles.Winner.Render(fmt.Sprintf("Winner: %s", *g.Winner)))
		content.WriteString("\n")
		for _, p := range g.Participants {
			content.WriteString(fmt.Sprintf("  %s: %s\n", p.Name, renderNet(g.NetResults[p.Name], styles)))
		}
	} else {
		content.WriteString("Winner: undecided\n")
	}
	content.WriteString("\n")

	if len(g.History) == 0 {
		content.WriteString("No actions recorded.\n")
		return content.String()
	}
	content.WriteString(styles.Label.Render("Action log"))
	content.WriteString("\n")
	for _, h := range g.History {
		if h.Amount > 0 {
			content.WriteString(fmt.Sprintf("  round %d: %s %s %d (pot %d)\n",
				h.Round, h.Player, h.Action, h.Amount, h.PotAfter))
		} else {
			content.WriteString(fmt.Sprintf("  round %d: %s %s (pot %d)\n",
				h.Round, h.Player, h.Action, h.PotAfter))
		}
	}
	return content.String()
}

func renderNet(net int, styles *Styles) string {
	s := fmt.Sprintf("%+d", net)
	switch {
	case net > 0:
		return styles.Credit.Render(s)
	case net < 0:
		return styles.Debt.Render(s)
	default:
		return s
	}
}
