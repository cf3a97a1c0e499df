package prompt

import (
	"fmt"

	"github.com/lox/bonusly-poker/internal/game"
	"github.com/lox/bonusly-poker/internal/session"
)

// GameSummary writes the end-of-game summary: roles, pot, per-player
// commitments, the winner and the action log.
func (t *Terminal) GameSummary(g *game.Game) {
	t.Emit("")
	t.Emit(sectionStyle.Render(" Game summary "))
	t.Emit(fmt.Sprintf("Dealer: %s   Small blind: %s   Big blind: %s",
		g.Roles.Dealer, g.Roles.SmallBlind, g.Roles.BigBlind))
	t.Emit(potStyle.Render(fmt.Sprintf("Pot: %d Bonusly", g.Pot)))
	for _, p := range g.Participants {
		t.Emit(fmt.Sprintf("  %s committed %d, balance %d of %d",
			p.Name, p.TotalCommitted(), p.CurrentBalance(), p.StartingBalance))
	}
	if g.Finalized() {
		t.Emit(winnerStyle.Render(fmt.Sprintf("Winner: %s", g.Winner)))
		for _, p := range g.Participants {
			t.Emit(fmt.Sprintf("  %s: %+d", p.Name, g.NetResults[p.Name]))
		}
	}
	if len(g.History) > 0 {
		t.Emit(infoStyle.Render("Action log:"))
		for _, h := range g.History {
			if h.Amount > 0 {
				t.Emit(fmt.Sprintf("  round %d: %s %s %d (pot %d)",
					h.Round, h.Player, h.Action, h.Amount, h.PotAfter))
			} else {
				t.Emit(fmt.Sprintf("  round %d: %s %s (pot %d)",
					h.Round, h.Player, h.Action, h.PotAfter))
			}
		}
	}
}

// SessionSummary writes the cumulative totals and the settlement plan.
func (t *Terminal) SessionSummary(totals []session.NetTotal, transfers []session.Transfer) {
	t.Emit("")
	t.Emit(sectionStyle.Render(" Session totals "))
	for _, nt := range totals {
		t.Emit(fmt.Sprintf("  %s: %+d Bonusly", nt.Name, nt.Total))
	}
	t.Emit("")
	if len(transfers) == 0 {
		t.Emit("Everyone is even. Nothing to settle.")
		return
	}
	t.Emit(sectionStyle.Render(" Suggested settlement "))
	for _, tr := range transfers {
		t.Emit(fmt.Sprintf("  %s pays %s %d Bonusly", tr.From, tr.To, tr.Amount))
	}
}
