// Package session accumulates the games played in one sitting, carries the
// table setup from game to game and settles the cross-game balances.
package session

import (
	"github.com/google/uuid"

	"github.com/lox/bonusly-poker/internal/game"
)

// PlayerConfig is the per-session player setup, remembered so names and
// starting balances only need entering once.
type PlayerConfig struct {
	Name  string
	Stack int
}

// Session is one sitting's worth of games.
type Session struct {
	ID      string
	games   []*game.Game
	players []PlayerConfig
}

// New returns an empty session with a fresh identifier.
func New() *Session {
	return &Session{ID: uuid.New().String()}
}

// AddGame appends a game to the session log.
func (s *Session) AddGame(g *game.Game) {
	s.games = append(s.games, g)
}

// Games returns the games in the order they were played.
func (s *Session) Games() []*game.Game {
	return s.games
}

// SetPlayers remembers the table setup for the next game.
func (s *Session) SetPlayers(players []PlayerConfig) {
	s.players = append([]PlayerConfig(nil), players...)
}

// Players returns the remembered table setup, nil before the first game.
func (s *Session) Players() []PlayerConfig {
	return append([]PlayerConfig(nil), s.players...)
}

// NetTotal is one player's cumulative result across the session.
type NetTotal struct {
	Name  string
	Total int
}

// Totals sums net results across every finalized game.
func (s *Session) Totals() map[string]int {
	totals := make(map[string]int)
	for _, g := range s.games {
		if !g.Finalized() {
			continue
		}
		for _, p := range g.Participants {
			totals[p.Name] += g.NetResults[p.Name]
		}
	}
	return totals
}

// OrderedTotals lists cumulative results in first-appearance order for
// display. Players keep their seat order from the game they first joined.
func (s *Session) OrderedTotals() []NetTotal {
	totals := s.Totals()
	seen := make(map[string]bool, len(totals))
	out := make([]NetTotal, 0, len(totals))
	for _, g := range s.games {
		if !g.Finalized() {
			continue
		}
		for _, p := range g.Participants {
			if seen[p.Name] {
				continue
			}
			seen[p.Name] = true
			out = append(out, NetTotal{Name: p.Name, Total: totals[p.Name]})
		}
	}
	return out
}
