package game

import "fmt"

// Role is a table position assigned at setup.
type Role string

const (
	RoleDealer     Role = "dealer"
	RoleSmallBlind Role = "smallBlind"
	RoleBigBlind   Role = "bigBlind"
)

// Label returns the human-readable form used in prompts and summaries.
func (r Role) Label() string {
	switch r {
	case RoleDealer:
		return "Dealer"
	case RoleSmallBlind:
		return "Small blind"
	case RoleBigBlind:
		return "Big blind"
	}
	return string(r)
}

// Roles holds the table position assignments for one game. The same
// participant may hold more than one role, as happens heads-up.
type Roles struct {
	Dealer     string
	SmallBlind string
	BigBlind   string
}

// HistoryEntry is one accepted action in the shared game log.
type HistoryEntry struct {
	Round    int
	Player   string
	Action   Action
	Amount   int
	PotAfter int
}

// Game is a single game of Bonusly poker: the participants in seating
// order, their role assignments, the pot and the shared action history.
// Once a winner is set the game is finalized and immutable.
type Game struct {
	Participants []*Participant
	Roles        Roles
	Pot          int
	CurrentRound int
	History      []HistoryEntry
	Winner       string
	NetResults   map[string]int
}

// NewGame validates the roster and role assignments and returns a game
// ready for round one.
func NewGame(participants []*Participant, roles Roles) (*Game, error) {
	if len(participants) < 2 {
		return nil, fmt.Errorf("need at least 2 participants, got %d", len(participants))
	}
	seen := make(map[string]bool, len(participants))
	for _, p := range participants {
		if p.Name == "" {
			return nil, fmt.Errorf("participant with empty name")
		}
		if seen[p.Name] {
			return nil, fmt.Errorf("duplicate participant %q", p.Name)
		}
		seen[p.Name] = true
	}
	for _, a := range []struct {
		role Role
		name string
	}{
		{RoleDealer, roles.Dealer},
		{RoleSmallBlind, roles.SmallBlind},
		{RoleBigBlind, roles.BigBlind},
	} {
		if !seen[a.name] {
			return nil, fmt.Errorf("%w: %s %q", ErrUnknownPlayer, a.role.Label(), a.name)
		}
	}
	return &Game{
		Participants: participants,
		Roles:        roles,
		CurrentRound: 1,
		NetResults:   make(map[string]int),
	}, nil
}

// Participant returns the named participant, or nil if no such player.
func (g *Game) Participant(name string) *Participant {
	for _, p := range g.Participants {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// Finalized reports whether a winner has been declared.
func (g *Game) Finalized() bool {
	return g.Winner != ""
}

// SetWinner declares the winner and computes every participant's net
// result: the winner nets the pot minus their own commitments, everyone
// else nets the negative of what they committed. Net results always sum
// to zero because the pot is exactly the sum of all commitments.
func (g *Game) SetWinner(name string) error {
	if g.Finalized() {
		return fmt.Errorf("%w: winner is %s", ErrAlreadyFinalized, g.Winner)
	}
	if g.Participant(name) == nil {
		return fmt.Errorf("%w: %q", ErrUnknownPlayer, name)
	}
	g.Winner = name
	for _, p := range g.Participants {
		net := -p.TotalCommitted()
		if p.Name == name {
			net += g.Pot
		}
		g.NetResults[p.Name] = net
	}
	return nil
}
