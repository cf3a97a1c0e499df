package game

import "fmt"

// Commitment is Bonusly moved into the pot by one action.
type Commitment struct {
	Round  int
	Amount int
}

// ActionRecord is one recorded action, kept in the order it happened.
type ActionRecord struct {
	Round int
	Kind  Action
}

// Participant tracks one player's balance and history for a single game.
type Participant struct {
	Name            string
	StartingBalance int
	Commitments     []Commitment
	Actions         []ActionRecord
}

// NewParticipant returns a participant with the given starting balance and
// no recorded history.
func NewParticipant(name string, startingBalance int) *Participant {
	return &Participant{Name: name, StartingBalance: startingBalance}
}

// TotalCommitted sums every commitment recorded this game. It is always
// recomputed from the commitment log, never cached.
func (p *Participant) TotalCommitted() int {
	total := 0
	for _, c := range p.Commitments {
		total += c.Amount
	}
	return total
}

// CurrentBalance is the Bonusly the participant can still commit this game.
func (p *Participant) CurrentBalance() int {
	return p.StartingBalance - p.TotalCommitted()
}

// RecordAction appends one action for the given round. Actions that carry an
// amount also append a commitment when the amount is positive. Commitments
// beyond the current balance are rejected, and on any error no state changes.
func (p *Participant) RecordAction(round int, kind Action, amount int) error {
	if round < 1 {
		return fmt.Errorf("invalid round %d", round)
	}
	if !kind.RequiresAmount() {
		amount = 0
	}
	if amount < 0 {
		return fmt.Errorf("negative amount %d for %s", amount, kind)
	}
	if amount > p.CurrentBalance() {
		return fmt.Errorf("%w: %s has %d, tried to commit %d",
			ErrInsufficientBalance, p.Name, p.CurrentBalance(), amount)
	}
	if amount > 0 {
		p.Commitments = append(p.Commitments, Commitment{Round: round, Amount: amount})
	}
	p.Actions = append(p.Actions, ActionRecord{Round: round, Kind: kind})
	return nil
}
