package game

import "fmt"

// ActionSource supplies actions and amounts during round recording.
// Implementations may prompt a human at a terminal or replay a script in
// tests.
type ActionSource interface {
	// RequestAction asks what the named participant did this round.
	RequestAction(player string, round int) (Action, error)

	// RequestAmount asks how much Bonusly the action committed. balance
	// is the most the participant can commit. The recorder revalidates
	// the answer and asks again if it is out of range.
	RequestAmount(player string, kind Action, balance int) (int, error)
}

// OutputSink receives progress lines while a round is recorded.
type OutputSink interface {
	Emit(line string)
}

// Recorder walks participants in seating order and folds their accepted
// actions into the game state.
type Recorder struct {
	game   *Game
	source ActionSource
	sink   OutputSink
}

// NewRecorder returns a recorder bound to the given game and collaborators.
func NewRecorder(g *Game, source ActionSource, sink OutputSink) *Recorder {
	return &Recorder{game: g, source: source, sink: sink}
}

// RecordRound records one complete betting round. Every participant gets
// exactly one turn, in seating order. The round counter advances only after
// every turn has been accepted.
func (r *Recorder) RecordRound() error {
	if r.game.Finalized() {
		return fmt.Errorf("%w: cannot record another round", ErrAlreadyFinalized)
	}
	round := r.game.CurrentRound
	r.sink.Emit(fmt.Sprintf("Recording round %d.", round))
	for _, p := range r.game.Participants {
		if err := r.turn(round, p); err != nil {
			return err
		}
	}
	r.game.CurrentRound++
	return nil
}

func (r *Recorder) turn(round int, p *Participant) error {
	r.sink.Emit(fmt.Sprintf("It's %s's turn (balance %d).", p.Name, p.CurrentBalance()))
	kind, err := r.source.RequestAction(p.Name, round)
	if err != nil {
		return fmt.Errorf("requesting action for %s: %w", p.Name, err)
	}
	amount := 0
	if kind.RequiresAmount() {
		for {
			amount, err = r.source.RequestAmount(p.Name, kind, p.CurrentBalance())
			if err != nil {
				return fmt.Errorf("requesting amount for %s: %w", p.Name, err)
			}
			if amount < 0 {
				r.sink.Emit("Amount cannot be negative. Enter it again.")
				continue
			}
			if amount > p.CurrentBalance() {
				r.sink.Emit(fmt.Sprintf("%s only has %d Bonusly left this game. Enter it again.",
					p.Name, p.CurrentBalance()))
				continue
			}
			break
		}
	}
	if err := p.RecordAction(round, kind, amount); err != nil {
		return err
	}
	r.game.Pot += amount
	r.game.History = append(r.game.History, HistoryEntry{
		Round:    round,
		Player:   p.Name,
		Action:   kind,
		Amount:   amount,
		PotAfter: r.game.Pot,
	})
	if amount > 0 {
		r.sink.Emit(fmt.Sprintf("Recorded %s: %s %d. Pot is now %d.", p.Name, kind, amount, r.game.Pot))
	} else {
		r.sink.Emit(fmt.Sprintf("Recorded %s: %s. Pot is now %d.", p.Name, kind, r.game.Pot))
	}
	return nil
}
