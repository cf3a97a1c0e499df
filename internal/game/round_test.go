package game

import (
	"errors"
	"io"
	"testing"
)

// scriptedSource replays predetermined actions and amounts.
type scriptedSource struct {
	actions []Action
	amounts []int
	ai, mi  int
	err     error
}

func (s *scriptedSource) RequestAction(player string, round int) (Action, error) {
	if s.err != nil {
		return 0, s.err
	}
	if s.ai >= len(s.actions) {
		return 0, io.EOF
	}
	a := s.actions[s.ai]
	s.ai++
	return a, nil
}

func (s *scriptedSource) RequestAmount(player string, kind Action, balance int) (int, error) {
	if s.mi >= len(s.amounts) {
		return 0, io.EOF
	}
	v := s.amounts[s.mi]
	s.mi++
	return v, nil
}

// captureSink collects emitted lines so tests can assert on them.
type captureSink struct {
	lines []string
}

func (c *captureSink) Emit(line string) {
	c.lines = append(c.lines, line)
}

func TestRecordRoundSeatingOrder(t *testing.T) {
	g := newTestGame(t)
	source := &scriptedSource{
		actions: []Action{Bet, Call, Fold},
		amounts: []int{20, 20},
	}
	rec := NewRecorder(g, source, &captureSink{})

	if err := rec.RecordRound(); err != nil {
		t.Fatalf("RecordRound: %v", err)
	}

	if g.CurrentRound != 2 {
		t.Errorf("CurrentRound = %d, want 2", g.CurrentRound)
	}
	if g.Pot != 40 {
		t.Errorf("pot = %d, want 40", g.Pot)
	}

	wantOrder := []struct {
		player string
		action Action
		amount int
		pot    int
	}{
		{"Alice", Bet, 20, 20},
		{"Bob", Call, 20, 40},
		{"Cara", Fold, 0, 40},
	}
	if len(g.History) != len(wantOrder) {
		t.Fatalf("history has %d entries, want %d", len(g.History), len(wantOrder))
	}
	for i, want := range wantOrder {
		h := g.History[i]
		if h.Player != want.player || h.Action != want.action || h.Amount != want.amount || h.PotAfter != want.pot {
			t.Errorf("history[%d] = %+v, want %+v", i, h, want)
		}
		if h.Round != 1 {
			t.Errorf("history[%d].Round = %d, want 1", i, h.Round)
		}
	}
}

func TestRecordRoundReRequestsOverdraw(t *testing.T) {
	g := newTestGame(t)
	// Alice has 100. First amount is an overdraw, second is negative,
	// third is accepted. Bob and Cara check.
	source := &scriptedSource{
		actions: []Action{Bet, Check, Check},
		amounts: []int{500, -10, 60},
	}
	sink := &captureSink{}
	rec := NewRecorder(g, source, sink)

	if err := rec.RecordRound(); err != nil {
		t.Fatalf("RecordRound: %v", err)
	}

	alice := g.Participant("Alice")
	if got := alice.TotalCommitted(); got != 60 {
		t.Errorf("Alice committed %d, want 60", got)
	}
	if len(alice.Commitments) != 1 {
		t.Errorf("Alice has %d commitments, want 1", len(alice.Commitments))
	}
	if g.Pot != 60 {
		t.Errorf("pot = %d, want 60", g.Pot)
	}

	rejections := 0
	for _, line := range sink.lines {
		if line == "Amount cannot be negative. Enter it again." {
			rejections++
		}
	}
	if rejections != 1 {
		t.Errorf("saw %d negative-amount rejections, want 1", rejections)
	}
}

func TestRecordRoundSkipsAmountForFoldAndCheck(t *testing.T) {
	g := newTestGame(t)
	// No amounts scripted: any RequestAmount call would return io.EOF
	// and fail the round.
	source := &scriptedSource{
		actions: []Action{Fold, Check, Fold},
	}
	rec := NewRecorder(g, source, &captureSink{})

	if err := rec.RecordRound(); err != nil {
		t.Fatalf("RecordRound: %v", err)
	}
	if g.Pot != 0 {
		t.Errorf("pot = %d, want 0", g.Pot)
	}
}

func TestRecordRoundAfterWinner(t *testing.T) {
	g := newTestGame(t)
	if err := g.SetWinner("Alice"); err != nil {
		t.Fatalf("SetWinner: %v", err)
	}

	rec := NewRecorder(g, &scriptedSource{}, &captureSink{})
	err := rec.RecordRound()
	if !errors.Is(err, ErrAlreadyFinalized) {
		t.Fatalf("error = %v, want ErrAlreadyFinalized", err)
	}
}

func TestRecordRoundPropagatesSourceError(t *testing.T) {
	g := newTestGame(t)
	rec := NewRecorder(g, &scriptedSource{err: io.ErrUnexpectedEOF}, &captureSink{})

	err := rec.RecordRound()
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("error = %v, want wrapped io.ErrUnexpectedEOF", err)
	}
	if g.CurrentRound != 1 {
		t.Errorf("CurrentRound advanced to %d on failed round", g.CurrentRound)
	}
}

func TestPotMatchesTotalCommitted(t *testing.T) {
	g := newTestGame(t)
	source := &scriptedSource{
		actions: []Action{Bet, Raise, Call, Call, Check, Fold},
		amounts: []int{10, 25, 25, 15},
	}
	rec := NewRecorder(g, source, &captureSink{})

	for range 2 {
		if err := rec.RecordRound(); err != nil {
			t.Fatalf("RecordRound: %v", err)
		}
	}

	total := 0
	for _, p := range g.Participants {
		total += p.TotalCommitted()
	}
	if g.Pot != total {
		t.Errorf("pot = %d but participants committed %d", g.Pot, total)
	}
	if g.CurrentRound != 3 {
		t.Errorf("CurrentRound = %d, want 3", g.CurrentRound)
	}
}
