package session

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/lox/bonusly-poker/internal/game"
)

type scriptedSource struct {
	actions []game.Action
	amounts []int
	ai, mi  int
}

func (s *scriptedSource) RequestAction(player string, round int) (game.Action, error) {
	a := s.actions[s.ai]
	s.ai++
	return a, nil
}

func (s *scriptedSource) RequestAmount(player string, kind game.Action, balance int) (int, error) {
	v := s.amounts[s.mi]
	s.mi++
	return v, nil
}

type nopSink struct{}

func (nopSink) Emit(string) {}

type SessionTestSuite struct {
	suite.Suite

	names []string
}

func (s *SessionTestSuite) SetupTest() {
	s.names = []string{"Alice", "Bob", "Cara"}
}

// recordedGame plays one round where each named player bets the matching
// amount (or checks on zero), then declares the winner.
func (s *SessionTestSuite) recordedGame(names []string, bets []int, winner string) *game.Game {
	participants := make([]*game.Participant, len(names))
	for i, n := range names {
		participants[i] = game.NewParticipant(n, 1000)
	}
	g, err := game.NewGame(participants, game.Roles{
		Dealer:     names[0],
		SmallBlind: names[1],
		BigBlind:   names[len(names)-1],
	})
	s.Require().NoError(err)

	source := &scriptedSource{}
	for _, b := range bets {
		if b > 0 {
			source.actions = append(source.actions, game.Bet)
			source.amounts = append(source.amounts, b)
		} else {
			source.actions = append(source.actions, game.Check)
		}
	}
	rec := game.NewRecorder(g, source, nopSink{})
	s.Require().NoError(rec.RecordRound())
	s.Require().NoError(g.SetWinner(winner))
	return g
}

func (s *SessionTestSuite) TestTotals_AccumulateAcrossGames() {
	sess := New()
	sess.AddGame(s.recordedGame(s.names, []int{30, 50, 0}, "Alice"))
	sess.AddGame(s.recordedGame(s.names, []int{10, 0, 40}, "Cara"))

	totals := sess.Totals()
	s.Equal(map[string]int{"Alice": 40, "Bob": -50, "Cara": 10}, totals)

	sum := 0
	for _, v := range totals {
		sum += v
	}
	s.Zero(sum, "session totals must sum to zero")
}

func (s *SessionTestSuite) TestTotals_SkipUnfinishedGames() {
	sess := New()
	sess.AddGame(s.recordedGame(s.names, []int{20, 20, 0}, "Bob"))

	unfinished, err := game.NewGame([]*game.Participant{
		game.NewParticipant("Alice", 100),
		game.NewParticipant("Bob", 100),
	}, game.Roles{Dealer: "Alice", SmallBlind: "Alice", BigBlind: "Bob"})
	s.Require().NoError(err)
	sess.AddGame(unfinished)

	s.Equal(map[string]int{"Alice": -20, "Bob": 20, "Cara": 0}, sess.Totals())
}

func (s *SessionTestSuite) TestOrderedTotals_KeepSeatOrder() {
	sess := New()
	sess.AddGame(s.recordedGame([]string{"Cara", "Alice", "Bob"}, []int{5, 5, 5}, "Bob"))

	ordered := sess.OrderedTotals()
	s.Require().Len(ordered, 3)
	s.Equal("Cara", ordered[0].Name)
	s.Equal("Alice", ordered[1].Name)
	s.Equal("Bob", ordered[2].Name)
	s.Equal(10, ordered[2].Total)
}

func (s *SessionTestSuite) TestNew_UniqueIdentifiers() {
	a, b := New(), New()
	s.NotEmpty(a.ID)
	s.NotEmpty(b.ID)
	s.NotEqual(a.ID, b.ID)
}

func (s *SessionTestSuite) TestPlayers_Copied() {
	sess := New()
	setup := []PlayerConfig{{Name: "Alice", Stack: 500}, {Name: "Bob", Stack: 300}}
	sess.SetPlayers(setup)

	setup[0].Stack = 1
	got := sess.Players()
	s.Require().Len(got, 2)
	s.Equal(500, got[0].Stack)

	got[1].Name = "Mallory"
	s.Equal("Bob", sess.Players()[1].Name)
}

func (s *SessionTestSuite) TestSettle_RestoresEveryTotal() {
	sess := New()
	sess.AddGame(s.recordedGame(s.names, []int{100, 60, 0}, "Bob"))
	sess.AddGame(s.recordedGame(s.names, []int{25, 25, 25}, "Cara"))

	transfers, err := Settle(sess.Totals())
	s.Require().NoError(err)

	received := map[string]int{}
	for _, tr := range transfers {
		received[tr.To] += tr.Amount
		received[tr.From] -= tr.Amount
	}
	for name, total := range sess.Totals() {
		s.Equal(total, received[name], "settlement does not restore %s", name)
	}
}

func TestSessionSuite(t *testing.T) {
	suite.Run(t, new(SessionTestSuite))
}
