package game

import (
	"fmt"
	"strings"
)

// Action is one of the closed set of moves a participant can record.
type Action int

const (
	Fold Action = iota
	Check
	Call
	Bet
	Raise
	AllIn
)

func (a Action) String() string {
	return [...]string{"fold", "check", "call", "bet", "raise", "all-in"}[a]
}

// RequiresAmount reports whether the action carries a Bonusly amount.
func (a Action) RequiresAmount() bool {
	switch a {
	case Call, Bet, Raise, AllIn:
		return true
	default:
		return false
	}
}

// ParseAction converts player input into an Action. Matching is
// case-insensitive and accepts "allin" as a spelling of "all-in".
func ParseAction(s string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fold":
		return Fold, nil
	case "check":
		return Check, nil
	case "call":
		return Call, nil
	case "bet":
		return Bet, nil
	case "raise":
		return Raise, nil
	case "all-in", "allin":
		return AllIn, nil
	}
	return 0, fmt.Errorf("unknown action %q", s)
}
