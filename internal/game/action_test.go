package game

import "testing"

func TestActionString(t *testing.T) {
	cases := []struct {
		action Action
		want   string
	}{
		{Fold, "fold"},
		{Check, "check"},
		{Call, "call"},
		{Bet, "bet"},
		{Raise, "raise"},
		{AllIn, "all-in"},
	}
	for _, tc := range cases {
		if got := tc.action.String(); got != tc.want {
			t.Errorf("Action(%d).String() = %q, want %q", int(tc.action), got, tc.want)
		}
	}
}

func TestParseAction(t *testing.T) {
	cases := []struct {
		input string
		want  Action
	}{
		{"fold", Fold},
		{"check", Check},
		{"call", Call},
		{"bet", Bet},
		{"raise", Raise},
		{"all-in", AllIn},
		{"allin", AllIn},
		{"FOLD", Fold},
		{"  Raise  ", Raise},
		{"All-In", AllIn},
	}
	for _, tc := range cases {
		got, err := ParseAction(tc.input)
		if err != nil {
			t.Errorf("ParseAction(%q) returned error: %v", tc.input, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseAction(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestParseActionRejectsUnknown(t *testing.T) {
	for _, input := range []string{"", "flod", "bets", "all in", "other"} {
		if _, err := ParseAction(input); err == nil {
			t.Errorf("ParseAction(%q) succeeded, want error", input)
		}
	}
}

func TestParseActionRoundTrip(t *testing.T) {
	for _, a := range []Action{Fold, Check, Call, Bet, Raise, AllIn} {
		got, err := ParseAction(a.String())
		if err != nil {
			t.Fatalf("ParseAction(%q) returned error: %v", a.String(), err)
		}
		if got != a {
			t.Errorf("round trip of %v produced %v", a, got)
		}
	}
}

func TestRequiresAmount(t *testing.T) {
	withAmount := []Action{Call, Bet, Raise, AllIn}
	withoutAmount := []Action{Fold, Check}

	for _, a := range withAmount {
		if !a.RequiresAmount() {
			t.Errorf("%v.RequiresAmount() = false, want true", a)
		}
	}
	for _, a := range withoutAmount {
		if a.RequiresAmount() {
			t.Errorf("%v.RequiresAmount() = true, want false", a)
		}
	}
}
