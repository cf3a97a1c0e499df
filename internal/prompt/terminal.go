// Package prompt implements the interactive terminal collaborators: the
// line-based prompts that drive table setup, round recording and session
// wrap-up.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	rand "math/rand/v2"
	"strconv"
	"strings"

	"github.com/lox/bonusly-poker/internal/chips"
	"github.com/lox/bonusly-poker/internal/game"
	"github.com/lox/bonusly-poker/internal/session"
)

// Terminal prompts a human over a line-based reader and writer. It
// implements game.ActionSource and game.OutputSink.
type Terminal struct {
	scanner  *bufio.Scanner
	out      io.Writer
	rng      *rand.Rand
	scale    chips.Scale
	scaleSet bool
}

// NewTerminal returns a terminal reading from in and writing to out. The
// rand source only drives cosmetic choices, never bookkeeping.
func NewTerminal(in io.Reader, out io.Writer, rng *rand.Rand) *Terminal {
	return &Terminal{
		scanner: bufio.NewScanner(in),
		out:     out,
		rng:     rng,
	}
}

// SetScale fixes the chip scale used for amount entry. Until a scale is
// set, amounts are entered directly in Bonusly.
func (t *Terminal) SetScale(scale chips.Scale) {
	t.scale = scale
	t.scaleSet = true
}

// Emit implements game.OutputSink.
func (t *Terminal) Emit(line string) {
	fmt.Fprintln(t.out, line)
}

// ReadLine shows prompt and returns the next input line, trimmed. It
// returns io.EOF once input is exhausted.
func (t *Terminal) ReadLine(prompt string) (string, error) {
	fmt.Fprint(t.out, prompt)
	if !t.scanner.Scan() {
		if err := t.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(t.scanner.Text()), nil
}

// ReadInt prompts until a whole number is entered.
func (t *Terminal) ReadInt(prompt string) (int, error) {
	for {
		line, err := t.ReadLine(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			t.Emit(errorStyle.Render("Enter a whole number."))
			continue
		}
		return n, nil
	}
}

// ReadPositiveInt prompts until a number of at least one is entered.
func (t *Terminal) ReadPositiveInt(prompt string) (int, error) {
	for {
		n, err := t.ReadInt(prompt)
		if err != nil {
			return 0, err
		}
		if n < 1 {
			t.Emit(errorStyle.Render("Must be at least 1."))
			continue
		}
		return n, nil
	}
}

// ReadYesNo prompts until the answer is yes or no.
func (t *Terminal) ReadYesNo(prompt string) (bool, error) {
	for {
		line, err := t.ReadLine(prompt + " (y/n): ")
		if err != nil {
			return false, err
		}
		switch strings.ToLower(line) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		t.Emit(errorStyle.Render("Please answer y or n."))
	}
}

// ChoosePlayer prompts until the answer matches one of the given names.
func (t *Terminal) ChoosePlayer(prompt string, names []string) (string, error) {
	for {
		line, err := t.ReadLine(fmt.Sprintf("%s (%s): ", prompt, strings.Join(names, ", ")))
		if err != nil {
			return "", err
		}
		for _, name := range names {
			if name == line {
				return line, nil
			}
		}
		t.Emit(errorStyle.Render(fmt.Sprintf("%q is not at the table.", line)))
	}
}

// CollectPlayers prompts for player names and starting balances until a
// blank name finishes the list. At least two players are required.
func (t *Terminal) CollectPlayers() ([]session.PlayerConfig, error) {
	var players []session.PlayerConfig
	seen := make(map[string]bool)
	for {
		name, err := t.ReadLine(fmt.Sprintf("Player %d name (blank to finish): ", len(players)+1))
		if err != nil {
			return nil, err
		}
		if name == "" {
			if len(players) >= 2 {
				return players, nil
			}
			t.Emit(errorStyle.Render("Need at least two players."))
			continue
		}
		if seen[name] {
			t.Emit(errorStyle.Render(fmt.Sprintf("%q is already seated.", name)))
			continue
		}
		stack, err := t.ReadPositiveInt(fmt.Sprintf("Starting Bonusly for %s: ", name))
		if err != nil {
			return nil, err
		}
		players = append(players, session.PlayerConfig{Name: name, Stack: stack})
		seen[name] = true
	}
}

// CollectRoles fills in the table roles, keeping any preset assignment
// that matches a seated player and prompting for the rest.
func (t *Terminal) CollectRoles(names []string, preset game.Roles) (game.Roles, error) {
	valid := func(name string) bool {
		for _, n := range names {
			if n == name {
				return true
			}
		}
		return false
	}

	roles := game.Roles{}
	for _, r := range []struct {
		label  string
		preset string
		dest   *string
	}{
		{"Who deals", preset.Dealer, &roles.Dealer},
		{"Who posts the small blind", preset.SmallBlind, &roles.SmallBlind},
		{"Who posts the big blind", preset.BigBlind, &roles.BigBlind},
	} {
		if r.preset != "" && valid(r.preset) {
			*r.dest = r.preset
			continue
		}
		name, err := t.ChoosePlayer(r.label, names)
		if err != nil {
			return game.Roles{}, err
		}
		*r.dest = name
	}
	return roles, nil
}

// RequestAction implements game.ActionSource. Unrecognised input prompts
// again instead of being recorded.
func (t *Terminal) RequestAction(player string, round int) (game.Action, error) {
	for {
		line, err := t.ReadLine(fmt.Sprintf("What did %s do? (fold/check/call/bet/raise/all-in): ", player))
		if err != nil {
			return 0, err
		}
		action, err := game.ParseAction(line)
		if err != nil {
			t.Emit(errorStyle.Render("That's not an action. Use fold, check, call, bet, raise or all-in."))
			continue
		}
		return action, nil
	}
}

// RequestAmount implements game.ActionSource. With a chip scale set the
// amount is entered as chip counts per denomination; otherwise it is a
// plain Bonusly figure. A blank count means none of that chip.
func (t *Terminal) RequestAmount(player string, kind game.Action, balance int) (int, error) {
	if !t.scaleSet {
		for {
			n, err := t.ReadInt(fmt.Sprintf("How much did %s put in for the %s? ", player, kind))
			if err != nil {
				return 0, err
			}
			if n < 0 {
				t.Emit(errorStyle.Render("Amounts cannot be negative."))
				continue
			}
			return n, nil
		}
	}

	t.Emit(infoStyle.Render(fmt.Sprintf("Count %s's chips for the %s. One chip unit is %d Bonusly (%s).",
		player, kind, t.scale.BaseUnit, t.scale.Note)))
	counts := make([]int, len(t.scale.Denominations))
	for i, denom := range t.scale.Denominations {
		for {
			line, err := t.ReadLine(fmt.Sprintf("  %d-unit chips (%d Bonusly each): ", denom, t.scale.Value(denom)))
			if err != nil {
				return 0, err
			}
			if line == "" {
				break
			}
			n, err := strconv.Atoi(line)
			if err != nil || n < 0 {
				t.Emit(errorStyle.Render("Enter a count of zero or more."))
				continue
			}
			counts[i] = n
			break
		}
	}
	amount := t.scale.Amount(counts)
	t.Emit(fmt.Sprintf("That comes to %d Bonusly.", amount))
	return amount, nil
}
