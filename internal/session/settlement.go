package session

import (
	"errors"
	"fmt"
	"sort"
)

// Transfer is one suggested payment that settles part of the session.
type Transfer struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Amount int    `json:"amount"`
}

// ErrUnbalancedInput is returned when the net totals handed to Settle do
// not sum to zero, which means the per-game bookkeeping was corrupted.
var ErrUnbalancedInput = errors.New("net totals do not sum to zero")

// Settle turns cumulative net totals into a transfer plan. Each step pays
// the largest outstanding debt toward the largest outstanding credit,
// breaking ties by lexicographically smallest name, so the plan is
// deterministic and moves exactly the total outstanding debt. A plan never
// contains zero-amount transfers.
func Settle(totals map[string]int) ([]Transfer, error) {
	sum := 0
	for _, v := range totals {
		sum += v
	}
	if sum != 0 {
		return nil, fmt.Errorf("%w: off by %+d", ErrUnbalancedInput, sum)
	}

	names := make([]string, 0, len(totals))
	for name := range totals {
		names = append(names, name)
	}
	sort.Strings(names)

	type party struct {
		name      string
		remaining int
	}
	var debtors, creditors []party
	for _, name := range names {
		switch v := totals[name]; {
		case v < 0:
			debtors = append(debtors, party{name, -v})
		case v > 0:
			creditors = append(creditors, party{name, v})
		}
	}

	// Selecting with a strict > keeps the earliest entry on ties, and the
	// slices are in name order, so ties resolve to the smallest name.
	largest := func(parties []party) int {
		idx := 0
		for i := 1; i < len(parties); i++ {
			if parties[i].remaining > parties[idx].remaining {
				idx = i
			}
		}
		return idx
	}

	transfers := []Transfer{}
	for len(debtors) > 0 && len(creditors) > 0 {
		di := largest(debtors)
		ci := largest(creditors)
		amount := min(debtors[di].remaining, creditors[ci].remaining)
		transfers = append(transfers, Transfer{
			From:   debtors[di].name,
			To:     creditors[ci].name,
			Amount: amount,
		})
		debtors[di].remaining -= amount
		creditors[ci].remaining -= amount
		if debtors[di].remaining == 0 {
			debtors = append(debtors[:di], debtors[di+1:]...)
		}
		if creditors[ci].remaining == 0 {
			creditors = append(creditors[:ci], creditors[ci+1:]...)
		}
	}
	return transfers, nil
}
