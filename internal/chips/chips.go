// Package chips maps physical chip counts to Bonusly amounts. Tables play
// with a small set of chip denominations; the scale fixes how much Bonusly
// a one-unit chip is worth so stacks of real chips convert to point values.
package chips

import "fmt"

// DefaultDenominations are the chip sizes dealt at the table, in ascending
// chip units.
var DefaultDenominations = []int{1, 5, 25, 100}

// Scale fixes the Bonusly value of chips for one game.
type Scale struct {
	// BaseUnit is the Bonusly value of a one-unit chip.
	BaseUnit int
	// Denominations are the chip sizes in play, ascending.
	Denominations []int
	// Note describes how the base unit was derived, for display.
	Note string
}

// ForLowestStack derives a scale from the smallest starting balance at the
// table. The 100-unit chip lands at roughly a quarter of that stack; when
// the stack is too small for that to give a whole base unit, the scale
// falls back to valuing the stack at about one hundred single chips.
func ForLowestStack(minStack int, denominations []int) (Scale, error) {
	if minStack < 1 {
		return Scale{}, fmt.Errorf("lowest stack must be positive, got %d", minStack)
	}
	if len(denominations) == 0 {
		denominations = DefaultDenominations
	}
	for i, d := range denominations {
		if d < 1 {
			return Scale{}, fmt.Errorf("denomination must be positive, got %d", d)
		}
		if i > 0 && d <= denominations[i-1] {
			return Scale{}, fmt.Errorf("denominations must be strictly ascending")
		}
	}

	chip100 := minStack / 4
	base := chip100 / 100
	note := "100-unit chip is about a quarter of the lowest starting stack"
	if base < 1 {
		base = max(1, minStack/100)
		note = "lowest starting stack is worth about a hundred single chips"
	}
	return Scale{
		BaseUnit:      base,
		Denominations: append([]int(nil), denominations...),
		Note:          note,
	}, nil
}

// Value returns the Bonusly value of one chip of the given denomination.
func (s Scale) Value(denomination int) int {
	return denomination * s.BaseUnit
}

// Amount converts per-denomination chip counts into a Bonusly amount.
// counts aligns with Denominations; missing trailing counts are zero.
func (s Scale) Amount(counts []int) int {
	units := 0
	for i, d := range s.Denominations {
		if i >= len(counts) {
			break
		}
		units += d * counts[i]
	}
	return units * s.BaseUnit
}
