package chips

import "testing"

func TestForLowestStack(t *testing.T) {
	cases := []struct {
		name     string
		minStack int
		wantBase int
	}{
		{"large stack uses quarter rule", 2000, 5},
		{"exact quarter boundary", 400, 1},
		{"small stack falls back", 300, 3},
		{"tiny stack clamps to one", 50, 1},
		{"single point stack", 1, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			scale, err := ForLowestStack(tc.minStack, nil)
			if err != nil {
				t.Fatalf("ForLowestStack(%d): %v", tc.minStack, err)
			}
			if scale.BaseUnit != tc.wantBase {
				t.Errorf("base unit = %d, want %d", scale.BaseUnit, tc.wantBase)
			}
			if scale.Note == "" {
				t.Error("scale has no derivation note")
			}
		})
	}
}

func TestForLowestStackValidation(t *testing.T) {
	if _, err := ForLowestStack(0, nil); err == nil {
		t.Error("zero stack accepted")
	}
	if _, err := ForLowestStack(100, []int{1, 5, 5}); err == nil {
		t.Error("non-ascending denominations accepted")
	}
	if _, err := ForLowestStack(100, []int{0, 5}); err == nil {
		t.Error("zero denomination accepted")
	}
}

func TestScaleValue(t *testing.T) {
	scale, err := ForLowestStack(2000, nil)
	if err != nil {
		t.Fatalf("ForLowestStack: %v", err)
	}
	// Base unit 5: chips are worth 5, 25, 125 and 500 Bonusly.
	wants := map[int]int{1: 5, 5: 25, 25: 125, 100: 500}
	for denom, want := range wants {
		if got := scale.Value(denom); got != want {
			t.Errorf("Value(%d) = %d, want %d", denom, got, want)
		}
	}
}

func TestScaleAmount(t *testing.T) {
	scale := Scale{BaseUnit: 2, Denominations: []int{1, 5, 25, 100}}

	cases := []struct {
		name   string
		counts []int
		want   int
	}{
		{"no chips", []int{0, 0, 0, 0}, 0},
		{"singles only", []int{3}, 6},
		{"mixed stack", []int{2, 1, 1, 0}, 64},
		{"hundreds", []int{0, 0, 0, 2}, 400},
		{"short counts", []int{1, 1}, 12},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := scale.Amount(tc.counts); got != tc.want {
				t.Errorf("Amount(%v) = %d, want %d", tc.counts, got, tc.want)
			}
		})
	}
}

func TestDefaultDenominationsCopied(t *testing.T) {
	scale, err := ForLowestStack(1000, nil)
	if err != nil {
		t.Fatalf("ForLowestStack: %v", err)
	}
	scale.Denominations[0] = 999
	if DefaultDenominations[0] != 1 {
		t.Error("scale shares backing array with DefaultDenominations")
	}
}
