package strategy

import "testing"

func TestCanonical_MakeTen(t *testing.T) {
	tests := []struct {
		a, b         int
		part1, part2 int
	}{
		{2, 13, 8, 5},
		{6, 22, 4, 18},
		{9, 20, 1, 19},
		{8, 9, 2, 7},
	}

	for _, tt := range tests {
		dec, ok := Canonical(OpAddition, tt.a, tt.b, StrategyMakeTen)
		if !ok {
			t.Fatalf("Canonical(addition, %d, %d, make_ten) returned ok=false", tt.a, tt.b)
		}
		if dec.Part1 != tt.part1 || dec.Part2 != tt.part2 {
			t.Errorf("Canonical(addition, %d, %d, make_ten) = (%d, %d), want (%d, %d)",
				tt.a, tt.b, dec.Part1, dec.Part2, tt.part1, tt.part2)
		}
		if tt.a+dec.Part1 != 10 {
			t.Errorf("make_ten part1 must complete %d to 10, got %d", tt.a, dec.Part1)
		}
	}
}

func TestCanonical_CrossingAddition(t *testing.T) {
	tests := []struct {
		a, b         int
		part1, part2 int
	}{
		{8, 9, 2, 7},
		{37, 5, 3, 2},
		{48, 9, 2, 7},
		{7, 5, 3, 2},
		// Operand2 smaller than the gap to the next ten.
		{19, 1, 1, 0},
		// Operand1 on a ten falls back to an even split.
		{20, 9, 4, 5},
	}

	for _, tt := range tests {
		dec, ok := Canonical(OpAddition, tt.a, tt.b, StrategyCrossing)
		if !ok {
			t.Fatalf("Canonical(addition, %d, %d, crossing) returned ok=false", tt.a, tt.b)
		}
		if dec.Part1 != tt.part1 || dec.Part2 != tt.part2 {
			t.Errorf("Canonical(addition, %d, %d, crossing) = (%d, %d), want (%d, %d)",
				tt.a, tt.b, dec.Part1, dec.Part2, tt.part1, tt.part2)
		}
	}
}

func TestCanonical_CrossingSubtraction(t *testing.T) {
	tests := []struct {
		a, b         int
		part1, part2 int
	}{
		// Ones-digit-first rule: subtract down to the nearest ten.
		{37, 15, 7, 8},
		{13, 5, 3, 2},
		{22, 8, 2, 6},
		{25, 15, 5, 10},
		// Operand1 on a ten, operand2 above ten: jump a full ten first.
		{30, 14, 10, 4},
		{40, 11, 10, 1},
		// Operand1 on a ten, operand2 at most ten: even split.
		{20, 7, 3, 4},
		{50, 10, 5, 5},
	}

	for _, tt := range tests {
		dec, ok := Canonical(OpSubtraction, tt.a, tt.b, StrategyCrossing)
		if !ok {
			t.Fatalf("Canonical(subtraction, %d, %d, crossing) returned ok=false", tt.a, tt.b)
		}
		if dec.Part1 != tt.part1 || dec.Part2 != tt.part2 {
			t.Errorf("Canonical(subtraction, %d, %d, crossing) = (%d, %d), want (%d, %d)",
				tt.a, tt.b, dec.Part1, dec.Part2, tt.part1, tt.part2)
		}
	}
}

func TestCanonical_BasicHasNoDecomposition(t *testing.T) {
	if _, ok := Canonical(OpAddition, 3, 4, StrategyBasic); ok {
		t.Error("basic strategy should have no canonical decomposition")
	}
}

// Every classified pair must decompose back to operand2 with
// non-negative parts. Exhaustive over the tutor's operand space.
func TestCanonical_ReconstructsOperand2(t *testing.T) {
	for a := 0; a <= 99; a++ {
		for b := 0; b <= 99; b++ {
			for _, op := range AllOperations() {
				if op == OpSubtraction && b > a {
					continue
				}
				strat := Classify(op, a, b)
				dec, ok := Canonical(op, a, b, strat)
				if !ok {
					continue
				}
				if dec.Part1+dec.Part2 != b {
					t.Fatalf("Canonical(%s, %d, %d, %s): parts (%d, %d) do not sum to %d",
						op, a, b, strat, dec.Part1, dec.Part2, b)
				}
				if dec.Part1 < 0 || dec.Part2 < 0 {
					t.Fatalf("Canonical(%s, %d, %d, %s): negative part in (%d, %d)",
						op, a, b, strat, dec.Part1, dec.Part2)
				}
			}
		}
	}
}

func TestEvenSplit(t *testing.T) {
	tests := []struct {
		n            int
		part1, part2 int
	}{
		{0, 0, 0},
		{1, 0, 1},
		{7, 3, 4},
		{10, 5, 5},
	}

	for _, tt := range tests {
		got := EvenSplit(tt.n)
		if got.Part1 != tt.part1 || got.Part2 != tt.part2 {
			t.Errorf("EvenSplit(%d) = (%d, %d), want (%d, %d)",
				tt.n, got.Part1, got.Part2, tt.part1, tt.part2)
		}
	}
}
