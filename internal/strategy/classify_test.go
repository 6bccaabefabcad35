package strategy

import "testing"

func TestClassify_Addition(t *testing.T) {
	tests := []struct {
		a, b int
		want Strategy
	}{
		// Sums below ten stay basic.
		{3, 4, StrategyBasic},
		{0, 9, StrategyBasic},
		{5, 4, StrategyBasic},
		// Ones digits carrying means crossing.
		{8, 9, StrategyCrossing},
		{7, 5, StrategyCrossing},
		{37, 5, StrategyCrossing},
		{48, 9, StrategyCrossing},
		{15, 8, StrategyCrossing},
		// Single-digit operand1 reaching past ten without a ones carry.
		{2, 13, StrategyMakeTen},
		{6, 22, StrategyMakeTen},
		{9, 20, StrategyMakeTen},
		// No regrouping needed.
		{23, 45, StrategyBasic},
		{10, 5, StrategyBasic},
		{20, 13, StrategyBasic},
		{41, 7, StrategyBasic},
	}

	for _, tt := range tests {
		got := Classify(OpAddition, tt.a, tt.b)
		if got != tt.want {
			t.Errorf("Classify(addition, %d, %d) = %s, want %s", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestClassify_Subtraction(t *testing.T) {
	tests := []struct {
		a, b int
		want Strategy
	}{
		// No borrowing: same decade, ones digit big enough.
		{9, 4, StrategyBasic},
		{18, 5, StrategyBasic},
		{47, 6, StrategyBasic},
		{15, 5, StrategyBasic},
		{7, 0, StrategyBasic},
		// Ones digit borrow.
		{13, 5, StrategyCrossing},
		{22, 8, StrategyCrossing},
		{50, 3, StrategyCrossing},
		// Result lands in a lower decade.
		{37, 15, StrategyCrossing},
		{25, 15, StrategyCrossing},
		{41, 20, StrategyCrossing},
	}

	for _, tt := range tests {
		got := Classify(OpSubtraction, tt.a, tt.b)
		if got != tt.want {
			t.Errorf("Classify(subtraction, %d, %d) = %s, want %s", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestClassify_Deterministic(t *testing.T) {
	for a := 0; a <= 40; a++ {
		for b := 0; b <= 40; b++ {
			first := Classify(OpAddition, a, b)
			second := Classify(OpAddition, a, b)
			if first != second {
				t.Fatalf("Classify(addition, %d, %d) not deterministic: %s then %s", a, b, first, second)
			}
			if b <= a {
				first = Classify(OpSubtraction, a, b)
				second = Classify(OpSubtraction, a, b)
				if first != second {
					t.Fatalf("Classify(subtraction, %d, %d) not deterministic: %s then %s", a, b, first, second)
				}
			}
		}
	}
}

func TestCheckOperands(t *testing.T) {
	if err := CheckOperands(OpAddition, 3, 4); err != nil {
		t.Errorf("valid addition operands rejected: %v", err)
	}
	if err := CheckOperands(OpSubtraction, 9, 9); err != nil {
		t.Errorf("equal subtraction operands rejected: %v", err)
	}
	if err := CheckOperands(OpAddition, -1, 4); err == nil {
		t.Error("negative operand1 should be rejected")
	}
	if err := CheckOperands(OpAddition, 4, -2); err == nil {
		t.Error("negative operand2 should be rejected")
	}
	if err := CheckOperands(OpSubtraction, 3, 8); err == nil {
		t.Error("subtraction below zero should be rejected")
	}
}
