package levels

import (
	"testing"

	"github.com/abhisek/bondten/internal/strategy"
)

func TestCatalog_HasFourLevels(t *testing.T) {
	cat := Catalog()
	if len(cat) != 4 {
		t.Fatalf("Catalog() has %d levels, want 4", len(cat))
	}
	for i, l := range cat {
		if l.Number != i+1 {
			t.Errorf("level at index %d numbered %d, want %d", i, l.Number, i+1)
		}
		if len(l.Profiles) == 0 {
			t.Errorf("level %d has no profiles", l.Number)
		}
		if l.Name == "" {
			t.Errorf("level %d has no name", l.Number)
		}
	}
}

func TestGet(t *testing.T) {
	for n := MinLevel; n <= MaxLevel; n++ {
		l, ok := Get(n)
		if !ok {
			t.Fatalf("Get(%d) not found", n)
		}
		if l.Number != n {
			t.Errorf("Get(%d).Number = %d", n, l.Number)
		}
	}
	if _, ok := Get(0); ok {
		t.Error("Get(0) should not be found")
	}
	if _, ok := Get(5); ok {
		t.Error("Get(5) should not be found")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{-3, 1},
		{0, 1},
		{1, 1},
		{3, 3},
		{4, 4},
		{9, 4},
	}
	for _, tt := range tests {
		if got := Clamp(tt.in); got != tt.want {
			t.Errorf("Clamp(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestLevelOne_BasicOnly(t *testing.T) {
	l, _ := Get(1)
	for _, p := range l.Profiles {
		if p.Target != strategy.StrategyBasic {
			t.Errorf("level 1 profile targets %s, want basic only", p.Target)
		}
		if p.Operand1.Max > 9 || p.Operand2.Max > 9 {
			t.Errorf("level 1 operands must be single digit, got ranges %+v / %+v", p.Operand1, p.Operand2)
		}
	}
}

func TestLevelFour_MixesEverything(t *testing.T) {
	l, _ := Get(4)

	strategies := l.Strategies()
	if len(strategies) != 3 {
		t.Errorf("level 4 should cover all three strategies, got %v", strategies)
	}

	if len(l.ProfilesFor(strategy.OpAddition)) == 0 {
		t.Error("level 4 has no addition profiles")
	}
	if len(l.ProfilesFor(strategy.OpSubtraction)) == 0 {
		t.Error("level 4 has no subtraction profiles")
	}
}

// Every profile must contain at least one operand pair that classifies
// to its target, or generation could never terminate successfully.
func TestProfiles_AreSatisfiable(t *testing.T) {
	for _, l := range Catalog() {
		for _, p := range l.Profiles {
			if !profileSatisfiable(p) {
				t.Errorf("level %d profile %s/%s has no satisfiable operand pair",
					l.Number, p.Operation, p.Target)
			}
		}
	}
}

func profileSatisfiable(p Profile) bool {
	for a := p.Operand1.Min; a <= p.Operand1.Max; a++ {
		for b := p.Operand2.Min; b <= p.Operand2.Max; b++ {
			if p.Operation == strategy.OpSubtraction && b > a {
				continue
			}
			if p.MaxAnswer > 0 && p.Operation == strategy.OpAddition && a+b > p.MaxAnswer {
				continue
			}
			if strategy.Classify(p.Operation, a, b) == p.Target {
				return true
			}
		}
	}
	return false
}
