package problemgen

import (
	"errors"
	"testing"

	"github.com/abhisek/bondten/internal/strategy"
)

func TestGenerate_Level1IsBasicSingleDigit(t *testing.T) {
	s := NewSeeded(DefaultConfig(), 1)
	for range 50 {
		p, err := s.Generate(GenerateInput{Level: 1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Strategy != strategy.StrategyBasic {
			t.Errorf("%s: expected basic, got %q", p.Text(), p.Strategy)
		}
		if p.Operand1 > 9 || p.Operand2 > 9 {
			t.Errorf("%s: operands exceed single digits", p.Text())
		}
		if p.Operation == strategy.OpAddition && p.Answer > 9 {
			t.Errorf("%s: level 1 sums stay in single digits, got %d", p.Text(), p.Answer)
		}
	}
}

func TestGenerate_Level2StaysWithinTwenty(t *testing.T) {
	s := NewSeeded(DefaultConfig(), 2)
	for range 50 {
		p, err := s.Generate(GenerateInput{Level: 2})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Strategy == strategy.StrategyBasic {
			t.Errorf("%s: level 2 should exercise make ten or bridging, got basic", p.Text())
		}
		if p.Operation == strategy.OpAddition && p.Answer > 20 {
			t.Errorf("%s: answer %d exceeds 20", p.Text(), p.Answer)
		}
		if p.Operation == strategy.OpSubtraction && p.Operand1 > 20 {
			t.Errorf("%s: minuend %d exceeds 20", p.Text(), p.Operand1)
		}
	}
}

func TestGenerate_Level3CrossesFromTwoDigits(t *testing.T) {
	s := NewSeeded(DefaultConfig(), 3)
	for range 50 {
		p, err := s.Generate(GenerateInput{Level: 3})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Strategy != strategy.StrategyCrossing {
			t.Errorf("%s: expected crossing, got %q", p.Text(), p.Strategy)
		}
		if p.Operand1 < 10 || p.Operand1 > 99 {
			t.Errorf("%s: operand1 %d not two digits", p.Text(), p.Operand1)
		}
		if p.Operand2 < 1 || p.Operand2 > 9 {
			t.Errorf("%s: operand2 %d not single digit", p.Text(), p.Operand2)
		}
	}
}

func TestGenerate_Level4MixesStrategies(t *testing.T) {
	s := NewSeeded(DefaultConfig(), 4)
	seen := make(map[strategy.Strategy]bool)
	for range 200 {
		p, err := s.Generate(GenerateInput{Level: 4})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		seen[p.Strategy] = true
	}
	for _, want := range strategy.AllStrategies() {
		if !seen[want] {
			t.Errorf("level 4 never produced %q in 200 problems", want)
		}
	}
}

func TestGenerate_AnswerMatchesOperands(t *testing.T) {
	s := NewSeeded(DefaultConfig(), 5)
	for lvl := 1; lvl <= 4; lvl++ {
		for range 25 {
			p, err := s.Generate(GenerateInput{Level: lvl})
			if err != nil {
				t.Fatalf("level %d: unexpected error: %v", lvl, err)
			}
			if got := p.Operation.Apply(p.Operand1, p.Operand2); got != p.Answer {
				t.Errorf("%s: answer %d, recomputed %d", p.Text(), p.Answer, got)
			}
			if p.Answer < 0 {
				t.Errorf("%s: negative answer %d", p.Text(), p.Answer)
			}
		}
	}
}

func TestGenerate_PreferredOperationHonored(t *testing.T) {
	s := NewSeeded(DefaultConfig(), 6)
	for range 30 {
		p, err := s.Generate(GenerateInput{Level: 2, PreferredOp: strategy.OpSubtraction})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Operation != strategy.OpSubtraction {
			t.Errorf("expected subtraction, got %q", p.Operation)
		}
	}
}

func TestGenerate_AvoidsRecentProblems(t *testing.T) {
	cfg := DefaultConfig()
	s := NewSeeded(cfg, 7)
	var recent []string
	for range 10 {
		p, err := s.Generate(GenerateInput{Level: 2, Recent: recent})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, k := range recent {
			if p.Key() == k {
				t.Errorf("repeated recent problem %s", k)
			}
		}
		recent = append(recent, p.Key())
		if len(recent) > cfg.MaxRecentProblems {
			recent = recent[1:]
		}
	}
}

func TestGenerate_SameSeedSameSequence(t *testing.T) {
	a := NewSeeded(DefaultConfig(), 42)
	b := NewSeeded(DefaultConfig(), 42)
	for range 20 {
		pa, errA := a.Generate(GenerateInput{Level: 4})
		pb, errB := b.Generate(GenerateInput{Level: 4})
		if errA != nil || errB != nil {
			t.Fatalf("unexpected errors: %v, %v", errA, errB)
		}
		if pa.Key() != pb.Key() {
			t.Fatalf("sequences diverged: %s vs %s", pa.Key(), pb.Key())
		}
	}
}

func TestGenerate_LevelOutOfRange(t *testing.T) {
	s := NewSeeded(DefaultConfig(), 8)
	for _, lvl := range []int{0, -1, 5, 100} {
		_, err := s.Generate(GenerateInput{Level: lvl})
		if err == nil {
			t.Errorf("expected error for level %d", lvl)
			continue
		}
		var invalid *strategy.InvalidInputError
		if !errors.As(err, &invalid) {
			t.Errorf("level %d: expected InvalidInputError, got %T", lvl, err)
		}
	}
}

func TestGenerate_NonBasicRoundTrips(t *testing.T) {
	// Every generated problem that asks for a decomposition must carry a
	// canonical split the checker accepts. The decomp-check validator
	// enforces this, so generation succeeding is the assertion; here we
	// double check the invariant explicitly.
	s := NewSeeded(DefaultConfig(), 9)
	for range 100 {
		p, err := s.Generate(GenerateInput{Level: 4})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !p.NeedsDecomposition() {
			continue
		}
		d, ok := strategy.Canonical(p.Operation, p.Operand1, p.Operand2, p.Strategy)
		if !ok {
			t.Fatalf("%s: no canonical decomposition for %q", p.Text(), p.Strategy)
		}
		if d.Part1+d.Part2 != p.Operand2 {
			t.Errorf("%s: parts %d + %d do not rebuild %d", p.Text(), d.Part1, d.Part2, p.Operand2)
		}
	}
}

func TestGenerate_NeverProducesZeroOperand2(t *testing.T) {
	s := NewSeeded(DefaultConfig(), 10)
	for lvl := 1; lvl <= 4; lvl++ {
		for range 25 {
			p, err := s.Generate(GenerateInput{Level: lvl})
			if err != nil {
				t.Fatalf("level %d: unexpected error: %v", lvl, err)
			}
			if p.Operand2 == 0 {
				t.Errorf("%s: degenerate operand2", p.Text())
			}
		}
	}
}

func TestGenerate_SubtractionNeverNegative(t *testing.T) {
	s := NewSeeded(DefaultConfig(), 11)
	for lvl := 1; lvl <= 4; lvl++ {
		for range 25 {
			p, err := s.Generate(GenerateInput{Level: lvl})
			if err != nil {
				t.Fatalf("level %d: unexpected error: %v", lvl, err)
			}
			if p.Operation == strategy.OpSubtraction && p.Operand2 > p.Operand1 {
				t.Errorf("%s: minuend smaller than subtrahend", p.Text())
			}
		}
	}
}

func TestProblem_Text(t *testing.T) {
	p := &Problem{Operand1: 8, Operand2: 9, Operation: strategy.OpAddition}
	if got := p.Text(); got != "8 + 9 = ?" {
		t.Errorf("got %q, want %q", got, "8 + 9 = ?")
	}
	p = &Problem{Operand1: 37, Operand2: 15, Operation: strategy.OpSubtraction}
	if got := p.Text(); got != "37 - 15 = ?" {
		t.Errorf("got %q, want %q", got, "37 - 15 = ?")
	}
}

func TestProblem_CorrectIndex(t *testing.T) {
	p := &Problem{Answer: 17, Options: []int{16, 18, 17, 7}}
	if got := p.CorrectIndex(); got != 2 {
		t.Errorf("got %d, want 2", got)
	}
	p.Options = []int{1, 2, 3, 4}
	if got := p.CorrectIndex(); got != -1 {
		t.Errorf("got %d, want -1 for missing answer", got)
	}
}
