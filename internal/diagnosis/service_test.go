package diagnosis

import (
	"testing"

	"github.com/abhisek/bondten/internal/strategy"
)

func TestService_TalliesSlips(t *testing.T) {
	s := NewService()
	s.Diagnose(&ClassifyInput{
		Problem: crossingProblem(),
		Stage:   StageAnswer,
		Answer:  16,
	})
	s.Diagnose(&ClassifyInput{
		Problem: crossingProblem(),
		Stage:   StageAnswer,
		Answer:  18,
	})
	s.Diagnose(&ClassifyInput{
		Problem: crossingProblem(),
		Stage:   StageAnswer,
		Answer:  71,
	})

	counts := s.Counts()
	if counts[SlipOffByOne] != 2 {
		t.Errorf("off_by_one count = %d, want 2", counts[SlipOffByOne])
	}
	if counts[SlipTransposed] != 1 {
		t.Errorf("transposed count = %d, want 1", counts[SlipTransposed])
	}
}

func TestService_TopSlip(t *testing.T) {
	s := NewService()
	if slip, n := s.TopSlip(); slip != "" || n != 0 {
		t.Errorf("empty service: got (%q, %d), want empty", slip, n)
	}

	for range 3 {
		s.Diagnose(&ClassifyInput{
			Problem: crossingProblem(),
			Stage:   StageSplit,
			Part1:   2,
			Part2:   5,
		})
	}
	s.Diagnose(&ClassifyInput{
		Problem: crossingProblem(),
		Stage:   StageAnswer,
		Answer:  16,
	})

	slip, n := s.TopSlip()
	if slip != SlipPartsSum {
		t.Errorf("top slip = %q, want %q", slip, SlipPartsSum)
	}
	if n != 3 {
		t.Errorf("top count = %d, want 3", n)
	}
}

func TestService_TopSlipSkipsUnclassified(t *testing.T) {
	s := NewService()
	// Two unclassified misses and one off-by-one.
	s.Diagnose(&ClassifyInput{Problem: crossingProblem(), Stage: StageAnswer, Answer: 23})
	s.Diagnose(&ClassifyInput{Problem: crossingProblem(), Stage: StageAnswer, Answer: 25})
	s.Diagnose(&ClassifyInput{Problem: crossingProblem(), Stage: StageAnswer, Answer: 16})

	slip, _ := s.TopSlip()
	if slip != SlipOffByOne {
		t.Errorf("top slip = %q, want %q over unclassified", slip, SlipOffByOne)
	}
}

func TestService_Reset(t *testing.T) {
	s := NewService()
	s.Diagnose(&ClassifyInput{Problem: crossingProblem(), Stage: StageAnswer, Answer: 16})
	s.Reset()
	if len(s.Counts()) != 0 {
		t.Errorf("counts after reset = %v, want empty", s.Counts())
	}
}

func TestService_BasicProblemNeverFlagsBoundary(t *testing.T) {
	s := NewService()
	basic := crossingProblem()
	basic.Operand1, basic.Operand2 = 3, 4
	basic.Strategy = strategy.StrategyBasic
	basic.Answer = 7

	res := s.Diagnose(&ClassifyInput{
		Problem: basic,
		Stage:   StageSplit,
		Part1:   1,
		Part2:   3,
	})
	if res.Slip == SlipTenBoundary {
		t.Error("basic problems have no ten boundary to miss")
	}
}
