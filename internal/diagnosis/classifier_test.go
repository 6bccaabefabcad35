package diagnosis

import (
	"testing"

	"github.com/abhisek/bondten/internal/problemgen"
	"github.com/abhisek/bondten/internal/strategy"
)

// crossingProblem is 8 + 9 = 17, a bridge-ten addition.
func crossingProblem() *problemgen.Problem {
	return &problemgen.Problem{
		Operand1:  8,
		Operand2:  9,
		Operation: strategy.OpAddition,
		Level:     2,
		Strategy:  strategy.StrategyCrossing,
		Answer:    17,
	}
}

// borrowProblem is 37 - 15 = 22, a bridge-ten subtraction.
func borrowProblem() *problemgen.Problem {
	return &problemgen.Problem{
		Operand1:  37,
		Operand2:  15,
		Operation: strategy.OpSubtraction,
		Level:     3,
		Strategy:  strategy.StrategyCrossing,
		Answer:    22,
	}
}

func TestSpeedRushClassifier_UnderThreshold(t *testing.T) {
	c := &SpeedRushClassifier{}
	slip, conf := c.Classify(&ClassifyInput{ResponseTimeMs: 1500})
	if slip != SlipSpeedRush {
		t.Errorf("got slip %q, want %q", slip, SlipSpeedRush)
	}
	if conf != 0.9 {
		t.Errorf("got confidence %f, want 0.9", conf)
	}
}

func TestSpeedRushClassifier_AtThreshold(t *testing.T) {
	c := &SpeedRushClassifier{}
	slip, _ := c.Classify(&ClassifyInput{ResponseTimeMs: 2000})
	if slip != "" {
		t.Errorf("got slip %q at threshold, want empty", slip)
	}
}

func TestSpeedRushClassifier_UnmeasuredNeverMatches(t *testing.T) {
	c := &SpeedRushClassifier{}
	slip, _ := c.Classify(&ClassifyInput{ResponseTimeMs: 0})
	if slip != "" {
		t.Errorf("got slip %q for unmeasured time, want empty", slip)
	}
}

func TestPartsSumClassifier_BadSum(t *testing.T) {
	c := &PartsSumClassifier{}
	slip, _ := c.Classify(&ClassifyInput{
		Problem: crossingProblem(),
		Stage:   StageSplit,
		Part1:   2,
		Part2:   6, // 2 + 6 != 9
	})
	if slip != SlipPartsSum {
		t.Errorf("got slip %q, want %q", slip, SlipPartsSum)
	}
}

func TestPartsSumClassifier_GoodSumPasses(t *testing.T) {
	c := &PartsSumClassifier{}
	slip, _ := c.Classify(&ClassifyInput{
		Problem: crossingProblem(),
		Stage:   StageSplit,
		Part1:   3,
		Part2:   6,
	})
	if slip != "" {
		t.Errorf("got slip %q for a rebuilding split, want empty", slip)
	}
}

func TestTenBoundaryClassifier_MissesTen(t *testing.T) {
	c := &TenBoundaryClassifier{}
	// 3 + 6 rebuilds 9 but 8+3 and 8+6 both miss the ten.
	slip, _ := c.Classify(&ClassifyInput{
		Problem: crossingProblem(),
		Stage:   StageSplit,
		Part1:   3,
		Part2:   6,
	})
	if slip != SlipTenBoundary {
		t.Errorf("got slip %q, want %q", slip, SlipTenBoundary)
	}
}

func TestTenBoundaryClassifier_CanonicalPasses(t *testing.T) {
	c := &TenBoundaryClassifier{}
	slip, _ := c.Classify(&ClassifyInput{
		Problem: crossingProblem(),
		Stage:   StageSplit,
		Part1:   2,
		Part2:   7,
	})
	if slip != "" {
		t.Errorf("got slip %q for the canonical split, want empty", slip)
	}
}

func TestTenBoundaryClassifier_ReversedPairPasses(t *testing.T) {
	c := &TenBoundaryClassifier{}
	slip, _ := c.Classify(&ClassifyInput{
		Problem: borrowProblem(),
		Stage:   StageSplit,
		Part1:   8, // reversed: 7 is in part2
		Part2:   7,
	})
	if slip != "" {
		t.Errorf("got slip %q for a reversed canonical split, want empty", slip)
	}
}

func TestOffByOneClassifier(t *testing.T) {
	c := &OffByOneClassifier{}
	for _, answer := range []int{16, 18} {
		slip, _ := c.Classify(&ClassifyInput{
			Problem: crossingProblem(),
			Stage:   StageAnswer,
			Answer:  answer,
		})
		if slip != SlipOffByOne {
			t.Errorf("answer %d: got slip %q, want %q", answer, slip, SlipOffByOne)
		}
	}
	slip, _ := c.Classify(&ClassifyInput{
		Problem: crossingProblem(),
		Stage:   StageAnswer,
		Answer:  15,
	})
	if slip != "" {
		t.Errorf("got slip %q for a two-off answer, want empty", slip)
	}
}

func TestOffByTenClassifier(t *testing.T) {
	c := &OffByTenClassifier{}
	slip, _ := c.Classify(&ClassifyInput{
		Problem: borrowProblem(),
		Stage:   StageAnswer,
		Answer:  32,
	})
	if slip != SlipOffByTen {
		t.Errorf("got slip %q, want %q", slip, SlipOffByTen)
	}
}

func TestTransposedClassifier(t *testing.T) {
	c := &TransposedClassifier{}
	slip, _ := c.Classify(&ClassifyInput{
		Problem: crossingProblem(),
		Stage:   StageAnswer,
		Answer:  71,
	})
	if slip != SlipTransposed {
		t.Errorf("got slip %q, want %q", slip, SlipTransposed)
	}
	// Single-digit answers have no transposition.
	p := crossingProblem()
	p.Answer = 7
	slip, _ = c.Classify(&ClassifyInput{Problem: p, Stage: StageAnswer, Answer: 70})
	if slip != "" {
		t.Errorf("got slip %q for single-digit answer, want empty", slip)
	}
}

func TestWrongOpClassifier_SubtractionAnsweredAsAddition(t *testing.T) {
	c := &WrongOpClassifier{}
	slip, _ := c.Classify(&ClassifyInput{
		Problem: borrowProblem(),
		Stage:   StageAnswer,
		Answer:  52, // 37 + 15
	})
	if slip != SlipWrongOp {
		t.Errorf("got slip %q, want %q", slip, SlipWrongOp)
	}
}

func TestCarelessClassifier_HighAccuracy(t *testing.T) {
	c := &CarelessClassifier{}
	slip, conf := c.Classify(&ClassifyInput{LevelAccuracy: 0.90})
	if slip != SlipCareless {
		t.Errorf("got slip %q, want %q", slip, SlipCareless)
	}
	if conf != 0.7 {
		t.Errorf("got confidence %f, want 0.7", conf)
	}
}

func TestCarelessClassifier_AtThreshold(t *testing.T) {
	c := &CarelessClassifier{}
	slip, _ := c.Classify(&ClassifyInput{LevelAccuracy: 0.85})
	if slip != "" {
		t.Errorf("got slip %q at threshold, want empty", slip)
	}
}

func TestClassify_SpeedRushPriority(t *testing.T) {
	// Fast AND off by one: the pace read wins.
	input := &ClassifyInput{
		Problem:        crossingProblem(),
		Stage:          StageAnswer,
		Answer:         16,
		ResponseTimeMs: 1000,
	}
	res := Classify(DefaultClassifiers(), input)
	if res.Slip != SlipSpeedRush {
		t.Errorf("got slip %q, want %q to take priority", res.Slip, SlipSpeedRush)
	}
	if res.ClassifierName != "speed-rush" {
		t.Errorf("got classifier %q, want %q", res.ClassifierName, "speed-rush")
	}
}

func TestClassify_ValueRuleBeforeCareless(t *testing.T) {
	// High accuracy AND transposed digits: the specific pattern wins.
	input := &ClassifyInput{
		Problem:        crossingProblem(),
		Stage:          StageAnswer,
		Answer:         71,
		ResponseTimeMs: 5000,
		LevelAccuracy:  0.95,
	}
	res := Classify(DefaultClassifiers(), input)
	if res.Slip != SlipTransposed {
		t.Errorf("got slip %q, want %q", res.Slip, SlipTransposed)
	}
}

func TestClassify_FallsBackToUnclassified(t *testing.T) {
	input := &ClassifyInput{
		Problem:        crossingProblem(),
		Stage:          StageAnswer,
		Answer:         23,
		ResponseTimeMs: 5000,
	}
	res := Classify(DefaultClassifiers(), input)
	if res.Slip != SlipUnclassified {
		t.Errorf("got slip %q, want %q", res.Slip, SlipUnclassified)
	}
}

func TestEverySlipHasHintAndInfo(t *testing.T) {
	for _, info := range seedSlips {
		if info.Slip.Hint() == "" {
			t.Errorf("slip %q has no hint", info.Slip)
		}
		if GetSlipInfo(info.Slip) == nil {
			t.Errorf("slip %q missing from registry", info.Slip)
		}
		if info.Slip.Label() == string(info.Slip) && info.Label == "" {
			t.Errorf("slip %q has no label", info.Slip)
		}
	}
}
