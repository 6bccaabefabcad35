package diagnosis

import (
	"github.com/abhisek/bondten/internal/problemgen"
	"github.com/abhisek/bondten/internal/strategy"
)

// PartsSumClassifier catches splits whose parts do not rebuild the
// number being split. The most common split slip: the learner grabs two
// familiar numbers without checking they add back up.
type PartsSumClassifier struct{}

func (c *PartsSumClassifier) Name() string { return "parts-sum" }

func (c *PartsSumClassifier) Classify(input *ClassifyInput) (Slip, float64) {
	if input.Stage != StageSplit || input.Problem == nil {
		return "", 0
	}
	if input.Part1+input.Part2 != input.Problem.Operand2 {
		return SlipPartsSum, 0.95
	}
	return "", 0
}

// TenBoundaryClassifier catches splits that rebuild operand2 but whose
// first part misses the ten boundary, which is the whole point of the
// make-ten and bridging strategies.
type TenBoundaryClassifier struct{}

func (c *TenBoundaryClassifier) Name() string { return "ten-boundary" }

func (c *TenBoundaryClassifier) Classify(input *ClassifyInput) (Slip, float64) {
	if input.Stage != StageSplit || input.Problem == nil {
		return "", 0
	}
	p := input.Problem
	if p.Strategy == strategy.StrategyBasic {
		return "", 0
	}
	if input.Part1+input.Part2 != p.Operand2 {
		return "", 0
	}
	// Either orientation of the pair may reach the boundary.
	if reachesTen(p, input.Part1) || reachesTen(p, input.Part2) {
		return "", 0
	}
	return SlipTenBoundary, 0.9
}

// reachesTen reports whether applying part to operand1 lands on a
// multiple of ten.
func reachesTen(p *problemgen.Problem, part int) bool {
	if part < 0 {
		return false
	}
	after := p.Operation.Apply(p.Operand1, part)
	return after%10 == 0
}
