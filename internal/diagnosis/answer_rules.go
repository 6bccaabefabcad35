package diagnosis

import "github.com/abhisek/bondten/internal/strategy"

// OffByOneClassifier catches answers one away from correct, the classic
// counting slip.
type OffByOneClassifier struct{}

func (c *OffByOneClassifier) Name() string { return "off-by-one" }

func (c *OffByOneClassifier) Classify(input *ClassifyInput) (Slip, float64) {
	if input.Stage != StageAnswer || input.Problem == nil {
		return "", 0
	}
	diff := input.Answer - input.Problem.Answer
	if diff == 1 || diff == -1 {
		return SlipOffByOne, 0.9
	}
	return "", 0
}

// OffByTenClassifier catches answers exactly a ten away from correct,
// usually a decade miscount while bridging.
type OffByTenClassifier struct{}

func (c *OffByTenClassifier) Name() string { return "off-by-ten" }

func (c *OffByTenClassifier) Classify(input *ClassifyInput) (Slip, float64) {
	if input.Stage != StageAnswer || input.Problem == nil {
		return "", 0
	}
	diff := input.Answer - input.Problem.Answer
	if diff == 10 || diff == -10 {
		return SlipOffByTen, 0.85
	}
	return "", 0
}

// TransposedClassifier catches digit reversals, e.g. answering 72 when
// the answer is 27.
type TransposedClassifier struct{}

func (c *TransposedClassifier) Name() string { return "transposed" }

func (c *TransposedClassifier) Classify(input *ClassifyInput) (Slip, float64) {
	if input.Stage != StageAnswer || input.Problem == nil {
		return "", 0
	}
	correct := input.Problem.Answer
	if correct < 10 || correct > 99 {
		return "", 0
	}
	tens, ones := correct/10, correct%10
	if tens == ones {
		return "", 0
	}
	if input.Answer == ones*10+tens {
		return SlipTransposed, 0.85
	}
	return "", 0
}

// WrongOpClassifier catches answers that solve the opposite operation,
// e.g. answering 17 for 13 - 4.
type WrongOpClassifier struct{}

func (c *WrongOpClassifier) Name() string { return "wrong-operation" }

func (c *WrongOpClassifier) Classify(input *ClassifyInput) (Slip, float64) {
	if input.Stage != StageAnswer || input.Problem == nil {
		return "", 0
	}
	p := input.Problem
	var flipped int
	switch p.Operation {
	case strategy.OpAddition:
		flipped = p.Operand1 - p.Operand2
	case strategy.OpSubtraction:
		flipped = p.Operand1 + p.Operand2
	default:
		return "", 0
	}
	if flipped >= 0 && flipped != p.Answer && input.Answer == flipped {
		return SlipWrongOp, 0.8
	}
	return "", 0
}
