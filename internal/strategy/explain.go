package strategy

import "fmt"

// Explain builds the worked explanation shown after a round ends, using
// the canonical decomposition. The display layer renders it verbatim.
func Explain(op Operation, operand1, operand2 int) string {
	strat := Classify(op, operand1, operand2)
	answer := op.Apply(operand1, operand2)

	dec, ok := Canonical(op, operand1, operand2, strat)
	if !ok {
		// Basic facts get a plain restatement.
		if op == OpSubtraction {
			return fmt.Sprintf("%d - %d = %d. Count back %d and you are there!",
				operand1, operand2, answer, operand2)
		}
		return fmt.Sprintf("%d + %d = %d. Count up %d and you are there!",
			operand1, operand2, answer, operand2)
	}

	firstStop := op.Apply(operand1, dec.Part1)
	return fmt.Sprintf("Split %d into %d + %d. First %d %s %d = %d, then %d %s %d = %d.",
		operand2, dec.Part1, dec.Part2,
		operand1, op.Symbol(), dec.Part1, firstStop,
		firstStop, op.Symbol(), dec.Part2, answer)
}
