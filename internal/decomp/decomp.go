package decomp

import (
	"fmt"

	"github.com/abhisek/bondten/internal/strategy"
)

// Answer holds the two numbers a learner placed into the bond circles.
type Answer struct {
	Part1 int
	Part2 int
}

// Result scores one submitted decomposition. Wrong answers are results,
// not errors: Valid is false and Message explains the canonical split.
type Result struct {
	Valid     bool
	Message   string
	Canonical strategy.Decomposition
}

// Validate scores ans against the problem defined by the raw operands.
// The strategy and canonical decomposition are re-derived here rather
// than trusted from the Problem, so a generator bug can never make
// validation permissive.
//
// A submission is correct when it matches the canonical pair in either
// order, or when it independently satisfies the strategy's defining
// rule: for basic, any non-negative pair summing to operand2; for
// make-ten, the first part completes operand1 to 10; for crossing, the
// first jump lands exactly on a ten. Pure and idempotent.
//
// The only errors are strategy.InvalidInputError for operands the tutor
// never produces.
func Validate(op strategy.Operation, operand1, operand2 int, ans Answer) (Result, error) {
	if err := strategy.CheckOperands(op, operand1, operand2); err != nil {
		return Result{}, err
	}

	strat := strategy.Classify(op, operand1, operand2)
	canonical, hasCanonical := strategy.Canonical(op, operand1, operand2, strat)
	if !hasCanonical {
		// Basic: display pair only, any valid split is accepted.
		canonical = strategy.EvenSplit(operand2)
	}

	valid := canonical.Matches(ans.Part1, ans.Part2) ||
		satisfiesRule(op, operand1, operand2, strat, ans.Part1, ans.Part2)

	return Result{
		Valid:     valid,
		Message:   buildMessage(op, operand1, operand2, strat, canonical, ans, valid),
		Canonical: canonical,
	}, nil
}

// satisfiesRule checks the strategy's defining arithmetic property,
// independent of the canonical pair.
func satisfiesRule(op strategy.Operation, operand1, operand2 int, strat strategy.Strategy, part1, part2 int) bool {
	if part1 < 0 || part2 < 0 || part1+part2 != operand2 {
		return false
	}

	switch strat {
	case strategy.StrategyBasic:
		return true
	case strategy.StrategyMakeTen:
		return operand1+part1 == 10
	case strategy.StrategyCrossing:
		if op == strategy.OpSubtraction {
			return (operand1-part1)%10 == 0
		}
		return part1 > 0 && (operand1+part1)%10 == 0
	default:
		return false
	}
}

func buildMessage(op strategy.Operation, operand1, operand2 int, strat strategy.Strategy, canonical strategy.Decomposition, ans Answer, valid bool) string {
	if valid {
		return fmt.Sprintf("Nice bonding! %d splits into %d + %d.", operand2, ans.Part1, ans.Part2)
	}

	if strat == strategy.StrategyBasic {
		return fmt.Sprintf("Not quite. Your two parts must add up to %d. Try %d + %d.",
			operand2, canonical.Part1, canonical.Part2)
	}

	// The worked explanation already walks through the canonical pair.
	return "Not quite. " + strategy.Explain(op, operand1, operand2)
}
