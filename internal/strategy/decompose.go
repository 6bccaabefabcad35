package strategy

// Canonical computes the taught decomposition of operand2 for the given
// strategy. It is the single source of truth for decomposition rules:
// the generator builds explanations from it and the validator checks
// answers against it, so the formula lives nowhere else.
//
// ok is false for StrategyBasic, which has no required decomposition.
// For every pair that Classify maps to the given strategy the result
// satisfies Part1 + Part2 == operand2 with both parts non-negative.
func Canonical(op Operation, operand1, operand2 int, strat Strategy) (Decomposition, bool) {
	switch strat {
	case StrategyMakeTen:
		// 2 + 13: split 13 into 8 + 5 so that 2 + 8 = 10.
		part1 := 10 - operand1
		return Decomposition{Part1: part1, Part2: operand2 - part1}, true

	case StrategyCrossing:
		if op == OpSubtraction {
			return crossingSubtraction(operand1, operand2), true
		}
		return crossingAddition(operand1, operand2), true

	default:
		return Decomposition{}, false
	}
}

// crossingAddition splits operand2 so the first jump lands exactly on
// the next ten: 37 + 5 becomes 3 + 2, since 37 + 3 = 40.
func crossingAddition(operand1, operand2 int) Decomposition {
	if operand1%10 == 0 {
		// Already on a ten; no jump target. Fall back to an even split.
		return EvenSplit(operand2)
	}
	onesNeeded := 10 - operand1%10
	part1 := min(onesNeeded, operand2)
	return Decomposition{Part1: part1, Part2: operand2 - part1}
}

// crossingSubtraction applies the ones-digit-first rule: subtract down
// to the nearest ten, then subtract the remainder. 37 - 15 becomes
// 7 + 8, since 37 - 7 = 30 and 30 - 8 = 22.
func crossingSubtraction(operand1, operand2 int) Decomposition {
	onesDigit := operand1 % 10

	if onesDigit == 0 {
		// Already on a ten. Take a full jump of ten when operand2
		// allows it, otherwise split evenly.
		if operand2 > 10 {
			part1 := min(10, operand2-1)
			return Decomposition{Part1: part1, Part2: operand2 - part1}
		}
		return EvenSplit(operand2)
	}

	if onesDigit <= operand2 {
		return Decomposition{Part1: onesDigit, Part2: operand2 - onesDigit}
	}

	// operand2 is smaller than the ones digit; the strict rule cannot
	// apply, so split evenly.
	return EvenSplit(operand2)
}

// EvenSplit halves n into two near-equal non-negative parts.
func EvenSplit(n int) Decomposition {
	half := n / 2
	return Decomposition{Part1: half, Part2: n - half}
}
