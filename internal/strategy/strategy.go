package strategy

// Operation represents an arithmetic operation on two operands.
type Operation string

const (
	OpAddition    Operation = "addition"
	OpSubtraction Operation = "subtraction"
)

// AllOperations returns both operations in display order.
func AllOperations() []Operation {
	return []Operation{OpAddition, OpSubtraction}
}

// Valid reports whether o is a known operation.
func (o Operation) Valid() bool {
	return o == OpAddition || o == OpSubtraction
}

// Symbol returns the operator symbol used when rendering a problem.
func (o Operation) Symbol() string {
	switch o {
	case OpAddition:
		return "+"
	case OpSubtraction:
		return "-"
	default:
		return "?"
	}
}

// Apply computes a (o) b. Callers validate operands first (CheckOperands);
// subtraction with b > a is a caller bug, not a supported input.
func (o Operation) Apply(a, b int) int {
	if o == OpSubtraction {
		return a - b
	}
	return a + b
}

// Strategy identifies which solving strategy a problem calls for.
// Assigned once by Classify when a problem is created, immutable after.
type Strategy string

const (
	// StrategyBasic needs no decomposition: single-digit sums, or
	// subtraction without borrowing.
	StrategyBasic Strategy = "basic"

	// StrategyMakeTen completes the first operand to 10 by splitting
	// the second, e.g. 8 + 5 via 8 + 2 = 10, 10 + 3 = 13.
	StrategyMakeTen Strategy = "make_ten"

	// StrategyCrossing bridges a ten boundary in two jumps, e.g.
	// 37 + 5 via 37 + 3 = 40, 40 + 2 = 42, and the borrowing cases
	// of subtraction.
	StrategyCrossing Strategy = "crossing"
)

// AllStrategies returns the strategies in teaching order.
func AllStrategies() []Strategy {
	return []Strategy{StrategyBasic, StrategyMakeTen, StrategyCrossing}
}

// DisplayName returns a kid-facing label for the strategy.
func (s Strategy) DisplayName() string {
	switch s {
	case StrategyBasic:
		return "Just Count"
	case StrategyMakeTen:
		return "Make Ten"
	case StrategyCrossing:
		return "Bridge Ten"
	default:
		return string(s)
	}
}

// Decomposition is a split of the second operand into two parts,
// the numbers a learner writes into the bond circles.
type Decomposition struct {
	Part1 int
	Part2 int
}

// Matches reports whether the pair (p1, p2) equals d in either order.
func (d Decomposition) Matches(p1, p2 int) bool {
	return (p1 == d.Part1 && p2 == d.Part2) || (p1 == d.Part2 && p2 == d.Part1)
}
