package problemgen

import (
	"fmt"

	"github.com/abhisek/bondten/internal/levels"
	"github.com/abhisek/bondten/internal/strategy"
)

// Problem represents a generated arithmetic problem ready for display.
type Problem struct {
	// Operand1 and Operand2 are the raw operands. For subtraction
	// Operand1 is always the minuend, so Operand1 >= Operand2.
	Operand1 int
	Operand2 int

	// Operation is the arithmetic operation.
	Operation strategy.Operation

	// Level is the difficulty level this problem was generated for (1-4).
	Level int

	// Strategy is the mental-math strategy the problem exercises,
	// derived by classification and never set by hand.
	Strategy strategy.Strategy

	// Answer is the correct result, computed directly from the operands.
	Answer int

	// Options holds the multiple-choice answers: the correct answer plus
	// three distractors, shuffled. Always exactly 4 entries.
	Options []int

	// Explanation is a short worked solution using the canonical
	// decomposition. Always present.
	Explanation string
}

// Text returns the problem prompt displayed to the learner,
// e.g. "8 + 9 = ?".
func (p *Problem) Text() string {
	return fmt.Sprintf("%d %s %d = ?", p.Operand1, p.Operation.Symbol(), p.Operand2)
}

// Key returns a stable identity for deduplication across a session.
// Two problems with the same operands and operation are the same problem
// regardless of how their options were shuffled.
func (p *Problem) Key() string {
	return fmt.Sprintf("%s:%d:%d", p.Operation, p.Operand1, p.Operand2)
}

// CorrectIndex returns the index of Answer within Options, or -1 if the
// options are malformed.
func (p *Problem) CorrectIndex() int {
	for i, opt := range p.Options {
		if opt == p.Answer {
			return i
		}
	}
	return -1
}

// NeedsDecomposition reports whether the learner should be asked to split
// Operand2 into two parts before answering. Basic problems are answered
// directly.
func (p *Problem) NeedsDecomposition() bool {
	return p.Strategy != strategy.StrategyBasic
}

// GenerateInput holds all context needed to generate a problem.
type GenerateInput struct {
	// Level is the target difficulty level (1-4).
	Level int

	// PreferredOp, when non-empty, restricts generation to profiles for
	// that operation. When the level has no profile for it the preference
	// is ignored rather than failing.
	PreferredOp strategy.Operation

	// Recent contains the Key() of problems already asked in this
	// session. Used to avoid repeats while sampling. Best effort: the
	// fallback path ignores it so generation still terminates.
	Recent []string
}

// profiles picks the candidate profiles for the input from the level
// catalog, honoring the operation preference when possible.
func (in GenerateInput) profiles(lvl levels.Level) []levels.Profile {
	if in.PreferredOp != "" {
		if preferred := lvl.ProfilesFor(in.PreferredOp); len(preferred) > 0 {
			return preferred
		}
	}
	return lvl.Profiles
}
