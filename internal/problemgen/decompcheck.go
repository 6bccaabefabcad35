package problemgen

import (
	"fmt"

	"github.com/abhisek/bondten/internal/decomp"
	"github.com/abhisek/bondten/internal/strategy"
)

// DecompCheckValidator independently recomputes the answer and
// classification from the operands and round-trips the canonical
// decomposition through the checker. Every problem that leaves the
// generator must teach a split the checker would accept, so a failure
// here means the strategy rules disagree with themselves.
type DecompCheckValidator struct{}

func (v *DecompCheckValidator) Name() string { return "decomp-check" }

func (v *DecompCheckValidator) Validate(p *Problem, _ GenerateInput) *ValidationError {
	if computed := p.Operation.Apply(p.Operand1, p.Operand2); computed != p.Answer {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("computed %d but problem claims %d", computed, p.Answer),
			Retryable: false,
		}
	}

	if derived := strategy.Classify(p.Operation, p.Operand1, p.Operand2); derived != p.Strategy {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("classified %q but problem claims %q", derived, p.Strategy),
			Retryable: false,
		}
	}

	if !p.NeedsDecomposition() {
		return nil
	}

	canonical, ok := strategy.Canonical(p.Operation, p.Operand1, p.Operand2, p.Strategy)
	if !ok {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("strategy %q has no canonical decomposition", p.Strategy),
			Retryable: false,
		}
	}
	if canonical.Part1 < 0 || canonical.Part2 < 0 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("canonical decomposition %d + %d has a negative part", canonical.Part1, canonical.Part2),
			Retryable: false,
		}
	}
	if canonical.Part1+canonical.Part2 != p.Operand2 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("canonical parts %d + %d do not rebuild operand2 %d", canonical.Part1, canonical.Part2, p.Operand2),
			Retryable: false,
		}
	}

	res, err := decomp.Validate(p.Operation, p.Operand1, p.Operand2, decomp.Answer{
		Part1: canonical.Part1,
		Part2: canonical.Part2,
	})
	if err != nil {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("canonical round trip errored: %v", err),
			Retryable: false,
		}
	}
	if !res.Valid {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("checker rejected canonical decomposition %d + %d", canonical.Part1, canonical.Part2),
			Retryable: false,
		}
	}
	return nil
}
