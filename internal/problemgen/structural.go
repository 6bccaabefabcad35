package problemgen

import (
	"fmt"

	"github.com/abhisek/bondten/internal/levels"
	"github.com/abhisek/bondten/internal/strategy"
)

// StructuralValidator checks that required fields are present and have
// valid enum values. A failure here means the builder itself is broken,
// so nothing is retryable.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(p *Problem, _ GenerateInput) *ValidationError {
	if p.Operand1 < 0 || p.Operand2 < 0 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("negative operands %d, %d", p.Operand1, p.Operand2),
			Retryable: false,
		}
	}
	if p.Operation != strategy.OpAddition && p.Operation != strategy.OpSubtraction {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("unknown operation %q", p.Operation),
			Retryable: false,
		}
	}
	if p.Operation == strategy.OpSubtraction && p.Operand2 > p.Operand1 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("subtraction %d - %d goes below zero", p.Operand1, p.Operand2),
			Retryable: false,
		}
	}
	if p.Level < levels.MinLevel || p.Level > levels.MaxLevel {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("level %d out of range", p.Level),
			Retryable: false,
		}
	}
	if p.Strategy != strategy.StrategyBasic && p.Strategy != strategy.StrategyMakeTen && p.Strategy != strategy.StrategyCrossing {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("unknown strategy %q", p.Strategy),
			Retryable: false,
		}
	}
	if p.Explanation == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "explanation is empty",
			Retryable: false,
		}
	}
	return nil
}
