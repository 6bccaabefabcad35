package problemgen

import "fmt"

// OptionsValidator checks the multiple-choice set: right size, distinct
// non-negative values, and the correct answer present exactly once.
type OptionsValidator struct{}

func (v *OptionsValidator) Name() string { return "options" }

func (v *OptionsValidator) Validate(p *Problem, _ GenerateInput) *ValidationError {
	if len(p.Options) != 4 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("expected 4 options, got %d", len(p.Options)),
			Retryable: false,
		}
	}

	seen := make(map[int]bool, len(p.Options))
	answerCount := 0
	for _, opt := range p.Options {
		if opt < 0 {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("negative option %d", opt),
				Retryable: false,
			}
		}
		if seen[opt] {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("duplicate option %d", opt),
				Retryable: false,
			}
		}
		seen[opt] = true
		if opt == p.Answer {
			answerCount++
		}
	}

	if answerCount != 1 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("correct answer %d appears %d times", p.Answer, answerCount),
			Retryable: false,
		}
	}
	return nil
}
