package problemgen

// DegenerateValidator rejects problems that are technically valid but
// pedagogically useless, such as adding or subtracting zero. These are
// sampling bad luck rather than defects, so resampling fixes them.
type DegenerateValidator struct{}

func (v *DegenerateValidator) Name() string { return "degenerate" }

func (v *DegenerateValidator) Validate(p *Problem, _ GenerateInput) *ValidationError {
	if p.Operand2 == 0 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "operand2 is zero",
			Retryable: true,
		}
	}
	return nil
}
