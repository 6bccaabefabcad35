package problemgen

// Config controls the behavior of the Sampler.
type Config struct {
	// Validators is the ordered list of validators to run on every
	// generated problem. They execute in order; the first failure
	// stops the pipeline. A retryable failure consumes a sample
	// attempt; a non-retryable one aborts generation.
	Validators []Validator

	// MaxSampleAttempts bounds the sample-and-classify loop before the
	// deterministic fallback kicks in.
	MaxSampleAttempts int

	// MaxRecentProblems is the maximum number of recent problem keys
	// considered when avoiding repeats.
	MaxRecentProblems int

	// OptionCount is the number of multiple-choice options per problem,
	// including the correct answer.
	OptionCount int
}

// DefaultConfig returns a Config with the standard validator chain
// and recommended defaults.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&DegenerateValidator{},
			&DecompCheckValidator{},
			&OptionsValidator{},
		},
		MaxSampleAttempts: 50,
		MaxRecentProblems: 8,
		OptionCount:       4,
	}
}
