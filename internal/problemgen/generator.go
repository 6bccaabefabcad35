package problemgen

import (
	"errors"
	"math/rand/v2"

	"github.com/abhisek/bondten/internal/levels"
	"github.com/abhisek/bondten/internal/strategy"
)

// Generator produces arithmetic problems for a difficulty level.
type Generator interface {
	// Generate produces a single problem for the given input context.
	// Returns a validated Problem or an error.
	// All configured validators are run before returning.
	Generate(input GenerateInput) (*Problem, error)
}

// Sampler implements Generator by rejection sampling operand pairs from
// the level catalog until a pair classifies to the profile's target
// strategy. Classification is never duplicated here: the sampler draws
// candidates and asks the strategy package what they are.
type Sampler struct {
	config Config
	rng    *rand.Rand
}

// New creates a Sampler with a randomly seeded source.
func New(cfg Config) *Sampler {
	return &Sampler{
		config: cfg,
		rng:    rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

// NewSeeded creates a Sampler with a deterministic random source.
// Two samplers with the same seed and config produce the same sequence
// of problems for the same sequence of inputs.
func NewSeeded(cfg Config, seed uint64) *Sampler {
	return &Sampler{
		config: cfg,
		rng:    rand.New(rand.NewPCG(seed, seed)),
	}
}

// Generate produces a single problem for the given input context.
func (s *Sampler) Generate(input GenerateInput) (*Problem, error) {
	if input.Level < levels.MinLevel || input.Level > levels.MaxLevel {
		return nil, &strategy.InvalidInputError{
			Field:  "level",
			Value:  input.Level,
			Reason: "must be between 1 and 4",
		}
	}

	lvl, _ := levels.Get(input.Level)
	profiles := input.profiles(lvl)
	recent := recentKeys(input.Recent, s.config.MaxRecentProblems)

	var (
		lastPair levels.Profile
		lastA    int
		lastB    int
		sampled  bool
	)

	for attempt := range s.config.MaxSampleAttempts {
		prof := profiles[s.rng.IntN(len(profiles))]
		a := s.sample(prof.Operand1)
		b := s.sample(prof.Operand2)
		if !pairFits(prof, a, b) {
			continue
		}
		lastPair, lastA, lastB, sampled = prof, a, b, true

		if strategy.Classify(prof.Operation, a, b) != prof.Target {
			continue
		}

		p := s.build(prof.Operation, a, b, input.Level)
		if recent[p.Key()] {
			continue
		}
		if verr := s.runValidators(p, input); verr != nil {
			if verr.Retryable {
				continue
			}
			return nil, &ErrGeneration{
				Level:     input.Level,
				Operation: prof.Operation,
				Attempts:  attempt + 1,
				Err:       verr,
			}
		}
		return p, nil
	}

	// Sampling exhausted. Walk operand2 outward from the last drawn pair
	// until the pair classifies to the target. Recent keys are ignored
	// here so generation always terminates with some valid problem.
	if sampled {
		if p, verr := s.nudge(lastPair, lastA, lastB, input); verr == nil && p != nil {
			return p, nil
		}
	}

	return nil, &ErrGeneration{
		Level:     input.Level,
		Operation: input.PreferredOp,
		Attempts:  s.config.MaxSampleAttempts,
		Err:       errors.New("sampling and operand walk exhausted"),
	}
}

// sample draws a uniform value from the inclusive range.
func (s *Sampler) sample(r levels.Range) int {
	return r.Min + s.rng.IntN(r.Width())
}

// nudge deterministically searches operand2 values near b for one that
// classifies to the profile target, preferring the smallest adjustment.
func (s *Sampler) nudge(prof levels.Profile, a, b int, input GenerateInput) (*Problem, *ValidationError) {
	var lastErr *ValidationError
	for delta := 1; delta < prof.Operand2.Width(); delta++ {
		for _, nb := range []int{b - delta, b + delta} {
			if !prof.Operand2.Contains(nb) || !pairFits(prof, a, nb) {
				continue
			}
			if strategy.Classify(prof.Operation, a, nb) != prof.Target {
				continue
			}
			p := s.build(prof.Operation, a, nb, input.Level)
			if verr := s.runValidators(p, input); verr != nil {
				lastErr = verr
				continue
			}
			return p, nil
		}
	}
	return nil, lastErr
}

// build assembles a fully populated problem from an operand pair.
// The answer is computed directly from the operands, never inferred.
func (s *Sampler) build(op strategy.Operation, a, b, level int) *Problem {
	p := &Problem{
		Operand1:    a,
		Operand2:    b,
		Operation:   op,
		Level:       level,
		Strategy:    strategy.Classify(op, a, b),
		Answer:      op.Apply(a, b),
		Explanation: strategy.Explain(op, a, b),
	}
	p.Options = s.buildOptions(p)
	return p
}

func (s *Sampler) runValidators(p *Problem, input GenerateInput) *ValidationError {
	for _, v := range s.config.Validators {
		if verr := v.Validate(p, input); verr != nil {
			return verr
		}
	}
	return nil
}

// pairFits reports whether the pair respects the profile's hard
// constraints: subtraction never goes below zero and capped addition
// stays within MaxAnswer.
func pairFits(prof levels.Profile, a, b int) bool {
	if prof.Operation == strategy.OpSubtraction && b > a {
		return false
	}
	if prof.Operation == strategy.OpAddition && prof.MaxAnswer > 0 && a+b > prof.MaxAnswer {
		return false
	}
	return true
}

// recentKeys builds a lookup of the most recent problem keys,
// respecting the max limit.
func recentKeys(recent []string, max int) map[string]bool {
	if max > 0 && len(recent) > max {
		recent = recent[len(recent)-max:]
	}
	keys := make(map[string]bool, len(recent))
	for _, k := range recent {
		keys[k] = true
	}
	return keys
}
