package adaptive

// RoundState represents where a single-problem round currently stands.
type RoundState int

const (
	RoundPresenting RoundState = iota // Waiting for the first submission
	RoundRetrying                     // Wrong at least once, tries remain
	RoundCorrect                      // Resolved correct
	RoundExplaining                   // Resolved failed, showing the worked solution
)

// Round is the state machine for one problem. Evaluation happens inside
// Submit; the observable states are presenting, retrying, and the two
// terminal states. Once resolved, further submissions are ignored, which
// is what makes "exactly one recorded attempt per round" hold.
type Round struct {
	maxAttempts  int
	state        RoundState
	wrongGuesses int
}

// NewRound starts a round allowing maxAttempts submissions before the
// learner is shown the solution. Non-positive values fall back to the
// default of 3.
func NewRound(maxAttempts int) *Round {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxRoundAttempts
	}
	return &Round{maxAttempts: maxAttempts, state: RoundPresenting}
}

// Submit evaluates one answer. A wrong answer is an expected value, not
// an error: the return tells the caller whether to record a correct
// attempt, prompt a retry, or record a failure and explain.
func (r *Round) Submit(correct bool) Outcome {
	if r.Resolved() {
		return OutcomeIgnored
	}
	if correct {
		r.state = RoundCorrect
		return OutcomeCorrect
	}
	r.wrongGuesses++
	if r.wrongGuesses >= r.maxAttempts {
		r.state = RoundExplaining
		return OutcomeExplain
	}
	r.state = RoundRetrying
	return OutcomeRetry
}

// State returns the current round state.
func (r *Round) State() RoundState {
	return r.state
}

// Resolved reports whether the round has reached a terminal state.
func (r *Round) Resolved() bool {
	return r.state == RoundCorrect || r.state == RoundExplaining
}

// WrongGuesses returns the number of wrong submissions so far.
func (r *Round) WrongGuesses() int {
	return r.wrongGuesses
}

// TriesLeft returns how many submissions remain before the round fails.
func (r *Round) TriesLeft() int {
	if r.Resolved() {
		return 0
	}
	return r.maxAttempts - r.wrongGuesses
}
