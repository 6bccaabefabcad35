package adaptive

import (
	"time"

	"github.com/abhisek/bondten/internal/strategy"
)

// Outcome is the round machine's verdict on a single submission.
type Outcome string

const (
	// OutcomeCorrect resolves the round; the attempt is recorded as correct.
	OutcomeCorrect Outcome = "correct"

	// OutcomeRetry keeps the round open; nothing is recorded yet.
	OutcomeRetry Outcome = "retry"

	// OutcomeExplain resolves the round after the final wrong answer; the
	// attempt is recorded as failed and the worked solution is shown.
	OutcomeExplain Outcome = "explain"

	// OutcomeIgnored is returned for submissions after the round resolved,
	// so a double keypress can never record an attempt twice.
	OutcomeIgnored Outcome = "ignored"
)

// Attempt is one resolved round: a problem the learner either got right
// (possibly after retries) or exhausted their tries on.
type Attempt struct {
	// ProblemKey identifies the problem, e.g. "addition:8:9".
	ProblemKey string

	// Operation and Strategy describe what the problem exercised.
	Operation strategy.Operation
	Strategy  strategy.Strategy

	// Level is the difficulty level the problem was served at.
	Level int

	// Correct is the round's final verdict.
	Correct bool

	// WrongGuesses counts wrong submissions before the round resolved.
	WrongGuesses int

	// DurationMs is the time from presentation to resolution.
	DurationMs int

	// At is when the round resolved.
	At time.Time
}
