package problemgen

import (
	"fmt"

	"github.com/abhisek/bondten/internal/strategy"
)

// ErrGeneration indicates the generator could not produce a valid problem
// for the requested level after exhausting sampling and the deterministic
// fallback. It signals a level-profile defect, not learner error: callers
// should log it and regenerate at a known-safe level rather than surface
// it to the learner.
type ErrGeneration struct {
	Level     int
	Operation strategy.Operation
	Attempts  int
	Err       error
}

func (e *ErrGeneration) Error() string {
	if e.Operation != "" {
		return fmt.Sprintf("no valid %s problem for level %d after %d attempts: %v", e.Operation, e.Level, e.Attempts, e.Err)
	}
	return fmt.Sprintf("no valid problem for level %d after %d attempts: %v", e.Level, e.Attempts, e.Err)
}

func (e *ErrGeneration) Unwrap() error { return e.Err }
