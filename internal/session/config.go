package session

import "github.com/abhisek/bondten/internal/adaptive"

// DefaultRounds is the number of problem rounds in a standard session.
const DefaultRounds = 10

// Config tunes a practice session.
type Config struct {
	// Rounds is how many problems the session serves before the summary.
	Rounds int

	// MaxAttemptsPerRound is how many submissions a round allows before
	// the worked solution is shown.
	MaxAttemptsPerRound int
}

// DefaultConfig returns the standard session tuning.
func DefaultConfig() Config {
	return Config{
		Rounds:              DefaultRounds,
		MaxAttemptsPerRound: adaptive.DefaultMaxRoundAttempts,
	}
}

// normalize fills zero values with defaults.
func (c Config) normalize() Config {
	if c.Rounds <= 0 {
		c.Rounds = DefaultRounds
	}
	if c.MaxAttemptsPerRound <= 0 {
		c.MaxAttemptsPerRound = adaptive.DefaultMaxRoundAttempts
	}
	return c
}
