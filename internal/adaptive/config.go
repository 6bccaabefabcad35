package adaptive

const (
	// DefaultWindow is the number of recent attempts considered when
	// recommending a level.
	DefaultWindow = 8

	// DefaultMinAttempts is the minimum history before the engine is
	// willing to move the learner at all.
	DefaultMinAttempts = 5

	// DefaultPromoteThreshold is the windowed accuracy at or above which
	// the learner moves up a level.
	DefaultPromoteThreshold = 0.8

	// DefaultDemoteThreshold is the windowed accuracy at or below which
	// the learner moves down a level.
	DefaultDemoteThreshold = 0.4

	// DefaultMaxRoundAttempts is how many submissions a round allows
	// before showing the solution.
	DefaultMaxRoundAttempts = 3
)

// Config tunes the adaptive engine. The gap between the two thresholds
// is deliberate: a learner hovering between them stays put instead of
// bouncing up and down.
type Config struct {
	Window           int
	MinAttempts      int
	PromoteThreshold float64
	DemoteThreshold  float64
	MaxRoundAttempts int
}

// DefaultConfig returns the recommended tuning.
func DefaultConfig() Config {
	return Config{
		Window:           DefaultWindow,
		MinAttempts:      DefaultMinAttempts,
		PromoteThreshold: DefaultPromoteThreshold,
		DemoteThreshold:  DefaultDemoteThreshold,
		MaxRoundAttempts: DefaultMaxRoundAttempts,
	}
}

// normalize fills zero values with defaults and restores the threshold
// gap if a caller inverted it.
func (c Config) normalize() Config {
	if c.Window <= 0 {
		c.Window = DefaultWindow
	}
	if c.MinAttempts <= 0 {
		c.MinAttempts = DefaultMinAttempts
	}
	if c.PromoteThreshold <= 0 || c.PromoteThreshold > 1 {
		c.PromoteThreshold = DefaultPromoteThreshold
	}
	if c.DemoteThreshold < 0 || c.DemoteThreshold >= 1 {
		c.DemoteThreshold = DefaultDemoteThreshold
	}
	if c.DemoteThreshold >= c.PromoteThreshold {
		c.PromoteThreshold = DefaultPromoteThreshold
		c.DemoteThreshold = DefaultDemoteThreshold
	}
	if c.MaxRoundAttempts <= 0 {
		c.MaxRoundAttempts = DefaultMaxRoundAttempts
	}
	return c
}
