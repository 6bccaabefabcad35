package adaptive

import "github.com/abhisek/bondten/internal/levels"

// Reason explains a level recommendation.
type Reason string

const (
	ReasonInsufficientData Reason = "insufficient_data"
	ReasonPromoted         Reason = "promoted"
	ReasonDemoted          Reason = "demoted"
	ReasonSteady           Reason = "steady"
)

// Recommendation is the engine's verdict on where practice continues.
type Recommendation struct {
	// Level is the recommended level, always within the catalog range.
	Level int

	// Reason says why the level moved or stayed.
	Reason Reason

	// Accuracy is the windowed accuracy behind the verdict. Zero when
	// there was not enough history to compute one.
	Accuracy float64

	// Considered is how many attempts actually entered the window.
	Considered int
}

// Engine recommends difficulty levels from recent attempt history.
type Engine struct {
	config Config
}

// NewEngine creates an engine, normalizing the config so a zero value
// or inverted thresholds still behave sensibly.
func NewEngine(cfg Config) *Engine {
	return &Engine{config: cfg.normalize()}
}

// RecommendLevel computes the next level for a learner currently at
// current, given their attempts newest first. Thin or unreadable history
// is never an error: the engine simply holds the level and says so.
func (e *Engine) RecommendLevel(current int, attempts []Attempt) Recommendation {
	current = levels.Clamp(current)

	if len(attempts) > e.config.Window {
		attempts = attempts[:e.config.Window]
	}
	if len(attempts) < e.config.MinAttempts {
		return Recommendation{
			Level:      current,
			Reason:     ReasonInsufficientData,
			Considered: len(attempts),
		}
	}

	correct := 0
	for _, a := range attempts {
		if a.Correct {
			correct++
		}
	}
	accuracy := float64(correct) / float64(len(attempts))

	rec := Recommendation{
		Level:      current,
		Reason:     ReasonSteady,
		Accuracy:   accuracy,
		Considered: len(attempts),
	}
	switch {
	case accuracy >= e.config.PromoteThreshold && current < levels.MaxLevel:
		rec.Level = current + 1
		rec.Reason = ReasonPromoted
	case accuracy <= e.config.DemoteThreshold && current > levels.MinLevel:
		rec.Level = current - 1
		rec.Reason = ReasonDemoted
	}
	return rec
}
