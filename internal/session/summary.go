package session

import (
	"time"

	"github.com/abhisek/bondten/internal/diagnosis"
	"github.com/abhisek/bondten/internal/gems"
	"github.com/abhisek/bondten/internal/strategy"
)

// Summary holds the data displayed on the summary screen.
type Summary struct {
	Duration        time.Duration
	Rounds          int
	Correct         int
	Accuracy        float64
	StrategyResults []StrategyResult
	StartLevel      int
	EndLevel        int
	LevelPath       []LevelChange
	Gems            []gems.GemAward
	SlipCounts      map[diagnosis.Slip]int
	TopSlip         diagnosis.Slip
	TopSlipCount    int
}

// BuildSummary creates a Summary from the current session state.
func BuildSummary(state *SessionState) *Summary {
	// Strategy results in catalog order, so the screen is stable.
	var results []StrategyResult
	for _, strat := range strategy.AllStrategies() {
		if sr, ok := state.PerStrategy[strat]; ok {
			results = append(results, *sr)
		}
	}

	s := &Summary{
		Duration:        state.Elapsed,
		Rounds:          state.RoundsServed,
		Correct:         state.CorrectRounds,
		Accuracy:        Accuracy(state),
		StrategyResults: results,
		StartLevel:      state.LevelStart,
		EndLevel:        state.Level,
		LevelPath:       state.LevelPath,
	}

	if state.GemService != nil {
		s.Gems = state.GemService.SessionGems
	}
	if state.DiagnosisService != nil {
		s.SlipCounts = state.DiagnosisService.Counts()
		s.TopSlip, s.TopSlipCount = state.DiagnosisService.TopSlip()
	}
	return s
}
