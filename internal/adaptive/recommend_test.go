package adaptive

import "testing"

// history builds a newest-first attempt slice from outcomes.
func history(correct ...bool) []Attempt {
	attempts := make([]Attempt, len(correct))
	for i, c := range correct {
		attempts[i] = Attempt{Correct: c}
	}
	return attempts
}

func TestRecommendLevel_PromotesOnHighAccuracy(t *testing.T) {
	e := NewEngine(DefaultConfig())
	// 7 of 8 correct = 0.875 >= 0.8
	rec := e.RecommendLevel(2, history(true, true, true, false, true, true, true, true))
	if rec.Level != 3 {
		t.Errorf("level = %d, want 3", rec.Level)
	}
	if rec.Reason != ReasonPromoted {
		t.Errorf("reason = %q, want promoted", rec.Reason)
	}
}

func TestRecommendLevel_DemotesOnLowAccuracy(t *testing.T) {
	e := NewEngine(DefaultConfig())
	// 2 of 8 correct = 0.25 <= 0.4
	rec := e.RecommendLevel(3, history(false, false, true, false, false, true, false, false))
	if rec.Level != 2 {
		t.Errorf("level = %d, want 2", rec.Level)
	}
	if rec.Reason != ReasonDemoted {
		t.Errorf("reason = %q, want demoted", rec.Reason)
	}
}

func TestRecommendLevel_SteadyBetweenThresholds(t *testing.T) {
	e := NewEngine(DefaultConfig())
	// 5 of 8 correct = 0.625, between 0.4 and 0.8: the gap between the
	// thresholds is what stops a mid-range learner from oscillating.
	rec := e.RecommendLevel(2, history(true, false, true, true, false, true, false, true))
	if rec.Level != 2 {
		t.Errorf("level = %d, want 2", rec.Level)
	}
	if rec.Reason != ReasonSteady {
		t.Errorf("reason = %q, want steady", rec.Reason)
	}
}

func TestRecommendLevel_InsufficientHistoryHolds(t *testing.T) {
	e := NewEngine(DefaultConfig())
	rec := e.RecommendLevel(2, history(true, true, true, true))
	if rec.Level != 2 {
		t.Errorf("level = %d, want 2", rec.Level)
	}
	if rec.Reason != ReasonInsufficientData {
		t.Errorf("reason = %q, want insufficient_data", rec.Reason)
	}
	if rec.Considered != 4 {
		t.Errorf("considered = %d, want 4", rec.Considered)
	}
}

func TestRecommendLevel_EmptyHistoryHolds(t *testing.T) {
	e := NewEngine(DefaultConfig())
	rec := e.RecommendLevel(1, nil)
	if rec.Level != 1 || rec.Reason != ReasonInsufficientData {
		t.Errorf("got level %d reason %q, want 1 insufficient_data", rec.Level, rec.Reason)
	}
}

func TestRecommendLevel_TopLevelNeverPromotes(t *testing.T) {
	e := NewEngine(DefaultConfig())
	rec := e.RecommendLevel(4, history(true, true, true, true, true, true, true, true))
	if rec.Level != 4 {
		t.Errorf("level = %d, want 4", rec.Level)
	}
	if rec.Reason != ReasonSteady {
		t.Errorf("reason = %q, want steady at the ceiling", rec.Reason)
	}
}

func TestRecommendLevel_BottomLevelNeverDemotes(t *testing.T) {
	e := NewEngine(DefaultConfig())
	rec := e.RecommendLevel(1, history(false, false, false, false, false, false, false, false))
	if rec.Level != 1 {
		t.Errorf("level = %d, want 1", rec.Level)
	}
	if rec.Reason != ReasonSteady {
		t.Errorf("reason = %q, want steady at the floor", rec.Reason)
	}
}

func TestRecommendLevel_ClampsOutOfRangeCurrent(t *testing.T) {
	e := NewEngine(DefaultConfig())
	rec := e.RecommendLevel(9, history(true, true, false, true, false, true, true, false))
	if rec.Level < 1 || rec.Level > 4 {
		t.Errorf("level = %d, want within 1..4", rec.Level)
	}
	rec = e.RecommendLevel(-2, history(false, false, false, false, false))
	if rec.Level < 1 || rec.Level > 4 {
		t.Errorf("level = %d, want within 1..4", rec.Level)
	}
}

func TestRecommendLevel_WindowIgnoresOlderAttempts(t *testing.T) {
	e := NewEngine(Config{Window: 5, MinAttempts: 5})
	// Newest five are all correct; the older failures must not count.
	attempts := history(true, true, true, true, true, false, false, false, false)
	rec := e.RecommendLevel(2, attempts)
	if rec.Reason != ReasonPromoted {
		t.Errorf("reason = %q, want promoted from the newest window", rec.Reason)
	}
	if rec.Considered != 5 {
		t.Errorf("considered = %d, want 5", rec.Considered)
	}
}

func TestRecommendLevel_MidpointStaysSteadyEitherDirection(t *testing.T) {
	// A learner exactly between the thresholds holds the level whether
	// they arrived from above or below.
	e := NewEngine(DefaultConfig())
	mid := history(true, false, true, false, true, false, true, false) // 0.5
	for _, current := range []int{2, 3} {
		rec := e.RecommendLevel(current, mid)
		if rec.Level != current || rec.Reason != ReasonSteady {
			t.Errorf("current %d: got level %d reason %q, want steady hold", current, rec.Level, rec.Reason)
		}
	}
}

func TestNewEngine_NormalizesBadConfig(t *testing.T) {
	e := NewEngine(Config{PromoteThreshold: 0.3, DemoteThreshold: 0.7})
	// Inverted thresholds fall back to defaults, so 0.875 promotes.
	rec := e.RecommendLevel(2, history(true, true, true, false, true, true, true, true))
	if rec.Reason != ReasonPromoted {
		t.Errorf("reason = %q, want promoted under restored thresholds", rec.Reason)
	}
}
