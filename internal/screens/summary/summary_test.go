package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/bondten/internal/adaptive"
	"github.com/abhisek/bondten/internal/diagnosis"
	"github.com/abhisek/bondten/internal/gems"
	"github.com/abhisek/bondten/internal/session"
	"github.com/abhisek/bondten/internal/strategy"
)

func testSummary() *session.Summary {
	return &session.Summary{
		Duration: 6 * time.Minute,
		Rounds:   10,
		Correct:  8,
		Accuracy: 0.8,
		StrategyResults: []session.StrategyResult{
			{Strategy: strategy.StrategyBasic, Attempted: 4, Correct: 4},
			{Strategy: strategy.StrategyMakeTen, Attempted: 6, Correct: 4},
		},
		StartLevel: 2,
		EndLevel:   3,
		LevelPath: []session.LevelChange{
			{From: 2, To: 3, Reason: adaptive.ReasonPromoted, Accuracy: 0.9},
		},
		Gems: []gems.GemAward{
			{Type: gems.GemStreak, Rarity: gems.RarityRare, Reason: "5 correct in a row"},
		},
		SlipCounts:   map[diagnosis.Slip]int{diagnosis.SlipTenBoundary: 2},
		TopSlip:      diagnosis.SlipTenBoundary,
		TopSlipCount: 2,
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testSummary())
	if s.Title() != "Session Summary" {
		t.Errorf("Title = %q, want %q", s.Title(), "Session Summary")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testSummary())
	view := s.View(80, 24)
	if view == "" {
		t.Error("expected non-empty summary view")
	}
	if !strings.Contains(view, "Session complete!") {
		t.Error("expected completion headline in view")
	}
	if !strings.Contains(view, "8/10") && !strings.Contains(view, "Correct: 8") {
		t.Error("expected correct count in view")
	}
}

func TestSummaryScreen_ShowsStrategies(t *testing.T) {
	s := New(testSummary())
	view := s.View(80, 30)
	if !strings.Contains(view, strategy.StrategyMakeTen.DisplayName()) {
		t.Errorf("expected %q in view", strategy.StrategyMakeTen.DisplayName())
	}
	if !strings.Contains(view, "4/6 correct") {
		t.Error("expected make-ten score line in view")
	}
}

func TestSummaryScreen_ShowsLevelPath(t *testing.T) {
	s := New(testSummary())
	view := s.View(80, 30)
	if !strings.Contains(view, "Level path: 2 > 3") {
		t.Error("expected level path line in view")
	}

	flat := testSummary()
	flat.LevelPath = nil
	flat.EndLevel = flat.StartLevel
	view = New(flat).View(80, 30)
	if !strings.Contains(view, "Level 2") {
		t.Error("expected plain level line when the session never moved")
	}
}

func TestSummaryScreen_ShowsCoachNote(t *testing.T) {
	s := New(testSummary())
	view := s.View(80, 30)
	if !strings.Contains(view, "Coach's note") {
		t.Error("expected coach's note section for a repeated slip")
	}

	clean := testSummary()
	clean.TopSlipCount = 0
	clean.SlipCounts = nil
	view = New(clean).View(80, 30)
	if strings.Contains(view, "Coach's note") {
		t.Error("expected no coach's note without repeated slips")
	}
}

func TestSummaryScreen_ShowsGems(t *testing.T) {
	s := New(testSummary())
	view := s.View(80, 30)
	if !strings.Contains(view, "5 correct in a row") {
		t.Error("expected gem reason in view")
	}
}

func TestSummaryScreen_Navigation_Enter(t *testing.T) {
	s := New(testSummary())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Error("expected a command on Enter (pop)")
	}
}

func TestSummaryScreen_Navigation_Esc(t *testing.T) {
	s := New(testSummary())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Error("expected a command on Esc (pop)")
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New(testSummary())
	hints := s.KeyHints()
	if len(hints) != 2 {
		t.Errorf("KeyHints length = %d, want 2", len(hints))
	}
}
