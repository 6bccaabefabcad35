package levelmap

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/bondten/internal/levels"
	"github.com/abhisek/bondten/internal/router"
	"github.com/abhisek/bondten/internal/store"
)

// loadedScreen returns a screen past its loading state, with stats for
// levels 1 and 2.
func loadedScreen(current int) *LevelMapScreen {
	s := New(nil, current)
	s.Update(levelStatsMsg{Stats: map[int]store.LevelStat{
		1: {Attempts: 20, Correct: 18},
		2: {Attempts: 8, Correct: 5},
	}})
	return s
}

func TestLevelMapScreen_Title(t *testing.T) {
	s := New(nil, 1)
	if s.Title() != "Level Map" {
		t.Errorf("Title = %q, want %q", s.Title(), "Level Map")
	}
}

func TestLevelMapScreen_CursorStartsAtCurrentLevel(t *testing.T) {
	s := New(nil, 3)
	if s.cursor != 2 {
		t.Errorf("cursor = %d, want 2", s.cursor)
	}

	// Out-of-range levels clamp.
	s = New(nil, 99)
	if s.cursor != levels.MaxLevel-levels.MinLevel {
		t.Errorf("cursor = %d, want top rung", s.cursor)
	}
}

func TestLevelMapScreen_NavigationClamps(t *testing.T) {
	s := loadedScreen(4)
	s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if s.cursor != 3 {
		t.Errorf("cursor moved past the top rung: %d", s.cursor)
	}

	s = loadedScreen(1)
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if s.cursor != 0 {
		t.Errorf("cursor moved past the bottom rung: %d", s.cursor)
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if s.cursor != 1 {
		t.Errorf("up should climb one rung, cursor = %d", s.cursor)
	}
}

func TestLevelMapScreen_View(t *testing.T) {
	s := loadedScreen(2)
	view := s.View(80, 30)

	for _, lvl := range levels.Catalog() {
		if !strings.Contains(view, lvl.Name) {
			t.Errorf("expected %q in view", lvl.Name)
		}
	}
	if !strings.Contains(view, "not visited yet") {
		t.Error("expected placeholder for unvisited levels")
	}
	if !strings.Contains(view, "20 rounds") {
		t.Error("expected level 1 round count in view")
	}
}

func TestLevelMapScreen_ViewBeforeLoad(t *testing.T) {
	s := New(nil, 1)
	if !strings.Contains(s.View(80, 24), "Loading") {
		t.Error("expected loading placeholder before stats arrive")
	}
}

func TestLevelMapScreen_EnterOpensDetail(t *testing.T) {
	s := loadedScreen(2)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	detail, ok := msg.Screen.(*LevelDetailScreen)
	if !ok {
		t.Fatalf("expected LevelDetailScreen, got %T", msg.Screen)
	}
	if detail.level.Number != 2 {
		t.Errorf("detail level = %d, want 2", detail.level.Number)
	}
}

func TestLevelMapScreen_EscPops(t *testing.T) {
	s := loadedScreen(1)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a command on Esc")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("expected PopScreenMsg, got %T", cmd())
	}
}

func TestLevelDetailScreen_View(t *testing.T) {
	lvl, _ := levels.Get(2)
	d := newLevelDetail(lvl, 2, store.LevelStat{Attempts: 8, Correct: 5})
	view := d.View(80, 30)

	if !strings.Contains(view, "Ten Town") {
		t.Error("expected level name in view")
	}
	if !strings.Contains(view, "You are here") {
		t.Error("expected current-level standing in view")
	}
	if !strings.Contains(view, "Make Ten") {
		t.Error("expected strategy list in view")
	}
	if !strings.Contains(view, "Problem shapes") {
		t.Error("expected problem shapes section in view")
	}
}

func TestLevelDetailScreen_StandingVariants(t *testing.T) {
	lvl, _ := levels.Get(1)

	d := newLevelDetail(lvl, 3, store.LevelStat{})
	if !strings.Contains(d.View(80, 30), "Visited") {
		t.Error("expected visited standing for a lower rung")
	}

	lvl4, _ := levels.Get(4)
	d = newLevelDetail(lvl4, 3, store.LevelStat{})
	if !strings.Contains(d.View(80, 30), "Up ahead") {
		t.Error("expected up-ahead standing for a higher rung")
	}
}
