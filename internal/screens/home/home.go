package home

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/bondten/internal/adaptive"
	"github.com/abhisek/bondten/internal/levels"
	"github.com/abhisek/bondten/internal/router"
	"github.com/abhisek/bondten/internal/screen"
	"github.com/abhisek/bondten/internal/screens/gemvault"
	"github.com/abhisek/bondten/internal/screens/history"
	"github.com/abhisek/bondten/internal/screens/levelmap"
	sessionscreen "github.com/abhisek/bondten/internal/screens/session"
	"github.com/abhisek/bondten/internal/selfupdate"
	"github.com/abhisek/bondten/internal/session"
	"github.com/abhisek/bondten/internal/store"
	"github.com/abhisek/bondten/internal/ui/components"
)

// Deps carries everything the home screen and the screens it launches need.
type Deps struct {
	Generator    session.Generator
	EventRepo    store.EventRepo
	SnapshotRepo store.SnapshotRepo
	Engine       *adaptive.Engine

	// Rounds overrides the rounds per session when > 0.
	Rounds int

	// StartLevel overrides the snapshot level when > 0.
	StartLevel int

	// Version is the build version, used for the update note.
	Version string
}

type updateAvailableMsg struct {
	version string
}

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	deps          Deps
	menu          components.Menu
	menuLabels    []string
	level         int
	gemCount      int
	bestStreak    int
	mascotVariant MascotVariant
	updateVersion string
}

var (
	_ screen.Screen    = (*HomeScreen)(nil)
	_ screen.Refresher = (*HomeScreen)(nil)
)

// New creates a new HomeScreen.
func New(deps Deps) *HomeScreen {
	menuLabels := []string{"START PRACTICE", "LEVEL MAP", "GEM VAULT", "HISTORY", "EXIT"}

	h := &HomeScreen{
		deps:       deps,
		menuLabels: menuLabels,
	}

	items := []components.MenuItem{
		{Label: menuLabels[0], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: sessionscreen.New(deps.Generator, deps.EventRepo, deps.SnapshotRepo,
						deps.Engine, deps.Rounds, deps.StartLevel),
				}
			}
		}},
		{Label: menuLabels[1], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: levelmap.New(deps.EventRepo, h.level)}
			}
		}},
		{Label: menuLabels[2], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: gemvault.New(deps.EventRepo)}
			}
		}},
		{Label: menuLabels[3], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(deps.EventRepo)}
			}
		}},
		{Label: menuLabels[4], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	h.menu = components.NewMenu(items)
	h.loadStats()
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.checkUpdate()
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if up, ok := msg.(updateAvailableMsg); ok {
		h.updateVersion = up.version
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

// Refresh reloads the dashboard numbers after a covered screen closes.
// A finished session changes the level, the gem count, and the streak.
func (h *HomeScreen) Refresh() tea.Cmd {
	h.loadStats()
	return nil
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	// All sections share a uniform content width so they line up.
	cw := components.ContentWidth(width)

	var sections []string

	// 1. Title
	sections = append(sections, renderTitle(cw, compact))

	// 2. Mascot (full mode only)
	if !compact {
		sections = append(sections, renderMascotBox(h.mascotVariant, cw))
	}

	// 3. Stats bar (double-bordered, same width)
	sections = append(sections, renderStatsBar(
		h.level, h.gemCount, h.bestStreak, cw, compact))

	// 4. Menu (same width box)
	if compact {
		sections = append(sections, renderArcadeMenuCompact(
			h.menuLabels, h.menu.Selected, cw))
	} else {
		sections = append(sections, renderArcadeMenu(
			h.menuLabels, h.menu.Selected, cw))
	}

	// 5. Update note, when a newer release exists
	if h.updateVersion != "" {
		sections = append(sections, renderUpdateNote(h.updateVersion, cw))
	}

	content := strings.Join(sections, "\n\n")

	// Wrap in cabinet frame, centered in the full area
	return components.CabinetFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

// loadStats reads the snapshot and the event log for the dashboard numbers.
func (h *HomeScreen) loadStats() {
	ctx := context.Background()

	h.level = levels.MinLevel
	if h.deps.SnapshotRepo != nil {
		if snap, err := h.deps.SnapshotRepo.Latest(ctx); err == nil && snap != nil {
			h.level = levels.Clamp(snap.Data.Level)
			h.bestStreak = snap.Data.BestStreak
		}
	}

	if h.deps.EventRepo != nil {
		if _, total, err := h.deps.EventRepo.GemCounts(ctx); err == nil {
			h.gemCount = total
		}
		h.mascotVariant = mascotFor(h.deps.EventRepo)
	}
}

// mascotFor picks the mascot from how recently the learner practiced.
func mascotFor(repo store.EventRepo) MascotVariant {
	last, err := repo.LatestAttemptTime(context.Background())
	if err != nil || last.IsZero() {
		return MascotIdle
	}

	since := time.Since(last)
	switch {
	case since > 7*24*time.Hour:
		return MascotAlert
	case since < 24*time.Hour:
		return MascotCelebrating
	}
	return MascotIdle
}

// checkUpdate looks for a newer release in the background. Failures and
// dev builds stay silent.
func (h *HomeScreen) checkUpdate() tea.Cmd {
	version := h.deps.Version
	if version == "" || strings.Contains(version, "devel") {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()

		checker := selfupdate.NewChecker(selfupdate.WithTimeout(3 * time.Second))
		res, err := checker.Check(ctx, &selfupdate.CheckInput{Version: version})
		if err != nil || res == nil || !res.UpdateAvailable {
			return nil
		}
		return updateAvailableMsg{version: res.LatestVersion}
	}
}
