package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/bondten/internal/adaptive"
	"github.com/abhisek/bondten/internal/router"
	"github.com/abhisek/bondten/internal/screen"
	"github.com/abhisek/bondten/internal/screens/home"
	"github.com/abhisek/bondten/internal/screens/welcome"
	"github.com/abhisek/bondten/internal/session"
	"github.com/abhisek/bondten/internal/store"
	"github.com/abhisek/bondten/internal/ui/layout"
)

// Options wires the app to its dependencies.
type Options struct {
	EventRepo    store.EventRepo
	SnapshotRepo store.SnapshotRepo
	Generator    session.Generator
	Engine       *adaptive.Engine

	// Rounds overrides the rounds per session when > 0.
	Rounds int

	// StartLevel overrides the snapshot level when > 0.
	StartLevel int

	// Version is the build version shown by the update note.
	Version string
}

// headerStatsMsg carries fresh numbers for the header chips.
type headerStatsMsg struct {
	Gems   int
	Streak int
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	opts   Options
	width  int
	height int
	gems   int
	streak int
}

// newAppModel creates the model with the welcome splash on the stack.
func newAppModel(opts Options) AppModel {
	homeFactory := func() screen.Screen {
		return home.New(home.Deps{
			Generator:    opts.Generator,
			EventRepo:    opts.EventRepo,
			SnapshotRepo: opts.SnapshotRepo,
			Engine:       opts.Engine,
			Rounds:       opts.Rounds,
			StartLevel:   opts.StartLevel,
			Version:      opts.Version,
		})
	}
	return AppModel{
		router: router.New(welcome.New(homeFactory)),
		opts:   opts,
	}
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(m.router.Active().Init(), m.loadHeaderStats())
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case headerStatsMsg:
		m.gems = msg.Gems
		m.streak = msg.Streak
		return m, nil

	case router.PushScreenMsg, router.PopScreenMsg, router.ReplaceScreenMsg:
		// Navigation can change what the header counts, so reload the
		// chips alongside the routing.
		return m, tea.Batch(m.router.Update(msg), m.loadHeaderStats())

	case tea.KeyMsg:
		// Screens own every other key, Esc included: the session
		// screen turns it into a quit confirmation.
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.gems, m.streak, m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	}
	if len(footerHints) == 0 {
		if m.router.Depth() > 1 {
			footerHints = []layout.KeyHint{
				{Key: "Esc", Description: "Back"},
			}
		} else {
			footerHints = []layout.KeyHint{
				{Key: "↑↓", Description: "Navigate"},
				{Key: "Enter", Description: "Select"},
			}
		}
	}
	footerHints = append(footerHints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// loadHeaderStats refreshes the gem and streak chips in the header.
func (m AppModel) loadHeaderStats() tea.Cmd {
	eventRepo := m.opts.EventRepo
	snapRepo := m.opts.SnapshotRepo
	return func() tea.Msg {
		ctx := context.Background()
		var stats headerStatsMsg
		if eventRepo != nil {
			if _, total, err := eventRepo.GemCounts(ctx); err == nil {
				stats.Gems = total
			}
		}
		if snapRepo != nil {
			if snap, err := snapRepo.Latest(ctx); err == nil && snap != nil {
				stats.Streak = snap.Data.BestStreak
			}
		}
		return stats
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
