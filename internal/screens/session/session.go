package session

import (
	"context"
	"strconv"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/bondten/internal/adaptive"
	"github.com/abhisek/bondten/internal/diagnosis"
	"github.com/abhisek/bondten/internal/gems"
	"github.com/abhisek/bondten/internal/levels"
	"github.com/abhisek/bondten/internal/router"
	"github.com/abhisek/bondten/internal/screen"
	sess "github.com/abhisek/bondten/internal/session"
	"github.com/abhisek/bondten/internal/store"
	"github.com/abhisek/bondten/internal/ui/components"
	"github.com/abhisek/bondten/internal/ui/layout"

	"github.com/google/uuid"
)

// snapshotKeep is how many snapshots survive pruning after a session.
const snapshotKeep = 10

// SessionScreen implements screen.Screen for the active practice session.
type SessionScreen struct {
	state      *sess.SessionState
	generator  sess.Generator
	eventRepo  store.EventRepo
	snapRepo   store.SnapshotRepo
	engine     *adaptive.Engine
	rounds     int
	startLevel int

	input      components.TextInput
	bond       components.BondInput
	mc         components.MultiChoice
	mcActive   bool // true when the answer is picked from options
	bondActive bool // true while the learner fills the bond circles
	errMsg     string
}

var (
	_ screen.Screen          = (*SessionScreen)(nil)
	_ screen.KeyHintProvider = (*SessionScreen)(nil)
	_ screen.Refresher       = (*SessionScreen)(nil)
)

// New creates a SessionScreen. rounds and startLevel override the
// defaults when > 0; a zero startLevel resumes from the snapshot.
func New(generator sess.Generator, eventRepo store.EventRepo, snapRepo store.SnapshotRepo,
	engine *adaptive.Engine, rounds, startLevel int) *SessionScreen {
	return &SessionScreen{
		generator:  generator,
		eventRepo:  eventRepo,
		snapRepo:   snapRepo,
		engine:     engine,
		rounds:     rounds,
		startLevel: startLevel,
	}
}

func (s *SessionScreen) Init() tea.Cmd {
	return s.initSession()
}

func (s *SessionScreen) Title() string {
	return "Practice"
}

// Refresh fires when a pop reveals this screen again. The only screen
// ever stacked on top is the summary, so a finished session pops itself
// and the learner lands straight back on home.
func (s *SessionScreen) Refresh() tea.Cmd {
	if s.state != nil && s.state.Phase == sess.PhaseSummary {
		return func() tea.Msg { return router.PopScreenMsg{} }
	}
	return nil
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	if s.state == nil {
		return nil
	}
	if s.state.ShowingQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.state.Phase == sess.PhaseFeedback {
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	}
	if s.bondActive {
		return []layout.KeyHint{
			{Key: "Tab", Description: "Switch circle"},
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Quit"},
		}
	}
	if s.mcActive {
		return []layout.KeyHint{
			{Key: "1-4", Description: "Pick"},
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *SessionScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, height, s.errMsg)
	}
	if s.state == nil {
		return renderLoading(width, height)
	}
	if s.state.ShowingQuitConfirm {
		return renderQuitConfirm(width, height)
	}
	if s.state.Phase == sess.PhaseFeedback {
		return s.renderFeedback(width, height)
	}
	return s.renderRound(width, height)
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionInitMsg:
		return s.handleInit(msg)

	case timerTickMsg:
		return s.handleTimerTick()

	case feedbackDoneMsg:
		return s.handleFeedbackDone()

	case sessionEndMsg:
		return s.handleSessionEnd()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	// Forward remaining messages (cursor blinks) to the focused input.
	if s.state != nil && s.state.Phase == sess.PhaseActive && !s.state.ShowingQuitConfirm {
		var cmd tea.Cmd
		if s.bondActive {
			s.bond, cmd = s.bond.Update(msg)
			return s, cmd
		}
		if !s.mcActive {
			s.input, cmd = s.input.Update(msg)
			return s, cmd
		}
	}

	return s, nil
}

// initSession restores the learner's level from the latest snapshot and
// arms a fresh session state.
func (s *SessionScreen) initSession() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		snap, err := s.snapRepo.Latest(ctx)
		if err != nil {
			return sessionInitMsg{Err: err}
		}

		level := s.startLevel
		if level == 0 {
			level = levels.MinLevel
			if snap != nil {
				level = levels.Clamp(snap.Data.Level)
			}
		}

		cfg := sess.DefaultConfig()
		if s.rounds > 0 {
			cfg.Rounds = s.rounds
		}

		state := sess.NewSessionState(cfg, uuid.New().String(), level, s.generator)
		state.Engine = s.engine
		state.DiagnosisService = diagnosis.NewService()
		state.GemService = gems.NewService(s.eventRepo)
		state.EventRepo = s.eventRepo

		sess.Begin(state)
		_ = s.eventRepo.AppendSessionEvent(ctx, sess.StartEventData(state))

		return sessionInitMsg{State: state}
	}
}

func (s *SessionScreen) handleInit(msg sessionInitMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	s.state = msg.State
	return s, tea.Batch(
		s.startRound(),
		tickCmd(),
	)
}

// startRound draws the next problem and arms the matching input mode.
func (s *SessionScreen) startRound() tea.Cmd {
	if sess.Finished(s.state) {
		return func() tea.Msg { return sessionEndMsg{} }
	}

	err := sess.NextProblem(s.state)
	s.drainDefects()
	if err != nil {
		s.errMsg = err.Error()
		return nil
	}

	p := s.state.CurrentProblem
	if p.NeedsDecomposition() {
		s.bondActive = true
		s.mcActive = false
		s.bond = components.NewBondInput()
		return s.bond.Init()
	}

	s.bondActive = false
	s.mcActive = true
	opts := make([]string, len(p.Options))
	for i, o := range p.Options {
		opts[i] = strconv.Itoa(o)
	}
	s.mc = components.NewMultiChoice(p.Text(), opts, p.CorrectIndex())
	return nil
}

func (s *SessionScreen) handleTimerTick() (screen.Screen, tea.Cmd) {
	if s.state == nil || s.state.Phase == sess.PhaseEnding || s.state.Phase == sess.PhaseSummary {
		return s, nil
	}
	s.state.Elapsed = time.Since(s.state.StartTime)
	return s, tickCmd()
}

func (s *SessionScreen) handleFeedbackDone() (screen.Screen, tea.Cmd) {
	if s.state == nil {
		return s, nil
	}
	return s, s.startRound()
}

func (s *SessionScreen) handleSessionEnd() (screen.Screen, tea.Cmd) {
	if s.state == nil {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	ctx := context.Background()

	sess.End(s.state)
	_ = s.eventRepo.AppendSessionEvent(ctx, sess.EndEventData(s.state))
	s.drainDefects()
	s.saveSnapshot(ctx)

	summary := sess.BuildSummary(s.state)

	return s, func() tea.Msg {
		return router.PushScreenMsg{
			Screen: newSummaryScreenAdapter(summary),
		}
	}
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Error state: any key goes back.
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.state == nil {
		return s, nil
	}

	// Quit confirmation dialog.
	if s.state.ShowingQuitConfirm {
		switch key {
		case "y", "Y":
			s.state.ShowingQuitConfirm = false
			return s, func() tea.Msg { return sessionEndMsg{} }
		case "n", "N", "esc":
			s.state.ShowingQuitConfirm = false
			return s, nil
		}
		return s, nil
	}

	// Feedback overlay: any key dismisses.
	if s.state.Phase == sess.PhaseFeedback {
		return s, func() tea.Msg { return feedbackDoneMsg{} }
	}

	if s.state.Phase != sess.PhaseActive {
		return s, nil
	}

	switch key {
	case "esc":
		s.state.ShowingQuitConfirm = true
		return s, nil
	case "enter":
		return s.submit()
	}

	if s.bondActive {
		var cmd tea.Cmd
		s.bond, cmd = s.bond.Update(msg)
		return s, cmd
	}

	if s.mcActive {
		switch key {
		case "1", "2", "3", "4":
			i := int(key[0] - '1')
			if i < len(s.state.CurrentProblem.Options) {
				s.mc.Choose(i)
				return s.submitChoice(i)
			}
			return s, nil
		}
		var cmd tea.Cmd
		s.mc, cmd = s.mc.Update(msg)
		return s, cmd
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// submit routes enter to whichever input mode is live.
func (s *SessionScreen) submit() (screen.Screen, tea.Cmd) {
	if s.state.CurrentProblem == nil {
		return s, nil
	}

	switch {
	case s.bondActive:
		return s.submitSplit()
	case s.mcActive:
		s.mc.Choose(s.mc.Selected)
		return s.submitChoice(s.mc.Selected)
	default:
		answer, err := s.input.NumericValue()
		if err != nil {
			return s, nil
		}
		return s.submitAnswer(answer)
	}
}

func (s *SessionScreen) submitChoice(i int) (screen.Screen, tea.Cmd) {
	return s.submitAnswer(s.state.CurrentProblem.Options[i])
}

// submitSplit sends the bond parts through the round machine.
func (s *SessionScreen) submitSplit() (screen.Screen, tea.Cmd) {
	if !s.bond.Complete() {
		return s, nil
	}
	part1, part2, err := s.bond.Values()
	if err != nil {
		return s, nil
	}

	res := sess.SubmitSplit(s.state, part1, part2)
	s.drainDefects()

	switch res {
	case sess.StepSplitAccepted:
		s.bondActive = false
		s.input = components.NewTextInput("?", true, 3)
		return s, s.input.Init()
	case sess.StepRetry:
		s.bond.Clear()
	case sess.StepExplain:
		s.finishRound()
	}
	return s, nil
}

// submitAnswer sends a final answer through the round machine.
func (s *SessionScreen) submitAnswer(answer int) (screen.Screen, tea.Cmd) {
	res := sess.SubmitAnswer(s.state, answer)

	switch res {
	case sess.StepRetry:
		if s.mcActive {
			s.mc.Strike(s.mc.ChosenIndex)
		} else {
			s.input.Model.SetValue("")
		}
	case sess.StepCorrect, sess.StepExplain:
		if s.mcActive {
			s.mc.Reveal()
		}
		s.finishRound()
	}
	return s, nil
}

// finishRound persists the resolved attempt and runs the difficulty
// engine. The engine reads the event log, so the attempt goes in first.
func (s *SessionScreen) finishRound() {
	ctx := context.Background()

	if att := s.state.LastAttempt; att != nil {
		_ = s.eventRepo.AppendAttemptEvent(ctx, sess.AttemptEventData(s.state, att))
		s.state.LastAttempt = nil
	}
	s.drainDefects()

	if change := sess.EvaluateLevel(s.state); change != nil {
		_ = s.eventRepo.AppendLevelEvent(ctx, sess.LevelEventData(s.state, change))
	}
}

// drainDefects flushes absorbed failures to the event log.
func (s *SessionScreen) drainDefects() {
	if len(s.state.PendingDefects) == 0 {
		return
	}
	ctx := context.Background()
	for _, d := range s.state.PendingDefects {
		_ = s.eventRepo.AppendDefectEvent(ctx, d)
	}
	s.state.PendingDefects = nil
}

// saveSnapshot folds this session into the learner's long-run totals.
func (s *SessionScreen) saveSnapshot(ctx context.Context) {
	var prev *store.SnapshotData
	if snap, err := s.snapRepo.Latest(ctx); err == nil && snap != nil {
		prev = &snap.Data
	}

	var totals map[string]int
	if s.state.GemService != nil {
		totals, _ = s.state.GemService.Counts(ctx)
	}

	data := sess.MergeSnapshot(prev, s.state, totals)
	_ = s.snapRepo.Save(ctx, &store.Snapshot{
		Timestamp: time.Now(),
		Data:      data,
	})
	_ = s.snapRepo.Prune(ctx, snapshotKeep)
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
