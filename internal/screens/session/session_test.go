package session

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/bondten/internal/problemgen"
	"github.com/abhisek/bondten/internal/router"
	"github.com/abhisek/bondten/internal/screen"
	sess "github.com/abhisek/bondten/internal/session"
	"github.com/abhisek/bondten/internal/store"
	"github.com/abhisek/bondten/internal/strategy"
)

// scriptedGenerator implements sess.Generator with a fixed problem.
type scriptedGenerator struct {
	problem *problemgen.Problem
	err     error
}

func (g *scriptedGenerator) Generate(_ problemgen.GenerateInput) (*problemgen.Problem, error) {
	if g.err != nil {
		return nil, g.err
	}
	p := *g.problem
	return &p, nil
}

// mockEventRepo implements store.EventRepo and records appends.
type mockEventRepo struct {
	sessionEvents []store.SessionEventData
	attemptEvents []store.AttemptEventData
	levelEvents   []store.LevelEventData
	defectEvents  []store.DefectEventData
	gemEvents     []store.GemEventData
}

func (m *mockEventRepo) AppendAttemptEvent(_ context.Context, data store.AttemptEventData) error {
	m.attemptEvents = append(m.attemptEvents, data)
	return nil
}
func (m *mockEventRepo) AppendSessionEvent(_ context.Context, data store.SessionEventData) error {
	m.sessionEvents = append(m.sessionEvents, data)
	return nil
}
func (m *mockEventRepo) AppendLevelEvent(_ context.Context, data store.LevelEventData) error {
	m.levelEvents = append(m.levelEvents, data)
	return nil
}
func (m *mockEventRepo) AppendDefectEvent(_ context.Context, data store.DefectEventData) error {
	m.defectEvents = append(m.defectEvents, data)
	return nil
}
func (m *mockEventRepo) AppendGemEvent(_ context.Context, data store.GemEventData) error {
	m.gemEvents = append(m.gemEvents, data)
	return nil
}
func (m *mockEventRepo) RecentAttempts(_ context.Context, _ int) ([]store.AttemptEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) LevelAccuracy(_ context.Context, _ int) (float64, error) {
	return 0, nil
}
func (m *mockEventRepo) LevelStats(_ context.Context) (map[int]store.LevelStat, error) {
	return nil, nil
}
func (m *mockEventRepo) LatestAttemptTime(_ context.Context) (time.Time, error) {
	return time.Time{}, nil
}
func (m *mockEventRepo) QueryGemEvents(_ context.Context, _ store.QueryOpts) ([]store.GemEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) GemCounts(_ context.Context) (map[string]int, int, error) {
	return map[string]int{}, 0, nil
}
func (m *mockEventRepo) QuerySessionSummaries(_ context.Context, _ store.QueryOpts) ([]store.SessionSummaryRecord, error) {
	return nil, nil
}

// mockSnapshotRepo implements store.SnapshotRepo.
type mockSnapshotRepo struct {
	snapshots []*store.Snapshot
	latestErr error
}

func (m *mockSnapshotRepo) Save(_ context.Context, snap *store.Snapshot) error {
	m.snapshots = append(m.snapshots, snap)
	return nil
}
func (m *mockSnapshotRepo) Latest(_ context.Context) (*store.Snapshot, error) {
	if m.latestErr != nil {
		return nil, m.latestErr
	}
	if len(m.snapshots) == 0 {
		return nil, nil
	}
	return m.snapshots[len(m.snapshots)-1], nil
}
func (m *mockSnapshotRepo) Prune(_ context.Context, _ int) error {
	return nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func basicProblem() *problemgen.Problem {
	return &problemgen.Problem{
		Operand1:    3,
		Operand2:    4,
		Operation:   strategy.OpAddition,
		Level:       1,
		Strategy:    strategy.StrategyBasic,
		Answer:      7,
		Options:     []int{6, 7, 8, 17},
		Explanation: "Count up from 3: four more lands on 7.",
	}
}

func crossingProblem() *problemgen.Problem {
	return &problemgen.Problem{
		Operand1:    8,
		Operand2:    9,
		Operation:   strategy.OpAddition,
		Level:       2,
		Strategy:    strategy.StrategyCrossing,
		Answer:      17,
		Options:     []int{16, 17, 18, 71},
		Explanation: "Split 9 into 2 and 7. 8 + 2 makes 10, then 10 + 7 makes 17.",
	}
}

func testSessionScreen(p *problemgen.Problem, rounds int) (*SessionScreen, *mockEventRepo, *mockSnapshotRepo) {
	gen := &scriptedGenerator{problem: p}
	eventRepo := &mockEventRepo{}
	snapRepo := &mockSnapshotRepo{}
	s := New(gen, eventRepo, snapRepo, nil, rounds, 0)
	return s, eventRepo, snapRepo
}

// startSession runs the init command and feeds its message back, the
// same round trip the Bubble Tea runtime does.
func startSession(t *testing.T, s *SessionScreen) {
	t.Helper()
	msg := s.Init()()
	init, ok := msg.(sessionInitMsg)
	if !ok {
		t.Fatalf("Init produced %T, want sessionInitMsg", msg)
	}
	if init.Err != nil {
		t.Fatalf("init error: %v", init.Err)
	}
	if _, cmd := s.Update(init); cmd == nil {
		t.Fatal("expected a command after init (first round + tick)")
	}
	if s.state == nil || s.state.CurrentProblem == nil {
		t.Fatal("expected an armed first round after init")
	}
}

func TestSessionScreen_Title(t *testing.T) {
	s, _, _ := testSessionScreen(basicProblem(), 0)
	if s.Title() != "Practice" {
		t.Errorf("Title = %q, want %q", s.Title(), "Practice")
	}
}

func TestSessionScreen_View_Loading(t *testing.T) {
	s, _, _ := testSessionScreen(basicProblem(), 0)
	if s.View(80, 24) == "" {
		t.Error("expected non-empty view for loading state")
	}
}

func TestSessionScreen_View_Error(t *testing.T) {
	s, _, _ := testSessionScreen(basicProblem(), 0)
	s.errMsg = "test error"
	if s.View(80, 24) == "" {
		t.Error("expected non-empty view for error state")
	}

	// Any key leaves the broken session.
	_, cmd := s.Update(keyPress(' '))
	if cmd == nil {
		t.Fatal("expected a command from the error state")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("expected PopScreenMsg, got %T", cmd())
	}
}

func TestSessionScreen_InitError(t *testing.T) {
	s, _, snapRepo := testSessionScreen(basicProblem(), 0)
	snapRepo.latestErr = errors.New("db locked")

	msg := s.Init()()
	init := msg.(sessionInitMsg)
	if init.Err == nil {
		t.Fatal("expected init error to surface")
	}
	s.Update(init)
	if s.errMsg == "" {
		t.Error("expected error message after failed init")
	}
}

func TestSessionScreen_InitRecordsStartEvent(t *testing.T) {
	s, eventRepo, _ := testSessionScreen(basicProblem(), 0)
	startSession(t, s)

	if len(eventRepo.sessionEvents) != 1 {
		t.Fatalf("session events = %d, want 1", len(eventRepo.sessionEvents))
	}
	if eventRepo.sessionEvents[0].Action != "start" {
		t.Errorf("event action = %q, want start", eventRepo.sessionEvents[0].Action)
	}
}

func TestSessionScreen_ResumesLevelFromSnapshot(t *testing.T) {
	s, _, snapRepo := testSessionScreen(basicProblem(), 0)
	snapRepo.snapshots = append(snapRepo.snapshots, &store.Snapshot{
		Timestamp: time.Now(),
		Data:      store.SnapshotData{Version: 1, Level: 3},
	})

	startSession(t, s)
	if s.state.Level != 3 {
		t.Errorf("Level = %d, want 3 from snapshot", s.state.Level)
	}
}

func TestSessionScreen_StartLevelOverride(t *testing.T) {
	gen := &scriptedGenerator{problem: basicProblem()}
	s := New(gen, &mockEventRepo{}, &mockSnapshotRepo{}, nil, 5, 2)

	startSession(t, s)
	if s.state.Level != 2 {
		t.Errorf("Level = %d, want 2 from override", s.state.Level)
	}
	if s.state.Config.Rounds != 5 {
		t.Errorf("Rounds = %d, want 5 from override", s.state.Config.Rounds)
	}
}

func TestSessionScreen_BasicProblemUsesChoices(t *testing.T) {
	s, _, _ := testSessionScreen(basicProblem(), 0)
	startSession(t, s)

	if !s.mcActive || s.bondActive {
		t.Error("expected multiple choice for a basic problem")
	}
	if s.View(80, 24) == "" {
		t.Error("expected non-empty round view")
	}
}

func TestSessionScreen_ChoiceSubmit_Correct(t *testing.T) {
	s, eventRepo, _ := testSessionScreen(basicProblem(), 0)
	startSession(t, s)

	// Option 2 holds the answer 7.
	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('2'))
	ss := scr.(*SessionScreen)

	if ss.state.Phase != sess.PhaseFeedback {
		t.Error("expected feedback phase after a correct pick")
	}
	if !ss.state.LastAnswerCorrect {
		t.Error("expected the pick to be correct")
	}
	if !ss.mc.Revealed {
		t.Error("expected the choices to reveal")
	}
	if len(eventRepo.attemptEvents) != 1 {
		t.Errorf("attempt events = %d, want 1", len(eventRepo.attemptEvents))
	}
	if !eventRepo.attemptEvents[0].Correct {
		t.Error("expected a correct attempt event")
	}
}

func TestSessionScreen_ChoiceSubmit_Retry(t *testing.T) {
	s, eventRepo, _ := testSessionScreen(basicProblem(), 0)
	startSession(t, s)

	// Option 1 holds 6, one off the answer.
	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('1'))
	ss := scr.(*SessionScreen)

	if ss.state.Phase != sess.PhaseActive {
		t.Error("expected the round to stay active for a retry")
	}
	if !ss.mc.Struck[0] {
		t.Error("expected the wrong option to be struck")
	}
	if ss.state.Round.WrongGuesses() != 1 {
		t.Errorf("wrong guesses = %d, want 1", ss.state.Round.WrongGuesses())
	}
	// The attempt only persists once the round resolves.
	if len(eventRepo.attemptEvents) != 0 {
		t.Errorf("attempt events = %d, want 0", len(eventRepo.attemptEvents))
	}
}

func TestSessionScreen_CrossingProblemUsesBond(t *testing.T) {
	s, _, _ := testSessionScreen(crossingProblem(), 0)
	startSession(t, s)

	if !s.bondActive || s.mcActive {
		t.Error("expected the bond input for a crossing problem")
	}
	if s.View(80, 24) == "" {
		t.Error("expected non-empty bond view")
	}
}

func TestSessionScreen_BondFlow_SplitThenAnswer(t *testing.T) {
	s, eventRepo, _ := testSessionScreen(crossingProblem(), 0)
	startSession(t, s)

	// 8 + 9: split 9 into 2 and 7.
	s.bond.Left.Model.SetValue("2")
	s.bond.Right.Model.SetValue("7")

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	ss := scr.(*SessionScreen)

	if ss.bondActive {
		t.Fatal("expected the bond stage to complete on a valid split")
	}
	if !ss.state.LastAnswerCorrect {
		t.Error("expected split praise after a valid split")
	}

	// Now the final answer.
	ss.input.Model.SetValue("17")
	scr, _ = ss.Update(specialKey(tea.KeyEnter))
	ss = scr.(*SessionScreen)

	if ss.state.Phase != sess.PhaseFeedback {
		t.Error("expected feedback after the final answer")
	}
	if len(eventRepo.attemptEvents) != 1 {
		t.Errorf("attempt events = %d, want 1", len(eventRepo.attemptEvents))
	}
}

func TestSessionScreen_BondRetryClearsCircles(t *testing.T) {
	s, _, _ := testSessionScreen(crossingProblem(), 0)
	startSession(t, s)

	// 3 + 6 reaches 9 but never makes a ten.
	s.bond.Left.Model.SetValue("3")
	s.bond.Right.Model.SetValue("6")

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	ss := scr.(*SessionScreen)

	if !ss.bondActive {
		t.Fatal("expected the bond stage to continue after a bad split")
	}
	if ss.bond.Complete() {
		t.Error("expected the circles to clear for the retry")
	}
	if ss.state.LastMessage == "" {
		t.Error("expected a retry message")
	}
}

func TestSessionScreen_IncompleteBondIgnored(t *testing.T) {
	s, _, _ := testSessionScreen(crossingProblem(), 0)
	startSession(t, s)

	s.bond.Left.Model.SetValue("2")

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	ss := scr.(*SessionScreen)

	if !ss.bondActive {
		t.Error("expected enter with one empty circle to do nothing")
	}
}

func TestSessionScreen_QuitConfirm(t *testing.T) {
	s, _, _ := testSessionScreen(basicProblem(), 0)
	startSession(t, s)

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	ss := scr.(*SessionScreen)
	if !ss.state.ShowingQuitConfirm {
		t.Error("expected quit confirmation dialog")
	}
	if !strings.Contains(ss.View(80, 24), "End session early?") {
		t.Error("expected quit confirm prompt in view")
	}

	scr, _ = ss.Update(keyPress('n'))
	ss = scr.(*SessionScreen)
	if ss.state.ShowingQuitConfirm {
		t.Error("expected quit confirmation to be dismissed")
	}
}

func TestSessionScreen_QuitConfirm_Yes(t *testing.T) {
	s, _, _ := testSessionScreen(basicProblem(), 0)
	startSession(t, s)

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	_, cmd := scr.Update(keyPress('y'))

	if cmd == nil {
		t.Fatal("expected a command after quit confirmation")
	}
	if _, ok := cmd().(sessionEndMsg); !ok {
		t.Errorf("expected sessionEndMsg, got %T", cmd())
	}
}

func TestSessionScreen_FeedbackDismissAdvances(t *testing.T) {
	s, _, _ := testSessionScreen(basicProblem(), 0)
	startSession(t, s)

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('2'))
	ss := scr.(*SessionScreen)
	if ss.state.Phase != sess.PhaseFeedback {
		t.Fatal("expected feedback phase")
	}

	// Any key dismisses, the dismiss message starts the next round.
	scr, cmd := ss.Update(keyPress(' '))
	ss = scr.(*SessionScreen)
	if cmd == nil {
		t.Fatal("expected a command from feedback dismiss")
	}
	if _, ok := cmd().(feedbackDoneMsg); !ok {
		t.Fatalf("expected feedbackDoneMsg, got %T", cmd())
	}

	scr, _ = ss.Update(feedbackDoneMsg{})
	ss = scr.(*SessionScreen)
	if ss.state.Phase != sess.PhaseActive {
		t.Error("expected a fresh active round after dismissing feedback")
	}
	if ss.state.RoundsServed != 1 {
		t.Errorf("RoundsServed = %d, want 1", ss.state.RoundsServed)
	}
}

func TestSessionScreen_EndFlow(t *testing.T) {
	s, eventRepo, snapRepo := testSessionScreen(basicProblem(), 1)
	startSession(t, s)

	// Answer the single round, dismiss feedback.
	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('2'))
	ss := scr.(*SessionScreen)
	scr, cmd := ss.Update(feedbackDoneMsg{})
	ss = scr.(*SessionScreen)

	// The round budget is spent, so the next-round command ends the
	// session instead.
	if cmd == nil {
		t.Fatal("expected a command after the last round")
	}
	endMsg, ok := cmd().(sessionEndMsg)
	if !ok {
		t.Fatalf("expected sessionEndMsg, got %T", cmd())
	}

	scr, cmd = ss.Update(endMsg)
	ss = scr.(*SessionScreen)
	if cmd == nil {
		t.Fatal("expected a command from session end")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if push.Screen == nil {
		t.Fatal("expected a summary screen")
	}

	if ss.state.Phase != sess.PhaseSummary {
		t.Error("expected summary phase after end")
	}
	if len(eventRepo.sessionEvents) != 2 {
		t.Errorf("session events = %d, want start and end", len(eventRepo.sessionEvents))
	}
	if len(snapRepo.snapshots) != 1 {
		t.Errorf("snapshots = %d, want 1", len(snapRepo.snapshots))
	}
	if snapRepo.snapshots[0].Data.TotalRounds != 1 {
		t.Errorf("snapshot TotalRounds = %d, want 1", snapRepo.snapshots[0].Data.TotalRounds)
	}
}

func TestSessionScreen_RefreshPopsFinishedSession(t *testing.T) {
	s, _, _ := testSessionScreen(basicProblem(), 1)
	startSession(t, s)

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('2'))
	ss := scr.(*SessionScreen)
	ss.Update(feedbackDoneMsg{})
	ss.Update(sessionEndMsg{})

	cmd := ss.Refresh()
	if cmd == nil {
		t.Fatal("expected a pop command from a finished session")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("expected PopScreenMsg, got %T", cmd())
	}

	// An active session stays put.
	active, _, _ := testSessionScreen(basicProblem(), 0)
	startSession(t, active)
	if active.Refresh() != nil {
		t.Error("expected no refresh command for an active session")
	}
}

func TestSessionScreen_TimerTick(t *testing.T) {
	s, _, _ := testSessionScreen(basicProblem(), 0)
	startSession(t, s)
	s.state.StartTime = time.Now().Add(-90 * time.Second)

	_, cmd := s.Update(timerTickMsg(time.Now()))
	if cmd == nil {
		t.Error("expected the timer to keep ticking")
	}
	if s.state.Elapsed < 90*time.Second {
		t.Errorf("Elapsed = %v, want at least 90s", s.state.Elapsed)
	}
	if !strings.Contains(s.View(80, 24), "1:30") {
		t.Error("expected the elapsed clock in the round view")
	}
}

func TestSessionScreen_KeyHints(t *testing.T) {
	s, _, _ := testSessionScreen(crossingProblem(), 0)
	if s.KeyHints() != nil {
		t.Error("expected no hints before init")
	}

	startSession(t, s)
	hints := s.KeyHints()
	if len(hints) == 0 {
		t.Fatal("expected hints for the bond stage")
	}
	if hints[0].Key != "Tab" {
		t.Errorf("first bond hint = %q, want Tab", hints[0].Key)
	}

	s.state.ShowingQuitConfirm = true
	if len(s.KeyHints()) != 2 {
		t.Error("expected two hints in the quit confirm dialog")
	}
}
