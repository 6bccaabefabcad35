package session

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/bondten/internal/adaptive"
	"github.com/abhisek/bondten/internal/diagnosis"
	"github.com/abhisek/bondten/internal/gems"
	"github.com/abhisek/bondten/internal/problemgen"
	"github.com/abhisek/bondten/internal/store"
	"github.com/abhisek/bondten/internal/strategy"
)

// scriptedGenerator returns problems from a func, so tests control
// exactly what each round serves.
type scriptedGenerator struct {
	generate func(input problemgen.GenerateInput) (*problemgen.Problem, error)
}

func (g *scriptedGenerator) Generate(input problemgen.GenerateInput) (*problemgen.Problem, error) {
	return g.generate(input)
}

func fixedGenerator(p *problemgen.Problem) Generator {
	return &scriptedGenerator{
		generate: func(problemgen.GenerateInput) (*problemgen.Problem, error) {
			return p, nil
		},
	}
}

// mockEventRepo implements store.EventRepo with scripted query results.
type mockEventRepo struct {
	recent        []store.AttemptEventRecord
	recentErr     error
	levelAccuracy float64
}

func (m *mockEventRepo) AppendAttemptEvent(_ context.Context, _ store.AttemptEventData) error {
	return nil
}
func (m *mockEventRepo) AppendSessionEvent(_ context.Context, _ store.SessionEventData) error {
	return nil
}
func (m *mockEventRepo) AppendLevelEvent(_ context.Context, _ store.LevelEventData) error {
	return nil
}
func (m *mockEventRepo) AppendDefectEvent(_ context.Context, _ store.DefectEventData) error {
	return nil
}
func (m *mockEventRepo) AppendGemEvent(_ context.Context, _ store.GemEventData) error {
	return nil
}
func (m *mockEventRepo) RecentAttempts(_ context.Context, _ int) ([]store.AttemptEventRecord, error) {
	return m.recent, m.recentErr
}
func (m *mockEventRepo) LevelAccuracy(_ context.Context, _ int) (float64, error) {
	return m.levelAccuracy, nil
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

func testState(t *testing.T, p *problemgen.Problem) *SessionState {
	t.Helper()
	state := NewSessionState(DefaultConfig(), "test-session", p.Level, fixedGenerator(p))
	Begin(state)
	if err := NextProblem(state); err != nil {
		t.Fatalf("NextProblem: %v", err)
	}
	return state
}

// slowDown backdates the problem start so the diagnosis chain sees a
// considered answer instead of a speed rush.
func slowDown(state *SessionState) {
	state.ProblemStartTime = time.Now().Add(-10 * time.Second)
}

func TestNewSessionState_ClampsLevel(t *testing.T) {
	state := NewSessionState(Config{}, "id", 99, fixedGenerator(basicProblem()))

	if state.Level != 4 {
		t.Errorf("Level = %d, want 4", state.Level)
	}
	if state.Config.Rounds != DefaultRounds {
		t.Errorf("Rounds = %d, want %d", state.Config.Rounds, DefaultRounds)
	}
	if state.NextStreakThreshold != gems.BaseStreakThreshold {
		t.Errorf("NextStreakThreshold = %d, want %d", state.NextStreakThreshold, gems.BaseStreakThreshold)
	}
	if state.Phase != PhaseLoading {
		t.Errorf("Phase = %d, want PhaseLoading", state.Phase)
	}
}

func TestNextProblem_ArmsRound(t *testing.T) {
	state := testState(t, crossingProblem())

	if state.CurrentProblem == nil {
		t.Fatal("expected a current problem")
	}
	if state.Stage != diagnosis.StageSplit {
		t.Errorf("Stage = %q, want split for a crossing problem", state.Stage)
	}
	if state.Round == nil || state.Round.Resolved() {
		t.Error("expected a fresh open round")
	}
	if len(state.Recent) != 1 || state.Recent[0] != "addition:8:9" {
		t.Errorf("Recent = %v", state.Recent)
	}
	if state.Phase != PhaseActive {
		t.Errorf("Phase = %d, want PhaseActive", state.Phase)
	}
}

func TestNextProblem_BasicSkipsSplitStage(t *testing.T) {
	state := testState(t, basicProblem())

	if state.Stage != diagnosis.StageAnswer {
		t.Errorf("Stage = %q, want answer for a basic problem", state.Stage)
	}
}

func TestNextProblem_FallsBackToLevelOne(t *testing.T) {
	gen := &scriptedGenerator{
		generate: func(input problemgen.GenerateInput) (*problemgen.Problem, error) {
			if input.Level == 1 {
				return basicProblem(), nil
			}
			return nil, errors.New("exhausted")
		},
	}
	state := NewSessionState(DefaultConfig(), "id", 3, gen)
	Begin(state)

	if err := NextProblem(state); err != nil {
		t.Fatalf("NextProblem: %v", err)
	}
	if state.CurrentProblem == nil || state.CurrentProblem.Level != 1 {
		t.Error("expected the level 1 fallback problem")
	}
	if len(state.PendingDefects) != 1 {
		t.Fatalf("PendingDefects = %d, want 1", len(state.PendingDefects))
	}
	if state.PendingDefects[0].Source != "problemgen" {
		t.Errorf("defect source = %q", state.PendingDefects[0].Source)
	}
}

func TestNextProblem_FailureAtLevelOne(t *testing.T) {
	gen := &scriptedGenerator{
		generate: func(problemgen.GenerateInput) (*problemgen.Problem, error) {
			return nil, errors.New("exhausted")
		},
	}
	state := NewSessionState(DefaultConfig(), "id", 1, gen)
	Begin(state)

	if err := NextProblem(state); err == nil {
		t.Fatal("expected an error when level 1 generation fails")
	}
	if len(state.PendingDefects) != 1 {
		t.Errorf("PendingDefects = %d, want 1", len(state.PendingDefects))
	}
}

func TestSubmitAnswer_CorrectResolvesRound(t *testing.T) {
	state := testState(t, basicProblem())

	result := SubmitAnswer(state, 7)

	if result != StepCorrect {
		t.Fatalf("result = %q, want StepCorrect", result)
	}
	if state.RoundsServed != 1 || state.CorrectRounds != 1 {
		t.Errorf("rounds = %d/%d, want 1/1", state.CorrectRounds, state.RoundsServed)
	}
	if state.ConsecutiveCorrect != 1 {
		t.Errorf("streak = %d, want 1", state.ConsecutiveCorrect)
	}
	if state.LastAttempt == nil || !state.LastAttempt.Correct {
		t.Error("expected a correct LastAttempt for persistence")
	}
	if state.Phase != PhaseFeedback {
		t.Errorf("Phase = %d, want PhaseFeedback", state.Phase)
	}

	sr := state.PerStrategy[strategy.StrategyBasic]
	if sr == nil || sr.Attempted != 1 || sr.Correct != 1 {
		t.Errorf("PerStrategy[basic] = %+v", sr)
	}
}

func TestSubmitAnswer_WrongGivesHint(t *testing.T) {
	state := testState(t, basicProblem())
	state.DiagnosisService = diagnosis.NewService()
	slowDown(state)

	result := SubmitAnswer(state, 8)

	if result != StepRetry {
		t.Fatalf("result = %q, want StepRetry", result)
	}
	if state.LastSlip != diagnosis.SlipOffByOne {
		t.Errorf("LastSlip = %q, want off_by_one", state.LastSlip)
	}
	if state.LastHint == "" {
		t.Error("expected a hint for the retry prompt")
	}
	if state.FirstSlip == nil || *state.FirstSlip != diagnosis.SlipOffByOne {
		t.Errorf("FirstSlip = %v, want off_by_one", state.FirstSlip)
	}
	if state.RoundsServed != 0 {
		t.Error("an open round must not count as served")
	}
	if state.LastAttempt != nil {
		t.Error("an open round must not produce a recordable attempt")
	}
}

func TestSubmitAnswer_ThirdWrongExplains(t *testing.T) {
	state := testState(t, basicProblem())

	if r := SubmitAnswer(state, 8); r != StepRetry {
		t.Fatalf("first wrong = %q, want StepRetry", r)
	}
	if r := SubmitAnswer(state, 6); r != StepRetry {
		t.Fatalf("second wrong = %q, want StepRetry", r)
	}
	if r := SubmitAnswer(state, 9); r != StepExplain {
		t.Fatalf("third wrong = %q, want StepExplain", r)
	}

	if state.RoundsServed != 1 || state.CorrectRounds != 0 {
		t.Errorf("rounds = %d/%d, want 0/1", state.CorrectRounds, state.RoundsServed)
	}
	if state.LastAttempt == nil {
		t.Fatal("expected a recordable attempt")
	}
	if state.LastAttempt.Correct {
		t.Error("attempt should be recorded as failed")
	}
	if state.LastAttempt.WrongGuesses != 3 {
		t.Errorf("WrongGuesses = %d, want 3", state.LastAttempt.WrongGuesses)
	}

	// The round is closed: extra submissions change nothing.
	if r := SubmitAnswer(state, 7); r != StepIgnored {
		t.Fatalf("post-resolution submit = %q, want StepIgnored", r)
	}
	if state.RoundsServed != 1 {
		t.Error("post-resolution submit must not count another round")
	}
}

func TestSubmitSplit_CorrectAdvancesStage(t *testing.T) {
	state := testState(t, crossingProblem())

	result := SubmitSplit(state, 2, 7)

	if result != StepSplitAccepted {
		t.Fatalf("result = %q, want StepSplitAccepted", result)
	}
	if state.Stage != diagnosis.StageAnswer {
		t.Errorf("Stage = %q, want answer", state.Stage)
	}
	if state.Round.Resolved() {
		t.Error("a correct split must not resolve the round")
	}
	if state.LastMessage == "" {
		t.Error("expected the checker's message")
	}

	if r := SubmitAnswer(state, 17); r != StepCorrect {
		t.Fatalf("answer after split = %q, want StepCorrect", r)
	}
	if state.LastAttempt.WrongGuesses != 0 {
		t.Errorf("WrongGuesses = %d, want 0", state.LastAttempt.WrongGuesses)
	}
}

func TestSubmitSplit_ReversedPairAccepted(t *testing.T) {
	state := testState(t, crossingProblem())

	if r := SubmitSplit(state, 7, 2); r != StepSplitAccepted {
		t.Fatalf("reversed canonical pair = %q, want StepSplitAccepted", r)
	}
}

func TestSubmitSplit_WrongCostsTry(t *testing.T) {
	state := testState(t, crossingProblem())
	slowDown(state)

	result := SubmitSplit(state, 3, 4)

	if result != StepRetry {
		t.Fatalf("result = %q, want StepRetry", result)
	}
	if state.Stage != diagnosis.StageSplit {
		t.Error("a wrong split keeps the learner on the split stage")
	}
	if !strings.Contains(state.LastMessage, "2") || !strings.Contains(state.LastMessage, "7") {
		t.Errorf("message %q should name the canonical parts", state.LastMessage)
	}
	if state.Round.WrongGuesses() != 1 {
		t.Errorf("WrongGuesses = %d, want 1", state.Round.WrongGuesses())
	}
}

func TestSplitAndAnswerShareTries(t *testing.T) {
	state := testState(t, crossingProblem())

	SubmitSplit(state, 3, 4)
	SubmitSplit(state, 1, 8)
	if r := SubmitSplit(state, 2, 7); r != StepSplitAccepted {
		t.Fatalf("third split = %q, want StepSplitAccepted", r)
	}

	// Two wrong splits used two tries; one wrong answer ends the round.
	if r := SubmitAnswer(state, 16); r != StepExplain {
		t.Fatalf("wrong answer on last try = %q, want StepExplain", r)
	}
	if state.LastAttempt.WrongGuesses != 3 {
		t.Errorf("WrongGuesses = %d, want 3", state.LastAttempt.WrongGuesses)
	}
}

func TestStreakGemAwarded(t *testing.T) {
	state := testState(t, basicProblem())
	state.GemService = gems.NewService(nil)

	for i := 0; i < gems.BaseStreakThreshold; i++ {
		if err := NextProblem(state); err != nil {
			t.Fatalf("NextProblem %d: %v", i, err)
		}
		if r := SubmitAnswer(state, 7); r != StepCorrect {
			t.Fatalf("round %d = %q, want StepCorrect", i, r)
		}
	}

	if state.PendingGemAward == nil {
		t.Fatal("expected a streak gem at the threshold")
	}
	if state.PendingGemAward.Type != gems.GemStreak {
		t.Errorf("gem type = %q, want streak", state.PendingGemAward.Type)
	}
	if state.NextStreakThreshold != 10 {
		t.Errorf("NextStreakThreshold = %d, want 10", state.NextStreakThreshold)
	}
}

func promotionHistory(level int, n int) []store.AttemptEventRecord {
	records := make([]store.AttemptEventRecord, n)
	for i := range records {
		records[i] = store.AttemptEventRecord{
			ProblemKey: "addition:8:9",
			Operation:  "addition",
			Strategy:   "crossing",
			Level:      level,
			Correct:    true,
			Sequence:   int64(n - i),
			Timestamp:  time.Now(),
		}
	}
	return records
}

func TestEvaluateLevel_PromotesOnStrongWindow(t *testing.T) {
	state := testState(t, crossingProblem())
	state.Engine = adaptive.NewEngine(adaptive.DefaultConfig())
	state.EventRepo = &mockEventRepo{recent: promotionHistory(2, 8)}
	state.GemService = gems.NewService(nil)

	change := EvaluateLevel(state)

	if change == nil {
		t.Fatal("expected a promotion")
	}
	if change.From != 2 || change.To != 3 {
		t.Errorf("change = %d -> %d, want 2 -> 3", change.From, change.To)
	}
	if change.Reason != adaptive.ReasonPromoted {
		t.Errorf("reason = %q, want promoted", change.Reason)
	}
	if state.Level != 3 {
		t.Errorf("Level = %d, want 3", state.Level)
	}
	if len(state.LevelPath) != 1 {
		t.Errorf("LevelPath length = %d, want 1", len(state.LevelPath))
	}
	if state.PendingGemAward == nil || state.PendingGemAward.Type != gems.GemClimb {
		t.Error("expected a climb gem on promotion")
	}
}

func TestEvaluateLevel_ThinHistoryHolds(t *testing.T) {
	state := testState(t, crossingProblem())
	state.Engine = adaptive.NewEngine(adaptive.DefaultConfig())
	state.EventRepo = &mockEventRepo{recent: promotionHistory(2, 3)}

	if change := EvaluateLevel(state); change != nil {
		t.Errorf("expected no change on thin history, got %+v", change)
	}
	if state.Level != 2 {
		t.Errorf("Level = %d, want unchanged 2", state.Level)
	}
}

func TestEvaluateLevel_FallsBackToSessionAttempts(t *testing.T) {
	state := testState(t, crossingProblem())
	state.Engine = adaptive.NewEngine(adaptive.DefaultConfig())

	for i := 0; i < 8; i++ {
		state.Attempts = append(state.Attempts, adaptive.Attempt{
			ProblemKey: "addition:8:9",
			Level:      2,
			Correct:    true,
		})
	}

	change := EvaluateLevel(state)
	if change == nil || change.To != 3 {
		t.Fatalf("expected promotion from session attempts, got %+v", change)
	}
}

func TestEnd_AwardsSessionGem(t *testing.T) {
	state := testState(t, basicProblem())
	state.GemService = gems.NewService(nil)
	SubmitAnswer(state, 7)

	End(state)

	if state.Phase != PhaseSummary {
		t.Errorf("Phase = %d, want PhaseSummary", state.Phase)
	}
	if state.PendingGemAward == nil || state.PendingGemAward.Type != gems.GemSession {
		t.Error("expected a session gem")
	}
}

func TestEndEventData_CarriesSlipCounts(t *testing.T) {
	state := testState(t, basicProblem())
	state.DiagnosisService = diagnosis.NewService()
	slowDown(state)

	SubmitAnswer(state, 8)
	SubmitAnswer(state, 7)
	End(state)

	data := EndEventData(state)
	if data.Action != "end" {
		t.Errorf("action = %q, want end", data.Action)
	}
	if data.RoundsServed != 1 || data.CorrectRounds != 1 {
		t.Errorf("rounds = %d/%d, want 1/1", data.CorrectRounds, data.RoundsServed)
	}
	if data.SlipCounts["off_by_one"] != 1 {
		t.Errorf("SlipCounts = %v, want one off_by_one", data.SlipCounts)
	}
}

func TestAttemptEventData_CarriesFirstSlip(t *testing.T) {
	state := testState(t, basicProblem())
	state.DiagnosisService = diagnosis.NewService()
	slowDown(state)

	SubmitAnswer(state, 8)
	SubmitAnswer(state, 7)

	data := AttemptEventData(state, state.LastAttempt)
	if data.Slip == nil || *data.Slip != "off_by_one" {
		t.Errorf("Slip = %v, want off_by_one", data.Slip)
	}
	if !data.Correct || data.WrongGuesses != 1 {
		t.Errorf("data = %+v", data)
	}
}

func TestMergeSnapshot(t *testing.T) {
	state := testState(t, basicProblem())
	state.BestStreak = 4
	state.RoundsServed = 10
	state.CorrectRounds = 8

	data := MergeSnapshot(nil, state, map[string]int{"streak": 1})
	if data.TotalRounds != 10 || data.TotalCorrect != 8 || data.BestStreak != 4 {
		t.Errorf("fresh merge = %+v", data)
	}

	prev := &store.SnapshotData{BestStreak: 9, TotalRounds: 50, TotalCorrect: 40}
	data = MergeSnapshot(prev, state, map[string]int{"streak": 3})
	if data.TotalRounds != 60 || data.TotalCorrect != 48 {
		t.Errorf("summed merge = %+v", data)
	}
	if data.BestStreak != 9 {
		t.Errorf("BestStreak = %d, want the historic 9", data.BestStreak)
	}
	if data.Level != 1 {
		t.Errorf("Level = %d, want the working level", data.Level)
	}
	if data.GemTotals["streak"] != 3 {
		t.Errorf("GemTotals = %v", data.GemTotals)
	}
}

func TestBuildSummary(t *testing.T) {
	state := testState(t, crossingProblem())
	state.GemService = gems.NewService(nil)
	state.Elapsed = 5 * time.Minute

	SubmitSplit(state, 2, 7)
	SubmitAnswer(state, 17)

	summary := BuildSummary(state)
	if summary.Rounds != 1 || summary.Correct != 1 {
		t.Errorf("summary rounds = %d/%d, want 1/1", summary.Correct, summary.Rounds)
	}
	if summary.Accuracy != 1.0 {
		t.Errorf("Accuracy = %v, want 1.0", summary.Accuracy)
	}
	if len(summary.StrategyResults) != 1 || summary.StrategyResults[0].Strategy != strategy.StrategyCrossing {
		t.Errorf("StrategyResults = %+v", summary.StrategyResults)
	}
	if summary.StartLevel != 2 || summary.EndLevel != 2 {
		t.Errorf("levels = %d -> %d, want 2 -> 2", summary.StartLevel, summary.EndLevel)
	}
}

func TestFinished(t *testing.T) {
	state := NewSessionState(Config{Rounds: 2}, "id", 1, fixedGenerator(basicProblem()))
	Begin(state)

	if Finished(state) {
		t.Error("fresh session should not be finished")
	}
	for i := 0; i < 2; i++ {
		if err := NextProblem(state); err != nil {
			t.Fatalf("NextProblem %d: %v", i, err)
		}
		SubmitAnswer(state, 7)
	}
	if !Finished(state) {
		t.Error("expected finished after serving all rounds")
	}
}
