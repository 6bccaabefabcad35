package session

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/bondten/internal/adaptive"
	"github.com/abhisek/bondten/internal/decomp"
	"github.com/abhisek/bondten/internal/diagnosis"
	"github.com/abhisek/bondten/internal/gems"
	"github.com/abhisek/bondten/internal/levels"
	"github.com/abhisek/bondten/internal/problemgen"
	"github.com/abhisek/bondten/internal/store"
	"github.com/abhisek/bondten/internal/strategy"
)

// StepResult tells the caller what a submission did and what to show next.
type StepResult string

const (
	// StepSplitAccepted means the decomposition was right; the round
	// stays open and moves to the answer stage.
	StepSplitAccepted StepResult = "split_accepted"

	// StepRetry means the submission was wrong and tries remain.
	StepRetry StepResult = "retry"

	// StepCorrect means the round resolved correct.
	StepCorrect StepResult = "correct"

	// StepExplain means the round resolved failed and the worked
	// solution should be shown.
	StepExplain StepResult = "explain"

	// StepIgnored means the round had already resolved.
	StepIgnored StepResult = "ignored"
)

// Begin marks the session active. The caller appends the start event.
func Begin(state *SessionState) {
	if state.GemService != nil {
		state.GemService.ResetSession()
	}
	state.StartTime = time.Now()
	state.Phase = PhaseActive
}

// Finished reports whether the session has served all its rounds.
func Finished(state *SessionState) bool {
	return state.RoundsServed >= state.Config.Rounds
}

// NextProblem draws the next problem and arms a fresh round. A
// generation failure at the working level is absorbed: the defect is
// queued for logging and generation retries once at level 1, which
// always has satisfiable profiles. Only a level 1 failure is returned.
func NextProblem(state *SessionState) error {
	p, err := state.Generator.Generate(problemgen.GenerateInput{
		Level:  state.Level,
		Recent: state.Recent,
	})
	if err != nil {
		queueDefect(state, "problemgen", err)
		if state.Level == levels.MinLevel {
			return fmt.Errorf("generate problem: %w", err)
		}
		p, err = state.Generator.Generate(problemgen.GenerateInput{
			Level:  levels.MinLevel,
			Recent: state.Recent,
		})
		if err != nil {
			queueDefect(state, "problemgen", err)
			return fmt.Errorf("generate problem: %w", err)
		}
	}

	state.CurrentProblem = p
	state.Round = adaptive.NewRound(state.Config.MaxAttemptsPerRound)
	state.Recent = append(state.Recent, p.Key())
	state.ProblemStartTime = time.Now()
	state.Phase = PhaseActive

	if p.NeedsDecomposition() {
		state.Stage = diagnosis.StageSplit
	} else {
		state.Stage = diagnosis.StageAnswer
	}

	state.LastAnswerCorrect = false
	state.LastMessage = ""
	state.LastSlip = ""
	state.LastHint = ""
	state.FirstSlip = nil
	state.LastAttempt = nil
	state.PendingGemAward = nil
	state.PendingLevelChange = nil
	return nil
}

// SubmitSplit processes the learner's decomposition for the current
// problem. A wrong split is a value, not an error: it costs a try and
// comes back with the checker's message and a hint.
func SubmitSplit(state *SessionState, part1, part2 int) StepResult {
	p := state.CurrentProblem
	if p == nil || state.Round == nil || state.Round.Resolved() {
		return StepIgnored
	}

	res, err := decomp.Validate(p.Operation, p.Operand1, p.Operand2, decomp.Answer{
		Part1: part1,
		Part2: part2,
	})
	if err != nil {
		// Generated problems always carry checkable operands, so a
		// checker refusal is our bug. Never charge the learner for it.
		queueDefect(state, "decomp", err)
		state.Stage = diagnosis.StageAnswer
		return StepSplitAccepted
	}

	if res.Valid {
		state.LastAnswerCorrect = true
		state.LastMessage = res.Message
		state.Stage = diagnosis.StageAnswer
		return StepSplitAccepted
	}

	state.LastAnswerCorrect = false
	state.LastMessage = res.Message
	diagnose(state, diagnosis.StageSplit, 0, part1, part2)

	outcome := state.Round.Submit(false)
	if outcome == adaptive.OutcomeExplain {
		resolveRound(state, false)
		return StepExplain
	}
	return StepRetry
}

// SubmitAnswer processes the learner's final answer for the current
// problem.
func SubmitAnswer(state *SessionState, answer int) StepResult {
	p := state.CurrentProblem
	if p == nil || state.Round == nil {
		return StepIgnored
	}

	correct := answer == p.Answer
	outcome := state.Round.Submit(correct)

	switch outcome {
	case adaptive.OutcomeIgnored:
		return StepIgnored
	case adaptive.OutcomeCorrect:
		state.LastAnswerCorrect = true
		state.LastMessage = ""
		resolveRound(state, true)
		return StepCorrect
	}

	state.LastAnswerCorrect = false
	diagnose(state, diagnosis.StageAnswer, answer, 0, 0)

	if outcome == adaptive.OutcomeExplain {
		resolveRound(state, false)
		return StepExplain
	}
	return StepRetry
}

// EvaluateLevel runs the difficulty engine between rounds, after the
// resolved attempt has been persisted. It moves the working level on a
// promote or demote and returns the change, or nil when the level
// holds. A promotion also awards a climb gem.
func EvaluateLevel(state *SessionState) *LevelChange {
	if state.Engine == nil {
		return nil
	}

	rec := state.Engine.RecommendLevel(state.Level, recentAttempts(state))
	if rec.Level == state.Level {
		return nil
	}

	change := &LevelChange{
		From:     state.Level,
		To:       rec.Level,
		Reason:   rec.Reason,
		Accuracy: rec.Accuracy,
	}
	state.Level = rec.Level
	state.LevelPath = append(state.LevelPath, *change)
	state.PendingLevelChange = change

	if rec.Reason == adaptive.ReasonPromoted && state.GemService != nil {
		state.PendingGemAward = state.GemService.AwardClimb(
			context.Background(), rec.Level, state.SessionID)
	}
	return change
}

// End stamps the elapsed time, awards the session gem, and moves the
// session to its summary. The caller appends the end event and snapshot.
func End(state *SessionState) {
	state.Elapsed = time.Since(state.StartTime)
	state.Phase = PhaseSummary

	if state.GemService != nil && state.RoundsServed > 0 {
		state.PendingGemAward = state.GemService.AwardSession(
			context.Background(), Accuracy(state), state.SessionID)
	}
}

// Accuracy returns the session's correct-round share so far.
func Accuracy(state *SessionState) float64 {
	if state.RoundsServed == 0 {
		return 0
	}
	return float64(state.CorrectRounds) / float64(state.RoundsServed)
}

// StartEventData builds the session start event for persistence.
func StartEventData(state *SessionState) store.SessionEventData {
	return store.SessionEventData{
		SessionID:  state.SessionID,
		Action:     "start",
		LevelStart: state.LevelStart,
	}
}

// EndEventData builds the session end event for persistence.
func EndEventData(state *SessionState) store.SessionEventData {
	data := store.SessionEventData{
		SessionID:     state.SessionID,
		Action:        "end",
		RoundsServed:  state.RoundsServed,
		CorrectRounds: state.CorrectRounds,
		DurationSecs:  int(state.Elapsed.Seconds()),
		LevelStart:    state.LevelStart,
		LevelEnd:      state.Level,
	}
	if state.DiagnosisService != nil {
		counts := state.DiagnosisService.Counts()
		if len(counts) > 0 {
			m := make(map[string]int, len(counts))
			for slip, n := range counts {
				m[string(slip)] = n
			}
			data.SlipCounts = m
		}
	}
	return data
}

// AttemptEventData converts a resolved round to its store form.
func AttemptEventData(state *SessionState, attempt *adaptive.Attempt) store.AttemptEventData {
	data := store.AttemptEventData{
		SessionID:    state.SessionID,
		ProblemKey:   attempt.ProblemKey,
		Operation:    string(attempt.Operation),
		Strategy:     string(attempt.Strategy),
		Level:        attempt.Level,
		Correct:      attempt.Correct,
		WrongGuesses: attempt.WrongGuesses,
		TimeMs:       attempt.DurationMs,
	}
	if state.FirstSlip != nil {
		s := string(*state.FirstSlip)
		data.Slip = &s
	}
	return data
}

// LevelEventData converts a level change to its store form.
func LevelEventData(state *SessionState, change *LevelChange) store.LevelEventData {
	return store.LevelEventData{
		SessionID: state.SessionID,
		FromLevel: change.From,
		ToLevel:   change.To,
		Reason:    string(change.Reason),
		Accuracy:  change.Accuracy,
	}
}

// MergeSnapshot folds this session's results into the previous snapshot
// data, producing the data to save at session end.
func MergeSnapshot(prev *store.SnapshotData, state *SessionState, gemTotals map[string]int) store.SnapshotData {
	data := store.SnapshotData{
		Version:      1,
		Level:        state.Level,
		BestStreak:   state.BestStreak,
		TotalRounds:  state.RoundsServed,
		TotalCorrect: state.CorrectRounds,
		GemTotals:    gemTotals,
	}
	if prev != nil {
		if prev.BestStreak > data.BestStreak {
			data.BestStreak = prev.BestStreak
		}
		data.TotalRounds += prev.TotalRounds
		data.TotalCorrect += prev.TotalCorrect
	}
	return data
}

// resolveRound applies a terminal outcome to the running totals. The
// round machine guarantees this runs once per problem.
func resolveRound(state *SessionState, correct bool) {
	p := state.CurrentProblem
	durationMs := int(time.Since(state.ProblemStartTime).Milliseconds())

	state.RoundsServed++
	tallyStrategy(state, p.Strategy, correct)

	state.PendingGemAward = nil
	if correct {
		state.CorrectRounds++
		state.ConsecutiveCorrect++
		if state.ConsecutiveCorrect > state.BestStreak {
			state.BestStreak = state.ConsecutiveCorrect
		}
		if state.GemService != nil && state.ConsecutiveCorrect >= state.NextStreakThreshold {
			state.PendingGemAward = state.GemService.AwardStreak(
				context.Background(), state.ConsecutiveCorrect, state.SessionID)
			state.NextStreakThreshold = gems.NextStreakThreshold(state.ConsecutiveCorrect)
		}
	} else {
		state.ConsecutiveCorrect = 0
		state.NextStreakThreshold = gems.BaseStreakThreshold
	}

	attempt := adaptive.Attempt{
		ProblemKey:   p.Key(),
		Operation:    p.Operation,
		Strategy:     p.Strategy,
		Level:        p.Level,
		Correct:      correct,
		WrongGuesses: state.Round.WrongGuesses(),
		DurationMs:   durationMs,
		At:           time.Now(),
	}
	state.Attempts = append(state.Attempts, attempt)
	state.LastAttempt = &attempt
	state.Phase = PhaseFeedback
}

// diagnose classifies a wrong submission and stashes the hint. The
// first wrong guess of a round also pins the slip recorded on the
// attempt event.
func diagnose(state *SessionState, stage diagnosis.Stage, answer, part1, part2 int) {
	if state.DiagnosisService == nil {
		return
	}

	responseTimeMs := int(time.Since(state.ProblemStartTime).Milliseconds())
	var levelAcc float64
	if state.EventRepo != nil {
		levelAcc, _ = state.EventRepo.LevelAccuracy(
			context.Background(), state.CurrentProblem.Level)
	}

	result := state.DiagnosisService.Diagnose(&diagnosis.ClassifyInput{
		Problem:        state.CurrentProblem,
		Stage:          stage,
		Answer:         answer,
		Part1:          part1,
		Part2:          part2,
		ResponseTimeMs: responseTimeMs,
		LevelAccuracy:  levelAcc,
	})
	state.LastSlip = result.Slip
	state.LastHint = result.Slip.Hint()
	if state.FirstSlip == nil {
		s := result.Slip
		state.FirstSlip = &s
	}
}

// recentAttempts assembles the engine's history window, preferring the
// durable log and falling back to what this session saw.
func recentAttempts(state *SessionState) []adaptive.Attempt {
	if state.EventRepo != nil {
		records, err := state.EventRepo.RecentAttempts(
			context.Background(), adaptive.DefaultWindow)
		if err == nil {
			return attemptsFromRecords(records)
		}
	}

	out := make([]adaptive.Attempt, 0, len(state.Attempts))
	for i := len(state.Attempts) - 1; i >= 0; i-- {
		out = append(out, state.Attempts[i])
	}
	return out
}

// attemptsFromRecords maps store records to engine attempts.
func attemptsFromRecords(records []store.AttemptEventRecord) []adaptive.Attempt {
	out := make([]adaptive.Attempt, len(records))
	for i, r := range records {
		out[i] = adaptive.Attempt{
			ProblemKey:   r.ProblemKey,
			Operation:    strategy.Operation(r.Operation),
			Strategy:     strategy.Strategy(r.Strategy),
			Level:        r.Level,
			Correct:      r.Correct,
			WrongGuesses: r.WrongGuesses,
			DurationMs:   r.TimeMs,
			At:           r.Timestamp,
		}
	}
	return out
}

func tallyStrategy(state *SessionState, strat strategy.Strategy, correct bool) {
	sr := state.PerStrategy[strat]
	if sr == nil {
		sr = &StrategyResult{Strategy: strat}
		state.PerStrategy[strat] = sr
	}
	sr.Attempted++
	if correct {
		sr.Correct++
	}
}

func queueDefect(state *SessionState, source string, err error) {
	state.PendingDefects = append(state.PendingDefects, store.DefectEventData{
		Source:    source,
		Message:   err.Error(),
		SessionID: state.SessionID,
		Level:     state.Level,
	})
}
