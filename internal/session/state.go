package session

import (
	"time"

	"github.com/abhisek/bondten/internal/adaptive"
	"github.com/abhisek/bondten/internal/diagnosis"
	"github.com/abhisek/bondten/internal/gems"
	"github.com/abhisek/bondten/internal/levels"
	"github.com/abhisek/bondten/internal/problemgen"
	"github.com/abhisek/bondten/internal/store"
	"github.com/abhisek/bondten/internal/strategy"
)

// Generator is the problem source for a session. *problemgen.Sampler
// satisfies it; tests substitute a scripted source.
type Generator interface {
	Generate(input problemgen.GenerateInput) (*problemgen.Problem, error)
}

// Phase represents the current phase of the session.
type Phase int

const (
	PhaseLoading  Phase = iota // Restoring learner state before the first round
	PhaseActive                // A problem is on screen awaiting input
	PhaseFeedback              // Showing the resolution of a round
	PhaseEnding                // Quit confirmed or all rounds served
	PhaseSummary               // Showing the summary screen
)

// LevelChange records one promotion or demotion during a session.
type LevelChange struct {
	From     int
	To       int
	Reason   adaptive.Reason
	Accuracy float64
}

// StrategyResult tracks per-strategy performance within a single session.
type StrategyResult struct {
	Strategy  strategy.Strategy
	Attempted int
	Correct   int
}

// SessionState tracks the runtime state of an active practice session.
type SessionState struct {
	// Config is the normalized session tuning.
	Config Config

	// SessionID is the UUID grouping this session's events.
	SessionID string

	// Level is the working difficulty level; it can move between rounds.
	Level int

	// LevelStart is the level the session began at.
	LevelStart int

	// Phase is the current session phase.
	Phase Phase

	// CurrentProblem is the active problem (nil between rounds).
	CurrentProblem *problemgen.Problem

	// Round is the attempt machine for the current problem.
	Round *adaptive.Round

	// Stage says whether the learner is splitting or answering.
	Stage diagnosis.Stage

	// RoundsServed counts resolved rounds.
	RoundsServed int

	// CorrectRounds counts rounds resolved correct.
	CorrectRounds int

	// ConsecutiveCorrect is the live streak.
	ConsecutiveCorrect int

	// BestStreak is the longest streak reached this session.
	BestStreak int

	// NextStreakThreshold is the streak length that awards the next gem.
	NextStreakThreshold int

	// Recent holds the keys of problems already served, for dedup.
	Recent []string

	// PerStrategy tallies outcomes by the strategy each problem exercised.
	PerStrategy map[strategy.Strategy]*StrategyResult

	// Attempts holds this session's resolved rounds in order.
	Attempts []adaptive.Attempt

	// LevelPath records the level changes that happened this session.
	LevelPath []LevelChange

	// StartTime is when the session began; Elapsed is stamped at the end.
	StartTime time.Time
	Elapsed   time.Duration

	// ProblemStartTime is when the current problem was presented.
	ProblemStartTime time.Time

	// LastAnswerCorrect records whether the most recent submission was right.
	LastAnswerCorrect bool

	// LastMessage carries the checker's message for a wrong split.
	LastMessage string

	// LastSlip and LastHint describe the most recent wrong submission.
	LastSlip diagnosis.Slip
	LastHint string

	// FirstSlip is the diagnosed slip of the round's first wrong guess,
	// the one recorded on the attempt event.
	FirstSlip *diagnosis.Slip

	// LastAttempt is the just-resolved round, set exactly once per round
	// for the caller to persist and then clear.
	LastAttempt *adaptive.Attempt

	// PendingDefects holds absorbed internal failures for the caller to
	// persist and then clear.
	PendingDefects []store.DefectEventData

	// PendingGemAward is the award to celebrate, if any.
	PendingGemAward *gems.GemAward

	// PendingLevelChange is the level change to banner, if any.
	PendingLevelChange *LevelChange

	// ShowingQuitConfirm is true while the quit dialog is up.
	ShowingQuitConfirm bool

	// Generator produces problems for each round.
	Generator Generator

	// Engine recommends level changes between rounds (nil disables them).
	Engine *adaptive.Engine

	// DiagnosisService classifies wrong submissions (nil disables hints).
	DiagnosisService *diagnosis.Service

	// GemService awards and persists gems (nil disables awards).
	GemService *gems.Service

	// EventRepo is used for history queries: level accuracy for the
	// careless rule and recent attempts for the engine window.
	EventRepo store.EventRepo
}

// NewSessionState creates a session state at startLevel with initialized
// maps. Services are attached by the caller before Begin.
func NewSessionState(cfg Config, sessionID string, startLevel int, gen Generator) *SessionState {
	level := levels.Clamp(startLevel)
	return &SessionState{
		Config:              cfg.normalize(),
		SessionID:           sessionID,
		Level:               level,
		LevelStart:          level,
		Phase:               PhaseLoading,
		NextStreakThreshold: gems.BaseStreakThreshold,
		PerStrategy:         make(map[strategy.Strategy]*StrategyResult),
		StartTime:           time.Now(),
		Generator:           gen,
	}
}
