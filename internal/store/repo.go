package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// SnapshotData captures the learner state at a point in time.
type SnapshotData struct {
	Version      int            `json:"version"`
	Level        int            `json:"level"`
	BestStreak   int            `json:"best_streak"`
	TotalRounds  int            `json:"total_rounds"`
	TotalCorrect int            `json:"total_correct"`
	GemTotals    map[string]int `json:"gem_totals,omitempty"`
}

// Snapshot represents a point-in-time capture of learner state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages learner state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent valid snapshot, or nil if none exist.
	// A stored snapshot that fails schema validation is treated as missing
	// rather than as an error, so callers rebuild state from the event log.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// AttemptEventData captures the outcome of one problem round.
type AttemptEventData struct {
	SessionID    string
	ProblemKey   string
	Operation    string
	Strategy     string
	Level        int
	Correct      bool
	WrongGuesses int
	TimeMs       int
	Slip         *string
}

// AttemptEventRecord is a stored attempt event with its log position.
type AttemptEventRecord struct {
	SessionID    string
	ProblemKey   string
	Operation    string
	Strategy     string
	Level        int
	Correct      bool
	WrongGuesses int
	TimeMs       int
	Slip         *string
	Sequence     int64
	Timestamp    time.Time
}

// SessionEventData captures a session lifecycle event.
// Action is "start" or "end"; the counters are meaningful on end only.
type SessionEventData struct {
	SessionID     string
	Action        string
	RoundsServed  int
	CorrectRounds int
	DurationSecs  int
	LevelStart    int
	LevelEnd      int
	SlipCounts    map[string]int
}

// LevelEventData captures a difficulty level change.
type LevelEventData struct {
	SessionID string
	FromLevel int
	ToLevel   int
	Reason    string
	Accuracy  float64
}

// GemEventData captures a gem award.
type GemEventData struct {
	GemType   string
	Rarity    string
	Level     *int
	SessionID string
	Reason    string
}

// GemEventRecord is a stored gem event with its log position.
type GemEventRecord struct {
	GemType   string
	Rarity    string
	Level     *int
	SessionID string
	Reason    string
	Sequence  int64
	Timestamp time.Time
}

// DefectEventData captures an internal failure that was absorbed at runtime.
type DefectEventData struct {
	Source    string
	Message   string
	SessionID string
	Level     int
}

// LevelStat aggregates all-time attempt outcomes at one level.
type LevelStat struct {
	Attempts int
	Correct  int
}

// SessionSummaryRecord aggregates one completed session for history views.
type SessionSummaryRecord struct {
	SessionID     string
	Timestamp     time.Time
	RoundsServed  int
	CorrectRounds int
	DurationSecs  int
	LevelStart    int
	LevelEnd      int
	GemCount      int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendAttemptEvent records the outcome of a problem round.
	AppendAttemptEvent(ctx context.Context, data AttemptEventData) error

	// AppendSessionEvent records a session start or end.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendLevelEvent records a difficulty level change.
	AppendLevelEvent(ctx context.Context, data LevelEventData) error

	// AppendDefectEvent records an absorbed internal failure.
	AppendDefectEvent(ctx context.Context, data DefectEventData) error

	// AppendGemEvent records a gem award.
	AppendGemEvent(ctx context.Context, data GemEventData) error

	// RecentAttempts returns up to limit attempts, most recent first.
	RecentAttempts(ctx context.Context, limit int) ([]AttemptEventRecord, error)

	// LevelAccuracy returns the all-time share of correct attempts at level,
	// or 0 when no attempts exist there.
	LevelAccuracy(ctx context.Context, level int) (float64, error)

	// LevelStats returns attempt totals grouped by level. Levels with no
	// attempts are absent from the map.
	LevelStats(ctx context.Context) (map[int]LevelStat, error)

	// LatestAttemptTime returns the timestamp of the most recent attempt,
	// or the zero time when none exist.
	LatestAttemptTime(ctx context.Context) (time.Time, error)

	// QueryGemEvents returns gem events, most recent first.
	QueryGemEvents(ctx context.Context, opts QueryOpts) ([]GemEventRecord, error)

	// GemCounts returns award counts by gem type plus the overall total.
	GemCounts(ctx context.Context) (map[string]int, int, error)

	// QuerySessionSummaries returns completed sessions, most recent first.
	QuerySessionSummaries(ctx context.Context, opts QueryOpts) ([]SessionSummaryRecord, error)
}
