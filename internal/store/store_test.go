package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func appendAttempt(t *testing.T, repo EventRepo, level int, correct bool) {
	t.Helper()
	err := repo.AppendAttemptEvent(context.Background(), AttemptEventData{
		SessionID:  "sess-1",
		ProblemKey: "addition:8:9",
		Operation:  "addition",
		Strategy:   "crossing",
		Level:      level,
		Correct:    correct,
		TimeMs:     4200,
	})
	if err != nil {
		t.Fatalf("append attempt: %v", err)
	}
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"snapshots", "attempt_events", "gem_events"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestSequenceSharedAcrossEventTypes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	appendAttempt(t, repo, 1, true)
	err := repo.AppendGemEvent(ctx, GemEventData{
		GemType:   "streak",
		Rarity:    "rare",
		SessionID: "sess-1",
		Reason:    "5 in a row!",
	})
	if err != nil {
		t.Fatalf("append gem: %v", err)
	}
	appendAttempt(t, repo, 1, false)

	attempts, err := repo.RecentAttempts(ctx, 0)
	if err != nil {
		t.Fatalf("recent attempts: %v", err)
	}
	gems, err := repo.QueryGemEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query gems: %v", err)
	}

	// Attempt, gem, attempt were appended in that order; the gem's
	// sequence falls strictly between the two attempts'.
	if len(attempts) != 2 || len(gems) != 1 {
		t.Fatalf("got %d attempts, %d gems", len(attempts), len(gems))
	}
	first, second := attempts[1].Sequence, attempts[0].Sequence
	if !(first < gems[0].Sequence && gems[0].Sequence < second) {
		t.Errorf("gem sequence %d not between attempts %d and %d",
			gems[0].Sequence, first, second)
	}
}

func TestRecentAttemptsOrderAndLimit(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 6; i++ {
		appendAttempt(t, repo, 1, i%2 == 0)
	}

	records, err := repo.RecentAttempts(ctx, 4)
	if err != nil {
		t.Fatalf("recent attempts: %v", err)
	}
	if len(records) != 4 {
		t.Fatalf("got %d records, want 4", len(records))
	}
	for i := 1; i < len(records); i++ {
		if records[i].Sequence >= records[i-1].Sequence {
			t.Errorf("records not in descending sequence order: %d then %d",
				records[i-1].Sequence, records[i].Sequence)
		}
	}
}

func TestAttemptEventRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	slip := "off_by_one"
	err := repo.AppendAttemptEvent(ctx, AttemptEventData{
		SessionID:    "sess-9",
		ProblemKey:   "subtraction:12:5",
		Operation:    "subtraction",
		Strategy:     "crossing",
		Level:        2,
		Correct:      false,
		WrongGuesses: 3,
		TimeMs:       9100,
		Slip:         &slip,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	records, err := repo.RecentAttempts(ctx, 1)
	if err != nil {
		t.Fatalf("recent attempts: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	r := records[0]
	if r.ProblemKey != "subtraction:12:5" || r.Strategy != "crossing" {
		t.Errorf("record = %+v", r)
	}
	if r.WrongGuesses != 3 {
		t.Errorf("wrong guesses = %d, want 3", r.WrongGuesses)
	}
	if r.Slip == nil || *r.Slip != "off_by_one" {
		t.Errorf("slip = %v, want off_by_one", r.Slip)
	}
}

func TestLevelAccuracy(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	appendAttempt(t, repo, 2, true)
	appendAttempt(t, repo, 2, true)
	appendAttempt(t, repo, 2, true)
	appendAttempt(t, repo, 2, false)
	appendAttempt(t, repo, 3, false)

	acc, err := repo.LevelAccuracy(ctx, 2)
	if err != nil {
		t.Fatalf("level accuracy: %v", err)
	}
	if acc != 0.75 {
		t.Errorf("accuracy(2) = %v, want 0.75", acc)
	}

	acc, err = repo.LevelAccuracy(ctx, 1)
	if err != nil {
		t.Fatalf("level accuracy (empty): %v", err)
	}
	if acc != 0 {
		t.Errorf("accuracy(1) = %v, want 0 for no attempts", acc)
	}
}

func TestLevelStats(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	appendAttempt(t, repo, 1, true)
	appendAttempt(t, repo, 1, false)
	appendAttempt(t, repo, 2, true)

	stats, err := repo.LevelStats(ctx)
	if err != nil {
		t.Fatalf("level stats: %v", err)
	}
	if got := stats[1]; got.Attempts != 2 || got.Correct != 1 {
		t.Errorf("stats[1] = %+v, want {Attempts:2 Correct:1}", got)
	}
	if got := stats[2]; got.Attempts != 1 || got.Correct != 1 {
		t.Errorf("stats[2] = %+v, want {Attempts:1 Correct:1}", got)
	}
	if _, ok := stats[3]; ok {
		t.Errorf("stats[3] present, want absent for untouched level")
	}
}

func TestLatestAttemptTime(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	ts, err := repo.LatestAttemptTime(ctx)
	if err != nil {
		t.Fatalf("latest attempt time (empty): %v", err)
	}
	if !ts.IsZero() {
		t.Errorf("expected zero time with no attempts, got %v", ts)
	}

	appendAttempt(t, repo, 1, true)

	ts, err = repo.LatestAttemptTime(ctx)
	if err != nil {
		t.Fatalf("latest attempt time: %v", err)
	}
	if ts.IsZero() {
		t.Error("expected non-zero time after an attempt")
	}
}

func TestGemCounts(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	level := 3
	events := []GemEventData{
		{GemType: "streak", Rarity: "rare", SessionID: "s1", Reason: "5 in a row!"},
		{GemType: "streak", Rarity: "epic", SessionID: "s1", Reason: "10 in a row!"},
		{GemType: "climb", Rarity: "epic", Level: &level, SessionID: "s2", Reason: "Climbed to Bridge Builder!"},
	}
	for _, e := range events {
		if err := repo.AppendGemEvent(ctx, e); err != nil {
			t.Fatalf("append gem: %v", err)
		}
	}

	byType, total, err := repo.GemCounts(ctx)
	if err != nil {
		t.Fatalf("gem counts: %v", err)
	}
	if total != 3 {
		t.Errorf("total = %d, want 3", total)
	}
	if byType["streak"] != 2 || byType["climb"] != 1 {
		t.Errorf("byType = %v", byType)
	}

	records, err := repo.QueryGemEvents(ctx, QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("query gems: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	// Most recent first: the climb gem.
	if records[0].GemType != "climb" {
		t.Errorf("gem type = %q, want climb", records[0].GemType)
	}
	if records[0].Level == nil || *records[0].Level != 3 {
		t.Errorf("level = %v, want 3", records[0].Level)
	}
}

func TestQuerySessionSummaries(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID:  "sess-a",
		Action:     "start",
		LevelStart: 2,
	})
	if err != nil {
		t.Fatalf("append start: %v", err)
	}
	err = repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID:     "sess-a",
		Action:        "end",
		RoundsServed:  10,
		CorrectRounds: 8,
		DurationSecs:  300,
		LevelStart:    2,
		LevelEnd:      3,
		SlipCounts:    map[string]int{"off_by_one": 1},
	})
	if err != nil {
		t.Fatalf("append end: %v", err)
	}
	for i := 0; i < 2; i++ {
		err := repo.AppendGemEvent(ctx, GemEventData{
			GemType:   "streak",
			Rarity:    "rare",
			SessionID: "sess-a",
			Reason:    "5 in a row!",
		})
		if err != nil {
			t.Fatalf("append gem %d: %v", i, err)
		}
	}
	// An unfinished session should not appear in summaries.
	err = repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID:  "sess-b",
		Action:     "start",
		LevelStart: 3,
	})
	if err != nil {
		t.Fatalf("append start b: %v", err)
	}

	summaries, err := repo.QuerySessionSummaries(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query summaries: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("got %d summaries, want 1", len(summaries))
	}
	sum := summaries[0]
	if sum.SessionID != "sess-a" {
		t.Errorf("session id = %q", sum.SessionID)
	}
	if sum.RoundsServed != 10 || sum.CorrectRounds != 8 {
		t.Errorf("rounds = %d/%d, want 8/10 correct", sum.CorrectRounds, sum.RoundsServed)
	}
	if sum.LevelStart != 2 || sum.LevelEnd != 3 {
		t.Errorf("levels = %d -> %d, want 2 -> 3", sum.LevelStart, sum.LevelEnd)
	}
	if sum.GemCount != 2 {
		t.Errorf("gem count = %d, want 2", sum.GemCount)
	}
}

func TestAppendLevelAndDefectEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLevelEvent(ctx, LevelEventData{
		SessionID: "sess-1",
		FromLevel: 2,
		ToLevel:   3,
		Reason:    "promotion",
		Accuracy:  0.875,
	})
	if err != nil {
		t.Fatalf("append level event: %v", err)
	}

	err = repo.AppendDefectEvent(ctx, DefectEventData{
		Source:  "problemgen",
		Message: "sampling and operand walk exhausted",
		Level:   4,
	})
	if err != nil {
		t.Fatalf("append defect event: %v", err)
	}

	count, err := s.Client().LevelEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count level events: %v", err)
	}
	if count != 1 {
		t.Errorf("level events = %d, want 1", count)
	}
	count, err = s.Client().DefectEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count defect events: %v", err)
	}
	if count != 1 {
		t.Errorf("defect events = %d, want 1", count)
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	// Save a snapshot.
	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Sequence:  42,
		Timestamp: now,
		Data: SnapshotData{
			Version:      1,
			Level:        2,
			BestStreak:   7,
			TotalRounds:  40,
			TotalCorrect: 31,
			GemTotals:    map[string]int{"streak": 2},
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	// Retrieve it.
	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	if snap.Data.Level != 2 {
		t.Errorf("data.level = %d, want 2", snap.Data.Level)
	}
	if snap.Data.GemTotals["streak"] != 2 {
		t.Errorf("gem totals = %v", snap.Data.GemTotals)
	}
}

func TestSnapshotLatestReturnsNewest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1, Level: i + 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 3 {
		t.Errorf("sequence = %d, want 3", snap.Sequence)
	}
	if snap.Data.Level != 3 {
		t.Errorf("data.level = %d, want 3", snap.Data.Level)
	}
}

func TestSnapshotCorruptDataTreatedAsMissing(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// Write malformed data directly, bypassing the repo.
	_, err := s.Client().Snapshot.Create().
		SetSequence(1).
		SetTimestamp(time.Now().UTC()).
		SetData(map[string]any{"version": "one", "level": 2}).
		Save(ctx)
	if err != nil {
		t.Fatalf("insert corrupt snapshot: %v", err)
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap != nil {
		t.Fatal("expected corrupt snapshot to be reported as missing")
	}

	// Missing required fields is likewise corrupt.
	_, err = s.Client().Snapshot.Create().
		SetSequence(2).
		SetTimestamp(time.Now().UTC().Add(time.Minute)).
		SetData(map[string]any{"best_streak": 3}).
		Save(ctx)
	if err != nil {
		t.Fatalf("insert incomplete snapshot: %v", err)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap != nil {
		t.Fatal("expected incomplete snapshot to be reported as missing")
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1, Level: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	// Prune to keep 5.
	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}
}

func TestSnapshotPruneWithFewerThanKeep(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 2; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1, Level: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	// Prune with keep=5 should be a no-op.
	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("remaining snapshots = %d, want 2", count)
	}
}
