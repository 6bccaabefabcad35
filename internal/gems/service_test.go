package gems

import (
	"context"
	"testing"
	"time"

	"github.com/abhisek/bondten/internal/store"
)

// mockEventRepo implements store.EventRepo for gems tests.
type mockEventRepo struct {
	gemEvents []store.GemEventData
	counts    map[string]int
	total     int
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
	return m.counts, m.total, nil
}
func (m *mockEventRepo) QuerySessionSummaries(_ context.Context, _ store.QueryOpts) ([]store.SessionSummaryRecord, error) {
	return nil, nil
}

func newTestService() (*Service, *mockEventRepo) {
	repo := &mockEventRepo{
		counts: map[string]int{"climb": 3, "streak": 2},
		total:  5,
	}
	svc := NewService(repo)
	return svc, repo
}

func TestAwardStreak(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	award := svc.AwardStreak(ctx, 10, "sess-1")

	if award.Type != GemStreak {
		t.Errorf("Type = %q, want %q", award.Type, GemStreak)
	}
	if award.Rarity != RarityRare {
		t.Errorf("Rarity = %q, want %q", award.Rarity, RarityRare)
	}
	if award.Level != 0 {
		t.Errorf("Level = %d, want 0 for streak gem", award.Level)
	}
	if len(repo.gemEvents) != 1 {
		t.Fatalf("persisted %d events, want 1", len(repo.gemEvents))
	}
	if repo.gemEvents[0].GemType != "streak" {
		t.Errorf("persisted type = %q, want %q", repo.gemEvents[0].GemType, "streak")
	}
	if repo.gemEvents[0].Level != nil {
		t.Error("persisted streak gem should have nil level")
	}
	if len(svc.SessionGems) != 1 {
		t.Errorf("SessionGems = %d, want 1", len(svc.SessionGems))
	}
}

func TestAwardSession(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	award := svc.AwardSession(ctx, 0.85, "sess-2")

	if award.Type != GemSession {
		t.Errorf("Type = %q, want %q", award.Type, GemSession)
	}
	if award.Rarity != RarityEpic {
		t.Errorf("Rarity = %q, want %q (85%% accuracy)", award.Rarity, RarityEpic)
	}
	if len(repo.gemEvents) != 1 {
		t.Fatalf("persisted %d events, want 1", len(repo.gemEvents))
	}
	if repo.gemEvents[0].Rarity != string(award.Rarity) {
		t.Errorf("persisted rarity = %q, want %q", repo.gemEvents[0].Rarity, award.Rarity)
	}
}

func TestAwardClimb(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	award := svc.AwardClimb(ctx, 3, "sess-3")

	if award.Type != GemClimb {
		t.Errorf("Type = %q, want %q", award.Type, GemClimb)
	}
	if award.Rarity != RarityEpic {
		t.Errorf("Rarity = %q, want %q", award.Rarity, RarityEpic)
	}
	if award.Level != 3 {
		t.Errorf("Level = %d, want 3", award.Level)
	}
	if award.Reason == "" {
		t.Error("climb award missing reason")
	}
	if len(repo.gemEvents) != 1 {
		t.Fatalf("persisted %d events, want 1", len(repo.gemEvents))
	}
	if repo.gemEvents[0].Level == nil || *repo.gemEvents[0].Level != 3 {
		t.Error("persisted climb gem missing level")
	}
}

func TestResetSession(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	svc.AwardStreak(ctx, 5, "sess-1")
	svc.AwardStreak(ctx, 10, "sess-1")
	if len(svc.SessionGems) != 2 {
		t.Fatalf("SessionGems = %d, want 2", len(svc.SessionGems))
	}

	svc.ResetSession()
	if svc.SessionGems != nil {
		t.Errorf("SessionGems after reset = %v, want nil", svc.SessionGems)
	}
}

func TestCounts(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	counts, total := svc.Counts(ctx)
	if total != 5 {
		t.Errorf("total = %d, want 5", total)
	}
	if counts["climb"] != 3 {
		t.Errorf("counts[climb] = %d, want 3", counts["climb"])
	}
	if counts["streak"] != 2 {
		t.Errorf("counts[streak] = %d, want 2", counts["streak"])
	}
}

func TestPersist_NilEventRepo(t *testing.T) {
	svc := NewService(nil)
	ctx := context.Background()

	// Should not panic with nil eventRepo.
	award := svc.AwardStreak(ctx, 5, "sess-1")
	if award == nil {
		t.Error("expected non-nil award even with nil eventRepo")
	}
	if len(svc.SessionGems) != 1 {
		t.Errorf("SessionGems = %d, want 1", len(svc.SessionGems))
	}
}

func TestMultipleAwards_SessionAccumulation(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	svc.AwardClimb(ctx, 2, "sess-1")
	svc.AwardStreak(ctx, 5, "sess-1")
	svc.AwardSession(ctx, 0.95, "sess-1")

	if len(svc.SessionGems) != 3 {
		t.Errorf("SessionGems = %d, want 3", len(svc.SessionGems))
	}

	types := map[GemType]bool{}
	for _, g := range svc.SessionGems {
		types[g.Type] = true
	}
	for _, expected := range []GemType{GemClimb, GemStreak, GemSession} {
		if !types[expected] {
			t.Errorf("missing gem type %q in session gems", expected)
		}
	}
}
