package gems

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/bondten/internal/levels"
	"github.com/abhisek/bondten/internal/store"
)

// Service manages gem computation and award tracking.
type Service struct {
	eventRepo store.EventRepo

	// SessionGems accumulates gems awarded during the current session.
	SessionGems []GemAward
}

// NewService creates a gem service backed by the event repo. A nil repo
// still awards gems, they just vanish with the process; tests use that.
func NewService(eventRepo store.EventRepo) *Service {
	return &Service{eventRepo: eventRepo}
}

// AwardStreak awards a streak gem for consecutive correct rounds.
func (s *Service) AwardStreak(ctx context.Context, streakLength int, sessionID string) *GemAward {
	award := &GemAward{
		Type:      GemStreak,
		Rarity:    StreakRarity(streakLength),
		SessionID: sessionID,
		Reason:    fmt.Sprintf("%d correct in a row!", streakLength),
		AwardedAt: time.Now(),
	}
	s.persist(ctx, award)
	s.SessionGems = append(s.SessionGems, *award)
	return award
}

// AwardSession awards a session-completion gem.
func (s *Service) AwardSession(ctx context.Context, accuracy float64, sessionID string) *GemAward {
	award := &GemAward{
		Type:      GemSession,
		Rarity:    SessionRarity(accuracy),
		SessionID: sessionID,
		Reason:    fmt.Sprintf("Session complete (%.0f%% accuracy)", accuracy*100),
		AwardedAt: time.Now(),
	}
	s.persist(ctx, award)
	s.SessionGems = append(s.SessionGems, *award)
	return award
}

// AwardClimb awards a climb gem for promotion onto a level.
func (s *Service) AwardClimb(ctx context.Context, level int, sessionID string) *GemAward {
	reason := fmt.Sprintf("Climbed to level %d!", level)
	if lvl, ok := levels.Get(level); ok {
		reason = fmt.Sprintf("Climbed to %s!", lvl.Name)
	}
	award := &GemAward{
		Type:      GemClimb,
		Rarity:    ClimbRarity(level),
		Level:     level,
		SessionID: sessionID,
		Reason:    reason,
		AwardedAt: time.Now(),
	}
	s.persist(ctx, award)
	s.SessionGems = append(s.SessionGems, *award)
	return award
}

// ResetSession clears the session gem accumulator. Called at session start.
func (s *Service) ResetSession() {
	s.SessionGems = nil
}

// Counts returns the all-time gem tally by type and the grand total.
func (s *Service) Counts(ctx context.Context) (map[string]int, int) {
	if s.eventRepo == nil {
		return map[string]int{}, 0
	}
	counts, total, err := s.eventRepo.GemCounts(ctx)
	if err != nil {
		return map[string]int{}, 0
	}
	return counts, total
}

func (s *Service) persist(ctx context.Context, award *GemAward) {
	if s.eventRepo == nil {
		return
	}
	data := store.GemEventData{
		GemType:   string(award.Type),
		Rarity:    string(award.Rarity),
		SessionID: award.SessionID,
		Reason:    award.Reason,
	}
	if award.Level != 0 {
		data.Level = &award.Level
	}
	_ = s.eventRepo.AppendGemEvent(ctx, data)
}
