package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/bondten/ent"
	"github.com/abhisek/bondten/ent/attemptevent"
)

func (r *eventRepo) AppendAttemptEvent(ctx context.Context, data AttemptEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.AttemptEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetProblemKey(data.ProblemKey).
		SetOperation(data.Operation).
		SetStrategy(data.Strategy).
		SetLevel(data.Level).
		SetCorrect(data.Correct).
		SetWrongGuesses(data.WrongGuesses).
		SetTimeMs(data.TimeMs)

	if data.Slip != nil {
		builder = builder.SetSlip(*data.Slip)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save attempt event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentAttempts(ctx context.Context, limit int) ([]AttemptEventRecord, error) {
	query := r.client.AttemptEvent.Query().
		Order(ent.Desc(attemptevent.FieldSequence))

	if limit > 0 {
		query = query.Limit(limit)
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent attempts: %w", err)
	}

	records := make([]AttemptEventRecord, len(events))
	for i, e := range events {
		records[i] = AttemptEventRecord{
			SessionID:    e.SessionID,
			ProblemKey:   e.ProblemKey,
			Operation:    e.Operation,
			Strategy:     e.Strategy,
			Level:        e.Level,
			Correct:      e.Correct,
			WrongGuesses: e.WrongGuesses,
			TimeMs:       e.TimeMs,
			Slip:         e.Slip,
			Sequence:     e.Sequence,
			Timestamp:    e.Timestamp,
		}
	}
	return records, nil
}

func (r *eventRepo) LevelAccuracy(ctx context.Context, level int) (float64, error) {
	events, err := r.client.AttemptEvent.Query().
		Where(attemptevent.Level(level)).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("query level accuracy: %w", err)
	}
	if len(events) == 0 {
		return 0, nil
	}

	correct := 0
	for _, e := range events {
		if e.Correct {
			correct++
		}
	}
	return float64(correct) / float64(len(events)), nil
}

func (r *eventRepo) LevelStats(ctx context.Context) (map[int]LevelStat, error) {
	events, err := r.client.AttemptEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query level stats: %w", err)
	}

	stats := make(map[int]LevelStat)
	for _, e := range events {
		s := stats[e.Level]
		s.Attempts++
		if e.Correct {
			s.Correct++
		}
		stats[e.Level] = s
	}
	return stats, nil
}

func (r *eventRepo) LatestAttemptTime(ctx context.Context) (time.Time, error) {
	ae, err := r.client.AttemptEvent.Query().
		Order(ent.Desc(attemptevent.FieldTimestamp)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return time.Time{}, nil
		}
		return time.Time{}, fmt.Errorf("query latest attempt time: %w", err)
	}
	return ae.Timestamp, nil
}
