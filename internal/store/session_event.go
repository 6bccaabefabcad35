package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetAction(data.Action).
		SetRoundsServed(data.RoundsServed).
		SetCorrectRounds(data.CorrectRounds).
		SetDurationSecs(data.DurationSecs).
		SetLevelStart(data.LevelStart).
		SetLevelEnd(data.LevelEnd)

	if len(data.SlipCounts) > 0 {
		builder = builder.SetSlipCounts(data.SlipCounts)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}
