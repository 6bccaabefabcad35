package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendLevelEvent(ctx context.Context, data LevelEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.LevelEvent.Create().
		SetSequence(seqNum).
		SetFromLevel(data.FromLevel).
		SetToLevel(data.ToLevel).
		SetReason(data.Reason).
		SetAccuracy(data.Accuracy)

	if data.SessionID != "" {
		builder = builder.SetSessionID(data.SessionID)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save level event: %w", err)
	}
	return nil
}
