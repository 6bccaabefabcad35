package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendDefectEvent(ctx context.Context, data DefectEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.DefectEvent.Create().
		SetSequence(seqNum).
		SetSource(data.Source).
		SetMessage(data.Message)

	if data.SessionID != "" {
		builder = builder.SetSessionID(data.SessionID)
	}
	if data.Level != 0 {
		builder = builder.SetLevel(data.Level)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save defect event: %w", err)
	}
	return nil
}
