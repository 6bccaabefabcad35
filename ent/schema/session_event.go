package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records session lifecycle events (start/end).
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.String("action").
			NotEmpty().
			Comment("start or end"),
		field.Int("rounds_served").
			Default(0).
			Comment("Total rounds (on end only)"),
		field.Int("correct_rounds").
			Default(0).
			Comment("Rounds answered correctly (on end only)"),
		field.Int("duration_secs").
			Default(0).
			Comment("Actual duration in seconds (on end only)"),
		field.Int("level_start").
			Default(0).
			Comment("Difficulty level when the session began"),
		field.Int("level_end").
			Default(0).
			Comment("Difficulty level when the session ended (on end only)"),
		field.JSON("slip_counts", map[string]int{}).
			Optional().
			Comment("Diagnosed slip tallies for the session (on end only)"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("action"),
	}
}
