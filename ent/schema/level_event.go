package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LevelEvent records a difficulty level change for audit and the level map.
type LevelEvent struct {
	ent.Schema
}

func (LevelEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (LevelEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Int("from_level"),
		field.Int("to_level"),
		field.String("reason").
			NotEmpty().
			Comment("promotion or demotion"),
		field.Float("accuracy").
			Comment("Windowed accuracy that triggered the change"),
		field.String("session_id").Optional(),
	}
}

func (LevelEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("to_level"),
		index.Fields("session_id"),
	}
}
