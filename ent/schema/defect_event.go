package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DefectEvent records an internal failure that was absorbed at runtime,
// such as a generator that exhausted its sampling budget. These never
// surface to the child; they exist so a maintainer can spot catalog bugs.
type DefectEvent struct {
	ent.Schema
}

func (DefectEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (DefectEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("source").
			NotEmpty().
			Comment("Component that reported the defect"),
		field.String("message").
			NotEmpty(),
		field.String("session_id").Optional(),
		field.Int("level").
			Optional().
			Comment("Level in play when the defect occurred"),
	}
}

func (DefectEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("source"),
	}
}
