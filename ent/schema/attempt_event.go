package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records the outcome of a single problem round.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.String("problem_key").
			NotEmpty().
			Comment("operation:operand1:operand2"),
		field.String("operation").
			NotEmpty().
			Comment("addition or subtraction"),
		field.String("strategy").
			NotEmpty().
			Comment("basic, make_ten, or crossing"),
		field.Int("level").
			Comment("Difficulty level the problem was drawn from"),
		field.Bool("correct").
			Comment("Whether the round ended in a correct answer"),
		field.Int("wrong_guesses").
			Default(0).
			Comment("Wrong tries before the round resolved"),
		field.Int("time_ms").
			Comment("Milliseconds from presentation to resolution"),
		field.String("slip").
			Optional().
			Nillable().
			Comment("Diagnosed slip for the first wrong guess, if any"),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("level"),
		index.Fields("correct"),
	}
}
