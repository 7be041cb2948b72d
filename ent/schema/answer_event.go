package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single answer attempt within a drill session.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.String("problem_text").
			NotEmpty().
			Comment("The fact as displayed, e.g. \"4 + 5 = \""),
		field.String("operator").
			NotEmpty().
			Comment("Operator symbol of the fact"),
		field.Int("correct_answer").
			Comment("The precomputed correct answer"),
		field.Int("guess").
			Comment("What the learner entered"),
		field.Bool("correct").
			Comment("Whether the guess matched"),
		field.Int64("time_ms").
			NonNegative().
			Comment("Milliseconds since the question was first shown"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("operator"),
		index.Fields("correct"),
	}
}
