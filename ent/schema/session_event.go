package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records the start or end of a drill session.
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
			Comment("UUID shared by this session's events"),
		field.String("action").
			NotEmpty().
			Comment("start or end"),
		field.Int("questions_served").
			Default(0).
			Comment("Questions presented (end events only)"),
		field.Int("correct_answers").
			Default(0).
			Comment("Correct attempts (end events only)"),
		field.Int("duration_secs").
			Default(0).
			Comment("Session length in seconds (end events only)"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
	}
}
