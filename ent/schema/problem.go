package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Problem persists one arithmetic fact and its quiz history. The table is
// the durable form of the in-memory catalog: rows are stored in catalog
// order and reloaded verbatim at startup.
type Problem struct {
	ent.Schema
}

func (Problem) Fields() []ent.Field {
	return []ent.Field{
		field.Int("position").
			NonNegative().
			Comment("Zero-based catalog position; preserves selection order"),
		field.Uint8("operand_a").
			Comment("First operand, display order"),
		field.Uint8("operand_b").
			Comment("Second operand, display order"),
		field.String("operator").
			NotEmpty().
			Comment("Operator symbol: +, - or x"),
		field.Int("num_wrong").
			NonNegative().
			Comment("Cumulative wrong answers since the record was last worn down"),
		field.Int64("latest_time_ms").
			NonNegative().
			Comment("Milliseconds of the most recent correct solve"),
	}
}

func (Problem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("position"),
		index.Fields("operator"),
	}
}
