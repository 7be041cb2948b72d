// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/mathdrill/ent/problem"
)

// Problem is the model entity for the Problem schema.
type Problem struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Zero-based catalog position; preserves selection order
	Position int `json:"position,omitempty"`
	// First operand, display order
	OperandA uint8 `json:"operand_a,omitempty"`
	// Second operand, display order
	OperandB uint8 `json:"operand_b,omitempty"`
	// Operator symbol: +, - or x
	Operator string `json:"operator,omitempty"`
	// Cumulative wrong answers since the record was last worn down
	NumWrong int `json:"num_wrong,omitempty"`
	// Milliseconds of the most recent correct solve
	LatestTimeMs int64 `json:"latest_time_ms,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Problem) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case problem.FieldID, problem.FieldPosition, problem.FieldOperandA, problem.FieldOperandB, problem.FieldNumWrong, problem.FieldLatestTimeMs:
			values[i] = new(sql.NullInt64)
		case problem.FieldOperator:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Problem fields.
func (_m *Problem) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case problem.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case problem.FieldPosition:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field position", values[i])
			} else if value.Valid {
				_m.Position = int(value.Int64)
			}
		case problem.FieldOperandA:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field operand_a", values[i])
			} else if value.Valid {
				_m.OperandA = uint8(value.Int64)
			}
		case problem.FieldOperandB:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field operand_b", values[i])
			} else if value.Valid {
				_m.OperandB = uint8(value.Int64)
			}
		case problem.FieldOperator:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field operator", values[i])
			} else if value.Valid {
				_m.Operator = value.String
			}
		case problem.FieldNumWrong:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field num_wrong", values[i])
			} else if value.Valid {
				_m.NumWrong = int(value.Int64)
			}
		case problem.FieldLatestTimeMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field latest_time_ms", values[i])
			} else if value.Valid {
				_m.LatestTimeMs = value.Int64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Problem.
// This includes values selected through modifiers, order, etc.
func (_m *Problem) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Problem.
// Note that you need to call Problem.Unwrap() before calling this method if this Problem
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Problem) Update() *ProblemUpdateOne {
	return NewProblemClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Problem entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Problem) Unwrap() *Problem {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Problem is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Problem) String() string {
	var builder strings.Builder
	builder.WriteString("Problem(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("position=")
	builder.WriteString(fmt.Sprintf("%v", _m.Position))
	builder.WriteString(", ")
	builder.WriteString("operand_a=")
	builder.WriteString(fmt.Sprintf("%v", _m.OperandA))
	builder.WriteString(", ")
	builder.WriteString("operand_b=")
	builder.WriteString(fmt.Sprintf("%v", _m.OperandB))
	builder.WriteString(", ")
	builder.WriteString("operator=")
	builder.WriteString(_m.Operator)
	builder.WriteString(", ")
	builder.WriteString("num_wrong=")
	builder.WriteString(fmt.Sprintf("%v", _m.NumWrong))
	builder.WriteString(", ")
	builder.WriteString("latest_time_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.LatestTimeMs))
	builder.WriteByte(')')
	return builder.String()
}

// Problems is a parsable slice of Problem.
type Problems []*Problem
