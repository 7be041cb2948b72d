// Code generated by ent, DO NOT EDIT.

package problem

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the problem type in the database.
	Label = "problem"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPosition holds the string denoting the position field in the database.
	FieldPosition = "position"
	// FieldOperandA holds the string denoting the operand_a field in the database.
	FieldOperandA = "operand_a"
	// FieldOperandB holds the string denoting the operand_b field in the database.
	FieldOperandB = "operand_b"
	// FieldOperator holds the string denoting the operator field in the database.
	FieldOperator = "operator"
	// FieldNumWrong holds the string denoting the num_wrong field in the database.
	FieldNumWrong = "num_wrong"
	// FieldLatestTimeMs holds the string denoting the latest_time_ms field in the database.
	FieldLatestTimeMs = "latest_time_ms"
	// Table holds the table name of the problem in the database.
	Table = "problems"
)

// Columns holds all SQL columns for problem fields.
var Columns = []string{
	FieldID,
	FieldPosition,
	FieldOperandA,
	FieldOperandB,
	FieldOperator,
	FieldNumWrong,
	FieldLatestTimeMs,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// PositionValidator is a validator for the "position" field. It is called by the builders before save.
	PositionValidator func(int) error
	// OperatorValidator is a validator for the "operator" field. It is called by the builders before save.
	OperatorValidator func(string) error
	// NumWrongValidator is a validator for the "num_wrong" field. It is called by the builders before save.
	NumWrongValidator func(int) error
	// LatestTimeMsValidator is a validator for the "latest_time_ms" field. It is called by the builders before save.
	LatestTimeMsValidator func(int64) error
)

// OrderOption defines the ordering options for the Problem queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPosition orders the results by the position field.
func ByPosition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPosition, opts...).ToFunc()
}

// ByOperandA orders the results by the operand_a field.
func ByOperandA(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOperandA, opts...).ToFunc()
}

// ByOperandB orders the results by the operand_b field.
func ByOperandB(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOperandB, opts...).ToFunc()
}

// ByOperator orders the results by the operator field.
func ByOperator(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOperator, opts...).ToFunc()
}

// ByNumWrong orders the results by the num_wrong field.
func ByNumWrong(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNumWrong, opts...).ToFunc()
}

// ByLatestTimeMs orders the results by the latest_time_ms field.
func ByLatestTimeMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLatestTimeMs, opts...).ToFunc()
}
