// Code generated by ent, DO NOT EDIT.

package problem

import (
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/mathdrill/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Problem {
	return predicate.Problem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Problem {
	return predicate.Problem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Problem {
	return predicate.Problem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Problem {
	return predicate.Problem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Problem {
	return predicate.Problem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Problem {
	return predicate.Problem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Problem {
	return predicate.Problem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Problem {
	return predicate.Problem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Problem {
	return predicate.Problem(sql.FieldLTE(FieldID, id))
}

// Position applies equality check predicate on the "position" field. It's identical to PositionEQ.
func Position(v int) predicate.Problem {
	return predicate.Problem(sql.FieldEQ(FieldPosition, v))
}

// OperandA applies equality check predicate on the "operand_a" field. It's identical to OperandAEQ.
func OperandA(v uint8) predicate.Problem {
	return predicate.Problem(sql.FieldEQ(FieldOperandA, v))
}

// OperandB applies equality check predicate on the "operand_b" field. It's identical to OperandBEQ.
func OperandB(v uint8) predicate.Problem {
	return predicate.Problem(sql.FieldEQ(FieldOperandB, v))
}

// Operator applies equality check predicate on the "operator" field. It's identical to OperatorEQ.
func Operator(v string) predicate.Problem {
	return predicate.Problem(sql.FieldEQ(FieldOperator, v))
}

// NumWrong applies equality check predicate on the "num_wrong" field. It's identical to NumWrongEQ.
func NumWrong(v int) predicate.Problem {
	return predicate.Problem(sql.FieldEQ(FieldNumWrong, v))
}

// LatestTimeMs applies equality check predicate on the "latest_time_ms" field. It's identical to LatestTimeMsEQ.
func LatestTimeMs(v int64) predicate.Problem {
	return predicate.Problem(sql.FieldEQ(FieldLatestTimeMs, v))
}

// PositionEQ applies the EQ predicate on the "position" field.
func PositionEQ(v int) predicate.Problem {
	return predicate.Problem(sql.FieldEQ(FieldPosition, v))
}

// PositionNEQ applies the NEQ predicate on the "position" field.
func PositionNEQ(v int) predicate.Problem {
	return predicate.Problem(sql.FieldNEQ(FieldPosition, v))
}

// PositionIn applies the In predicate on the "position" field.
func PositionIn(vs ...int) predicate.Problem {
	return predicate.Problem(sql.FieldIn(FieldPosition, vs...))
}

// PositionNotIn applies the NotIn predicate on the "position" field.
func PositionNotIn(vs ...int) predicate.Problem {
	return predicate.Problem(sql.FieldNotIn(FieldPosition, vs...))
}

// PositionGT applies the GT predicate on the "position" field.
func PositionGT(v int) predicate.Problem {
	return predicate.Problem(sql.FieldGT(FieldPosition, v))
}

// PositionGTE applies the GTE predicate on the "position" field.
func PositionGTE(v int) predicate.Problem {
	return predicate.Problem(sql.FieldGTE(FieldPosition, v))
}

// PositionLT applies the LT predicate on the "position" field.
func PositionLT(v int) predicate.Problem {
	return predicate.Problem(sql.FieldLT(FieldPosition, v))
}

// PositionLTE applies the LTE predicate on the "position" field.
func PositionLTE(v int) predicate.Problem {
	return predicate.Problem(sql.FieldLTE(FieldPosition, v))
}

// OperandAEQ applies the EQ predicate on the "operand_a" field.
func OperandAEQ(v uint8) predicate.Problem {
	return predicate.Problem(sql.FieldEQ(FieldOperandA, v))
}

// OperandANEQ applies the NEQ predicate on the "operand_a" field.
func OperandANEQ(v uint8) predicate.Problem {
	return predicate.Problem(sql.FieldNEQ(FieldOperandA, v))
}

// OperandAIn applies the In predicate on the "operand_a" field.
func OperandAIn(vs ...uint8) predicate.Problem {
	return predicate.Problem(sql.FieldIn(FieldOperandA, vs...))
}

// OperandANotIn applies the NotIn predicate on the "operand_a" field.
func OperandANotIn(vs ...uint8) predicate.Problem {
	return predicate.Problem(sql.FieldNotIn(FieldOperandA, vs...))
}

// OperandAGT applies the GT predicate on the "operand_a" field.
func OperandAGT(v uint8) predicate.Problem {
	return predicate.Problem(sql.FieldGT(FieldOperandA, v))
}

// OperandAGTE applies the GTE predicate on the "operand_a" field.
func OperandAGTE(v uint8) predicate.Problem {
	return predicate.Problem(sql.FieldGTE(FieldOperandA, v))
}

// OperandALT applies the LT predicate on the "operand_a" field.
func OperandALT(v uint8) predicate.Problem {
	return predicate.Problem(sql.FieldLT(FieldOperandA, v))
}

// OperandALTE applies the LTE predicate on the "operand_a" field.
func OperandALTE(v uint8) predicate.Problem {
	return predicate.Problem(sql.FieldLTE(FieldOperandA, v))
}

// OperandBEQ applies the EQ predicate on the "operand_b" field.
func OperandBEQ(v uint8) predicate.Problem {
	return predicate.Problem(sql.FieldEQ(FieldOperandB, v))
}

// OperandBNEQ applies the NEQ predicate on the "operand_b" field.
func OperandBNEQ(v uint8) predicate.Problem {
	return predicate.Problem(sql.FieldNEQ(FieldOperandB, v))
}

// OperandBIn applies the In predicate on the "operand_b" field.
func OperandBIn(vs ...uint8) predicate.Problem {
	return predicate.Problem(sql.FieldIn(FieldOperandB, vs...))
}

// OperandBNotIn applies the NotIn predicate on the "operand_b" field.
func OperandBNotIn(vs ...uint8) predicate.Problem {
	return predicate.Problem(sql.FieldNotIn(FieldOperandB, vs...))
}

// OperandBGT applies the GT predicate on the "operand_b" field.
func OperandBGT(v uint8) predicate.Problem {
	return predicate.Problem(sql.FieldGT(FieldOperandB, v))
}

// OperandBGTE applies the GTE predicate on the "operand_b" field.
func OperandBGTE(v uint8) predicate.Problem {
	return predicate.Problem(sql.FieldGTE(FieldOperandB, v))
}

// OperandBLT applies the LT predicate on the "operand_b" field.
func OperandBLT(v uint8) predicate.Problem {
	return predicate.Problem(sql.FieldLT(FieldOperandB, v))
}

// OperandBLTE applies the LTE predicate on the "operand_b" field.
func OperandBLTE(v uint8) predicate.Problem {
	return predicate.Problem(sql.FieldLTE(FieldOperandB, v))
}

// OperatorEQ applies the EQ predicate on the "operator" field.
func OperatorEQ(v string) predicate.Problem {
	return predicate.Problem(sql.FieldEQ(FieldOperator, v))
}

// OperatorNEQ applies the NEQ predicate on the "operator" field.
func OperatorNEQ(v string) predicate.Problem {
	return predicate.Problem(sql.FieldNEQ(FieldOperator, v))
}

// OperatorIn applies the In predicate on the "operator" field.
func OperatorIn(vs ...string) predicate.Problem {
	return predicate.Problem(sql.FieldIn(FieldOperator, vs...))
}

// OperatorNotIn applies the NotIn predicate on the "operator" field.
func OperatorNotIn(vs ...string) predicate.Problem {
	return predicate.Problem(sql.FieldNotIn(FieldOperator, vs...))
}

// OperatorGT applies the GT predicate on the "operator" field.
func OperatorGT(v string) predicate.Problem {
	return predicate.Problem(sql.FieldGT(FieldOperator, v))
}

// OperatorGTE applies the GTE predicate on the "operator" field.
func OperatorGTE(v string) predicate.Problem {
	return predicate.Problem(sql.FieldGTE(FieldOperator, v))
}

// OperatorLT applies the LT predicate on the "operator" field.
func OperatorLT(v string) predicate.Problem {
	return predicate.Problem(sql.FieldLT(FieldOperator, v))
}

// OperatorLTE applies the LTE predicate on the "operator" field.
func OperatorLTE(v string) predicate.Problem {
	return predicate.Problem(sql.FieldLTE(FieldOperator, v))
}

// OperatorContains applies the Contains predicate on the "operator" field.
func OperatorContains(v string) predicate.Problem {
	return predicate.Problem(sql.FieldContains(FieldOperator, v))
}

// OperatorHasPrefix applies the HasPrefix predicate on the "operator" field.
func OperatorHasPrefix(v string) predicate.Problem {
	return predicate.Problem(sql.FieldHasPrefix(FieldOperator, v))
}

// OperatorHasSuffix applies the HasSuffix predicate on the "operator" field.
func OperatorHasSuffix(v string) predicate.Problem {
	return predicate.Problem(sql.FieldHasSuffix(FieldOperator, v))
}

// OperatorEqualFold applies the EqualFold predicate on the "operator" field.
func OperatorEqualFold(v string) predicate.Problem {
	return predicate.Problem(sql.FieldEqualFold(FieldOperator, v))
}

// OperatorContainsFold applies the ContainsFold predicate on the "operator" field.
func OperatorContainsFold(v string) predicate.Problem {
	return predicate.Problem(sql.FieldContainsFold(FieldOperator, v))
}

// NumWrongEQ applies the EQ predicate on the "num_wrong" field.
func NumWrongEQ(v int) predicate.Problem {
	return predicate.Problem(sql.FieldEQ(FieldNumWrong, v))
}

// NumWrongNEQ applies the NEQ predicate on the "num_wrong" field.
func NumWrongNEQ(v int) predicate.Problem {
	return predicate.Problem(sql.FieldNEQ(FieldNumWrong, v))
}

// NumWrongIn applies the In predicate on the "num_wrong" field.
func NumWrongIn(vs ...int) predicate.Problem {
	return predicate.Problem(sql.FieldIn(FieldNumWrong, vs...))
}

// NumWrongNotIn applies the NotIn predicate on the "num_wrong" field.
func NumWrongNotIn(vs ...int) predicate.Problem {
	return predicate.Problem(sql.FieldNotIn(FieldNumWrong, vs...))
}

// NumWrongGT applies the GT predicate on the "num_wrong" field.
func NumWrongGT(v int) predicate.Problem {
	return predicate.Problem(sql.FieldGT(FieldNumWrong, v))
}

// NumWrongGTE applies the GTE predicate on the "num_wrong" field.
func NumWrongGTE(v int) predicate.Problem {
	return predicate.Problem(sql.FieldGTE(FieldNumWrong, v))
}

// NumWrongLT applies the LT predicate on the "num_wrong" field.
func NumWrongLT(v int) predicate.Problem {
	return predicate.Problem(sql.FieldLT(FieldNumWrong, v))
}

// NumWrongLTE applies the LTE predicate on the "num_wrong" field.
func NumWrongLTE(v int) predicate.Problem {
	return predicate.Problem(sql.FieldLTE(FieldNumWrong, v))
}

// LatestTimeMsEQ applies the EQ predicate on the "latest_time_ms" field.
func LatestTimeMsEQ(v int64) predicate.Problem {
	return predicate.Problem(sql.FieldEQ(FieldLatestTimeMs, v))
}

// LatestTimeMsNEQ applies the NEQ predicate on the "latest_time_ms" field.
func LatestTimeMsNEQ(v int64) predicate.Problem {
	return predicate.Problem(sql.FieldNEQ(FieldLatestTimeMs, v))
}

// LatestTimeMsIn applies the In predicate on the "latest_time_ms" field.
func LatestTimeMsIn(vs ...int64) predicate.Problem {
	return predicate.Problem(sql.FieldIn(FieldLatestTimeMs, vs...))
}

// LatestTimeMsNotIn applies the NotIn predicate on the "latest_time_ms" field.
func LatestTimeMsNotIn(vs ...int64) predicate.Problem {
	return predicate.Problem(sql.FieldNotIn(FieldLatestTimeMs, vs...))
}

// LatestTimeMsGT applies the GT predicate on the "latest_time_ms" field.
func LatestTimeMsGT(v int64) predicate.Problem {
	return predicate.Problem(sql.FieldGT(FieldLatestTimeMs, v))
}

// LatestTimeMsGTE applies the GTE predicate on the "latest_time_ms" field.
func LatestTimeMsGTE(v int64) predicate.Problem {
	return predicate.Problem(sql.FieldGTE(FieldLatestTimeMs, v))
}

// LatestTimeMsLT applies the LT predicate on the "latest_time_ms" field.
func LatestTimeMsLT(v int64) predicate.Problem {
	return predicate.Problem(sql.FieldLT(FieldLatestTimeMs, v))
}

// LatestTimeMsLTE applies the LTE predicate on the "latest_time_ms" field.
func LatestTimeMsLTE(v int64) predicate.Problem {
	return predicate.Problem(sql.FieldLTE(FieldLatestTimeMs, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Problem) predicate.Problem {
	return predicate.Problem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Problem) predicate.Problem {
	return predicate.Problem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Problem) predicate.Problem {
	return predicate.Problem(sql.NotPredicates(p))
}
