// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/mathdrill/ent/predicate"
	"github.com/abhisek/mathdrill/ent/problem"
)

// ProblemUpdate is the builder for updating Problem entities.
type ProblemUpdate struct {
	config
	hooks    []Hook
	mutation *ProblemMutation
}

// Where appends a list predicates to the ProblemUpdate builder.
func (_u *ProblemUpdate) Where(ps ...predicate.Problem) *ProblemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPosition sets the "position" field.
func (_u *ProblemUpdate) SetPosition(v int) *ProblemUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *ProblemUpdate) SetNillablePosition(v *int) *ProblemUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *ProblemUpdate) AddPosition(v int) *ProblemUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// SetOperandA sets the "operand_a" field.
func (_u *ProblemUpdate) SetOperandA(v uint8) *ProblemUpdate {
	_u.mutation.ResetOperandA()
	_u.mutation.SetOperandA(v)
	return _u
}

// SetNillableOperandA sets the "operand_a" field if the given value is not nil.
func (_u *ProblemUpdate) SetNillableOperandA(v *uint8) *ProblemUpdate {
	if v != nil {
		_u.SetOperandA(*v)
	}
	return _u
}

// AddOperandA adds value to the "operand_a" field.
func (_u *ProblemUpdate) AddOperandA(v int8) *ProblemUpdate {
	_u.mutation.AddOperandA(v)
	return _u
}

// SetOperandB sets the "operand_b" field.
func (_u *ProblemUpdate) SetOperandB(v uint8) *ProblemUpdate {
	_u.mutation.ResetOperandB()
	_u.mutation.SetOperandB(v)
	return _u
}

// SetNillableOperandB sets the "operand_b" field if the given value is not nil.
func (_u *ProblemUpdate) SetNillableOperandB(v *uint8) *ProblemUpdate {
	if v != nil {
		_u.SetOperandB(*v)
	}
	return _u
}

// AddOperandB adds value to the "operand_b" field.
func (_u *ProblemUpdate) AddOperandB(v int8) *ProblemUpdate {
	_u.mutation.AddOperandB(v)
	return _u
}

// SetOperator sets the "operator" field.
func (_u *ProblemUpdate) SetOperator(v string) *ProblemUpdate {
	_u.mutation.SetOperator(v)
	return _u
}

// SetNillableOperator sets the "operator" field if the given value is not nil.
func (_u *ProblemUpdate) SetNillableOperator(v *string) *ProblemUpdate {
	if v != nil {
		_u.SetOperator(*v)
	}
	return _u
}

// SetNumWrong sets the "num_wrong" field.
func (_u *ProblemUpdate) SetNumWrong(v int) *ProblemUpdate {
	_u.mutation.ResetNumWrong()
	_u.mutation.SetNumWrong(v)
	return _u
}

// SetNillableNumWrong sets the "num_wrong" field if the given value is not nil.
func (_u *ProblemUpdate) SetNillableNumWrong(v *int) *ProblemUpdate {
	if v != nil {
		_u.SetNumWrong(*v)
	}
	return _u
}

// AddNumWrong adds value to the "num_wrong" field.
func (_u *ProblemUpdate) AddNumWrong(v int) *ProblemUpdate {
	_u.mutation.AddNumWrong(v)
	return _u
}

// SetLatestTimeMs sets the "latest_time_ms" field.
func (_u *ProblemUpdate) SetLatestTimeMs(v int64) *ProblemUpdate {
	_u.mutation.ResetLatestTimeMs()
	_u.mutation.SetLatestTimeMs(v)
	return _u
}

// SetNillableLatestTimeMs sets the "latest_time_ms" field if the given value is not nil.
func (_u *ProblemUpdate) SetNillableLatestTimeMs(v *int64) *ProblemUpdate {
	if v != nil {
		_u.SetLatestTimeMs(*v)
	}
	return _u
}

// AddLatestTimeMs adds value to the "latest_time_ms" field.
func (_u *ProblemUpdate) AddLatestTimeMs(v int64) *ProblemUpdate {
	_u.mutation.AddLatestTimeMs(v)
	return _u
}

// Mutation returns the ProblemMutation object of the builder.
func (_u *ProblemUpdate) Mutation() *ProblemMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProblemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProblemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProblemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProblemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProblemUpdate) check() error {
	if v, ok := _u.mutation.Position(); ok {
		if err := problem.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "Problem.position": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Operator(); ok {
		if err := problem.OperatorValidator(v); err != nil {
			return &ValidationError{Name: "operator", err: fmt.Errorf(`ent: validator failed for field "Problem.operator": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NumWrong(); ok {
		if err := problem.NumWrongValidator(v); err != nil {
			return &ValidationError{Name: "num_wrong", err: fmt.Errorf(`ent: validator failed for field "Problem.num_wrong": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LatestTimeMs(); ok {
		if err := problem.LatestTimeMsValidator(v); err != nil {
			return &ValidationError{Name: "latest_time_ms", err: fmt.Errorf(`ent: validator failed for field "Problem.latest_time_ms": %w`, err)}
		}
	}
	return nil
}

func (_u *ProblemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(problem.Table, problem.Columns, sqlgraph.NewFieldSpec(problem.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(problem.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(problem.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OperandA(); ok {
		_spec.SetField(problem.FieldOperandA, field.TypeUint8, value)
	}
	if value, ok := _u.mutation.AddedOperandA(); ok {
		_spec.AddField(problem.FieldOperandA, field.TypeUint8, value)
	}
	if value, ok := _u.mutation.OperandB(); ok {
		_spec.SetField(problem.FieldOperandB, field.TypeUint8, value)
	}
	if value, ok := _u.mutation.AddedOperandB(); ok {
		_spec.AddField(problem.FieldOperandB, field.TypeUint8, value)
	}
	if value, ok := _u.mutation.Operator(); ok {
		_spec.SetField(problem.FieldOperator, field.TypeString, value)
	}
	if value, ok := _u.mutation.NumWrong(); ok {
		_spec.SetField(problem.FieldNumWrong, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNumWrong(); ok {
		_spec.AddField(problem.FieldNumWrong, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LatestTimeMs(); ok {
		_spec.SetField(problem.FieldLatestTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatestTimeMs(); ok {
		_spec.AddField(problem.FieldLatestTimeMs, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{problem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProblemUpdateOne is the builder for updating a single Problem entity.
type ProblemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProblemMutation
}

// SetPosition sets the "position" field.
func (_u *ProblemUpdateOne) SetPosition(v int) *ProblemUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *ProblemUpdateOne) SetNillablePosition(v *int) *ProblemUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *ProblemUpdateOne) AddPosition(v int) *ProblemUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// SetOperandA sets the "operand_a" field.
func (_u *ProblemUpdateOne) SetOperandA(v uint8) *ProblemUpdateOne {
	_u.mutation.ResetOperandA()
	_u.mutation.SetOperandA(v)
	return _u
}

// SetNillableOperandA sets the "operand_a" field if the given value is not nil.
func (_u *ProblemUpdateOne) SetNillableOperandA(v *uint8) *ProblemUpdateOne {
	if v != nil {
		_u.SetOperandA(*v)
	}
	return _u
}

// AddOperandA adds value to the "operand_a" field.
func (_u *ProblemUpdateOne) AddOperandA(v int8) *ProblemUpdateOne {
	_u.mutation.AddOperandA(v)
	return _u
}

// SetOperandB sets the "operand_b" field.
func (_u *ProblemUpdateOne) SetOperandB(v uint8) *ProblemUpdateOne {
	_u.mutation.ResetOperandB()
	_u.mutation.SetOperandB(v)
	return _u
}

// SetNillableOperandB sets the "operand_b" field if the given value is not nil.
func (_u *ProblemUpdateOne) SetNillableOperandB(v *uint8) *ProblemUpdateOne {
	if v != nil {
		_u.SetOperandB(*v)
	}
	return _u
}

// AddOperandB adds value to the "operand_b" field.
func (_u *ProblemUpdateOne) AddOperandB(v int8) *ProblemUpdateOne {
	_u.mutation.AddOperandB(v)
	return _u
}

// SetOperator sets the "operator" field.
func (_u *ProblemUpdateOne) SetOperator(v string) *ProblemUpdateOne {
	_u.mutation.SetOperator(v)
	return _u
}

// SetNillableOperator sets the "operator" field if the given value is not nil.
func (_u *ProblemUpdateOne) SetNillableOperator(v *string) *ProblemUpdateOne {
	if v != nil {
		_u.SetOperator(*v)
	}
	return _u
}

// SetNumWrong sets the "num_wrong" field.
func (_u *ProblemUpdateOne) SetNumWrong(v int) *ProblemUpdateOne {
	_u.mutation.ResetNumWrong()
	_u.mutation.SetNumWrong(v)
	return _u
}

// SetNillableNumWrong sets the "num_wrong" field if the given value is not nil.
func (_u *ProblemUpdateOne) SetNillableNumWrong(v *int) *ProblemUpdateOne {
	if v != nil {
		_u.SetNumWrong(*v)
	}
	return _u
}

// AddNumWrong adds value to the "num_wrong" field.
func (_u *ProblemUpdateOne) AddNumWrong(v int) *ProblemUpdateOne {
	_u.mutation.AddNumWrong(v)
	return _u
}

// SetLatestTimeMs sets the "latest_time_ms" field.
func (_u *ProblemUpdateOne) SetLatestTimeMs(v int64) *ProblemUpdateOne {
	_u.mutation.ResetLatestTimeMs()
	_u.mutation.SetLatestTimeMs(v)
	return _u
}

// SetNillableLatestTimeMs sets the "latest_time_ms" field if the given value is not nil.
func (_u *ProblemUpdateOne) SetNillableLatestTimeMs(v *int64) *ProblemUpdateOne {
	if v != nil {
		_u.SetLatestTimeMs(*v)
	}
	return _u
}

// AddLatestTimeMs adds value to the "latest_time_ms" field.
func (_u *ProblemUpdateOne) AddLatestTimeMs(v int64) *ProblemUpdateOne {
	_u.mutation.AddLatestTimeMs(v)
	return _u
}

// Mutation returns the ProblemMutation object of the builder.
func (_u *ProblemUpdateOne) Mutation() *ProblemMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProblemUpdate builder.
func (_u *ProblemUpdateOne) Where(ps ...predicate.Problem) *ProblemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProblemUpdateOne) Select(field string, fields ...string) *ProblemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Problem entity.
func (_u *ProblemUpdateOne) Save(ctx context.Context) (*Problem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProblemUpdateOne) SaveX(ctx context.Context) *Problem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProblemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProblemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProblemUpdateOne) check() error {
	if v, ok := _u.mutation.Position(); ok {
		if err := problem.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "Problem.position": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Operator(); ok {
		if err := problem.OperatorValidator(v); err != nil {
			return &ValidationError{Name: "operator", err: fmt.Errorf(`ent: validator failed for field "Problem.operator": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NumWrong(); ok {
		if err := problem.NumWrongValidator(v); err != nil {
			return &ValidationError{Name: "num_wrong", err: fmt.Errorf(`ent: validator failed for field "Problem.num_wrong": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LatestTimeMs(); ok {
		if err := problem.LatestTimeMsValidator(v); err != nil {
			return &ValidationError{Name: "latest_time_ms", err: fmt.Errorf(`ent: validator failed for field "Problem.latest_time_ms": %w`, err)}
		}
	}
	return nil
}

func (_u *ProblemUpdateOne) sqlSave(ctx context.Context) (_node *Problem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(problem.Table, problem.Columns, sqlgraph.NewFieldSpec(problem.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Problem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, problem.FieldID)
		for _, f := range fields {
			if !problem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != problem.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(problem.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(problem.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OperandA(); ok {
		_spec.SetField(problem.FieldOperandA, field.TypeUint8, value)
	}
	if value, ok := _u.mutation.AddedOperandA(); ok {
		_spec.AddField(problem.FieldOperandA, field.TypeUint8, value)
	}
	if value, ok := _u.mutation.OperandB(); ok {
		_spec.SetField(problem.FieldOperandB, field.TypeUint8, value)
	}
	if value, ok := _u.mutation.AddedOperandB(); ok {
		_spec.AddField(problem.FieldOperandB, field.TypeUint8, value)
	}
	if value, ok := _u.mutation.Operator(); ok {
		_spec.SetField(problem.FieldOperator, field.TypeString, value)
	}
	if value, ok := _u.mutation.NumWrong(); ok {
		_spec.SetField(problem.FieldNumWrong, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNumWrong(); ok {
		_spec.AddField(problem.FieldNumWrong, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LatestTimeMs(); ok {
		_spec.SetField(problem.FieldLatestTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatestTimeMs(); ok {
		_spec.AddField(problem.FieldLatestTimeMs, field.TypeInt64, value)
	}
	_node = &Problem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{problem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
