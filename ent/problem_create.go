// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/mathdrill/ent/problem"
)

// ProblemCreate is the builder for creating a Problem entity.
type ProblemCreate struct {
	config
	mutation *ProblemMutation
	hooks    []Hook
}

// SetPosition sets the "position" field.
func (_c *ProblemCreate) SetPosition(v int) *ProblemCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetOperandA sets the "operand_a" field.
func (_c *ProblemCreate) SetOperandA(v uint8) *ProblemCreate {
	_c.mutation.SetOperandA(v)
	return _c
}

// SetOperandB sets the "operand_b" field.
func (_c *ProblemCreate) SetOperandB(v uint8) *ProblemCreate {
	_c.mutation.SetOperandB(v)
	return _c
}

// SetOperator sets the "operator" field.
func (_c *ProblemCreate) SetOperator(v string) *ProblemCreate {
	_c.mutation.SetOperator(v)
	return _c
}

// SetNumWrong sets the "num_wrong" field.
func (_c *ProblemCreate) SetNumWrong(v int) *ProblemCreate {
	_c.mutation.SetNumWrong(v)
	return _c
}

// SetLatestTimeMs sets the "latest_time_ms" field.
func (_c *ProblemCreate) SetLatestTimeMs(v int64) *ProblemCreate {
	_c.mutation.SetLatestTimeMs(v)
	return _c
}

// Mutation returns the ProblemMutation object of the builder.
func (_c *ProblemCreate) Mutation() *ProblemMutation {
	return _c.mutation
}

// Save creates the Problem in the database.
func (_c *ProblemCreate) Save(ctx context.Context) (*Problem, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProblemCreate) SaveX(ctx context.Context) *Problem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProblemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProblemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProblemCreate) check() error {
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "Problem.position"`)}
	}
	if v, ok := _c.mutation.Position(); ok {
		if err := problem.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "Problem.position": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OperandA(); !ok {
		return &ValidationError{Name: "operand_a", err: errors.New(`ent: missing required field "Problem.operand_a"`)}
	}
	if _, ok := _c.mutation.OperandB(); !ok {
		return &ValidationError{Name: "operand_b", err: errors.New(`ent: missing required field "Problem.operand_b"`)}
	}
	if _, ok := _c.mutation.Operator(); !ok {
		return &ValidationError{Name: "operator", err: errors.New(`ent: missing required field "Problem.operator"`)}
	}
	if v, ok := _c.mutation.Operator(); ok {
		if err := problem.OperatorValidator(v); err != nil {
			return &ValidationError{Name: "operator", err: fmt.Errorf(`ent: validator failed for field "Problem.operator": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NumWrong(); !ok {
		return &ValidationError{Name: "num_wrong", err: errors.New(`ent: missing required field "Problem.num_wrong"`)}
	}
	if v, ok := _c.mutation.NumWrong(); ok {
		if err := problem.NumWrongValidator(v); err != nil {
			return &ValidationError{Name: "num_wrong", err: fmt.Errorf(`ent: validator failed for field "Problem.num_wrong": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LatestTimeMs(); !ok {
		return &ValidationError{Name: "latest_time_ms", err: errors.New(`ent: missing required field "Problem.latest_time_ms"`)}
	}
	if v, ok := _c.mutation.LatestTimeMs(); ok {
		if err := problem.LatestTimeMsValidator(v); err != nil {
			return &ValidationError{Name: "latest_time_ms", err: fmt.Errorf(`ent: validator failed for field "Problem.latest_time_ms": %w`, err)}
		}
	}
	return nil
}

func (_c *ProblemCreate) sqlSave(ctx context.Context) (*Problem, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ProblemCreate) createSpec() (*Problem, *sqlgraph.CreateSpec) {
	var (
		_node = &Problem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(problem.Table, sqlgraph.NewFieldSpec(problem.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(problem.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if value, ok := _c.mutation.OperandA(); ok {
		_spec.SetField(problem.FieldOperandA, field.TypeUint8, value)
		_node.OperandA = value
	}
	if value, ok := _c.mutation.OperandB(); ok {
		_spec.SetField(problem.FieldOperandB, field.TypeUint8, value)
		_node.OperandB = value
	}
	if value, ok := _c.mutation.Operator(); ok {
		_spec.SetField(problem.FieldOperator, field.TypeString, value)
		_node.Operator = value
	}
	if value, ok := _c.mutation.NumWrong(); ok {
		_spec.SetField(problem.FieldNumWrong, field.TypeInt, value)
		_node.NumWrong = value
	}
	if value, ok := _c.mutation.LatestTimeMs(); ok {
		_spec.SetField(problem.FieldLatestTimeMs, field.TypeInt64, value)
		_node.LatestTimeMs = value
	}
	return _node, _spec
}

// ProblemCreateBulk is the builder for creating many Problem entities in bulk.
type ProblemCreateBulk struct {
	config
	err      error
	builders []*ProblemCreate
}

// Save creates the Problem entities in the database.
func (_c *ProblemCreateBulk) Save(ctx context.Context) ([]*Problem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Problem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProblemMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ProblemCreateBulk) SaveX(ctx context.Context) []*Problem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProblemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProblemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
