package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/mathdrill/ent"
	entproblem "github.com/abhisek/mathdrill/ent/problem"
	"github.com/abhisek/mathdrill/internal/problem"
)

// problemRepo implements ProblemRepo using the ent client.
type problemRepo struct {
	client *ent.Client
}

func (r *problemRepo) LoadAll(ctx context.Context) (problem.Catalog, error) {
	rows, err := r.client.Problem.Query().
		Order(ent.Asc(entproblem.FieldPosition)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query problems: %w", err)
	}

	catalog := make(problem.Catalog, 0, len(rows))
	for _, row := range rows {
		p, err := problem.New(
			row.OperandA,
			row.OperandB,
			problem.Op(row.Operator),
			row.NumWrong,
			time.Duration(row.LatestTimeMs)*time.Millisecond,
		)
		if err != nil {
			return nil, fmt.Errorf("rebuild stored problem at position %d: %w", row.Position, err)
		}
		catalog = append(catalog, p)
	}
	return catalog, nil
}

func (r *problemRepo) ReplaceAll(ctx context.Context, catalog problem.Catalog) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if _, err := tx.Problem.Delete().Exec(ctx); err != nil {
		tx.Rollback()
		return fmt.Errorf("clear problems: %w", err)
	}

	if err := createProblems(ctx, tx.Problem, 0, catalog); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace: %w", err)
	}
	return nil
}

func (r *problemRepo) Append(ctx context.Context, problems []*problem.Problem) error {
	base, err := r.Count(ctx)
	if err != nil {
		return err
	}
	return createProblems(ctx, r.client.Problem, base, problems)
}

func (r *problemRepo) SaveResult(ctx context.Context, position int, p *problem.Problem) error {
	n, err := r.client.Problem.Update().
		Where(entproblem.Position(position)).
		SetNumWrong(p.NumWrong()).
		SetLatestTimeMs(p.LatestTime().Milliseconds()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save result at position %d: %w", position, err)
	}
	if n == 0 {
		return fmt.Errorf("no stored problem at position %d", position)
	}
	return nil
}

func (r *problemRepo) Count(ctx context.Context) (int, error) {
	n, err := r.client.Problem.Query().Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count problems: %w", err)
	}
	return n, nil
}

// problemClient is the subset of the generated client shared by plain and
// transactional access.
type problemClient interface {
	Create() *ent.ProblemCreate
}

// createProblems writes problems starting at catalog position base.
func createProblems(ctx context.Context, client problemClient, base int, problems []*problem.Problem) error {
	for i, p := range problems {
		ops := p.Operands()
		_, err := client.Create().
			SetPosition(base + i).
			SetOperandA(ops[0]).
			SetOperandB(ops[1]).
			SetOperator(p.Op().Symbol()).
			SetNumWrong(p.NumWrong()).
			SetLatestTimeMs(p.LatestTime().Milliseconds()).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("save problem at position %d: %w", base+i, err)
		}
	}
	return nil
}
