package store

import (
	"context"
	"fmt"

	"github.com/abhisek/mathdrill/ent"
	"github.com/abhisek/mathdrill/ent/answerevent"
	"github.com/abhisek/mathdrill/ent/sessionevent"
)

// eventRepo implements EventRepo using the ent client plus the shared
// sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendAnswer(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetProblemText(data.ProblemText).
		SetOperator(data.Operator).
		SetCorrectAnswer(data.CorrectAnswer).
		SetGuess(data.Guess).
		SetCorrect(data.Correct).
		SetTimeMs(data.TimeMs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendSession(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetAction(data.Action).
		SetQuestionsServed(data.QuestionsServed).
		SetCorrectAnswers(data.CorrectAnswers).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) OperatorStats(ctx context.Context) (map[string]OperatorStats, error) {
	var totals []struct {
		Operator string  `json:"operator"`
		Count    int     `json:"count"`
		Mean     float64 `json:"mean"`
	}
	err := r.client.AnswerEvent.Query().
		GroupBy(answerevent.FieldOperator).
		Aggregate(ent.Count(), ent.Mean(answerevent.FieldTimeMs)).
		Scan(ctx, &totals)
	if err != nil {
		return nil, fmt.Errorf("aggregate answer events: %w", err)
	}

	stats := make(map[string]OperatorStats, len(totals))
	for _, row := range totals {
		stats[row.Operator] = OperatorStats{
			Operator:   row.Operator,
			Attempts:   row.Count,
			MeanTimeMs: row.Mean,
		}
	}

	var corrects []struct {
		Operator string `json:"operator"`
		Count    int    `json:"count"`
	}
	err = r.client.AnswerEvent.Query().
		Where(answerevent.Correct(true)).
		GroupBy(answerevent.FieldOperator).
		Aggregate(ent.Count()).
		Scan(ctx, &corrects)
	if err != nil {
		return nil, fmt.Errorf("aggregate correct answers: %w", err)
	}

	for _, row := range corrects {
		s := stats[row.Operator]
		s.Correct = row.Count
		stats[row.Operator] = s
	}
	return stats, nil
}

func (r *eventRepo) SessionCount(ctx context.Context) (int, error) {
	n, err := r.client.SessionEvent.Query().
		Where(sessionevent.Action("start")).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count sessions: %w", err)
	}
	return n, nil
}
