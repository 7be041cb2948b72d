package store

import (
	"context"

	"github.com/abhisek/mathdrill/internal/problem"
)

// ProblemRepo persists the problem catalog. Catalog order is significant
// (it is the selection iteration order), so rows carry explicit positions.
type ProblemRepo interface {
	// LoadAll rebuilds the catalog from storage, in stored order. An empty
	// store yields an empty catalog, not an error.
	LoadAll(ctx context.Context) (problem.Catalog, error)

	// ReplaceAll swaps the stored catalog wholesale for the given one,
	// used by reset and by replacing imports.
	ReplaceAll(ctx context.Context, catalog problem.Catalog) error

	// Append adds problems after the current end of the stored catalog,
	// used by the add command's generator batches.
	Append(ctx context.Context, problems []*problem.Problem) error

	// SaveResult persists one problem's mutable counters after a
	// CheckGuess, identified by catalog position.
	SaveResult(ctx context.Context, position int, p *problem.Problem) error

	// Count returns the number of stored problems.
	Count(ctx context.Context) (int, error)
}

// AnswerEventData captures a single answer attempt for the event log.
type AnswerEventData struct {
	SessionID     string
	ProblemText   string
	Operator      string
	CorrectAnswer int
	Guess         int
	Correct       bool
	TimeMs        int64
}

// SessionEventData captures a session start or end for the event log.
type SessionEventData struct {
	SessionID       string
	Action          string // "start" or "end"
	QuestionsServed int
	CorrectAnswers  int
	DurationSecs    int
}

// OperatorStats aggregates answer history for one operator.
type OperatorStats struct {
	Operator   string
	Attempts   int
	Correct    int
	MeanTimeMs float64
}

// Accuracy returns the correct fraction, 0 with no attempts.
func (s OperatorStats) Accuracy() float64 {
	if s.Attempts == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Attempts)
}

// EventRepo provides append and aggregate access to the event log.
type EventRepo interface {
	// AppendAnswer records an answer attempt.
	AppendAnswer(ctx context.Context, data AnswerEventData) error

	// AppendSession records a session start/end.
	AppendSession(ctx context.Context, data SessionEventData) error

	// OperatorStats aggregates the answer log per operator, keyed by
	// operator symbol.
	OperatorStats(ctx context.Context) (map[string]OperatorStats, error)

	// SessionCount returns how many sessions have been started.
	SessionCount(ctx context.Context) (int, error)
}
