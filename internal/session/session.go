// Package session holds the drill-session state machine: which problem is
// up, how the learner is doing, and when the session is allowed to end.
package session

import (
	"sort"
	"time"

	"github.com/abhisek/mathdrill/internal/problem"
	"github.com/abhisek/mathdrill/internal/selection"
)

// NextProblem draws the next problem from the catalog and makes it current.
// Weights are recomputed from the catalog's live state on every draw, so a
// fact the learner just missed is immediately heavier. Returns
// selection.ErrEmptyCatalog when there is nothing to drill.
func NextProblem(s *State, src selection.Source) error {
	idx, err := selection.Select(src, s.Catalog)
	if err != nil {
		return err
	}

	s.CurrentIndex = idx
	s.QuestionsServed++
	s.OpsSeen[s.Catalog[idx].Op()] = true
	s.QuestionStartTime = time.Now()
	return nil
}

// HandleAnswer checks guess against the current problem and updates both the
// problem's performance record and the session counters. elapsed is the time
// since the problem was first displayed. Returns whether the guess was
// correct; with no current problem it is a no-op returning false.
func HandleAnswer(s *State, guess int, elapsed time.Duration) bool {
	p := s.Current()
	if p == nil {
		return false
	}

	correct := p.CheckGuess(guess, elapsed)
	s.LastAnswerCorrect = correct
	s.LastSolveTime = elapsed

	if correct {
		s.CorrectAttempts++
		// Only a wrong answer breaks the streak; a slow correct answer
		// simply fails to extend it.
		if elapsed/time.Second <= FastAnswerSecs {
			s.FastStreak++
		}
		return true
	}

	s.WrongAttempts++
	s.FastStreak = 0
	return false
}

// ClearCurrent resets the active problem after a correct answer has been
// fully handled.
func ClearCurrent(s *State) {
	s.CurrentIndex = -1
}

// Summary is the end-of-session report.
type Summary struct {
	SessionID       string
	QuestionsServed int
	CorrectAttempts int
	WrongAttempts   int
	Accuracy        float64
	Duration        time.Duration

	// Heaviest lists the problems carrying the most selection weight at
	// session end; these are the facts the learner should expect next time.
	Heaviest []*problem.Problem
}

// heaviestCount is how many top-weight problems the summary surfaces.
const heaviestCount = 5

// BuildSummary derives the summary report from a finished session.
func BuildSummary(s *State) *Summary {
	total := s.CorrectAttempts + s.WrongAttempts
	var accuracy float64
	if total > 0 {
		accuracy = float64(s.CorrectAttempts) / float64(total)
	}

	return &Summary{
		SessionID:       s.SessionID,
		QuestionsServed: s.QuestionsServed,
		CorrectAttempts: s.CorrectAttempts,
		WrongAttempts:   s.WrongAttempts,
		Accuracy:        accuracy,
		Duration:        s.Elapsed,
		Heaviest:        heaviestProblems(s.Catalog, heaviestCount),
	}
}

// heaviestProblems returns up to n problems with the highest scores. It
// sorts a copy so the catalog's selection order is never disturbed.
func heaviestProblems(catalog problem.Catalog, n int) []*problem.Problem {
	top := make([]*problem.Problem, len(catalog))
	copy(top, catalog)
	sort.Slice(top, func(i, j int) bool {
		return top[i].Score() > top[j].Score()
	})
	if len(top) > n {
		top = top[:n]
	}
	return top
}
