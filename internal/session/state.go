package session

import (
	"time"

	"github.com/abhisek/mathdrill/internal/problem"
)

const (
	// MaxQuestions is the hard cap on questions served in one session.
	MaxQuestions = 30

	// FastStreakTarget is the fast-correct run that ends a session early
	// once every operator has been seen.
	FastStreakTarget = 5

	// FastAnswerSecs is the whole-second threshold under which a correct
	// answer counts toward the fast streak.
	FastAnswerSecs = 2
)

// Phase represents the current phase of a drill session.
type Phase int

const (
	PhaseActive   Phase = iota // a question is on screen
	PhaseFeedback              // showing correct/wrong feedback
	PhaseEnding                // finish criteria met or quit confirmed
	PhaseSummary               // summary screen shown
)

// State tracks the runtime state of one drill session. The session owns the
// catalog for its lifetime; the selector only ever reads it.
type State struct {
	// Catalog is the full, current problem set.
	Catalog problem.Catalog

	// SessionID is the UUID for this session.
	SessionID string

	// CurrentIndex is the catalog index of the active problem, -1 between
	// questions.
	CurrentIndex int

	// QuestionStartTime is when the active problem was first displayed.
	// Wrong answers do not restart it: the solve time always measures from
	// first display to the correct answer.
	QuestionStartTime time.Time

	// QuestionsServed counts distinct questions presented so far.
	QuestionsServed int

	// CorrectAttempts and WrongAttempts count individual answer attempts.
	CorrectAttempts int
	WrongAttempts   int

	// FastStreak is the current run of correct answers solved within
	// FastAnswerSecs. Only a wrong answer resets it; a slow correct
	// answer leaves it unchanged without extending it.
	FastStreak int

	// OpsSeen tracks which of the catalog's operators have been presented.
	OpsSeen map[problem.Op]bool

	// StartTime is when the session began; Elapsed is updated by the UI tick.
	StartTime time.Time
	Elapsed   time.Duration

	// Phase is the current session phase.
	Phase Phase

	// LastAnswerCorrect and LastSolveTime describe the most recent attempt,
	// for the feedback display.
	LastAnswerCorrect bool
	LastSolveTime     time.Duration

	// ShowingQuitConfirm is true while the quit dialog is displayed.
	ShowingQuitConfirm bool
}

// NewState creates a session over catalog. Every operator present in the
// catalog starts unseen; the session cannot finish early until each has been
// drilled at least once.
func NewState(catalog problem.Catalog, sessionID string) *State {
	seen := make(map[problem.Op]bool)
	for _, op := range catalog.Ops() {
		seen[op] = false
	}
	return &State{
		Catalog:      catalog,
		SessionID:    sessionID,
		CurrentIndex: -1,
		OpsSeen:      seen,
		StartTime:    time.Now(),
		Phase:        PhaseActive,
	}
}

// Current returns the active problem, or nil between questions.
func (s *State) Current() *problem.Problem {
	if s.CurrentIndex < 0 || s.CurrentIndex >= len(s.Catalog) {
		return nil
	}
	return s.Catalog[s.CurrentIndex]
}

// AllOpsSeen reports whether every operator in the catalog has been
// presented this session.
func (s *State) AllOpsSeen() bool {
	for _, seen := range s.OpsSeen {
		if !seen {
			return false
		}
	}
	return true
}

// Done reports whether the session's finish criteria are met: the question
// cap is reached, or the fast streak is complete and every operator has
// come up at least once.
func (s *State) Done() bool {
	if s.QuestionsServed >= MaxQuestions {
		return true
	}
	return s.FastStreak >= FastStreakTarget && s.AllOpsSeen()
}
