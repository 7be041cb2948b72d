package problem

import (
	"errors"
	"fmt"
	"time"
)

// WrongWeight is how many points one wrong answer contributes to a problem's
// selection score. A wrong answer counts as much as 30 seconds of solve time.
const WrongWeight = 30.0

// Op identifies an arithmetic operator.
type Op string

const (
	OpPlus     Op = "+"
	OpMinus    Op = "-"
	OpMultiply Op = "x"

	// OpDivide is reserved for a future question type. No generator
	// produces it and New rejects it.
	OpDivide Op = "/"
)

// Symbol returns the display symbol for the operator.
func (o Op) Symbol() string {
	return string(o)
}

// Valid reports whether the operator is one of the supported set.
func (o Op) Valid() bool {
	switch o {
	case OpPlus, OpMinus, OpMultiply:
		return true
	}
	return false
}

var (
	// ErrUnderflow is returned when a subtraction fact would have a
	// negative answer. Callers must order operands so a >= b.
	ErrUnderflow = errors.New("subtraction operands would underflow")

	// ErrUnknownOp is returned for operators outside the supported set,
	// including the reserved divide operator.
	ErrUnknownOp = errors.New("unknown operator")
)

// Problem is one arithmetic fact plus its quiz-performance history.
//
// The fact itself (operands, operator, answer) is fixed at construction.
// The performance fields (numWrong, latestTime) mutate only through
// CheckGuess. Operands are bounded by uint8 and the catalog generators
// never exceed 15, so the int answer cannot overflow.
type Problem struct {
	operands   [2]uint8
	op         Op
	answer     int
	numWrong   int
	latestTime time.Duration
}

// New constructs a Problem and computes its answer. numWrong and latestTime
// seed the performance history, which lets persisted problems be rebuilt
// verbatim. Construction fails rather than clamping: a subtraction with
// operands[0] < operands[1] is an invariant violation at the call site.
func New(a, b uint8, op Op, numWrong int, latestTime time.Duration) (*Problem, error) {
	if numWrong < 0 {
		return nil, fmt.Errorf("negative wrong count %d", numWrong)
	}
	if latestTime < 0 {
		return nil, fmt.Errorf("negative latest time %s", latestTime)
	}

	var answer int
	switch op {
	case OpPlus:
		answer = int(a) + int(b)
	case OpMinus:
		if a < b {
			return nil, fmt.Errorf("%d - %d: %w", a, b, ErrUnderflow)
		}
		answer = int(a) - int(b)
	case OpMultiply:
		answer = int(a) * int(b)
	default:
		return nil, fmt.Errorf("%q: %w", op, ErrUnknownOp)
	}

	return &Problem{
		operands:   [2]uint8{a, b},
		op:         op,
		answer:     answer,
		numWrong:   numWrong,
		latestTime: latestTime,
	}, nil
}

// CheckGuess compares the guess against the answer and updates the
// performance history. It is the only mutator of a Problem.
//
// On a correct guess, elapsed becomes the new latestTime and numWrong is
// decremented by one, but only while it is above 1: a single correct answer
// never erases wrong-answer weight below the floor of 1. On a wrong guess,
// numWrong increments without ceiling and latestTime is untouched.
func (p *Problem) CheckGuess(guess int, elapsed time.Duration) bool {
	if guess == p.answer {
		p.latestTime = elapsed
		if p.numWrong > 1 {
			p.numWrong--
		}
		return true
	}
	p.numWrong++
	return false
}

// Score is the problem's selection weight: monotonically increasing in both
// the wrong count and the latest solve time. Whole seconds only, so two
// solves inside the same second weigh the same.
func (p *Problem) Score() float64 {
	return float64(p.numWrong)*WrongWeight + float64(p.latestTime/time.Second)
}

// String renders the fact as shown to the user, e.g. "4 + 5 = ".
func (p *Problem) String() string {
	return fmt.Sprintf("%d %s %d = ", p.operands[0], p.op.Symbol(), p.operands[1])
}

// Op returns the problem's operator.
func (p *Problem) Op() Op {
	return p.op
}

// Operands returns the operand pair in display order.
func (p *Problem) Operands() [2]uint8 {
	return p.operands
}

// Answer returns the precomputed correct answer.
func (p *Problem) Answer() int {
	return p.answer
}

// NumWrong returns the cumulative wrong count.
func (p *Problem) NumWrong() int {
	return p.numWrong
}

// LatestTime returns the duration of the most recent correct solve.
func (p *Problem) LatestTime() time.Duration {
	return p.latestTime
}
