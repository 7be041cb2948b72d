package problem

import (
	"errors"
	"testing"
	"time"
)

func TestNew_ComputesAnswer(t *testing.T) {
	cases := []struct {
		a, b uint8
		op   Op
		want int
	}{
		{7, 3, OpPlus, 10},
		{7, 3, OpMinus, 4},
		{7, 3, OpMultiply, 21},
		{0, 0, OpPlus, 0},
		{15, 13, OpPlus, 28},
		{5, 3, OpMultiply, 15},
	}

	for _, tc := range cases {
		p, err := New(tc.a, tc.b, tc.op, 0, time.Second)
		if err != nil {
			t.Fatalf("New(%d, %d, %q): %v", tc.a, tc.b, tc.op, err)
		}
		if p.Answer() != tc.want {
			t.Errorf("New(%d, %d, %q).Answer() = %d, want %d", tc.a, tc.b, tc.op, p.Answer(), tc.want)
		}
	}
}

func TestNew_SubtractionUnderflow(t *testing.T) {
	_, err := New(3, 7, OpMinus, 0, time.Second)
	if !errors.Is(err, ErrUnderflow) {
		t.Errorf("New(3, 7, OpMinus) err = %v, want ErrUnderflow", err)
	}
}

func TestNew_RejectsUnknownOp(t *testing.T) {
	for _, op := range []Op{OpDivide, Op("%"), Op("")} {
		_, err := New(4, 2, op, 0, time.Second)
		if !errors.Is(err, ErrUnknownOp) {
			t.Errorf("New(4, 2, %q) err = %v, want ErrUnknownOp", op, err)
		}
	}
}

func TestNew_RejectsNegativeHistory(t *testing.T) {
	if _, err := New(1, 1, OpPlus, -1, time.Second); err == nil {
		t.Error("expected error for negative wrong count")
	}
	if _, err := New(1, 1, OpPlus, 0, -time.Second); err == nil {
		t.Error("expected error for negative latest time")
	}
}

func TestCheckGuess_Correct(t *testing.T) {
	p, _ := New(4, 5, OpPlus, 0, 7*time.Second)

	ok := p.CheckGuess(9, 3*time.Second)

	if !ok {
		t.Fatal("CheckGuess(9) = false, want true")
	}
	if p.LatestTime() != 3*time.Second {
		t.Errorf("LatestTime = %s, want 3s", p.LatestTime())
	}
	if p.NumWrong() != 0 {
		t.Errorf("NumWrong = %d, want 0", p.NumWrong())
	}
}

func TestCheckGuess_Wrong(t *testing.T) {
	p, _ := New(4, 5, OpPlus, 0, 7*time.Second)

	ok := p.CheckGuess(10, 3*time.Second)

	if ok {
		t.Fatal("CheckGuess(10) = true, want false")
	}
	if p.LatestTime() != 7*time.Second {
		t.Errorf("LatestTime = %s, want unchanged 7s", p.LatestTime())
	}
	if p.NumWrong() != 1 {
		t.Errorf("NumWrong = %d, want 1", p.NumWrong())
	}
}

func TestCheckGuess_DecrementFloor(t *testing.T) {
	p, _ := New(4, 5, OpPlus, 2, 7*time.Second)

	p.CheckGuess(9, time.Second)
	if p.NumWrong() != 1 {
		t.Fatalf("after first correct answer NumWrong = %d, want 1", p.NumWrong())
	}

	// The floor is 1, not 0: further correct answers leave it alone.
	p.CheckGuess(9, time.Second)
	if p.NumWrong() != 1 {
		t.Errorf("after second correct answer NumWrong = %d, want 1", p.NumWrong())
	}
}

func TestCheckGuess_WrongHasNoCeiling(t *testing.T) {
	p, _ := New(4, 5, OpPlus, 0, time.Second)

	for i := 0; i < 100; i++ {
		p.CheckGuess(-1, time.Second)
	}

	if p.NumWrong() != 100 {
		t.Errorf("NumWrong = %d, want 100", p.NumWrong())
	}
}

func TestScore(t *testing.T) {
	cases := []struct {
		numWrong int
		latest   time.Duration
		want     float64
	}{
		{0, 5 * time.Second, 5},
		{1, 0, 30},
		{30, 30 * time.Second, 930},
		{10, 20 * time.Second, 320},
		{5, 5 * time.Second, 155},
		// Sub-second remainders are truncated.
		{0, 2500 * time.Millisecond, 2},
	}

	for _, tc := range cases {
		p, err := New(1, 1, OpPlus, tc.numWrong, tc.latest)
		if err != nil {
			t.Fatal(err)
		}
		if got := p.Score(); got != tc.want {
			t.Errorf("Score(numWrong=%d, latest=%s) = %v, want %v", tc.numWrong, tc.latest, got, tc.want)
		}
	}
}

func TestScore_MonotonicInWrongCount(t *testing.T) {
	p, _ := New(4, 5, OpPlus, 0, 5*time.Second)
	prev := p.Score()

	for i := 0; i < 5; i++ {
		p.CheckGuess(-1, time.Second)
		if p.Score() <= prev {
			t.Fatalf("score did not increase after wrong answer: %v -> %v", prev, p.Score())
		}
		prev = p.Score()
	}
}

func TestString(t *testing.T) {
	cases := []struct {
		a, b uint8
		op   Op
		want string
	}{
		{4, 5, OpPlus, "4 + 5 = "},
		{7, 3, OpMinus, "7 - 3 = "},
		{5, 3, OpMultiply, "5 x 3 = "},
	}

	for _, tc := range cases {
		p, _ := New(tc.a, tc.b, tc.op, 0, time.Second)
		if got := p.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}
