package problem

import (
	"testing"
	"time"
)

func TestAddAddition(t *testing.T) {
	c := AddAddition(nil)

	// 15 x values, 14 y values, reversed pair added whenever x != y.
	// y ranges over 0..13 while x over 1..15, so 13 pairs have x == y.
	want := 15*14*2 - 13
	if len(c) != want {
		t.Errorf("len = %d, want %d", len(c), want)
	}

	for _, p := range c {
		if p.Op() != OpPlus {
			t.Fatalf("unexpected operator %q", p.Op())
		}
		if p.LatestTime() != AdditionSeedTime {
			t.Fatalf("seed time = %s, want %s", p.LatestTime(), AdditionSeedTime)
		}
		if p.NumWrong() != 0 {
			t.Fatalf("seed wrong count = %d, want 0", p.NumWrong())
		}
	}
}

func TestAddSubtraction_NonNegativeOnly(t *testing.T) {
	c := AddSubtraction(nil)

	if len(c) == 0 {
		t.Fatal("empty subtraction catalog")
	}
	for _, p := range c {
		if p.Op() != OpMinus {
			t.Fatalf("unexpected operator %q", p.Op())
		}
		if p.Answer() < 0 {
			t.Fatalf("negative answer for %s", p)
		}
		ops := p.Operands()
		if ops[0] <= ops[1] {
			t.Fatalf("operand order violated: %s", p)
		}
	}
}

func TestAddMultiplication(t *testing.T) {
	c := AddMultiplication(nil)

	if len(c) != 15 {
		t.Errorf("len = %d, want 15", len(c))
	}
	for _, p := range c {
		if p.Op() != OpMultiply {
			t.Fatalf("unexpected operator %q", p.Op())
		}
		if p.LatestTime() != MultiplicationSeedTime {
			t.Fatalf("seed time = %s", p.LatestTime())
		}
	}
}

func TestNewDefaultCatalog(t *testing.T) {
	c := NewDefaultCatalog()

	ops := c.Ops()
	if len(ops) != 3 {
		t.Fatalf("Ops() = %v, want all three operators", ops)
	}

	// Seed durations are strictly positive, so the resting catalog can
	// never degenerate to a zero total score.
	if c.TotalScore() <= 0 {
		t.Errorf("TotalScore = %v, want > 0", c.TotalScore())
	}
}

func TestCatalog_AppendingKeepsDuplicates(t *testing.T) {
	c := AddMultiplication(nil)
	c = AddMultiplication(c)

	if len(c) != 30 {
		t.Errorf("len = %d, want 30 (duplicates are kept)", len(c))
	}
}

func TestCatalog_TotalScore(t *testing.T) {
	var c Catalog
	for _, spec := range []struct {
		numWrong int
		latest   time.Duration
	}{
		{30, 30 * time.Second},
		{10, 20 * time.Second},
		{5, 5 * time.Second},
	} {
		p, err := New(7, 6, OpPlus, spec.numWrong, spec.latest)
		if err != nil {
			t.Fatal(err)
		}
		c = append(c, p)
	}

	if got := c.TotalScore(); got != 1405 {
		t.Errorf("TotalScore = %v, want 1405", got)
	}
}
