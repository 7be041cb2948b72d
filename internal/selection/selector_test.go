package selection

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/abhisek/mathdrill/internal/problem"
)

// fixedSource returns a predetermined absolute pick regardless of max.
type fixedSource struct {
	pick float64
}

func (s fixedSource) Uniform(max float64) float64 {
	if s.pick > max {
		return max
	}
	return s.pick
}

// maxSource always returns the inclusive upper bound of the interval.
type maxSource struct{}

func (maxSource) Uniform(max float64) float64 { return max }

func mustProblem(t *testing.T, numWrong int, latest time.Duration) *problem.Problem {
	t.Helper()
	p, err := problem.New(7, 6, problem.OpPlus, numWrong, latest)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func threeProblemCatalog(t *testing.T) problem.Catalog {
	t.Helper()
	// Scores 930, 320, 155; total 1405.
	return problem.Catalog{
		mustProblem(t, 30, 30*time.Second),
		mustProblem(t, 10, 20*time.Second),
		mustProblem(t, 5, 5*time.Second),
	}
}

func TestSelect_EmptyCatalog(t *testing.T) {
	_, err := Select(NewSource(1), nil)
	if !errors.Is(err, ErrEmptyCatalog) {
		t.Errorf("err = %v, want ErrEmptyCatalog", err)
	}
}

func TestSelect_SingleProblem(t *testing.T) {
	catalog := problem.Catalog{mustProblem(t, 0, 5*time.Second)}

	src := NewSource(42)
	for i := 0; i < 1000; i++ {
		idx, err := Select(src, catalog)
		if err != nil {
			t.Fatal(err)
		}
		if idx != 0 {
			t.Fatalf("Select = %d, want 0", idx)
		}
	}
}

func TestSelect_IndexAlwaysInRange(t *testing.T) {
	catalog := threeProblemCatalog(t)

	src := NewSource(7)
	for i := 0; i < 10000; i++ {
		idx, err := Select(src, catalog)
		if err != nil {
			t.Fatal(err)
		}
		if idx < 0 || idx >= len(catalog) {
			t.Fatalf("Select = %d, out of range [0, %d)", idx, len(catalog))
		}
	}
}

func TestSelect_PickAtTotalSelectsLastProblem(t *testing.T) {
	catalog := threeProblemCatalog(t)

	// The draw interval is closed: a pick of exactly the score total must
	// land on the last problem by cumulative-sum semantics, not fall off
	// the end or wrap to an exclusive bound.
	idx, err := Select(maxSource{}, catalog)
	if err != nil {
		t.Fatal(err)
	}
	if idx != len(catalog)-1 {
		t.Errorf("Select at pick == total = %d, want %d", idx, len(catalog)-1)
	}
}

func TestSelect_PickZeroSelectsFirstProblem(t *testing.T) {
	catalog := threeProblemCatalog(t)

	idx, err := Select(fixedSource{pick: 0}, catalog)
	if err != nil {
		t.Fatal(err)
	}
	if idx != 0 {
		t.Errorf("Select at pick == 0 = %d, want 0", idx)
	}
}

func TestSelect_CumulativeBoundaries(t *testing.T) {
	catalog := threeProblemCatalog(t)

	cases := []struct {
		pick float64
		want int
	}{
		{0, 0},
		{929, 0},
		{930, 0},   // running sum reaches 930 at index 0
		{930.5, 1}, // just past the first problem's span
		{1250, 1},
		{1250.5, 2},
		{1405, 2},
	}

	for _, tc := range cases {
		idx, err := Select(fixedSource{pick: tc.pick}, catalog)
		if err != nil {
			t.Fatal(err)
		}
		if idx != tc.want {
			t.Errorf("Select(pick=%v) = %d, want %d", tc.pick, idx, tc.want)
		}
	}
}

func TestSelect_ZeroTotalScore(t *testing.T) {
	// Seeded catalogs always carry positive durations, but a zero total
	// must still collapse the draw to index 0 without faulting.
	catalog := problem.Catalog{
		mustProblem(t, 0, 0),
		mustProblem(t, 0, 0),
	}

	idx, err := Select(NewSource(3), catalog)
	if err != nil {
		t.Fatal(err)
	}
	if idx != 0 {
		t.Errorf("Select with zero total = %d, want 0", idx)
	}
}

func TestSelect_Distribution(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping statistical test in short mode")
	}

	catalog := threeProblemCatalog(t)
	total := catalog.TotalScore()

	const draws = 1_000_000
	counts := make([]int, len(catalog))
	src := NewSource(20260828)

	for i := 0; i < draws; i++ {
		idx, err := Select(src, catalog)
		if err != nil {
			t.Fatal(err)
		}
		counts[idx]++
	}

	// Empirical frequency must converge on score/total within one
	// percentage point: roughly 66% / 23% / 11% for this catalog.
	for i, p := range catalog {
		want := p.Score() / total
		got := float64(counts[i]) / draws
		if math.Abs(got-want) > 0.01 {
			t.Errorf("problem %d frequency = %.4f, want %.4f ± 0.01", i, got, want)
		}
	}
}

func TestSelect_DoesNotMutateCatalog(t *testing.T) {
	catalog := threeProblemCatalog(t)
	before := make([]float64, len(catalog))
	for i, p := range catalog {
		before[i] = p.Score()
	}

	src := NewSource(11)
	for i := 0; i < 100; i++ {
		if _, err := Select(src, catalog); err != nil {
			t.Fatal(err)
		}
	}

	for i, p := range catalog {
		if p.Score() != before[i] {
			t.Errorf("problem %d score changed: %v -> %v", i, before[i], p.Score())
		}
	}
}
