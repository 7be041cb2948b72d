package store

import (
	"context"
	"testing"
	"time"

	"github.com/abhisek/mathdrill/internal/problem"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func testCatalog(t *testing.T) problem.Catalog {
	t.Helper()
	var c problem.Catalog
	for _, spec := range []struct {
		a, b     uint8
		op       problem.Op
		numWrong int
		latest   time.Duration
	}{
		{4, 5, problem.OpPlus, 0, 5 * time.Second},
		{9, 3, problem.OpMinus, 2, 10 * time.Second},
		{3, 3, problem.OpMultiply, 1, 15 * time.Second},
	} {
		p, err := problem.New(spec.a, spec.b, spec.op, spec.numWrong, spec.latest)
		if err != nil {
			t.Fatal(err)
		}
		c = append(c, p)
	}
	return c
}

func TestProblemRepo_RoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProblemRepo()
	ctx := context.Background()

	// Empty store yields an empty catalog, not an error.
	loaded, err := repo.LoadAll(ctx)
	if err != nil {
		t.Fatalf("load (empty): %v", err)
	}
	if len(loaded) != 0 {
		t.Fatalf("expected empty catalog, got %d problems", len(loaded))
	}

	want := testCatalog(t)
	if err := repo.ReplaceAll(ctx, want); err != nil {
		t.Fatalf("replace: %v", err)
	}

	loaded, err = repo.LoadAll(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(loaded) != len(want) {
		t.Fatalf("loaded %d problems, want %d", len(loaded), len(want))
	}

	for i, p := range loaded {
		w := want[i]
		if p.String() != w.String() || p.Answer() != w.Answer() {
			t.Errorf("problem %d: %q answer %d, want %q answer %d", i, p, p.Answer(), w, w.Answer())
		}
		if p.NumWrong() != w.NumWrong() {
			t.Errorf("problem %d: NumWrong = %d, want %d", i, p.NumWrong(), w.NumWrong())
		}
		if p.LatestTime() != w.LatestTime() {
			t.Errorf("problem %d: LatestTime = %s, want %s", i, p.LatestTime(), w.LatestTime())
		}
	}
}

func TestProblemRepo_ReplaceAllIsWholesale(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProblemRepo()
	ctx := context.Background()

	if err := repo.ReplaceAll(ctx, testCatalog(t)); err != nil {
		t.Fatal(err)
	}

	p, err := problem.New(1, 1, problem.OpPlus, 0, time.Second)
	if err != nil {
		t.Fatal(err)
	}
	if err := repo.ReplaceAll(ctx, problem.Catalog{p}); err != nil {
		t.Fatal(err)
	}

	n, err := repo.Count(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("count after replace = %d, want 1", n)
	}
}

func TestProblemRepo_Append(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProblemRepo()
	ctx := context.Background()

	if err := repo.ReplaceAll(ctx, testCatalog(t)); err != nil {
		t.Fatal(err)
	}

	batch := problem.AddMultiplication(nil)
	if err := repo.Append(ctx, batch); err != nil {
		t.Fatalf("append: %v", err)
	}

	loaded, err := repo.LoadAll(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded) != 3+len(batch) {
		t.Fatalf("loaded %d problems, want %d", len(loaded), 3+len(batch))
	}
	// Appended problems keep their order after the original tail.
	if loaded[3].String() != batch[0].String() {
		t.Errorf("first appended problem = %q, want %q", loaded[3], batch[0])
	}
}

func TestProblemRepo_SaveResult(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProblemRepo()
	ctx := context.Background()

	catalog := testCatalog(t)
	if err := repo.ReplaceAll(ctx, catalog); err != nil {
		t.Fatal(err)
	}

	// Miss once, then persist.
	catalog[0].CheckGuess(-1, time.Second)
	if err := repo.SaveResult(ctx, 0, catalog[0]); err != nil {
		t.Fatalf("save result: %v", err)
	}

	loaded, err := repo.LoadAll(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if loaded[0].NumWrong() != 1 {
		t.Errorf("NumWrong = %d, want 1", loaded[0].NumWrong())
	}

	// Positions outside the stored catalog are an error, not a silent no-op.
	if err := repo.SaveResult(ctx, 99, catalog[0]); err == nil {
		t.Error("expected error for unknown position")
	}
}

func TestEventRepo_AppendAndAggregate(t *testing.T) {
	s := openTestStore(t)
	events := s.EventRepo()
	ctx := context.Background()

	if err := events.AppendSession(ctx, SessionEventData{SessionID: "s1", Action: "start"}); err != nil {
		t.Fatalf("append session: %v", err)
	}

	attempts := []AnswerEventData{
		{SessionID: "s1", ProblemText: "4 + 5 = ", Operator: "+", CorrectAnswer: 9, Guess: 9, Correct: true, TimeMs: 1500},
		{SessionID: "s1", ProblemText: "4 + 5 = ", Operator: "+", CorrectAnswer: 9, Guess: 8, Correct: false, TimeMs: 2500},
		{SessionID: "s1", ProblemText: "9 - 3 = ", Operator: "-", CorrectAnswer: 6, Guess: 6, Correct: true, TimeMs: 3000},
	}
	for _, a := range attempts {
		if err := events.AppendAnswer(ctx, a); err != nil {
			t.Fatalf("append answer: %v", err)
		}
	}

	stats, err := events.OperatorStats(ctx)
	if err != nil {
		t.Fatalf("operator stats: %v", err)
	}

	plus := stats["+"]
	if plus.Attempts != 2 || plus.Correct != 1 {
		t.Errorf("+ stats = %d attempts / %d correct, want 2 / 1", plus.Attempts, plus.Correct)
	}
	if plus.Accuracy() != 0.5 {
		t.Errorf("+ accuracy = %v, want 0.5", plus.Accuracy())
	}
	if plus.MeanTimeMs != 2000 {
		t.Errorf("+ mean time = %v, want 2000", plus.MeanTimeMs)
	}

	minus := stats["-"]
	if minus.Attempts != 1 || minus.Correct != 1 {
		t.Errorf("- stats = %d attempts / %d correct, want 1 / 1", minus.Attempts, minus.Correct)
	}

	n, err := events.SessionCount(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("session count = %d, want 1", n)
	}
}
