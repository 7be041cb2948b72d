package session

import (
	"errors"
	"testing"
	"time"

	"github.com/abhisek/mathdrill/internal/problem"
	"github.com/abhisek/mathdrill/internal/selection"
)

func smallCatalog(t *testing.T) problem.Catalog {
	t.Helper()
	var c problem.Catalog
	for _, spec := range []struct {
		a, b uint8
		op   problem.Op
	}{
		{4, 5, problem.OpPlus},
		{9, 3, problem.OpMinus},
		{3, 3, problem.OpMultiply},
	} {
		p, err := problem.New(spec.a, spec.b, spec.op, 0, 5*time.Second)
		if err != nil {
			t.Fatal(err)
		}
		c = append(c, p)
	}
	return c
}

func TestNewState(t *testing.T) {
	s := NewState(smallCatalog(t), "test-session")

	if s.Current() != nil {
		t.Error("new session should have no current problem")
	}
	if len(s.OpsSeen) != 3 {
		t.Errorf("OpsSeen has %d operators, want 3", len(s.OpsSeen))
	}
	if s.AllOpsSeen() {
		t.Error("no operator should be seen yet")
	}
	if s.Done() {
		t.Error("fresh session must not be done")
	}
}

func TestNextProblem(t *testing.T) {
	s := NewState(smallCatalog(t), "test-session")
	src := selection.NewSource(1)

	if err := NextProblem(s, src); err != nil {
		t.Fatal(err)
	}

	if s.Current() == nil {
		t.Fatal("no current problem after NextProblem")
	}
	if s.QuestionsServed != 1 {
		t.Errorf("QuestionsServed = %d, want 1", s.QuestionsServed)
	}
	if !s.OpsSeen[s.Current().Op()] {
		t.Error("presented operator not marked seen")
	}
}

func TestNextProblem_EmptyCatalog(t *testing.T) {
	s := NewState(nil, "test-session")

	err := NextProblem(s, selection.NewSource(1))
	if !errors.Is(err, selection.ErrEmptyCatalog) {
		t.Errorf("err = %v, want ErrEmptyCatalog", err)
	}
}

func TestHandleAnswer_Correct(t *testing.T) {
	s := NewState(smallCatalog(t), "test-session")
	s.CurrentIndex = 0 // 4 + 5

	ok := HandleAnswer(s, 9, time.Second)

	if !ok {
		t.Fatal("HandleAnswer(9) = false, want true")
	}
	if s.CorrectAttempts != 1 || s.WrongAttempts != 0 {
		t.Errorf("attempts = (%d, %d), want (1, 0)", s.CorrectAttempts, s.WrongAttempts)
	}
	if s.FastStreak != 1 {
		t.Errorf("FastStreak = %d, want 1", s.FastStreak)
	}
}

func TestHandleAnswer_SlowCorrectKeepsStreak(t *testing.T) {
	s := NewState(smallCatalog(t), "test-session")
	s.CurrentIndex = 0
	s.FastStreak = 4

	ok := HandleAnswer(s, 9, 10*time.Second)

	if !ok {
		t.Fatal("HandleAnswer(9) = false, want true")
	}
	if s.FastStreak != 4 {
		t.Errorf("FastStreak = %d, want 4 kept after slow correct answer", s.FastStreak)
	}

	// The streak still only grows on a fast answer.
	HandleAnswer(s, 9, time.Second)
	if s.FastStreak != 5 {
		t.Errorf("FastStreak = %d, want 5 after fast correct answer", s.FastStreak)
	}
}

func TestHandleAnswer_FastThresholdIsWholeSeconds(t *testing.T) {
	s := NewState(smallCatalog(t), "test-session")
	s.CurrentIndex = 0

	// 2.9s truncates to 2 whole seconds, which still counts as fast.
	HandleAnswer(s, 9, 2900*time.Millisecond)

	if s.FastStreak != 1 {
		t.Errorf("FastStreak = %d, want 1 for a 2.9s answer", s.FastStreak)
	}
}

func TestHandleAnswer_WrongResetsStreakAndWeighsProblem(t *testing.T) {
	s := NewState(smallCatalog(t), "test-session")
	s.CurrentIndex = 0
	s.FastStreak = 4
	before := s.Current().Score()

	ok := HandleAnswer(s, 99, time.Second)

	if ok {
		t.Fatal("HandleAnswer(99) = true, want false")
	}
	if s.FastStreak != 0 {
		t.Errorf("FastStreak = %d, want 0", s.FastStreak)
	}
	if s.WrongAttempts != 1 {
		t.Errorf("WrongAttempts = %d, want 1", s.WrongAttempts)
	}
	if s.Current().Score() <= before {
		t.Errorf("score did not increase after wrong answer: %v -> %v", before, s.Current().Score())
	}
}

func TestDone_QuestionCap(t *testing.T) {
	s := NewState(smallCatalog(t), "test-session")

	s.QuestionsServed = MaxQuestions

	if !s.Done() {
		t.Error("session at question cap should be done")
	}
}

func TestDone_FastStreakRequiresAllOpsSeen(t *testing.T) {
	s := NewState(smallCatalog(t), "test-session")
	s.FastStreak = FastStreakTarget

	if s.Done() {
		t.Error("fast streak alone must not finish the session while operators are unseen")
	}

	for op := range s.OpsSeen {
		s.OpsSeen[op] = true
	}

	if !s.Done() {
		t.Error("fast streak with all operators seen should finish the session")
	}
}

func TestDrillLoop_EndToEnd(t *testing.T) {
	s := NewState(smallCatalog(t), "test-session")
	src := selection.NewSource(99)

	for !s.Done() {
		if err := NextProblem(s, src); err != nil {
			t.Fatal(err)
		}
		// Always answer correctly and fast.
		if !HandleAnswer(s, s.Current().Answer(), time.Second) {
			t.Fatal("correct answer rejected")
		}
		ClearCurrent(s)
	}

	if s.QuestionsServed > MaxQuestions {
		t.Errorf("served %d questions, cap is %d", s.QuestionsServed, MaxQuestions)
	}
	if s.QuestionsServed == 0 {
		t.Error("no questions served")
	}
}

func TestBuildSummary(t *testing.T) {
	s := NewState(smallCatalog(t), "test-session")
	s.QuestionsServed = 8
	s.CorrectAttempts = 6
	s.WrongAttempts = 2
	s.Elapsed = 90 * time.Second

	sum := BuildSummary(s)

	if sum.Accuracy != 0.75 {
		t.Errorf("Accuracy = %v, want 0.75", sum.Accuracy)
	}
	if sum.QuestionsServed != 8 {
		t.Errorf("QuestionsServed = %d, want 8", sum.QuestionsServed)
	}
	if len(sum.Heaviest) != 3 {
		t.Errorf("Heaviest has %d entries, want full catalog of 3", len(sum.Heaviest))
	}
}

func TestBuildSummary_HeaviestOrdering(t *testing.T) {
	catalog := smallCatalog(t)
	// Make the subtraction fact the heaviest.
	catalog[1].CheckGuess(-1, time.Second)
	catalog[1].CheckGuess(-1, time.Second)

	s := NewState(catalog, "test-session")
	want := make(problem.Catalog, len(catalog))
	copy(want, catalog)

	sum := BuildSummary(s)

	if len(sum.Heaviest) == 0 || sum.Heaviest[0] != want[1] {
		t.Error("heaviest problem should lead the summary list")
	}
	for i := 1; i < len(sum.Heaviest); i++ {
		if sum.Heaviest[i-1].Score() < sum.Heaviest[i].Score() {
			t.Errorf("Heaviest not sorted at %d", i)
		}
	}

	// The catalog's own order is selection order and must survive intact.
	for i, p := range s.Catalog {
		if p != want[i] {
			t.Errorf("catalog order disturbed at %d", i)
		}
	}
}

func TestBuildSummary_NoAttempts(t *testing.T) {
	s := NewState(smallCatalog(t), "test-session")

	sum := BuildSummary(s)

	if sum.Accuracy != 0 {
		t.Errorf("Accuracy = %v, want 0 with no attempts", sum.Accuracy)
	}
}
