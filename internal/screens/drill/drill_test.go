package drill

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathdrill/internal/problem"
	"github.com/abhisek/mathdrill/internal/screen"
	sess "github.com/abhisek/mathdrill/internal/session"
	"github.com/abhisek/mathdrill/internal/store"
)

// mockProblemRepo implements store.ProblemRepo for testing.
type mockProblemRepo struct {
	saved []int
}

func (m *mockProblemRepo) LoadAll(context.Context) (problem.Catalog, error) { return nil, nil }
func (m *mockProblemRepo) ReplaceAll(context.Context, problem.Catalog) error {
	return nil
}
func (m *mockProblemRepo) Append(context.Context, []*problem.Problem) error { return nil }
func (m *mockProblemRepo) SaveResult(_ context.Context, position int, _ *problem.Problem) error {
	m.saved = append(m.saved, position)
	return nil
}
func (m *mockProblemRepo) Count(context.Context) (int, error) { return 0, nil }

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	sessionEvents []store.SessionEventData
	answerEvents  []store.AnswerEventData
}

func (m *mockEventRepo) AppendAnswer(_ context.Context, data store.AnswerEventData) error {
	m.answerEvents = append(m.answerEvents, data)
	return nil
}
func (m *mockEventRepo) AppendSession(_ context.Context, data store.SessionEventData) error {
	m.sessionEvents = append(m.sessionEvents, data)
	return nil
}
func (m *mockEventRepo) OperatorStats(context.Context) (map[string]store.OperatorStats, error) {
	return nil, nil
}
func (m *mockEventRepo) SessionCount(context.Context) (int, error) { return 0, nil }

// firstSource always draws the lowest index.
type firstSource struct{}

func (firstSource) Uniform(float64) float64 { return 0 }

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testCatalog(t *testing.T) problem.Catalog {
	t.Helper()
	p1, err := problem.New(2, 3, problem.OpPlus, 0, 5*time.Second)
	if err != nil {
		t.Fatal(err)
	}
	p2, err := problem.New(4, 4, problem.OpMultiply, 0, 15*time.Second)
	if err != nil {
		t.Fatal(err)
	}
	return problem.Catalog{p1, p2}
}

func testDrillScreen(t *testing.T) (*DrillScreen, *mockProblemRepo, *mockEventRepo) {
	t.Helper()
	problems := &mockProblemRepo{}
	events := &mockEventRepo{}
	d := New(testCatalog(t), firstSource{}, problems, events)
	return d, problems, events
}

// serveQuestion puts the first problem on screen, bypassing Init.
func serveQuestion(d *DrillScreen) {
	d.state.CurrentIndex = 0
	d.state.QuestionsServed = 1
	d.state.OpsSeen[problem.OpPlus] = true
	d.state.QuestionStartTime = time.Now()
}

func TestDrillScreen_Title(t *testing.T) {
	d, _, _ := testDrillScreen(t)
	if d.Title() != "Drill" {
		t.Errorf("Title = %q, want %q", d.Title(), "Drill")
	}
}

func TestDrillScreen_InitRecordsSessionStart(t *testing.T) {
	d, _, events := testDrillScreen(t)
	d.Init()

	if len(events.sessionEvents) != 1 {
		t.Fatalf("session events = %d, want 1", len(events.sessionEvents))
	}
	if events.sessionEvents[0].Action != "start" {
		t.Errorf("action = %q, want %q", events.sessionEvents[0].Action, "start")
	}
}

func TestDrillScreen_QuestionReadyServesProblem(t *testing.T) {
	d, _, _ := testDrillScreen(t)

	var scr screen.Screen = d
	cmd := d.nextQuestion()
	scr, _ = scr.Update(cmd())
	dd := scr.(*DrillScreen)

	if dd.state.Current() == nil {
		t.Fatal("expected a current problem after questionReadyMsg")
	}
	if dd.state.QuestionsServed != 1 {
		t.Errorf("QuestionsServed = %d, want 1", dd.state.QuestionsServed)
	}
}

func TestDrillScreen_CorrectAnswerShowsFeedback(t *testing.T) {
	d, problems, events := testDrillScreen(t)
	serveQuestion(d)

	d.input.Model.SetValue("5")
	var scr screen.Screen = d
	scr, cmd := scr.Update(specialKey(tea.KeyEnter))
	dd := scr.(*DrillScreen)

	if dd.state.Phase != sess.PhaseFeedback {
		t.Error("expected feedback phase after correct answer")
	}
	if !dd.state.LastAnswerCorrect {
		t.Error("expected answer to be correct")
	}
	if cmd == nil {
		t.Error("expected feedback pause command")
	}
	if len(events.answerEvents) != 1 {
		t.Errorf("answer events = %d, want 1", len(events.answerEvents))
	}
	if len(problems.saved) != 1 || problems.saved[0] != 0 {
		t.Errorf("saved positions = %v, want [0]", problems.saved)
	}
}

func TestDrillScreen_WrongAnswerKeepsProblem(t *testing.T) {
	d, _, events := testDrillScreen(t)
	serveQuestion(d)

	d.input.Model.SetValue("9")
	var scr screen.Screen = d
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	dd := scr.(*DrillScreen)

	if dd.state.Phase != sess.PhaseActive {
		t.Error("expected to stay in active phase after wrong answer")
	}
	if dd.state.Current() == nil {
		t.Error("expected same problem to stay current")
	}
	if !dd.wrongFlash {
		t.Error("expected wrong flash")
	}
	if dd.input.Value() != "" {
		t.Errorf("input = %q, want cleared", dd.input.Value())
	}
	if len(events.answerEvents) != 1 {
		t.Errorf("answer events = %d, want 1", len(events.answerEvents))
	}
	if events.answerEvents[0].Correct {
		t.Error("expected recorded event to be incorrect")
	}
}

func TestDrillScreen_EmptyInputNoPenalty(t *testing.T) {
	d, _, events := testDrillScreen(t)
	serveQuestion(d)

	var scr screen.Screen = d
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	dd := scr.(*DrillScreen)

	if dd.state.WrongAttempts != 0 {
		t.Errorf("WrongAttempts = %d, want 0", dd.state.WrongAttempts)
	}
	if len(events.answerEvents) != 0 {
		t.Errorf("answer events = %d, want 0", len(events.answerEvents))
	}
}

func TestDrillScreen_DigitFilter(t *testing.T) {
	d, _, _ := testDrillScreen(t)
	serveQuestion(d)

	var scr screen.Screen = d
	scr, _ = scr.Update(keyPress('x'))
	dd := scr.(*DrillScreen)
	if dd.input.Value() != "" {
		t.Errorf("input = %q, want letters filtered out", dd.input.Value())
	}

	scr, _ = dd.Update(keyPress('7'))
	dd = scr.(*DrillScreen)
	if dd.input.Value() != "7" {
		t.Errorf("input = %q, want %q", dd.input.Value(), "7")
	}
}

func TestDrillScreen_QuitConfirm(t *testing.T) {
	d, _, _ := testDrillScreen(t)
	serveQuestion(d)

	var scr screen.Screen = d
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	dd := scr.(*DrillScreen)
	if !dd.state.ShowingQuitConfirm {
		t.Error("expected quit confirmation dialog")
	}

	scr, _ = dd.Update(keyPress('n'))
	dd = scr.(*DrillScreen)
	if dd.state.ShowingQuitConfirm {
		t.Error("expected quit confirmation to be dismissed")
	}
}

func TestDrillScreen_QuitConfirmYesEndsDrill(t *testing.T) {
	d, _, events := testDrillScreen(t)
	serveQuestion(d)

	var scr screen.Screen = d
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	scr, cmd := scr.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected a command after quit confirmation")
	}

	scr, _ = scr.Update(cmd())
	dd := scr.(*DrillScreen)
	if dd.state.Phase != sess.PhaseEnding {
		t.Error("expected ending phase after confirmed quit")
	}

	var end *store.SessionEventData
	for i := range events.sessionEvents {
		if events.sessionEvents[i].Action == "end" {
			end = &events.sessionEvents[i]
		}
	}
	if end == nil {
		t.Fatal("expected an end session event")
	}
	if end.QuestionsServed != 1 {
		t.Errorf("QuestionsServed = %d, want 1", end.QuestionsServed)
	}
}

func TestDrillScreen_FeedbackDoneDrawsNext(t *testing.T) {
	d, _, _ := testDrillScreen(t)
	serveQuestion(d)
	d.state.Phase = sess.PhaseFeedback

	var scr screen.Screen = d
	scr, cmd := scr.Update(feedbackDoneMsg{})
	dd := scr.(*DrillScreen)

	if dd.state.Phase != sess.PhaseActive {
		t.Error("expected active phase after feedback")
	}
	if dd.state.Current() != nil {
		t.Error("expected current problem cleared before next draw")
	}
	if cmd == nil {
		t.Error("expected next-question command")
	}
}

func TestDrillScreen_FeedbackDoneEndsWhenDone(t *testing.T) {
	d, _, _ := testDrillScreen(t)
	serveQuestion(d)
	d.state.Phase = sess.PhaseFeedback
	d.state.QuestionsServed = sess.MaxQuestions

	var scr screen.Screen = d
	_, cmd := scr.Update(feedbackDoneMsg{})
	if cmd == nil {
		t.Fatal("expected a command when finish criteria met")
	}
	if _, ok := cmd().(drillEndMsg); !ok {
		t.Error("expected drillEndMsg when question cap reached")
	}
}

func TestDrillScreen_View(t *testing.T) {
	d, _, _ := testDrillScreen(t)
	serveQuestion(d)

	view := d.View(80, 24)
	if view == "" {
		t.Error("expected non-empty question view")
	}
}

func TestDrillScreen_KeyHints(t *testing.T) {
	d, _, _ := testDrillScreen(t)
	serveQuestion(d)

	hints := d.KeyHints()
	if len(hints) == 0 {
		t.Error("expected non-empty key hints")
	}
}
