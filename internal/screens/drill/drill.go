package drill

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathdrill/internal/problem"
	"github.com/abhisek/mathdrill/internal/router"
	"github.com/abhisek/mathdrill/internal/screen"
	"github.com/abhisek/mathdrill/internal/screens/summary"
	"github.com/abhisek/mathdrill/internal/selection"
	sess "github.com/abhisek/mathdrill/internal/session"
	"github.com/abhisek/mathdrill/internal/store"
	"github.com/abhisek/mathdrill/internal/ui/components"
	"github.com/abhisek/mathdrill/internal/ui/layout"

	"github.com/google/uuid"
)

// feedbackPause is how long the correct-answer flash stays up before the
// next problem is drawn. Any key skips it.
const feedbackPause = 700 * time.Millisecond

// DrillScreen implements screen.Screen for an active drill.
type DrillScreen struct {
	state    *sess.State
	src      selection.Source
	problems store.ProblemRepo
	events   store.EventRepo
	input    components.TextInput

	// wrongFlash is set after a wrong attempt; the question stays up and
	// the timer keeps running from first display.
	wrongFlash bool

	errMsg string
}

var _ screen.Screen = (*DrillScreen)(nil)
var _ screen.KeyHintProvider = (*DrillScreen)(nil)

// New creates a new DrillScreen with injected dependencies.
func New(catalog problem.Catalog, src selection.Source, problems store.ProblemRepo, events store.EventRepo) *DrillScreen {
	return &DrillScreen{
		state:    sess.NewState(catalog, uuid.New().String()),
		src:      src,
		problems: problems,
		events:   events,
		input:    components.NewTextInput("?", true, 7),
	}
}

func (d *DrillScreen) Init() tea.Cmd {
	if d.events != nil {
		_ = d.events.AppendSession(context.Background(), store.SessionEventData{
			SessionID: d.state.SessionID,
			Action:    "start",
		})
	}
	return tea.Batch(
		d.nextQuestion(),
		d.input.Init(),
		tickCmd(),
	)
}

func (d *DrillScreen) Title() string {
	return "Drill"
}

func (d *DrillScreen) KeyHints() []layout.KeyHint {
	if d.state.ShowingQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "End drill"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if d.state.Phase == sess.PhaseFeedback {
		return []layout.KeyHint{
			{Key: "any key", Description: "Next"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (d *DrillScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionReadyMsg:
		return d.handleQuestionReady(msg)

	case timerTickMsg:
		return d.handleTimerTick()

	case feedbackDoneMsg:
		return d.handleFeedbackDone()

	case drillEndMsg:
		return d.handleDrillEnd()

	case tea.KeyMsg:
		return d.handleKey(msg)
	}

	if d.state.Phase == sess.PhaseActive && !d.state.ShowingQuitConfirm {
		var cmd tea.Cmd
		d.input, cmd = d.input.Update(msg)
		return d, cmd
	}

	return d, nil
}

func (d *DrillScreen) View(width, height int) string {
	if d.errMsg != "" {
		return renderError(width, d.errMsg)
	}
	if d.state.ShowingQuitConfirm {
		return renderQuitConfirm(width)
	}
	if d.state.Phase == sess.PhaseFeedback {
		return d.renderFeedback(width)
	}
	return d.renderQuestionView(width)
}

// nextQuestion draws the next problem from the catalog.
func (d *DrillScreen) nextQuestion() tea.Cmd {
	return func() tea.Msg {
		return questionReadyMsg{Err: sess.NextProblem(d.state, d.src)}
	}
}

func (d *DrillScreen) handleQuestionReady(msg questionReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		d.errMsg = msg.Err.Error()
		return d, nil
	}
	d.wrongFlash = false
	d.input.Reset()
	return d, nil
}

func (d *DrillScreen) handleTimerTick() (screen.Screen, tea.Cmd) {
	if d.state.Phase == sess.PhaseEnding || d.state.Phase == sess.PhaseSummary {
		return d, nil
	}
	d.state.Elapsed = time.Since(d.state.StartTime)
	return d, tickCmd()
}

func (d *DrillScreen) handleFeedbackDone() (screen.Screen, tea.Cmd) {
	if d.state.Phase != sess.PhaseFeedback {
		return d, nil
	}
	d.state.Phase = sess.PhaseActive
	sess.ClearCurrent(d.state)

	if d.state.Done() {
		return d, func() tea.Msg { return drillEndMsg{} }
	}
	return d, d.nextQuestion()
}

func (d *DrillScreen) handleDrillEnd() (screen.Screen, tea.Cmd) {
	d.state.Phase = sess.PhaseEnding
	d.state.Elapsed = time.Since(d.state.StartTime)

	if d.events != nil {
		_ = d.events.AppendSession(context.Background(), store.SessionEventData{
			SessionID:       d.state.SessionID,
			Action:          "end",
			QuestionsServed: d.state.QuestionsServed,
			CorrectAnswers:  d.state.CorrectAttempts,
			DurationSecs:    int(d.state.Elapsed.Seconds()),
		})
	}

	sum := sess.BuildSummary(d.state)
	return d, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(sum)}
	}
}

func (d *DrillScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Error state; any key goes back.
	if d.errMsg != "" {
		return d, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if d.state.ShowingQuitConfirm {
		switch key {
		case "y", "Y":
			d.state.ShowingQuitConfirm = false
			return d, func() tea.Msg { return drillEndMsg{} }
		case "n", "N", "esc":
			d.state.ShowingQuitConfirm = false
			return d, nil
		}
		return d, nil
	}

	if d.state.Phase == sess.PhaseFeedback {
		// Any key skips the pause.
		return d.handleFeedbackDone()
	}

	if d.state.Phase == sess.PhaseActive {
		switch key {
		case "esc":
			d.state.ShowingQuitConfirm = true
			return d, nil
		case "enter":
			return d.submitAnswer()
		}

		var cmd tea.Cmd
		d.input, cmd = d.input.Update(msg)
		return d, cmd
	}

	return d, nil
}

// submitAnswer checks the typed guess against the current problem. Input
// that doesn't parse as an integer is discarded without penalty; the
// question and its timer carry on.
func (d *DrillScreen) submitAnswer() (screen.Screen, tea.Cmd) {
	p := d.state.Current()
	if p == nil {
		return d, nil
	}

	guess, err := d.input.NumericValue()
	if err != nil {
		d.input.Reset()
		return d, nil
	}

	elapsed := time.Since(d.state.QuestionStartTime)
	correct := sess.HandleAnswer(d.state, guess, elapsed)

	d.persistAttempt(p, guess, correct, elapsed)

	if !correct {
		// Same problem stays up; the clock never restarted.
		d.wrongFlash = true
		d.input.Reset()
		return d, nil
	}

	d.wrongFlash = false
	d.state.Phase = sess.PhaseFeedback
	return d, tea.Tick(feedbackPause, func(time.Time) tea.Msg {
		return feedbackDoneMsg{}
	})
}

// persistAttempt writes the answer event and the problem's updated record.
// Persistence failures never interrupt the drill.
func (d *DrillScreen) persistAttempt(p *problem.Problem, guess int, correct bool, elapsed time.Duration) {
	ctx := context.Background()
	if d.events != nil {
		_ = d.events.AppendAnswer(ctx, store.AnswerEventData{
			SessionID:     d.state.SessionID,
			ProblemText:   p.String(),
			Operator:      string(p.Op()),
			CorrectAnswer: p.Answer(),
			Guess:         guess,
			Correct:       correct,
			TimeMs:        elapsed.Milliseconds(),
		})
	}
	if d.problems != nil {
		_ = d.problems.SaveResult(ctx, d.state.CurrentIndex, p)
	}
}

// tickCmd schedules the next one-second timer tick.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
