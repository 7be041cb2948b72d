package drill

import "time"

// questionReadyMsg is sent when the next problem has been drawn.
type questionReadyMsg struct {
	Err error
}

// timerTickMsg is sent every second to update the elapsed display.
type timerTickMsg time.Time

// feedbackDoneMsg is sent when the correct-answer pause ends.
type feedbackDoneMsg struct{}

// drillEndMsg is sent to trigger the end-of-drill flow.
type drillEndMsg struct{}
