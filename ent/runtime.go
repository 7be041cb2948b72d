// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/mathdrill/ent/answerevent"
	"github.com/abhisek/mathdrill/ent/problem"
	"github.com/abhisek/mathdrill/ent/schema"
	"github.com/abhisek/mathdrill/ent/sessionevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescSessionID is the schema descriptor for session_id field.
	answereventDescSessionID := answereventFields[0].Descriptor()
	// answerevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	answerevent.SessionIDValidator = answereventDescSessionID.Validators[0].(func(string) error)
	// answereventDescProblemText is the schema descriptor for problem_text field.
	answereventDescProblemText := answereventFields[1].Descriptor()
	// answerevent.ProblemTextValidator is a validator for the "problem_text" field. It is called by the builders before save.
	answerevent.ProblemTextValidator = answereventDescProblemText.Validators[0].(func(string) error)
	// answereventDescOperator is the schema descriptor for operator field.
	answereventDescOperator := answereventFields[2].Descriptor()
	// answerevent.OperatorValidator is a validator for the "operator" field. It is called by the builders before save.
	answerevent.OperatorValidator = answereventDescOperator.Validators[0].(func(string) error)
	// answereventDescTimeMs is the schema descriptor for time_ms field.
	answereventDescTimeMs := answereventFields[6].Descriptor()
	// answerevent.TimeMsValidator is a validator for the "time_ms" field. It is called by the builders before save.
	answerevent.TimeMsValidator = answereventDescTimeMs.Validators[0].(func(int64) error)
	problemFields := schema.Problem{}.Fields()
	_ = problemFields
	// problemDescPosition is the schema descriptor for position field.
	problemDescPosition := problemFields[0].Descriptor()
	// problem.PositionValidator is a validator for the "position" field. It is called by the builders before save.
	problem.PositionValidator = problemDescPosition.Validators[0].(func(int) error)
	// problemDescOperator is the schema descriptor for operator field.
	problemDescOperator := problemFields[3].Descriptor()
	// problem.OperatorValidator is a validator for the "operator" field. It is called by the builders before save.
	problem.OperatorValidator = problemDescOperator.Validators[0].(func(string) error)
	// problemDescNumWrong is the schema descriptor for num_wrong field.
	problemDescNumWrong := problemFields[4].Descriptor()
	// problem.NumWrongValidator is a validator for the "num_wrong" field. It is called by the builders before save.
	problem.NumWrongValidator = problemDescNumWrong.Validators[0].(func(int) error)
	// problemDescLatestTimeMs is the schema descriptor for latest_time_ms field.
	problemDescLatestTimeMs := problemFields[5].Descriptor()
	// problem.LatestTimeMsValidator is a validator for the "latest_time_ms" field. It is called by the builders before save.
	problem.LatestTimeMsValidator = problemDescLatestTimeMs.Validators[0].(func(int64) error)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[1].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescQuestionsServed is the schema descriptor for questions_served field.
	sessioneventDescQuestionsServed := sessioneventFields[2].Descriptor()
	// sessionevent.DefaultQuestionsServed holds the default value on creation for the questions_served field.
	sessionevent.DefaultQuestionsServed = sessioneventDescQuestionsServed.Default.(int)
	// sessioneventDescCorrectAnswers is the schema descriptor for correct_answers field.
	sessioneventDescCorrectAnswers := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	sessionevent.DefaultCorrectAnswers = sessioneventDescCorrectAnswers.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
}
