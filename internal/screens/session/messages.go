package session

import (
	"time"

	sess "github.com/abhisek/bondten/internal/session"
)

// sessionInitMsg is sent when the snapshot has been loaded and the
// session state is ready.
type sessionInitMsg struct {
	State *sess.SessionState
	Err   error
}

// timerTickMsg is sent every second to advance the elapsed display.
type timerTickMsg time.Time

// feedbackDoneMsg is sent when the learner dismisses the round feedback.
type feedbackDoneMsg struct{}

// sessionEndMsg is sent to trigger the session end flow.
type sessionEndMsg struct{}
