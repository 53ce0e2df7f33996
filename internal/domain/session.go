package domain

import "time"

// SessionState represents user's current interaction state
type SessionState string

const (
	StateIdle            SessionState = "idle"
	StateAwaitingChannel SessionState = "awaiting_channel"
	StateAwaitingMessage SessionState = "awaiting_message"
)

// Session holds temporary data for user's current state.
// A user has at most one session; starting a new flow replaces it.
type Session struct {
	State       SessionState
	RecipientID int64 // set only in StateAwaitingMessage
	UpdatedAt   time.Time
}

// Idle reports whether the session carries no active flow
func (s Session) Idle() bool {
	return s.State == "" || s.State == StateIdle
}
