package testutil

import (
	"time"

	"anonbot/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestSession creates a session in the given state
func NewTestSession(state domain.SessionState, recipientID int64) domain.Session {
	return domain.Session{
		State:       state,
		RecipientID: recipientID,
		UpdatedAt:   time.Now(),
	}
}

// TextEvent creates a plain-text content event
func TextEvent(userID int64, text string) domain.Event {
	return domain.Event{
		Kind:    domain.EventContent,
		UserID:  userID,
		Content: domain.Content{Text: text},
	}
}

// PhotoEvent creates a photo content event
func PhotoEvent(userID int64, fileID, caption string) domain.Event {
	return domain.Event{
		Kind:   domain.EventContent,
		UserID: userID,
		Content: domain.Content{
			Images:  []string{fileID},
			Caption: caption,
		},
	}
}
