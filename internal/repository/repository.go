package repository

import (
	"time"

	"anonbot/internal/domain"
)

// ChannelRepository defines the destination registry: per user, an
// optional channel that replaces their private inbox as the delivery
// target. Absent entry means self-delivery.
type ChannelRepository interface {
	Set(userID, channelID int64, title string) error
	Clear(userID int64) (bool, error)
	Get(userID int64) (int64, bool, error)
}

// SessionRepository tracks at most one conversational session per user
type SessionRepository interface {
	Get(userID int64) (domain.Session, bool, error)
	Set(userID int64, session domain.Session) error
	Clear(userID int64) (bool, error)
	PruneStale(maxAge time.Duration) (int, error)
}
