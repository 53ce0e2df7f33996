package memory

import (
	"sync"
	"time"

	"anonbot/internal/domain"
)

// shardCount splits the maps so updates for different users rarely
// contend; sessions and channels are always accessed by user id
const shardCount = 16

func shardFor(userID int64) int {
	if userID < 0 {
		userID = -userID
	}
	return int(userID % shardCount)
}

type sessionShard struct {
	mu       sync.RWMutex
	sessions map[int64]domain.Session
}

// SessionStore is the in-memory SessionRepository. State lives only
// for the process lifetime.
type SessionStore struct {
	shards [shardCount]*sessionShard
}

// NewSessionStore creates an empty session store
func NewSessionStore() *SessionStore {
	s := &SessionStore{}
	for i := range s.shards {
		s.shards[i] = &sessionShard{sessions: make(map[int64]domain.Session)}
	}
	return s
}

// Get returns the user's session, if any
func (s *SessionStore) Get(userID int64) (domain.Session, bool, error) {
	shard := s.shards[shardFor(userID)]
	shard.mu.RLock()
	defer shard.mu.RUnlock()

	session, ok := shard.sessions[userID]
	return session, ok, nil
}

// Set replaces the user's session unconditionally (last-writer-wins)
func (s *SessionStore) Set(userID int64, session domain.Session) error {
	session.UpdatedAt = time.Now()

	shard := s.shards[shardFor(userID)]
	shard.mu.Lock()
	defer shard.mu.Unlock()

	shard.sessions[userID] = session
	return nil
}

// Clear removes the user's session; reports whether one existed
func (s *SessionStore) Clear(userID int64) (bool, error) {
	shard := s.shards[shardFor(userID)]
	shard.mu.Lock()
	defer shard.mu.Unlock()

	_, existed := shard.sessions[userID]
	delete(shard.sessions, userID)
	return existed, nil
}

// PruneStale drops sessions not touched within maxAge and returns how
// many were removed
func (s *SessionStore) PruneStale(maxAge time.Duration) (int, error) {
	cutoff := time.Now().Add(-maxAge)
	removed := 0

	for _, shard := range s.shards {
		shard.mu.Lock()
		for userID, session := range shard.sessions {
			if session.UpdatedAt.Before(cutoff) {
				delete(shard.sessions, userID)
				removed++
			}
		}
		shard.mu.Unlock()
	}

	return removed, nil
}
