package memory

import "sync"

type channelShard struct {
	mu       sync.RWMutex
	channels map[int64]int64
}

// ChannelStore is the in-memory ChannelRepository
type ChannelStore struct {
	shards [shardCount]*channelShard
}

// NewChannelStore creates an empty channel store
func NewChannelStore() *ChannelStore {
	s := &ChannelStore{}
	for i := range s.shards {
		s.shards[i] = &channelShard{channels: make(map[int64]int64)}
	}
	return s
}

// Set overwrites the user's channel override. The title is accepted
// for interface parity with the durable store but not kept.
func (s *ChannelStore) Set(userID, channelID int64, title string) error {
	shard := s.shards[shardFor(userID)]
	shard.mu.Lock()
	defer shard.mu.Unlock()

	shard.channels[userID] = channelID
	return nil
}

// Clear removes the override; reports whether one existed
func (s *ChannelStore) Clear(userID int64) (bool, error) {
	shard := s.shards[shardFor(userID)]
	shard.mu.Lock()
	defer shard.mu.Unlock()

	_, existed := shard.channels[userID]
	delete(shard.channels, userID)
	return existed, nil
}

// Get returns the configured channel id, if any
func (s *ChannelStore) Get(userID int64) (int64, bool, error) {
	shard := s.shards[shardFor(userID)]
	shard.mu.RLock()
	defer shard.mu.RUnlock()

	channelID, ok := shard.channels[userID]
	return channelID, ok, nil
}
