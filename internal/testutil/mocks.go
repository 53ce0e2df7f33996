package testutil

import (
	"time"

	"anonbot/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockChannelRepository is a mock for repository.ChannelRepository
type MockChannelRepository struct {
	mock.Mock
}

func (m *MockChannelRepository) Set(userID, channelID int64, title string) error {
	args := m.Called(userID, channelID, title)
	return args.Error(0)
}

func (m *MockChannelRepository) Clear(userID int64) (bool, error) {
	args := m.Called(userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockChannelRepository) Get(userID int64) (int64, bool, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Bool(1), args.Error(2)
}

// MockSessionRepository is a mock for repository.SessionRepository
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Get(userID int64) (domain.Session, bool, error) {
	args := m.Called(userID)
	return args.Get(0).(domain.Session), args.Bool(1), args.Error(2)
}

func (m *MockSessionRepository) Set(userID int64, session domain.Session) error {
	args := m.Called(userID, session)
	return args.Error(0)
}

func (m *MockSessionRepository) Clear(userID int64) (bool, error) {
	args := m.Called(userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSessionRepository) PruneStale(maxAge time.Duration) (int, error) {
	args := m.Called(maxAge)
	return args.Int(0), args.Error(1)
}

// MockTransport is a mock for relay.Transport
type MockTransport struct {
	mock.Mock
}

func (m *MockTransport) Send(chatID int64, text string) error {
	args := m.Called(chatID, text)
	return args.Error(0)
}

func (m *MockTransport) SendPhoto(chatID int64, fileID, caption string) error {
	args := m.Called(chatID, fileID, caption)
	return args.Error(0)
}
