package relay

import (
	"errors"
	"fmt"
	"strings"

	"anonbot/internal/domain"
	"anonbot/internal/repository"

	"go.uber.org/zap"
)

// firstToken returns the first whitespace-delimited token of a start
// payload, or "" when there is none
func firstToken(payload string) string {
	fields := strings.Fields(payload)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// transition keys the dispatch table by current session state and
// inbound event kind
type transition struct {
	state domain.SessionState
	event domain.EventKind
}

type action func(ev domain.Event, sess domain.Session) (domain.Reply, error)

// Machine is the per-user relay state machine. All routing goes
// through an explicit (state, event) table, so it is independent of
// how the transport registers its handlers. Callers must serialize
// events belonging to the same user; events for different users may
// be handled concurrently.
type Machine struct {
	sessions    repository.SessionRepository
	channels    repository.ChannelRepository
	deliverer   *Deliverer
	botUsername string
	logger      *zap.Logger

	table map[transition]action
}

// NewMachine creates the relay state machine
func NewMachine(
	sessions repository.SessionRepository,
	channels repository.ChannelRepository,
	deliverer *Deliverer,
	botUsername string,
	logger *zap.Logger,
) *Machine {
	m := &Machine{
		sessions:    sessions,
		channels:    channels,
		deliverer:   deliverer,
		botUsername: botUsername,
		logger:      logger,
	}
	m.table = m.buildTable()
	return m
}

func (m *Machine) buildTable() map[transition]action {
	t := make(map[transition]action)

	// Commands are state-independent: /start and the configure button
	// replace whatever flow is active, /cancel and /reset_channel work
	// everywhere
	allStates := []domain.SessionState{
		domain.StateIdle,
		domain.StateAwaitingChannel,
		domain.StateAwaitingMessage,
	}
	for _, state := range allStates {
		t[transition{state, domain.EventStart}] = m.handleStart
		t[transition{state, domain.EventConfigureChannel}] = m.handleConfigureChannel
		t[transition{state, domain.EventCancel}] = m.handleCancel
		t[transition{state, domain.EventResetChannel}] = m.handleResetChannel
	}

	t[transition{domain.StateAwaitingChannel, domain.EventChannelForward}] = m.handleChannelForward
	t[transition{domain.StateAwaitingChannel, domain.EventContent}] = m.handleNotAChannel
	t[transition{domain.StateAwaitingChannel, domain.EventUnknown}] = m.handleNotAChannel

	// A channel post forwarded into an anonymous-message flow still
	// carries text or a photo, so it is relayed as content
	t[transition{domain.StateAwaitingMessage, domain.EventContent}] = m.handleAnonymousContent
	t[transition{domain.StateAwaitingMessage, domain.EventChannelForward}] = m.handleAnonymousContent
	t[transition{domain.StateAwaitingMessage, domain.EventUnknown}] = m.handleNeedContent

	// Idle content and unknown events are ignored: no table entry

	return t
}

// Handle routes one inbound event through the transition table and
// returns the reply intent for the sender. An empty reply means the
// event was ignored.
func (m *Machine) Handle(ev domain.Event) (domain.Reply, error) {
	sess, ok, err := m.sessions.Get(ev.UserID)
	if err != nil {
		return domain.Reply{}, fmt.Errorf("get session: %w", err)
	}
	if !ok || sess.Idle() {
		sess.State = domain.StateIdle
	}

	fn, ok := m.table[transition{sess.State, ev.Kind}]
	if !ok {
		return domain.Reply{}, nil
	}
	return fn(ev, sess)
}

// handleStart handles /start, with or without a deep-link payload.
// Only the first whitespace-delimited token counts; anything after it
// is discarded.
func (m *Machine) handleStart(ev domain.Event, sess domain.Session) (domain.Reply, error) {
	payload := firstToken(ev.Payload)

	if domain.IsAnonPayload(payload) {
		recipientID, err := domain.ParseRecipient(payload)
		if err != nil {
			m.logger.Warn("Malformed deep link",
				zap.Int64("user_id", ev.UserID),
				zap.String("payload", payload),
			)
			return domain.Reply{Text: msgBadDeepLink}, nil
		}

		err = m.sessions.Set(ev.UserID, domain.Session{
			State:       domain.StateAwaitingMessage,
			RecipientID: recipientID,
		})
		if err != nil {
			return domain.Reply{}, fmt.Errorf("set session: %w", err)
		}

		m.logger.Info("Anonymous message flow started",
			zap.Int64("user_id", ev.UserID),
		)
		return domain.Reply{Text: msgAwaitingMessage}, nil
	}

	// Plain /start, or a payload without the anon_ prefix: show the
	// personal link and drop any active flow
	if _, err := m.sessions.Clear(ev.UserID); err != nil {
		return domain.Reply{}, fmt.Errorf("clear session: %w", err)
	}

	link := domain.PersonalLink(m.botUsername, ev.UserID)
	return domain.Reply{
		Text:     fmt.Sprintf(msgStart, link),
		ShowMenu: true,
	}, nil
}

// handleConfigureChannel starts the channel-configuration flow
func (m *Machine) handleConfigureChannel(ev domain.Event, sess domain.Session) (domain.Reply, error) {
	err := m.sessions.Set(ev.UserID, domain.Session{State: domain.StateAwaitingChannel})
	if err != nil {
		return domain.Reply{}, fmt.Errorf("set session: %w", err)
	}
	return domain.Reply{Text: msgConfigureChannel}, nil
}

// handleCancel drops the active flow, if any
func (m *Machine) handleCancel(ev domain.Event, sess domain.Session) (domain.Reply, error) {
	existed, err := m.sessions.Clear(ev.UserID)
	if err != nil {
		return domain.Reply{}, fmt.Errorf("clear session: %w", err)
	}
	if existed {
		return domain.Reply{Text: msgCancelled}, nil
	}
	return domain.Reply{Text: msgNothingToCancel}, nil
}

// handleResetChannel removes the channel override, leaving the
// session state untouched
func (m *Machine) handleResetChannel(ev domain.Event, sess domain.Session) (domain.Reply, error) {
	removed, err := m.channels.Clear(ev.UserID)
	if err != nil {
		return domain.Reply{}, fmt.Errorf("clear channel: %w", err)
	}
	if removed {
		m.logger.Info("Channel override removed", zap.Int64("user_id", ev.UserID))
		return domain.Reply{Text: msgChannelReset}, nil
	}
	return domain.Reply{Text: msgNoChannelConfigured}, nil
}

// handleChannelForward stores the forwarded channel as the user's
// delivery target and ends the flow
func (m *Machine) handleChannelForward(ev domain.Event, sess domain.Session) (domain.Reply, error) {
	if err := m.channels.Set(ev.UserID, ev.ChannelID, ev.ChannelTitle); err != nil {
		return domain.Reply{}, fmt.Errorf("set channel: %w", err)
	}
	if _, err := m.sessions.Clear(ev.UserID); err != nil {
		return domain.Reply{}, fmt.Errorf("clear session: %w", err)
	}

	m.logger.Info("Channel override set",
		zap.Int64("user_id", ev.UserID),
		zap.Int64("channel_id", ev.ChannelID),
		zap.String("title", ev.ChannelTitle),
	)
	return domain.Reply{Text: fmt.Sprintf(msgChannelSet, ev.ChannelTitle)}, nil
}

// handleNotAChannel asks the user to retry with a real channel
// forward; the flow stays active
func (m *Machine) handleNotAChannel(ev domain.Event, sess domain.Session) (domain.Reply, error) {
	return domain.Reply{Text: msgNotAChannel}, nil
}

// handleNeedContent asks for text or a photo; the flow stays active
func (m *Machine) handleNeedContent(ev domain.Event, sess domain.Session) (domain.Reply, error) {
	return domain.Reply{Text: msgNeedContent}, nil
}

// handleAnonymousContent relays the content to the recipient's
// resolved target. The session ends whether delivery succeeds or not:
// a failed anonymous message is never silently retried.
func (m *Machine) handleAnonymousContent(ev domain.Event, sess domain.Session) (domain.Reply, error) {
	if ev.Content.Empty() {
		return domain.Reply{Text: msgNeedContent}, nil
	}

	target, err := m.resolveTarget(sess.RecipientID)
	if err != nil {
		return domain.Reply{}, fmt.Errorf("resolve target: %w", err)
	}

	deliveryErr := m.deliverer.Deliver(target, ev.Content)

	if _, err := m.sessions.Clear(ev.UserID); err != nil {
		return domain.Reply{}, fmt.Errorf("clear session: %w", err)
	}

	if deliveryErr != nil {
		if !errors.Is(deliveryErr, domain.ErrTransportRejected) {
			m.logger.Error("Unexpected delivery error", zap.Error(deliveryErr))
		}
		return domain.Reply{Text: msgDeliveryFailed}, nil
	}

	m.logger.Info("Anonymous message delivered",
		zap.Int64("recipient_id", sess.RecipientID),
		zap.Int64("target", target),
	)
	return domain.Reply{Text: msgSent}, nil
}

// resolveTarget returns the recipient's channel override, or the
// recipient's own chat when none is configured
func (m *Machine) resolveTarget(recipientID int64) (int64, error) {
	channelID, ok, err := m.channels.Get(recipientID)
	if err != nil {
		return 0, err
	}
	if ok {
		return channelID, nil
	}
	return recipientID, nil
}
