package handler

import (
	"strings"

	"anonbot/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start, passing along any deep-link payload
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("User started bot",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	return h.dispatch(c, domain.Event{
		Kind:    domain.EventStart,
		UserID:  userID,
		Payload: c.Message().Payload,
	})
}

// handleCancel handles /cancel
func (h *Handler) handleCancel(c tele.Context) error {
	return h.dispatch(c, domain.Event{
		Kind:   domain.EventCancel,
		UserID: c.Sender().ID,
	})
}

// handleResetChannel handles /reset_channel
func (h *Handler) handleResetChannel(c tele.Context) error {
	return h.dispatch(c, domain.Event{
		Kind:   domain.EventResetChannel,
		UserID: c.Sender().ID,
	})
}

// handleSetChannel handles the configure-channel inline button
func (h *Handler) handleSetChannel(c tele.Context) error {
	if c.Callback() != nil {
		if err := c.Respond(); err != nil {
			h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
		}
	}
	return h.dispatch(c, domain.Event{
		Kind:   domain.EventConfigureChannel,
		UserID: c.Sender().ID,
	})
}

// handleCallback catches callbacks whose Unique was stripped by the
// client; everything else is acknowledged and dropped
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		return nil
	}

	data := strings.TrimSpace(callback.Data)
	if callback.Unique == "set_channel" || data == "set_channel" {
		return h.handleSetChannel(c)
	}

	h.logger.Warn("Unhandled callback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
	)
	return c.Respond()
}

// handleMessage handles plain text and photo messages. Registered
// commands never arrive here; command-shaped text that reaches us is
// ordinary content and goes through the machine like anything else.
func (h *Handler) handleMessage(c tele.Context) error {
	msg := c.Message()
	if msg == nil {
		return nil
	}

	return h.dispatch(c, classifyMessage(msg))
}

// classifyMessage turns a raw message into a relay event
func classifyMessage(msg *tele.Message) domain.Event {
	ev := domain.Event{
		UserID:  msg.Sender.ID,
		Content: contentOf(msg),
	}

	if msg.OriginalChat != nil && msg.OriginalChat.Type == tele.ChatChannel {
		ev.Kind = domain.EventChannelForward
		ev.ChannelID = msg.OriginalChat.ID
		ev.ChannelTitle = msg.OriginalChat.Title
		return ev
	}

	if ev.Content.Empty() {
		ev.Kind = domain.EventUnknown
		return ev
	}

	ev.Kind = domain.EventContent
	return ev
}

// contentOf extracts the relayable payload of a message. Telegram
// hands telebot a single photo size per message, already the largest.
func contentOf(msg *tele.Message) domain.Content {
	content := domain.Content{
		Text:    msg.Text,
		Caption: msg.Caption,
	}
	if msg.Photo != nil {
		content.Images = []string{msg.Photo.FileID}
	}
	return content
}
