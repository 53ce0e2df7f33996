package handler

import (
	tele "gopkg.in/telebot.v3"
)

// Sender implements relay.Transport on the Telegram bot API
type Sender struct {
	bot *tele.Bot
}

// NewSender creates a transport backed by the given bot
func NewSender(bot *tele.Bot) *Sender {
	return &Sender{bot: bot}
}

// Send delivers a text message to a chat or channel
func (s *Sender) Send(chatID int64, text string) error {
	_, err := s.bot.Send(&tele.Chat{ID: chatID}, text, tele.ModeHTML)
	return err
}

// SendPhoto delivers a photo with a caption to a chat or channel
func (s *Sender) SendPhoto(chatID int64, fileID, caption string) error {
	photo := &tele.Photo{
		File:    tele.File{FileID: fileID},
		Caption: caption,
	}
	_, err := s.bot.Send(&tele.Chat{ID: chatID}, photo, tele.ModeHTML)
	return err
}
