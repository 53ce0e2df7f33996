package handler

import (
	"sync"

	"anonbot/internal/domain"
	"anonbot/internal/relay"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions. It classifies telebot updates
// into relay events, serializes them per user, and renders the
// machine's reply intents.
type Handler struct {
	bot     *tele.Bot
	machine *relay.Machine
	logger  *zap.Logger

	// Per-user locks so near-simultaneous updates from one user never
	// race the state machine; different users proceed independently
	locks    map[int64]*sync.Mutex
	locksMux sync.Mutex
}

// NewHandler creates a new handler instance
func NewHandler(bot *tele.Bot, machine *relay.Machine, logger *zap.Logger) *Handler {
	return &Handler{
		bot:     bot,
		machine: machine,
		logger:  logger,
		locks:   make(map[int64]*sync.Mutex),
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/cancel", h.handleCancel)
	h.bot.Handle("/reset_channel", h.handleResetChannel)

	// Inline buttons
	h.bot.Handle(&btnSetChannel, h.handleSetChannel)
	h.bot.Handle(tele.OnCallback, h.handleCallback)

	// Plain messages and photos
	h.bot.Handle(tele.OnText, h.handleMessage)
	h.bot.Handle(tele.OnPhoto, h.handleMessage)
}

// dispatch runs one event through the machine under the sender's lock
// and sends the resulting reply
func (h *Handler) dispatch(c tele.Context, ev domain.Event) error {
	lock := h.userLock(ev.UserID)
	lock.Lock()
	reply, err := h.machine.Handle(ev)
	lock.Unlock()

	if err != nil {
		h.logger.Error("Failed to handle event",
			zap.String("kind", string(ev.Kind)),
			zap.Int64("user_id", ev.UserID),
			zap.Error(err),
		)
		return c.Send(msgInternalError)
	}

	if reply.Text == "" {
		return nil
	}
	if reply.ShowMenu {
		return c.Send(reply.Text, mainMenuMarkup())
	}
	return c.Send(reply.Text)
}

// userLock returns the serialization lock for a user, creating it on
// first use
func (h *Handler) userLock(userID int64) *sync.Mutex {
	h.locksMux.Lock()
	defer h.locksMux.Unlock()

	lock, exists := h.locks[userID]
	if !exists {
		lock = &sync.Mutex{}
		h.locks[userID] = lock
	}
	return lock
}

const msgInternalError = "Произошла ошибка. Попробуйте позже."

// Inline keyboard buttons
var btnSetChannel = tele.Btn{
	Unique: "set_channel",
	Text:   "Настроить канал",
}

// mainMenuMarkup returns the keyboard attached to the /start reply
func mainMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(btnSetChannel),
	)
	return menu
}
