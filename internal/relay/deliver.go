package relay

import (
	"fmt"

	"anonbot/internal/domain"

	"go.uber.org/zap"
)

// Transport is the outbound side of the messaging gateway
type Transport interface {
	Send(chatID int64, text string) error
	SendPhoto(chatID int64, fileID, caption string) error
}

const (
	banner         = "📨 <b>Анонимное сообщение</b>"
	bannerWithBody = "📨 <b>Анонимное сообщение:</b>\n\n"
)

// Deliverer performs transport-level delivery of anonymous content.
// A single synchronous attempt per call, no buffering, no retries.
type Deliverer struct {
	transport Transport
	logger    *zap.Logger
}

// NewDeliverer creates a new deliverer
func NewDeliverer(transport Transport, logger *zap.Logger) *Deliverer {
	return &Deliverer{
		transport: transport,
		logger:    logger,
	}
}

// Deliver formats content with the anonymous banner and sends it to
// target. Any transport failure is returned as ErrTransportRejected.
func (d *Deliverer) Deliver(target int64, content domain.Content) error {
	var err error
	if len(content.Images) > 0 {
		// Highest-resolution representation is last
		fileID := content.Images[len(content.Images)-1]
		err = d.transport.SendPhoto(target, fileID, photoCaption(content.Caption))
	} else {
		err = d.transport.Send(target, bannerWithBody+content.Text)
	}

	if err != nil {
		d.logger.Error("Delivery failed",
			zap.Int64("target", target),
			zap.Error(err),
		)
		return fmt.Errorf("%w: %v", domain.ErrTransportRejected, err)
	}

	return nil
}

// photoCaption prefixes a sender-supplied caption with the banner, or
// returns the banner alone
func photoCaption(caption string) string {
	if caption == "" {
		return banner
	}
	return bannerWithBody + caption
}
