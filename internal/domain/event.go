package domain

// EventKind classifies an inbound update from the transport
type EventKind string

const (
	EventStart            EventKind = "start"
	EventConfigureChannel EventKind = "configure_channel"
	EventCancel           EventKind = "cancel"
	EventResetChannel     EventKind = "reset_channel"
	EventChannelForward   EventKind = "channel_forward"
	EventContent          EventKind = "content"
	EventUnknown          EventKind = "unknown"
)

// Content is the relayable payload of a message: plain text, or a
// photo with an optional caption
type Content struct {
	Text    string
	Images  []string // file ids ordered by resolution, lowest first
	Caption string
}

// Empty reports whether there is nothing to relay
func (c Content) Empty() bool {
	return c.Text == "" && len(c.Images) == 0
}

// Event is an inbound update already classified by the transport
// adapter. The relay machine never sees raw transport types.
type Event struct {
	Kind   EventKind
	UserID int64

	// EventStart
	Payload string

	// EventChannelForward; Content may also be set, a forwarded
	// channel post still carries text or a photo
	ChannelID    int64
	ChannelTitle string

	Content Content
}

// Reply is the outbound intent addressed to the event's sender.
// Empty text means no reply is sent.
type Reply struct {
	Text     string
	ShowMenu bool // attach the configure-channel keyboard
}
