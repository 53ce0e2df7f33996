package domain

import "errors"

var (
	// ErrMalformedDeepLink means the payload matched the anon_ prefix
	// but the recipient id did not parse
	ErrMalformedDeepLink = errors.New("malformed deep link")

	// ErrTransportRejected means the transport refused the delivery:
	// recipient blocked the bot, missing channel rights, bad target.
	// Never retried.
	ErrTransportRejected = errors.New("transport rejected delivery")
)
