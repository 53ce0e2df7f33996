package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// linkPrefix marks a start payload as an anonymous-message deep link
const linkPrefix = "anon_"

// PersonalLink builds the deep link others use to message userID anonymously
func PersonalLink(botUsername string, userID int64) string {
	return fmt.Sprintf("https://t.me/%s?start=%s%d", botUsername, linkPrefix, userID)
}

// IsAnonPayload reports whether a start payload claims to be a deep link.
// Payloads without the prefix fall back to the plain /start flow.
func IsAnonPayload(payload string) bool {
	return strings.HasPrefix(payload, linkPrefix)
}

// ParseRecipient extracts the recipient id from a deep-link payload.
// Returns ErrMalformedDeepLink when the prefix matches but the id does
// not parse as a decimal integer.
func ParseRecipient(payload string) (int64, error) {
	if !strings.HasPrefix(payload, linkPrefix) {
		return 0, fmt.Errorf("%w: missing prefix", ErrMalformedDeepLink)
	}
	id, err := strconv.ParseInt(strings.TrimPrefix(payload, linkPrefix), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedDeepLink, payload)
	}
	return id, nil
}
