package core

import (
	"fmt"
	"net/url"
	"strings"
	"unicode"
)

const notifyTimeLayout = "Jan 2, 2006 3:04 PM"

// contactDigits normalizes a phone-like contact string: all whitespace is
// stripped, then a single leading "+" if present.
func contactDigits(contact string) string {
	var b strings.Builder
	for _, r := range contact {
		if !unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.TrimPrefix(b.String(), "+")
}

// BuildNotificationLink constructs the outbound-message deep link announcing
// a consultation's video call to the patient. Returns ErrNoContact when the
// patient has no usable phone number. The link itself is all this does;
// opening it belongs to the caller.
func BuildNotificationLink(c Consultation, p Patient) (string, error) {
	digits := contactDigits(p.Contact)
	if digits == "" {
		return "", ErrNoContact
	}

	body := fmt.Sprintf("Hello %s, your video consultation link is: %s", p.Name, c.VideoURL)
	if c.ScheduledAt != nil {
		body += " at " + c.ScheduledAt.Local().Format(notifyTimeLayout)
	}

	link := url.URL{
		Scheme:   "https",
		Host:     "wa.me",
		Path:     "/" + digits,
		RawQuery: url.Values{"text": {body}}.Encode(),
	}
	return link.String(), nil
}
