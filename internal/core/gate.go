package core

import "strings"

// CanPrint reports whether a consultation summary may be printed: only a
// completed consultation with non-blank doctor notes qualifies. Notes made
// entirely of whitespace count as absent.
func CanPrint(c Consultation) bool {
	return c.Status == StatusCompleted && strings.TrimSpace(c.DoctorNotes) != ""
}

// CanNotify reports whether an outbound notification may be sent for the
// consultation. It only needs a reachable patient contact; notifications
// announce the video link, so the consultation's status does not matter.
func CanNotify(c Consultation, p Patient) bool {
	return contactDigits(p.Contact) != ""
}
