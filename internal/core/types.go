// Package core implements the consultation lifecycle and role-scoped access
// engine: identity decoding, visibility scoping, the consultation state
// machine, action gates, notification link building, and the latest-per-
// patient selection. Everything in this package is a pure function over
// already-fetched snapshots; no I/O, no shared state, safe for concurrent
// callers.
package core

import (
	"errors"
	"time"
)

// Role enum
type Role string

const (
	RoleSales  Role = "sales"
	RoleDoctor Role = "doctor"
)

// Valid reports whether the role is one of the recognized roles.
func (r Role) Valid() bool {
	return r == RoleSales || r == RoleDoctor
}

// Identity is the caller's decoded session identity. It is immutable for
// the session's lifetime and passed explicitly into every function that
// needs it; there is no ambient session lookup.
type Identity struct {
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// ConsultationStatus represents the lifecycle state of a consultation.
type ConsultationStatus string

const (
	StatusPending   ConsultationStatus = "pending"
	StatusCompleted ConsultationStatus = "completed"
)

// Patient is the view of a patient record the engine works with.
type Patient struct {
	ID                  string
	Name                string
	Contact             string
	AssignedDoctorEmail *string
}

// Consultation is the view of a consultation record the engine works with.
type Consultation struct {
	ID          string
	PatientID   string
	ScheduledAt *time.Time
	VideoURL    string
	Status      ConsultationStatus
	DoctorNotes string
}

var (
	// ErrMalformedCredential means the session credential is not a
	// three-part token with a decodable claims section. Fatal to the
	// session; the caller must re-authenticate.
	ErrMalformedCredential = errors.New("malformed session credential")

	// ErrUnknownRole means the credential's role claim is not a
	// recognized role. Fatal to the session.
	ErrUnknownRole = errors.New("unknown role in session credential")

	// ErrPreconditionFailed means a lifecycle invariant would be violated
	// by the requested update. Recoverable; the message tells the caller
	// what to fix.
	ErrPreconditionFailed = errors.New("consultation precondition failed")

	// ErrActionNotEligible means a privileged action (print, notify) was
	// attempted outside its gate.
	ErrActionNotEligible = errors.New("action not eligible for this consultation")

	// ErrNoContact means the patient has no phone number on file, so no
	// notification link can be built.
	ErrNoContact = errors.New("no phone number on file")
)
