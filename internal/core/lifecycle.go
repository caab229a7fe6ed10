package core

import (
	"fmt"
	"strings"
)

// ConsultationUpdate is a doctor's requested change to a consultation.
// Nil fields mean "leave as stored"; the update is merged with the current
// record before validation, so submitting notes does not require a status
// change and vice versa.
type ConsultationUpdate struct {
	DoctorNotes *string
	Status      *ConsultationStatus
}

// ApplyUpdate validates an update against the consultation lifecycle and
// returns the resulting record. pending is the initial state and completed
// is terminal: completing requires non-blank notes on the merged record, and
// a completed consultation never reverts to pending. The input consultation
// is not mutated.
func ApplyUpdate(current Consultation, update ConsultationUpdate) (Consultation, error) {
	next := current
	if update.DoctorNotes != nil {
		next.DoctorNotes = *update.DoctorNotes
	}
	if update.Status != nil {
		next.Status = *update.Status
	}

	if current.Status == StatusCompleted && next.Status == StatusPending {
		return Consultation{}, fmt.Errorf("%w: a completed consultation cannot be reopened", ErrPreconditionFailed)
	}
	if next.Status == StatusCompleted && strings.TrimSpace(next.DoctorNotes) == "" {
		return Consultation{}, fmt.Errorf("%w: add notes before completing", ErrPreconditionFailed)
	}

	return next, nil
}
