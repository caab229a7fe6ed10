package models

import (
	"time"

	"clinic-crm-server/internal/core"
)

// Consultation represents a scheduled or completed video visit tied to
// exactly one patient. Consultations are never deleted; a patient's visit
// history accumulates.
type Consultation struct {
	BaseModel
	PatientID   string                  `gorm:"size:36;index;not null" json:"patientId"`
	ScheduledAt *time.Time              `json:"scheduledAt,omitempty"`
	VideoURL    string                  `gorm:"size:512;not null" json:"videoUrl"`
	CreatedBy   string                  `gorm:"size:255" json:"createdBy"`
	Status      core.ConsultationStatus `gorm:"size:20;default:'pending'" json:"status"`
	DoctorNotes string                  `gorm:"type:text" json:"doctorNotes,omitempty"`

	// Relations
	Patient Patient `gorm:"foreignKey:PatientID" json:"-"`
}

// ToCore converts the stored record into the shape the lifecycle and
// selector engine works with.
func (c *Consultation) ToCore() core.Consultation {
	return core.Consultation{
		ID:          c.ID,
		PatientID:   c.PatientID,
		ScheduledAt: c.ScheduledAt,
		VideoURL:    c.VideoURL,
		Status:      c.Status,
		DoctorNotes: c.DoctorNotes,
	}
}

// ConsultationsToCore converts a slice of stored consultations for the
// scope resolver and selector.
func ConsultationsToCore(consultations []Consultation) []core.Consultation {
	out := make([]core.Consultation, len(consultations))
	for i := range consultations {
		out[i] = consultations[i].ToCore()
	}
	return out
}
