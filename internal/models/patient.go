package models

import (
	"clinic-crm-server/internal/core"
)

// Patient represents a care recipient record created by the sales workflow.
type Patient struct {
	BaseModel
	Name                string  `gorm:"size:255;not null" json:"name"`
	Age                 *int    `json:"age,omitempty"`
	Contact             string  `gorm:"size:50" json:"contact,omitempty"`
	Notes               string  `gorm:"type:text" json:"notes,omitempty"`
	CreatedBy           string  `gorm:"size:255;index" json:"createdBy"`
	AssignedDoctorEmail *string `gorm:"size:255;index" json:"assignedDoctorEmail,omitempty"`

	// Relations
	Consultations []Consultation `gorm:"foreignKey:PatientID" json:"-"`
}

// ToCore converts the stored record into the shape the scope/gate engine
// works with.
func (p *Patient) ToCore() core.Patient {
	return core.Patient{
		ID:                  p.ID,
		Name:                p.Name,
		Contact:             p.Contact,
		AssignedDoctorEmail: p.AssignedDoctorEmail,
	}
}

// PatientsToCore converts a slice of stored patients for the scope resolver.
func PatientsToCore(patients []Patient) []core.Patient {
	out := make([]core.Patient, len(patients))
	for i := range patients {
		out[i] = patients[i].ToCore()
	}
	return out
}
