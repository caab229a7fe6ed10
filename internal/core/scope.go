package core

// ScopedRecords is the subset of patients and consultations an identity may
// see and act on.
type ScopedRecords struct {
	Patients      []Patient
	Consultations []Consultation
}

// Scope filters the raw collections down to what the identity's role may
// observe. Sales sees everything; a doctor sees only patients assigned to
// them and, transitively, those patients' consultations. The record store is
// expected to filter too, but it is treated as untrusted for role
// boundaries: nothing outside scope leaves this function even when a broader
// payload arrives.
func Scope(id Identity, patients []Patient, consultations []Consultation) ScopedRecords {
	if id.Role == RoleSales {
		return ScopedRecords{Patients: patients, Consultations: consultations}
	}

	visible := make(map[string]bool, len(patients))
	scopedPatients := make([]Patient, 0, len(patients))
	for _, p := range patients {
		if p.AssignedDoctorEmail != nil && *p.AssignedDoctorEmail == id.Email {
			visible[p.ID] = true
			scopedPatients = append(scopedPatients, p)
		}
	}

	scopedConsultations := make([]Consultation, 0, len(consultations))
	for _, c := range consultations {
		if visible[c.PatientID] {
			scopedConsultations = append(scopedConsultations, c)
		}
	}

	return ScopedRecords{Patients: scopedPatients, Consultations: scopedConsultations}
}

// PatientInScope reports whether the identity may act on the given patient.
func PatientInScope(id Identity, p Patient) bool {
	if id.Role == RoleSales {
		return true
	}
	return p.AssignedDoctorEmail != nil && *p.AssignedDoctorEmail == id.Email
}
