package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func scopeFixtures() ([]Patient, []Consultation) {
	patients := []Patient{
		{ID: "p1", Name: "Asha", AssignedDoctorEmail: strPtr("dr.rao@clinic.example")},
		{ID: "p2", Name: "Vikram", AssignedDoctorEmail: strPtr("dr.iyer@clinic.example")},
		{ID: "p3", Name: "Meera", AssignedDoctorEmail: nil},
	}
	consultations := []Consultation{
		{ID: "c1", PatientID: "p1", VideoURL: "https://v/1"},
		{ID: "c2", PatientID: "p2", VideoURL: "https://v/2"},
		{ID: "c3", PatientID: "p3", VideoURL: "https://v/3"},
		{ID: "c4", PatientID: "p1", VideoURL: "https://v/4"},
	}
	return patients, consultations
}

func TestScope(t *testing.T) {
	t.Run("Sales Sees Everything", func(t *testing.T) {
		patients, consultations := scopeFixtures()
		id := Identity{Email: "rita@clinic.example", Role: RoleSales}

		scoped := Scope(id, patients, consultations)

		assert.Equal(t, patients, scoped.Patients)
		assert.Equal(t, consultations, scoped.Consultations)
	})

	t.Run("Doctor Sees Only Assigned Patients", func(t *testing.T) {
		patients, consultations := scopeFixtures()
		id := Identity{Email: "dr.rao@clinic.example", Role: RoleDoctor}

		scoped := Scope(id, patients, consultations)

		require.Len(t, scoped.Patients, 1)
		assert.Equal(t, "p1", scoped.Patients[0].ID)
		require.Len(t, scoped.Consultations, 2)
		assert.Equal(t, "c1", scoped.Consultations[0].ID)
		assert.Equal(t, "c4", scoped.Consultations[1].ID)
	})

	t.Run("Consultations Never Escape The Patient Filter", func(t *testing.T) {
		patients, consultations := scopeFixtures()
		id := Identity{Email: "dr.iyer@clinic.example", Role: RoleDoctor}

		scoped := Scope(id, patients, consultations)

		inScope := make(map[string]string)
		for _, p := range scoped.Patients {
			require.NotNil(t, p.AssignedDoctorEmail)
			assert.Equal(t, id.Email, *p.AssignedDoctorEmail)
			inScope[p.ID] = *p.AssignedDoctorEmail
		}
		for _, c := range scoped.Consultations {
			_, ok := inScope[c.PatientID]
			assert.True(t, ok, "consultation %s references a patient outside scope", c.ID)
		}
	})

	t.Run("Doctor With No Assignments", func(t *testing.T) {
		patients, consultations := scopeFixtures()
		id := Identity{Email: "dr.nobody@clinic.example", Role: RoleDoctor}

		scoped := Scope(id, patients, consultations)

		assert.Empty(t, scoped.Patients)
		assert.Empty(t, scoped.Consultations)
	})
}

func TestPatientInScope(t *testing.T) {
	assigned := Patient{ID: "p1", AssignedDoctorEmail: strPtr("dr.rao@clinic.example")}
	unassigned := Patient{ID: "p3"}

	assert.True(t, PatientInScope(Identity{Email: "rita@clinic.example", Role: RoleSales}, unassigned))
	assert.True(t, PatientInScope(Identity{Email: "dr.rao@clinic.example", Role: RoleDoctor}, assigned))
	assert.False(t, PatientInScope(Identity{Email: "dr.iyer@clinic.example", Role: RoleDoctor}, assigned))
	assert.False(t, PatientInScope(Identity{Email: "dr.rao@clinic.example", Role: RoleDoctor}, unassigned))
}
