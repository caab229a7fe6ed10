package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanPrint(t *testing.T) {
	tests := []struct {
		name   string
		status ConsultationStatus
		notes  string
		want   bool
	}{
		{"Completed With Notes", StatusCompleted, "Take rest", true},
		{"Completed Without Notes", StatusCompleted, "", false},
		{"Completed With Whitespace Notes", StatusCompleted, "  \t ", false},
		{"Pending With Notes", StatusPending, "Take rest", false},
		{"Pending Without Notes", StatusPending, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Consultation{ID: "c1", Status: tt.status, DoctorNotes: tt.notes}
			assert.Equal(t, tt.want, CanPrint(c))
		})
	}
}

func TestCanNotify(t *testing.T) {
	c := Consultation{ID: "c1", Status: StatusPending, VideoURL: "https://v/x"}

	t.Run("Contact On File", func(t *testing.T) {
		assert.True(t, CanNotify(c, Patient{Contact: "+91 98765 43210"}))
	})

	t.Run("Status Does Not Matter", func(t *testing.T) {
		completed := c
		completed.Status = StatusCompleted
		assert.True(t, CanNotify(completed, Patient{Contact: "9876543210"}))
	})

	t.Run("Empty Contact", func(t *testing.T) {
		assert.False(t, CanNotify(c, Patient{Contact: ""}))
	})

	t.Run("Whitespace Only Contact", func(t *testing.T) {
		assert.False(t, CanNotify(c, Patient{Contact: "   "}))
	})

	t.Run("Bare Plus Sign", func(t *testing.T) {
		assert.False(t, CanNotify(c, Patient{Contact: " + "}))
	})
}
