package core

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func timePtr(t time.Time) *time.Time { return &t }

func TestLatestPerPatient(t *testing.T) {
	base := time.Date(2026, time.February, 1, 9, 0, 0, 0, time.UTC)

	t.Run("Latest Timestamp Wins", func(t *testing.T) {
		consultations := []Consultation{
			{ID: "c1", PatientID: "p1", ScheduledAt: timePtr(base)},
			{ID: "c2", PatientID: "p1", ScheduledAt: timePtr(base.Add(24 * time.Hour))},
			{ID: "c3", PatientID: "p1", ScheduledAt: timePtr(base.Add(-24 * time.Hour))},
		}

		latest := LatestPerPatient(consultations)

		require.Len(t, latest, 1)
		assert.Equal(t, "c2", latest["p1"].ID)
	})

	t.Run("Absent Timestamp Sorts Below Any Real One", func(t *testing.T) {
		consultations := []Consultation{
			{ID: "c9", PatientID: "p1", ScheduledAt: nil},
			{ID: "c1", PatientID: "p1", ScheduledAt: timePtr(base)},
		}

		latest := LatestPerPatient(consultations)

		assert.Equal(t, "c1", latest["p1"].ID)
	})

	t.Run("Id Breaks Ties When Both Timestamps Absent", func(t *testing.T) {
		consultations := []Consultation{
			{ID: "3", PatientID: "p7", ScheduledAt: nil},
			{ID: "5", PatientID: "p7", ScheduledAt: nil},
		}

		latest := LatestPerPatient(consultations)

		assert.Equal(t, "5", latest["p7"].ID)
	})

	t.Run("Id Breaks Ties When Timestamps Equal", func(t *testing.T) {
		consultations := []Consultation{
			{ID: "b", PatientID: "p1", ScheduledAt: timePtr(base)},
			{ID: "a", PatientID: "p1", ScheduledAt: timePtr(base)},
		}

		latest := LatestPerPatient(consultations)

		assert.Equal(t, "b", latest["p1"].ID)
	})

	t.Run("One Entry Per Patient", func(t *testing.T) {
		consultations := []Consultation{
			{ID: "c1", PatientID: "p1", ScheduledAt: timePtr(base)},
			{ID: "c2", PatientID: "p2", ScheduledAt: nil},
			{ID: "c3", PatientID: "p1", ScheduledAt: timePtr(base.Add(time.Hour))},
		}

		latest := LatestPerPatient(consultations)

		require.Len(t, latest, 2)
		assert.Equal(t, "c3", latest["p1"].ID)
		assert.Equal(t, "c2", latest["p2"].ID)
	})

	t.Run("Order Independent", func(t *testing.T) {
		consultations := []Consultation{
			{ID: "c1", PatientID: "p1", ScheduledAt: timePtr(base)},
			{ID: "c2", PatientID: "p1", ScheduledAt: timePtr(base)},
			{ID: "c3", PatientID: "p1", ScheduledAt: nil},
			{ID: "c4", PatientID: "p2", ScheduledAt: nil},
			{ID: "c5", PatientID: "p2", ScheduledAt: nil},
			{ID: "c6", PatientID: "p3", ScheduledAt: timePtr(base.Add(time.Minute))},
		}

		want := LatestPerPatient(consultations)

		rng := rand.New(rand.NewSource(42))
		for i := 0; i < 50; i++ {
			shuffled := make([]Consultation, len(consultations))
			copy(shuffled, consultations)
			rng.Shuffle(len(shuffled), func(a, b int) {
				shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
			})

			assert.Equal(t, want, LatestPerPatient(shuffled))
		}
	})

	t.Run("Empty Input", func(t *testing.T) {
		assert.Empty(t, LatestPerPatient(nil))
	})
}
