package core

// laterThan reports whether c should replace prev as a patient's current
// consultation. The comparator is a strict total order over
// (scheduledAt, id): an absent timestamp sorts below every real one, and the
// id breaks ties. That makes the reduction independent of input order.
func laterThan(c, prev Consultation) bool {
	switch {
	case c.ScheduledAt != nil && prev.ScheduledAt != nil:
		if !c.ScheduledAt.Equal(*prev.ScheduledAt) {
			return c.ScheduledAt.After(*prev.ScheduledAt)
		}
	case c.ScheduledAt != nil:
		return true
	case prev.ScheduledAt != nil:
		return false
	}
	return c.ID > prev.ID
}

// LatestPerPatient reduces a patient's consultation history to the single
// consultation a view should treat as current. Every place that needs "the"
// consultation for a patient goes through this; views must not re-derive it.
func LatestPerPatient(consultations []Consultation) map[string]Consultation {
	latest := make(map[string]Consultation, len(consultations))
	for _, c := range consultations {
		prev, ok := latest[c.PatientID]
		if !ok || laterThan(c, prev) {
			latest[c.PatientID] = c
		}
	}
	return latest
}
