package scheduling

import "groomery/models"

// ConflictNoteMessage is the fixed annotation written alongside a raised
// conflict flag.
const ConflictNoteMessage = "Time slot overlaps with another appointment"

// ConflictScope names the candidate set a new or changed appointment is
// compared against.
type ConflictScope string

const (
	// ScopeGlobal compares against every active appointment. The shop runs
	// a single grooming station, so two bookings at the same time collide
	// no matter whose dog they are for.
	ScopeGlobal ConflictScope = "global"
	// ScopeDog compares only against the same dog's active appointments.
	ScopeDog ConflictScope = "dog"
)

// ParseConflictScope maps a configuration string to a ConflictScope,
// falling back to ScopeGlobal for anything unrecognized.
func ParseConflictScope(s string) ConflictScope {
	if ConflictScope(s) == ScopeDog {
		return ScopeDog
	}
	return ScopeGlobal
}

// Annotate recomputes the conflict annotation on appt against the given
// candidates. The annotation is advisory: a raised flag never blocks a
// write. Candidates matching appt's own ID and non-active candidates are
// skipped, so callers may pass unfiltered sets.
func Annotate(appt *models.Appointment, candidates []models.Appointment) {
	start, end := appt.Interval()
	for i := range candidates {
		c := &candidates[i]
		if c.ID == appt.ID || !c.IsActive() {
			continue
		}
		cStart, cEnd := c.Interval()
		if Overlaps(start, end, cStart, cEnd) {
			appt.ConflictFlag = true
			appt.ConflictNote = ConflictNoteMessage
			return
		}
	}
	appt.ConflictFlag = false
	appt.ConflictNote = ""
}
