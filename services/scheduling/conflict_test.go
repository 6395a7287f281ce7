package scheduling

import (
	"testing"

	"groomery/models"
)

func TestAnnotateFlagsOverlap(t *testing.T) {
	appt := appointment(day(10, 30), 30, models.StatusConfirmed)
	appt.ID = "new"
	candidates := []models.Appointment{
		appointment(day(10, 0), 60, models.StatusConfirmed),
	}

	Annotate(&appt, candidates)

	if !appt.ConflictFlag {
		t.Fatal("expected conflict flag to be raised")
	}
	if appt.ConflictNote != ConflictNoteMessage {
		t.Errorf("conflict note = %q, want %q", appt.ConflictNote, ConflictNoteMessage)
	}
}

func TestAnnotateSkipsSelf(t *testing.T) {
	appt := appointment(day(10, 0), 60, models.StatusConfirmed)
	candidates := []models.Appointment{appt}

	Annotate(&appt, candidates)

	if appt.ConflictFlag {
		t.Error("an appointment must not conflict with itself")
	}
}

func TestAnnotateSkipsInactiveCandidates(t *testing.T) {
	appt := appointment(day(10, 0), 60, models.StatusConfirmed)
	appt.ID = "new"
	candidates := []models.Appointment{
		appointment(day(10, 0), 60, models.StatusCancelled),
		appointment(day(10, 15), 60, models.StatusCompleted),
	}

	Annotate(&appt, candidates)

	if appt.ConflictFlag {
		t.Error("cancelled and completed appointments must not raise conflicts")
	}
}

func TestAnnotateClearsStaleFlag(t *testing.T) {
	appt := appointment(day(10, 0), 60, models.StatusConfirmed)
	appt.ID = "new"
	appt.ConflictFlag = true
	appt.ConflictNote = ConflictNoteMessage

	Annotate(&appt, nil)

	if appt.ConflictFlag {
		t.Error("expected stale conflict flag to be cleared")
	}
	if appt.ConflictNote != "" {
		t.Errorf("expected stale conflict note to be cleared, got %q", appt.ConflictNote)
	}
}

func TestAnnotateTouchingIntervalsNoConflict(t *testing.T) {
	appt := appointment(day(11, 0), 60, models.StatusConfirmed)
	appt.ID = "new"
	candidates := []models.Appointment{
		appointment(day(10, 0), 60, models.StatusConfirmed),
	}

	Annotate(&appt, candidates)

	if appt.ConflictFlag {
		t.Error("back-to-back appointments must not conflict")
	}
}

func TestParseConflictScope(t *testing.T) {
	if got := ParseConflictScope("dog"); got != ScopeDog {
		t.Errorf("ParseConflictScope(dog) = %q", got)
	}
	for _, s := range []string{"global", "", "station", "GLOBAL"} {
		if got := ParseConflictScope(s); got != ScopeGlobal {
			t.Errorf("ParseConflictScope(%q) = %q, want global", s, got)
		}
	}
}
