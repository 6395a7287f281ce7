package models

import (
	"testing"
	"time"
)

func TestAppointmentInterval(t *testing.T) {
	start := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)

	appt := Appointment{DateTime: start, DurationMinutes: 90}
	gotStart, gotEnd := appt.Interval()
	if !gotStart.Equal(start) {
		t.Errorf("interval start = %v, want %v", gotStart, start)
	}
	if want := start.Add(90 * time.Minute); !gotEnd.Equal(want) {
		t.Errorf("interval end = %v, want %v", gotEnd, want)
	}
}

func TestAppointmentIntervalDefaultsDuration(t *testing.T) {
	start := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)

	for _, minutes := range []int{0, -30} {
		appt := Appointment{DateTime: start, DurationMinutes: minutes}
		_, end := appt.Interval()
		if want := start.Add(DefaultDurationMinutes * time.Minute); !end.Equal(want) {
			t.Errorf("duration %d: interval end = %v, want default %v", minutes, end, want)
		}
	}
}

func TestAppointmentIsActive(t *testing.T) {
	cases := map[string]bool{
		StatusPending:   true,
		StatusConfirmed: true,
		StatusCompleted: false,
		StatusCancelled: false,
	}
	for status, want := range cases {
		appt := Appointment{Status: status}
		if got := appt.IsActive(); got != want {
			t.Errorf("IsActive(%s) = %v, want %v", status, got, want)
		}
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []string{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled} {
		if !ValidStatus(s) {
			t.Errorf("ValidStatus(%s) = false", s)
		}
	}
	for _, s := range []string{"", "done", "Confirmed"} {
		if ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = true", s)
		}
	}
}
