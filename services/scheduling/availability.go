package scheduling

import (
	"time"

	"groomery/models"
)

// Business hours for the grooming station. Slot starts run every
// SlotIntervalMinutes from opening; the slot beginning at closing time is
// excluded because a full assumed booking must fit before close.
const (
	OpenHour            = 8
	CloseHour           = 18
	SlotIntervalMinutes = 30
)

// AvailableSlots computes the bookable slot start times for the calendar
// day of date, given the active appointments on that day. A candidate slot
// is dropped when it is not strictly after now, or when its assumed
// 60-minute interval overlaps any active appointment (each appointment
// occupying its own stored duration). Slots come back earliest-first; an
// empty result means the day is fully booked.
//
// The function is pure: it has no side effects and is deterministic given
// date, existing and now.
func AvailableSlots(date time.Time, existing []models.Appointment, now time.Time) []models.TimeSlot {
	year, month, day := date.Date()
	loc := date.Location()

	opening := time.Date(year, month, day, OpenHour, 0, 0, 0, loc)
	closing := time.Date(year, month, day, CloseHour, 0, 0, 0, loc)
	assumed := time.Duration(models.DefaultDurationMinutes) * time.Minute

	var slots []models.TimeSlot
	for start := opening; start.Before(closing); start = start.Add(SlotIntervalMinutes * time.Minute) {
		if !start.After(now) {
			continue
		}

		end := start.Add(assumed)
		blocked := false
		for i := range existing {
			appt := &existing[i]
			if !appt.IsActive() {
				continue
			}
			apptStart, apptEnd := appt.Interval()
			if Overlaps(start, end, apptStart, apptEnd) {
				blocked = true
				break
			}
		}
		if blocked {
			continue
		}

		slots = append(slots, models.TimeSlot{
			Start: start,
			Label: start.Format("15:04"),
		})
	}
	return slots
}
