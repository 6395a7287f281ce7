package models

import "time"

// TimeSlot is a candidate booking start time surfaced by the availability
// generator.
type TimeSlot struct {
	Start time.Time `json:"start"`
	Label string    `json:"label"` // e.g. "08:30"
}

// DayAvailability is the availability response for a single calendar day.
// An empty Slots list means the day is fully booked, not an error.
type DayAvailability struct {
	Date          string     `json:"date"` // "YYYY-MM-DD"
	Slots         []TimeSlot `json:"slots"`
	NextAvailable *TimeSlot  `json:"nextAvailable,omitempty"`
}
