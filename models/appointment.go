package models

import "time"

// Appointment statuses. Cancelled and completed appointments are ignored
// by conflict detection and availability.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Payment statuses. Independent of the appointment status.
const (
	PaymentUnpaid   = "unpaid"
	PaymentPaid     = "paid"
	PaymentRefunded = "refunded"
	PaymentPartial  = "partial"
)

// Duration bounds in minutes.
const (
	MinDurationMinutes     = 15
	MaxDurationMinutes     = 240
	DefaultDurationMinutes = 60
)

// RecurrenceRule describes a recurring appointment series. The rule is
// persisted with the appointment but is not expanded into occurrences.
type RecurrenceRule struct {
	Frequency string     `bson:"frequency" json:"frequency"`             // "daily", "weekly" or "monthly"
	Interval  int        `bson:"interval" json:"interval"`               // every N units, >= 1
	ByDay     []string   `bson:"byDay,omitempty" json:"byDay,omitempty"` // e.g. ["MO","TH"]
	EndDate   *time.Time `bson:"endDate,omitempty" json:"endDate,omitempty"`
}

// Appointment is a grooming booking for a single dog.
type Appointment struct {
	ID              string          `bson:"id" json:"id"`
	CustomerID      string          `bson:"customerId" json:"customerId"`
	DogID           string          `bson:"dogId" json:"dogId"`
	DateTime        time.Time       `bson:"dateTime" json:"dateTime"`
	DurationMinutes int             `bson:"durationMinutes" json:"durationMinutes"`
	Cost            float64         `bson:"cost" json:"cost"`
	Notes           string          `bson:"notes,omitempty" json:"notes,omitempty"`
	Status          string          `bson:"status" json:"status"`
	IsRecurring     bool            `bson:"isRecurring" json:"isRecurring"`
	RecurrenceRule  *RecurrenceRule `bson:"recurrenceRule,omitempty" json:"recurrenceRule,omitempty"`
	ConflictFlag    bool            `bson:"conflictFlag" json:"conflictFlag"`
	ConflictNote    string          `bson:"conflictNote,omitempty" json:"conflictNote,omitempty"`
	PaymentStatus   string          `bson:"paymentStatus" json:"paymentStatus"`
	TransactionID   string          `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	CreatedAt       time.Time       `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time       `bson:"updatedAt" json:"updatedAt"`
}

// Interval returns the half-open time range [start, start+duration)
// occupied by the appointment.
func (a *Appointment) Interval() (time.Time, time.Time) {
	minutes := a.DurationMinutes
	if minutes <= 0 {
		minutes = DefaultDurationMinutes
	}
	return a.DateTime, a.DateTime.Add(time.Duration(minutes) * time.Minute)
}

// IsActive reports whether the appointment participates in conflict
// detection, i.e. it is neither cancelled nor completed.
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled && a.Status != StatusCompleted
}

// ValidStatus reports whether s is a known appointment status.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// ValidPaymentStatus reports whether s is a known payment status.
func ValidPaymentStatus(s string) bool {
	switch s {
	case PaymentUnpaid, PaymentPaid, PaymentRefunded, PaymentPartial:
		return true
	}
	return false
}

// ValidRecurrenceFrequency reports whether f is a known recurrence frequency.
func ValidRecurrenceFrequency(f string) bool {
	switch f {
	case "daily", "weekly", "monthly":
		return true
	}
	return false
}
