package appointmentRepo

import (
	"time"

	"groomery/models"
)

// Filter narrows appointment listings. Zero values mean "no constraint".
type Filter struct {
	CustomerID string
	DogID      string
	Status     string
	Start      *time.Time
	End        *time.Time
}

// AppointmentRepository defines methods for appointment data access.
type AppointmentRepository interface {
	// GetByID retrieves an appointment by its unique ID. Returns nil when
	// no such appointment exists.
	GetByID(id string) (*models.Appointment, error)
	// GetAll retrieves appointments matching the filter, ascending by dateTime.
	GetAll(filter Filter) ([]models.Appointment, error)
	// GetActiveExcept retrieves all active appointments (status neither
	// cancelled nor completed), excluding the given ID. An empty dogID
	// returns active appointments for every dog.
	GetActiveExcept(excludeID, dogID string) ([]models.Appointment, error)
	// GetActiveInRange retrieves active appointments starting within [start, end).
	GetActiveInRange(start, end time.Time) ([]models.Appointment, error)
	// Create inserts a new appointment record.
	Create(appt *models.Appointment) error
	// Update replaces an existing appointment record.
	Update(appt *models.Appointment) error
	// Delete removes an appointment record by its ID.
	Delete(id string) error
	// Count returns the number of appointments matching the filter.
	Count(filter Filter) (int64, error)
}
