package scheduling

import (
	"context"
	"encoding/json"
	"time"

	appointmentRepo "groomery/database/repository/appointment"
	customerRepo "groomery/database/repository/customer"
	dogRepo "groomery/database/repository/dog"
	"groomery/models"
	"groomery/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AppointmentInput carries client-supplied appointment fields. Pointer
// fields distinguish "absent" from zero values so updates can touch any
// subset of fields.
type AppointmentInput struct {
	CustomerID      string                 `json:"customerId"`
	DogID           string                 `json:"dogId"`
	DateTime        *time.Time             `json:"dateTime"`
	DurationMinutes *int                   `json:"durationMinutes"`
	Cost            *float64               `json:"cost"`
	Notes           *string                `json:"notes"`
	Status          *string                `json:"status"`
	IsRecurring     *bool                  `json:"isRecurring"`
	RecurrenceRule  *models.RecurrenceRule `json:"recurrenceRule"`
	PaymentStatus   *string                `json:"paymentStatus"`
	TransactionID   *string                `json:"transactionId"`
}

// SchedulingService is the appointment booking engine: CRUD with conflict
// annotation on every write, idempotent cancellation and day availability.
type SchedulingService interface {
	CreateAppointment(input AppointmentInput) (*models.Appointment, error)
	UpdateAppointment(id string, input AppointmentInput) (*models.Appointment, error)
	CancelAppointment(id string) (*models.Appointment, error)
	DeleteAppointment(id string) error
	GetAppointment(id string) (*models.Appointment, error)
	ListAppointments(filter appointmentRepo.Filter) ([]models.Appointment, error)
	DayAvailability(date time.Time) (*models.DayAvailability, error)
}

// DefaultSchedulingService is the production implementation.
type DefaultSchedulingService struct {
	Repo      appointmentRepo.AppointmentRepository
	Customers customerRepo.CustomerRepository
	Dogs      dogRepo.DogRepository
	// Cache holds per-day availability responses; nil disables caching.
	Cache *redis.Client
	Scope ConflictScope

	locks *scheduleLocks
}

// NewSchedulingService wires a DefaultSchedulingService.
func NewSchedulingService(
	repo appointmentRepo.AppointmentRepository,
	customers customerRepo.CustomerRepository,
	dogs dogRepo.DogRepository,
	cache *redis.Client,
	scope ConflictScope,
) *DefaultSchedulingService {
	return &DefaultSchedulingService{
		Repo:      repo,
		Customers: customers,
		Dogs:      dogs,
		Cache:     cache,
		Scope:     scope,
		locks:     newScheduleLocks(),
	}
}

// lockKey returns the serialization key for a write touching the given dog.
// Global scope shares one key: the whole station is the contended resource.
func (s *DefaultSchedulingService) lockKey(dogID string) string {
	if s.Scope == ScopeDog {
		return "dog:" + dogID
	}
	return "station"
}

// scopedDogID returns the dog filter for candidate queries, empty when the
// configured scope compares across all dogs.
func (s *DefaultSchedulingService) scopedDogID(dogID string) string {
	if s.Scope == ScopeDog {
		return dogID
	}
	return ""
}

// CreateAppointment validates references and ranges, annotates conflicts
// and persists the new appointment. A detected conflict never blocks the
// write; it is recorded on the appointment itself.
func (s *DefaultSchedulingService) CreateAppointment(input AppointmentInput) (*models.Appointment, error) {
	logger := utils.GetLogger()

	if input.CustomerID == "" {
		return nil, NewValidationError("customerId is required")
	}
	if input.DogID == "" {
		return nil, NewValidationError("dogId is required")
	}
	if input.DateTime == nil {
		return nil, NewValidationError("dateTime is required")
	}

	customer, err := s.Customers.GetByID(input.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, NewValidationError("customer not found, please select a valid customer")
	}

	dog, err := s.Dogs.GetByID(input.DogID)
	if err != nil {
		return nil, err
	}
	if dog == nil {
		return nil, NewValidationError("dog not found, please select a valid dog")
	}
	if dog.OwnerID != input.CustomerID {
		return nil, NewValidationError("dog does not belong to the specified customer")
	}

	now := time.Now()
	appt := &models.Appointment{
		ID:              uuid.New().String(),
		CustomerID:      input.CustomerID,
		DogID:           input.DogID,
		DateTime:        *input.DateTime,
		DurationMinutes: models.DefaultDurationMinutes,
		Status:          models.StatusConfirmed,
		PaymentStatus:   models.PaymentUnpaid,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := applyInput(appt, input); err != nil {
		return nil, err
	}

	// Serialize read-annotate-write per scope key so two concurrent
	// bookings cannot both miss each other's conflict.
	lock := s.locks.get(s.lockKey(appt.DogID))
	lock.Lock()
	defer lock.Unlock()

	candidates, err := s.Repo.GetActiveExcept(appt.ID, s.scopedDogID(appt.DogID))
	if err != nil {
		return nil, err
	}
	Annotate(appt, candidates)

	if err := s.Repo.Create(appt); err != nil {
		return nil, err
	}

	s.invalidateAvailability(appt.DateTime)
	logger.Info("appointment created",
		zap.String("id", appt.ID),
		zap.String("dogId", appt.DogID),
		zap.Time("dateTime", appt.DateTime),
		zap.Bool("conflict", appt.ConflictFlag))
	return appt, nil
}

// UpdateAppointment applies any subset of fields to an existing
// appointment and recomputes the conflict annotation before persisting.
func (s *DefaultSchedulingService) UpdateAppointment(id string, input AppointmentInput) (*models.Appointment, error) {
	appt, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if appt == nil {
		return nil, &NotFoundError{Resource: "appointment", ID: id}
	}

	previousDate := appt.DateTime
	if input.DateTime != nil {
		appt.DateTime = *input.DateTime
	}
	if err := applyInput(appt, input); err != nil {
		return nil, err
	}
	appt.UpdatedAt = time.Now()

	lock := s.locks.get(s.lockKey(appt.DogID))
	lock.Lock()
	defer lock.Unlock()

	candidates, err := s.Repo.GetActiveExcept(appt.ID, s.scopedDogID(appt.DogID))
	if err != nil {
		return nil, err
	}
	Annotate(appt, candidates)

	if err := s.Repo.Update(appt); err != nil {
		return nil, err
	}

	s.invalidateAvailability(previousDate, appt.DateTime)
	return appt, nil
}

// CancelAppointment soft-deletes by setting status to cancelled. It is
// idempotent: cancelling an already-cancelled appointment succeeds and
// leaves it cancelled.
func (s *DefaultSchedulingService) CancelAppointment(id string) (*models.Appointment, error) {
	appt, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if appt == nil {
		return nil, &NotFoundError{Resource: "appointment", ID: id}
	}

	appt.Status = models.StatusCancelled
	appt.UpdatedAt = time.Now()
	if err := s.Repo.Update(appt); err != nil {
		return nil, err
	}

	s.invalidateAvailability(appt.DateTime)
	utils.GetLogger().Info("appointment cancelled", zap.String("id", appt.ID))
	return appt, nil
}

// DeleteAppointment hard-deletes the record. Reserved for administrative
// cleanup; regular clients should cancel instead.
func (s *DefaultSchedulingService) DeleteAppointment(id string) error {
	appt, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}
	if appt == nil {
		return &NotFoundError{Resource: "appointment", ID: id}
	}

	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	s.invalidateAvailability(appt.DateTime)
	return nil
}

// GetAppointment retrieves a single appointment.
func (s *DefaultSchedulingService) GetAppointment(id string) (*models.Appointment, error) {
	appt, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if appt == nil {
		return nil, &NotFoundError{Resource: "appointment", ID: id}
	}
	return appt, nil
}

// ListAppointments retrieves appointments matching the filter, ascending
// by start time.
func (s *DefaultSchedulingService) ListAppointments(filter appointmentRepo.Filter) ([]models.Appointment, error) {
	if filter.Status != "" && !models.ValidStatus(filter.Status) {
		return nil, NewValidationError("invalid status %q, must be pending, confirmed, completed or cancelled", filter.Status)
	}
	return s.Repo.GetAll(filter)
}

// DayAvailability returns the open slots for the calendar day of date. An
// empty slot list means fully booked.
func (s *DefaultSchedulingService) DayAvailability(date time.Time) (*models.DayAvailability, error) {
	dateStr := date.Format("2006-01-02")
	if cached := s.cachedAvailability(dateStr); cached != nil {
		return cached, nil
	}

	year, month, day := date.Date()
	dayStart := time.Date(year, month, day, 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	existing, err := s.Repo.GetActiveInRange(dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	slots := AvailableSlots(dayStart, existing, time.Now())
	avail := &models.DayAvailability{
		Date:  dateStr,
		Slots: slots,
	}
	if len(slots) > 0 {
		next := slots[0]
		avail.NextAvailable = &next
	}

	s.storeAvailability(dateStr, avail)
	return avail, nil
}

// applyInput copies optional fields from input onto appt, validating
// ranges and enumerations. Customer and dog references are fixed at
// creation and ignored here.
func applyInput(appt *models.Appointment, input AppointmentInput) error {
	if input.DurationMinutes != nil {
		appt.DurationMinutes = *input.DurationMinutes
	}
	if appt.DurationMinutes < models.MinDurationMinutes || appt.DurationMinutes > models.MaxDurationMinutes {
		return NewValidationError("durationMinutes must be between %d and %d", models.MinDurationMinutes, models.MaxDurationMinutes)
	}

	if input.Cost != nil {
		appt.Cost = *input.Cost
	}
	if appt.Cost < 0 {
		return NewValidationError("cost cannot be negative")
	}

	if input.Notes != nil {
		appt.Notes = *input.Notes
	}
	if input.Status != nil {
		if !models.ValidStatus(*input.Status) {
			return NewValidationError("invalid status %q, must be pending, confirmed, completed or cancelled", *input.Status)
		}
		appt.Status = *input.Status
	}
	if input.PaymentStatus != nil {
		if !models.ValidPaymentStatus(*input.PaymentStatus) {
			return NewValidationError("invalid payment status %q, must be unpaid, paid, refunded or partial", *input.PaymentStatus)
		}
		appt.PaymentStatus = *input.PaymentStatus
	}
	if input.TransactionID != nil {
		appt.TransactionID = *input.TransactionID
	}

	if input.IsRecurring != nil {
		appt.IsRecurring = *input.IsRecurring
	}
	if input.RecurrenceRule != nil {
		rule := *input.RecurrenceRule
		if !models.ValidRecurrenceFrequency(rule.Frequency) {
			return NewValidationError("invalid recurrence frequency %q, must be daily, weekly or monthly", rule.Frequency)
		}
		if rule.Interval < 1 {
			rule.Interval = 1
		}
		appt.RecurrenceRule = &rule
	}
	return nil
}

// Availability cache. Stale entries are harmless (short TTL, write
// invalidation); a cache failure degrades to recomputation.

const availabilityCacheTTL = time.Minute

func availabilityCacheKey(dateStr string) string {
	return "availability:" + dateStr
}

func (s *DefaultSchedulingService) cachedAvailability(dateStr string) *models.DayAvailability {
	if s.Cache == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	data, err := s.Cache.Get(ctx, availabilityCacheKey(dateStr)).Result()
	if err != nil {
		return nil
	}
	var avail models.DayAvailability
	if err := json.Unmarshal([]byte(data), &avail); err != nil {
		return nil
	}
	return &avail
}

func (s *DefaultSchedulingService) storeAvailability(dateStr string, avail *models.DayAvailability) {
	if s.Cache == nil {
		return
	}
	data, err := json.Marshal(avail)
	if err != nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := s.Cache.Set(ctx, availabilityCacheKey(dateStr), data, availabilityCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache availability", zap.String("date", dateStr), zap.Error(err))
	}
}

func (s *DefaultSchedulingService) invalidateAvailability(dates ...time.Time) {
	if s.Cache == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	for _, d := range dates {
		key := availabilityCacheKey(d.Format("2006-01-02"))
		if err := s.Cache.Del(ctx, key).Err(); err != nil {
			utils.GetLogger().Warn("failed to invalidate availability cache", zap.String("key", key), zap.Error(err))
		}
	}
}
