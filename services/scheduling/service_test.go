package scheduling

import (
	"errors"
	"sort"
	"testing"
	"time"

	appointmentRepo "groomery/database/repository/appointment"
	"groomery/models"
)

// fakeAppointmentRepo is an in-memory AppointmentRepository.
type fakeAppointmentRepo struct {
	appts map[string]models.Appointment
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{appts: make(map[string]models.Appointment)}
}

func (f *fakeAppointmentRepo) GetByID(id string) (*models.Appointment, error) {
	a, ok := f.appts[id]
	if !ok {
		return nil, nil
	}
	cp := a
	return &cp, nil
}

func (f *fakeAppointmentRepo) GetAll(filter appointmentRepo.Filter) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range f.appts {
		if filter.CustomerID != "" && a.CustomerID != filter.CustomerID {
			continue
		}
		if filter.DogID != "" && a.DogID != filter.DogID {
			continue
		}
		if filter.Status != "" && a.Status != filter.Status {
			continue
		}
		if filter.Start != nil && a.DateTime.Before(*filter.Start) {
			continue
		}
		if filter.End != nil && !a.DateTime.Before(*filter.End) {
			continue
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DateTime.Before(out[j].DateTime) })
	return out, nil
}

func (f *fakeAppointmentRepo) GetActiveExcept(excludeID, dogID string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range f.appts {
		if a.ID == excludeID || !a.IsActive() {
			continue
		}
		if dogID != "" && a.DogID != dogID {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeAppointmentRepo) GetActiveInRange(start, end time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range f.appts {
		if !a.IsActive() {
			continue
		}
		if a.DateTime.Before(start) || !a.DateTime.Before(end) {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeAppointmentRepo) Create(appt *models.Appointment) error {
	f.appts[appt.ID] = *appt
	return nil
}

func (f *fakeAppointmentRepo) Update(appt *models.Appointment) error {
	if _, ok := f.appts[appt.ID]; !ok {
		return errors.New("appointment not found")
	}
	f.appts[appt.ID] = *appt
	return nil
}

func (f *fakeAppointmentRepo) Delete(id string) error {
	delete(f.appts, id)
	return nil
}

func (f *fakeAppointmentRepo) Count(filter appointmentRepo.Filter) (int64, error) {
	all, _ := f.GetAll(filter)
	return int64(len(all)), nil
}

// fakeCustomerRepo serves reference lookups for booking validation.
type fakeCustomerRepo struct {
	customers map[string]models.Customer
}

func (f *fakeCustomerRepo) GetByID(id string) (*models.Customer, error) {
	c, ok := f.customers[id]
	if !ok {
		return nil, nil
	}
	cp := c
	return &cp, nil
}

func (f *fakeCustomerRepo) GetAll() ([]models.Customer, error) { return nil, nil }
func (f *fakeCustomerRepo) Create(c *models.Customer) error    { f.customers[c.ID] = *c; return nil }
func (f *fakeCustomerRepo) Update(c *models.Customer) error    { f.customers[c.ID] = *c; return nil }
func (f *fakeCustomerRepo) Delete(id string) error             { delete(f.customers, id); return nil }
func (f *fakeCustomerRepo) Count() (int64, error)              { return int64(len(f.customers)), nil }

type fakeDogRepo struct {
	dogs map[string]models.Dog
}

func (f *fakeDogRepo) GetByID(id string) (*models.Dog, error) {
	d, ok := f.dogs[id]
	if !ok {
		return nil, nil
	}
	cp := d
	return &cp, nil
}

func (f *fakeDogRepo) GetAll() ([]models.Dog, error) { return nil, nil }

func (f *fakeDogRepo) GetByOwner(ownerID string) ([]models.Dog, error) {
	var out []models.Dog
	for _, d := range f.dogs {
		if d.OwnerID == ownerID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeDogRepo) Create(d *models.Dog) error { f.dogs[d.ID] = *d; return nil }
func (f *fakeDogRepo) Update(d *models.Dog) error { f.dogs[d.ID] = *d; return nil }
func (f *fakeDogRepo) Delete(id string) error     { delete(f.dogs, id); return nil }
func (f *fakeDogRepo) Count() (int64, error)      { return int64(len(f.dogs)), nil }

func newTestService(scope ConflictScope) (*DefaultSchedulingService, *fakeAppointmentRepo) {
	appts := newFakeAppointmentRepo()
	customers := &fakeCustomerRepo{customers: map[string]models.Customer{
		"cust-1": {ID: "cust-1", Name: "Alice"},
		"cust-2": {ID: "cust-2", Name: "Bob"},
	}}
	dogs := &fakeDogRepo{dogs: map[string]models.Dog{
		"dog-1": {ID: "dog-1", OwnerID: "cust-1", Name: "Rex"},
		"dog-2": {ID: "dog-2", OwnerID: "cust-1", Name: "Fido"},
		"dog-3": {ID: "dog-3", OwnerID: "cust-2", Name: "Buddy"},
	}}
	svc := NewSchedulingService(appts, customers, dogs, nil, scope)
	return svc, appts
}

func timePtr(t time.Time) *time.Time { return &t }
func intPtr(v int) *int              { return &v }
func strPtr(v string) *string        { return &v }

func mustCreate(t *testing.T, svc *DefaultSchedulingService, input AppointmentInput) *models.Appointment {
	t.Helper()
	appt, err := svc.CreateAppointment(input)
	if err != nil {
		t.Fatalf("CreateAppointment: %v", err)
	}
	return appt
}

func TestCreateAppointmentDefaults(t *testing.T) {
	svc, repo := newTestService(ScopeGlobal)

	appt := mustCreate(t, svc, AppointmentInput{
		CustomerID: "cust-1",
		DogID:      "dog-1",
		DateTime:   timePtr(day(10, 0)),
	})

	if appt.ID == "" {
		t.Error("expected a generated ID")
	}
	if appt.DurationMinutes != models.DefaultDurationMinutes {
		t.Errorf("duration = %d, want default %d", appt.DurationMinutes, models.DefaultDurationMinutes)
	}
	if appt.Status != models.StatusConfirmed {
		t.Errorf("status = %q, want confirmed", appt.Status)
	}
	if appt.PaymentStatus != models.PaymentUnpaid {
		t.Errorf("payment status = %q, want unpaid", appt.PaymentStatus)
	}
	if appt.ConflictFlag {
		t.Error("lone appointment should not be flagged")
	}

	stored, _ := repo.GetByID(appt.ID)
	if stored == nil {
		t.Fatal("appointment was not persisted")
	}
}

func TestCreateAppointmentFlagsConflictAcrossDogs(t *testing.T) {
	svc, repo := newTestService(ScopeGlobal)

	first := mustCreate(t, svc, AppointmentInput{
		CustomerID: "cust-1",
		DogID:      "dog-1",
		DateTime:   timePtr(day(10, 0)),
	})

	second := mustCreate(t, svc, AppointmentInput{
		CustomerID:      "cust-2",
		DogID:           "dog-3",
		DateTime:        timePtr(day(10, 30)),
		DurationMinutes: intPtr(30),
	})

	if !second.ConflictFlag {
		t.Fatal("overlapping booking on another dog should be flagged under global scope")
	}
	if second.ConflictNote != ConflictNoteMessage {
		t.Errorf("conflict note = %q, want %q", second.ConflictNote, ConflictNoteMessage)
	}

	// Only the incoming appointment is annotated; the existing one is
	// not rewritten.
	storedFirst, _ := repo.GetByID(first.ID)
	if storedFirst.ConflictFlag {
		t.Error("existing appointment must not be mutated by a later booking")
	}
	storedSecond, _ := repo.GetByID(second.ID)
	if !storedSecond.ConflictFlag {
		t.Error("conflict flag must be persisted")
	}
}

func TestCreateAppointmentIgnoresCancelled(t *testing.T) {
	svc, _ := newTestService(ScopeGlobal)

	first := mustCreate(t, svc, AppointmentInput{
		CustomerID: "cust-1",
		DogID:      "dog-1",
		DateTime:   timePtr(day(10, 0)),
	})
	if _, err := svc.CancelAppointment(first.ID); err != nil {
		t.Fatalf("CancelAppointment: %v", err)
	}

	second := mustCreate(t, svc, AppointmentInput{
		CustomerID: "cust-1",
		DogID:      "dog-2",
		DateTime:   timePtr(day(10, 0)),
	})
	if second.ConflictFlag {
		t.Error("cancelled appointments must not raise conflicts")
	}
}

func TestCreateAppointmentBackToBackNoConflict(t *testing.T) {
	svc, _ := newTestService(ScopeGlobal)

	mustCreate(t, svc, AppointmentInput{
		CustomerID: "cust-1",
		DogID:      "dog-1",
		DateTime:   timePtr(day(10, 0)),
	})
	second := mustCreate(t, svc, AppointmentInput{
		CustomerID: "cust-1",
		DogID:      "dog-2",
		DateTime:   timePtr(day(11, 0)),
	})

	if second.ConflictFlag {
		t.Error("booking starting exactly when another ends must not be flagged")
	}
}

func TestCreateAppointmentDogScope(t *testing.T) {
	svc, _ := newTestService(ScopeDog)

	mustCreate(t, svc, AppointmentInput{
		CustomerID: "cust-1",
		DogID:      "dog-1",
		DateTime:   timePtr(day(10, 0)),
	})

	otherDog := mustCreate(t, svc, AppointmentInput{
		CustomerID: "cust-1",
		DogID:      "dog-2",
		DateTime:   timePtr(day(10, 0)),
	})
	if otherDog.ConflictFlag {
		t.Error("dog scope must ignore overlaps for other dogs")
	}

	sameDog := mustCreate(t, svc, AppointmentInput{
		CustomerID: "cust-1",
		DogID:      "dog-1",
		DateTime:   timePtr(day(10, 30)),
	})
	if !sameDog.ConflictFlag {
		t.Error("dog scope must still flag overlaps for the same dog")
	}
}

func TestCreateAppointmentValidation(t *testing.T) {
	svc, _ := newTestService(ScopeGlobal)

	cases := []struct {
		name  string
		input AppointmentInput
	}{
		{"missing customer", AppointmentInput{DogID: "dog-1", DateTime: timePtr(day(10, 0))}},
		{"missing dog", AppointmentInput{CustomerID: "cust-1", DateTime: timePtr(day(10, 0))}},
		{"missing dateTime", AppointmentInput{CustomerID: "cust-1", DogID: "dog-1"}},
		{"unknown customer", AppointmentInput{CustomerID: "ghost", DogID: "dog-1", DateTime: timePtr(day(10, 0))}},
		{"unknown dog", AppointmentInput{CustomerID: "cust-1", DogID: "ghost", DateTime: timePtr(day(10, 0))}},
		{"dog owned by someone else", AppointmentInput{CustomerID: "cust-1", DogID: "dog-3", DateTime: timePtr(day(10, 0))}},
		{"duration too short", AppointmentInput{CustomerID: "cust-1", DogID: "dog-1", DateTime: timePtr(day(10, 0)), DurationMinutes: intPtr(10)}},
		{"duration too long", AppointmentInput{CustomerID: "cust-1", DogID: "dog-1", DateTime: timePtr(day(10, 0)), DurationMinutes: intPtr(300)}},
		{"bad status", AppointmentInput{CustomerID: "cust-1", DogID: "dog-1", DateTime: timePtr(day(10, 0)), Status: strPtr("done")}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateAppointment(tc.input)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Errorf("expected ValidationError, got %v", err)
			}
		})
	}
}

func TestUpdateAppointmentClearsStaleConflict(t *testing.T) {
	svc, _ := newTestService(ScopeGlobal)

	first := mustCreate(t, svc, AppointmentInput{
		CustomerID: "cust-1",
		DogID:      "dog-1",
		DateTime:   timePtr(day(10, 0)),
	})
	second := mustCreate(t, svc, AppointmentInput{
		CustomerID: "cust-1",
		DogID:      "dog-2",
		DateTime:   timePtr(day(10, 30)),
	})
	if !second.ConflictFlag {
		t.Fatal("setup: second appointment should start flagged")
	}

	if _, err := svc.CancelAppointment(first.ID); err != nil {
		t.Fatalf("CancelAppointment: %v", err)
	}

	// Any write recomputes the annotation, even one not touching the time.
	updated, err := svc.UpdateAppointment(second.ID, AppointmentInput{Notes: strPtr("nail trim added")})
	if err != nil {
		t.Fatalf("UpdateAppointment: %v", err)
	}
	if updated.ConflictFlag {
		t.Error("conflict flag should clear once the blocking appointment is cancelled")
	}
	if updated.ConflictNote != "" {
		t.Errorf("conflict note should clear, got %q", updated.ConflictNote)
	}
	if updated.Notes != "nail trim added" {
		t.Errorf("notes = %q, want update applied", updated.Notes)
	}
}

func TestUpdateAppointmentMoveRaisesConflict(t *testing.T) {
	svc, _ := newTestService(ScopeGlobal)

	mustCreate(t, svc, AppointmentInput{
		CustomerID: "cust-1",
		DogID:      "dog-1",
		DateTime:   timePtr(day(10, 0)),
	})
	second := mustCreate(t, svc, AppointmentInput{
		CustomerID: "cust-1",
		DogID:      "dog-2",
		DateTime:   timePtr(day(14, 0)),
	})
	if second.ConflictFlag {
		t.Fatal("setup: appointments should not conflict yet")
	}

	moved, err := svc.UpdateAppointment(second.ID, AppointmentInput{DateTime: timePtr(day(10, 30))})
	if err != nil {
		t.Fatalf("UpdateAppointment: %v", err)
	}
	if !moved.ConflictFlag {
		t.Error("moving into an occupied slot should raise the flag")
	}
}

func TestUpdateAppointmentNotFound(t *testing.T) {
	svc, _ := newTestService(ScopeGlobal)

	_, err := svc.UpdateAppointment("missing", AppointmentInput{Notes: strPtr("x")})
	var nfe *NotFoundError
	if !errors.As(err, &nfe) {
		t.Errorf("expected NotFoundError, got %v", err)
	}
}

func TestCancelAppointmentIdempotent(t *testing.T) {
	svc, repo := newTestService(ScopeGlobal)

	appt := mustCreate(t, svc, AppointmentInput{
		CustomerID: "cust-1",
		DogID:      "dog-1",
		DateTime:   timePtr(day(10, 0)),
	})

	for i := 0; i < 2; i++ {
		cancelled, err := svc.CancelAppointment(appt.ID)
		if err != nil {
			t.Fatalf("CancelAppointment attempt %d: %v", i+1, err)
		}
		if cancelled.Status != models.StatusCancelled {
			t.Fatalf("status = %q, want cancelled", cancelled.Status)
		}
	}

	stored, _ := repo.GetByID(appt.ID)
	if stored.Status != models.StatusCancelled {
		t.Errorf("persisted status = %q, want cancelled", stored.Status)
	}
}

func TestCancelAppointmentKeepsConflictAnnotation(t *testing.T) {
	svc, _ := newTestService(ScopeGlobal)

	mustCreate(t, svc, AppointmentInput{
		CustomerID: "cust-1",
		DogID:      "dog-1",
		DateTime:   timePtr(day(10, 0)),
	})
	second := mustCreate(t, svc, AppointmentInput{
		CustomerID: "cust-1",
		DogID:      "dog-2",
		DateTime:   timePtr(day(10, 30)),
	})

	cancelled, err := svc.CancelAppointment(second.ID)
	if err != nil {
		t.Fatalf("CancelAppointment: %v", err)
	}
	if !cancelled.ConflictFlag {
		t.Error("cancellation must not recompute the conflict annotation")
	}
}

func TestDeleteAppointment(t *testing.T) {
	svc, repo := newTestService(ScopeGlobal)

	appt := mustCreate(t, svc, AppointmentInput{
		CustomerID: "cust-1",
		DogID:      "dog-1",
		DateTime:   timePtr(day(10, 0)),
	})

	if err := svc.DeleteAppointment(appt.ID); err != nil {
		t.Fatalf("DeleteAppointment: %v", err)
	}
	if stored, _ := repo.GetByID(appt.ID); stored != nil {
		t.Error("appointment should be gone after delete")
	}

	var nfe *NotFoundError
	if err := svc.DeleteAppointment(appt.ID); !errors.As(err, &nfe) {
		t.Errorf("second delete should report NotFoundError, got %v", err)
	}
}

func TestListAppointmentsRejectsUnknownStatus(t *testing.T) {
	svc, _ := newTestService(ScopeGlobal)

	_, err := svc.ListAppointments(appointmentRepo.Filter{Status: "done"})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Errorf("expected ValidationError, got %v", err)
	}
}

func TestDayAvailabilityReflectsBookings(t *testing.T) {
	svc, _ := newTestService(ScopeGlobal)

	// A date far in the future so no slots are filtered as past.
	bookingDay := time.Date(2030, 6, 3, 0, 0, 0, 0, time.UTC)
	mustCreate(t, svc, AppointmentInput{
		CustomerID: "cust-1",
		DogID:      "dog-1",
		DateTime:   timePtr(bookingDay.Add(10 * time.Hour)),
	})

	avail, err := svc.DayAvailability(bookingDay)
	if err != nil {
		t.Fatalf("DayAvailability: %v", err)
	}
	if avail.Date != "2030-06-03" {
		t.Errorf("date = %q, want 2030-06-03", avail.Date)
	}
	if avail.NextAvailable == nil || avail.NextAvailable.Label != "08:00" {
		t.Errorf("next available = %+v, want 08:00", avail.NextAvailable)
	}
	for _, blocked := range []string{"09:30", "10:00", "10:30"} {
		if containsLabel(avail.Slots, blocked) {
			t.Errorf("slot %s should be blocked by the 10:00 booking", blocked)
		}
	}
	if !containsLabel(avail.Slots, "11:00") {
		t.Error("slot 11:00 should remain open")
	}
}
