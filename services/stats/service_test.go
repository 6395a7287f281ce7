package stats

import (
	"sort"
	"testing"
	"time"

	appointmentRepo "groomery/database/repository/appointment"
	"groomery/models"
)

type fakeAppointmentRepo struct {
	appts []models.Appointment
}

func (f *fakeAppointmentRepo) GetByID(id string) (*models.Appointment, error) {
	for _, a := range f.appts {
		if a.ID == id {
			cp := a
			return &cp, nil
		}
	}
	return nil, nil
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
	return nil, nil
}

func (f *fakeAppointmentRepo) GetActiveInRange(start, end time.Time) ([]models.Appointment, error) {
	return nil, nil
}

func (f *fakeAppointmentRepo) Create(appt *models.Appointment) error { return nil }
func (f *fakeAppointmentRepo) Update(appt *models.Appointment) error { return nil }
func (f *fakeAppointmentRepo) Delete(id string) error                { return nil }

func (f *fakeAppointmentRepo) Count(filter appointmentRepo.Filter) (int64, error) {
	all, _ := f.GetAll(filter)
	return int64(len(all)), nil
}

type fakeCustomerRepo struct{ count int64 }

func (f *fakeCustomerRepo) GetByID(id string) (*models.Customer, error) { return nil, nil }
func (f *fakeCustomerRepo) GetAll() ([]models.Customer, error)          { return nil, nil }
func (f *fakeCustomerRepo) Create(c *models.Customer) error             { return nil }
func (f *fakeCustomerRepo) Update(c *models.Customer) error             { return nil }
func (f *fakeCustomerRepo) Delete(id string) error                      { return nil }
func (f *fakeCustomerRepo) Count() (int64, error)                       { return f.count, nil }

type fakeDogRepo struct{ count int64 }

func (f *fakeDogRepo) GetByID(id string) (*models.Dog, error)          { return nil, nil }
func (f *fakeDogRepo) GetAll() ([]models.Dog, error)                   { return nil, nil }
func (f *fakeDogRepo) GetByOwner(ownerID string) ([]models.Dog, error) { return nil, nil }
func (f *fakeDogRepo) Create(d *models.Dog) error                      { return nil }
func (f *fakeDogRepo) Update(d *models.Dog) error                      { return nil }
func (f *fakeDogRepo) Delete(id string) error                          { return nil }
func (f *fakeDogRepo) Count() (int64, error)                           { return f.count, nil }

func TestDashboard(t *testing.T) {
	now := time.Now()
	todayNoon := time.Date(now.Year(), now.Month(), now.Day(), 12, 0, 0, 0, now.Location())
	tomorrowNoon := todayNoon.AddDate(0, 0, 1)
	nextWeek := todayNoon.AddDate(0, 0, 8)

	appts := &fakeAppointmentRepo{appts: []models.Appointment{
		{ID: "a1", DateTime: todayNoon, Status: models.StatusConfirmed},
		{ID: "a2", DateTime: todayNoon.Add(time.Hour), Status: models.StatusConfirmed},
		{ID: "a3", DateTime: tomorrowNoon, Status: models.StatusConfirmed},
		{ID: "a4", DateTime: nextWeek, Status: models.StatusConfirmed},
	}}

	svc := &DefaultStatsService{
		Appts:     appts,
		Customers: &fakeCustomerRepo{count: 5},
		Dogs:      &fakeDogRepo{count: 7},
	}

	stats, err := svc.Dashboard()
	if err != nil {
		t.Fatalf("Dashboard: %v", err)
	}
	if stats.TotalCustomers != 5 || stats.TotalDogs != 7 {
		t.Errorf("totals = %d customers / %d dogs, want 5 / 7", stats.TotalCustomers, stats.TotalDogs)
	}
	if stats.TodayAppointments != 2 {
		t.Errorf("todayAppointments = %d, want 2", stats.TodayAppointments)
	}
	if stats.UpcomingAppointments != 1 {
		t.Errorf("upcomingAppointments = %d, want 1", stats.UpcomingAppointments)
	}
}

func TestAppointmentStats(t *testing.T) {
	now := time.Now()
	todayNoon := time.Date(now.Year(), now.Month(), now.Day(), 12, 0, 0, 0, now.Location())
	lastMonth := todayNoon.AddDate(0, -1, 0)

	appts := &fakeAppointmentRepo{appts: []models.Appointment{
		{ID: "a1", DateTime: todayNoon, Status: models.StatusConfirmed, Cost: 45, PaymentStatus: models.PaymentUnpaid},
		{ID: "a2", DateTime: lastMonth, Status: models.StatusCompleted, Cost: 60, PaymentStatus: models.PaymentPaid},
		{ID: "a3", DateTime: lastMonth, Status: models.StatusCompleted, Cost: 80, PaymentStatus: models.PaymentPaid},
		{ID: "a4", DateTime: lastMonth, Status: models.StatusCancelled, Cost: 30, PaymentStatus: models.PaymentRefunded},
	}}

	svc := &DefaultStatsService{
		Appts:     appts,
		Customers: &fakeCustomerRepo{},
		Dogs:      &fakeDogRepo{},
	}

	stats, err := svc.Appointments()
	if err != nil {
		t.Fatalf("Appointments: %v", err)
	}
	if stats.TotalAppointments != 4 {
		t.Errorf("totalAppointments = %d, want 4", stats.TotalAppointments)
	}
	if stats.ThisWeekAppointments < 1 {
		t.Errorf("thisWeekAppointments = %d, want at least today's booking", stats.ThisWeekAppointments)
	}
	if stats.CompletedAppointments != 2 {
		t.Errorf("completedAppointments = %d, want 2", stats.CompletedAppointments)
	}
	if stats.PaidRevenue != 140 {
		t.Errorf("paidRevenue = %.2f, want 140.00", stats.PaidRevenue)
	}
}
