package stats

import (
	"time"

	appointmentRepo "groomery/database/repository/appointment"
	customerRepo "groomery/database/repository/customer"
	dogRepo "groomery/database/repository/dog"
	"groomery/models"
)

// DashboardStats is the landing-screen summary.
type DashboardStats struct {
	TotalCustomers       int64 `json:"totalCustomers"`
	TotalDogs            int64 `json:"totalDogs"`
	TodayAppointments    int64 `json:"todayAppointments"`
	UpcomingAppointments int64 `json:"upcomingAppointments"` // tomorrow's bookings
}

// AppointmentStats summarizes booking volume and takings.
type AppointmentStats struct {
	TotalAppointments     int64   `json:"totalAppointments"`
	ThisWeekAppointments  int64   `json:"thisWeekAppointments"`
	CompletedAppointments int64   `json:"completedAppointments"`
	PaidRevenue           float64 `json:"paidRevenue"`
}

// StatsService aggregates read-only counters over the stored records.
type StatsService interface {
	Dashboard() (*DashboardStats, error)
	Appointments() (*AppointmentStats, error)
}

// DefaultStatsService is the production implementation.
type DefaultStatsService struct {
	Appts     appointmentRepo.AppointmentRepository
	Customers customerRepo.CustomerRepository
	Dogs      dogRepo.DogRepository
}

// Dashboard counts customers, dogs, and today's and tomorrow's appointments.
func (s *DefaultStatsService) Dashboard() (*DashboardStats, error) {
	totalCustomers, err := s.Customers.Count()
	if err != nil {
		return nil, err
	}
	totalDogs, err := s.Dogs.Count()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	endOfToday := startOfToday.AddDate(0, 0, 1)
	endOfTomorrow := endOfToday.AddDate(0, 0, 1)

	today, err := s.Appts.Count(appointmentRepo.Filter{Start: &startOfToday, End: &endOfToday})
	if err != nil {
		return nil, err
	}
	upcoming, err := s.Appts.Count(appointmentRepo.Filter{Start: &endOfToday, End: &endOfTomorrow})
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		TotalCustomers:       totalCustomers,
		TotalDogs:            totalDogs,
		TodayAppointments:    today,
		UpcomingAppointments: upcoming,
	}, nil
}

// Appointments summarizes totals, the current week (starting Sunday) and
// revenue from appointments marked paid.
func (s *DefaultStatsService) Appointments() (*AppointmentStats, error) {
	total, err := s.Appts.Count(appointmentRepo.Filter{})
	if err != nil {
		return nil, err
	}

	now := time.Now()
	startOfWeek := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	startOfWeek = startOfWeek.AddDate(0, 0, -int(now.Weekday()))
	endOfWeek := startOfWeek.AddDate(0, 0, 7)

	thisWeek, err := s.Appts.Count(appointmentRepo.Filter{Start: &startOfWeek, End: &endOfWeek})
	if err != nil {
		return nil, err
	}
	completed, err := s.Appts.Count(appointmentRepo.Filter{Status: models.StatusCompleted})
	if err != nil {
		return nil, err
	}

	paid, err := s.Appts.GetAll(appointmentRepo.Filter{})
	if err != nil {
		return nil, err
	}
	var revenue float64
	for i := range paid {
		if paid[i].PaymentStatus == models.PaymentPaid {
			revenue += paid[i].Cost
		}
	}

	return &AppointmentStats{
		TotalAppointments:     total,
		ThisWeekAppointments:  thisWeek,
		CompletedAppointments: completed,
		PaidRevenue:           revenue,
	}, nil
}
