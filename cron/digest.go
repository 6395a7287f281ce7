package cron

import (
	"time"

	appointmentRepo "groomery/database/repository/appointment"
	"groomery/utils"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// StartScheduleDigest logs a summary of the day's bookings every morning
// before opening. It is read-only: appointment state is never mutated by a
// background job.
func StartScheduleDigest(repo appointmentRepo.AppointmentRepository) *cron.Cron {
	c := cron.New()
	logger := utils.GetLogger()

	if _, err := c.AddFunc("0 7 * * *", func() { logDigest(repo) }); err != nil {
		logger.Error("failed to schedule morning digest", zap.Error(err))
		return c
	}

	c.Start()
	logger.Info("morning schedule digest scheduled for 07:00")
	return c
}

func logDigest(repo appointmentRepo.AppointmentRepository) {
	logger := utils.GetLogger()

	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	appts, err := repo.GetActiveInRange(dayStart, dayEnd)
	if err != nil {
		logger.Error("morning digest: failed to fetch today's appointments", zap.Error(err))
		return
	}

	conflicts := 0
	for i := range appts {
		if appts[i].ConflictFlag {
			conflicts++
		}
	}

	logger.Info("morning schedule digest",
		zap.String("date", dayStart.Format("2006-01-02")),
		zap.Int("appointments", len(appts)),
		zap.Int("conflicts", conflicts))

	for i := range appts {
		a := &appts[i]
		logger.Info("scheduled appointment",
			zap.String("id", a.ID),
			zap.String("time", a.DateTime.Format("15:04")),
			zap.Int("durationMinutes", a.DurationMinutes),
			zap.String("dogId", a.DogID),
			zap.Bool("conflict", a.ConflictFlag))
	}
}
