package handlers

import (
	"errors"
	"net/http"
	"time"

	appointmentRepo "groomery/database/repository/appointment"
	"groomery/services/scheduling"
	"groomery/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AppointmentHandler exposes the scheduling engine over HTTP.
type AppointmentHandler struct {
	Scheduler scheduling.SchedulingService
}

// NewAppointmentHandler creates an AppointmentHandler.
func NewAppointmentHandler(scheduler scheduling.SchedulingService) *AppointmentHandler {
	return &AppointmentHandler{Scheduler: scheduler}
}

// respondSchedulingError maps service errors onto HTTP statuses:
// validation problems are the client's fault, unknown IDs are 404 and
// anything else is an opaque server error.
func respondSchedulingError(c *gin.Context, err error) {
	var validationErr *scheduling.ValidationError
	var notFoundErr *scheduling.NotFoundError
	switch {
	case errors.As(err, &validationErr):
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", validationErr.Message)
	case errors.As(err, &notFoundErr):
		utils.JSONError(c, http.StatusNotFound, "Not found", notFoundErr.Error())
	default:
		getLogger(c).Error("scheduling operation failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "operation failed, please try again")
	}
}

// ListAppointments handles GET /api/appointments with optional customer,
// dog, status and start/end date filters.
func (h *AppointmentHandler) ListAppointments(c *gin.Context) {
	filter := appointmentRepo.Filter{
		CustomerID: c.Query("customer"),
		DogID:      c.Query("dog"),
		Status:     c.Query("status"),
	}

	if startStr := c.Query("start"); startStr != "" {
		start, err := time.ParseInLocation("2006-01-02", startStr, time.Local)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", "start must be a YYYY-MM-DD date")
			return
		}
		filter.Start = &start
	}
	if endStr := c.Query("end"); endStr != "" {
		end, err := time.ParseInLocation("2006-01-02", endStr, time.Local)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", "end must be a YYYY-MM-DD date")
			return
		}
		// The end date is inclusive: cover the whole day.
		end = end.AddDate(0, 0, 1)
		filter.End = &end
	}

	appts, err := h.Scheduler.ListAppointments(filter)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(appts), "data": appts})
}

// GetAppointment handles GET /api/appointments/:id.
func (h *AppointmentHandler) GetAppointment(c *gin.Context) {
	appt, err := h.Scheduler.GetAppointment(c.Param("id"))
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// CreateAppointment handles POST /api/appointments.
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var input scheduling.AppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	appt, err := h.Scheduler.CreateAppointment(input)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, appt)
}

// UpdateAppointment handles PUT /api/appointments/:id. Any subset of
// fields may be supplied; conflict annotation is recomputed.
func (h *AppointmentHandler) UpdateAppointment(c *gin.Context) {
	var input scheduling.AppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	appt, err := h.Scheduler.UpdateAppointment(c.Param("id"), input)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// CancelAppointment handles PATCH /api/appointments/:id/cancel. Cancelling
// twice succeeds both times.
func (h *AppointmentHandler) CancelAppointment(c *gin.Context) {
	appt, err := h.Scheduler.CancelAppointment(c.Param("id"))
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": appt, "message": "Appointment cancelled successfully"})
}

// DeleteAppointment handles DELETE /api/appointments/:id (hard delete).
func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	if err := h.Scheduler.DeleteAppointment(c.Param("id")); err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Appointment deleted successfully"})
}

// GetAvailability handles GET /api/appointments/availability?date=YYYY-MM-DD.
// An empty slot list means the day is fully booked.
func (h *AppointmentHandler) GetAvailability(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", "date query parameter is required")
		return
	}
	date, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", "date must be a YYYY-MM-DD date")
		return
	}

	avail, err := h.Scheduler.DayAvailability(date)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, avail)
}
