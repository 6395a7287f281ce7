package handlers

import (
	"net/http"

	"groomery/services/stats"
	"groomery/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StatsHandler exposes read-only business statistics.
type StatsHandler struct {
	Service stats.StatsService
}

// NewStatsHandler creates a StatsHandler.
func NewStatsHandler(service stats.StatsService) *StatsHandler {
	return &StatsHandler{Service: service}
}

// Dashboard handles GET /api/stats/dashboard.
func (h *StatsHandler) Dashboard(c *gin.Context) {
	data, err := h.Service.Dashboard()
	if err != nil {
		getLogger(c).Error("failed to compute dashboard stats", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "failed to compute stats")
		return
	}
	c.JSON(http.StatusOK, data)
}

// Appointments handles GET /api/stats/appointments.
func (h *StatsHandler) Appointments(c *gin.Context) {
	data, err := h.Service.Appointments()
	if err != nil {
		getLogger(c).Error("failed to compute appointment stats", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "failed to compute stats")
		return
	}
	c.JSON(http.StatusOK, data)
}
