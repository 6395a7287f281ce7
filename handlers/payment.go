package handlers

import (
	"net/http"

	"groomery/services/payment"

	"github.com/gin-gonic/gin"
)

// PaymentHandler exposes Stripe payment operations for appointments.
type PaymentHandler struct {
	Service payment.PaymentService
}

// NewPaymentHandler creates a PaymentHandler.
func NewPaymentHandler(service payment.PaymentService) *PaymentHandler {
	return &PaymentHandler{Service: service}
}

// CreateIntent handles POST /api/appointments/:id/payment-intent.
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	result, err := h.Service.CreateIntent(c.Param("id"))
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// ConfirmPayment handles POST /api/appointments/:id/payment/confirm.
func (h *PaymentHandler) ConfirmPayment(c *gin.Context) {
	appt, err := h.Service.ConfirmPayment(c.Param("id"))
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}
