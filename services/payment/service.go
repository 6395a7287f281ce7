package payment

import (
	"fmt"
	"math"

	"groomery/models"
	"groomery/services/scheduling"
	"groomery/utils"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// IntentResult carries what the client needs to complete a card payment.
type IntentResult struct {
	TransactionID string  `json:"transactionId"`
	ClientSecret  string  `json:"clientSecret"`
	Amount        float64 `json:"amount"`
}

// PaymentService ties appointments to Stripe payment intents. Payment
// state stays orthogonal to appointment status; nothing here touches it.
type PaymentService interface {
	CreateIntent(appointmentID string) (*IntentResult, error)
	ConfirmPayment(appointmentID string) (*models.Appointment, error)
}

// DefaultPaymentService is the production implementation.
type DefaultPaymentService struct {
	Scheduler scheduling.SchedulingService
}

// CreateIntent creates a Stripe PaymentIntent for the appointment's cost
// and records its ID as the appointment's transaction, moving the payment
// status to partial until confirmation.
func (s *DefaultPaymentService) CreateIntent(appointmentID string) (*IntentResult, error) {
	appt, err := s.Scheduler.GetAppointment(appointmentID)
	if err != nil {
		return nil, err
	}
	if appt.Cost <= 0 {
		return nil, scheduling.NewValidationError("appointment has no cost to charge")
	}

	params := &stripe.PaymentIntentParams{
		Amount:      stripe.Int64(int64(math.Round(appt.Cost * 100))),
		Currency:    stripe.String(string(stripe.CurrencyUSD)),
		Description: stripe.String(fmt.Sprintf("Grooming appointment %s", appt.ID)),
	}
	intent, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	partial := models.PaymentPartial
	if _, err := s.Scheduler.UpdateAppointment(appt.ID, scheduling.AppointmentInput{
		PaymentStatus: &partial,
		TransactionID: &intent.ID,
	}); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("payment intent created",
		zap.String("appointmentId", appt.ID),
		zap.String("transactionId", intent.ID))
	return &IntentResult{
		TransactionID: intent.ID,
		ClientSecret:  intent.ClientSecret,
		Amount:        appt.Cost,
	}, nil
}

// ConfirmPayment marks the appointment paid once the client reports the
// intent succeeded.
func (s *DefaultPaymentService) ConfirmPayment(appointmentID string) (*models.Appointment, error) {
	appt, err := s.Scheduler.GetAppointment(appointmentID)
	if err != nil {
		return nil, err
	}
	if appt.TransactionID == "" {
		return nil, scheduling.NewValidationError("no payment intent exists for this appointment")
	}

	paid := models.PaymentPaid
	return s.Scheduler.UpdateAppointment(appt.ID, scheduling.AppointmentInput{
		PaymentStatus: &paid,
	})
}
