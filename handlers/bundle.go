package handlers

import (
	userRepo "groomery/database/repository/user"
)

// HandlerBundle groups the wired handlers for route registration.
type HandlerBundle struct {
	// UserRepo backs the auth middleware's token hash lookup.
	UserRepo userRepo.UserRepository

	Appointments *AppointmentHandler
	Customers    *CustomerHandler
	Dogs         *DogHandler
	Auth         *AuthHandler
	Stats        *StatsHandler
	Payments     *PaymentHandler
}
