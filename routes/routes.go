package routes

import (
	"net/http"
	"time"

	"groomery/config"
	"groomery/handlers"
	"groomery/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers staff account endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.Auth.Register)
		api.POST("/login", hb.Auth.Login)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/me", hb.Auth.Me)
		api.DELETE("/revoke", hb.Auth.Revoke)
	}
}

// RegisterAppointmentRoutes sets up the endpoints for the scheduling engine.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("", hb.Appointments.ListAppointments)
		api.GET("/availability", hb.Appointments.GetAvailability)
		api.GET("/:id", hb.Appointments.GetAppointment)
		api.POST("", hb.Appointments.CreateAppointment)
		api.PUT("/:id", hb.Appointments.UpdateAppointment)
		api.PATCH("/:id/cancel", hb.Appointments.CancelAppointment)
		api.DELETE("/:id", hb.Appointments.DeleteAppointment)

		// Payments for a specific appointment.
		api.POST("/:id/payment-intent", hb.Payments.CreateIntent)
		api.POST("/:id/payment/confirm", hb.Payments.ConfirmPayment)
	}
}

// RegisterCustomerRoutes registers customer management endpoints.
func RegisterCustomerRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/customers")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("", hb.Customers.ListCustomers)
		api.GET("/:id", hb.Customers.GetCustomer)
		api.GET("/:id/dogs", hb.Customers.ListCustomerDogs)
		api.POST("", hb.Customers.CreateCustomer)
		api.PUT("/:id", hb.Customers.UpdateCustomer)
		api.DELETE("/:id", hb.Customers.DeleteCustomer)
	}
}

// RegisterDogRoutes registers dog management endpoints.
func RegisterDogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/dogs")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("", hb.Dogs.ListDogs)
		api.GET("/:id", hb.Dogs.GetDog)
		api.POST("", hb.Dogs.CreateDog)
		api.PUT("/:id", hb.Dogs.UpdateDog)
		api.DELETE("/:id", hb.Dogs.DeleteDog)
	}
}

// RegisterStatsRoutes registers read-only statistics endpoints.
func RegisterStatsRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/stats")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/dashboard", hb.Stats.Dashboard)
		api.GET("/appointments", hb.Stats.Appointments)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Groomery"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Local development origins plus the deployed frontend.
	origins := []string{"http://localhost:19006", "http://localhost:8081"}
	if config.AppConfig.FrontendURL != "" {
		origins = append(origins, config.AppConfig.FrontendURL)
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
	RegisterCustomerRoutes(r, hb)
	RegisterDogRoutes(r, hb)
	RegisterStatsRoutes(r, hb)
	RegisterHealthRoute(r)
}
