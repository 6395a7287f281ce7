// File: groomery/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"groomery/config"
	croncfg "groomery/cron"
	"groomery/database"
	appointmentRepo "groomery/database/repository/appointment"
	customerRepo "groomery/database/repository/customer"
	dogRepo "groomery/database/repository/dog"
	userRepoPkg "groomery/database/repository/user"
	"groomery/handlers"
	"groomery/middleware"
	"groomery/routes"
	"groomery/services/customer"
	"groomery/services/dog"
	"groomery/services/payment"
	"groomery/services/scheduling"
	"groomery/services/stats"
	"groomery/services/user"
	"groomery/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	stripe.Key = config.AppConfig.StripeKey

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	apptRepo := appointmentRepo.NewMongoAppointmentRepo()
	custRepo := customerRepo.NewMongoCustomerRepo()
	dgRepo := dogRepo.NewMongoDogRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()

	// services.
	schedulingService := scheduling.NewSchedulingService(
		apptRepo,
		custRepo,
		dgRepo,
		utils.GetCacheClient(),
		scheduling.ParseConflictScope(config.AppConfig.ConflictScope),
	)
	customerService := &customer.DefaultCustomerService{Repo: custRepo, Dogs: dgRepo}
	dogService := &dog.DefaultDogService{Repo: dgRepo, Customers: custRepo}
	userService := &user.DefaultUserService{Repo: userRepo}
	statsService := &stats.DefaultStatsService{Appts: apptRepo, Customers: custRepo, Dogs: dgRepo}
	paymentService := &payment.DefaultPaymentService{Scheduler: schedulingService}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo:     userRepo,
		Appointments: handlers.NewAppointmentHandler(schedulingService),
		Customers:    handlers.NewCustomerHandler(customerService),
		Dogs:         handlers.NewDogHandler(dogService),
		Auth:         handlers.NewAuthHandler(userService),
		Stats:        handlers.NewStatsHandler(statsService),
		Payments:     handlers.NewPaymentHandler(paymentService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Morning schedule digest.
	digest := croncfg.StartScheduleDigest(apptRepo)
	defer digest.Stop()

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
