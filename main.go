// File: podium/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"podium/config"
	"podium/cron"
	"podium/database"
	availabilityRepo "podium/database/repository/availability"
	bookingRepo "podium/database/repository/booking"
	inquiryRepo "podium/database/repository/inquiry"
	speakerRepo "podium/database/repository/speaker"
	"podium/handlers"
	"podium/middleware"
	"podium/routes"
	"podium/services/availability"
	"podium/services/booking"
	"podium/services/inquiry"
	"podium/services/notification"
	"podium/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	slotRepo := availabilityRepo.NewMongoAvailabilityRepo()
	bookRepo := bookingRepo.NewMongoBookingRepo()
	inqRepo := inquiryRepo.NewMongoInquiryRepo()
	policyRepo := speakerRepo.NewMongoSpeakerRepo()

	for name, ensure := range map[string]func() error{
		"availability": slotRepo.EnsureIndexes,
		"bookings":     bookRepo.EnsureIndexes,
		"inquiries":    inqRepo.EnsureIndexes,
	} {
		if err := ensure(); err != nil {
			logger.Sugar().Fatalf("main: failed to ensure %s indexes: %v", name, err)
		}
	}

	// services.
	notificationService := notification.NewAsynqNotificationService()
	defer notificationService.Close()

	availabilityService := &availability.DefaultAvailabilityService{
		Repo:  slotRepo,
		Cache: utils.GetCacheClient(),
	}
	bookingService := &booking.DefaultBookingService{
		Bookings:     bookRepo,
		Slots:        slotRepo,
		Policy:       policyRepo,
		Notification: notificationService,
	}
	inquiryService := &inquiry.DefaultInquiryService{
		Repo:         inqRepo,
		Notification: notificationService,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Availability: handlers.NewAvailabilityHandler(availabilityService),
		Calendar:     handlers.NewCalendarHandler(availabilityService),
		Booking:      handlers.NewBookingHandler(bookingService),
		Inquiry:      handlers.NewInquiryHandler(inquiryService),
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Background workers and monitors.
	cron.InitNotificationWorker()
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

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
