// File: vendora/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vendora/config"
	"vendora/cron"
	"vendora/database"
	bookingRepoPkg "vendora/database/repository/booking"
	vendorRepoPkg "vendora/database/repository/vendor"
	"vendora/handlers"
	"vendora/middleware"
	"vendora/routes"
	"vendora/services/availability"
	"vendora/utils"

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
	vendorRepo := vendorRepoPkg.NewMongoVendorAvailabilityRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()

	// services.
	cacheTTL := time.Duration(config.AppConfig.MonthCacheTTLMinutes) * time.Minute
	monthCache := availability.NewRedisMonthCache(utils.GetCacheClient(), cacheTTL)
	availabilityService := &availability.DefaultAvailabilityService{
		VendorRepo:  vendorRepo,
		BookingRepo: bookingRepo,
		Cache:       monthCache,
		Now:         time.Now,
	}

	availabilityHandler := handlers.NewAvailabilityHandler(availabilityService)
	vendorHoursHandler := handlers.NewVendorHoursHandler(vendorRepo, availabilityService)
	bookingHandler := handlers.NewBookingHandler(bookingRepo, vendorRepo, availabilityService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Availability endpoints.
		MonthViewHandler: availabilityHandler.MonthViewHandler,
		DayTimesHandler:  availabilityHandler.DayTimesHandler,

		// Vendor hours endpoints.
		GetAvailabilityHandler:    vendorHoursHandler.GetAvailabilityHandler,
		ReplaceWeeklyHoursHandler: vendorHoursHandler.ReplaceWeeklyHoursHandler,
		PutExceptionHandler:       vendorHoursHandler.PutExceptionHandler,
		DeleteExceptionHandler:    vendorHoursHandler.DeleteExceptionHandler,

		// Booking endpoints.
		CreateBookingHandler:       bookingHandler.CreateBookingHandler,
		ListBookingsHandler:        bookingHandler.ListBookingsHandler,
		UpdateBookingStatusHandler: bookingHandler.UpdateBookingStatusHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background cache warmer and health monitor.
	cron.InitCacheWarmer(availabilityService, vendorRepo)
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
