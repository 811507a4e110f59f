// File: vendora/handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct for route
// registration.
type HandlerBundle struct {
	// Availability endpoints.
	MonthViewHandler gin.HandlerFunc
	DayTimesHandler  gin.HandlerFunc

	// Vendor hours endpoints.
	GetAvailabilityHandler    gin.HandlerFunc
	ReplaceWeeklyHoursHandler gin.HandlerFunc
	PutExceptionHandler       gin.HandlerFunc
	DeleteExceptionHandler    gin.HandlerFunc

	// Booking endpoints.
	CreateBookingHandler       gin.HandlerFunc
	ListBookingsHandler        gin.HandlerFunc
	UpdateBookingStatusHandler gin.HandlerFunc
}
