package routes

import (
	"net/http"
	"time"

	"vendora/handlers"
	"vendora/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAvailabilityRoutes registers the calendar/picker read endpoints.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/vendors/:vendorID/availability")
	{
		api.GET("/month", hb.MonthViewHandler)
		api.GET("/day/:date", hb.DayTimesHandler)
	}
}

// RegisterVendorHoursRoutes registers weekly hours and exception management.
func RegisterVendorHoursRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/vendors/:vendorID/hours")
	{
		api.GET("", hb.GetAvailabilityHandler)
		api.PUT("", hb.ReplaceWeeklyHoursHandler)
		api.PUT("/exceptions", hb.PutExceptionHandler)
		api.DELETE("/exceptions/:date", hb.DeleteExceptionHandler)
	}
}

// RegisterBookingRoutes registers the booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/vendors/:vendorID/bookings")
	{
		api.POST("", hb.CreateBookingHandler)
		api.GET("", hb.ListBookingsHandler)
		api.PATCH("/:bookingID/status", hb.UpdateBookingStatusHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAvailabilityRoutes(r, hb)
	RegisterVendorHoursRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterHealthRoute(r)
}
