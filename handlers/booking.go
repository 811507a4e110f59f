package handlers

import (
	"net/http"
	"time"

	bookingRepo "vendora/database/repository/booking"
	vendorRepo "vendora/database/repository/vendor"
	"vendora/models"
	"vendora/services/availability"
	"vendora/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BookingHandler accepts and lists event bookings. Every create is validated
// against the availability core so a client cannot book a slot the picker
// would never have offered.
type BookingHandler struct {
	Repo         bookingRepo.BookingRepository
	VendorRepo   vendorRepo.VendorAvailabilityRepository
	Availability availability.AvailabilityService
}

func NewBookingHandler(repo bookingRepo.BookingRepository, vr vendorRepo.VendorAvailabilityRepository, svc availability.AvailabilityService) *BookingHandler {
	return &BookingHandler{Repo: repo, VendorRepo: vr, Availability: svc}
}

// CreateBookingRequest is the booking payload from the client UI.
type CreateBookingRequest struct {
	ClientID     string           `json:"clientId" binding:"required"`
	EventDate    string           `json:"eventDate" binding:"required"`
	EventTime    models.TimeOfDay `json:"eventTime"`
	EventEndTime models.TimeOfDay `json:"eventEndTime"`
}

func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	logger := utils.GetLogger()

	vendorID := c.Param("vendorID")
	if vendorID == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing vendor ID in path", "")
		return
	}

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid booking payload", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}
	day, err := time.Parse("2006-01-02", req.EventDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid event date, expected YYYY-MM-DD", req.EventDate)
		return
	}

	hours, bookings, err := h.loadDay(c, vendorID, req.EventDate)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to validate requested slot", err.Error())
		return
	}

	options := availability.TimeOptions()
	start := req.EventTime.Clock()
	end := req.EventEndTime.Clock()
	if !contains(availability.FilteredStartTimes(day, hours, bookings, options), start) {
		utils.JSONError(c, http.StatusConflict, "Requested start time is not available", start)
		return
	}
	if !contains(availability.FilteredEndTimes(day, start, hours, bookings, options), end) {
		utils.JSONError(c, http.StatusConflict, "Requested end time is not available", end)
		return
	}

	booking := models.Booking{
		ID:           uuid.NewString(),
		VendorID:     vendorID,
		ClientID:     req.ClientID,
		EventDate:    req.EventDate,
		EventTime:    req.EventTime,
		EventEndTime: req.EventEndTime,
		Status:       models.StatusPending,
		CreatedAt:    time.Now().UTC(),
	}
	if err := h.Repo.Create(c.Request.Context(), booking); err != nil {
		logger.Error("Failed to create booking", zap.String("vendorID", vendorID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create booking", err.Error())
		return
	}
	h.invalidate(c, vendorID)

	c.JSON(http.StatusCreated, gin.H{"message": "Booking created", "booking": booking})
}

// ListBookingsHandler returns the bookings for a vendor date.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	vendorID := c.Param("vendorID")
	date := c.Query("date")
	if vendorID == "" || date == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing vendor ID or date", "")
		return
	}

	bookings, err := h.Repo.GetByVendorAndDate(c.Request.Context(), vendorID, date)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch bookings", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// UpdateBookingStatusHandler moves a booking through its lifecycle, e.g.
// pending -> confirmed or -> cancelled, and refreshes cached availability.
func (h *BookingHandler) UpdateBookingStatusHandler(c *gin.Context) {
	vendorID := c.Param("vendorID")
	bookingID := c.Param("bookingID")
	if vendorID == "" || bookingID == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing vendor or booking ID in path", "")
		return
	}

	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Missing or invalid status in request body", "")
		return
	}

	if err := h.Repo.UpdateStatus(c.Request.Context(), bookingID, models.NormalizeStatus(body.Status)); err != nil {
		if err == bookingRepo.ErrNotFound {
			utils.JSONError(c, http.StatusNotFound, "Booking not found", bookingID)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update booking status", err.Error())
		return
	}
	h.invalidate(c, vendorID)

	c.JSON(http.StatusOK, gin.H{"message": "Booking status updated"})
}

func (h *BookingHandler) loadDay(c *gin.Context, vendorID, date string) ([]models.WeeklyHours, []models.Booking, error) {
	var hours []models.WeeklyHours
	avail, err := h.VendorRepo.GetAvailability(c.Request.Context(), vendorID)
	if err != nil && err != vendorRepo.ErrNotFound {
		return nil, nil, err
	}
	if avail != nil {
		hours = avail.WeeklyHours
	}
	bookings, err := h.Repo.GetByVendorAndDate(c.Request.Context(), vendorID, date)
	if err != nil {
		return nil, nil, err
	}
	return hours, bookings, nil
}

func (h *BookingHandler) invalidate(c *gin.Context, vendorID string) {
	if h.Availability == nil {
		return
	}
	if err := h.Availability.Invalidate(c.Request.Context(), vendorID); err != nil {
		utils.GetLogger().Warn("Failed to invalidate availability cache",
			zap.String("vendorID", vendorID), zap.Error(err))
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
