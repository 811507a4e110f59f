package handlers

import (
	"fmt"
	"net/http"
	"time"

	vendorRepo "vendora/database/repository/vendor"
	"vendora/models"
	"vendora/services/availability"
	"vendora/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// VendorHoursHandler manages a vendor's weekly business hours and
// date-specific availability exceptions.
type VendorHoursHandler struct {
	Repo         vendorRepo.VendorAvailabilityRepository
	Availability availability.AvailabilityService
}

func NewVendorHoursHandler(repo vendorRepo.VendorAvailabilityRepository, svc availability.AvailabilityService) *VendorHoursHandler {
	return &VendorHoursHandler{Repo: repo, Availability: svc}
}

// ReplaceWeeklyHoursRequest carries the full seven-day schedule.
type ReplaceWeeklyHoursRequest struct {
	WeeklyHours []models.WeeklyHours `json:"weeklyHours" binding:"required"`
}

func validateWeeklyHours(hours []models.WeeklyHours) error {
	if len(hours) != 7 {
		return fmt.Errorf("expected 7 weekly entries, got %d", len(hours))
	}
	seen := make(map[int]bool, 7)
	for _, h := range hours {
		if h.DayOfWeek < 0 || h.DayOfWeek > 6 {
			return fmt.Errorf("dayOfWeek %d out of range 0-6", h.DayOfWeek)
		}
		if seen[h.DayOfWeek] {
			return fmt.Errorf("duplicate entry for dayOfWeek %d", h.DayOfWeek)
		}
		seen[h.DayOfWeek] = true
	}
	return nil
}

// ReplaceWeeklyHoursHandler replaces the vendor's standing schedule and
// invalidates cached month views.
func (h *VendorHoursHandler) ReplaceWeeklyHoursHandler(c *gin.Context) {
	logger := utils.GetLogger()

	vendorID := c.Param("vendorID")
	if vendorID == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing vendor ID in path", "")
		return
	}

	var req ReplaceWeeklyHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid weekly hours payload", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}
	if err := validateWeeklyHours(req.WeeklyHours); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid weekly hours", err.Error())
		return
	}

	if err := h.Repo.ReplaceWeeklyHours(c.Request.Context(), vendorID, req.WeeklyHours); err != nil {
		logger.Error("Failed to replace weekly hours", zap.String("vendorID", vendorID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to store weekly hours", err.Error())
		return
	}
	h.invalidate(c, vendorID)

	c.JSON(http.StatusOK, gin.H{"message": "Weekly hours updated"})
}

// GetAvailabilityHandler returns the stored availability aggregate.
func (h *VendorHoursHandler) GetAvailabilityHandler(c *gin.Context) {
	vendorID := c.Param("vendorID")
	if vendorID == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing vendor ID in path", "")
		return
	}

	avail, err := h.Repo.GetAvailability(c.Request.Context(), vendorID)
	if err != nil {
		if err == vendorRepo.ErrNotFound {
			utils.JSONError(c, http.StatusNotFound, "Vendor availability not found", vendorID)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch availability", err.Error())
		return
	}

	c.JSON(http.StatusOK, avail)
}

// PutExceptionHandler stores a date-specific override such as a holiday
// closure.
func (h *VendorHoursHandler) PutExceptionHandler(c *gin.Context) {
	logger := utils.GetLogger()

	vendorID := c.Param("vendorID")
	if vendorID == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing vendor ID in path", "")
		return
	}

	var ex models.AvailabilityException
	if err := c.ShouldBindJSON(&ex); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}
	if _, err := time.Parse("2006-01-02", ex.Date); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid exception date, expected YYYY-MM-DD", ex.Date)
		return
	}

	if err := h.Repo.PutException(c.Request.Context(), vendorID, ex); err != nil {
		logger.Error("Failed to store exception", zap.String("vendorID", vendorID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to store exception", err.Error())
		return
	}
	h.invalidate(c, vendorID)

	c.JSON(http.StatusOK, gin.H{"message": "Exception stored", "exception": ex})
}

// DeleteExceptionHandler removes the override for a date.
func (h *VendorHoursHandler) DeleteExceptionHandler(c *gin.Context) {
	vendorID := c.Param("vendorID")
	date := c.Param("date")
	if vendorID == "" || date == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing vendor ID or date in path", "")
		return
	}

	if err := h.Repo.DeleteException(c.Request.Context(), vendorID, date); err != nil {
		if err == vendorRepo.ErrNotFound {
			utils.JSONError(c, http.StatusNotFound, "Vendor availability not found", vendorID)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete exception", err.Error())
		return
	}
	h.invalidate(c, vendorID)

	c.JSON(http.StatusOK, gin.H{"message": "Exception deleted"})
}

func (h *VendorHoursHandler) invalidate(c *gin.Context, vendorID string) {
	if h.Availability == nil {
		return
	}
	if err := h.Availability.Invalidate(c.Request.Context(), vendorID); err != nil {
		utils.GetLogger().Warn("Failed to invalidate availability cache",
			zap.String("vendorID", vendorID), zap.Error(err))
	}
}
