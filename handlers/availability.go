package handlers

import (
	"net/http"
	"strconv"
	"time"

	"vendora/services/availability"
	"vendora/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AvailabilityHandler serves the calendar and picker view data consumed by
// the booking UI.
type AvailabilityHandler struct {
	Service availability.AvailabilityService
}

func NewAvailabilityHandler(svc availability.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc}
}

// MonthViewHandler returns the classified calendar grid for one vendor
// month. Year and month query params default to the current month.
func (h *AvailabilityHandler) MonthViewHandler(c *gin.Context) {
	logger := utils.GetLogger()

	vendorID := c.Param("vendorID")
	if vendorID == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing vendor ID in path", "")
		return
	}

	now := time.Now()
	year := now.Year()
	month := int(now.Month())
	if v := c.Query("year"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1970 || parsed > 9999 {
			utils.JSONError(c, http.StatusBadRequest, "Invalid year", v)
			return
		}
		year = parsed
	}
	if v := c.Query("month"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 || parsed > 12 {
			utils.JSONError(c, http.StatusBadRequest, "Invalid month", v)
			return
		}
		month = parsed
	}

	view, err := h.Service.MonthView(c.Request.Context(), vendorID, year, time.Month(month))
	if err != nil {
		logger.Error("Failed to build month view",
			zap.String("vendorID", vendorID), zap.Int("year", year), zap.Int("month", month), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to build month view", err.Error())
		return
	}

	c.JSON(http.StatusOK, view)
}

// DayTimesHandler returns the selectable start times for a date, plus end
// times and a proposed end when a start is supplied via the "start" query.
func (h *AvailabilityHandler) DayTimesHandler(c *gin.Context) {
	logger := utils.GetLogger()

	vendorID := c.Param("vendorID")
	date := c.Param("date")
	if vendorID == "" || date == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing vendor ID or date in path", "")
		return
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD", date)
		return
	}

	view, err := h.Service.DayTimes(c.Request.Context(), vendorID, date, c.Query("start"), c.Query("end"))
	if err != nil {
		logger.Error("Failed to build day times",
			zap.String("vendorID", vendorID), zap.String("date", date), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to build day times", err.Error())
		return
	}

	c.JSON(http.StatusOK, view)
}
