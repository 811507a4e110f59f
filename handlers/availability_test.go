package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vendora/models"
)

type stubAvailabilityService struct {
	monthView *models.MonthView
	dayTimes  *models.DayTimesView
	err       error

	gotVendorID string
	gotYear     int
	gotMonth    time.Month
	gotDate     string
	gotStart    string
	gotEnd      string
}

func (s *stubAvailabilityService) MonthView(ctx context.Context, vendorID string, year int, month time.Month) (*models.MonthView, error) {
	s.gotVendorID, s.gotYear, s.gotMonth = vendorID, year, month
	return s.monthView, s.err
}

func (s *stubAvailabilityService) DayTimes(ctx context.Context, vendorID, date, startTime, endTime string) (*models.DayTimesView, error) {
	s.gotVendorID, s.gotDate, s.gotStart, s.gotEnd = vendorID, date, startTime, endTime
	return s.dayTimes, s.err
}

func (s *stubAvailabilityService) WarmVendorCaches(ctx context.Context, vendorID string, monthsAhead int) error {
	return nil
}

func (s *stubAvailabilityService) Invalidate(ctx context.Context, vendorID string) error {
	return nil
}

func availabilityRouter(svc *stubAvailabilityService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAvailabilityHandler(svc)
	r := gin.New()
	r.GET("/api/vendors/:vendorID/availability/month", h.MonthViewHandler)
	r.GET("/api/vendors/:vendorID/availability/day/:date", h.DayTimesHandler)
	return r
}

func TestMonthViewHandler(t *testing.T) {
	svc := &stubAvailabilityService{
		monthView: &models.MonthView{VendorID: "vendor-1", Year: 2025, Month: 6},
	}
	router := availabilityRouter(svc)

	t.Run("explicit year and month", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/vendors/vendor-1/availability/month?year=2025&month=6", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "vendor-1", svc.gotVendorID)
		assert.Equal(t, 2025, svc.gotYear)
		assert.Equal(t, time.June, svc.gotMonth)

		var got models.MonthView
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "vendor-1", got.VendorID)
	})

	t.Run("defaults to current month", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/vendors/vendor-1/availability/month", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		now := time.Now()
		assert.Equal(t, now.Year(), svc.gotYear)
		assert.Equal(t, now.Month(), svc.gotMonth)
	})

	t.Run("rejects bad month", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/vendors/vendor-1/availability/month?month=13", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects bad year", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/vendors/vendor-1/availability/month?year=abc", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDayTimesHandler(t *testing.T) {
	svc := &stubAvailabilityService{
		dayTimes: &models.DayTimesView{
			VendorID:   "vendor-1",
			Date:       "2025-06-09",
			Status:     models.DayAvailable,
			StartTimes: []string{"09:00", "09:30"},
		},
	}
	router := availabilityRouter(svc)

	t.Run("passes start and end selections through", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/vendors/vendor-1/availability/day/2025-06-09?start=10:00&end=12:00", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "2025-06-09", svc.gotDate)
		assert.Equal(t, "10:00", svc.gotStart)
		assert.Equal(t, "12:00", svc.gotEnd)

		var got models.DayTimesView
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, []string{"09:00", "09:30"}, got.StartTimes)
	})

	t.Run("rejects malformed date", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/vendors/vendor-1/availability/day/09-06-2025", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
