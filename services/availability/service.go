// File: services/availability/service.go
package availability

import (
	"context"
	"fmt"
	"time"

	bookingRepo "vendora/database/repository/booking"
	vendorRepo "vendora/database/repository/vendor"
	"vendora/models"
	"vendora/utils"

	"go.uber.org/zap"
)

// DefaultAvailabilityService is the production availability engine. The
// reference date for past-day classification is read once per request so a
// single response is internally consistent.
type DefaultAvailabilityService struct {
	VendorRepo  vendorRepo.VendorAvailabilityRepository
	BookingRepo bookingRepo.BookingRepository
	Cache       MonthCache
	Now         func() time.Time
}

func (s *DefaultAvailabilityService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// loadAvailability returns the vendor's hours and exceptions, degrading to
// empty data when the vendor has not configured availability yet. The core
// treats missing hours as fail-open for start times, which is the behavior
// the booking UI expects.
func (s *DefaultAvailabilityService) loadAvailability(ctx context.Context, vendorID string) ([]models.WeeklyHours, []models.AvailabilityException, error) {
	avail, err := s.VendorRepo.GetAvailability(ctx, vendorID)
	if err != nil {
		if err == vendorRepo.ErrNotFound {
			return nil, nil, nil
		}
		return nil, nil, err
	}
	return avail.WeeklyHours, avail.Exceptions, nil
}

func (s *DefaultAvailabilityService) MonthView(ctx context.Context, vendorID string, year int, month time.Month) (*models.MonthView, error) {
	logger := utils.GetLogger()
	monthKey := monthKeyOf(year, month)

	if s.Cache != nil {
		cached, err := s.Cache.Get(ctx, vendorID, monthKey)
		if err != nil {
			logger.Warn("month cache read failed", zap.String("vendorID", vendorID), zap.Error(err))
		} else if cached != nil {
			return cached, nil
		}
	}

	hours, exceptions, err := s.loadAvailability(ctx, vendorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load vendor availability: %w", err)
	}
	bookings, err := s.BookingRepo.GetByVendorAndMonth(ctx, vendorID, monthKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}

	now := s.now()
	grid := BuildMonthGrid(year, month)
	cells := make([]models.DayCell, 0, len(grid))
	for _, day := range grid {
		if day == nil {
			cells = append(cells, models.DayCell{Status: models.DayEmpty})
			continue
		}
		cell := models.DayCell{
			Date:   FormatDateKey(*day),
			Status: ClassifyDate(*day, now, hours, bookings, exceptions),
		}
		for _, seg := range ResolveOpenSegments(*day, hours) {
			cell.Segments = append(cell.Segments, models.ViewOf(seg))
		}
		cells = append(cells, cell)
	}

	view := &models.MonthView{
		VendorID: vendorID,
		Year:     year,
		Month:    int(month),
		Cells:    cells,
	}

	if s.Cache != nil {
		if err := s.Cache.Set(ctx, *view); err != nil {
			logger.Warn("month cache write failed", zap.String("vendorID", vendorID), zap.Error(err))
		}
	}
	return view, nil
}

func (s *DefaultAvailabilityService) DayTimes(ctx context.Context, vendorID, date, startTime, endTime string) (*models.DayTimesView, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", date)
	}

	hours, exceptions, err := s.loadAvailability(ctx, vendorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load vendor availability: %w", err)
	}
	bookings, err := s.BookingRepo.GetByVendorAndDate(ctx, vendorID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}

	options := TimeOptions()
	view := &models.DayTimesView{
		VendorID:    vendorID,
		Date:        date,
		Status:      ClassifyDate(day, s.now(), hours, bookings, exceptions),
		StartTimes:  FilteredStartTimes(day, hours, bookings, options),
		BookedSlots: BookedSlotGeometry(day, bookings),
	}

	if startTime != "" {
		view.EndTimes = FilteredEndTimes(day, startTime, hours, bookings, options)
		if auto, ok := AutoEndTime(startTime, day, hours, 0); ok {
			view.AutoEndTime = auto
		}
		selectedEnd := endTime
		if selectedEnd == "" {
			selectedEnd = view.AutoEndTime
		}
		view.Selected = SelectedRangeGeometry(startTime, selectedEnd)
	}

	return view, nil
}

// WarmVendorCaches precomputes and caches month views from the current month
// forward. Used by the background warmer.
func (s *DefaultAvailabilityService) WarmVendorCaches(ctx context.Context, vendorID string, monthsAhead int) error {
	if monthsAhead < 1 {
		monthsAhead = 1
	}
	now := s.now()
	for i := 0; i < monthsAhead; i++ {
		target := now.AddDate(0, i, 0)
		if _, err := s.MonthView(ctx, vendorID, target.Year(), target.Month()); err != nil {
			return fmt.Errorf("failed to warm %s %04d-%02d: %w", vendorID, target.Year(), target.Month(), err)
		}
	}
	return nil
}

func (s *DefaultAvailabilityService) Invalidate(ctx context.Context, vendorID string) error {
	if s.Cache == nil {
		return nil
	}
	return s.Cache.InvalidateVendor(ctx, vendorID)
}
