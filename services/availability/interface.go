// File: services/availability/interface.go
package availability

import (
	"context"
	"time"

	"vendora/models"
)

// AvailabilityService computes calendar and picker view data for a vendor.
type AvailabilityService interface {
	MonthView(ctx context.Context, vendorID string, year int, month time.Month) (*models.MonthView, error)
	DayTimes(ctx context.Context, vendorID, date, startTime, endTime string) (*models.DayTimesView, error)
	WarmVendorCaches(ctx context.Context, vendorID string, monthsAhead int) error
	Invalidate(ctx context.Context, vendorID string) error
}
