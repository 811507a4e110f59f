package availability

import (
	"time"

	"vendora/models"
)

// minSlotWidthPct keeps very short bookings visible and clickable on the
// rendered timeline.
const minSlotWidthPct = 5.0

// BookedSlotGeometry converts the active bookings of a date into left-offset
// and width percentages for the 24-hour timeline. Bookings with no time
// component render as a full-day block. The minimum width floor never pushes
// a slot past the right edge.
func BookedSlotGeometry(date time.Time, bookings []models.Booking) []models.SlotGeometry {
	if date.IsZero() {
		return nil
	}

	var geometry []models.SlotGeometry
	for _, b := range ActiveBookingsOn(FormatDateKey(date), bookings) {
		if b.AllDay() {
			geometry = append(geometry, models.SlotGeometry{BookingID: b.ID, StartPct: 0, WidthPct: 100})
			continue
		}
		start, end := b.EventTime.Minutes(), b.EventEndTime.Minutes()
		if end <= start {
			continue
		}
		geometry = append(geometry, slotGeometry(b.ID, start, end))
	}
	return geometry
}

// SelectedRangeGeometry converts the user's in-progress start/end selection
// into timeline geometry, or nil when either bound is unset or unparseable.
func SelectedRangeGeometry(startTime, endTime string) *models.SlotGeometry {
	start, end := ClockMinutes(startTime), ClockMinutes(endTime)
	if start < 0 || end < 0 || end <= start {
		return nil
	}
	g := slotGeometry("", start, end)
	return &g
}

func slotGeometry(bookingID string, start, end int) models.SlotGeometry {
	startPct := float64(start) / models.MinutesPerDay * 100
	widthPct := float64(end-start) / models.MinutesPerDay * 100
	if widthPct < minSlotWidthPct {
		widthPct = minSlotWidthPct
	}
	if startPct+widthPct > 100 {
		widthPct = 100 - startPct
	}
	return models.SlotGeometry{BookingID: bookingID, StartPct: startPct, WidthPct: widthPct}
}
