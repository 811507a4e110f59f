package availability

import (
	"time"

	"vendora/models"
)

// ClassifyDate classifies one calendar date for the month grid. Rules apply
// in strict priority order, first match wins:
//
//  1. zero date                                  -> empty
//  2. date before today (date-only, vs now)      -> past
//  3. no weekly entry, or entry unavailable      -> unavailable
//  4. exception with isAvailable=false           -> unavailable
//  5. active bookings covering every open minute -> fully_booked
//  6. any active booking on the date             -> partially_booked
//  7. otherwise                                  -> available
//
// Rule 3 intentionally ignores a morning segment inherited from the previous
// day's overnight session: a closed Saturday after an overnight Friday still
// classifies unavailable even though early start times exist. The time
// filters remain the authority on selectable times.
func ClassifyDate(date, now time.Time, hours []models.WeeklyHours, bookings []models.Booking, exceptions []models.AvailabilityException) models.DayStatus {
	if date.IsZero() {
		return models.DayEmpty
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, date.Location())
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	if dateOnly.Before(today) {
		return models.DayPast
	}

	own := models.HoursFor(hours, date.Weekday())
	if own == nil || !own.IsAvailable {
		return models.DayUnavailable
	}

	key := FormatDateKey(date)
	for _, ex := range exceptions {
		if ex.Date == key && !ex.IsAvailable {
			return models.DayUnavailable
		}
	}

	active := ActiveBookingsOn(key, bookings)
	if len(active) > 0 {
		if coversOpenHours(ResolveOpenSegments(date, hours), active) {
			return models.DayFullyBooked
		}
		return models.DayPartiallyBooked
	}

	return models.DayAvailable
}

// ActiveBookingsOn returns the bookings on the canonical date key whose
// status participates in availability computation.
func ActiveBookingsOn(dateKey string, bookings []models.Booking) []models.Booking {
	var active []models.Booking
	for _, b := range bookings {
		if b.EventDate == dateKey && b.Status.Active() {
			active = append(active, b)
		}
	}
	return active
}

// bookedRange returns the minute range a booking blocks. All-day bookings
// block the whole date; degenerate ranges block nothing.
func bookedRange(b models.Booking) (models.Segment, bool) {
	if b.AllDay() {
		return models.Segment{Start: 0, End: models.MinutesPerDay}, true
	}
	start, end := b.EventTime.Minutes(), b.EventEndTime.Minutes()
	if end <= start {
		return models.Segment{}, false
	}
	return models.Segment{Start: start, End: end}, true
}

// coversOpenHours reports whether the merged booked ranges cover every open
// minute of the date.
func coversOpenHours(open []models.Segment, active []models.Booking) bool {
	if len(open) == 0 {
		return false
	}
	var booked []models.Segment
	for _, b := range active {
		if r, ok := bookedRange(b); ok {
			booked = append(booked, r)
		}
	}
	booked = mergeSegments(booked)

	for _, seg := range open {
		covered := false
		for _, r := range booked {
			if r.Start <= seg.Start && r.End >= seg.End {
				covered = true
				break
			}
		}
		if !covered {
			return false
		}
	}
	return true
}
