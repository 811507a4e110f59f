package availability

import (
	"time"

	"vendora/models"
)

// DefaultEventDurationHours is the proposed booking length when the caller
// does not specify one.
const DefaultEventDurationHours = 5

// lastOptionMinutes is the latest selectable option of the day, 23:30.
const lastOptionMinutes = 23*60 + 30

// TimeOptions returns the full day of selectable clock strings at 30-minute
// increments, "00:00" through "23:30".
func TimeOptions() []string {
	options := make([]string, 0, models.MinutesPerDay/30)
	for m := 0; m < models.MinutesPerDay; m += 30 {
		options = append(options, MinutesToClock(m))
	}
	return options
}

// FilteredStartTimes returns the options selectable as a start time on the
// given date: inside an open segment (exclusive of the segment end) and not
// within [start, end) of any active booking on that date.
//
// When no weekly hours exist at all the full option list is returned
// unfiltered. This fail-open default is deliberate: missing hours data must
// not block the booking UI.
func FilteredStartTimes(date time.Time, hours []models.WeeklyHours, bookings []models.Booking, options []string) []string {
	if date.IsZero() {
		return nil
	}
	if len(hours) == 0 {
		out := make([]string, len(options))
		copy(out, options)
		return out
	}

	segments := ResolveOpenSegments(date, hours)
	booked := bookedRangesOn(FormatDateKey(date), bookings)

	var filtered []string
	for _, opt := range options {
		m := ClockMinutes(opt)
		if m < 0 || !InSegments(segments, m) {
			continue
		}
		if inAnyRange(booked, m) {
			continue
		}
		filtered = append(filtered, opt)
	}
	return filtered
}

// FilteredEndTimes returns the options selectable as an end time once a start
// time is chosen: strictly after the start, and no later than the boundary of
// the segment the start falls in, clamped down to the start of the next
// active booking. End times may equal the closing boundary itself.
func FilteredEndTimes(date time.Time, startTime string, hours []models.WeeklyHours, bookings []models.Booking, options []string) []string {
	start := ClockMinutes(startTime)
	if date.IsZero() || start < 0 {
		return nil
	}

	maxEnd := maxEndMinute(ResolveOpenHours(date, hours), start)
	if maxEnd < 0 {
		return nil
	}
	for _, b := range bookedRangesOn(FormatDateKey(date), bookings) {
		if b.Start > start && b.Start < maxEnd {
			maxEnd = b.Start
		}
	}

	var filtered []string
	for _, opt := range options {
		m := ClockMinutes(opt)
		if m > start && m <= maxEnd {
			filtered = append(filtered, opt)
		}
	}
	return filtered
}

// AutoEndTime proposes an end time of start plus the default duration,
// clamped to the same boundary logic as FilteredEndTimes and hard-capped at
// 23:30. Returns ok=false when the start or date is missing or when no end
// strictly after the start survives the clamping.
func AutoEndTime(startTime string, date time.Time, hours []models.WeeklyHours, durationHours int) (string, bool) {
	start := ClockMinutes(startTime)
	if date.IsZero() || start < 0 {
		return "", false
	}
	if durationHours <= 0 {
		durationHours = DefaultEventDurationHours
	}

	end := start + durationHours*60
	if maxEnd := maxEndMinute(ResolveOpenHours(date, hours), start); maxEnd >= 0 && end > maxEnd {
		end = maxEnd
	}
	if end > lastOptionMinutes {
		end = lastOptionMinutes
	}
	if end <= start {
		return "", false
	}
	return MinutesToClock(end), true
}

// maxEndMinute determines the latest permissible end minute for a selection
// starting at the given minute: the inherited morning cutoff when the start
// falls inside it, the 23:30 cap inside an overnight evening segment, or the
// day's own close time. No hours data at all fails open to the 23:30 cap;
// a start outside any resolvable window yields -1.
func maxEndMinute(oh OpenHours, start int) int {
	if oh.MorningCutoff > 0 && start < oh.MorningCutoff {
		return oh.MorningCutoff
	}
	if oh.Own == nil && oh.MorningCutoff == 0 {
		return lastOptionMinutes
	}
	if oh.Own != nil && oh.Own.IsAvailable {
		if oh.Own.Overnight() {
			if start >= oh.Own.OpenTime.Minutes() {
				return lastOptionMinutes
			}
			return -1
		}
		if start < oh.Own.CloseTime.Minutes() {
			return oh.Own.CloseTime.Minutes()
		}
	}
	return -1
}

// bookedRangesOn collects the blocking minute ranges of active bookings on
// the canonical date key.
func bookedRangesOn(dateKey string, bookings []models.Booking) []models.Segment {
	var ranges []models.Segment
	for _, b := range ActiveBookingsOn(dateKey, bookings) {
		if r, ok := bookedRange(b); ok {
			ranges = append(ranges, r)
		}
	}
	return ranges
}

func inAnyRange(ranges []models.Segment, minute int) bool {
	for _, r := range ranges {
		if r.Contains(minute) {
			return true
		}
	}
	return false
}
