package availability

import (
	"sort"
	"time"

	"vendora/models"
)

// OpenHours is the resolved open-for-business picture of one calendar date.
// MorningCutoff is the minute boundary of the segment inherited from the
// previous date's overnight session, or 0 when there is no inheritance.
// Own points at the date's own weekly entry, nil when the vendor has none.
type OpenHours struct {
	Segments      []models.Segment
	MorningCutoff int
	Own           *models.WeeklyHours
}

// ResolveOpenHours determines which minute-ranges of the given date are open,
// looking at yesterday before today: a previous day whose hours wrap past
// midnight contributes an inherited morning segment [0, prevClose), and the
// date's own overnight hours contribute only their evening segment
// [open, 1440) — the wrapped portion belongs to tomorrow's morning.
func ResolveOpenHours(date time.Time, hours []models.WeeklyHours) OpenHours {
	var resolved OpenHours
	if len(hours) == 0 {
		return resolved
	}

	prevDay := (int(date.Weekday()) + 6) % 7
	if prev := models.HoursFor(hours, time.Weekday(prevDay)); prev != nil {
		if prev.IsAvailable && prev.Overnight() && prev.CloseTime.Minutes() > 0 {
			resolved.MorningCutoff = prev.CloseTime.Minutes()
		}
	}

	resolved.Own = models.HoursFor(hours, date.Weekday())

	var segments []models.Segment
	if resolved.MorningCutoff > 0 {
		segments = append(segments, models.Segment{Start: 0, End: resolved.MorningCutoff})
	}
	if own := resolved.Own; own != nil && own.IsAvailable {
		open := own.OpenTime.Minutes()
		if own.Overnight() {
			segments = append(segments, models.Segment{Start: open, End: models.MinutesPerDay})
		} else if closeMin := own.CloseTime.Minutes(); closeMin > open {
			segments = append(segments, models.Segment{Start: open, End: closeMin})
		}
	}

	resolved.Segments = mergeSegments(segments)
	return resolved
}

// ResolveOpenSegments is the segment-only view of ResolveOpenHours. It is the
// single source of boundary arithmetic consumed by the classifier, the option
// filters, and the geometry builder.
func ResolveOpenSegments(date time.Time, hours []models.WeeklyHours) []models.Segment {
	return ResolveOpenHours(date, hours).Segments
}

// InSegments reports whether a minute offset falls inside any open segment.
func InSegments(segments []models.Segment, minute int) bool {
	for _, s := range segments {
		if s.Contains(minute) {
			return true
		}
	}
	return false
}

// mergeSegments sorts segments by start and coalesces overlapping or
// touching ranges.
func mergeSegments(segments []models.Segment) []models.Segment {
	if len(segments) < 2 {
		return segments
	}
	sort.Slice(segments, func(i, j int) bool {
		return segments[i].Start < segments[j].Start
	})
	merged := segments[:1]
	for _, s := range segments[1:] {
		last := &merged[len(merged)-1]
		if s.Start <= last.End {
			if s.End > last.End {
				last.End = s.End
			}
			continue
		}
		merged = append(merged, s)
	}
	return merged
}
