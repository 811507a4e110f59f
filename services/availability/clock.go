// Package availability computes vendor booking availability: per-date
// calendar classification, selectable start/end times, and 24-hour timeline
// geometry. Every function is a pure transform of its inputs; the reference
// date for past checks is always a parameter, never read from the clock.
package availability

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"vendora/models"
)

// TimePlaceholder is rendered where no time value is set.
const TimePlaceholder = "--:--"

// ParseClock parses a heterogeneous time representation into a TimeOfDay.
// Accepted forms: "H:MM", "HH:MM", "HH:MM:SS", and ISO datetime strings whose
// wall-clock hour/minute are taken as-is (the date portion is ignored).
// Returns ok=false for empty or unparseable input; malformed values are
// rejected here rather than propagated into comparisons downstream.
func ParseClock(s string) (models.TimeOfDay, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return models.TimeOfDay{}, false
	}

	// ISO datetime: contains a date/time separator.
	if strings.Contains(s, "T") || strings.Count(s, "-") >= 2 {
		for _, layout := range []string{
			time.RFC3339,
			"2006-01-02T15:04:05",
			"2006-01-02T15:04",
			"2006-01-02 15:04:05",
			"2006-01-02 15:04",
		} {
			if t, err := time.Parse(layout, s); err == nil {
				return models.TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}, true
			}
		}
		return models.TimeOfDay{}, false
	}

	parts := strings.Split(s, ":")
	hour, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || hour < 0 || hour > 23 {
		return models.TimeOfDay{}, false
	}
	minute := 0
	if len(parts) > 1 {
		minute, err = strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil || minute < 0 || minute > 59 {
			return models.TimeOfDay{}, false
		}
	}
	return models.TimeOfDay{Hour: hour, Minute: minute}, true
}

// ClockMinutes parses a clock string straight to minutes from midnight,
// returning -1 when the string cannot be parsed.
func ClockMinutes(s string) int {
	t, ok := ParseClock(s)
	if !ok {
		return -1
	}
	return t.Minutes()
}

// MinutesToClock formats a minutes-from-midnight offset as "HH:MM".
func MinutesToClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// FormatDateKey formats a date as its canonical zero-padded "YYYY-MM-DD" key.
// All date equality and lookups in this package go through this form.
func FormatDateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// FormatTime12h converts a 24-hour clock string to "H:MM AM/PM" for display.
// Hour 0 renders as 12 AM and hour 12 as 12 PM. Empty or unparseable input
// renders the placeholder.
func FormatTime12h(s string) string {
	t, ok := ParseClock(s)
	if !ok {
		return TimePlaceholder
	}
	period := "AM"
	hour := t.Hour
	switch {
	case hour == 0:
		hour = 12
	case hour == 12:
		period = "PM"
	case hour > 12:
		hour -= 12
		period = "PM"
	}
	return fmt.Sprintf("%d:%02d %s", hour, t.Minute, period)
}
