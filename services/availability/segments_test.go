package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vendora/models"
)

// Fixed reference dates: 2025-06-06 is a Friday, 2025-06-07 a Saturday.
var (
	friday   = time.Date(2025, time.June, 6, 0, 0, 0, 0, time.UTC)
	saturday = time.Date(2025, time.June, 7, 0, 0, 0, 0, time.UTC)
	monday   = time.Date(2025, time.June, 9, 0, 0, 0, 0, time.UTC)
)

func hoursEntry(day time.Weekday, available bool, open, closeAt string) models.WeeklyHours {
	openT, _ := ParseClock(open)
	closeT, _ := ParseClock(closeAt)
	return models.WeeklyHours{
		DayOfWeek:   int(day),
		IsAvailable: available,
		OpenTime:    openT,
		CloseTime:   closeT,
	}
}

func TestResolveOpenHoursNormalDay(t *testing.T) {
	hours := []models.WeeklyHours{
		hoursEntry(time.Monday, true, "09:00", "17:00"),
	}

	oh := ResolveOpenHours(monday, hours)
	require.Len(t, oh.Segments, 1)
	assert.Equal(t, models.Segment{Start: 540, End: 1020}, oh.Segments[0])
	assert.Zero(t, oh.MorningCutoff)
	require.NotNil(t, oh.Own)
	assert.Equal(t, int(time.Monday), oh.Own.DayOfWeek)
}

func TestResolveOpenHoursOvernightEvening(t *testing.T) {
	// Friday 20:00-01:00 wraps past midnight: Friday itself keeps only the
	// evening portion.
	hours := []models.WeeklyHours{
		hoursEntry(time.Friday, true, "20:00", "01:00"),
	}

	oh := ResolveOpenHours(friday, hours)
	require.Len(t, oh.Segments, 1)
	assert.Equal(t, models.Segment{Start: 1200, End: models.MinutesPerDay}, oh.Segments[0])
	assert.Zero(t, oh.MorningCutoff)
}

func TestResolveOpenHoursInheritedMorning(t *testing.T) {
	// A closed Saturday after an overnight Friday inherits [00:00, 01:00).
	hours := []models.WeeklyHours{
		hoursEntry(time.Friday, true, "20:00", "01:00"),
		hoursEntry(time.Saturday, false, "00:00", "00:00"),
	}

	oh := ResolveOpenHours(saturday, hours)
	assert.Equal(t, 60, oh.MorningCutoff)
	require.Len(t, oh.Segments, 1)
	assert.Equal(t, models.Segment{Start: 0, End: 60}, oh.Segments[0])
}

func TestResolveOpenHoursMorningPlusOwnHours(t *testing.T) {
	// Inherited morning and the day's own hours are both open.
	hours := []models.WeeklyHours{
		hoursEntry(time.Friday, true, "20:00", "02:00"),
		hoursEntry(time.Saturday, true, "10:00", "18:00"),
	}

	segs := ResolveOpenSegments(saturday, hours)
	require.Len(t, segs, 2)
	assert.Equal(t, models.Segment{Start: 0, End: 120}, segs[0])
	assert.Equal(t, models.Segment{Start: 600, End: 1080}, segs[1])
}

func TestResolveOpenHoursTouchingSegmentsMerge(t *testing.T) {
	// Morning cutoff at 02:00 touching own hours opening at 02:00 coalesce
	// into one segment.
	hours := []models.WeeklyHours{
		hoursEntry(time.Friday, true, "20:00", "02:00"),
		hoursEntry(time.Saturday, true, "02:00", "10:00"),
	}

	segs := ResolveOpenSegments(saturday, hours)
	require.Len(t, segs, 1)
	assert.Equal(t, models.Segment{Start: 0, End: 600}, segs[0])
}

func TestResolveOpenHoursMidnightCloseIsNotOvernight(t *testing.T) {
	// A previous day closing exactly at 00:00 contributes no morning segment.
	hours := []models.WeeklyHours{
		hoursEntry(time.Friday, true, "20:00", "00:00"),
		hoursEntry(time.Saturday, true, "09:00", "17:00"),
	}

	oh := ResolveOpenHours(saturday, hours)
	assert.Zero(t, oh.MorningCutoff)
	require.Len(t, oh.Segments, 1)
	assert.Equal(t, models.Segment{Start: 540, End: 1020}, oh.Segments[0])
}

func TestResolveOpenHoursNoHours(t *testing.T) {
	oh := ResolveOpenHours(monday, nil)
	assert.Empty(t, oh.Segments)
	assert.Nil(t, oh.Own)

	// A week where the day is simply marked unavailable.
	hours := []models.WeeklyHours{
		hoursEntry(time.Monday, false, "00:00", "00:00"),
	}
	assert.Empty(t, ResolveOpenSegments(monday, hours))
}

func TestInSegmentsHalfOpen(t *testing.T) {
	segs := []models.Segment{{Start: 540, End: 1020}}

	assert.True(t, InSegments(segs, 540), "segment start is included")
	assert.True(t, InSegments(segs, 1019))
	assert.False(t, InSegments(segs, 1020), "segment end is excluded")
	assert.False(t, InSegments(segs, 539))
	assert.False(t, InSegments(nil, 540))
}
