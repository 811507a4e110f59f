package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vendora/models"
)

func TestTimeOptions(t *testing.T) {
	options := TimeOptions()
	require.Len(t, options, 48)
	assert.Equal(t, "00:00", options[0])
	assert.Equal(t, "00:30", options[1])
	assert.Equal(t, "23:30", options[47])
}

func TestFilteredStartTimes(t *testing.T) {
	options := TimeOptions()
	businessHours := []models.WeeklyHours{
		hoursEntry(time.Monday, true, "09:00", "17:00"),
	}

	t.Run("zero date yields nothing", func(t *testing.T) {
		assert.Nil(t, FilteredStartTimes(time.Time{}, businessHours, nil, options))
	})

	t.Run("missing hours fail open to every option", func(t *testing.T) {
		got := FilteredStartTimes(monday, nil, nil, options)
		assert.Equal(t, options, got)
	})

	t.Run("open hours bound the options half-open", func(t *testing.T) {
		got := FilteredStartTimes(monday, businessHours, nil, options)
		require.NotEmpty(t, got)
		assert.Equal(t, "09:00", got[0])
		assert.Equal(t, "16:30", got[len(got)-1], "closing time is not a start")
		assert.Len(t, got, 16)
	})

	t.Run("booked range excludes its start but not its end", func(t *testing.T) {
		bookings := []models.Booking{booking("2025-06-09", "10:00", "12:00", models.StatusConfirmed)}
		got := FilteredStartTimes(monday, businessHours, bookings, options)

		assert.Contains(t, got, "09:30")
		assert.NotContains(t, got, "10:00")
		assert.NotContains(t, got, "11:30")
		assert.Contains(t, got, "12:00", "a new event may start where the previous one ends")
	})

	t.Run("cancelled bookings do not block", func(t *testing.T) {
		bookings := []models.Booking{booking("2025-06-09", "10:00", "12:00", models.StatusCancelled)}
		got := FilteredStartTimes(monday, businessHours, bookings, options)
		assert.Contains(t, got, "10:00")
	})

	t.Run("closed day after overnight session offers only the morning", func(t *testing.T) {
		overnight := []models.WeeklyHours{
			hoursEntry(time.Friday, true, "20:00", "01:00"),
		}
		got := FilteredStartTimes(saturday, overnight, nil, options)
		assert.Equal(t, []string{"00:00", "00:30"}, got)
	})

	t.Run("overnight day offers its evening", func(t *testing.T) {
		overnight := []models.WeeklyHours{
			hoursEntry(time.Friday, true, "20:00", "01:00"),
		}
		got := FilteredStartTimes(friday, overnight, nil, options)
		require.Len(t, got, 8)
		assert.Equal(t, "20:00", got[0])
		assert.Equal(t, "23:30", got[7])
	})
}

func TestFilteredEndTimes(t *testing.T) {
	options := TimeOptions()
	businessHours := []models.WeeklyHours{
		hoursEntry(time.Monday, true, "09:00", "17:00"),
	}

	t.Run("missing start yields nothing", func(t *testing.T) {
		assert.Nil(t, FilteredEndTimes(monday, "", businessHours, nil, options))
		assert.Nil(t, FilteredEndTimes(time.Time{}, "10:00", businessHours, nil, options))
	})

	t.Run("strictly after start up to and including close", func(t *testing.T) {
		got := FilteredEndTimes(monday, "10:00", businessHours, nil, options)
		require.NotEmpty(t, got)
		assert.Equal(t, "10:30", got[0])
		assert.Equal(t, "17:00", got[len(got)-1], "closing time is a valid end")
		assert.NotContains(t, got, "10:00")
	})

	t.Run("next booking clamps the range", func(t *testing.T) {
		bookings := []models.Booking{booking("2025-06-09", "13:00", "15:00", models.StatusConfirmed)}
		got := FilteredEndTimes(monday, "10:00", businessHours, bookings, options)
		require.NotEmpty(t, got)
		assert.Equal(t, "13:00", got[len(got)-1], "end may meet the next booking's start")
	})

	t.Run("start inside inherited morning ends at the cutoff", func(t *testing.T) {
		overnight := []models.WeeklyHours{
			hoursEntry(time.Friday, true, "20:00", "01:00"),
		}
		got := FilteredEndTimes(saturday, "00:00", overnight, nil, options)
		assert.Equal(t, []string{"00:30", "01:00"}, got)
	})

	t.Run("start in overnight evening runs to the last option", func(t *testing.T) {
		overnight := []models.WeeklyHours{
			hoursEntry(time.Friday, true, "20:00", "01:00"),
		}
		got := FilteredEndTimes(friday, "22:00", overnight, nil, options)
		require.NotEmpty(t, got)
		assert.Equal(t, "22:30", got[0])
		assert.Equal(t, "23:30", got[len(got)-1])
	})

	t.Run("start outside any window yields nothing", func(t *testing.T) {
		got := FilteredEndTimes(monday, "18:00", businessHours, nil, options)
		assert.Empty(t, got)
	})
}

func TestAutoEndTime(t *testing.T) {
	businessHours := []models.WeeklyHours{
		hoursEntry(time.Monday, true, "09:00", "22:00"),
	}

	t.Run("default duration", func(t *testing.T) {
		end, ok := AutoEndTime("10:00", monday, businessHours, 0)
		require.True(t, ok)
		assert.Equal(t, "15:00", end)
	})

	t.Run("explicit duration", func(t *testing.T) {
		end, ok := AutoEndTime("10:00", monday, businessHours, 2)
		require.True(t, ok)
		assert.Equal(t, "12:00", end)
	})

	t.Run("clamped to closing time", func(t *testing.T) {
		shortDay := []models.WeeklyHours{hoursEntry(time.Monday, true, "09:00", "17:00")}
		end, ok := AutoEndTime("15:00", monday, shortDay, 5)
		require.True(t, ok)
		assert.Equal(t, "17:00", end)
	})

	t.Run("hard capped at the last option", func(t *testing.T) {
		overnight := []models.WeeklyHours{hoursEntry(time.Friday, true, "20:00", "01:00")}
		end, ok := AutoEndTime("22:00", friday, overnight, 5)
		require.True(t, ok)
		assert.Equal(t, "23:30", end)
	})

	t.Run("missing inputs", func(t *testing.T) {
		_, ok := AutoEndTime("", monday, businessHours, 5)
		assert.False(t, ok)
		_, ok = AutoEndTime("10:00", time.Time{}, businessHours, 5)
		assert.False(t, ok)
	})

	t.Run("no room after the start", func(t *testing.T) {
		_, ok := AutoEndTime("23:30", monday, nil, 5)
		assert.False(t, ok)
	})
}
