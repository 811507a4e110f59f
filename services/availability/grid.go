package availability

import "time"

// BuildMonthGrid returns the ordered day cells for a Sunday-first month grid:
// one nil entry per weekday before the 1st, then one entry per day of the
// month. No trailing padding is added; row completion is the renderer's job.
func BuildMonthGrid(year int, month time.Month) []*time.Time {
	firstDay := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	leading := int(firstDay.Weekday())
	days := daysIn(year, month)

	cells := make([]*time.Time, 0, leading+days)
	for i := 0; i < leading; i++ {
		cells = append(cells, nil)
	}
	for day := 1; day <= days; day++ {
		d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		cells = append(cells, &d)
	}
	return cells
}

func daysIn(year int, m time.Month) int {
	// Day 0 of the next month normalizes to this month's last day.
	return time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
