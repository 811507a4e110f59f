package models

// MinutesPerDay is the length of a calendar date's timeline.
const MinutesPerDay = 24 * 60

// DayStatus classifies one calendar date for the booking calendar grid.
type DayStatus string

const (
	DayEmpty           DayStatus = "empty"
	DayPast            DayStatus = "past"
	DayUnavailable     DayStatus = "unavailable"
	DayPartiallyBooked DayStatus = "partially_booked"
	DayFullyBooked     DayStatus = "fully_booked"
	DayAvailable       DayStatus = "available"
)

// Segment is a contiguous open-for-business minute range within a single
// calendar date, half-open as [Start, End) with both bounds in [0, 1440].
type Segment struct {
	Start int `json:"start"` // minutes from midnight
	End   int `json:"end"`
}

// Contains reports whether the given minute offset falls inside the segment.
func (s Segment) Contains(minute int) bool {
	return minute >= s.Start && minute < s.End
}

// StartPct returns the segment start as a percentage of the 24-hour day,
// for direct use as a timeline left offset.
func (s Segment) StartPct() float64 {
	return float64(s.Start) / MinutesPerDay * 100
}

// WidthPct returns the segment span as a percentage of the 24-hour day.
func (s Segment) WidthPct() float64 {
	return float64(s.End-s.Start) / MinutesPerDay * 100
}

// SegmentView carries a segment in both minute and percentage form for the
// timeline renderer.
type SegmentView struct {
	Start    int     `json:"start"`
	End      int     `json:"end"`
	StartPct float64 `json:"startPct"`
	WidthPct float64 `json:"widthPct"`
}

// ViewOf converts a segment to its render form.
func ViewOf(s Segment) SegmentView {
	return SegmentView{
		Start:    s.Start,
		End:      s.End,
		StartPct: s.StartPct(),
		WidthPct: s.WidthPct(),
	}
}

// SlotGeometry positions one booked slot (or an in-progress selection) on a
// horizontal 24-hour timeline.
type SlotGeometry struct {
	BookingID string  `json:"bookingId,omitempty"`
	StartPct  float64 `json:"startPct"`
	WidthPct  float64 `json:"widthPct"`
}

// DayCell is one cell of the month calendar grid. A nil Date marks a leading
// blank used to align the first row to a Sunday-first layout.
type DayCell struct {
	Date     string        `json:"date,omitempty"` // "YYYY-MM-DD", empty for blanks
	Status   DayStatus     `json:"status"`
	Segments []SegmentView `json:"segments,omitempty"`
}

// MonthView is the calendar response for one vendor month.
type MonthView struct {
	VendorID string    `json:"vendorId"`
	Year     int       `json:"year"`
	Month    int       `json:"month"`
	Cells    []DayCell `json:"cells"`
}

// DayTimesView is the picker response for one vendor date: the selectable
// start times, the end times valid for the chosen start (when given), a
// proposed end time, and timeline geometry for existing bookings.
type DayTimesView struct {
	VendorID    string         `json:"vendorId"`
	Date        string         `json:"date"`
	Status      DayStatus      `json:"status"`
	StartTimes  []string       `json:"startTimes"`
	EndTimes    []string       `json:"endTimes,omitempty"`
	AutoEndTime string         `json:"autoEndTime,omitempty"`
	BookedSlots []SlotGeometry `json:"bookedSlots"`
	Selected    *SlotGeometry  `json:"selected,omitempty"`
}
