package models

import "time"

// WeeklyHours describes a vendor's standing business hours for one weekday.
// DayOfWeek follows time.Weekday numbering (0 = Sunday) and is unique within
// a vendor's set of seven entries.
type WeeklyHours struct {
	DayOfWeek   int       `bson:"dayOfWeek" json:"dayOfWeek"`
	IsAvailable bool      `bson:"isAvailable" json:"isAvailable"`
	OpenTime    TimeOfDay `bson:"openTime" json:"openTime"`
	CloseTime   TimeOfDay `bson:"closeTime" json:"closeTime"`
}

// Overnight reports whether the entry closes after midnight on the following
// calendar date (close earlier on the clock than open).
func (w WeeklyHours) Overnight() bool {
	return w.CloseTime.Minutes() < w.OpenTime.Minutes()
}

// AvailabilityException overrides the weekly hours for one specific date,
// e.g. a holiday closure. Unique per date per vendor.
type AvailabilityException struct {
	Date        string `bson:"date" json:"date"` // "YYYY-MM-DD"
	IsAvailable bool   `bson:"isAvailable" json:"isAvailable"`
	Reason      string `bson:"reason,omitempty" json:"reason,omitempty"`
}

// VendorAvailability is the persisted availability aggregate for one vendor.
type VendorAvailability struct {
	VendorID    string                  `bson:"vendorId" json:"vendorId"`
	WeeklyHours []WeeklyHours           `bson:"weeklyHours" json:"weeklyHours"`
	Exceptions  []AvailabilityException `bson:"exceptions" json:"exceptions"`
	UpdatedAt   time.Time               `bson:"updatedAt" json:"updatedAt"`
}

// HoursFor returns the weekly entry for the given weekday, or nil when the
// vendor has no entry for that day.
func HoursFor(hours []WeeklyHours, day time.Weekday) *WeeklyHours {
	for i := range hours {
		if hours[i].DayOfWeek == int(day) {
			return &hours[i]
		}
	}
	return nil
}
