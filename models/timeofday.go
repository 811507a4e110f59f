package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// TimeOfDay is a wall-clock time with no date attached.
type TimeOfDay struct {
	Hour   int `bson:"hour" json:"hour"`
	Minute int `bson:"minute" json:"minute"`
}

// Minutes returns the offset from midnight.
func (t TimeOfDay) Minutes() int {
	return t.Hour*60 + t.Minute
}

// Clock formats the time as zero-padded "HH:MM".
func (t TimeOfDay) Clock() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// IsZero reports whether the time is exactly midnight. Bookings stored with
// no time component arrive as all-zero values.
func (t TimeOfDay) IsZero() bool {
	return t.Hour == 0 && t.Minute == 0
}

// MarshalJSON encodes the time as its "HH:MM" wire form.
func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Clock())
}

// UnmarshalJSON accepts "HH:MM" or "HH:MM:SS" strings as supplied by the
// availability source. Seconds are discarded.
func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*t = TimeOfDay{}
		return nil
	}
	parts := strings.Split(s, ":")
	if len(parts) < 2 {
		return fmt.Errorf("invalid time %q: expected HH:MM", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return fmt.Errorf("invalid hour in %q", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return fmt.Errorf("invalid minute in %q", s)
	}
	*t = TimeOfDay{Hour: hour, Minute: minute}
	return nil
}
