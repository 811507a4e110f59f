package models

import (
	"encoding/json"
	"strings"
	"time"
)

// BookingStatus is the closed set of booking lifecycle states. Raw status
// strings are normalized to lowercase at the ingestion boundary so that
// availability checks never re-derive activeness via string comparison.
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusPending   BookingStatus = "pending"
	StatusPaid      BookingStatus = "paid"
	StatusApproved  BookingStatus = "approved"
	StatusCancelled BookingStatus = "cancelled"
	StatusDeclined  BookingStatus = "declined"
	StatusCompleted BookingStatus = "completed"
)

// NormalizeStatus maps a raw status string onto the closed enum.
func NormalizeStatus(raw string) BookingStatus {
	return BookingStatus(strings.ToLower(strings.TrimSpace(raw)))
}

// Active reports whether the booking blocks availability. Only confirmed,
// pending, paid and approved bookings participate in availability
// computation; every other status is ignored.
func (s BookingStatus) Active() bool {
	switch s {
	case StatusConfirmed, StatusPending, StatusPaid, StatusApproved:
		return true
	}
	return false
}

// UnmarshalJSON lowercases incoming status strings so callers may pass
// unfiltered lists in whatever casing their backend uses.
func (s *BookingStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = NormalizeStatus(raw)
	return nil
}

// Booking is an event booking against a vendor. The availability core treats
// bookings as read-only snapshots; overlap between bookings is assumed but
// not enforced here.
type Booking struct {
	ID           string        `bson:"id" json:"id"`
	VendorID     string        `bson:"vendorId" json:"vendorId"`
	ClientID     string        `bson:"clientId" json:"clientId"`
	EventDate    string        `bson:"eventDate" json:"eventDate"` // "YYYY-MM-DD"
	EventTime    TimeOfDay     `bson:"eventTime" json:"eventTime"`
	EventEndTime TimeOfDay     `bson:"eventEndTime" json:"eventEndTime"`
	Status       BookingStatus `bson:"status" json:"status"`
	CreatedAt    time.Time     `bson:"createdAt" json:"createdAt"`
}

// AllDay reports whether the booking carries no time component at all, which
// is treated as a full-day block.
func (b Booking) AllDay() bool {
	return b.EventTime.IsZero() && b.EventEndTime.IsZero()
}
