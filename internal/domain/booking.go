package domain

import (
	"strings"
	"time"
)

// Booking is a committed reservation of one slot of one space on one
// date. It lives in the ledger and is the only mutable shared state in
// the system: created by a successful booking, destroyed by an explicit
// cancellation, never otherwise modified.
//
// SpaceName and Building are denormalized at commit time so that a
// user's booking list can be rendered without a catalog lookup, and so
// that bookings survive catalog changes unchanged.
type Booking struct {
	BookingID string    `json:"bookingId"`
	UserID    string    `json:"userId"`
	SpaceID   string    `json:"spaceId"`
	SpaceName string    `json:"spaceName"`
	Building  string    `json:"building"`
	Date      string    `json:"date"`
	TimeSlot  string    `json:"timeSlot"`
	CreatedAt time.Time `json:"createdAt"`
}

// StartTime returns the start-time portion of the booked slot label.
// Example: "10:00-12:00" -> "10:00". Bookings carry the caller-supplied
// label while availability is read back by start time, so all slot
// comparisons go through this prefix (see Project).
func (b Booking) StartTime() string {
	if i := strings.IndexByte(b.TimeSlot, '-'); i >= 0 {
		return b.TimeSlot[:i]
	}
	return b.TimeSlot
}

// SlotStart extracts the start time of any slot label, using the same
// rule as Booking.StartTime.
func SlotStart(label string) string {
	if i := strings.IndexByte(label, '-'); i >= 0 {
		return label[:i]
	}
	return label
}
