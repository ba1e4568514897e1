package reservation

import "errors"

var (
	// ErrSpaceNotFound is returned when a booking targets a space
	// that does not exist in the catalog.
	ErrSpaceNotFound = errors.New("space not found")

	// ErrSlotUnavailable is returned when the requested slot is not
	// offered on that date, is closed in the template, or is already
	// taken by a prior booking.
	ErrSlotUnavailable = errors.New("slot unavailable")

	// ErrBookingNotFound is returned when cancelling a booking id
	// that is not part of the ledger.
	ErrBookingNotFound = errors.New("booking not found")
)
