package redis

const (
	// KeyBookings is the single named slot holding the full booking
	// ledger as a JSON array. Absence of the key is equivalent to an
	// empty ledger.
	KeyBookings = "campus:bookings"
)

// BookingsKey returns the Redis key for the persisted ledger.
func BookingsKey() string {
	return KeyBookings
}
