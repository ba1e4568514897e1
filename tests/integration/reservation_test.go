package integration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BillJamesM/UdubHacks/internal/catalog"
	"github.com/BillJamesM/UdubHacks/internal/domain"
	"github.com/BillJamesM/UdubHacks/internal/ledger"
	"github.com/BillJamesM/UdubHacks/internal/logger"
	"github.com/BillJamesM/UdubHacks/internal/reservation"
)

const testDate = "2025-05-17"

type memStore struct {
	saved []domain.Booking
}

func (s *memStore) Save(_ context.Context, bookings []domain.Booking) error {
	s.saved = append([]domain.Booking(nil), bookings...)
	return nil
}

func (s *memStore) Load(_ context.Context) ([]domain.Booking, error) {
	return s.saved, nil
}

// newStack loads the real catalog file and wires the full service stack
// over an in-memory persistence backend.
func newStack(t *testing.T, store *memStore) *reservation.Service {
	t.Helper()

	log := logger.New("error", false)

	file, err := catalog.NewLoader("../../catalog.yaml").Load()
	require.NoError(t, err)

	spaces, err := catalog.NewMapper().MapSpaces(file)
	require.NoError(t, err)
	require.NotEmpty(t, spaces)

	cat := catalog.New()
	cat.Replace(spaces)

	led := ledger.New(store, log)
	led.Restore(context.Background())

	now := func() time.Time { return time.Date(2025, 5, 16, 9, 0, 0, 0, time.UTC) }
	return reservation.New(cat, led, log, now)
}

func TestFullReservationFlow(t *testing.T) {
	store := &memStore{}
	svc := newStack(t, store)
	ctx := context.Background()

	// The catalog ships CP-324A with 10:00-12:00 free on the test date.
	results := svc.Search(domain.Filter{Date: testDate, TimeSlot: "10:00-12:00"})
	ids := resultIDs(results)
	assert.Contains(t, ids, "CP-324A")
	assert.NotContains(t, ids, "CP-324B", "base-unavailable slot must exclude the space")

	booking, err := svc.Book(ctx, "student-42", "CP-324A", testDate, "10:00-12:00")
	require.NoError(t, err)
	assert.Equal(t, "Main Library", booking.Building)

	// The booked space drops out of slot-targeted searches.
	results = svc.Search(domain.Filter{Date: testDate, TimeSlot: "10:00-12:00"})
	assert.NotContains(t, resultIDs(results), "CP-324A")

	// Another user cannot take the same slot.
	_, err = svc.Book(ctx, "student-7", "CP-324A", testDate, "10:00-12:00")
	assert.ErrorIs(t, err, reservation.ErrSlotUnavailable)

	// Persistence saw the booking.
	require.Len(t, store.saved, 1)
	assert.Equal(t, booking.BookingID, store.saved[0].BookingID)

	// Cancel frees the slot and empties the persisted ledger.
	require.NoError(t, svc.Cancel(ctx, booking.BookingID))
	results = svc.Search(domain.Filter{Date: testDate, TimeSlot: "10:00-12:00"})
	assert.Contains(t, resultIDs(results), "CP-324A")
	assert.Empty(t, store.saved)
}

func TestBookingsSurviveRestart(t *testing.T) {
	store := &memStore{}
	ctx := context.Background()

	svc := newStack(t, store)
	booking, err := svc.Book(ctx, "student-42", "lib-commons", testDate, "14:00-16:00")
	require.NoError(t, err)

	// A fresh stack over the same store restores the ledger.
	svc2 := newStack(t, store)
	bookings := svc2.ListUserBookings("student-42")
	require.Len(t, bookings, 1)
	assert.Equal(t, booking.BookingID, bookings[0].BookingID)

	_, err = svc2.Book(ctx, "student-7", "lib-commons", testDate, "14:00-16:00")
	assert.ErrorIs(t, err, reservation.ErrSlotUnavailable)
}

func TestFreeTextSearchFlow(t *testing.T) {
	svc := newStack(t, &memStore{})

	filter, results := svc.SearchText("I need a quiet room with power outlets")
	assert.Equal(t, domain.NoiseQuiet, filter.NoiseLevel)

	ids := resultIDs(results)
	assert.Contains(t, ids, "MDS-302")
	assert.Contains(t, ids, "lib-commons")
	assert.NotContains(t, ids, "CP-324A")

	// "big group" raises the capacity floor past the small rooms.
	filter, results = svc.SearchText("space for a big group with a whiteboard")
	assert.Equal(t, 8, filter.MinCapacity)
	assert.Equal(t, []string{"whiteboard"}, filter.Features)
	assert.Equal(t, []string{"CP-324B"}, resultIDs(results))
}

func resultIDs(results []reservation.SpaceAvailability) []string {
	ids := make([]string, 0, len(results))
	for _, res := range results {
		ids = append(ids, res.Space.ID)
	}
	return ids
}
