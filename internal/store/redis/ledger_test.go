package redis

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/go-redis/redismock/v9"

	"github.com/BillJamesM/UdubHacks/internal/domain"
)

func sampleBookings() []domain.Booking {
	return []domain.Booking{
		{
			BookingID: "book-1",
			UserID:    "u1",
			SpaceID:   "CP-324A",
			SpaceName: "CP-324A",
			Building:  "Main Library",
			Date:      "2025-05-17",
			TimeSlot:  "10:00-12:00",
		},
	}
}

func TestStoreSave(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := NewStore(db)

	bookings := sampleBookings()
	data, err := json.Marshal(bookings)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	mock.ExpectSet(BookingsKey(), data, 0).SetVal("OK")

	if err := store.Save(context.Background(), bookings); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestStoreLoadRoundTrip(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := NewStore(db)

	bookings := sampleBookings()
	data, err := json.Marshal(bookings)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	mock.ExpectGet(BookingsKey()).SetVal(string(data))

	loaded, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if len(loaded) != 1 {
		t.Fatalf("Load() returned %d bookings, want 1", len(loaded))
	}
	if loaded[0] != bookings[0] {
		t.Errorf("round trip lost data: %+v != %+v", loaded[0], bookings[0])
	}
}

func TestStoreLoadMissingKey(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := NewStore(db)

	mock.ExpectGet(BookingsKey()).RedisNil()

	loaded, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() on missing key should not fail: %v", err)
	}
	if len(loaded) != 0 {
		t.Errorf("Load() on missing key = %+v, want empty ledger", loaded)
	}
}

func TestStoreLoadCorruptPayload(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := NewStore(db)

	mock.ExpectGet(BookingsKey()).SetVal("{not json")

	if _, err := store.Load(context.Background()); err == nil {
		t.Fatal("Load() should surface a corrupt payload as an error")
	}
}
