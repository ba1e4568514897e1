package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/BillJamesM/UdubHacks/internal/domain"
)

// Store persists the booking ledger in Redis. The whole ledger lives
// under one key as a JSON array, mirroring how the ledger is held in
// memory: every save replaces the full array, every load reads it back.
type Store struct {
	client *redis.Client
}

// NewStore creates a ledger store on the given client.
func NewStore(client *redis.Client) *Store {
	return &Store{
		client: client,
	}
}

// Save replaces the persisted ledger with the given bookings. The key
// carries no TTL: bookings only disappear through cancellation or the
// stale-booking sweep.
func (s *Store) Save(ctx context.Context, bookings []domain.Booking) error {
	data, err := json.Marshal(bookings)
	if err != nil {
		return fmt.Errorf("failed to marshal bookings: %w", err)
	}

	if err := s.client.Set(ctx, BookingsKey(), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save bookings: %w", err)
	}

	return nil
}

// Load reads the persisted ledger. A missing key yields an empty
// ledger, not an error.
func (s *Store) Load(ctx context.Context) ([]domain.Booking, error) {
	data, err := s.client.Get(ctx, BookingsKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []domain.Booking{}, nil
		}
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}

	var bookings []domain.Booking
	if err := json.Unmarshal(data, &bookings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal bookings: %w", err)
	}

	return bookings, nil
}
