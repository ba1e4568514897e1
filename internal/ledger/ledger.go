package ledger

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/BillJamesM/UdubHacks/internal/domain"
	"github.com/BillJamesM/UdubHacks/internal/logger"
)

// ErrNotFound is returned when a booking id does not exist in the
// ledger. Removing an already-removed booking fails with this same
// error, never with anything unrecoverable.
var ErrNotFound = errors.New("booking not found")

// Store persists the full ledger as one unit. The ledger mirrors every
// mutation into the store synchronously so a restart observes the same
// state.
type Store interface {
	Save(ctx context.Context, bookings []domain.Booking) error
	Load(ctx context.Context) ([]domain.Booking, error)
}

// Ledger is the authoritative set of committed bookings: an in-memory
// slice mirrored into a persistence store on every mutation.
//
// The ledger itself does not enforce slot uniqueness; Append is blind.
// The reservation service serializes its check-then-append sequence so
// the per-slot invariant holds (see reservation.Service.Book).
type Ledger struct {
	mu       sync.RWMutex
	bookings []domain.Booking
	store    Store
	logger   logger.Logger
}

// New creates a ledger backed by the given store.
func New(store Store, log logger.Logger) *Ledger {
	return &Ledger{
		store:  store,
		logger: log,
	}
}

// Restore loads the persisted ledger. A missing or unreadable store
// degrades to an empty ledger with a warning: losing the persisted
// bookings means every slot shows as available again, an accepted
// data-loss tradeoff rather than a correctness bug.
func (l *Ledger) Restore(ctx context.Context) {
	bookings, err := l.store.Load(ctx)
	if err != nil {
		l.logger.Warn("failed to restore ledger, starting empty",
			logger.Error(err))
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.bookings = bookings

	l.logger.Info("ledger restored",
		logger.Int("bookings", len(bookings)))
}

// Append assigns a fresh booking id, appends the booking and persists
// the full ledger before returning. It never rejects a booking.
func (l *Ledger) Append(ctx context.Context, booking domain.Booking) (string, error) {
	booking.BookingID = "book-" + uuid.NewString()
	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = time.Now().UTC()
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.bookings = append(l.bookings, booking)
	l.persistLocked(ctx)

	return booking.BookingID, nil
}

// ListByUser returns all bookings owned by the user, oldest first.
func (l *Ledger) ListByUser(userID string) []domain.Booking {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var out []domain.Booking
	for _, b := range l.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out
}

// Remove deletes the booking with the given id and persists the
// shrunken ledger. Unknown ids fail with ErrNotFound.
func (l *Ledger) Remove(ctx context.Context, bookingID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, b := range l.bookings {
		if b.BookingID != bookingID {
			continue
		}
		l.bookings = append(l.bookings[:i], l.bookings[i+1:]...)
		l.persistLocked(ctx)
		return nil
	}

	return ErrNotFound
}

// Snapshot returns a read-only point-in-time copy for the projector.
func (l *Ledger) Snapshot() []domain.Booking {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]domain.Booking, len(l.bookings))
	copy(out, l.bookings)
	return out
}

// Len returns the number of active bookings.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.bookings)
}

// PruneBefore removes bookings dated strictly before the cutoff date
// (YYYY-MM-DD) and persists once if anything changed. Returns the
// number of bookings removed.
func (l *Ledger) PruneBefore(ctx context.Context, cutoff string) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	kept := l.bookings[:0]
	removed := 0
	for _, b := range l.bookings {
		if b.Date != "" && b.Date < cutoff {
			removed++
			continue
		}
		kept = append(kept, b)
	}

	if removed > 0 {
		l.bookings = kept
		l.persistLocked(ctx)
	}
	return removed
}

// persistLocked mirrors the current ledger into the store. Persistence
// failures are logged, not propagated: the in-memory commit stands and
// the service stays usable even with a broken store.
func (l *Ledger) persistLocked(ctx context.Context) {
	snapshot := make([]domain.Booking, len(l.bookings))
	copy(snapshot, l.bookings)

	if err := l.store.Save(ctx, snapshot); err != nil {
		l.logger.Warn("failed to persist ledger",
			logger.Int("bookings", len(snapshot)),
			logger.Error(err))
	}
}
