package reservation

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/BillJamesM/UdubHacks/internal/domain"
	"github.com/BillJamesM/UdubHacks/internal/ledger"
	"github.com/BillJamesM/UdubHacks/internal/logger"
)

// Catalog is the read-only space catalog the service searches over.
type Catalog interface {
	ListSpaces() []*domain.Space
	GetSpace(id string) (*domain.Space, bool)
}

// SpaceAvailability pairs a space with its projected slots for the
// searched date. Slots is empty when the space has no published
// schedule for that date.
type SpaceAvailability struct {
	Space *domain.Space
	Slots []domain.SlotView
}

// Service implements the booking operations over a catalog and a ledger.
//
// Book serializes its check-then-append under bookMu so two concurrent
// requests for the same slot cannot both observe it as free.
type Service struct {
	catalog Catalog
	ledger  *ledger.Ledger
	logger  logger.Logger
	now     func() time.Time

	bookMu sync.Mutex
}

func New(cat Catalog, led *ledger.Ledger, log logger.Logger, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{
		catalog: cat,
		ledger:  led,
		logger:  log,
		now:     now,
	}
}

// Search returns the spaces matching the filter, in catalog order.
// Each result includes the projected slots for the filter's date, which
// defaults to today when unspecified. When the filter also carries a
// time slot, spaces whose matching slot is absent or already taken are
// excluded.
func (s *Service) Search(filter domain.Filter) []SpaceAvailability {
	if filter.Date == "" {
		filter.Date = s.now().Format("2006-01-02")
	}

	snapshot := s.ledger.Snapshot()

	results := []SpaceAvailability{}
	for _, space := range s.catalog.ListSpaces() {
		if !filter.MatchesSpace(space) {
			continue
		}

		slots := domain.Project(space, filter.Date, snapshot)

		if filter.WantsSlot() {
			slot, ok := findSlot(slots, filter.TimeSlot)
			if !ok || !slot.Available {
				continue
			}
		}

		results = append(results, SpaceAvailability{Space: space, Slots: slots})
	}
	return results
}

// SearchText extracts a structured filter from a free-text request and
// runs a regular search with it.
func (s *Service) SearchText(utterance string) (domain.Filter, []SpaceAvailability) {
	filter := domain.ExtractFilter(utterance)
	return filter, s.Search(filter)
}

// Book records a booking for the given slot. The slot must exist in the
// space's template for that date and be free at the time of the call.
func (s *Service) Book(ctx context.Context, userID, spaceID, date, timeSlot string) (domain.Booking, error) {
	s.bookMu.Lock()
	defer s.bookMu.Unlock()

	space, ok := s.catalog.GetSpace(spaceID)
	if !ok {
		return domain.Booking{}, ErrSpaceNotFound
	}

	slots := domain.Project(space, date, s.ledger.Snapshot())
	slot, found := findSlot(slots, timeSlot)
	if !found || !slot.Available {
		return domain.Booking{}, ErrSlotUnavailable
	}

	booking := domain.Booking{
		UserID:    userID,
		SpaceID:   space.ID,
		SpaceName: space.Name,
		Building:  space.Building,
		Date:      date,
		TimeSlot:  slot.Time,
		CreatedAt: s.now().UTC(),
	}

	id, err := s.ledger.Append(ctx, booking)
	if err != nil {
		return domain.Booking{}, err
	}
	booking.BookingID = id

	s.logger.Info("booking created",
		logger.String("booking_id", id),
		logger.String("space_id", space.ID),
		logger.String("date", date),
		logger.String("slot", slot.Time))

	return booking, nil
}

// Cancel removes a booking from the ledger. Cancelling an unknown id
// fails with ErrBookingNotFound and changes nothing.
func (s *Service) Cancel(ctx context.Context, bookingID string) error {
	err := s.ledger.Remove(ctx, bookingID)
	if errors.Is(err, ledger.ErrNotFound) {
		return ErrBookingNotFound
	}
	if err != nil {
		return err
	}

	s.logger.Info("booking cancelled", logger.String("booking_id", bookingID))
	return nil
}

// ListUserBookings returns the user's bookings, oldest first.
func (s *Service) ListUserBookings(userID string) []domain.Booking {
	return s.ledger.ListByUser(userID)
}

// findSlot locates the template slot whose label starts with the
// requested slot's start time. "10:00-12:00" and "10:00 - 12:00" name
// the same slot.
func findSlot(slots []domain.SlotView, timeSlot string) (domain.SlotView, bool) {
	start := domain.SlotStart(timeSlot)
	if start == "" {
		return domain.SlotView{}, false
	}
	for _, slot := range slots {
		if strings.HasPrefix(slot.Time, start) {
			return slot, true
		}
	}
	return domain.SlotView{}, false
}
