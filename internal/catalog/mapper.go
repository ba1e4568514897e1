package catalog

import (
	"fmt"

	"github.com/BillJamesM/UdubHacks/internal/domain"
)

// Mapper converts raw catalog entries to domain.Space values, validating
// the catalog invariants along the way.
type Mapper struct{}

// NewMapper creates a new mapper instance.
func NewMapper() *Mapper {
	return &Mapper{}
}

// MapSpaces converts a parsed catalog File to domain spaces, preserving
// file order. It rejects duplicate space IDs, non-positive capacities,
// and schedule days whose slot labels are duplicated or out of
// chronological order.
func (m *Mapper) MapSpaces(file File) ([]*domain.Space, error) {
	if len(file.Spaces) == 0 {
		return nil, fmt.Errorf("catalog defines no spaces")
	}

	seen := make(map[string]bool, len(file.Spaces))
	spaces := make([]*domain.Space, 0, len(file.Spaces))

	for _, entry := range file.Spaces {
		if entry.ID == "" {
			return nil, fmt.Errorf("catalog entry without id")
		}
		if seen[entry.ID] {
			return nil, fmt.Errorf("duplicate space id %q", entry.ID)
		}
		seen[entry.ID] = true

		if entry.Capacity <= 0 {
			return nil, fmt.Errorf("space %q: capacity must be positive, got %d", entry.ID, entry.Capacity)
		}

		name := entry.Name
		if name == "" {
			name = entry.ID
		}

		noise := entry.NoiseLevel
		if noise == "" {
			noise = domain.NoiseModerate
		}

		schedule, err := mapSchedule(entry)
		if err != nil {
			return nil, err
		}

		spaces = append(spaces, &domain.Space{
			ID:         entry.ID,
			Name:       name,
			Building:   entry.Building,
			Capacity:   entry.Capacity,
			Features:   entry.Features,
			NoiseLevel: noise,
			Hours: domain.Hours{
				Open:  entry.Hours.Open,
				Close: entry.Hours.Close,
			},
			Coordinates: domain.Coordinates{
				Lat: entry.Coordinates.Lat,
				Lng: entry.Coordinates.Lng,
			},
			Availability: schedule,
		})
	}

	return spaces, nil
}

func mapSchedule(entry SpaceEntry) ([]domain.TemplateDay, error) {
	days := make([]domain.TemplateDay, 0, len(entry.Schedule))

	for _, day := range entry.Schedule {
		if day.Date == "" {
			return nil, fmt.Errorf("space %q: schedule day without date", entry.ID)
		}

		slots := make([]domain.TemplateSlot, 0, len(day.Slots))
		labels := make(map[string]bool, len(day.Slots))
		prevStart := ""

		for _, slot := range day.Slots {
			if labels[slot.Time] {
				return nil, fmt.Errorf("space %q date %s: duplicate slot %q", entry.ID, day.Date, slot.Time)
			}
			labels[slot.Time] = true

			start := domain.SlotStart(slot.Time)
			if prevStart != "" && start <= prevStart {
				return nil, fmt.Errorf("space %q date %s: slot %q out of order", entry.ID, day.Date, slot.Time)
			}
			prevStart = start

			slots = append(slots, domain.TemplateSlot{
				Time:      slot.Time,
				Available: slot.Available,
			})
		}

		days = append(days, domain.TemplateDay{
			Date:  day.Date,
			Slots: slots,
		})
	}

	return days, nil
}
