package domain

import "strings"

// SlotView is one entry of an availability projection: a template slot
// with its availability recomputed against the booking ledger.
type SlotView struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// Project computes the point-in-time availability view for a space on a
// date by overlaying the ledger snapshot onto the schedule template.
//
// A slot is unavailable when its base flag is false or when an active
// booking references the same space, date and slot start time. Matching
// is by start-time prefix rather than full label equality, so a booking
// recorded with a slightly different label format still suppresses the
// correct slot.
//
// Project is pure: it never mutates the space or the snapshot, and it
// returns an empty view when the space has no published schedule for
// the date (which callers must not confuse with "fully booked").
func Project(space *Space, date string, ledger []Booking) []SlotView {
	day, ok := space.TemplateFor(date)
	if !ok {
		return []SlotView{}
	}

	views := make([]SlotView, 0, len(day.Slots))
	for _, slot := range day.Slots {
		views = append(views, SlotView{
			Time:      slot.Time,
			Available: slot.Available && !isBooked(space.ID, date, slot.Time, ledger),
		})
	}
	return views
}

// isBooked reports whether any booking in the snapshot claims the slot.
func isBooked(spaceID, date, slotLabel string, ledger []Booking) bool {
	for _, b := range ledger {
		if b.SpaceID != spaceID || b.Date != date {
			continue
		}
		start := b.StartTime()
		if start == "" {
			continue
		}
		if strings.HasPrefix(slotLabel, start) {
			return true
		}
	}
	return false
}
