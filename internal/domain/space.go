package domain

// Noise level categories for a study space. The level is a static
// attribute of the space, not of individual time slots.
const (
	NoiseQuiet         = "quiet"
	NoiseModerate      = "moderate"
	NoiseCollaborative = "collaborative"
)

// Hours describes a space's daily opening window.
type Hours struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// Coordinates locates a space on the campus map.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// TemplateSlot is a single labeled time interval in a space's schedule
// template, together with its base availability flag.
// Example label: "10:00-12:00".
type TemplateSlot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// TemplateDay is the published schedule template for one date.
// Slot labels within a day are unique and chronologically ordered.
type TemplateDay struct {
	Date  string         `json:"date"`
	Slots []TemplateSlot `json:"slots"`
}

// Space represents a bookable study space as defined by the catalog.
//
// A Space is immutable at runtime: its capacity, features and schedule
// template never change between catalog reloads. Live availability is
// always derived by projecting the booking ledger onto the template
// (see Project), never by mutating the Space itself.
type Space struct {
	// ─────────────────────────────
	// Identity (immutable)
	// ─────────────────────────────

	// ID is the canonical unique identifier. Example: CP-324A
	ID string `json:"id"`

	// Name is the display name shown to users.
	Name string `json:"name"`

	// Building is the location label. Example: Main Library
	Building string `json:"building"`

	// ─────────────────────────────
	// Static attributes
	// ─────────────────────────────

	// Capacity is the number of seats. Always positive.
	Capacity int `json:"capacity"`

	// Features lists amenities. Example: whiteboard, power outlets
	Features []string `json:"features"`

	// NoiseLevel is one of the Noise* constants.
	NoiseLevel string `json:"noiseLevel"`

	// Hours is the daily open/close window.
	Hours Hours `json:"hours"`

	// Coordinates is used by map-view clients.
	Coordinates Coordinates `json:"coordinates"`

	// ─────────────────────────────
	// Schedule template
	// ─────────────────────────────

	// Availability holds the base schedule template per known date.
	// Dates without an entry have no published schedule.
	Availability []TemplateDay `json:"availability"`
}

// TemplateFor returns the schedule template for the given date.
// The second return value is false when no schedule is published
// for that date, which is distinct from "fully booked".
func (s *Space) TemplateFor(date string) (TemplateDay, bool) {
	for _, day := range s.Availability {
		if day.Date == date {
			return day, true
		}
	}
	return TemplateDay{}, false
}

// HasFeature reports whether the space offers the named feature.
func (s *Space) HasFeature(name string) bool {
	for _, f := range s.Features {
		if f == name {
			return true
		}
	}
	return false
}
