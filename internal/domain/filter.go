package domain

// Filter is a structured search constraint, built either from explicit
// UI controls or from free-text extraction (see ExtractFilter).
// Zero values mean "unconstrained": an empty Filter matches every space.
type Filter struct {
	// NoiseLevel restricts to spaces with this noise category.
	NoiseLevel string `json:"noiseLevel,omitempty"`

	// MinCapacity restricts to spaces seating at least this many.
	MinCapacity int `json:"minCapacity,omitempty"`

	// Features is conjunctive: a space must offer every listed feature.
	Features []string `json:"features,omitempty"`

	// Date selects the projection date. Empty means today: the
	// service substitutes its clock's date before projecting.
	Date string `json:"date,omitempty"`

	// TimeSlot optionally targets a specific slot start time or label.
	// Only meaningful together with Date.
	TimeSlot string `json:"timeSlot,omitempty"`
}

// MatchesSpace applies the static predicates (capacity, features, noise
// level) to a space. Slot availability is deliberately not considered
// here: a fully booked space still matches, and callers decide how to
// surface "no times available".
func (f Filter) MatchesSpace(s *Space) bool {
	if f.NoiseLevel != "" && s.NoiseLevel != f.NoiseLevel {
		return false
	}
	if f.MinCapacity > 0 && s.Capacity < f.MinCapacity {
		return false
	}
	for _, feature := range f.Features {
		if !s.HasFeature(feature) {
			return false
		}
	}
	return true
}

// WantsSlot reports whether the filter targets one specific time slot.
func (f Filter) WantsSlot() bool {
	return f.Date != "" && f.TimeSlot != ""
}
